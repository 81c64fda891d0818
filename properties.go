// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package declarg

import (
	"cmp"
	"fmt"
	"reflect"
	"regexp"

	"github.com/declarg/declarg/internal/constraint"
	"github.com/declarg/declarg/internal/convert"
	"github.com/declarg/declarg/internal/option"
	"github.com/declarg/declarg/internal/value"
)

// Property - one declaration folded into an option descriptor by Add.
// Order of properties is irrelevant except for Doc lines and constraints,
// which are preserved in declaration order.
type Property func(*option.Option) error

// Long - Declares the option's long name, used as `--name`.
func Long(name string) Property {
	return func(opt *option.Option) error {
		if name == "" {
			return fmt.Errorf("long name can't be empty")
		}
		opt.LongName = name
		return nil
	}
}

// Short - Declares the option's single character name, used as `-x` and in
// combined short flags.
func Short(r rune) Property {
	return func(opt *option.Option) error {
		if r == 0 || r == '-' {
			return fmt.Errorf("invalid short name %q", r)
		}
		opt.ShortName = r
		return nil
	}
}

// Doc - Adds description lines for the automated help. Lines accumulate in
// the order given.
func Doc(lines ...string) Property {
	return func(opt *option.Option) error {
		opt.Docs = append(opt.Docs, lines...)
		return nil
	}
}

// ArgName - Overrides the argument placeholder in help output, which
// otherwise defaults to the value type's name.
func ArgName(name string) Property {
	return func(opt *option.Option) error {
		opt.HelpArgName = name
		return nil
	}
}

// Default - Value installed through the action's store path when the option
// never matches. Its type must agree with the action's value type.
func Default[T any](v T) Property {
	return func(opt *option.Option) error {
		b := value.New(v)
		opt.Default = &b
		return nil
	}
}

// ConvertWith - Custom string to value conversion for this descriptor only.
// Overrides the built-in converter for the action's value type.
func ConvertWith[T any](fn func(string) (T, error)) Property {
	return func(opt *option.Option) error {
		opt.Converter = convert.Wrap(fn)
		opt.ConverterType = reflect.TypeOf((*T)(nil)).Elem()
		return nil
	}
}

// Occurrence requirements.

// AtLeast - The option must match at least n times.
func AtLeast(n int) Property {
	return func(opt *option.Option) error {
		opt.MinCount = n
		return nil
	}
}

// AtMost - The option may match at most n times.
func AtMost(n int) Property {
	return func(opt *option.Option) error {
		opt.MaxCount = n
		return nil
	}
}

// Exactly - The option must match exactly n times.
func Exactly(n int) Property {
	return func(opt *option.Option) error {
		opt.MinCount = n
		opt.MaxCount = n
		return nil
	}
}

// Required - The option must match at least once. Shorthand for AtLeast(1).
func Required() Property {
	return AtLeast(1)
}

// Value constraints, evaluated after conversion, in declaration order.

// Minimum - Every converted value must be >= min.
func Minimum[T cmp.Ordered](min T) Property {
	return addConstraint(constraint.Minimum(min))
}

// Maximum - Every converted value must be <= max.
func Maximum[T cmp.Ordered](max T) Property {
	return addConstraint(constraint.Maximum(max))
}

// OneOf - Every converted value must be a member of the given set.
func OneOf[T comparable](valid ...T) Property {
	return addConstraint(constraint.OneOf(valid...))
}

// Match - Every string value must match the pattern. A pattern that doesn't
// compile is a configuration error.
func Match(pattern string) Property {
	return func(opt *option.Option) error {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %s", pattern, err)
		}
		opt.Constraints = append(opt.Constraints, constraint.Match(re))
		return nil
	}
}

// Check - User supplied predicate with its own description, named in the
// violation diagnostic.
func Check[T any](desc string, fn func(T) bool) Property {
	return addConstraint(constraint.Check(desc, fn))
}

// MinimumCount - At least n elements must be gathered.
// Distinct from AtLeast, which bounds how many times the option appears.
func MinimumCount(n int) Property {
	return addConstraint(constraint.MinimumCount(n))
}

// MaximumCount - At most n elements may be gathered.
func MaximumCount(n int) Property {
	return addConstraint(constraint.MaximumCount(n))
}

// ExactCount - Exactly n elements must be gathered.
func ExactCount(n int) Property {
	return addConstraint(constraint.ExactCount(n))
}

func addConstraint(c constraint.Constraint) Property {
	return func(opt *option.Option) error {
		opt.Constraints = append(opt.Constraints, c)
		return nil
	}
}

// Actions. Exactly one per option; a second action property is a
// configuration error.

// StoreTrue - Store true in the parser's value store when the option matches.
func StoreTrue() Property {
	return setAction(option.Action{
		Kind:      option.ActionFlagTrue,
		ValueType: reflect.TypeOf((*bool)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			return value.New(true)
		},
	})
}

// StoreTrueVar - Store true into the given variable when the option matches.
func StoreTrueVar(ptr *bool) Property {
	return setAction(option.Action{
		Kind:      option.ActionFlagTrue,
		ValueType: reflect.TypeOf((*bool)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			*ptr = true
			return value.New(true)
		},
		ApplyDefault: func(def value.Box) {
			*ptr, _ = value.As[bool](def)
		},
	})
}

// StoreFalse - Store false in the parser's value store when the option matches.
func StoreFalse() Property {
	return setAction(option.Action{
		Kind:      option.ActionFlagFalse,
		ValueType: reflect.TypeOf((*bool)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			return value.New(false)
		},
	})
}

// StoreFalseVar - Store false into the given variable when the option matches.
func StoreFalseVar(ptr *bool) Property {
	return setAction(option.Action{
		Kind:      option.ActionFlagFalse,
		ValueType: reflect.TypeOf((*bool)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			*ptr = false
			return value.New(false)
		},
		ApplyDefault: func(def value.Box) {
			*ptr, _ = value.As[bool](def)
		},
	})
}

// StoreConst - Store the given constant when the option matches. The option
// takes no argument; pair with Default for the value used when it doesn't
// match.
func StoreConst[T any](c T) Property {
	return setAction(option.Action{
		Kind:      option.ActionStoreConst,
		ValueType: reflect.TypeOf((*T)(nil)).Elem(),
		Const:     value.New(c),
		Apply: func(count int, vals []any) value.Box {
			return value.New(c)
		},
	})
}

// StoreConstVar - Store the given constant into the given variable when the
// option matches.
func StoreConstVar[T any](ptr *T, c T) Property {
	return setAction(option.Action{
		Kind:      option.ActionStoreConst,
		ValueType: reflect.TypeOf((*T)(nil)).Elem(),
		Const:     value.New(c),
		Apply: func(count int, vals []any) value.Box {
			*ptr = c
			return value.New(c)
		},
		ApplyDefault: func(def value.Box) {
			*ptr, _ = value.As[T](def)
		},
	})
}

// Store - Convert the option's argument to T and store it. When the option
// matches more than once the last value wins.
func Store[T any]() Property {
	return setAction(option.Action{
		Kind:      option.ActionStore,
		ValueType: reflect.TypeOf((*T)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			return value.New(vals[len(vals)-1].(T))
		},
	})
}

// StoreVar - Convert the option's argument to T and store it into the given
// variable. When the option matches more than once the last value wins.
func StoreVar[T any](ptr *T) Property {
	return setAction(option.Action{
		Kind:      option.ActionStore,
		ValueType: reflect.TypeOf((*T)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			*ptr = vals[len(vals)-1].(T)
			return value.New(*ptr)
		},
		ApplyDefault: func(def value.Box) {
			*ptr, _ = value.As[T](def)
		},
	})
}

// Collect - Convert every captured argument to T and gather them, in command
// line order, into the parser's value store as a []T.
func Collect[T any]() Property {
	return setAction(option.Action{
		Kind:      option.ActionCollect,
		ValueType: reflect.TypeOf((*T)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			s := make([]T, 0, len(vals))
			for _, v := range vals {
				s = append(s, v.(T))
			}
			return value.New(s)
		},
	})
}

// CollectVar - Convert every captured argument to T and append it, in
// command line order, to the given slice.
func CollectVar[T any](ptr *[]T) Property {
	return setAction(option.Action{
		Kind:      option.ActionCollect,
		ValueType: reflect.TypeOf((*T)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			for _, v := range vals {
				*ptr = append(*ptr, v.(T))
			}
			return value.New(append([]T(nil), *ptr...))
		},
		ApplyDefault: func(def value.Box) {
			if s, err := value.As[[]T](def); err == nil {
				*ptr = append(*ptr, s...)
			}
		},
	})
}

// Count - Store the number of times the option matched.
func Count() Property {
	return setAction(option.Action{
		Kind:      option.ActionCount,
		ValueType: reflect.TypeOf((*int)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			return value.New(count)
		},
	})
}

// CountVar - Store the number of times the option matched into the given
// variable.
func CountVar(ptr *int) Property {
	return setAction(option.Action{
		Kind:      option.ActionCount,
		ValueType: reflect.TypeOf((*int)(nil)).Elem(),
		Apply: func(count int, vals []any) value.Box {
			*ptr = count
			return value.New(count)
		},
		ApplyDefault: func(def value.Box) {
			*ptr, _ = value.As[int](def)
		},
	})
}

// PrintHelp - Print the full help to Writer and terminate the parse
// successfully with ErrorHelpCalled, skipping the rest of validation.
func PrintHelp() Property {
	return setAction(option.Action{Kind: option.ActionPrintHelp})
}

// PrintUsage - Print the synopsis to Writer and terminate the parse
// successfully with ErrorHelpCalled.
func PrintUsage() Property {
	return setAction(option.Action{Kind: option.ActionPrintUsage})
}

// PrintVersion - Print the given version string to Writer and terminate the
// parse successfully with ErrorHelpCalled.
func PrintVersion(v string) Property {
	return setAction(option.Action{
		Kind:  option.ActionPrintVersion,
		Const: value.New(v),
	})
}

func setAction(a option.Action) Property {
	return func(opt *option.Option) error {
		return opt.SetAction(a)
	}
}

// RegisterConverter - Replaces the built-in conversion for T on this parser.
// ConvertWith remains the per-descriptor override.
func RegisterConverter[T any](p *Parser, fn func(string) (T, error)) {
	convert.Register(p.registry, fn)
}
