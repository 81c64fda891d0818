// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package option - internal option descriptor and methods.
package option

import (
	"fmt"
	"io"
	"log"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/declarg/declarg/internal/constraint"
	"github.com/declarg/declarg/internal/convert"
	"github.com/declarg/declarg/internal/value"
	"github.com/declarg/declarg/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// ActionKind - Indicates the behavior triggered when an option matches.
type ActionKind int

// Action kinds.
// An option declares exactly one, enforced by SetAction and Finalize.
const (
	ActionNone ActionKind = iota
	ActionFlagTrue
	ActionFlagFalse
	ActionStoreConst
	ActionStore
	ActionCollect
	ActionCount
	ActionPrintHelp
	ActionPrintUsage
	ActionPrintVersion
)

// Action - the tagged variant describing what a match does.
type Action struct {
	Kind      ActionKind
	ValueType reflect.Type // type of the stored value; element type for ActionCollect, nil for print actions
	Const     value.Box    // store-const payload; the version string for print-version

	// Apply runs the action over the occurrence count and the converted
	// captured values, writes to the caller bound variable when there is one
	// and returns the box mirrored into the parser's value store.
	Apply func(count int, vals []any) value.Box

	// ApplyDefault installs a default into the caller bound variable.
	// Nil when the action only stores into the parser's value store.
	ApplyDefault func(def value.Box)
}

// TakesArgument - Indicates if a match consumes an argument token.
func (a Action) TakesArgument() bool {
	return a.Kind == ActionStore || a.Kind == ActionCollect
}

// Prints - Indicates a help/usage/version action that short-circuits the parse.
func (a Action) Prints() bool {
	switch a.Kind {
	case ActionPrintHelp, ActionPrintUsage, ActionPrintVersion:
		return true
	}
	return false
}

// Option - one declared command line option, or the positional collector.
type Option struct {
	LongName   string
	ShortName  rune
	Positional bool

	Action        Action
	Converter     convert.Func
	ConverterType reflect.Type // declared type of a custom converter, checked against the action
	Constraints   []constraint.Constraint
	MinCount      int // occurrence requirement lower bound
	MaxCount      int // occurrence requirement upper bound, -1 for unbounded
	Default       *value.Box
	Docs          []string
	HelpArgName   string

	// Per-parse match record
	Called    int      // number of matches in the current parse
	Args      []string // raw captured arguments, in command line order
	converted []any
	result    value.Box
}

// New - Returns a descriptor with the default requirement (0, unbounded).
func New() *Option {
	return &Option{MaxCount: -1}
}

// SetAction - Installs the option's action.
// A second call is a configuration error.
func (opt *Option) SetAction(a Action) error {
	if opt.Action.Kind != ActionNone {
		return fmt.Errorf(text.ErrorMultipleActions, opt.DisplayName())
	}
	opt.Action = a
	return nil
}

// DisplayName - Name used in diagnostics and help.
func (opt *Option) DisplayName() string {
	switch {
	case opt.LongName != "":
		return "--" + opt.LongName
	case opt.ShortName != 0:
		return "-" + string(opt.ShortName)
	default:
		name := opt.HelpArgName
		if name == "" {
			name = "arg"
		}
		return "<" + name + ">"
	}
}

// Finalize - Validates the descriptor before it joins a registry.
// Every failure here is a configuration error: a mistake by the library's
// caller, detected before any parsing happens.
func (opt *Option) Finalize(reg *convert.Registry) error {
	if opt.LongName != "" {
		if _, err := strconv.ParseFloat(opt.LongName, 64); err == nil {
			return fmt.Errorf(text.ErrorNumericName, opt.LongName)
		}
	}
	if opt.ShortName != 0 && unicode.IsDigit(opt.ShortName) {
		return fmt.Errorf(text.ErrorNumericName, string(opt.ShortName))
	}
	if opt.Action.Kind == ActionNone {
		return fmt.Errorf(text.ErrorNoAction, opt.DisplayName())
	}
	if opt.Positional && opt.Action.Prints() {
		return fmt.Errorf(text.ErrorPositionalPrint)
	}
	if opt.MinCount < 0 || (opt.MaxCount >= 0 && opt.MaxCount < opt.MinCount) {
		return fmt.Errorf(text.ErrorRequirementBounds, opt.DisplayName(), opt.MinCount, opt.MaxCount)
	}
	if opt.ConverterType != nil && opt.ConverterType != opt.Action.ValueType {
		return fmt.Errorf(text.ErrorConverterTypeMismatch, opt.DisplayName(),
			convert.TypeName(opt.ConverterType), convert.TypeName(opt.Action.ValueType))
	}
	if opt.Action.TakesArgument() && opt.Converter == nil {
		fn, ok := reg.Lookup(opt.Action.ValueType)
		if !ok {
			return fmt.Errorf(text.ErrorNoConverter, opt.DisplayName(), convert.TypeName(opt.Action.ValueType))
		}
		opt.Converter = fn
	}
	if opt.Default != nil {
		if opt.Action.Prints() {
			return fmt.Errorf(text.ErrorDefaultOnPrintAction, opt.DisplayName())
		}
		want := opt.Action.ValueType
		if opt.Action.Kind == ActionCollect {
			want = reflect.SliceOf(want)
		}
		if opt.Default.Type() != want {
			return fmt.Errorf(text.ErrorDefaultTypeMismatch, opt.DisplayName(),
				convert.TypeName(opt.Default.Type()), convert.TypeName(want))
		}
		if want == opt.Action.ValueType {
			for _, c := range opt.Constraints {
				if !c.OnCount && !c.Check(opt.Default.Interface()) {
					return fmt.Errorf(text.ErrorDefaultViolatesConstraint, opt.DisplayName(), c.Desc)
				}
			}
		}
	}
	if opt.HelpArgName == "" {
		if name := convert.TypeName(opt.Action.ValueType); name != "" {
			opt.HelpArgName = name
		} else {
			opt.HelpArgName = "arg"
		}
	}
	return nil
}

// ResetParse - Clears the match record so the registry can be reused.
func (opt *Option) ResetParse() {
	opt.Called = 0
	opt.Args = nil
	opt.converted = nil
	opt.result = value.Box{}
}

// Record - Registers one match and its captured argument, if any.
func (opt *Option) Record(args ...string) {
	Logger.Printf("match: %s, args: %q\n", opt.DisplayName(), args)
	opt.Called++
	opt.Args = append(opt.Args, args...)
}

// ConvertArgs - Runs the converter over every captured argument.
// Results are cached so constraints and the action see the same values.
func (opt *Option) ConvertArgs() error {
	if !opt.Action.TakesArgument() {
		return nil
	}
	opt.converted = make([]any, 0, len(opt.Args))
	for _, s := range opt.Args {
		v, err := opt.Converter(s)
		if err != nil {
			return err
		}
		opt.converted = append(opt.converted, v)
	}
	return nil
}

// CheckOccurrences - Validates the match count against the requirement.
func (opt *Option) CheckOccurrences() error {
	if opt.Called < opt.MinCount {
		return fmt.Errorf(text.ErrorTooFewOccurrences, opt.DisplayName(), opt.MinCount, opt.Called)
	}
	if opt.MaxCount >= 0 && opt.Called > opt.MaxCount {
		return fmt.Errorf(text.ErrorTooManyOccurrences, opt.DisplayName(), opt.MaxCount, opt.Called)
	}
	return nil
}

// CheckConstraints - Evaluates the constraint set, in declaration order.
// Value constraints run per converted value, count constraints over the
// number of gathered elements. The first violation wins.
func (opt *Option) CheckConstraints() error {
	count := opt.Called
	if opt.Action.TakesArgument() {
		count = len(opt.Args)
	}
	for _, c := range opt.Constraints {
		if c.OnCount {
			if !c.Check(count) {
				return fmt.Errorf(text.ErrorCountConstraintViolated, opt.DisplayName(), c.Desc, count)
			}
			continue
		}
		for _, v := range opt.converted {
			if !c.Check(v) {
				return fmt.Errorf(text.ErrorConstraintViolated, v, opt.DisplayName(), c.Desc)
			}
		}
	}
	return nil
}

// InstallDefault - Stores the default through the action's store path.
func (opt *Option) InstallDefault() {
	if opt.Default == nil {
		return
	}
	opt.result = *opt.Default
	if opt.Action.ApplyDefault != nil {
		opt.Action.ApplyDefault(*opt.Default)
	}
}

// Run - Executes the action over the converted captured values.
func (opt *Option) Run() {
	Logger.Printf("run: %s, kind: %d, count: %d\n", opt.DisplayName(), opt.Action.Kind, opt.Called)
	if opt.Action.Apply != nil {
		opt.result = opt.Action.Apply(opt.Called, opt.converted)
	}
}

// Result - The stored value after a parse.
func (opt *Option) Result() value.Box {
	return opt.result
}

// IsRequired - An option that must appear at least once.
func (opt *Option) IsRequired() bool {
	return opt.MinCount > 0
}

// HelpSynopsis - The name|alias fragment used by the help renderer, without
// the required/optional framing which depends on the requirement.
func (opt *Option) HelpSynopsis() string {
	if opt.Positional {
		return "<" + opt.HelpArgName + ">"
	}
	names := []string{}
	if opt.ShortName != 0 {
		names = append(names, "-"+string(opt.ShortName))
	}
	if opt.LongName != "" {
		names = append(names, "--"+opt.LongName)
	}
	out := strings.Join(names, "|")
	if opt.Action.TakesArgument() {
		out += " <" + opt.HelpArgName + ">"
	}
	return out
}

// Sort - Orders options by display name for help listings.
func Sort(list []*Option) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].DisplayName() < list[j].DisplayName()
	})
}
