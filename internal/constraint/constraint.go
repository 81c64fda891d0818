// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package constraint - post conversion predicates over option values.
//
// A Constraint pairs a predicate with the human readable description used in
// the violation diagnostic.  Value constraints run once per converted value,
// count constraints run once over the number of gathered elements.
package constraint

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"
)

// Constraint - a predicate plus its description.
type Constraint struct {
	Desc    string
	OnCount bool           // evaluated against the element count instead of each value
	Check   func(any) bool // receives the converted value, or an int when OnCount
}

// Minimum - Requires every value to be >= min.
func Minimum[T cmp.Ordered](min T) Constraint {
	return Constraint{
		Desc: fmt.Sprintf("minimum value %v", min),
		Check: func(v any) bool {
			tv, ok := v.(T)
			return ok && tv >= min
		},
	}
}

// Maximum - Requires every value to be <= max.
func Maximum[T cmp.Ordered](max T) Constraint {
	return Constraint{
		Desc: fmt.Sprintf("maximum value %v", max),
		Check: func(v any) bool {
			tv, ok := v.(T)
			return ok && tv <= max
		},
	}
}

// OneOf - Requires every value to be a member of the given set.
func OneOf[T comparable](valid ...T) Constraint {
	parts := make([]string, len(valid))
	for i, e := range valid {
		parts[i] = fmt.Sprintf("%v", e)
	}
	return Constraint{
		Desc: fmt.Sprintf("one of [%s]", strings.Join(parts, ", ")),
		Check: func(v any) bool {
			tv, ok := v.(T)
			if !ok {
				return false
			}
			for _, e := range valid {
				if tv == e {
					return true
				}
			}
			return false
		},
	}
}

// Match - Requires every string value to match the given regular expression.
// The caller compiles the pattern so a bad one fails at registration, not in
// the middle of a parse.
func Match(re *regexp.Regexp) Constraint {
	return Constraint{
		Desc: fmt.Sprintf("match /%s/", re.String()),
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		},
	}
}

// Check - User supplied predicate with its own description.
func Check[T any](desc string, fn func(T) bool) Constraint {
	return Constraint{
		Desc: desc,
		Check: func(v any) bool {
			tv, ok := v.(T)
			return ok && fn(tv)
		},
	}
}

// MinimumCount - Requires at least n gathered elements.
func MinimumCount(n int) Constraint {
	return Constraint{
		Desc:    fmt.Sprintf("at least %d element(s)", n),
		OnCount: true,
		Check:   func(v any) bool { return v.(int) >= n },
	}
}

// MaximumCount - Requires at most n gathered elements.
func MaximumCount(n int) Constraint {
	return Constraint{
		Desc:    fmt.Sprintf("at most %d element(s)", n),
		OnCount: true,
		Check:   func(v any) bool { return v.(int) <= n },
	}
}

// ExactCount - Requires exactly n gathered elements.
func ExactCount(n int) Constraint {
	return Constraint{
		Desc:    fmt.Sprintf("exactly %d element(s)", n),
		OnCount: true,
		Check:   func(v any) bool { return v.(int) == n },
	}
}
