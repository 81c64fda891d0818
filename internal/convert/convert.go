// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package convert - string to typed value conversion registry.
//
// Built-ins cover the POD and string types.  A descriptor can carry its own
// converter which overrides the built-in for that descriptor only.
package convert

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/declarg/declarg/text"
)

// Func - Signature for a string to typed value conversion.
type Func func(s string) (any, error)

// Registry - maps a target type to its conversion function.
type Registry struct {
	byType map[reflect.Type]Func
}

// NewRegistry - Returns a Registry pre-loaded with the built-in conversions:
// bool, int, int64, uint, float64, rune and string identity.
func NewRegistry() *Registry {
	r := &Registry{byType: map[reflect.Type]Func{}}
	Register[bool](r, func(s string) (bool, error) { return strconv.ParseBool(s) })
	Register[int](r, func(s string) (int, error) { return strconv.Atoi(s) })
	Register[int64](r, func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) })
	Register[uint](r, func(s string) (uint, error) {
		u, err := strconv.ParseUint(s, 10, 64)
		return uint(u), err
	})
	Register[float64](r, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) })
	Register[rune](r, func(s string) (rune, error) {
		rr := []rune(s)
		if len(rr) != 1 {
			return 0, fmt.Errorf("not a single character")
		}
		return rr[0], nil
	})
	Register[string](r, func(s string) (string, error) { return s, nil })
	return r
}

// Register - Installs a typed conversion for T, replacing any previous one.
func Register[T any](r *Registry, fn func(s string) (T, error)) {
	r.byType[reflect.TypeOf((*T)(nil)).Elem()] = Wrap(fn)
}

// Wrap - Adapts a typed conversion into a Func.
// The raw conversion error is folded into the standard diagnostic so every
// failed conversion reads the same to the user.
func Wrap[T any](fn func(s string) (T, error)) Func {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return func(s string) (any, error) {
		v, err := fn(s)
		if err != nil {
			return nil, fmt.Errorf(text.ErrorCannotConvert, s, TypeName(t))
		}
		return v, nil
	}
}

// Lookup - Returns the conversion for the given target type.
func (r *Registry) Lookup(t reflect.Type) (Func, bool) {
	fn, ok := r.byType[t]
	return fn, ok
}

// TypeName - Human readable name for a target type, used in diagnostics and
// help argument placeholders.
func TypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t == reflect.TypeOf((*rune)(nil)).Elem() {
		return "char"
	}
	return t.String()
}
