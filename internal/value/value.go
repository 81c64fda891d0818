// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package value - type tagged holder for converted option values.
//
// The parser stores results of arbitrary types without knowing them ahead of
// time.  A Box carries the value together with its declared type so that
// retrieval with the wrong type fails as a programming error instead of
// silently misbehaving.
package value

import (
	"fmt"
	"reflect"
)

// Box - a value plus the identity of its declared type.
// The zero Box holds nothing.
type Box struct {
	val any
	typ reflect.Type
}

// New - Boxes a value, recording T as its type tag.
func New[T any](v T) Box {
	return Box{val: v, typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// IsSet - Indicates whether the Box holds a value.
func (b Box) IsSet() bool {
	return b.typ != nil
}

// Type - The declared type of the held value, nil for the zero Box.
func (b Box) Type() reflect.Type {
	return b.typ
}

// Interface - The held value without type information.
func (b Box) Interface() any {
	return b.val
}

// As - Retrieves the held value as T.
// Requesting the wrong T or reading an empty Box is an error distinct from
// any command line input error.
func As[T any](b Box) (T, error) {
	var zero T
	if !b.IsSet() {
		return zero, fmt.Errorf("no value stored")
	}
	want := reflect.TypeOf((*T)(nil)).Elem()
	if b.typ != want {
		return zero, fmt.Errorf("requested type %s, stored type %s", want, b.typ)
	}
	return b.val.(T), nil
}
