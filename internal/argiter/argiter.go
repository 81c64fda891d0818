// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package argiter - forward iterator over the argument vector.
// Take consumes the following token as an option argument so the matching
// loop never re-classifies it.
package argiter

// Iter - iterator state over one argument vector.
type Iter struct {
	args []string
	idx  int
}

// New - builds an Iter positioned before the first token.
func New(args []string) *Iter {
	return &Iter{args: args, idx: -1}
}

// Next - advances and reports whether a token is available.
func (it *Iter) Next() bool {
	if it.idx < len(it.args) {
		it.idx++
	}
	return it.idx < len(it.args)
}

// Value - the current token, empty string when exhausted.
func (it *Iter) Value() string {
	if it.idx < 0 || it.idx >= len(it.args) {
		return ""
	}
	return it.args[it.idx]
}

// Take - consumes and returns the next token.
// Used for options whose argument is the following token.
func (it *Iter) Take() (string, bool) {
	if it.idx+1 >= len(it.args) {
		return "", false
	}
	it.idx++
	return it.args[it.idx], true
}
