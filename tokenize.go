// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package declarg

import (
	"regexp"
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenPositional tokenKind = iota
	tokenLong
	tokenShort
)

// token - one classified command line element.
type token struct {
	kind     tokenKind
	name     string  // long option name, may be empty for `--`
	runes    []rune  // short flag cluster, in order
	arg      *string // inline `--name=value` argument
	verbatim string  // original text, used in diagnostics
}

var longRegex = regexp.MustCompile(`^--([^=]*)(=.*)?$`)

// classify - Syntactic classification only; no registry knowledge.
// A token that parses as a number is always positional, even when it starts
// with a dash, so negative numbers never read as flag clusters.
func classify(arg string) token {
	if arg == "" || arg == "-" || !strings.HasPrefix(arg, "-") || looksLikeNumber(arg) {
		return token{kind: tokenPositional, verbatim: arg}
	}
	if match := longRegex.FindStringSubmatch(arg); match != nil {
		t := token{kind: tokenLong, name: match[1], verbatim: arg}
		if match[2] != "" {
			inline := strings.TrimPrefix(match[2], "=")
			t.arg = &inline
		}
		return t
	}
	return token{kind: tokenShort, runes: []rune(arg[1:]), verbatim: arg}
}

func looksLikeNumber(arg string) bool {
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}
