// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package declarg

import (
	"fmt"

	"github.com/declarg/declarg/internal/argiter"
	"github.com/declarg/declarg/internal/option"
	"github.com/declarg/declarg/text"
)

// Parse - Matches the argument vector against the declared options, then
// validates and runs the actions. The args slice excludes the program name,
// pass `os.Args[1:]`.
//
// On failure nothing has been stored and no action has run, except for the
// print actions which write their text to Writer and report ErrorHelpCalled.
// Input errors are matched by ErrorParsing. The registry is left reusable,
// every Parse call starts from a clean match record.
func (p *Parser) Parse(args []string) error {
	Logger.Printf("parse args: %q\n", args)
	for _, opt := range p.options {
		opt.ResetParse()
	}
	iter := argiter.New(args)
	for iter.Next() {
		t := classify(iter.Value())
		switch t.kind {
		case tokenLong:
			if err := p.matchLong(t, iter); err != nil {
				return err
			}
		case tokenShort:
			if err := p.matchShortCluster(t, iter); err != nil {
				return err
			}
		case tokenPositional:
			if p.positional == nil {
				return fmt.Errorf("%w"+text.ErrorUnexpectedPositional, ErrorParsing, t.verbatim)
			}
			if err := p.record(p.positional, t.verbatim); err != nil {
				return err
			}
		}
	}
	return p.validate()
}

// matchLong - Exact long name match; there is no abbreviation matching.
func (p *Parser) matchLong(t token, iter *argiter.Iter) error {
	opt, ok := p.byLong[t.name]
	if !ok {
		return fmt.Errorf("%w"+text.ErrorUnknownOption, ErrorParsing, t.verbatim)
	}
	if !opt.Action.TakesArgument() {
		if t.arg != nil {
			return fmt.Errorf("%w"+text.ErrorDoesNotTakeArgument, ErrorParsing, opt.DisplayName())
		}
		return p.record(opt)
	}
	if t.arg != nil {
		return p.record(opt, *t.arg)
	}
	v, ok := iter.Take()
	if !ok {
		return fmt.Errorf("%w"+text.ErrorMissingArgument, ErrorParsing, opt.DisplayName())
	}
	return p.record(opt, v)
}

// matchShortCluster - Combined short flags. Every rune is resolved before any
// match is recorded so an invalid cluster fails as a whole. An argument
// taking option is only legal in last position and captures the next token.
func (p *Parser) matchShortCluster(t token, iter *argiter.Iter) error {
	opts := make([]*option.Option, len(t.runes))
	for i, r := range t.runes {
		opt, ok := p.byShort[r]
		if !ok {
			return fmt.Errorf("%w"+text.ErrorUnknownOption, ErrorParsing, "-"+string(r))
		}
		if opt.Action.TakesArgument() && i != len(t.runes)-1 {
			return fmt.Errorf("%w"+text.ErrorAmbiguousCluster, ErrorParsing, t.verbatim, r)
		}
		opts[i] = opt
	}
	for _, opt := range opts {
		if opt.Action.TakesArgument() {
			v, ok := iter.Take()
			if !ok {
				return fmt.Errorf("%w"+text.ErrorMissingArgument, ErrorParsing, opt.DisplayName())
			}
			return p.record(opt, v)
		}
		if err := p.record(opt); err != nil {
			return err
		}
	}
	return nil
}

// record - Registers one match, rejecting it when another member of the same
// exclusive group already matched.
func (p *Parser) record(opt *option.Option, args ...string) error {
	if g, ok := p.groupOf[opt]; ok {
		for _, member := range g.members {
			if member != opt && member.Called > 0 {
				return fmt.Errorf("%w"+text.ErrorExclusiveConflict, ErrorParsing,
					member.DisplayName(), opt.DisplayName())
			}
		}
	}
	opt.Record(args...)
	return nil
}
