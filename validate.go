// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package declarg

import (
	"fmt"
	"strings"

	"github.com/declarg/declarg/internal/option"
	"github.com/declarg/declarg/internal/value"
	"github.com/declarg/declarg/text"
)

// validate - Post match pipeline, in a fixed order:
//
//  1. a matched print action renders and short-circuits everything else,
//  2. required exclusive groups,
//  3. occurrence requirements,
//  4. conversion then constraints, per matched option,
//  5. defaults for the unmatched options,
//  6. actions, in registration order.
//
// The converted values from step 4 are reused by the actions in step 6.
func (p *Parser) validate() error {
	for _, opt := range p.options {
		if opt.Called > 0 && opt.Action.Prints() {
			p.renderPrint(opt)
			return ErrorHelpCalled
		}
	}
	for _, g := range p.groups {
		if err := g.check(); err != nil {
			return err
		}
	}
	for _, opt := range p.options {
		if err := opt.CheckOccurrences(); err != nil {
			return fmt.Errorf("%w%s", ErrorParsing, err)
		}
	}
	for _, opt := range p.options {
		if opt.Called == 0 {
			continue
		}
		if err := opt.ConvertArgs(); err != nil {
			return fmt.Errorf("%w%s", ErrorParsing, err)
		}
		if err := opt.CheckConstraints(); err != nil {
			return fmt.Errorf("%w%s", ErrorParsing, err)
		}
	}
	for _, opt := range p.options {
		if opt.Called == 0 {
			opt.InstallDefault()
		}
	}
	for _, opt := range p.options {
		if opt.Called > 0 {
			opt.Run()
		}
	}
	return nil
}

func (g *Group) check() error {
	if !g.required {
		return nil
	}
	for _, member := range g.members {
		if member.Called > 0 {
			return nil
		}
	}
	names := make([]string, len(g.members))
	for i, member := range g.members {
		names[i] = member.DisplayName()
	}
	return fmt.Errorf("%w"+text.ErrorGroupRequired, ErrorParsing, strings.Join(names, ", "))
}

func (p *Parser) renderPrint(opt *option.Option) {
	switch opt.Action.Kind {
	case option.ActionPrintHelp:
		fmt.Fprint(Writer, p.Help())
	case option.ActionPrintUsage:
		fmt.Fprint(Writer, p.Usage())
	case option.ActionPrintVersion:
		v := p.version
		if s, err := value.As[string](opt.Action.Const); err == nil && s != "" {
			v = s
		}
		fmt.Fprintf(Writer, "%s %s\n", p.name, v)
	}
}
