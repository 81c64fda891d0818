// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package declarg

import "github.com/declarg/declarg/internal/help"

// Help - Automated help text: NAME, SYNOPSIS and the option listings.
// This is what the PrintHelp action writes to Writer.
func (p *Parser) Help() string {
	return help.Name(p.name, p.description) + "\n" +
		help.Synopsis(p.name, p.options) + "\n" +
		help.OptionList(p.options)
}

// Usage - Just the SYNOPSIS section. This is what the PrintUsage action
// writes to Writer, and what ParseOrExit appends to an input error.
func (p *Parser) Usage() string {
	return help.Synopsis(p.name, p.options)
}
