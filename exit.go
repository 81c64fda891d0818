// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package declarg

import (
	"errors"
	"fmt"
	"os"
)

var exitFn func(code int) = os.Exit

// SetExitFunc - Replaces the os.Exit call made by ParseOrExit.
// Useful for testing or for running cleanup before the program exits.
func SetExitFunc(fn func(code int)) {
	exitFn = fn
}

// ParseOrExit - Parse wrapped in the conventional exit policy: a print
// action exits 0, an input error prints the diagnostic plus the synopsis to
// Writer and exits 1. The library's only call to os.Exit lives here; use
// Parse directly to keep control.
func (p *Parser) ParseOrExit(args []string) {
	err := p.Parse(args)
	if err == nil {
		return
	}
	if errors.Is(err, ErrorHelpCalled) {
		exitFn(0)
		return
	}
	fmt.Fprintf(Writer, "ERROR: %s\n", err)
	fmt.Fprint(Writer, p.Usage())
	exitFn(1)
}
