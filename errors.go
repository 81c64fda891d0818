// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package declarg

import (
	"errors"
	"fmt"
)

// ErrorHelpCalled - Parse was short-circuited by a print action (help, usage
// or version). The requested text has already been written to Writer; the
// caller should exit successfully.
var ErrorHelpCalled = fmt.Errorf("help called")

// ErrorParsing - Parent of every command line input error. Use errors.Is to
// distinguish user mistakes from configuration errors.
var ErrorParsing = errors.New("")

// ErrorSetup - Parent of every configuration error: mistakes in the option
// declarations themselves, reported by Add or Get, never by user input.
var ErrorSetup = errors.New("")
