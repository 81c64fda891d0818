// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
// Gathered in a single place so they can be overridden by the caller before
// building the parser.
package text

// Input errors, reported when parsing a command line.
var (
	ErrorUnknownOption = "unknown option '%s'"

	ErrorMissingArgument = "missing argument for option '%s'"

	ErrorDoesNotTakeArgument = "option '%s' does not take an argument"

	ErrorAmbiguousCluster = "ambiguous combined flags '%s': option '-%c' requires an argument and is not last"

	ErrorUnexpectedPositional = "unexpected positional argument '%s'"

	ErrorExclusiveConflict = "mutually exclusive options '%s' and '%s' both given"

	ErrorGroupRequired = "exactly one of %s must be given"

	ErrorCannotConvert = "cannot convert '%s' to %s"

	ErrorConstraintViolated = "value '%v' for %s violates constraint: %s"

	ErrorCountConstraintViolated = "%s violates constraint: %s (got %d)"

	ErrorTooFewOccurrences = "%s must be given at least %d time(s), got %d"

	ErrorTooManyOccurrences = "%s may be given at most %d time(s), got %d"
)

// Configuration errors, reported when building the parser.
var (
	ErrorNoAction = "option '%s' has no action"

	ErrorMultipleActions = "option '%s' has more than one action"

	ErrorDuplicateOption = "option '%s' is already defined"

	ErrorNumericName = "option '%s' has a numeric name"

	ErrorMultiplePositional = "a positional collector is already defined"

	ErrorPositionalInGroup = "a positional collector can't be part of an exclusive group"

	ErrorDefaultTypeMismatch = "option '%s' default is of type %s, action stores %s"

	ErrorConverterTypeMismatch = "option '%s' converter produces %s, action stores %s"

	ErrorNoConverter = "option '%s' has no converter for type %s"

	ErrorDefaultViolatesConstraint = "option '%s' default violates constraint: %s"

	ErrorDefaultOnPrintAction = "option '%s' prints and exits, a default makes no sense"

	ErrorPositionalPrint = "the positional collector can't print and exit"

	ErrorRequirementBounds = "option '%s' requirement bounds are impossible (min %d, max %d)"

	ErrorOptionNotFound = "option '%s' is not defined"

	ErrorWrongValueType = "option '%s': %s"
)

// Help headers.
var (
	HelpNameHeader     = "NAME"
	HelpSynopsisHeader = "SYNOPSIS"
	HelpOptionsHeader  = "OPTIONS"

	HelpRequiredOptionsHeader = "REQUIRED PARAMETERS"
)
