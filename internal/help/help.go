// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - formats a finalized option registry into usage text.
// Pure projection: no parsing logic lives here.
package help

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/declarg/declarg/internal/option"
	"github.com/declarg/declarg/text"
)

// Padding -
var Padding = 4

var (
	bold  = color.New(color.Bold)
	cyan  = color.New(color.FgCyan)
	BoldS = bold.SprintfFunc()
	CyanS = cyan.SprintfFunc()
)

func header(s string) string {
	return BoldS("%s:", s)
}

// Name - NAME section: program name and description.
func Name(scriptName, description string) string {
	out := scriptName
	if description != "" {
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s\n%s%s\n", header(text.HelpNameHeader), strings.Repeat(" ", Padding), out)
}

// synopsis - one option's synopsis fragment with required/optional framing.
func synopsis(opt *option.Option) string {
	txt := opt.HelpSynopsis()
	if opt.Action.Kind == option.ActionCollect {
		txt += "..."
	}
	if !opt.IsRequired() {
		return "[" + txt + "]"
	}
	return txt
}

// Synopsis - SYNOPSIS section: program name followed by every option,
// required options first, the positional collector last. Wraps at 80 columns.
func Synopsis(scriptName string, options []*option.Option) string {
	scriptName = strings.Repeat(" ", Padding) + scriptName
	var positional *option.Option
	normal := []*option.Option{}
	required := []*option.Option{}
	for _, opt := range options {
		switch {
		case opt.Positional:
			positional = opt
		case opt.IsRequired():
			required = append(required, opt)
		default:
			normal = append(normal, opt)
		}
	}
	option.Sort(required)
	option.Sort(normal)

	ordered := append(required, normal...)
	if positional != nil {
		ordered = append(ordered, positional)
	}
	var out string
	line := scriptName
	for _, opt := range ordered {
		syn := synopsis(opt)
		if len(line)+len(syn) > 80 {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(scriptName)), syn)
		} else {
			line += " " + syn
		}
	}
	out += line
	return fmt.Sprintf("%s\n%s\n", header(text.HelpSynopsisHeader), out)
}

// longestStringLen - Given a slice of strings it returns the length of the longest string in the slice
func longestStringLen(s []string) int {
	i := 0
	for _, e := range s {
		if len(e) > i {
			i = len(e)
		}
	}
	return i
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}

// OptionList - OPTIONS/REQUIRED PARAMETERS sections: each option's synopsis,
// doc lines, and default annotation.
func OptionList(options []*option.Option) string {
	var positional *option.Option
	normal := []*option.Option{}
	required := []*option.Option{}
	synopses := []string{}
	for _, opt := range options {
		synopses = append(synopses, opt.HelpSynopsis())
		switch {
		case opt.Positional:
			positional = opt
		case opt.IsRequired():
			required = append(required, opt)
		default:
			normal = append(normal, opt)
		}
	}
	option.Sort(required)
	option.Sort(normal)
	if positional != nil {
		if positional.IsRequired() {
			required = append(required, positional)
		} else {
			normal = append(normal, positional)
		}
	}
	factor := longestStringLen(synopses) + Padding

	entry := func(opt *option.Option) string {
		txt := strings.Repeat(" ", Padding) + pad(CyanS("%s", opt.HelpSynopsis()), factor+colorPad(opt.HelpSynopsis()))
		if len(opt.Docs) > 0 {
			indent := "\n" + strings.Repeat(" ", Padding+factor)
			txt += strings.Join(opt.Docs, indent) + " "
		}
		if opt.Default != nil {
			txt += fmt.Sprintf("(default: %v)", opt.Default.Interface())
		}
		return strings.TrimRight(txt, " ") + "\n"
	}

	out := ""
	if len(required) > 0 {
		out += fmt.Sprintf("%s\n", header(text.HelpRequiredOptionsHeader))
		for _, opt := range required {
			out += entry(opt)
		}
	}
	if len(normal) > 0 {
		out += fmt.Sprintf("%s\n", header(text.HelpOptionsHeader))
		for _, opt := range normal {
			out += entry(opt)
		}
	}
	return out
}

// colorPad - extra width taken by invisible escape sequences so that padding
// stays aligned whether or not color is enabled.
func colorPad(plain string) int {
	return len(CyanS("%s", plain)) - len(plain)
}
