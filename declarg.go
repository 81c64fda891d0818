// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package declarg - declarative command line argument parsing.

A program declares a set of named options and one optional positional
collector, each built from an unordered list of properties: names, exactly
one action, value constraints, an occurrence requirement, a default and
documentation. A single Parse call then matches the argument vector against
the declarations, converts tokens to typed values, enforces constraints and
requirements, and runs each matched option's action.

	p := declarg.New("accumulate")
	p.Self("accumulate", "Process some integers.")

	var ints []int
	_ = p.Add(declarg.Long("help"), declarg.Short('h'), declarg.PrintHelp())
	_ = p.Add(declarg.Long("sum"), declarg.StoreConst(plus), declarg.Default(max),
		declarg.Doc("Sum the integers (default: find the max)"))
	_ = p.Add(declarg.CollectVar(&ints), declarg.AtLeast(1),
		declarg.Doc("an integer for the accumulator"))

	err := p.Parse(os.Args[1:])

Results are read from the variables bound by the actions, or through the
typed lookup:

	accumulator, err := declarg.Get[accumFn](p, "sum")

Option syntax: `--name`, `--name value`, `--name=value`, `-x`, `-f value`
and combined short flags `-xyz` (legal when at most the last takes an
argument). Numeric option names are rejected so bare negative numbers
always read as positional arguments. There is no `--` terminator.

Registration mistakes (duplicate names, missing action, type mismatched
default) are configuration errors, reported before any parsing happens and
matched by ErrorSetup. Malformed command lines are input errors matched by
ErrorParsing. The library never exits the process from Parse; ParseOrExit
is the thin policy wrapper that does.
*/
package declarg

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/declarg/declarg/internal/convert"
	"github.com/declarg/declarg/internal/option"
	"github.com/declarg/declarg/internal/value"
	"github.com/declarg/declarg/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Writer - io.Writer where help, version and diagnostics are written.
// Defaults to os.Stderr.
var Writer io.Writer = os.Stderr

// Parser - main object. Owns the option registry and the exclusive groups.
// Build it up with Add, then call Parse; the registry is immutable during a
// parse and can be reused across parse calls.
type Parser struct {
	name        string
	description string
	version     string

	registry   *convert.Registry
	options    []*option.Option // registry order, group members included
	groups     []*Group
	byLong     map[string]*option.Option
	byShort    map[rune]*option.Option
	positional *option.Option
	groupOf    map[*option.Option]*Group
}

// New - Returns an empty Parser named after the program.
func New(name string) *Parser {
	return &Parser{
		name:     name,
		registry: convert.NewRegistry(),
		byLong:   map[string]*option.Option{},
		byShort:  map[rune]*option.Option{},
		groupOf:  map[*option.Option]*Group{},
	}
}

// Self - Set a custom name and description for the automated help.
// If name is an empty string the name given to New is kept.
func (p *Parser) Self(name string, description string) *Parser {
	if name != "" {
		p.name = name
	}
	p.description = description
	return p
}

// SetVersion - Version string printed by the PrintVersion action.
func (p *Parser) SetVersion(v string) *Parser {
	p.version = v
	return p
}

// Add - Folds the given properties into one option descriptor and registers
// it. An option with no names becomes the positional collector. Every
// failure is a configuration error matched by ErrorSetup.
func (p *Parser) Add(props ...Property) error {
	return p.add(nil, props)
}

// Group - Declares a mutually exclusive group: at most one member may match
// during a single parse.
func (p *Parser) Group() *Group {
	g := &Group{parser: p}
	p.groups = append(p.groups, g)
	return g
}

// RequiredGroup - Declares a mutually exclusive group of which exactly one
// member must match.
func (p *Parser) RequiredGroup() *Group {
	g := p.Group()
	g.required = true
	return g
}

// Group - a mutually exclusive set of options.
type Group struct {
	parser   *Parser
	required bool
	members  []*option.Option
}

// Add - Registers an option as a member of the group.
func (g *Group) Add(props ...Property) error {
	return g.parser.add(g, props)
}

func (p *Parser) add(g *Group, props []Property) error {
	opt := option.New()
	for _, prop := range props {
		if err := prop(opt); err != nil {
			return fmt.Errorf("%w%s", ErrorSetup, err)
		}
	}
	if opt.LongName == "" && opt.ShortName == 0 {
		opt.Positional = true
	}
	if err := opt.Finalize(p.registry); err != nil {
		return fmt.Errorf("%w%s", ErrorSetup, err)
	}
	if opt.Positional {
		if g != nil {
			return fmt.Errorf("%w"+text.ErrorPositionalInGroup, ErrorSetup)
		}
		if p.positional != nil {
			return fmt.Errorf("%w"+text.ErrorMultiplePositional, ErrorSetup)
		}
		p.positional = opt
	} else {
		if opt.LongName != "" {
			if _, ok := p.byLong[opt.LongName]; ok {
				return fmt.Errorf("%w"+text.ErrorDuplicateOption, ErrorSetup, opt.LongName)
			}
		}
		if opt.ShortName != 0 {
			if _, ok := p.byShort[opt.ShortName]; ok {
				return fmt.Errorf("%w"+text.ErrorDuplicateOption, ErrorSetup, string(opt.ShortName))
			}
		}
		if opt.LongName != "" {
			p.byLong[opt.LongName] = opt
		}
		if opt.ShortName != 0 {
			p.byShort[opt.ShortName] = opt
		}
	}
	p.options = append(p.options, opt)
	if g != nil {
		g.members = append(g.members, opt)
		p.groupOf[opt] = g
	}
	Logger.Printf("added option %s\n", opt.DisplayName())
	return nil
}

// lookup - Resolves a user supplied name against long then short names.
func (p *Parser) lookup(name string) *option.Option {
	if opt, ok := p.byLong[name]; ok {
		return opt
	}
	if r := []rune(name); len(r) == 1 {
		if opt, ok := p.byShort[r[0]]; ok {
			return opt
		}
	}
	return nil
}

// Called - Indicates if the option matched during the last parse.
// An undeclared name returns false.
func (p *Parser) Called(name string) bool {
	return p.CalledCount(name) > 0
}

// CalledCount - Number of times the option matched during the last parse.
func (p *Parser) CalledCount(name string) int {
	if opt := p.lookup(name); opt != nil {
		return opt.Called
	}
	return 0
}

// Get - Typed lookup of an option's stored value after a successful parse:
// the converted last applied value(s) when matched, the default otherwise.
// An unknown name or a wrong T is a programming error matched by
// ErrorSetup, never a command line input error.
func Get[T any](p *Parser, name string) (T, error) {
	var zero T
	opt := p.lookup(name)
	if opt == nil {
		return zero, fmt.Errorf("%w"+text.ErrorOptionNotFound, ErrorSetup, name)
	}
	v, err := value.As[T](opt.Result())
	if err != nil {
		return zero, fmt.Errorf("%w"+text.ErrorWrongValueType, ErrorSetup, opt.DisplayName(), err)
	}
	return v, nil
}
