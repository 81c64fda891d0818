// This file is part of declarg.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package declarg

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(t *testing.T, commandLine string) []string {
	t.Helper()
	args, err := shlex.Split(commandLine)
	require.NoError(t, err)
	return args
}

func TestFlagSpellings(t *testing.T) {
	for _, commandLine := range []string{"--verbose", "-v"} {
		t.Run(commandLine, func(t *testing.T) {
			p := New("prog")
			var verbose bool
			require.NoError(t, p.Add(Long("verbose"), Short('v'), StoreTrueVar(&verbose)))
			require.NoError(t, p.Parse(split(t, commandLine)))
			assert.True(t, verbose)
		})
	}
}

func TestValueSpellings(t *testing.T) {
	for _, commandLine := range []string{"--count 5", "--count=5", "-c 5"} {
		t.Run(commandLine, func(t *testing.T) {
			p := New("prog")
			require.NoError(t, p.Add(Long("count"), Short('c'), Store[int]()))
			require.NoError(t, p.Parse(split(t, commandLine)))
			n, err := Get[int](p, "count")
			require.NoError(t, err)
			assert.Equal(t, 5, n)
		})
	}
}

func TestCombinedShortFlags(t *testing.T) {
	for _, commandLine := range []string{"-a -b", "-ab", "-ba"} {
		t.Run(commandLine, func(t *testing.T) {
			p := New("prog")
			var a, b bool
			require.NoError(t, p.Add(Short('a'), StoreTrueVar(&a)))
			require.NoError(t, p.Add(Short('b'), StoreTrueVar(&b)))
			require.NoError(t, p.Parse(split(t, commandLine)))
			assert.True(t, a)
			assert.True(t, b)
		})
	}
}

func TestCombinedShortFlagsWithTrailingArgument(t *testing.T) {
	p := New("prog")
	var verbose bool
	require.NoError(t, p.Add(Short('v'), StoreTrueVar(&verbose)))
	require.NoError(t, p.Add(Short('c'), Store[int]()))
	require.NoError(t, p.Parse(split(t, "-vc 5")))
	assert.True(t, verbose)
	n, err := Get[int](p, "c")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestAmbiguousCombinedShortFlags(t *testing.T) {
	p := New("prog")
	var verbose bool
	require.NoError(t, p.Add(Short('v'), StoreTrueVar(&verbose)))
	require.NoError(t, p.Add(Short('c'), Store[int]()))
	err := p.Parse(split(t, "-cv 5"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrorParsing))
	assert.Equal(t, "ambiguous combined flags '-cv': option '-c' requires an argument and is not last", err.Error())
	// the whole cluster is rejected, nothing before the offender matched
	assert.False(t, verbose)
	assert.False(t, p.Called("v"))
}

func TestLastValueWins(t *testing.T) {
	p := New("prog")
	require.NoError(t, p.Add(Long("count"), Store[int]()))
	require.NoError(t, p.Parse(split(t, "--count 1 --count 2")))
	n, err := Get[int](p, "count")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, p.CalledCount("count"))
}

func TestCollect(t *testing.T) {
	p := New("prog")
	var hosts []string
	require.NoError(t, p.Add(Long("host"), Short('H'), CollectVar(&hosts)))
	require.NoError(t, p.Parse(split(t, "--host alpha -H beta --host=gamma")))
	want := []string{"alpha", "beta", "gamma"}
	if diff := cmp.Diff(want, hosts); diff != "" {
		t.Errorf("collected hosts mismatch (-want +got):\n%s", diff)
	}
	got, err := Get[[]string](p, "host")
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stored hosts mismatch (-want +got):\n%s", diff)
	}
}

func TestInputErrors(t *testing.T) {
	tests := []struct {
		name        string
		commandLine string
		message     string
	}{
		{"unknown long", "--nope", "unknown option '--nope'"},
		{"unknown short", "-x", "unknown option '-x'"},
		{"unknown in cluster", "-vx", "unknown option '-x'"},
		{"double dash", "--", "unknown option '--'"},
		{"missing argument", "--count", "missing argument for option '--count'"},
		{"missing argument short", "-c", "missing argument for option '--count'"},
		{"flag with inline argument", "--verbose=true", "option '--verbose' does not take an argument"},
		{"unexpected positional", "stray", "unexpected positional argument 'stray'"},
		{"conversion failure", "--count abc", "cannot convert 'abc' to int"},
		{"constraint violation", "--count -5", "value '-5' for --count violates constraint: minimum value 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("prog")
			require.NoError(t, p.Add(Long("verbose"), Short('v'), StoreTrue()))
			require.NoError(t, p.Add(Long("count"), Short('c'), Store[int](), Minimum(0)))
			err := p.Parse(split(t, tt.commandLine))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrorParsing))
			assert.False(t, errors.Is(err, ErrorSetup))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestNegativeNumbersArePositional(t *testing.T) {
	p := New("prog")
	var ints []int
	require.NoError(t, p.Add(CollectVar(&ints)))
	require.NoError(t, p.Parse(split(t, "-5 3 -1")))
	if diff := cmp.Diff([]int{-5, 3, -1}, ints); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestOccurrenceRequirements(t *testing.T) {
	tests := []struct {
		name        string
		props       []Property
		commandLine string
		message     string
	}{
		{"required missing", []Property{Required()}, "", "--in must be given at least 1 time(s), got 0"},
		{"at least", []Property{AtLeast(2)}, "--in a", "--in must be given at least 2 time(s), got 1"},
		{"at most", []Property{AtMost(1)}, "--in a --in b", "--in may be given at most 1 time(s), got 2"},
		{"exactly", []Property{Exactly(2)}, "--in a --in b --in c", "--in may be given at most 2 time(s), got 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("prog")
			props := append([]Property{Long("in"), Collect[string]()}, tt.props...)
			require.NoError(t, p.Add(props...))
			err := p.Parse(split(t, tt.commandLine))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrorParsing))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestCountConstraints(t *testing.T) {
	p := New("prog")
	require.NoError(t, p.Add(Long("pair"), Collect[int](), ExactCount(2)))
	require.NoError(t, p.Parse(split(t, "--pair 1 --pair 2")))

	err := p.Parse(split(t, "--pair 1"))
	require.Error(t, err)
	assert.Equal(t, "--pair violates constraint: exactly 2 element(s) (got 1)", err.Error())
}

func TestExclusiveGroups(t *testing.T) {
	build := func(t *testing.T, required bool) *Parser {
		t.Helper()
		p := New("prog")
		g := p.Group()
		if required {
			g = p.RequiredGroup()
		}
		require.NoError(t, g.Add(Long("json"), StoreConst("json")))
		require.NoError(t, g.Add(Long("yaml"), StoreConst("yaml")))
		require.NoError(t, p.Add(Long("verbose"), StoreTrue()))
		return p
	}

	t.Run("no member given", func(t *testing.T) {
		require.NoError(t, build(t, false).Parse(split(t, "--verbose")))
	})
	t.Run("one member given", func(t *testing.T) {
		p := build(t, false)
		require.NoError(t, p.Parse(split(t, "--yaml")))
		format, err := Get[string](p, "yaml")
		require.NoError(t, err)
		assert.Equal(t, "yaml", format)
	})
	t.Run("two members given", func(t *testing.T) {
		err := build(t, false).Parse(split(t, "--json --yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrorParsing))
		assert.Equal(t, "mutually exclusive options '--json' and '--yaml' both given", err.Error())
	})
	t.Run("same member twice is not a conflict", func(t *testing.T) {
		require.NoError(t, build(t, false).Parse(split(t, "--json --json")))
	})
	t.Run("required group missing", func(t *testing.T) {
		err := build(t, true).Parse(split(t, "--verbose"))
		require.Error(t, err)
		assert.Equal(t, "exactly one of --json, --yaml must be given", err.Error())
	})
	t.Run("required group satisfied", func(t *testing.T) {
		require.NoError(t, build(t, true).Parse(split(t, "--json")))
	})
}

func TestDefaults(t *testing.T) {
	p := New("prog")
	var count int
	var tags []string
	require.NoError(t, p.Add(Long("count"), StoreVar(&count), Default(42)))
	require.NoError(t, p.Add(Long("tag"), CollectVar(&tags), Default([]string{"base"})))
	require.NoError(t, p.Parse(nil))

	assert.Equal(t, 42, count)
	if diff := cmp.Diff([]string{"base"}, tags); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	n, err := Get[int](p, "count")
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestDefaultNotInstalledWhenMatched(t *testing.T) {
	p := New("prog")
	var count int
	require.NoError(t, p.Add(Long("count"), StoreVar(&count), Default(42)))
	require.NoError(t, p.Parse(split(t, "--count 3")))
	assert.Equal(t, 3, count)
}

func TestRegistryReuse(t *testing.T) {
	p := New("prog")
	var verbose bool
	require.NoError(t, p.Add(Long("verbose"), StoreTrueVar(&verbose)))
	require.NoError(t, p.Add(Long("count"), Store[int](), Default(0)))

	require.NoError(t, p.Parse(split(t, "--verbose --count 5")))
	assert.Equal(t, 1, p.CalledCount("verbose"))
	n, _ := Get[int](p, "count")
	assert.Equal(t, 5, n)

	verbose = false
	require.NoError(t, p.Parse(nil))
	assert.Equal(t, 0, p.CalledCount("verbose"))
	assert.False(t, verbose)
	n, _ = Get[int](p, "count")
	assert.Equal(t, 0, n)
}

func TestNothingStoredOnFailure(t *testing.T) {
	p := New("prog")
	var count int
	var names []string
	require.NoError(t, p.Add(Long("count"), StoreVar(&count), Default(42)))
	require.NoError(t, p.Add(Long("name"), CollectVar(&names)))
	err := p.Parse(split(t, "--name a --count bad"))
	require.Error(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, names)
}

func TestPrintActions(t *testing.T) {
	setWriter := func(t *testing.T) *bytes.Buffer {
		t.Helper()
		buf := &bytes.Buffer{}
		saved := Writer
		Writer = buf
		t.Cleanup(func() { Writer = saved })
		return buf
	}
	build := func(t *testing.T) *Parser {
		t.Helper()
		p := New("prog")
		p.Self("prog", "A test program.")
		p.SetVersion("1.2.3")
		require.NoError(t, p.Add(Long("help"), Short('h'), PrintHelp()))
		require.NoError(t, p.Add(Long("usage"), PrintUsage()))
		require.NoError(t, p.Add(Long("version"), PrintVersion("")))
		require.NoError(t, p.Add(Long("in"), Store[string](), Required()))
		return p
	}

	t.Run("help short-circuits validation", func(t *testing.T) {
		buf := setWriter(t)
		p := build(t)
		// --in is required but --help still wins
		err := p.Parse(split(t, "--help"))
		assert.True(t, errors.Is(err, ErrorHelpCalled))
		assert.Equal(t, p.Help(), buf.String())
	})
	t.Run("usage", func(t *testing.T) {
		buf := setWriter(t)
		p := build(t)
		err := p.Parse(split(t, "--usage"))
		assert.True(t, errors.Is(err, ErrorHelpCalled))
		assert.Equal(t, p.Usage(), buf.String())
	})
	t.Run("version", func(t *testing.T) {
		buf := setWriter(t)
		p := build(t)
		err := p.Parse(split(t, "--version"))
		assert.True(t, errors.Is(err, ErrorHelpCalled))
		assert.Equal(t, "prog 1.2.3\n", buf.String())
	})
	t.Run("version from action", func(t *testing.T) {
		buf := setWriter(t)
		p := New("prog")
		require.NoError(t, p.Add(Long("version"), PrintVersion("2.0.0")))
		err := p.Parse(split(t, "--version"))
		assert.True(t, errors.Is(err, ErrorHelpCalled))
		assert.Equal(t, "prog 2.0.0\n", buf.String())
	})
}
