package cmake

import (
	"strings"

	"github.com/dhamidi/cmakels/cmake/registry"
	"github.com/dhamidi/cmakels/cmake/scanner"
)

// ParseForVariables returns the variables defined by set() in code, in
// order of first definition. Names are compared case-insensitively and
// standard variables are left out.
func ParseForVariables(code string) []string {
	return variablesIn(SplitLines(code))
}

func variablesIn(lines []string) []string {
	// 0: looking for set, 1: saw set, 2: saw the opening parenthesis.
	state := 0
	var vars []string
	seen := make(map[string]bool)
	scanner.Walk(lines, func(s scanner.Step) bool {
		switch {
		case s.Token.Kind == scanner.TokenKeyword && s.Token.Command == registry.Set:
			state = 1
		case state == 1 && s.Token.Kind == scanner.TokenOpenParen:
			state = 2
		case state == 2 && s.Token.Kind == scanner.TokenIdentifier:
			state = 0
			name := s.TokenText()
			if name == "ENV" && strings.HasPrefix(s.Text[s.Token.End:], "{") {
				return true
			}
			key := strings.ToUpper(name)
			if !registry.IsStandardVariable(name) && !seen[key] {
				seen[key] = true
				vars = append(vars, name)
			}
		default:
			state = 0
		}
		return true
	})
	return vars
}

// ParseForEnvVariables returns the environment variables assigned with
// set(ENV{NAME} ...).
func ParseForEnvVariables(code string) []string {
	return envVariablesIn(SplitLines(code))
}

func envVariablesIn(lines []string) []string {
	// Walks set ( ENV { NAME, one state per token.
	state := 0
	var vars []string
	seen := make(map[string]bool)
	scanner.Walk(lines, func(s scanner.Step) bool {
		text := s.TokenText()
		switch {
		case s.Token.Kind == scanner.TokenKeyword && s.Token.Command == registry.Set:
			state = 1
		case state == 1 && s.Token.Kind == scanner.TokenOpenParen:
			state = 2
		case state == 2 && s.Token.Kind == scanner.TokenIdentifier && text == "ENV":
			state = 3
		case state == 3 && s.Token.Kind == scanner.TokenOther && text == "{":
			state = 4
		case state == 4 && s.Token.Kind == scanner.TokenIdentifier:
			state = 0
			if !registry.IsStandardEnvVariable(text) && !seen[text] {
				seen[text] = true
				vars = append(vars, text)
			}
		default:
			state = 0
		}
		return true
	})
	return vars
}

// Statement is one top-level command invocation with its arguments.
// Quoted arguments are unquoted; variable references are kept verbatim.
type Statement struct {
	Command registry.CommandID
	Name    string
	Line    int
	Args    []string

	// Closed is false when the argument list runs to the end of the input.
	Closed bool
}

// Arg returns the i-th argument or "".
func (s Statement) Arg(i int) string {
	if i < 0 || i >= len(s.Args) {
		return ""
	}
	return s.Args[i]
}

// Statements splits lines into top-level command invocations.
func Statements(lines []string) []Statement {
	var (
		out     []Statement
		pending *Statement
		current *Statement
		args    argCollector
	)
	scanner.Walk(lines, func(s scanner.Step) bool {
		if current != nil {
			args.add(s)
			if s.Token.Trigger.Has(scanner.TriggerParameterEnd) {
				current.Args = args.done()
				current.Closed = true
				out = append(out, *current)
				current = nil
			}
			return true
		}
		switch s.Token.Kind {
		case scanner.TokenKeyword, scanner.TokenIdentifier:
			pending = &Statement{Command: s.Token.Command, Name: s.TokenText(), Line: s.Line}
		case scanner.TokenOpenParen:
			if s.Token.Trigger.Has(scanner.TriggerParameterStart) && pending != nil {
				current = pending
				args.reset(s.Line)
			}
			pending = nil
		case scanner.TokenWhiteSpace, scanner.TokenComment:
		default:
			pending = nil
		}
		return true
	})
	if current != nil {
		current.Args = args.done()
		out = append(out, *current)
	}
	return out
}

// argCollector accumulates argument texts from the tokens inside an
// argument list. Arguments end at separating whitespace and at line ends
// outside of quoted strings.
type argCollector struct {
	args []string
	cur  strings.Builder
	has  bool
	line int
}

func (c *argCollector) reset(line int) {
	c.args = []string{}
	c.cur.Reset()
	c.has = false
	c.line = line
}

func (c *argCollector) flush() {
	if c.has {
		c.args = append(c.args, unquote(c.cur.String()))
	}
	c.cur.Reset()
	c.has = false
}

// add feeds one token seen inside the argument list.
func (c *argCollector) add(s scanner.Step) {
	if s.Line != c.line {
		if s.Before.InString() {
			c.cur.WriteByte('\n')
		} else {
			c.flush()
		}
		c.line = s.Line
	}
	switch {
	case s.Token.Trigger.Has(scanner.TriggerParameterEnd):
		c.flush()
	case s.Token.Kind == scanner.TokenComment:
	case s.Token.Kind == scanner.TokenWhiteSpace && s.Before.ParenDepth() == 1:
		c.flush()
	default:
		c.cur.WriteString(s.TokenText())
		c.has = true
	}
}

func (c *argCollector) done() []string {
	c.flush()
	return c.args
}

func unquote(arg string) string {
	if len(arg) >= 2 && arg[0] == '"' && arg[len(arg)-1] == '"' {
		return arg[1 : len(arg)-1]
	}
	return strings.TrimPrefix(arg, `"`)
}

// ParseForCacheVariables returns the names declared with option() or
// set(NAME ... CACHE ...).
func ParseForCacheVariables(code string) []string {
	return cacheVariablesIn(SplitLines(code))
}

func cacheVariablesIn(lines []string) []string {
	var vars []string
	seen := make(map[string]bool)
	for _, st := range Statements(lines) {
		name := st.Arg(0)
		switch st.Command {
		case registry.Option:
		case registry.Set:
			if len(st.Args) < 2 || !hasArg(st.Args[1:], "CACHE") {
				continue
			}
		default:
			continue
		}
		if name == "" || registry.IsStandardVariable(name) || seen[name] {
			continue
		}
		seen[name] = true
		vars = append(vars, name)
	}
	return vars
}

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

// ParseForFunctionNames returns the names of functions defined in lines,
// or of macros when macros is true.
func ParseForFunctionNames(lines []string, macros bool) []string {
	want := registry.Function
	if macros {
		want = registry.Macro
	}
	var names []string
	seen := make(map[string]bool)
	for _, st := range Statements(lines) {
		if st.Command != want || len(st.Args) == 0 {
			continue
		}
		key := strings.ToLower(st.Args[0])
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, st.Args[0])
	}
	return names
}

// ParseForFunctionParameters returns the formal parameters of the function
// or macro called name. Names compare case-insensitively like commands.
func ParseForFunctionParameters(lines []string, name string) ([]string, bool) {
	for _, st := range Statements(lines) {
		if st.Command != registry.Function && st.Command != registry.Macro {
			continue
		}
		if len(st.Args) > 0 && strings.EqualFold(st.Args[0], name) {
			return st.Args[1:], true
		}
	}
	return nil, false
}

// ParseForTargetNames returns the targets declared in lines in file order.
// With tests set it returns the names of tests declared with add_test.
func ParseForTargetNames(lines []string, tests bool) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, st := range Statements(lines) {
		switch {
		case tests && st.Command == registry.AddTest:
			if st.Arg(0) == "NAME" {
				add(st.Arg(1))
			} else {
				add(st.Arg(0))
			}
		case !tests && (st.Command == registry.AddExecutable ||
			st.Command == registry.AddLibrary ||
			st.Command == registry.AddCustomTarget):
			add(st.Arg(0))
		}
	}
	return names
}

// Include is a file referenced by include() or find_package().
type Include struct {
	Name string
	Line int

	// Package is set for find_package, whose file is Find<Name>.cmake.
	Package bool
}

// ParseForIncludes returns the files referenced by include() and
// find_package() in lines.
func ParseForIncludes(lines []string) []Include {
	var out []Include
	for _, st := range Statements(lines) {
		name := st.Arg(0)
		if name == "" {
			continue
		}
		switch st.Command {
		case registry.Include:
			out = append(out, Include{Name: name, Line: st.Line})
		case registry.FindPackage:
			out = append(out, Include{Name: name, Line: st.Line, Package: true})
		}
	}
	return out
}
