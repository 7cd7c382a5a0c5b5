package cmake

import (
	"github.com/dhamidi/cmakels/cmake/registry"
	"github.com/dhamidi/cmakels/cmake/scanner"
)

// Context describes the command enclosing a position.
type Context struct {
	// Command is NoCommand outside an argument list and for invocations of
	// user-defined functions, which are identified by Name.
	Command registry.CommandID
	Name    string
	Depth   int

	// Args holds the arguments completed before the position.
	Args []string

	// Token is the token starting exactly at the position, if Found.
	Token scanner.Token
	Found bool
}

// Inside reports whether the position is within an argument list.
func (c Context) Inside() bool {
	return c.Depth > 0
}

// CommandAtPoint scans lines up to the token starting at (line, col) and
// recovers the enclosing command together with the arguments that precede
// the position. Tokens starting after col are not consumed.
func CommandAtPoint(lines []string, line, col int) Context {
	var ctx Context
	if len(lines) == 0 || line < 0 {
		return ctx
	}
	if line >= len(lines) {
		line = len(lines) - 1
	}

	var (
		last   scanner.State
		name   string
		inside bool
		args   argCollector
	)
	scanner.Walk(lines[:line+1], func(s scanner.Step) bool {
		if s.Line == line && s.Token.Start > col {
			return false
		}
		if inside {
			args.add(s)
			if s.Token.Trigger.Has(scanner.TriggerParameterEnd) {
				inside = false
			}
		} else {
			switch {
			case s.Token.Kind == scanner.TokenKeyword || s.Token.Kind == scanner.TokenIdentifier:
				name = s.TokenText()
			case s.Token.Trigger.Has(scanner.TriggerParameterStart):
				inside = true
				args.reset(s.Line)
			}
		}
		last = s.After
		if s.Line == line && s.Token.Start == col {
			ctx.Token = s.Token
			ctx.Found = true
			return false
		}
		return true
	})

	ctx.Depth = last.ParenDepth()
	if inside {
		ctx.Command = last.LastCommand()
		ctx.Name = name
		ctx.Args = append([]string{}, args.args...)
	} else if ctx.Found && ctx.Depth == 0 {
		ctx.Command = ctx.Token.Command
		ctx.Name = ctx.Token.Text(lines[line])
	}
	return ctx
}
