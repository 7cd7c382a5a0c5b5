package cmake

import (
	"strings"

	"github.com/dhamidi/cmakels/cmake/registry"
	"github.com/dhamidi/cmakels/cmake/scanner"
)

// Span is a range of text. Columns are byte offsets; EndCol is exclusive.
type Span struct {
	StartLine int `json:"startLine"`
	StartCol  int `json:"startCol"`
	EndLine   int `json:"endLine"`
	EndCol    int `json:"endCol"`
}

func tokenSpan(s scanner.Step) Span {
	return Span{StartLine: s.Line, StartCol: s.Token.Start, EndLine: s.Line, EndCol: s.Token.End}
}

// Signature is a call tip for the command around a position.
type Signature struct {
	Name       string               `json:"name"`
	Command    registry.CommandID   `json:"-"`
	Subcommand string               `json:"subcommand,omitempty"`
	Parameters []registry.Parameter `json:"parameters"`
	Delimiter  string               `json:"delimiter"`

	NameSpan  Span   `json:"nameSpan"`
	StartSpan Span   `json:"startSpan"`
	EndSpan   *Span  `json:"endSpan,omitempty"`
	NextSpans []Span `json:"nextSpans"`

	// ActiveParameter indexes Parameters, or is -1 when the position is
	// past the last parameter.
	ActiveParameter int `json:"activeParameter"`
}

// Label renders the signature, e.g. "file(READ filename variable ...)".
func (s *Signature) Label() string {
	return registry.FormatSignature(s.Name, s.Parameters)
}

// SignatureAt returns the call tip for the argument list enclosing
// (line, col), or nil when the position is outside any argument list or no
// signature is known for the command. Tokens starting at or before col are
// consumed, so a closing parenthesis at col yields a tip with EndSpan set.
func SignatureAt(src *Source, line, col int) (sig *Signature) {
	defer func() {
		if r := recover(); r != nil {
			logger().Errorf("signature at %s:%d:%d: %v", src.Path, line, col, r)
			sig = nil
		}
	}()
	lines := src.Lines
	if len(lines) == 0 || line < 0 {
		return nil
	}
	if line >= len(lines) {
		line = len(lines) - 1
	}

	var (
		cur      Signature
		nameSpan Span
		name     string
		inside   bool
		closed   bool // the argument list ends at the position
		args     argCollector
	)
	scanner.Walk(lines[:line+1], func(s scanner.Step) bool {
		if s.Line == line && s.Token.Start > col {
			return false
		}
		closed = false
		if !inside {
			switch {
			case s.Token.Kind == scanner.TokenKeyword || s.Token.Kind == scanner.TokenIdentifier:
				name = s.TokenText()
				nameSpan = tokenSpan(s)
			case s.Token.Trigger.Has(scanner.TriggerParameterStart):
				inside = true
				args.reset(s.Line)
				cur = Signature{
					Name:      name,
					Command:   s.After.LastCommand(),
					NameSpan:  nameSpan,
					StartSpan: tokenSpan(s),
				}
			}
			return true
		}
		args.add(s)
		switch {
		case s.Token.Trigger.Has(scanner.TriggerParameterNext):
			cur.NextSpans = append(cur.NextSpans, tokenSpan(s))
		case s.Token.Trigger.Has(scanner.TriggerParameterEnd):
			end := tokenSpan(s)
			cur.EndSpan = &end
			inside = false
			closed = s.Line == line && s.Token.Start == col
		}
		return true
	})
	if !inside && !closed {
		return nil
	}

	prior := args.args
	params, sub, ok := signatureParameters(src, cur.Command, cur.Name, prior)
	if !ok {
		return nil
	}
	if sub != "" {
		cur.Subcommand = sub
		params = append([]registry.Parameter{{Name: sub}}, params...)
	}
	cur.Parameters = params
	cur.Delimiter = " "
	cur.ActiveParameter = activeParameter(params, len(prior))
	return &cur
}

func signatureParameters(src *Source, id registry.CommandID, name string, prior []string) ([]registry.Parameter, string, bool) {
	if id != registry.NoCommand {
		if registry.HasSubcommands(id) && len(prior) > 0 {
			if ps, ok := registry.SubcommandParameters(id, prior[0]); ok {
				return ps, strings.ToUpper(prior[0]), true
			}
		}
		if registry.HasParameters(id) {
			return registry.Parameters(id), "", true
		}
		return nil, "", false
	}

	formals, ok := ParseForFunctionParameters(src.Lines, name)
	if !ok && src.Symbols != nil {
		formals, ok = src.Symbols.FunctionParameters(name)
	}
	if !ok {
		return nil, "", false
	}
	ps := make([]registry.Parameter, len(formals))
	for i, f := range formals {
		ps[i] = registry.Parameter{Name: f}
	}
	return ps, "", true
}

func activeParameter(params []registry.Parameter, index int) int {
	if index < len(params) {
		return index
	}
	if n := len(params); n > 0 && params[n-1].Variadic {
		return n - 1
	}
	return -1
}
