package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/cmakels/cmake"
)

type JSONEncoder struct {
	w     io.Writer
	value any
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(v any) error {
	e.value = v
	return encode(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := e.build()
	if err != nil {
		return nil, err
	}
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}

type jsonItem struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

type jsonSignature struct {
	Label           string       `json:"label"`
	Parameters      []string     `json:"parameters"`
	ActiveParameter int          `json:"activeParameter"`
	NameSpan        cmake.Span   `json:"nameSpan"`
	StartSpan       cmake.Span   `json:"startSpan"`
	EndSpan         *cmake.Span  `json:"endSpan,omitempty"`
	NextSpans       []cmake.Span `json:"nextSpans"`
}

type jsonToken struct {
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Text    string `json:"text"`
	Trigger string `json:"trigger,omitempty"`
	Command string `json:"command,omitempty"`
}

type jsonSymbols struct {
	Path           string            `json:"path"`
	Variables      []string          `json:"variables"`
	EnvVariables   []string          `json:"envVariables"`
	CacheVariables []string          `json:"cacheVariables"`
	Functions      []string          `json:"functions"`
	Macros         []string          `json:"macros"`
	Targets        []string          `json:"targets"`
	Tests          []string          `json:"tests"`
	Includes       []jsonInclude     `json:"includes"`
	Resolved       map[string]string `json:"resolved,omitempty"`
}

type jsonInclude struct {
	Name    string `json:"name"`
	Line    int    `json:"line"`
	Package bool   `json:"package,omitempty"`
}

func (e *JSONEncoder) build() (any, error) {
	switch v := e.value.(type) {
	case *cmake.Declarations:
		items := []jsonItem{}
		for _, it := range v.Items() {
			items = append(items, jsonItem{Text: it.Text, Kind: it.Kind.String()})
		}
		return items, nil
	case *cmake.Signature:
		if v == nil {
			return nil, nil
		}
		params := make([]string, len(v.Parameters))
		for i, p := range v.Parameters {
			params[i] = p.String()
		}
		return jsonSignature{
			Label:           v.Label(),
			Parameters:      params,
			ActiveParameter: v.ActiveParameter,
			NameSpan:        v.NameSpan,
			StartSpan:       v.StartSpan,
			EndSpan:         v.EndSpan,
			NextSpans:       append([]cmake.Span{}, v.NextSpans...),
		}, nil
	case []TokenLine:
		toks := []jsonToken{}
		for _, l := range v {
			for _, tok := range l.Tokens {
				jt := jsonToken{
					Line:  l.Line,
					Kind:  tok.Kind.String(),
					Start: tok.Start,
					End:   tok.End,
					Text:  tok.Text(l.Text),
				}
				if tok.Trigger != 0 {
					jt.Trigger = tok.Trigger.String()
				}
				if tok.Command.Valid() {
					jt.Command = tok.Command.Name()
				}
				toks = append(toks, jt)
			}
		}
		return toks, nil
	case *Symbols:
		out := jsonSymbols{
			Path:           v.Path,
			Variables:      nonNil(v.Variables),
			EnvVariables:   nonNil(v.EnvVariables),
			CacheVariables: nonNil(v.CacheVariables),
			Functions:      nonNil(v.Functions),
			Macros:         nonNil(v.Macros),
			Targets:        nonNil(v.Targets),
			Tests:          nonNil(v.Tests),
			Includes:       []jsonInclude{},
			Resolved:       v.Resolved,
		}
		for _, inc := range v.Includes {
			out.Includes = append(out.Includes, jsonInclude{Name: inc.Name, Line: inc.Line + 1, Package: inc.Package})
		}
		return out, nil
	}
	return nil, fmt.Errorf("cannot encode %T", e.value)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
