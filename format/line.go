package format

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dhamidi/cmakels/cmake"
	"golang.org/x/exp/maps"
)

// LineEncoder writes one tab-separated record per line.
type LineEncoder struct {
	w     io.Writer
	value any
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(v any) error {
	e.value = v
	return encode(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder

	switch v := e.value.(type) {
	case *cmake.Declarations:
		for _, it := range v.Items() {
			fmt.Fprintf(&sb, "%s\t%s\n", it.Kind, it.Text)
		}
	case *cmake.Signature:
		if v == nil {
			break
		}
		fmt.Fprintf(&sb, "signature\t%s\n", v.Label())
		for i, p := range v.Parameters {
			marker := ""
			if i == v.ActiveParameter {
				marker = "*"
			}
			fmt.Fprintf(&sb, "parameter\t%d\t%s%s\n", i, p, marker)
		}
	case []TokenLine:
		for _, l := range v {
			for _, tok := range l.Tokens {
				fmt.Fprintf(&sb, "%d:%d-%d\t%s\t%q\t%s\n",
					l.Line+1, tok.Start, tok.End, tok.Kind, tok.Text(l.Text), tok.Trigger)
			}
		}
	case *Symbols:
		e.writeSymbols(&sb, v)
	default:
		return nil, fmt.Errorf("cannot encode %T", e.value)
	}

	return []byte(sb.String()), nil
}

func (e *LineEncoder) writeSymbols(sb *strings.Builder, s *Symbols) {
	groups := []struct {
		kind  string
		names []string
	}{
		{"variable", s.Variables},
		{"env", s.EnvVariables},
		{"cache", s.CacheVariables},
		{"function", s.Functions},
		{"macro", s.Macros},
		{"target", s.Targets},
		{"test", s.Tests},
	}
	for _, g := range groups {
		for _, name := range g.names {
			fmt.Fprintf(sb, "%s\t%s\n", g.kind, name)
		}
	}
	for _, inc := range s.Includes {
		kind := "include"
		if inc.Package {
			kind = "package"
		}
		fmt.Fprintf(sb, "%s\t%s\t%d\n", kind, inc.Name, inc.Line+1)
	}
	names := maps.Keys(s.Resolved)
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(sb, "resolved\t%s\t%s\n", name, s.Resolved[name])
	}
}
