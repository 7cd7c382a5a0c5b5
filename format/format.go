// Package format prints engine results for the command line.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/dhamidi/cmakels/cmake/scanner"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(v any) error
}

// TokenLine is the scan of one line.
type TokenLine struct {
	Line   int
	Text   string
	Tokens []scanner.Token
}

// Symbols summarizes what a script defines and includes.
type Symbols struct {
	Path           string
	Variables      []string
	EnvVariables   []string
	CacheVariables []string
	Functions      []string
	Macros         []string
	Targets        []string
	Tests          []string
	Includes       []cmake.Include

	// Resolved maps include names to the files they resolved to.
	Resolved map[string]string
}

// New returns the encoder called name, "json" or "line".
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", name)
}

// encode marshals m and writes the result to w.
func encode(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
