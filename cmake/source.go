// Package cmake answers "what belongs here" for a position in a CMake
// script: it recovers the enclosing command and its typed arguments from the
// token stream and turns them into completion candidates or call tips.
package cmake

import (
	"strings"

	"github.com/dhamidi/cmakels/cmake/scanner"
	"github.com/tliron/commonlog"
)

// logger is resolved on use so that a backend configured by main applies.
func logger() commonlog.Logger {
	return commonlog.GetLogger("cmakels.cmake")
}

// Options is host configuration consulted by some strategies.
type Options struct {
	// RequireCMakeLists limits subdirectory candidates to directories that
	// contain a CMakeLists.txt.
	RequireCMakeLists bool

	// ModulesDir is the shared CMake modules directory, e.g.
	// /usr/share/cmake/Modules. Empty disables module lookups.
	ModulesDir string
}

// Symbols exposes names defined in files included by the current buffer.
type Symbols interface {
	Variables() []string
	EnvVariables() []string
	CacheVariables() []string
	Functions() []string
	Macros() []string
	FunctionParameters(name string) ([]string, bool)
}

// Source is a buffer together with everything a request may consult.
type Source struct {
	Path    string
	Lines   []string
	Symbols Symbols
	Options Options
}

// NewSource splits content into lines.
func NewSource(path string, content []byte) *Source {
	return &Source{Path: path, Lines: SplitLines(string(content))}
}

// Text returns the buffer joined with newlines.
func (s *Source) Text() string {
	return strings.Join(s.Lines, "\n")
}

// SplitLines splits text into lines, dropping the line terminators.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Reason is why a request was made.
type Reason int

const (
	ReasonMemberSelect Reason = iota
	ReasonParameterInfo
)

func (r Reason) String() string {
	switch r {
	case ReasonMemberSelect:
		return "MemberSelect"
	case ReasonParameterInfo:
		return "ParameterInfo"
	}
	return "Unknown"
}

// Request identifies the token that triggered a request. Line is zero
// based; Column is the byte offset at which the triggering token starts.
type Request struct {
	Line   int
	Column int
	Reason Reason
	Token  scanner.TokenKind
}

// Result holds whichever answer the request's reason asked for.
type Result struct {
	Declarations *Declarations
	Signature    *Signature
}

// Parse answers a request. Nothing escapes as a panic: malformed input
// degrades to an empty result.
func Parse(src *Source, req Request) Result {
	switch req.Reason {
	case ReasonMemberSelect:
		return Result{Declarations: Complete(src, req)}
	case ReasonParameterInfo:
		return Result{Signature: SignatureAt(src, req.Line, req.Column)}
	}
	return Result{}
}
