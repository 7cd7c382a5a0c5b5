package codebase

import (
	"path/filepath"
	"testing"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/dhamidi/cmakels/cmake/registry"
	"github.com/dhamidi/cmakels/cmake/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestTriggerAt(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		line  int
		col   int
		want  cmake.Request
		ok    bool
	}{
		{
			name:  "after paren",
			lines: []string{"file("},
			col:   5,
			want:  cmake.Request{Column: 4, Token: scanner.TokenOpenParen},
			ok:    true,
		},
		{
			name:  "after separator",
			lines: []string{"add_executable(app "},
			col:   19,
			want:  cmake.Request{Column: 18, Token: scanner.TokenWhiteSpace},
			ok:    true,
		},
		{
			name:  "partial argument",
			lines: []string{"add_executable(app ma"},
			col:   21,
			want:  cmake.Request{Column: 18, Token: scanner.TokenWhiteSpace},
			ok:    true,
		},
		{
			name:  "partial variable",
			lines: []string{"message(${CMAKE_"},
			col:   16,
			want:  cmake.Request{Column: 8, Token: scanner.TokenVariableStart},
			ok:    true,
		},
		{
			name:  "env variable",
			lines: []string{"message($ENV{"},
			col:   13,
			want:  cmake.Request{Column: 8, Token: scanner.TokenVariableStartEnv},
			ok:    true,
		},
		{
			name:  "command name",
			lines: []string{"set(A 1)", "add_ex"},
			line:  1,
			col:   6,
			want:  cmake.Request{Line: 1, Column: 0, Token: scanner.TokenIdentifier},
			ok:    true,
		},
		{
			name:  "inside string",
			lines: []string{`message("text`},
			col:   13,
		},
		{
			name:  "start of line",
			lines: []string{"set("},
			col:   0,
		},
		{
			name:  "line out of range",
			lines: []string{"set("},
			line:  3,
			col:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TriggerAt(tt.lines, tt.line, tt.col)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			tt.want.Line = tt.line
			tt.want.Reason = cmake.ReasonMemberSelect
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHoverText(t *testing.T) {
	src := &cmake.Source{
		Lines: cmake.SplitLines("add_subdirectory(src)\nfunction(local_fn a)\nendfunction()\nlocal_fn(1)\nremote_fn()"),
		Symbols: NewIncludeCache(""),
	}
	assert.Equal(t, registry.QuickInfo(registry.AddSubdirectory), hoverText(src, 0, 3))
	assert.Equal(t, "local_fn(a)", hoverText(src, 3, 2))
	assert.Empty(t, hoverText(src, 0, 18), "argument")
	assert.Empty(t, hoverText(src, 4, 2), "unknown function")
	assert.Empty(t, hoverText(src, 9, 0), "past the end")
}

func TestToSignatureHelp(t *testing.T) {
	sig := cmake.SignatureAt(&cmake.Source{Lines: []string{"set(A B C "}}, 0, 9)
	require.NotNil(t, sig)

	help := toSignatureHelp(sig)
	require.Len(t, help.Signatures, 1)
	assert.Equal(t, "set(variable value)", help.Signatures[0].Label)
	assert.Len(t, help.Signatures[0].Parameters, 2)
	require.NotNil(t, help.ActiveParameter)
	assert.Equal(t, protocol.UInteger(2), *help.ActiveParameter)
}

func TestLSPServerCompletion(t *testing.T) {
	t.Setenv(ModulesDirEnv, "")
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"helpers.cmake": helpersCMake,
		"main.cpp":      "",
	})
	path := filepath.Join(dir, "CMakeLists.txt")
	uri := "file://" + path

	ls := NewLSPServer("test", Config{Subdirectories: SubdirectoriesCMakeLists})
	_, err := ls.initialize(nil, &protocol.InitializeParams{RootPath: &dir})
	require.NoError(t, err)
	assert.True(t, ls.codebase.Config().Options().RequireCMakeLists)

	text := "include(helpers.cmake)\nadd_executable(app \nmessage(${"
	require.NoError(t, ls.textDocumentDidOpen(nil, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "cmake", Text: text},
	}))

	complete := func(line, char protocol.UInteger) []string {
		t.Helper()
		res, err := ls.textDocumentCompletion(nil, &protocol.CompletionParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: uri},
				Position:     protocol.Position{Line: line, Character: char},
			},
		})
		require.NoError(t, err)
		items, _ := res.([]protocol.CompletionItem)
		var labels []string
		for _, it := range items {
			labels = append(labels, it.Label)
		}
		return labels
	}

	assert.Contains(t, complete(1, 19), "main.cpp")
	assert.Contains(t, complete(2, 10), "HELPER_VAR")

	help, err := ls.textDocumentSignatureHelp(nil, &protocol.SignatureHelpParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 1, Character: 19},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, help)
	assert.Equal(t, "add_executable(name source1 source2 ...)", help.Signatures[0].Label)

	hover, err := ls.textDocumentHover(nil, &protocol.HoverParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: 1, Character: 2},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, hover)
	content, ok := hover.Contents.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Contains(t, content.Value, "add_executable(")
}
