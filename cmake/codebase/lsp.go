package codebase

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/dhamidi/cmakels/cmake/registry"
	"github.com/dhamidi/cmakels/cmake/scanner"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "cmakels"

type LSPServer struct {
	codebase  *Codebase
	watcher   *IncludeWatcher
	overrides Config
	handler   protocol.Handler
	server    *server.Server
	version   string
}

// NewLSPServer creates a server. Non-zero fields of overrides take
// precedence over the project configuration file and the environment.
func NewLSPServer(version string, overrides Config) *LSPServer {
	ls := &LSPServer{
		version:   version,
		overrides: overrides,
	}

	ls.handler = protocol.Handler{
		Initialize:                ls.initialize,
		Initialized:               ls.initialized,
		Shutdown:                  ls.shutdown,
		SetTrace:                  ls.setTrace,
		TextDocumentDidOpen:       ls.textDocumentDidOpen,
		TextDocumentDidChange:     ls.textDocumentDidChange,
		TextDocumentDidClose:      ls.textDocumentDidClose,
		TextDocumentDidSave:       ls.textDocumentDidSave,
		TextDocumentCompletion:    ls.textDocumentCompletion,
		TextDocumentSignatureHelp: ls.textDocumentSignatureHelp,
		TextDocumentHover:         ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

// loadConfig reads the project file, then the environment, then the
// command-line overrides.
func (ls *LSPServer) loadConfig(rootDir string) *Config {
	config, path, err := LoadConfigFrom(rootDir)
	if err != nil {
		logger().Warningf("%s", err)
		config = DefaultConfig()
	} else if path != "" {
		logger().Infof("using %s", path)
	}
	config.ApplyEnv()
	if ls.overrides.ModulesDir != "" {
		config.ModulesDir = ls.overrides.ModulesDir
	}
	if ls.overrides.Subdirectories != "" {
		config.Subdirectories = ls.overrides.Subdirectories
	}
	if ls.overrides.WatchInterval > 0 {
		config.WatchInterval = ls.overrides.WatchInterval
	}
	return config
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.codebase = New(rootDir, ls.loadConfig(rootDir))

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"(", " ", "{"},
	}
	capabilities.SignatureHelpProvider = &protocol.SignatureHelpOptions{
		TriggerCharacters: []string{"(", " "},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.codebase.ScanAll(); err != nil {
		logger().Warningf("scan %s: %s", ls.codebase.RootDir(), err)
	}
	ls.watcher = NewIncludeWatcher(ls.codebase)
	ls.watcher.Start()
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		ls.watcher.Stop()
		ls.watcher = nil
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.UpdateFile(path, []byte(params.TextDocument.Text))
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.codebase.UpdateFile(path, []byte(textChange.Text))
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	// A closed buffer falls back to its contents on disk.
	if err := ls.codebase.ScanFile(path); err != nil {
		ls.codebase.RemoveFile(path)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if params.Text != nil {
		ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else {
		ls.codebase.ScanFile(path)
	}
	ls.codebase.RefreshIncludes(path)
	return nil
}

func (ls *LSPServer) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	src := ls.codebase.Source(path)
	if src == nil {
		return nil, nil
	}

	req, ok := TriggerAt(src.Lines, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}
	decls := cmake.Complete(src, req)
	if decls.Len() == 0 {
		return nil, nil
	}

	var items []protocol.CompletionItem
	for _, it := range decls.Items() {
		kind := toProtocolKind(it.Kind)
		detail := it.Kind.String()
		items = append(items, protocol.CompletionItem{
			Label:  it.Text,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items, nil
}

func (ls *LSPServer) textDocumentSignatureHelp(ctx *glsp.Context, params *protocol.SignatureHelpParams) (*protocol.SignatureHelp, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	sig := ls.codebase.SignatureAt(path, int(params.Position.Line), int(params.Position.Character)-1)
	if sig == nil {
		return nil, nil
	}
	return toSignatureHelp(sig), nil
}

func toSignatureHelp(sig *cmake.Signature) *protocol.SignatureHelp {
	parameters := make([]protocol.ParameterInformation, len(sig.Parameters))
	for i, p := range sig.Parameters {
		parameters[i] = protocol.ParameterInformation{Label: p.String()}
	}

	// An out-of-range index tells the client that no parameter is active.
	active := protocol.UInteger(len(parameters))
	if sig.ActiveParameter >= 0 {
		active = protocol.UInteger(sig.ActiveParameter)
	}
	var first protocol.UInteger
	return &protocol.SignatureHelp{
		Signatures: []protocol.SignatureInformation{{
			Label:      sig.Label(),
			Parameters: parameters,
		}},
		ActiveSignature: &first,
		ActiveParameter: &active,
	}
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	src := ls.codebase.Source(path)
	if src == nil {
		return nil, nil
	}
	info := hoverText(src, int(params.Position.Line), int(params.Position.Character))
	if info == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: "```cmake\n" + info + "\n```",
		},
	}, nil
}

// hoverText returns the one-line summary of the command named at a
// position: built-in commands from the registry, functions and macros from
// the buffer or its includes.
func hoverText(src *cmake.Source, line, col int) string {
	if line < 0 || line >= len(src.Lines) {
		return ""
	}
	text := src.Lines[line]
	sc := scanner.New(text, scanner.StateAt(src.Lines, line))
	for {
		before := sc.State()
		tok, ok := sc.Next()
		if !ok {
			return ""
		}
		if !tok.Contains(col) {
			continue
		}
		if before.InsideParens() {
			return ""
		}
		switch tok.Kind {
		case scanner.TokenKeyword:
			return registry.QuickInfo(tok.Command)
		case scanner.TokenIdentifier:
			name := tok.Text(text)
			params, ok := cmake.ParseForFunctionParameters(src.Lines, name)
			if !ok && src.Symbols != nil {
				params, ok = src.Symbols.FunctionParameters(name)
			}
			if !ok {
				return ""
			}
			ps := make([]registry.Parameter, len(params))
			for i, p := range params {
				ps[i] = registry.Parameter{Name: p}
			}
			return registry.FormatSignature(name, ps)
		}
		return ""
	}
}

// TriggerAt maps a cursor position to the request for the token that opens
// the candidate list around it. Typing a partial word after a trigger keeps
// the list of the trigger token, which the client then filters.
func TriggerAt(lines []string, line, col int) (cmake.Request, bool) {
	if line < 0 || line >= len(lines) || col <= 0 {
		return cmake.Request{}, false
	}
	text := lines[line]
	sc := scanner.New(text, scanner.StateAt(lines, line))

	var prev, cur scanner.Token
	var curBefore scanner.State
	found := false
	for {
		before := sc.State()
		tok, ok := sc.Next()
		if !ok || tok.Start >= col {
			break
		}
		prev, cur, curBefore = cur, tok, before
		found = true
	}
	if !found {
		return cmake.Request{}, false
	}

	req := cmake.Request{Line: line, Reason: cmake.ReasonMemberSelect}
	switch cur.Kind {
	case scanner.TokenOpenParen, scanner.TokenWhiteSpace,
		scanner.TokenVariableStart, scanner.TokenVariableStartEnv, scanner.TokenVariableStartCache:
		req.Column, req.Token = cur.Start, cur.Kind
		return req, true
	case scanner.TokenKeyword, scanner.TokenIdentifier:
		if !curBefore.InsideParens() {
			req.Column, req.Token = cur.Start, cur.Kind
			return req, true
		}
		switch prev.Kind {
		case scanner.TokenOpenParen, scanner.TokenWhiteSpace,
			scanner.TokenVariableStart, scanner.TokenVariableStartEnv, scanner.TokenVariableStartCache:
			if prev.End == cur.Start {
				req.Column, req.Token = prev.Start, prev.Kind
				return req, true
			}
		}
	}
	return cmake.Request{}, false
}

func toProtocolKind(kind cmake.ItemKind) protocol.CompletionItemKind {
	switch kind {
	case cmake.ItemCommand:
		return protocol.CompletionItemKindKeyword
	case cmake.ItemProperty:
		return protocol.CompletionItemKindProperty
	case cmake.ItemTarget:
		return protocol.CompletionItemKindModule
	case cmake.ItemVariable:
		return protocol.CompletionItemKindVariable
	case cmake.ItemReference:
		return protocol.CompletionItemKindFile
	case cmake.ItemFunction:
		return protocol.CompletionItemKindFunction
	default:
		return protocol.CompletionItemKindText
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
