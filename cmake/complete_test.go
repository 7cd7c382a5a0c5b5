package cmake

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/dhamidi/cmakels/cmake/registry"
	"github.com/dhamidi/cmakels/cmake/scanner"
	"kr.dev/diff"
)

// writeTree creates the named files under a temporary directory. Names
// ending in "/" become directories.
func writeTree(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func sourceIn(dir string, text string) *Source {
	return &Source{Path: filepath.Join(dir, "CMakeLists.txt"), Lines: SplitLines(text)}
}

// at builds a request for the trigger token ending the last line.
func at(src *Source, kind scanner.TokenKind) Request {
	line := len(src.Lines) - 1
	return Request{Line: line, Column: len(src.Lines[line]) - 1, Reason: ReasonMemberSelect, Token: kind}
}

type fakeSymbols struct {
	vars, env, cache, funcs, macros []string
	params                          map[string][]string
}

func (f fakeSymbols) Variables() []string      { return f.vars }
func (f fakeSymbols) EnvVariables() []string   { return f.env }
func (f fakeSymbols) CacheVariables() []string { return f.cache }
func (f fakeSymbols) Functions() []string      { return f.funcs }
func (f fakeSymbols) Macros() []string         { return f.macros }
func (f fakeSymbols) FunctionParameters(name string) ([]string, bool) {
	ps, ok := f.params[name]
	return ps, ok
}

type panicSymbols struct{ fakeSymbols }

func (panicSymbols) Variables() []string { panic("broken include cache") }

func count(texts []string, want string) int {
	n := 0
	for _, s := range texts {
		if s == want {
			n++
		}
	}
	return n
}

func TestCompleteVariables(t *testing.T) {
	src := &Source{
		Lines:   SplitLines("set(FOO \"bar\")\nset(FOO \"baz\")\nmessage(${"),
		Symbols: fakeSymbols{vars: []string{"FROM_INCLUDE", "FOO"}},
	}
	req := Request{Line: 2, Column: 8, Reason: ReasonMemberSelect, Token: scanner.TokenVariableStart}
	texts := Complete(src, req).Texts()

	if n := count(texts, "FOO"); n != 1 {
		t.Errorf("FOO appears %d times, want 1", n)
	}
	for _, want := range []string{"FROM_INCLUDE", "CMAKE_BUILD_TYPE", "PROJECT_NAME"} {
		if count(texts, want) != 1 {
			t.Errorf("missing %s", want)
		}
	}
	if !sort.SliceIsSorted(texts, func(i, j int) bool {
		return strings.ToLower(texts[i]) < strings.ToLower(texts[j])
	}) {
		t.Error("variables are not ordered by name")
	}
}

func TestCompleteEnvAndCacheVariables(t *testing.T) {
	src := &Source{
		Lines: SplitLines("set(ENV{MY_HOME} /opt)\noption(WITH_DOCS \"\" OFF)\nmessage($ENV{"),
		Symbols: fakeSymbols{
			env:   []string{"INCLUDED_ENV"},
			cache: []string{"INCLUDED_CACHE"},
		},
	}
	env := Complete(src, Request{Line: 2, Column: 8, Token: scanner.TokenVariableStartEnv})
	for _, want := range []string{"MY_HOME", "INCLUDED_ENV", "PATH"} {
		if !env.Contains(want) {
			t.Errorf("env candidates missing %s", want)
		}
	}

	cache := Complete(src, Request{Line: 2, Column: 8, Token: scanner.TokenVariableStartCache})
	diff.Test(t, t.Errorf, cache.Texts(), []string{"INCLUDED_CACHE", "WITH_DOCS"})
}

func TestCompleteSubcommands(t *testing.T) {
	src := &Source{Lines: []string{"file("}}
	got := Complete(src, at(src, scanner.TokenOpenParen)).Texts()
	sort.Strings(got)
	diff.Test(t, t.Errorf, got, registry.Subcommands(registry.File))
}

func TestCompleteSourceFiles(t *testing.T) {
	dir := writeTree(t, "CMakeLists.txt", "app", "main.cpp", "util.cpp", ".hidden", "sub/")

	tests := []struct {
		name    string
		line    string
		present []string
		absent  []string
	}{
		{
			name:    "first argument never excludes",
			line:    "add_executable(app ",
			present: []string{"app", "main.cpp", "util.cpp", "WIN32", "MACOSX_BUNDLE"},
			absent:  []string{".hidden", "sub"},
		},
		{
			name:    "listed sources excluded",
			line:    "add_executable(app main.cpp ",
			present: []string{"app", "util.cpp"},
			absent:  []string{"main.cpp"},
		},
		{
			name:    "library keywords",
			line:    "add_library(lib util.cpp ",
			present: []string{"STATIC", "SHARED", "main.cpp"},
			absent:  []string{"util.cpp", "WIN32"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := sourceIn(dir, tt.line)
			d := Complete(src, at(src, scanner.TokenWhiteSpace))
			if d == nil {
				t.Fatal("no candidates")
			}
			for _, want := range tt.present {
				if !d.Contains(want) {
					t.Errorf("missing %s in %v", want, d.Texts())
				}
			}
			for _, bad := range tt.absent {
				if d.Contains(bad) {
					t.Errorf("unexpected %s in %v", bad, d.Texts())
				}
			}
		})
	}
}

const targets = `add_executable(app main.cpp)
add_library(lib1 a.cpp)
add_library(lib2 b.cpp)
`

func TestCompleteTargets(t *testing.T) {
	src := &Source{Lines: SplitLines(targets + "target_link_libraries(app lib1 ")}
	d := Complete(src, at(src, scanner.TokenWhiteSpace))
	diff.Test(t, t.Errorf, d.Texts(), []string{"lib2"})

	src = &Source{Lines: SplitLines(targets + "target_link_libraries(")}
	d = Complete(src, at(src, scanner.TokenOpenParen))
	diff.Test(t, t.Errorf, d.Texts(), []string{"app", "lib1", "lib2"})
	for _, it := range d.Items() {
		if it.Kind != ItemTarget {
			t.Errorf("%s kind = %v, want target", it.Text, it.Kind)
		}
	}

	src = &Source{Lines: SplitLines(targets + "target_include_directories(")}
	d = Complete(src, at(src, scanner.TokenOpenParen))
	diff.Test(t, t.Errorf, d.Texts(), []string{"app", "lib1", "lib2"})
}

func TestCompleteSetTargetProperties(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		kind    scanner.TokenKind
		want    []string
		present []string
		isNil   bool
	}{
		{name: "objects after paren", line: "set_target_properties(", kind: scanner.TokenOpenParen, want: []string{"app", "lib1", "lib2"}},
		{name: "objects and keyword", line: "set_target_properties(app ", kind: scanner.TokenWhiteSpace, want: []string{"lib1", "lib2", "PROPERTIES"}},
		{name: "property name", line: "set_target_properties(app PROPERTIES ", kind: scanner.TokenWhiteSpace, present: []string{"OUTPUT_NAME", "INCLUDE_DIRECTORIES"}},
		{name: "property value", line: "set_target_properties(app PROPERTIES OUTPUT_NAME ", kind: scanner.TokenWhiteSpace, isNil: true},
		{name: "next property name", line: "set_target_properties(app PROPERTIES OUTPUT_NAME x ", kind: scanner.TokenWhiteSpace, present: []string{"OUTPUT_NAME"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &Source{Lines: SplitLines(targets + tt.line)}
			d := Complete(src, at(src, tt.kind))
			if tt.isNil {
				if d != nil {
					t.Errorf("got %v, want nil", d.Texts())
				}
				return
			}
			if d == nil {
				t.Fatal("no candidates")
			}
			if tt.want != nil {
				diff.Test(t, t.Errorf, d.Texts(), tt.want)
			}
			for _, p := range tt.present {
				if !d.Contains(p) {
					t.Errorf("missing %s", p)
				}
			}
		})
	}
}

func TestCompleteGetProperty(t *testing.T) {
	tests := []struct {
		line    string
		want    []string
		present []string
	}{
		{line: "get_property(v ", want: registry.PropertyTypeKeywords()},
		{line: "get_property(v TARGET ", want: []string{"app", "lib1", "lib2"}},
		{line: "get_property(v GLOBAL ", want: []string{"PROPERTY"}},
		{line: "get_property(v TARGET app ", want: []string{"PROPERTY"}},
		{line: "get_property(v TARGET app PROPERTY ", present: []string{"OUTPUT_NAME"}},
		{line: "get_target_property(v ", want: []string{"app", "lib1", "lib2"}},
		{line: "get_target_property(v app ", present: []string{"OUTPUT_NAME"}},
		{line: "get_cmake_property(v ", present: []string{"ENABLED_LANGUAGES"}},
		{line: "get_directory_property(v ", present: []string{"DIRECTORY", "INCLUDE_DIRECTORIES"}},
		{line: "get_directory_property(v DIRECTORY sub ", present: []string{"INCLUDE_DIRECTORIES", "COMPILE_DEFINITIONS"}},
		{line: "set_property(TARGET ", want: []string{"app", "lib1", "lib2"}},
		{line: "set_property(TARGET app ", want: []string{"lib1", "lib2", "APPEND", "APPEND_STRING", "PROPERTY"}},
		{line: "set_property(TARGET app PROPERTY ", present: []string{"OUTPUT_NAME"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			src := &Source{Lines: SplitLines(targets + tt.line)}
			d := Complete(src, at(src, scanner.TokenWhiteSpace))
			if d == nil {
				t.Fatal("no candidates")
			}
			if tt.want != nil {
				diff.Test(t, t.Errorf, d.Texts(), tt.want)
			}
			for _, p := range tt.present {
				if !d.Contains(p) {
					t.Errorf("missing %s", p)
				}
			}
		})
	}
}

func TestCompleteGetTestProperty(t *testing.T) {
	src := &Source{Lines: SplitLines("add_test(unit app)\nadd_test(NAME smoke COMMAND app)\nget_test_property(")}
	d := Complete(src, at(src, scanner.TokenOpenParen))
	diff.Test(t, t.Errorf, d.Texts(), []string{"unit", "smoke"})

	src = &Source{Lines: SplitLines("get_test_property(unit ")}
	d = Complete(src, at(src, scanner.TokenWhiteSpace))
	if !d.Contains("WILL_FAIL") {
		t.Errorf("missing WILL_FAIL in %v", d.Texts())
	}
}

func TestCompleteDirectories(t *testing.T) {
	dir := writeTree(t, "CMakeLists.txt", "sub1/CMakeLists.txt", "sub2/", ".git/")

	src := sourceIn(dir, "add_subdirectory(")
	d := Complete(src, at(src, scanner.TokenOpenParen))
	diff.Test(t, t.Errorf, d.Texts(), []string{"sub1", "sub2"})

	src.Options.RequireCMakeLists = true
	d = Complete(src, at(src, scanner.TokenOpenParen))
	diff.Test(t, t.Errorf, d.Texts(), []string{"sub1"})

	src = sourceIn(dir, "get_directory_property(v DIRECTORY ")
	d = Complete(src, at(src, scanner.TokenWhiteSpace))
	diff.Test(t, t.Errorf, d.Texts(), []string{"sub1", "sub2"})
}

func TestCompleteModules(t *testing.T) {
	dir := writeTree(t, "CMakeLists.txt", "helpers.cmake", "cmake_install.cmake", "FindLocal.cmake")
	modules := writeTree(t, "FindZLIB.cmake", "CheckCSourceCompiles.cmake", "CMakeRustInformation.cmake")

	src := sourceIn(dir, "include(")
	src.Options.ModulesDir = modules
	d := Complete(src, at(src, scanner.TokenOpenParen))
	for _, want := range []string{"helpers.cmake", "FindLocal.cmake", "CheckCSourceCompiles"} {
		if !d.Contains(want) {
			t.Errorf("include candidates missing %s: %v", want, d.Texts())
		}
	}
	for _, bad := range []string{"cmake_install.cmake", "FindZLIB"} {
		if d.Contains(bad) {
			t.Errorf("include candidates contain %s", bad)
		}
	}

	src.Lines = []string{"find_package("}
	d = Complete(src, at(src, scanner.TokenOpenParen))
	diff.Test(t, t.Errorf, d.Texts(), []string{"Local", "ZLIB"})

	src.Lines = []string{"enable_language("}
	d = Complete(src, at(src, scanner.TokenOpenParen))
	for _, want := range []string{"C", "CXX", "Rust"} {
		if !d.Contains(want) {
			t.Errorf("languages missing %s: %v", want, d.Texts())
		}
	}
}

func TestCompleteCommandNames(t *testing.T) {
	src := &Source{
		Lines:   SplitLines("function(my_helper)\nendfunction()\nmy_h"),
		Symbols: fakeSymbols{macros: []string{"included_macro"}},
	}
	d := Complete(src, Request{Line: 2, Column: 0, Token: scanner.TokenIdentifier})
	kinds := make(map[string]ItemKind)
	for _, it := range d.Items() {
		kinds[it.Text] = it.Kind
	}
	if kinds["add_executable"] != ItemCommand {
		t.Errorf("add_executable kind = %v", kinds["add_executable"])
	}
	for _, fn := range []string{"my_helper", "included_macro"} {
		if k, ok := kinds[fn]; !ok || k != ItemFunction {
			t.Errorf("%s kind = %v, present %v", fn, k, ok)
		}
	}
}

func TestCompleteNoContext(t *testing.T) {
	tests := []struct {
		name string
		src  *Source
		req  Request
	}{
		{"command without strategy", &Source{Lines: []string{"message(hi "}}, Request{Column: 10, Token: scanner.TokenWhiteSpace}},
		{"token kind mismatch", &Source{Lines: []string{"file("}}, Request{Column: 4, Token: scanner.TokenWhiteSpace}},
		{"stray paren", &Source{Lines: []string{"("}}, Request{Column: 0, Token: scanner.TokenOpenParen}},
		{"whitespace at top level", &Source{Lines: []string{"set(A) "}}, Request{Column: 6, Token: scanner.TokenWhiteSpace}},
		{"identifier inside arguments", &Source{Lines: []string{"set(ab"}}, Request{Column: 4, Token: scanner.TokenIdentifier}},
		{"no lines", &Source{}, Request{Token: scanner.TokenOpenParen}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := Complete(tt.src, tt.req); d != nil {
				t.Errorf("got %v, want nil", d.Texts())
			}
		})
	}
}

func TestCompleteRecoversFromPanic(t *testing.T) {
	src := &Source{Lines: []string{"${"}, Symbols: panicSymbols{}}
	if d := Complete(src, Request{Token: scanner.TokenVariableStart}); d != nil {
		t.Errorf("got %v, want nil", d.Texts())
	}
}

func TestParseDispatchesOnReason(t *testing.T) {
	src := sourceIn(t.TempDir(), "include(")
	res := Parse(src, Request{Column: 7, Reason: ReasonMemberSelect, Token: scanner.TokenOpenParen})
	if res.Declarations == nil || res.Signature != nil {
		t.Errorf("member select: %+v", res)
	}
	res = Parse(src, Request{Column: 7, Reason: ReasonParameterInfo, Token: scanner.TokenOpenParen})
	if res.Signature == nil || res.Declarations != nil {
		t.Errorf("parameter info: %+v", res)
	}
}

func TestTriggerTables(t *testing.T) {
	paren := ParenTriggers()
	if len(paren) != len(parenStrategies) {
		t.Fatalf("ParenTriggers() has %d commands, want %d", len(paren), len(parenStrategies))
	}
	if !sort.SliceIsSorted(paren, func(i, j int) bool { return paren[i].Name() < paren[j].Name() }) {
		t.Errorf("ParenTriggers() not sorted: %v", paren)
	}
	for _, id := range []registry.CommandID{registry.Include, registry.FindPackage, registry.File} {
		if !slices.Contains(paren, id) {
			t.Errorf("ParenTriggers() missing %v", id)
		}
	}

	ws := WhiteSpaceTriggers()
	if !slices.Contains(ws, registry.SetProperty) || slices.Contains(ws, registry.Include) {
		t.Errorf("WhiteSpaceTriggers() = %v", ws)
	}
}
