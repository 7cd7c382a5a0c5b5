package cmake

import (
	"testing"

	"kr.dev/diff"
)

func TestParseForVariables(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{"duplicate once", "set(FOO \"bar\")\nset(FOO \"baz\")", []string{"FOO"}},
		{"case-insensitive duplicate", "set(foo 1)\nSET(FOO 2)", []string{"foo"}},
		{"standard excluded", "set(CMAKE_BUILD_TYPE Release)\nset(MY_VAR 1)", []string{"MY_VAR"}},
		{"whitespace before paren resets", "set (SPACED 1)", nil},
		{"order of definition", "set(B 1)\nset(A 2)", []string{"B", "A"}},
		{"not set", "option(OPT \"\" ON)\nlist(APPEND L x)", nil},
		{"malformed", "set(", nil},
		{"environment assignment", "set(ENV{HOME} /tmp)\nset(ENV 1)", []string{"ENV"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff.Test(t, t.Errorf, ParseForVariables(tt.code), tt.want)
		})
	}
}

func TestParseForEnvVariables(t *testing.T) {
	code := "set(ENV{MY_HOME} /opt)\nset(ENV{PATH} /bin)\nset(ENV{MY_HOME} /usr)"
	diff.Test(t, t.Errorf, ParseForEnvVariables(code), []string{"MY_HOME"})
}

func TestParseForCacheVariables(t *testing.T) {
	code := `option(WITH_TESTS "build tests" ON)
set(INSTALL_ROOT /opt CACHE PATH "where")
set(PLAIN 1)
set(CMAKE_BUILD_TYPE Debug CACHE STRING "")`
	diff.Test(t, t.Errorf, ParseForCacheVariables(code), []string{"WITH_TESTS", "INSTALL_ROOT"})
}

func TestStatements(t *testing.T) {
	lines := SplitLines(`add_executable(app
    main.cpp # entry point
    "my file.cpp")
my_func(a ${B}c)
set(MSG "multi
line")
if((A AND B))
add_library(`)

	got := Statements(lines)
	type stmt struct {
		Name   string
		Line   int
		Args   []string
		Closed bool
	}
	var short []stmt
	for _, st := range got {
		short = append(short, stmt{st.Name, st.Line, st.Args, st.Closed})
	}
	want := []stmt{
		{"add_executable", 0, []string{"app", "main.cpp", "my file.cpp"}, true},
		{"my_func", 3, []string{"a", "${B}c"}, true},
		{"set", 4, []string{"MSG", "multi\nline"}, true},
		{"if", 6, []string{"(A AND B)"}, true},
		{"add_library", 7, []string{}, false},
	}
	diff.Test(t, t.Errorf, short, want)
}

func TestParseForFunctionNames(t *testing.T) {
	lines := SplitLines(`function(do_thing a b)
endfunction()
macro(my_macro x)
endmacro()
FUNCTION(Do_Thing)
endfunction()`)
	diff.Test(t, t.Errorf, ParseForFunctionNames(lines, false), []string{"do_thing"})
	diff.Test(t, t.Errorf, ParseForFunctionNames(lines, true), []string{"my_macro"})

	params, ok := ParseForFunctionParameters(lines, "DO_THING")
	if !ok {
		t.Fatal("do_thing not found")
	}
	diff.Test(t, t.Errorf, params, []string{"a", "b"})

	if _, ok := ParseForFunctionParameters(lines, "missing"); ok {
		t.Error("missing function reported as found")
	}
}

func TestParseForTargetNames(t *testing.T) {
	lines := SplitLines(`add_executable(app main.cpp)
add_library(lib1 STATIC a.cpp)
add_custom_target(docs)
add_executable(app other.cpp)
add_test(unit app)
add_test(NAME integration COMMAND app)`)
	diff.Test(t, t.Errorf, ParseForTargetNames(lines, false), []string{"app", "lib1", "docs"})
	diff.Test(t, t.Errorf, ParseForTargetNames(lines, true), []string{"unit", "integration"})
}

func TestParseForIncludes(t *testing.T) {
	lines := SplitLines("include(helpers.cmake)\nfind_package(Foo REQUIRED)\ninclude()")
	want := []Include{
		{Name: "helpers.cmake", Line: 0},
		{Name: "Foo", Line: 1, Package: true},
	}
	diff.Test(t, t.Errorf, ParseForIncludes(lines), want)
}
