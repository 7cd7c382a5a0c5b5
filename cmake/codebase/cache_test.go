package codebase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helpersCMake = `set(HELPER_VAR 1)
set(ENV{HELPER_ENV} on)
option(HELPER_OPT "toggle" ON)
function(helper_fn a b)
endfunction()
macro(helper_macro x)
endmacro()
`

// writeFiles writes name/content pairs under dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestIncludeCacheRebuild(t *testing.T) {
	dir := t.TempDir()
	modules := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"helpers.cmake":  helpersCMake,
		"FindFoo.cmake":  "set(Foo_FOUND TRUE)\n",
		"CMakeLists.txt": "",
	})
	writeFiles(t, modules, map[string]string{
		"Extra.cmake": "set(EXTRA_VAR 1)\n",
	})

	cache := NewIncludeCache(modules)
	cache.Rebuild(filepath.Join(dir, "CMakeLists.txt"), []cmake.Include{
		{Name: "helpers.cmake"},
		{Name: "missing.cmake"},
		{Name: "Foo", Package: true},
		{Name: "Extra"},
		{Name: "${UNRESOLVED}/x.cmake"},
		{Name: "helpers"},
	})

	assert.Equal(t, []string{
		filepath.Join(dir, "helpers.cmake"),
		filepath.Join(dir, "FindFoo.cmake"),
		filepath.Join(modules, "Extra.cmake"),
	}, cache.Paths())
	assert.Equal(t, []string{"EXTRA_VAR", "Foo_FOUND", "HELPER_VAR"}, cache.Variables())
	assert.Equal(t, []string{"HELPER_ENV"}, cache.EnvVariables())
	assert.Equal(t, []string{"HELPER_OPT"}, cache.CacheVariables())
	assert.Equal(t, []string{"helper_fn"}, cache.Functions())
	assert.Equal(t, []string{"helper_macro"}, cache.Macros())

	params, ok := cache.FunctionParameters("HELPER_FN")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, params)

	params, ok = cache.FunctionParameters("helper_macro")
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, params)

	_, ok = cache.FunctionParameters("nope")
	assert.False(t, ok)
}

func TestIncludeCacheRebuildReplaces(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"helpers.cmake": helpersCMake})
	path := filepath.Join(dir, "CMakeLists.txt")

	cache := NewIncludeCache("")
	cache.Rebuild(path, []cmake.Include{{Name: "helpers.cmake"}})
	require.Len(t, cache.Entries(), 1)

	cache.Rebuild(path, nil)
	assert.Empty(t, cache.Entries())
	assert.Empty(t, cache.Variables())
}

func TestIncludeCacheOnlyMissingIncludes(t *testing.T) {
	cache := NewIncludeCache(t.TempDir())
	cache.Rebuild(filepath.Join(t.TempDir(), "CMakeLists.txt"), []cmake.Include{
		{Name: "gone.cmake"},
		{Name: "Nothing", Package: true},
	})
	assert.Empty(t, cache.Entries())

	src := &cmake.Source{Lines: []string{"${"}, Symbols: cache}
	decls := cmake.VariableDeclarations(src)
	assert.True(t, decls.Contains("CMAKE_BUILD_TYPE"))
}

func TestIncludeCacheSkipsUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"helpers.cmake": helpersCMake,
		"locked.cmake":  "set(LOCKED_VAR 1)\n",
	})
	locked := filepath.Join(dir, "locked.cmake")
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0o644) })

	cache := NewIncludeCache("")
	cache.Rebuild(filepath.Join(dir, "CMakeLists.txt"), []cmake.Include{
		{Name: "locked.cmake"},
		{Name: "helpers.cmake"},
	})

	assert.Equal(t, []string{filepath.Join(dir, "helpers.cmake")}, cache.Paths())
	assert.Equal(t, []string{"HELPER_VAR"}, cache.Variables())
}

func TestIncludeCacheFunctionParametersRereads(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"helpers.cmake": helpersCMake})

	cache := NewIncludeCache("")
	cache.Rebuild(filepath.Join(dir, "CMakeLists.txt"), []cmake.Include{{Name: "helpers.cmake"}})

	writeFiles(t, dir, map[string]string{
		"helpers.cmake": "function(helper_fn a b c)\nendfunction()\n",
	})
	params, ok := cache.FunctionParameters("helper_fn")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, params)
}
