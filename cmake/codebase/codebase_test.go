package codebase

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/dhamidi/cmakels/cmake/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectCMakeLists = `include(helpers.cmake)
add_executable(app main.cpp)
message(${`

func newProject(t *testing.T) (*Codebase, string) {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"CMakeLists.txt":     projectCMakeLists,
		"helpers.cmake":      helpersCMake,
		"main.cpp":           "",
		"sub/CMakeLists.txt": "add_library(sublib s.cpp)\n",
		".git/config.cmake":  "",
	})
	return New(dir, nil), filepath.Join(dir, "CMakeLists.txt")
}

func TestCodebaseScanAll(t *testing.T) {
	c, path := newProject(t)
	require.NoError(t, c.ScanAll())

	dir := c.RootDir()
	assert.Equal(t, []string{
		path,
		filepath.Join(dir, "helpers.cmake"),
		filepath.Join(dir, "sub", "CMakeLists.txt"),
	}, c.Paths())

	f := c.GetFile(path)
	require.NotNil(t, f)
	assert.Equal(t, []cmake.Include{{Name: "helpers.cmake", Line: 0}}, f.Includes)
	assert.Equal(t, []string{filepath.Join(dir, "helpers.cmake")}, f.Cache.Paths())

	assert.Equal(t, map[string][]string{
		filepath.Join(dir, "helpers.cmake"): {path},
	}, c.IncludedBy())
}

func TestCodebaseComplete(t *testing.T) {
	c, path := newProject(t)
	require.NoError(t, c.ScanFile(path))

	decls := c.Complete(path, cmake.Request{Line: 2, Column: 8, Token: scanner.TokenVariableStart})
	require.NotNil(t, decls)
	assert.True(t, decls.Contains("HELPER_VAR"))
	assert.True(t, decls.Contains("CMAKE_BUILD_TYPE"))

	assert.Nil(t, c.Complete(filepath.Join(c.RootDir(), "absent.txt"), cmake.Request{}))
	assert.Nil(t, c.Source("absent"))
}

func TestCodebaseSignatureFromInclude(t *testing.T) {
	c, path := newProject(t)
	require.NoError(t, c.UpdateFile(path, []byte("include(helpers.cmake)\nhelper_fn(x ")))

	sig := c.SignatureAt(path, 1, 11)
	require.NotNil(t, sig)
	assert.Equal(t, "helper_fn(a b)", sig.Label())
	assert.Equal(t, 1, sig.ActiveParameter)
}

func TestCodebaseUpdateKeepsCacheUntilIncludesChange(t *testing.T) {
	c, path := newProject(t)
	require.NoError(t, c.ScanFile(path))

	writeFiles(t, c.RootDir(), map[string]string{"helpers.cmake": "set(NEW_VAR 1)\n"})
	require.NoError(t, c.UpdateFile(path, []byte(projectCMakeLists+"\n")))
	assert.Equal(t, []string{"HELPER_VAR"}, c.GetFile(path).Cache.Variables())

	c.RefreshIncludes(path)
	assert.Equal(t, []string{"NEW_VAR"}, c.GetFile(path).Cache.Variables())

	require.NoError(t, c.UpdateFile(path, []byte("add_executable(app main.cpp)\n")))
	assert.Empty(t, c.GetFile(path).Cache.Variables())
}

func TestCodebaseRemoveFile(t *testing.T) {
	c, path := newProject(t)
	require.NoError(t, c.ScanFile(path))
	c.RemoveFile(path)
	assert.Nil(t, c.GetFile(path))
	assert.Empty(t, c.Paths())
}

func TestIsCMakeFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/src/CMakeLists.txt", true},
		{"/src/cmakelists.txt", true},
		{"/src/helpers.cmake", true},
		{"/src/Find.CMAKE", true},
		{"/src/notes.txt", false},
		{"/src/main.cpp", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsCMakeFile(tt.path), tt.path)
	}
}

func TestCodebaseConcurrentUpdates(t *testing.T) {
	c, path := newProject(t)
	require.NoError(t, c.ScanFile(path))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			content := fmt.Sprintf("include(helpers.cmake)\nset(V%d 1)\n", i)
			assert.NoError(t, c.UpdateFile(path, []byte(content)))
		}()
		go func() {
			defer wg.Done()
			c.RefreshIncludes(path)
		}()
		go func() {
			defer wg.Done()
			f := c.GetFile(path)
			if !assert.NotNil(t, f) {
				return
			}
			assert.Equal(t, len(cmake.SplitLines(string(f.Content))), len(f.Lines))
		}()
	}
	wg.Wait()

	f := c.GetFile(path)
	assert.Equal(t, []cmake.Include{{Name: "helpers.cmake", Line: 0}}, f.Includes)
	assert.Equal(t, []string{"HELPER_VAR"}, f.Cache.Variables())
}
