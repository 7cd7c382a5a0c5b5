package cmake

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/dhamidi/cmakels/cmake/registry"
)

// sourceDir is the directory holding the buffer being edited.
func (s *Source) sourceDir() string {
	if s.Path == "" {
		return "."
	}
	return filepath.Dir(s.Path)
}

// readDir lists a directory, treating failure as an empty directory.
func readDir(dir string) []os.DirEntry {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger().Debugf("read %s: %s", dir, err)
		return nil
	}
	return entries
}

// IncludeFiles returns the *.cmake files next to the buffer, except the
// generated cmake_install.cmake, and the module names found in the modules
// directory, except Find modules.
func IncludeFiles(src *Source) []string {
	var out []string
	for _, e := range readDir(src.sourceDir()) {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".cmake") || name == "cmake_install.cmake" {
			continue
		}
		out = append(out, name)
	}
	for _, e := range readDir(src.Options.ModulesDir) {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".cmake") || strings.HasPrefix(name, "Find") {
			continue
		}
		out = append(out, strings.TrimSuffix(name, ".cmake"))
	}
	return out
}

// Packages returns the package names X for which a FindX.cmake exists next
// to the buffer or in the modules directory.
func Packages(src *Source) []string {
	var out []string
	for _, dir := range []string{src.sourceDir(), src.Options.ModulesDir} {
		for _, e := range readDir(dir) {
			name := e.Name()
			if e.IsDir() || !strings.HasPrefix(name, "Find") || !strings.HasSuffix(name, ".cmake") {
				continue
			}
			pkg := strings.TrimSuffix(strings.TrimPrefix(name, "Find"), ".cmake")
			if pkg != "" {
				out = append(out, pkg)
			}
		}
	}
	return out
}

// Subdirectories returns the directories next to the buffer. Hidden
// directories are skipped, and with requireCMakeLists so are directories
// without a CMakeLists.txt.
func Subdirectories(dir string, requireCMakeLists bool) []string {
	var out []string
	for _, e := range readDir(dir) {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if requireCMakeLists {
			if _, err := os.Stat(filepath.Join(dir, name, "CMakeLists.txt")); err != nil {
				continue
			}
		}
		out = append(out, name)
	}
	return out
}

// SourceFiles returns the regular files next to the buffer.
func SourceFiles(dir string) []string {
	var out []string
	for _, e := range readDir(dir) {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		out = append(out, name)
	}
	return out
}

var languageModule = regexp.MustCompile(`^CMake(\w+)Information\.cmake$`)

// LanguagesFromDir returns the languages X for which the modules directory
// holds a CMakeXInformation.cmake.
func LanguagesFromDir(dir string) []string {
	var out []string
	for _, e := range readDir(dir) {
		if m := languageModule.FindStringSubmatch(e.Name()); m != nil {
			out = append(out, m[1])
		}
	}
	return out
}

// Languages returns the built-in languages merged with those found in the
// modules directory.
func Languages(opts Options) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range append(registry.Languages(), LanguagesFromDir(opts.ModulesDir)...) {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
