// Package codebase keeps the open CMake buffers of a workspace together with
// the symbols of the files they include, and serves them over LSP.
package codebase

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/cmakels/cmake"
)

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	config  *Config
	files   map[string]*FileInfo
}

// FileInfo is one buffer and the include cache built for it. A FileInfo is
// never modified once stored; UpdateFile replaces it with a new one that
// shares the cache.
type FileInfo struct {
	Path     string
	Content  []byte
	Lines    []string
	Includes []cmake.Include
	Cache    *IncludeCache
}

func New(rootDir string, config *Config) *Codebase {
	if config == nil {
		config = DefaultConfig()
	}
	return &Codebase{
		rootDir: rootDir,
		config:  config,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

func (c *Codebase) Config() *Config {
	return c.config
}

// IsCMakeFile reports whether path names a CMake script.
func IsCMakeFile(path string) bool {
	base := filepath.Base(path)
	return strings.EqualFold(base, "CMakeLists.txt") || strings.EqualFold(filepath.Ext(base), ".cmake")
}

// ScanAll loads every CMake script under the root directory.
func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if path != c.rootDir && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsCMakeFile(path) {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

// UpdateFile stores new buffer contents. The include cache is rebuilt when
// the set of includes changed.
func (c *Codebase) UpdateFile(path string, content []byte) error {
	lines := cmake.SplitLines(string(content))
	includes := cmake.ParseForIncludes(lines)

	c.mu.Lock()
	old, ok := c.files[path]
	cache := NewIncludeCache(c.config.ModulesDir)
	stale := true
	if ok {
		cache = old.Cache
		stale = !sameIncludes(old.Includes, includes)
	}
	c.files[path] = &FileInfo{
		Path:     path,
		Content:  content,
		Lines:    lines,
		Includes: includes,
		Cache:    cache,
	}
	c.mu.Unlock()

	if stale {
		cache.Rebuild(path, includes)
	}
	return nil
}

func sameIncludes(a, b []cmake.Include) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Package != b[i].Package {
			return false
		}
	}
	return true
}

// RefreshIncludes rebuilds the include cache of a buffer.
func (c *Codebase) RefreshIncludes(path string) {
	c.mu.RLock()
	f := c.files[path]
	c.mu.RUnlock()
	if f == nil {
		return
	}
	f.Cache.Rebuild(path, f.Includes)
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Paths returns the paths of all loaded buffers in lexical order.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.files))
	for p := range c.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// IncludedBy maps every cached include file to the buffers that include it.
func (c *Codebase) IncludedBy() map[string][]string {
	out := make(map[string][]string)
	for _, owner := range c.Paths() {
		f := c.GetFile(owner)
		if f == nil {
			continue
		}
		for _, inc := range f.Cache.Paths() {
			out[inc] = append(out[inc], owner)
		}
	}
	return out
}

// Source returns the engine view of a buffer, or nil when it is not loaded.
func (c *Codebase) Source(path string) *cmake.Source {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f := c.files[path]
	if f == nil {
		return nil
	}
	return &cmake.Source{
		Path:    f.Path,
		Lines:   f.Lines,
		Symbols: f.Cache,
		Options: c.config.Options(),
	}
}

// Complete answers a completion request against a loaded buffer.
func (c *Codebase) Complete(path string, req cmake.Request) *cmake.Declarations {
	src := c.Source(path)
	if src == nil {
		return nil
	}
	return cmake.Complete(src, req)
}

// SignatureAt answers a call tip request against a loaded buffer.
func (c *Codebase) SignatureAt(path string, line, col int) *cmake.Signature {
	src := c.Source(path)
	if src == nil {
		return nil
	}
	return cmake.SignatureAt(src, line, col)
}
