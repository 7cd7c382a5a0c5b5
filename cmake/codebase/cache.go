package codebase

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/tliron/commonlog"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("cmakels.codebase")
}

// IncludeCacheEntry holds the names defined by one included file.
type IncludeCacheEntry struct {
	Path           string
	Variables      []string
	EnvVariables   []string
	CacheVariables []string
	Functions      []string
	Macros         []string
}

// IncludeCache collects the names defined by the files a buffer includes.
// It implements cmake.Symbols.
type IncludeCache struct {
	mu         sync.RWMutex
	modulesDir string
	generation uint64
	applied    uint64
	entries    []*IncludeCacheEntry

	// includes that did not resolve at the last rebuild, and the directory
	// they were resolved against
	dir        string
	unresolved []cmake.Include
}

func NewIncludeCache(modulesDir string) *IncludeCache {
	return &IncludeCache{modulesDir: modulesDir}
}

// Resolve finds the file an include refers to, first next to the including
// file and then in the modules directory.
func (c *IncludeCache) Resolve(dir string, inc cmake.Include) (string, bool) {
	if strings.Contains(inc.Name, "${") {
		return "", false
	}
	var names []string
	if inc.Package {
		names = []string{"Find" + inc.Name + ".cmake"}
	} else {
		names = []string{inc.Name, inc.Name + ".cmake"}
	}

	if filepath.IsAbs(inc.Name) && !inc.Package {
		for _, name := range names {
			if isFile(name) {
				return name, true
			}
		}
		return "", false
	}
	for _, base := range []string{dir, c.modulesDir} {
		if base == "" {
			continue
		}
		for _, name := range names {
			candidate := filepath.Join(base, name)
			if isFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Rebuild replaces the cache with the names defined by includes, resolved
// relative to path. Unresolvable includes and unreadable files are
// skipped. When rebuilds overlap, the one started last wins.
func (c *IncludeCache) Rebuild(path string, includes []cmake.Include) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	dir := filepath.Dir(path)
	seen := make(map[string]bool)
	var entries []*IncludeCacheEntry
	var unresolved []cmake.Include
	for _, inc := range includes {
		file, ok := c.Resolve(dir, inc)
		if !ok {
			logger().Debugf("%s:%d: cannot resolve %s", path, inc.Line+1, inc.Name)
			if !strings.Contains(inc.Name, "${") {
				unresolved = append(unresolved, inc)
			}
			continue
		}
		if seen[file] {
			continue
		}
		seen[file] = true
		entry, err := readEntry(file)
		if err != nil {
			logger().Debugf("%s: %s", path, err)
			continue
		}
		entries = append(entries, entry)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.applied {
		return
	}
	c.applied = gen
	c.entries = entries
	c.dir = dir
	c.unresolved = unresolved
}

// Unresolved returns the includes that named no file at the last rebuild.
func (c *IncludeCache) Unresolved() []cmake.Include {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]cmake.Include(nil), c.unresolved...)
}

// Appeared reports whether an include that did not resolve at the last
// rebuild names a file now.
func (c *IncludeCache) Appeared() bool {
	c.mu.RLock()
	dir, unresolved := c.dir, c.unresolved
	c.mu.RUnlock()
	for _, inc := range unresolved {
		if _, ok := c.Resolve(dir, inc); ok {
			return true
		}
	}
	return false
}

func readEntry(path string) (*IncludeCacheEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(content)
	lines := cmake.SplitLines(text)
	return &IncludeCacheEntry{
		Path:           path,
		Variables:      cmake.ParseForVariables(text),
		EnvVariables:   cmake.ParseForEnvVariables(text),
		CacheVariables: cmake.ParseForCacheVariables(text),
		Functions:      cmake.ParseForFunctionNames(lines, false),
		Macros:         cmake.ParseForFunctionNames(lines, true),
	}, nil
}

// Entries returns the cached files in include order.
func (c *IncludeCache) Entries() []*IncludeCacheEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*IncludeCacheEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Paths returns the paths of the cached files.
func (c *IncludeCache) Paths() []string {
	var out []string
	for _, e := range c.Entries() {
		out = append(out, e.Path)
	}
	return out
}

func (c *IncludeCache) collect(field func(*IncludeCacheEntry) []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range c.Entries() {
		for _, name := range field(e) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (c *IncludeCache) Variables() []string {
	return c.collect(func(e *IncludeCacheEntry) []string { return e.Variables })
}

func (c *IncludeCache) EnvVariables() []string {
	return c.collect(func(e *IncludeCacheEntry) []string { return e.EnvVariables })
}

func (c *IncludeCache) CacheVariables() []string {
	return c.collect(func(e *IncludeCacheEntry) []string { return e.CacheVariables })
}

func (c *IncludeCache) Functions() []string {
	return c.collect(func(e *IncludeCacheEntry) []string { return e.Functions })
}

func (c *IncludeCache) Macros() []string {
	return c.collect(func(e *IncludeCacheEntry) []string { return e.Macros })
}

// FunctionParameters returns the formal parameters of a function or macro
// defined in an included file. The owning file is read again so the answer
// reflects its current contents.
func (c *IncludeCache) FunctionParameters(name string) ([]string, bool) {
	for _, e := range c.Entries() {
		if !defines(e, name) {
			continue
		}
		content, err := os.ReadFile(e.Path)
		if err != nil {
			logger().Debugf("%s", err)
			continue
		}
		if params, ok := cmake.ParseForFunctionParameters(cmake.SplitLines(string(content)), name); ok {
			return params, true
		}
	}
	return nil, false
}

func defines(e *IncludeCacheEntry, name string) bool {
	for _, list := range [][]string{e.Functions, e.Macros} {
		for _, fn := range list {
			if strings.EqualFold(fn, name) {
				return true
			}
		}
	}
	return false
}
