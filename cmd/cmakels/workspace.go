package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/dhamidi/cmakels/cmake/codebase"
	"github.com/dhamidi/cmakels/format"
	"github.com/spf13/cobra"
)

// workspaceFlags are shared by the commands that answer questions about a
// single script.
type workspaceFlags struct {
	modulesDir     string
	subdirectories string
	format         string
}

func (f *workspaceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.modulesDir, "modules-dir", "", "CMake modules directory")
	cmd.Flags().StringVar(&f.subdirectories, "subdirectories", "", "subdirectories to offer: all or cmakelists")
	cmd.Flags().StringVarP(&f.format, "format", "f", "line", "output format: line or json")
}

func (f *workspaceFlags) encoder(cmd *cobra.Command) (format.Encoder, error) {
	return format.New(f.format, cmd.OutOrStdout())
}

// load reads the script at path into a codebase configured for its
// directory.
func (f *workspaceFlags) load(path string) (*codebase.Codebase, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	config, _, err := codebase.LoadConfigFrom(dir)
	if err != nil {
		return nil, "", err
	}
	config.ApplyEnv()
	if f.modulesDir != "" {
		config.ModulesDir = f.modulesDir
	}
	if f.subdirectories != "" {
		config.Subdirectories = f.subdirectories
	}

	c := codebase.New(dir, config)
	if err := c.ScanFile(abs); err != nil {
		return nil, "", fmt.Errorf("read script: %w", err)
	}
	return c, abs, nil
}

// parsePosition parses "LINE:COL", both counted from 1. COL is the cursor
// column, so 1 is before the first character. The result is zero based.
func parsePosition(s string) (line, col int, err error) {
	l, c, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("position %q: want LINE:COL", s)
	}
	line, err = strconv.Atoi(l)
	if err != nil || line < 1 {
		return 0, 0, fmt.Errorf("position %q: bad line", s)
	}
	col, err = strconv.Atoi(c)
	if err != nil || col < 1 {
		return 0, 0, fmt.Errorf("position %q: bad column", s)
	}
	return line - 1, col - 1, nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmake.SplitLines(string(data)), nil
}
