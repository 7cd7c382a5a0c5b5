package main

import (
	"fmt"
	"path/filepath"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/dhamidi/cmakels/format"
	"github.com/spf13/cobra"
)

func newSymbolsCmd() *cobra.Command {
	var flags workspaceFlags

	cmd := &cobra.Command{
		Use:   "symbols <file>",
		Short: "List what a script defines and the files it includes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, path, err := flags.load(args[0])
			if err != nil {
				return err
			}
			enc, err := flags.encoder(cmd)
			if err != nil {
				return err
			}

			f := c.GetFile(path)
			text := string(f.Content)
			symbols := &format.Symbols{
				Path:           path,
				Variables:      cmake.ParseForVariables(text),
				EnvVariables:   cmake.ParseForEnvVariables(text),
				CacheVariables: cmake.ParseForCacheVariables(text),
				Functions:      cmake.ParseForFunctionNames(f.Lines, false),
				Macros:         cmake.ParseForFunctionNames(f.Lines, true),
				Targets:        cmake.ParseForTargetNames(f.Lines, false),
				Tests:          cmake.ParseForTargetNames(f.Lines, true),
				Includes:       f.Includes,
				Resolved:       make(map[string]string),
			}
			for _, inc := range f.Includes {
				if resolved, ok := f.Cache.Resolve(filepath.Dir(path), inc); ok {
					symbols.Resolved[inc.Name] = resolved
				}
			}

			if err := enc.Encode(symbols); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
