package main

import (
	"time"

	"github.com/dhamidi/cmakels/cmake/codebase"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var overrides codebase.Config
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides.WatchInterval = interval
			server := codebase.NewLSPServer(version, overrides)
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&overrides.ModulesDir, "modules-dir", "", "CMake modules directory (overrides "+codebase.ModulesDirEnv+")")
	cmd.Flags().StringVar(&overrides.Subdirectories, "subdirectories", "", "subdirectories to offer: all or cmakelists")
	cmd.Flags().DurationVar(&interval, "watch-interval", 0, "how often to poll included files")

	return cmd
}
