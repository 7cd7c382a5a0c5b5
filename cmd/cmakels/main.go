package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:          "cmakels",
		Short:        "Completion and call tips for CMake scripts",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			commonlog.Configure(verbose, path)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newSignatureCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newSymbolsCmd())
	rootCmd.AddCommand(newCommandsCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
