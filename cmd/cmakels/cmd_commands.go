package main

import (
	"fmt"

	"github.com/dhamidi/cmakels/cmake/registry"
	"github.com/spf13/cobra"
)

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands [name...]",
		Short: "List built-in commands, or show the signature of the named ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range registry.Commands() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			for _, name := range args {
				id := registry.LookupCommand(name)
				if id == registry.NoCommand {
					return fmt.Errorf("unknown command: %s", name)
				}
				info := registry.QuickInfo(id)
				if info == "" {
					info = id.Name()
				}
				fmt.Fprintln(out, info)
				for _, sub := range registry.Subcommands(id) {
					fmt.Fprintf(out, "  %s\n", sub)
				}
			}
			return nil
		},
	}
}
