package main

import (
	"fmt"

	"github.com/dhamidi/cmakels/cmake"
	"github.com/dhamidi/cmakels/cmake/codebase"
	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	var flags workspaceFlags

	cmd := &cobra.Command{
		Use:   "complete <file> <line:col>",
		Short: "List the completion candidates at a cursor position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, col, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			c, path, err := flags.load(args[0])
			if err != nil {
				return err
			}
			enc, err := flags.encoder(cmd)
			if err != nil {
				return err
			}

			decls := cmake.NewDeclarations()
			if req, ok := codebase.TriggerAt(c.GetFile(path).Lines, line, col); ok {
				if d := c.Complete(path, req); d != nil {
					decls = d
				}
			}
			if err := enc.Encode(decls); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
