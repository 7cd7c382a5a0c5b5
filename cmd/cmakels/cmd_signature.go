package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSignatureCmd() *cobra.Command {
	var flags workspaceFlags

	cmd := &cobra.Command{
		Use:   "signature <file> <line:col>",
		Short: "Show the call tip at a cursor position",
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

			sig := c.SignatureAt(path, line, col-1)
			if err := enc.Encode(sig); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}
