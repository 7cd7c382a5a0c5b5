package main

import (
	"fmt"

	"github.com/dhamidi/cmakels/cmake/scanner"
	"github.com/dhamidi/cmakels/format"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the tokens of a script with their triggers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(args[0])
			if err != nil {
				return err
			}
			enc, err := format.New(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			out := make([]format.TokenLine, len(lines))
			for i, l := range lines {
				out[i] = format.TokenLine{Line: i, Text: l}
			}
			scanner.Walk(lines, func(s scanner.Step) bool {
				out[s.Line].Tokens = append(out[s.Line].Tokens, s.Token)
				return true
			})

			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format: line or json")

	return cmd
}
