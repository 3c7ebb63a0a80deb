package main

import (
	"fmt"

	"codeberg.org/mutker/puzzlebench/internal/puzzles"
	"github.com/spf13/cobra"
)

func newListCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, p := range puzzles.All() {
				parts := make([]string, 0, len(p.Parts))
				for _, part := range p.Parts {
					parts = append(parts, part.Name)
				}
				fmt.Fprintf(out, "%d  %2d  %-28s %v\n", p.Year, p.Day, p.Title, parts)
			}
			return nil
		},
	}
}
