package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/inputs"
	"github.com/spf13/cobra"
)

func newInputCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "input",
		Short: "Manage the puzzle input cache",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add YEAR DAY [FILE]",
			Short: "Store a puzzle input, read from FILE or stdin",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.logError(a.addInput(cmd, args))
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List cached inputs",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.logError(a.listInputs(cmd))
			},
		},
	)

	return cmd
}

func (a *app) addInput(cmd *cobra.Command, args []string) error {
	errFactory := errors.New()

	year, day, err := parseKey(args)
	if err != nil {
		return err
	}

	var src io.Reader = cmd.InOrStdin()
	if len(args) == 3 && args[2] != "-" {
		f, err := os.Open(args[2])
		if err != nil {
			return errFactory.Wrap(errors.ErrMissingInput, err)
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return errFactory.Wrap(errors.ErrMissingInput, err)
	}

	repo, err := a.openInputs()
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.Put(cmd.Context(), &inputs.Input{
		Year:      year,
		Day:       day,
		Data:      string(data),
		UpdatedAt: time.Now(),
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d bytes for %d day %d\n", len(data), year, day)

	return nil
}

func (a *app) listInputs(cmd *cobra.Command) error {
	repo, err := a.openInputs()
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, err := repo.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%d  %2d  %8d bytes  %s\n", e.Year, e.Day, e.Bytes, e.UpdatedAt.Format(time.RFC3339))
	}

	return nil
}
