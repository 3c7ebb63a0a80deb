package main

import (
	"os"

	"codeberg.org/mutker/puzzlebench/internal/config"
	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/inputs"
	"codeberg.org/mutker/puzzlebench/internal/logger"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg *config.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "puzzlebench",
		Short:         "Check, time and profile puzzle solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newRunCmd(a),
		newListCmd(a),
		newInputCmd(a),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	level, ok := logger.ParseLevel(cfg.LogLevel)
	if !ok {
		return errors.New().WithData(errors.ErrInvalidLogLevel, cfg.LogLevel)
	}

	a.cfg = cfg
	a.log = logger.New(os.Stderr, level)
	a.log.Debug().
		Int("runs", cfg.Runs).
		Str("format", cfg.Format).
		Str("input_db", cfg.InputDB).
		Msg("Config loaded")

	return nil
}

func (a *app) openInputs() (inputs.Repository, error) {
	icfg := inputs.DefaultConfig()
	icfg.DBPath = a.cfg.InputDB

	return inputs.NewRepository(icfg, a.log)
}

// logError logs coded errors with their code before they reach main.
func (a *app) logError(err error) error {
	var e errors.Error
	if err != nil && errors.As(err, &e) {
		a.log.ErrorWithCode(e).Msg("Command failed")
	}

	return err
}
