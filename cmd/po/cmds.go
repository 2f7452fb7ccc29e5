// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/podata/po/base/iox/tomlx"
	"github.com/podata/po/base/logx"
	"github.com/podata/po/csvio"
	"github.com/podata/po/frame"
	"github.com/spf13/cobra"
)

// app holds the state shared by the po commands.
type app struct {
	// flagCfg is bound to the command line flags.
	flagCfg *Config

	// configFile is the --config flag value.
	configFile string

	// cfg is the effective config, set before each command runs.
	cfg *Config

	// saveFile is the config --save flag value.
	saveFile string
}

func newRootCmd() *cobra.Command {
	a := &app{flagCfg: defaultConfig()}
	root := &cobra.Command{
		Use:               "po",
		Short:             "Inspect delimited data files as tables",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	addFlags(root.PersistentFlags(), a.flagCfg)
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file to use instead of "+ConfigFile+" on the standard paths")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config in TOML format, or save it with --save",
		Args:  cobra.NoArgs,
		RunE:  a.config,
	}
	configCmd.Flags().StringVar(&a.saveFile, "save", "", "save the effective config to this file instead of printing it")

	root.AddCommand(
		&cobra.Command{
			Use:   "info FILE",
			Short: "Print the shape and dtypes of a table",
			Args:  cobra.ExactArgs(1),
			RunE:  a.info,
		},
		&cobra.Command{
			Use:   "select FILE EXPR",
			Short: "Print the sub-table selected by an index expression",
			Long: `Print the sub-table selected by an index expression, written as
between the brackets of a subscript: 'a', ['a', 'b'], 1, 'a':'c',
:, -2:, or [0, 2], [0, 'b'].`,
			Args: cobra.ExactArgs(2),
			RunE: a.selectCmd,
		},
		&cobra.Command{
			Use:   "head FILE",
			Short: "Print the first rows of a table (see --max-rows)",
			Args:  cobra.ExactArgs(1),
			RunE:  a.head,
		},
		configCmd,
	)
	return root
}

// setup loads the config and sets up logging and colors.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags(), a.flagCfg, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	profile := termenv.EnvColorProfile()
	if cfg.NoColor {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)
	logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
	logx.SetDefaultLoggerTo(cmd.ErrOrStderr(), profile)
	slog.Debug("po config", "delim", cfg.Delim, "maxRows", cfg.MaxRows, "format", cfg.Format)
	return nil
}

// open reads the table in the given file.
func (a *app) open(file string) (*frame.Table, error) {
	var delim csvio.Delims
	if err := delim.SetString(a.cfg.Delim); err != nil {
		return nil, err
	}
	dt, err := csvio.OpenCSV(file, delim)
	if err != nil {
		return nil, err
	}
	slog.Info("po: read table", "file", file, "rows", dt.NumRows(), "columns", dt.NumColumns())
	return dt, nil
}

func (a *app) info(cmd *cobra.Command, args []string) error {
	dt, err := a.open(args[0])
	if err != nil {
		return err
	}
	dts, err := dt.Dtypes()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), dt.Label())
	return render(cmd.OutOrStdout(), dts, a.cfg)
}

func (a *app) selectCmd(cmd *cobra.Command, args []string) error {
	dt, err := a.open(args[0])
	if err != nil {
		return err
	}
	idx, err := frame.ParseExpr(args[1])
	if err != nil {
		return err
	}
	sub, err := dt.Select(idx)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), sub, a.cfg)
}

func (a *app) head(cmd *cobra.Command, args []string) error {
	dt, err := a.open(args[0])
	if err != nil {
		return err
	}
	if a.cfg.MaxRows > 0 {
		dt, err = dt.Head(a.cfg.MaxRows)
		if err != nil {
			return err
		}
	}
	return render(cmd.OutOrStdout(), dt, a.cfg)
}

func (a *app) config(cmd *cobra.Command, args []string) error {
	if a.saveFile == "" {
		return tomlx.Write(a.cfg, cmd.OutOrStdout())
	}
	if err := tomlx.Save(a.cfg, a.saveFile); err != nil {
		return err
	}
	slog.Info("po: saved config", "file", a.saveFile)
	return nil
}
