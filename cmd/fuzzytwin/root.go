// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzytwin/config"
	"github.com/katalvlaran/fuzzytwin/graphio"
	"github.com/katalvlaran/fuzzytwin/logger"
	"github.com/katalvlaran/fuzzytwin/logger/console"
)

// app carries the resolved configuration from the root command to its
// subcommands.
type app struct {
	cfg     config.Config
	envFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "fuzzytwin",
		Short:        "Fuzzy twin-width, isomorphism and similarity of weighted graphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the environment")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(a),
		newTwinWidthCmd(a),
		newIsomorphismCmd(a),
		newSimilarityCmd(a),
	)

	return root
}

// setup loads the configuration, applies flag overrides and installs the
// console logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = a.debug
	}
	if err := applyOverrides(cmd, &cfg); err != nil {
		return err
	}
	a.cfg = cfg

	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  cfg.Debug,
		Output: cmd.ErrOrStderr(),
	}))
	logger.Debug("Configuration loaded",
		"addr", cfg.Addr, "max_vertices", cfg.MaxVertices, "parallel", cfg.Parallel)

	return nil
}

// applyOverrides copies the flags a subcommand defines and the user set
// into cfg.
func applyOverrides(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	var err error
	if f.Lookup("addr") != nil && f.Changed("addr") {
		if cfg.Addr, err = f.GetString("addr"); err != nil {
			return err
		}
	}
	if f.Lookup("parallel") != nil && f.Changed("parallel") {
		if cfg.Parallel, err = f.GetInt("parallel"); err != nil {
			return err
		}
	}
	if f.Lookup("max-vertices") != nil && f.Changed("max-vertices") {
		if cfg.MaxVertices, err = f.GetInt("max-vertices"); err != nil {
			return err
		}
	}

	return cfg.Validate()
}

// loadDescription reads arg as a graph file, or parses it when expr is
// set.
func loadDescription(arg string, expr bool) (graphio.Description, error) {
	if expr {
		return graphio.ParseExpr(arg)
	}

	return graphio.LoadFile(arg)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
