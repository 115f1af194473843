// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzytwin/core"
	"github.com/katalvlaran/fuzzytwin/graphio"
	"github.com/katalvlaran/fuzzytwin/isomorph"
	"github.com/katalvlaran/fuzzytwin/logger"
	"github.com/katalvlaran/fuzzytwin/server"
	"github.com/katalvlaran/fuzzytwin/similarity"
	"github.com/katalvlaran/fuzzytwin/tnorm"
	"github.com/katalvlaran/fuzzytwin/twinwidth"
)

// defaultKind is the t-norm of tw and sim when --tnorm is not given.
const defaultKind = tnorm.Min

const kindUsage = "t-norm family: min, prod, luk or drast"

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(a.cfg).Run(ctx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from FUZZYTWIN_ADDR or :5000)")
	cmd.Flags().Int("parallel", 0, "twin-width search workers")
	cmd.Flags().Int("max-vertices", 0, "largest graph accepted by /get-tw, 0 for no limit")

	return cmd
}

func newTwinWidthCmd(a *app) *cobra.Command {
	var (
		kind string
		expr string
	)
	cmd := &cobra.Command{
		Use:   "tw [graph-file]",
		Short: "Compute the fuzzy twin-width of a graph",
		Long: `Compute the fuzzy twin-width of a graph and print every optimal
merge sequence. The graph is read from a .json, .yaml or .graph file, or
given inline with --expr, e.g. --expr "A:0.5 B C; A-B:0.5 B-C".`,
		Args: func(cmd *cobra.Command, args []string) error {
			if expr != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var arg string
			if expr != "" {
				arg = expr
			} else {
				arg = args[0]
			}
			g, err := buildGraph(arg, expr != "")
			if err != nil {
				return err
			}
			k, err := tnorm.Parse(kind)
			if err != nil {
				return err
			}
			r, err := twinwidth.Compute(g, k,
				twinwidth.WithMaxVertices(a.cfg.MaxVertices),
				twinwidth.WithParallel(a.cfg.Parallel),
			)
			if err != nil {
				return err
			}
			logger.Debug("Twin-width computed", "width", r.Width, "sequences", len(r.Sequences))

			return writeJSON(cmd.OutOrStdout(), graphio.NewTwinWidthResponse(r))
		},
	}
	cmd.Flags().StringVarP(&kind, "tnorm", "t", string(defaultKind), kindUsage)
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "inline graph expression instead of a file")
	cmd.Flags().Int("parallel", 0, "search workers")
	cmd.Flags().Int("max-vertices", 0, "refuse larger graphs, 0 for no limit")

	return cmd
}

func newIsomorphismCmd(_ *app) *cobra.Command {
	var expr bool
	cmd := &cobra.Command{
		Use:   "iso <graph1> <graph2>",
		Short: "List every isomorphism between two graphs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, g2, err := buildPair(args, expr)
			if err != nil {
				return err
			}
			ok, maps, err := isomorph.Find(g1, g2)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), graphio.NewIsomorphismResponse(ok, maps))
		},
	}
	cmd.Flags().BoolVarP(&expr, "expr", "e", false, "arguments are graph expressions, not files")

	return cmd
}

func newSimilarityCmd(_ *app) *cobra.Command {
	var (
		kind string
		expr bool
	)
	cmd := &cobra.Command{
		Use:   "sim <graph1> <graph2>",
		Short: "Compute the fuzzy similarity of two graphs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := tnorm.Parse(kind)
			if err != nil {
				return err
			}
			g1, g2, err := buildPair(args, expr)
			if err != nil {
				return err
			}
			r, err := similarity.Compute(g1, g2, k)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), graphio.NewSimilarityResponse(r))
		},
	}
	cmd.Flags().StringVarP(&kind, "tnorm", "t", string(defaultKind), kindUsage)
	cmd.Flags().BoolVarP(&expr, "expr", "e", false, "arguments are graph expressions, not files")

	return cmd
}

func buildGraph(arg string, expr bool) (*core.Graph, error) {
	d, err := loadDescription(arg, expr)
	if err != nil {
		return nil, err
	}

	return d.Build()
}

func buildPair(args []string, expr bool) (*core.Graph, *core.Graph, error) {
	g1, err := buildGraph(args[0], expr)
	if err != nil {
		return nil, nil, err
	}
	g2, err := buildGraph(args[1], expr)
	if err != nil {
		return nil, nil, err
	}

	return g1, g2, nil
}
