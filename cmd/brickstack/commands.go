package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/brickstack/brickio"
	"github.com/katalvlaran/brickstack/config"
	"github.com/katalvlaran/brickstack/geom"
	"github.com/katalvlaran/brickstack/settle"
	"github.com/katalvlaran/brickstack/support"
)

// app carries state shared by every command for one invocation.
type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger

	// flag values, applied over cfg when set
	input     string
	logLevel  string
	logFormat string
	output    string
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "brickstack",
		Short: "Settle falling bricks and find which ones can be safely removed",
		Long: `brickstack drops axis-aligned bricks onto the ground in order of height,
then analyzes the resulting support graph: which bricks are load-bearing,
which can be disintegrated safely, and how many would topple otherwise.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRemovable(new(bool)),
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.input, "input", "i", "", "brick file (\"-\" for stdin)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text or json")

	root.AddCommand(
		a.removableCmd(),
		a.settleCmd(),
		a.cascadeCmd(),
		a.graphCmd(),
	)

	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return a.fail(cmd, err)
		}
		a.cfg = cfg
	}
	flags := cmd.Flags()
	if flags.Changed("input") {
		a.cfg.Input = a.input
	}
	if flags.Changed("log-level") {
		a.cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		a.cfg.Log.Format = a.logFormat
	}
	if flags.Changed("output") {
		a.cfg.Output.Format = a.output
	}
	if err := a.cfg.Validate(); err != nil {
		return a.fail(cmd, err)
	}
	a.logger = a.cfg.Logger(cmd.ErrOrStderr())

	return nil
}

// fail reports err on stderr and returns it so cobra exits non-zero.
func (a *app) fail(cmd *cobra.Command, err error) error {
	if a.logger != nil {
		a.logger.Error("brickstack failed", slog.String("command", cmd.Name()), slog.Any("error", err))
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "brickstack:", err)
	}

	return err
}

// readBricks parses the configured input.
func (a *app) readBricks(cmd *cobra.Command) ([]geom.Brick, error) {
	var (
		bricks []geom.Brick
		err    error
	)
	if a.cfg.Input == "" || a.cfg.Input == "-" {
		bricks, err = brickio.Parse(cmd.InOrStdin())
	} else {
		bricks, err = brickio.ParseFile(a.cfg.Input)
	}
	if err != nil {
		return nil, err
	}
	a.logger.Debug("bricks parsed", slog.String("input", a.cfg.Input), slog.Int("count", len(bricks)))

	return bricks, nil
}

// analyze parses, settles and builds the support graph.
func (a *app) analyze(cmd *cobra.Command) ([]geom.Brick, *settle.Result, *support.Graph, error) {
	bricks, err := a.readBricks(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	res, err := settle.Settle(bricks,
		settle.WithContext(cmd.Context()),
		settle.WithLogger(a.logger),
	)
	if err != nil {
		return nil, nil, nil, err
	}
	g, err := support.NewGraph(res)
	if err != nil {
		return nil, nil, nil, err
	}
	a.logger.Info("bricks settled",
		slog.Int("bricks", res.Len()),
		slog.Int("supports", g.EdgeCount()),
		slog.Int("removable", res.RemovableCount()),
	)

	return bricks, res, g, nil
}

func (a *app) removableCmd() *cobra.Command {
	list := new(bool)
	cmd := &cobra.Command{
		Use:   "removable",
		Short: "Count bricks whose removal makes nothing else fall",
		Args:  cobra.NoArgs,
		RunE:  a.runRemovable(list),
	}
	cmd.Flags().BoolVar(list, "list", false, "also list the removable bricks")

	return cmd
}

func (a *app) runRemovable(list *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		bricks, res, _, err := a.analyze(cmd)
		if err != nil {
			return a.fail(cmd, err)
		}
		rep := removableReport{Count: res.RemovableCount()}
		if *list {
			for _, id := range res.Removable() {
				rep.Bricks = append(rep.Bricks, describe(bricks, id))
			}
		}

		return a.emit(cmd.OutOrStdout(), rep)
	}
}

func (a *app) settleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settle",
		Short: "Print every brick at its settled position, in input order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, res, _, err := a.analyze(cmd)
			if err != nil {
				return a.fail(cmd, err)
			}
			if a.jsonOutput() {
				rep := make([]settledBrick, len(res.Positions))
				for i, b := range res.Positions {
					rep[i] = settledBrick{Index: i, Brick: b.String(), Fell: res.Fell[i]}
				}
				return a.emit(cmd.OutOrStdout(), rep)
			}

			return brickio.WriteBricks(cmd.OutOrStdout(), res.Positions)
		},
	}
}

func (a *app) cascadeCmd() *cobra.Command {
	var (
		workers  int
		perBrick bool
	)
	cmd := &cobra.Command{
		Use:   "cascade",
		Short: "Sum, over every brick, how many others fall if it alone is removed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("workers") {
				a.cfg.Cascade.Workers = workers
				if err := a.cfg.Validate(); err != nil {
					return a.fail(cmd, err)
				}
			}
			bricks, _, g, err := a.analyze(cmd)
			if err != nil {
				return a.fail(cmd, err)
			}
			counts, err := g.CascadeCounts(cmd.Context(), a.cfg.Cascade.Workers)
			if err != nil {
				return a.fail(cmd, err)
			}
			rep := cascadeReport{}
			for id, c := range counts {
				rep.Total += c
				if perBrick && c > 0 {
					rep.Bricks = append(rep.Bricks, cascadeEntry{Brick: describe(bricks, id), Falls: c})
				}
			}

			return a.emit(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent cascade runs (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&perBrick, "per-brick", false, "list every brick that topples others")

	return cmd
}

func (a *app) graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the support graph: what each brick rests on and holds up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bricks, _, g, err := a.analyze(cmd)
			if err != nil {
				return a.fail(cmd, err)
			}
			order, err := g.TopologicalOrder(cmd.Context())
			if err != nil {
				return a.fail(cmd, err)
			}
			rep := make(graphReport, 0, len(order))
			for _, id := range order {
				below, err := g.SupportedBy(id)
				if err != nil {
					return a.fail(cmd, err)
				}
				above, err := g.Supports(id)
				if err != nil {
					return a.fail(cmd, err)
				}
				rep = append(rep, graphEntry{
					Brick:       describe(bricks, id),
					SupportedBy: names(bricks, below),
					Supports:    names(bricks, above),
					Removable:   g.IsRemovable(id),
				})
			}

			return a.emit(cmd.OutOrStdout(), rep)
		},
	}
}

// describe names a brick by label, falling back to its handle.
func describe(bricks []geom.Brick, id int) string {
	if l := bricks[id].Label; l != "" {
		return l
	}

	return fmt.Sprintf("#%d", id)
}

func names(bricks []geom.Brick, ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = describe(bricks, id)
	}

	return out
}
