package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rickgao/temarket-data/internal/config"
	"github.com/rickgao/temarket-data/internal/database"
	"github.com/rickgao/temarket-data/internal/generator"
	"github.com/rickgao/temarket-data/internal/model"
	"github.com/rickgao/temarket-data/internal/report"
	"github.com/rickgao/temarket-data/internal/version"
	"github.com/rickgao/temarket-data/internal/writer"
)

// CLI is the Cobra-based command-line interface.
type CLI struct {
	root   *cobra.Command
	stderr io.Writer

	cfg    *config.Config
	logger *slog.Logger
}

// NewCLI sets up the CLI. Logs go to stderr so CSV on stdout stays clean.
func NewCLI(stderr io.Writer) *CLI {
	cli := &CLI{stderr: stderr}
	cli.root = &cobra.Command{
		Use:           "tegen",
		Short:         "Mock order book generator for a transactive energy market",
		SilenceUsage:  true,
		SilenceErrors: true, // Run logs them
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.setup(cmd)
		},
	}

	pf := cli.root.PersistentFlags()
	pf.StringP("config", "c", "", "Path to a YAML or TOML config file")
	pf.Int64("seed", 0, "Random seed (0 derives one from the clock)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.Int("hours", 0, "Trading hours per day")
	pf.Int("min-players", 0, "Minimum participants for an hour to get real orders")
	pf.Int("max-players", 0, "Participants at the busiest hour")
	pf.Int("sample-size", 0, "Number of arrival samples")
	pf.Float64("mean", 0, "Mean of the arrival distribution, in hours")
	pf.Float64("stddev", 0, "Standard deviation of the arrival distribution, in hours")

	cli.root.AddCommand(
		cli.newGenerateCmd(),
		cli.newSummaryCmd(),
		cli.newPlotCmd(),
		cli.newVersionCmd(),
	)
	return cli
}

// Run runs the CLI and returns the process exit code.
func (cli *CLI) Run(ctx context.Context, args []string) int {
	cli.root.SetArgs(args)
	if err := cli.root.ExecuteContext(ctx); err != nil {
		logger := cli.logger
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(cli.stderr, nil))
		}
		logger.Error(err.Error())
		return 1
	}
	return 0
}

// setup loads configuration, applies flag overrides and builds the logger.
func (cli *CLI) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}

	var cfg *config.Config
	if path != "" {
		if cfg, err = config.LoadWithDefaults(path); err != nil {
			return err
		}
	} else {
		def := config.Default()
		cfg = &def
	}

	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("hours") {
		cfg.Market.Hours, _ = flags.GetInt("hours")
	}
	if flags.Changed("min-players") {
		cfg.Market.MinPlayers, _ = flags.GetInt("min-players")
	}
	if flags.Changed("max-players") {
		cfg.Market.MaxPlayers, _ = flags.GetInt("max-players")
	}
	if flags.Changed("sample-size") {
		cfg.Market.SampleSize, _ = flags.GetInt("sample-size")
	}
	if flags.Changed("mean") {
		cfg.Market.DistributionMean, _ = flags.GetFloat64("mean")
	}
	if flags.Changed("stddev") {
		cfg.Market.DistributionStddev, _ = flags.GetFloat64("stddev")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	cli.cfg = cfg
	cli.logger = newLogger(cli.stderr, cfg.Log)
	slog.SetDefault(cli.logger)
	return nil
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// generate runs the generator with the configured seed.
func (cli *CLI) generate() (*generator.Result, error) {
	seed := cli.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := generator.New(cli.cfg.Market, generator.WithLogger(cli.logger))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := g.Run(generator.NewRand(seed))
	if err != nil {
		return nil, fmt.Errorf("generate order book: %w", err)
	}

	cli.logger.Info("order book generated",
		"seed", seed,
		"hours", cli.cfg.Market.Hours,
		"records", len(res.Table),
		"duration", time.Since(start),
	)
	return res, nil
}

// loadOrGenerate reads a CSV table when input is set, otherwise generates one.
func (cli *CLI) loadOrGenerate(input string) (model.OrderTable, error) {
	if input == "" {
		res, err := cli.generate()
		if err != nil {
			return nil, err
		}
		return res.Table, nil
	}

	table, err := writer.ReadCSVFile(input)
	if err != nil {
		return nil, err
	}
	cli.logger.Info("order table loaded", "input", input, "records", len(table))

	// A table read from disk may span a different number of hours.
	if n := table.Hours(); n > 0 {
		cli.cfg.Market.Hours = n
	}
	return table, nil
}

func (cli *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an order book and export it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("out") {
				cli.cfg.Output.CSVPath, _ = cmd.Flags().GetString("out")
			}
			if cmd.Flags().Changed("db") {
				cli.cfg.Database.Timescale.Enabled, _ = cmd.Flags().GetBool("db")
				if err := cli.cfg.Validate(); err != nil {
					return fmt.Errorf("validate config: %w", err)
				}
			}

			res, err := cli.generate()
			if err != nil {
				return err
			}
			return cli.export(cmd.Context(), cmd.OutOrStdout(), res.Table)
		},
	}
	cmd.Flags().StringP("out", "o", "", `CSV output path ("-" for stdout, "" to skip)`)
	cmd.Flags().Bool("db", false, "Also copy the table into TimescaleDB")
	return cmd
}

// export writes table to every configured sink under a fresh run id.
func (cli *CLI) export(ctx context.Context, stdout io.Writer, table model.OrderTable) error {
	runID := uuid.New()

	var sinks []writer.Sink
	if path := cli.cfg.Output.CSVPath; path != "" {
		sinks = append(sinks, writer.CSVSink{Path: path, Stdout: stdout})
	}

	if db := cli.cfg.Database.Timescale; db.Enabled {
		cli.logger.Info("connecting to database",
			"host", db.Host,
			"port", db.Port,
			"database", db.Name,
		)
		pool, err := database.Connect(ctx, db)
		if err != nil {
			return fmt.Errorf("connect timescale: %w", err)
		}
		defer pool.Close()

		w := writer.NewOrderWriter(writer.WriterConfig{BatchSize: cli.cfg.Writers.BatchSize}, db.Table, pool, cli.logger)
		if err := w.EnsureSchema(ctx); err != nil {
			return err
		}
		sinks = append(sinks, w)
	}

	if len(sinks) == 0 {
		cli.logger.Warn("no output configured; table discarded", "records", len(table))
		return nil
	}

	if err := writer.Export(ctx, runID, table, sinks...); err != nil {
		return err
	}
	for _, s := range sinks {
		cli.logger.Info("table exported", "run_id", runID, "sink", s.Name())
	}
	return nil
}

func (cli *CLI) newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print aggregate statistics of a generated or saved order book",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			table, err := cli.loadOrGenerate(input)
			if err != nil {
				return err
			}
			return report.Summarize(table, cli.cfg.Market).Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("input", "i", "", "Read the table from a CSV file instead of generating one")
	return cmd
}

func (cli *CLI) newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot records per hour against the theoretical arrival curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			table, err := cli.loadOrGenerate(input)
			if err != nil {
				return err
			}

			threshold := cli.cfg.Market.MinPlayers
			if cmd.Flags().Changed("threshold") {
				threshold, _ = cmd.Flags().GetInt("threshold")
			}
			hg := report.NewHistogram(table, cli.cfg.Market, threshold)
			hg.BarWidth, _ = cmd.Flags().GetInt("width")
			return hg.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("input", "i", "", "Read the table from a CSV file instead of generating one")
	cmd.Flags().Int("threshold", 0, "Hours with fewer records display as zero (default min_players)")
	cmd.Flags().Int("width", report.DefaultBarWidth, "Width of the longest bar")
	return cmd
}

func (cli *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Config is not needed to print the version.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
