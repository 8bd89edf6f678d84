package generator

import (
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/rickgao/temarket-data/internal/config"
	"github.com/rickgao/temarket-data/internal/model"
)

// ErrNilRand is returned when a run is started without a random source.
var ErrNilRand = errors.New("generator: nil random source")

// Result holds a finished run together with its intermediate vectors.
type Result struct {
	Raw    []int            // Samples bucketed per hour
	Scaled []float64        // Participants per hour after scaling
	Table  model.OrderTable // Sorted order book
}

// PlaceholderHours returns the hours that fell below the threshold.
func (r *Result) PlaceholderHours(minPlayers int) []int {
	var hours []int
	for h, c := range r.Scaled {
		if c < float64(minPlayers) {
			hours = append(hours, h)
		}
	}
	return hours
}

// Generator is a validated, reusable market configuration.
type Generator struct {
	cfg    config.MarketConfig
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New validates cfg and returns a Generator for it.
func New(cfg config.MarketConfig, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g, nil
}

// Config returns a copy of the generator's market parameters.
func (g *Generator) Config() config.MarketConfig { return g.cfg }

// Generate runs all stages and returns the sorted order table.
func (g *Generator) Generate(rng *rand.Rand) (model.OrderTable, error) {
	res, err := g.Run(rng)
	if err != nil {
		return nil, err
	}
	return res.Table, nil
}

// Run runs all stages and keeps the intermediate vectors. On error no
// partial table is returned.
func (g *Generator) Run(rng *rand.Rand) (*Result, error) {
	if rng == nil {
		return nil, ErrNilRand
	}

	raw := SampleArrivals(g.cfg, rng)

	scaled, err := ScaleParticipants(raw, g.cfg.MaxPlayers)
	if err != nil {
		g.logger.Warn("arrival sampling produced no bucketed samples",
			"samples", g.cfg.SampleSize,
			"mean", g.cfg.DistributionMean,
			"stddev", g.cfg.DistributionStddev,
			"hours", g.cfg.Hours,
		)
		return nil, err
	}

	table := BuildOrders(g.cfg, scaled, rng)
	res := &Result{Raw: raw, Scaled: scaled, Table: table}

	g.logger.Debug("order book generated",
		"hours", g.cfg.Hours,
		"records", len(table),
		"placeholder_hours", len(res.PlaceholderHours(g.cfg.MinPlayers)),
	)
	return res, nil
}

// Generate validates cfg and runs a single generation with rng.
func Generate(cfg config.MarketConfig, rng *rand.Rand) (model.OrderTable, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(rng)
}
