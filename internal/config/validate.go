package config

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks the whole configuration. The first problem found is
// returned as a *ConfigError.
func (c *Config) Validate() error {
	if err := c.Market.Validate(); err != nil {
		return err
	}

	if c.Writers.BatchSize < 1 {
		return fieldError("writers.batch_size", "must be >= 1")
	}

	if c.Database.Timescale.Enabled {
		if err := c.Database.Timescale.validate("database.timescale"); err != nil {
			return err
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fieldError("log.level", fmt.Sprintf("must be one of debug, info, warn, error, got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fieldError("log.format", fmt.Sprintf("must be text or json, got %q", c.Log.Format))
	}

	return nil
}

// Validate checks that the market parameters describe a generatable market.
func (m MarketConfig) Validate() error {
	return m.validate("market")
}

func (m MarketConfig) validate(prefix string) error {
	field := func(name string) string { return prefix + "." + name }

	if m.Hours < 1 {
		return fieldError(field("hours"), "must be >= 1")
	}
	if m.SampleSize < 1 {
		return fieldError(field("sample_size"), "must be >= 1")
	}
	if m.MinPlayers < 1 {
		return fieldError(field("min_players"), "must be >= 1")
	}
	if m.MaxPlayers < 1 {
		return fieldError(field("max_players"), "must be >= 1")
	}
	if m.MinPlayers > m.MaxPlayers {
		return fieldError(field("min_players"),
			fmt.Sprintf("(%d) cannot exceed max_players (%d)", m.MinPlayers, m.MaxPlayers))
	}

	floats := []struct {
		name  string
		value float64
	}{
		{"price_min", m.PriceMin},
		{"price_max", m.PriceMax},
		{"bid_quantity_min", m.BidQuantityMin},
		{"bid_quantity_max", m.BidQuantityMax},
		{"ask_quantity_min", m.AskQuantityMin},
		{"ask_quantity_max", m.AskQuantityMax},
		{"distribution_mean", m.DistributionMean},
		{"distribution_stddev", m.DistributionStddev},
	}
	for _, f := range floats {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fieldError(field(f.name), "must be finite")
		}
	}

	if m.DistributionStddev <= 0 {
		return fieldError(field("distribution_stddev"), "must be > 0")
	}

	if err := validateRange(field("price"), m.PriceMin, m.PriceMax); err != nil {
		return err
	}
	if err := validateRange(field("bid_quantity"), m.BidQuantityMin, m.BidQuantityMax); err != nil {
		return err
	}
	if err := validateRange(field("ask_quantity"), m.AskQuantityMin, m.AskQuantityMax); err != nil {
		return err
	}

	return nil
}

// validateRange checks a non-negative [min, max] pair named prefix_min/prefix_max.
func validateRange(prefix string, lo, hi float64) error {
	if lo < 0 {
		return fieldError(prefix+"_min", "must be >= 0")
	}
	if lo > hi {
		return fieldError(prefix+"_min", fmt.Sprintf("(%g) cannot exceed %s_max (%g)", lo, prefix[strings.LastIndex(prefix, ".")+1:], hi))
	}
	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fieldError(prefix+".host", "is required")
	}
	if db.Name == "" {
		return fieldError(prefix+".name", "is required")
	}
	if db.User == "" {
		return fieldError(prefix+".user", "is required")
	}
	if db.Password == "" {
		return fieldError(prefix+".password", "is required")
	}
	if db.Table == "" {
		return fieldError(prefix+".table", "is required")
	}
	if db.MaxConns < 1 {
		return fieldError(prefix+".max_conns", "must be >= 1")
	}
	if db.MinConns < 0 {
		return fieldError(prefix+".min_conns", "must be >= 0")
	}
	if db.MinConns > db.MaxConns {
		return fieldError(prefix+".min_conns",
			fmt.Sprintf("(%d) cannot exceed max_conns (%d)", db.MinConns, db.MaxConns))
	}
	return nil
}
