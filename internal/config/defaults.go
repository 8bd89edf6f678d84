package config

// Default values for the market parameters.
const (
	DefaultHours              = 24
	DefaultMinPlayers         = 10
	DefaultMaxPlayers         = 123
	DefaultPriceMin           = 8.0
	DefaultPriceMax           = 32.0
	DefaultBidQuantityMin     = 1.0
	DefaultBidQuantityMax     = 5.0
	DefaultAskQuantityMin     = 1.0
	DefaultAskQuantityMax     = 5.0
	DefaultDistributionMean   = 11.5
	DefaultDistributionStddev = 4.7
	DefaultSampleSize         = 15000
)

// Default values for optional configuration fields.
const (
	DefaultCSVPath   = "orders.csv"
	DefaultDBPort    = 5432
	DefaultDBSSLMode = "prefer"
	DefaultMaxConns  = 4
	DefaultMinConns  = 1
	DefaultTable     = "orders"
	DefaultBatchSize = 1000
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// DefaultMarketConfig returns the market parameters of the reference dataset.
func DefaultMarketConfig() MarketConfig {
	return MarketConfig{
		Hours:              DefaultHours,
		MinPlayers:         DefaultMinPlayers,
		MaxPlayers:         DefaultMaxPlayers,
		PriceMin:           DefaultPriceMin,
		PriceMax:           DefaultPriceMax,
		BidQuantityMin:     DefaultBidQuantityMin,
		BidQuantityMax:     DefaultBidQuantityMax,
		AskQuantityMin:     DefaultAskQuantityMin,
		AskQuantityMax:     DefaultAskQuantityMax,
		DistributionMean:   DefaultDistributionMean,
		DistributionStddev: DefaultDistributionStddev,
		SampleSize:         DefaultSampleSize,
	}
}

// Default returns a Config with every field set to its default.
func Default() Config {
	cfg := Config{
		Market: DefaultMarketConfig(),
		Output: OutputConfig{CSVPath: DefaultCSVPath},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills zero values that are never meaningful. Market fields are
// not touched here: zero is a legal distribution mean, so market defaults come
// from decoding the file on top of DefaultMarketConfig.
func (c *Config) applyDefaults() {
	applyDBDefaults(&c.Database.Timescale)

	if c.Writers.BatchSize == 0 {
		c.Writers.BatchSize = DefaultBatchSize
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

func applyDBDefaults(db *DBConfig) {
	if db.Port == 0 {
		db.Port = DefaultDBPort
	}
	if db.SSLMode == "" {
		db.SSLMode = DefaultDBSSLMode
	}
	if db.MaxConns == 0 {
		db.MaxConns = DefaultMaxConns
	}
	if db.MinConns == 0 {
		db.MinConns = DefaultMinConns
	}
	if db.Table == "" {
		db.Table = DefaultTable
	}
}
