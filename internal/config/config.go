package config

// Config is the root configuration for a tegen run.
type Config struct {
	// Seed feeds the generator's random source. Zero means derive one from the clock.
	Seed     int64          `yaml:"seed" toml:"seed"`
	Market   MarketConfig   `yaml:"market" toml:"market"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Database DatabaseConfig `yaml:"database" toml:"database"`
	Writers  WritersConfig  `yaml:"writers" toml:"writers"`
	Log      LogConfig      `yaml:"log" toml:"log"`
}

// MarketConfig parameterizes a single generation call.
type MarketConfig struct {
	Hours      int `yaml:"hours" toml:"hours"`             // Trading hours per day
	MinPlayers int `yaml:"min_players" toml:"min_players"` // Threshold for real orders in an hour
	MaxPlayers int `yaml:"max_players" toml:"max_players"` // Participants at the busiest hour

	PriceMin float64 `yaml:"price_min" toml:"price_min"` // cents/KWh
	PriceMax float64 `yaml:"price_max" toml:"price_max"` // cents/KWh

	BidQuantityMin float64 `yaml:"bid_quantity_min" toml:"bid_quantity_min"` // KW
	BidQuantityMax float64 `yaml:"bid_quantity_max" toml:"bid_quantity_max"` // KW
	AskQuantityMin float64 `yaml:"ask_quantity_min" toml:"ask_quantity_min"` // KW
	AskQuantityMax float64 `yaml:"ask_quantity_max" toml:"ask_quantity_max"` // KW

	DistributionMean   float64 `yaml:"distribution_mean" toml:"distribution_mean"`
	DistributionStddev float64 `yaml:"distribution_stddev" toml:"distribution_stddev"`
	SampleSize         int     `yaml:"sample_size" toml:"sample_size"`
}

// OutputConfig controls the CSV export.
type OutputConfig struct {
	CSVPath string `yaml:"csv_path" toml:"csv_path"` // "-" writes to stdout, "" disables
}

// DatabaseConfig holds the optional TimescaleDB sink.
type DatabaseConfig struct {
	Timescale DBConfig `yaml:"timescale" toml:"timescale"`
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Enabled  bool   `yaml:"enabled" toml:"enabled"`
	Host     string `yaml:"host" toml:"host"`
	Port     int    `yaml:"port" toml:"port"`
	Name     string `yaml:"name" toml:"name"`
	User     string `yaml:"user" toml:"user"`
	Password string `yaml:"password" toml:"password"`
	SSLMode  string `yaml:"ssl_mode" toml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns" toml:"max_conns"`
	MinConns int    `yaml:"min_conns" toml:"min_conns"`
	Table    string `yaml:"table" toml:"table"`
}

// WritersConfig holds batch writer settings.
type WritersConfig struct {
	BatchSize int `yaml:"batch_size" toml:"batch_size"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // text or json
}
