package config

import "errors"

// ErrDegenerateDistribution is reported when no arrival sample lands inside
// the trading window, so there is no busiest hour to scale against.
var ErrDegenerateDistribution = errors.New("degenerate arrival distribution: no samples bucketed")

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string // dotted path, e.g. "market.price_min"
	Reason string
	Err    error // optional underlying cause
}

func (e *ConfigError) Error() string {
	return e.Field + " " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

func fieldError(field, reason string) *ConfigError {
	return &ConfigError{Field: field, Reason: reason}
}
