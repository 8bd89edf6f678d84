// Package config holds the market parameters for order book generation and
// the file loader used by the tegen command.
//
// Configuration files may be YAML (.yaml, .yml) or TOML (.toml) and support
// ${VAR} syntax for environment variable interpolation.
package config
