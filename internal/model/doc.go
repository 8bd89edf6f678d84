// Package model defines the order book records produced by the generator.
//
// Conventions:
//   - Prices: cents/KWh as float64
//   - Quantities: KW as float64
//   - Hours: zero-based index into the trading day
//   - Participant ids: per hour and per table, not globally unique
package model
