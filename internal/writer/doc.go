// Package writer exports generated order tables.
//
// Sinks:
//   - CSV file (atomic replace) with the columns
//     Hour, Participant, Type, Price (cents/KWh), Quantity (KW)
//   - TimescaleDB/PostgreSQL orders table, copied in batches and tagged with a run id
//
// All sinks use append-only semantics; a table is written once and never updated.
package writer
