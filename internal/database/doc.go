// Package database provides the connection pool for the optional
// TimescaleDB/PostgreSQL order sink.
package database
