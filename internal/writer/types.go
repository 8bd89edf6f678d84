package writer

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// WriterConfig contains configuration for batch writers.
type WriterConfig struct {
	// BatchSize is the number of rows copied per round trip.
	BatchSize int
}

// DefaultWriterConfig returns sensible defaults.
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		BatchSize: 1000,
	}
}

// orderRow represents a row to be inserted into the orders table.
type orderRow struct {
	RunID       uuid.UUID
	RowNum      int32 // Position in the sorted table
	Hour        int32
	Participant pgtype.Int4 // NULL for placeholders
	Side        string      // "Bid" or "Ask"
	Price       float64     // cents/KWh
	Quantity    float64     // KW
}

// WriterMetrics holds metrics for a writer.
type WriterMetrics struct {
	Inserts int64
	Errors  int64
	Flushes int64
}
