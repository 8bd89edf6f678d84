package writer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rickgao/temarket-data/internal/model"
)

// DB is the subset of *pgxpool.Pool used by OrderWriter.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

var orderColumns = []string{"run_id", "row_num", "hour", "participant", "side", "price", "quantity"}

const createOrdersSQL = `
	CREATE TABLE IF NOT EXISTS %s (
		run_id      UUID             NOT NULL,
		row_num     INTEGER          NOT NULL,
		hour        INTEGER          NOT NULL,
		participant INTEGER,
		side        TEXT             NOT NULL,
		price       DOUBLE PRECISION NOT NULL,
		quantity    DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (run_id, row_num)
	)
`

// OrderWriter copies generated tables into the orders table.
type OrderWriter struct {
	cfg    WriterConfig
	table  string
	db     DB
	logger *slog.Logger

	mu      sync.Mutex
	metrics WriterMetrics
}

// NewOrderWriter creates a new OrderWriter for the named table.
func NewOrderWriter(cfg WriterConfig, table string, db DB, logger *slog.Logger) *OrderWriter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultWriterConfig().BatchSize
	}
	return &OrderWriter{
		cfg:    cfg,
		table:  table,
		db:     db,
		logger: logger,
	}
}

// Name implements Sink.
func (w *OrderWriter) Name() string { return "timescale:" + w.table }

// EnsureSchema creates the orders table if it does not exist.
func (w *OrderWriter) EnsureSchema(ctx context.Context) error {
	sql := fmt.Sprintf(createOrdersSQL, pgx.Identifier{w.table}.Sanitize())
	if _, err := w.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("create table %s: %w", w.table, err)
	}
	return nil
}

// Write copies every record of table tagged with runID, BatchSize rows at a
// time. Rows already copied stay in place if a later batch fails.
func (w *OrderWriter) Write(ctx context.Context, runID uuid.UUID, table model.OrderTable) error {
	rows, err := w.transform(runID, table)
	if err != nil {
		return err
	}

	for start := 0; start < len(rows); start += w.cfg.BatchSize {
		end := min(start+w.cfg.BatchSize, len(rows))
		if err := w.flush(ctx, rows[start:end]); err != nil {
			return err
		}
	}

	w.logger.Info("orders written",
		"run_id", runID,
		"table", w.table,
		"rows", len(rows),
	)
	return nil
}

// Stats returns current metrics.
func (w *OrderWriter) Stats() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// transform converts records to orderRows. Row numbers, hours and
// participant ids must fit the INTEGER columns.
func (w *OrderWriter) transform(runID uuid.UUID, table model.OrderTable) ([]orderRow, error) {
	if len(table) > math.MaxInt32 {
		return nil, fmt.Errorf("table has %d rows, limit is %d", len(table), math.MaxInt32)
	}

	rows := make([]orderRow, len(table))
	for i, r := range table {
		if !fitsInt4(r.Hour) {
			return nil, fmt.Errorf("row %d: hour %d out of int4 range", i, r.Hour)
		}
		if id, ok := r.Participant.Get(); ok && !fitsInt4(id) {
			return nil, fmt.Errorf("row %d: participant %d out of int4 range", i, id)
		}
		rows[i] = orderRow{
			RunID:       runID,
			RowNum:      int32(i),
			Hour:        int32(r.Hour),
			Participant: participantToInt4(r.Participant),
			Side:        r.Side.String(),
			Price:       r.Price,
			Quantity:    r.Quantity,
		}
	}
	return rows, nil
}

// flush copies one batch.
func (w *OrderWriter) flush(ctx context.Context, batch []orderRow) error {
	start := time.Now()

	src := pgx.CopyFromSlice(len(batch), func(i int) ([]any, error) {
		r := batch[i]
		return []any{r.RunID, r.RowNum, r.Hour, r.Participant, r.Side, r.Price, r.Quantity}, nil
	})

	n, err := w.db.CopyFrom(ctx, pgx.Identifier{w.table}, orderColumns, src)
	if err != nil {
		w.mu.Lock()
		w.metrics.Errors++
		w.mu.Unlock()
		w.logger.Error("copy orders failed", "error", err, "count", len(batch))
		return fmt.Errorf("copy orders: %w", err)
	}

	w.mu.Lock()
	w.metrics.Inserts += n
	w.metrics.Flushes++
	w.mu.Unlock()

	w.logger.Debug("flushed orders",
		"count", n,
		"duration", time.Since(start),
	)
	return nil
}
