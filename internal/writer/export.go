package writer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rickgao/temarket-data/internal/model"
)

// Sink receives a finished order table.
type Sink interface {
	Name() string
	Write(ctx context.Context, runID uuid.UUID, table model.OrderTable) error
}

// Export writes table to every sink in parallel. The table must not be
// modified until Export returns. The first sink error cancels the others.
func Export(ctx context.Context, runID uuid.UUID, table model.OrderTable, sinks ...Sink) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range sinks {
		g.Go(func() error {
			if err := s.Write(ctx, runID, table); err != nil {
				return fmt.Errorf("sink %s: %w", s.Name(), err)
			}
			return nil
		})
	}
	return g.Wait()
}
