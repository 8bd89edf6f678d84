package writer

import (
	"math"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rickgao/temarket-data/internal/model"
)

func fitsInt4(v int) bool {
	return v >= math.MinInt32 && v <= math.MaxInt32
}

// participantToInt4 converts an optional participant id to a nullable int4.
// Callers check the id with fitsInt4 first.
func participantToInt4(p model.ParticipantID) pgtype.Int4 {
	id, ok := p.Get()
	return pgtype.Int4{Int32: int32(id), Valid: ok}
}

// formatFloat renders v with the fewest digits that parse back to v.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
