package generator

import (
	"slices"

	"github.com/rickgao/temarket-data/internal/config"
)

// ScaleParticipants rescales raw hourly counts so the busiest hour has
// maxPlayers participants. No floor or clipping is applied.
//
// If no sample landed in any hour there is nothing to scale against and a
// *config.ConfigError wrapping config.ErrDegenerateDistribution is returned.
func ScaleParticipants(raw []int, maxPlayers int) ([]float64, error) {
	if len(raw) == 0 || slices.Max(raw) == 0 {
		return nil, &config.ConfigError{
			Field:  "market.distribution_mean",
			Reason: config.ErrDegenerateDistribution.Error(),
			Err:    config.ErrDegenerateDistribution,
		}
	}

	peak := float64(slices.Max(raw))
	scaled := make([]float64, len(raw))
	for h, n := range raw {
		scaled[h] = float64(n) / peak * float64(maxPlayers)
	}
	return scaled, nil
}
