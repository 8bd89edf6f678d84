package generator

import (
	"math"
	"math/rand/v2"

	"github.com/rickgao/temarket-data/internal/config"
)

// SampleArrivals draws cfg.SampleSize values from
// Normal(cfg.DistributionMean, cfg.DistributionStddev) and returns, for each
// hour h in [0, cfg.Hours), the number of samples s with |s - h| < 0.5.
func SampleArrivals(cfg config.MarketConfig, rng *rand.Rand) []int {
	counts := make([]int, cfg.Hours)
	for range cfg.SampleSize {
		s := cfg.DistributionMean + cfg.DistributionStddev*rng.NormFloat64()
		bucket(counts, s)
	}
	return counts
}

// bucket increments the hour nearest to s. Only the nearest integer can be
// strictly closer than half an hour, and a sample exactly halfway between two
// hours belongs to neither.
func bucket(counts []int, s float64) {
	h := math.Round(s)
	if math.Abs(s-h) >= 0.5 {
		return
	}
	if h < 0 || h >= float64(len(counts)) {
		return
	}
	counts[int(h)]++
}
