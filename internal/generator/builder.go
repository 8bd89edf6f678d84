package generator

import (
	"math"
	"math/rand/v2"

	"github.com/rickgao/temarket-data/internal/config"
	"github.com/rickgao/temarket-data/internal/model"
)

// BuildOrders synthesizes the order records for every hour of scaled and
// returns them sorted by (hour, participant).
//
// An hour with c >= cfg.MinPlayers participants gets floor(c/2) bids from
// prosumers 0..p-1 followed by floor(c)-p asks from consumers p onwards.
// Any other hour gets one placeholder bid and one placeholder ask.
func BuildOrders(cfg config.MarketConfig, scaled []float64, rng *rand.Rand) model.OrderTable {
	table := make(model.OrderTable, 0, tableSize(cfg, scaled))
	for hour, c := range scaled {
		table = appendHour(table, cfg, hour, c, rng)
	}
	table.Sort()
	return table
}

// SplitParticipants returns the prosumer and consumer counts for c participants.
func SplitParticipants(c float64) (prosumers, consumers int) {
	prosumers = int(math.Floor(c / 2))
	consumers = int(math.Floor(c)) - prosumers
	return prosumers, consumers
}

func appendHour(table model.OrderTable, cfg config.MarketConfig, hour int, c float64, rng *rand.Rand) model.OrderTable {
	if c < float64(cfg.MinPlayers) {
		return append(table,
			model.Placeholder(hour, model.SideBid),
			model.Placeholder(hour, model.SideAsk),
		)
	}

	prosumers, consumers := SplitParticipants(c)

	for i := range prosumers {
		table = append(table, model.OrderRecord{
			Hour:        hour,
			Participant: model.Participant(i),
			Side:        model.SideBid,
			Price:       uniform(rng, cfg.PriceMin, cfg.PriceMax),
			Quantity:    uniform(rng, cfg.BidQuantityMin, cfg.BidQuantityMax),
		})
	}
	for i := range consumers {
		table = append(table, model.OrderRecord{
			Hour:        hour,
			Participant: model.Participant(prosumers + i),
			Side:        model.SideAsk,
			Price:       uniform(rng, cfg.PriceMin, cfg.PriceMax),
			Quantity:    uniform(rng, cfg.AskQuantityMin, cfg.AskQuantityMax),
		})
	}
	return table
}

// tableSize is the exact number of records BuildOrders will emit.
func tableSize(cfg config.MarketConfig, scaled []float64) int {
	n := 0
	for _, c := range scaled {
		if c < float64(cfg.MinPlayers) {
			n += 2
			continue
		}
		n += int(math.Floor(c))
	}
	return n
}

// uniform draws from [lo, hi]. The clamp absorbs rounding in lo+(hi-lo)*f.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return min(lo+(hi-lo)*rng.Float64(), hi)
}
