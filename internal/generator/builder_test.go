package generator

import (
	"testing"

	"github.com/rickgao/temarket-data/internal/config"
	"github.com/rickgao/temarket-data/internal/model"
)

func TestSplitParticipants(t *testing.T) {
	tests := []struct {
		c             float64
		wantProsumers int
		wantConsumers int
	}{
		{123, 61, 62},
		{100, 50, 50},
		{10, 5, 5},
		{10.99, 5, 5},
		{11.5, 5, 6},
		{1.7, 0, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		p, c := SplitParticipants(tt.c)
		if p != tt.wantProsumers || c != tt.wantConsumers {
			t.Errorf("SplitParticipants(%v) = (%d, %d), want (%d, %d)",
				tt.c, p, c, tt.wantProsumers, tt.wantConsumers)
		}
	}
}

func TestBuildOrders(t *testing.T) {
	cfg := config.DefaultMarketConfig()
	cfg.Hours = 4
	cfg.MinPlayers = 10
	cfg.AskQuantityMin = 20
	cfg.AskQuantityMax = 30

	// hour 0 below threshold, hour 1 exactly at it, hour 2 fractional, hour 3 zero.
	scaled := []float64{9.99, 10, 25.7, 0}

	table := BuildOrders(cfg, scaled, NewRand(3))

	if !table.IsSorted() {
		t.Fatal("table is not sorted by (hour, participant)")
	}
	if want := 2 + 10 + 25 + 2; len(table) != want {
		t.Fatalf("len(table) = %d, want %d", len(table), want)
	}

	groups := table.ByHour(cfg.Hours)
	for _, h := range []int{0, 3} {
		assertPlaceholderHour(t, h, groups[h])
	}

	tests := []struct {
		hour          int
		wantProsumers int
		wantConsumers int
	}{
		{1, 5, 5},
		{2, 12, 13},
	}
	for _, tt := range tests {
		records := groups[tt.hour]
		if len(records) != tt.wantProsumers+tt.wantConsumers {
			t.Errorf("hour %d: %d records, want %d", tt.hour, len(records), tt.wantProsumers+tt.wantConsumers)
			continue
		}
		for i, r := range records {
			id, ok := r.Participant.Get()
			if !ok || id != i {
				t.Errorf("hour %d record %d: participant = %q, want %d", tt.hour, i, r.Participant, i)
			}
			wantSide := model.SideBid
			if i >= tt.wantProsumers {
				wantSide = model.SideAsk
			}
			if r.Side != wantSide {
				t.Errorf("hour %d participant %d: side = %s, want %s", tt.hour, i, r.Side, wantSide)
			}
			if r.Price < cfg.PriceMin || r.Price > cfg.PriceMax {
				t.Errorf("hour %d participant %d: price %v outside [%v, %v]", tt.hour, i, r.Price, cfg.PriceMin, cfg.PriceMax)
			}
			lo, hi := cfg.BidQuantityMin, cfg.BidQuantityMax
			if r.Side == model.SideAsk {
				lo, hi = cfg.AskQuantityMin, cfg.AskQuantityMax
			}
			if r.Quantity < lo || r.Quantity > hi {
				t.Errorf("hour %d participant %d: quantity %v outside [%v, %v]", tt.hour, i, r.Quantity, lo, hi)
			}
		}
	}
}

func TestBuildOrders_TableSize(t *testing.T) {
	cfg := config.DefaultMarketConfig()
	scaled := []float64{0, 3, 10, 10.5, 123}

	table := BuildOrders(cfg, scaled, NewRand(11))

	if got, want := len(table), tableSize(cfg, scaled); got != want {
		t.Errorf("len(table) = %d, tableSize = %d", got, want)
	}
	if cap(table) != len(table) {
		t.Errorf("cap(table) = %d, want exact preallocation %d", cap(table), len(table))
	}
}

func assertPlaceholderHour(t *testing.T, hour int, records []model.OrderRecord) {
	t.Helper()
	if len(records) != 2 {
		t.Fatalf("hour %d: %d records, want 2 placeholders", hour, len(records))
	}
	wantSides := []model.OrderSide{model.SideBid, model.SideAsk}
	for i, r := range records {
		if !r.IsPlaceholder() {
			t.Errorf("hour %d record %d: participant = %q, want absent", hour, i, r.Participant)
		}
		if r.Price != 0 || r.Quantity != 0 {
			t.Errorf("hour %d record %d: price/quantity = %v/%v, want 0/0", hour, i, r.Price, r.Quantity)
		}
		if r.Side != wantSides[i] {
			t.Errorf("hour %d record %d: side = %s, want %s", hour, i, r.Side, wantSides[i])
		}
	}
}
