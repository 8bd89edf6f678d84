package generator

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rickgao/temarket-data/internal/config"
	"github.com/rickgao/temarket-data/internal/model"
)

func TestGenerate_NarrowMorningScenario(t *testing.T) {
	cfg := config.DefaultMarketConfig()
	cfg.Hours = 3
	cfg.SampleSize = 10000
	cfg.DistributionMean = 0
	cfg.DistributionStddev = 0.05
	cfg.MaxPlayers = 100
	cfg.MinPlayers = 10

	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := g.Run(NewRand(2024))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if res.Scaled[0] != 100 {
		t.Errorf("Scaled[0] = %v, want 100", res.Scaled[0])
	}
	if res.Scaled[1] >= 1 || res.Scaled[2] >= 1 {
		t.Errorf("Scaled[1:] = %v, want near 0", res.Scaled[1:])
	}

	groups := res.Table.ByHour(cfg.Hours)
	sides := model.OrderTable(groups[0]).Sides()
	if sides.Bids != 50 || sides.Asks != 50 || sides.Placeholders != 0 {
		t.Errorf("hour 0 sides = %+v, want 50 bids and 50 asks", sides)
	}
	assertPlaceholderHour(t, 1, groups[1])
	assertPlaceholderHour(t, 2, groups[2])

	if got := res.PlaceholderHours(cfg.MinPlayers); !cmp.Equal(got, []int{1, 2}) {
		t.Errorf("PlaceholderHours() = %v, want [1 2]", got)
	}
}

func TestGenerate_DefaultBidBounds(t *testing.T) {
	table, err := Generate(config.DefaultMarketConfig(), NewRand(99))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	bids := 0
	for _, r := range table {
		if r.IsPlaceholder() || r.Side != model.SideBid {
			continue
		}
		bids++
		if r.Price < 8 || r.Price > 32 {
			t.Errorf("bid price %v outside [8, 32]", r.Price)
		}
		if r.Quantity < 1 || r.Quantity > 5 {
			t.Errorf("bid quantity %v outside [1, 5]", r.Quantity)
		}
	}
	if bids == 0 {
		t.Error("default config produced no bids")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := config.DefaultMarketConfig()

	first, err := Generate(cfg, NewRand(5))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := Generate(cfg, NewRand(5))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	opt := cmp.AllowUnexported(model.ParticipantID{})
	if diff := cmp.Diff(first, second, opt); diff != "" {
		t.Errorf("same seed produced different tables (-first +second):\n%s", diff)
	}

	other, err := Generate(cfg, NewRand(6))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if cmp.Equal(first, other, opt) {
		t.Error("different seeds produced identical tables")
	}
}

func TestGenerate_Degenerate(t *testing.T) {
	cfg := config.DefaultMarketConfig()
	cfg.DistributionMean = -50
	cfg.DistributionStddev = 1e-9

	table, err := Generate(cfg, NewRand(1))
	if err == nil {
		t.Fatalf("Generate() expected error, got %d records", len(table))
	}
	if table != nil {
		t.Errorf("Generate() returned partial table of %d records", len(table))
	}
	if !errors.Is(err, config.ErrDegenerateDistribution) {
		t.Errorf("error = %v, want ErrDegenerateDistribution", err)
	}
	var cfgErr *config.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error type = %T, want *config.ConfigError", err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultMarketConfig()
	cfg.PriceMin, cfg.PriceMax = 40, 8

	if _, err := New(cfg); err == nil {
		t.Fatal("New() expected error for inverted price range, got nil")
	}
	if _, err := Generate(cfg, NewRand(1)); err == nil {
		t.Fatal("Generate() expected error for inverted price range, got nil")
	}
}

func TestRun_NilRand(t *testing.T) {
	g, err := New(config.DefaultMarketConfig(), WithLogger(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := g.Run(nil); !errors.Is(err, ErrNilRand) {
		t.Errorf("Run(nil) error = %v, want ErrNilRand", err)
	}
}

func TestGenerator_ConfigIsCopied(t *testing.T) {
	cfg := config.DefaultMarketConfig()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cfg.Hours = 1

	if g.Config().Hours != config.DefaultHours {
		t.Errorf("Config().Hours = %d, want %d", g.Config().Hours, config.DefaultHours)
	}
}
