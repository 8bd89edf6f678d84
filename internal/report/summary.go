package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rickgao/temarket-data/internal/config"
	"github.com/rickgao/temarket-data/internal/model"
)

// Stats describes a column of real (non-placeholder) records.
type Stats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
}

func (s *Stats) add(v float64) {
	if s.Count == 0 {
		s.Min, s.Max = v, v
	}
	s.Min = math.Min(s.Min, v)
	s.Max = math.Max(s.Max, v)
	s.Mean += (v - s.Mean) / float64(s.Count+1)
	s.Count++
}

// Summary aggregates a generated table.
type Summary struct {
	Config config.MarketConfig

	Records     int
	Sides       model.SideCounts
	ActiveHours int   // Hours with real orders
	PerHour     []int // Records per hour

	Price       Stats
	BidQuantity Stats
	AskQuantity Stats
}

// Summarize computes the summary of table generated with cfg.
func Summarize(table model.OrderTable, cfg config.MarketConfig) Summary {
	s := Summary{
		Config:  cfg,
		Records: len(table),
		Sides:   table.Sides(),
		PerHour: table.CountsByHour(cfg.Hours),
	}

	active := make([]bool, cfg.Hours)
	for _, r := range table {
		if r.IsPlaceholder() {
			continue
		}
		if r.Hour >= 0 && r.Hour < cfg.Hours {
			active[r.Hour] = true
		}
		s.Price.add(r.Price)
		if r.Side == model.SideBid {
			s.BidQuantity.add(r.Quantity)
		} else {
			s.AskQuantity.add(r.Quantity)
		}
	}
	for _, a := range active {
		if a {
			s.ActiveHours++
		}
	}
	return s
}

// Render writes the summary as a bordered panel.
func (s Summary) Render(w io.Writer) error {
	p := message.NewPrinter(language.English)
	cfg := s.Config

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Order book summary"))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(LabelStyle.Render(p.Sprintf("%-22s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("records", p.Sprintf("%d", s.Records))
	row("bids", BidStyle.Render(p.Sprintf("%d", s.Sides.Bids)))
	row("asks", AskStyle.Render(p.Sprintf("%d", s.Sides.Asks)))
	row("placeholders", p.Sprintf("%d", s.Sides.Placeholders))
	row("active hours", p.Sprintf("%d of %d", s.ActiveHours, cfg.Hours))
	row("players per hour", p.Sprintf("%d to %d", cfg.MinPlayers, cfg.MaxPlayers))
	row("arrival samples", p.Sprintf("%d ~ N(%.2f, %.2f)", cfg.SampleSize, cfg.DistributionMean, cfg.DistributionStddev))
	row("price range", p.Sprintf("[%.2f, %.2f] cents/KWh", cfg.PriceMin, cfg.PriceMax))
	row("bid quantity range", p.Sprintf("[%.2f, %.2f] KW", cfg.BidQuantityMin, cfg.BidQuantityMax))
	row("ask quantity range", p.Sprintf("[%.2f, %.2f] KW", cfg.AskQuantityMin, cfg.AskQuantityMax))
	row("price", formatStats(p, s.Price))
	row("bid quantity", formatStats(p, s.BidQuantity))
	row("ask quantity", formatStats(p, s.AskQuantity))

	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("records per hour"))
	b.WriteString("\n")
	cells := make([]string, len(s.PerHour))
	for h, n := range s.PerHour {
		cells[h] = fmt.Sprintf("%02d:%-4d", h, n)
	}
	for start := 0; start < len(cells); start += 6 {
		end := min(start+6, len(cells))
		b.WriteString(strings.Join(cells[start:end], " "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, PanelStyle.Render(strings.TrimRight(b.String(), "\n"))+"\n")
	return err
}

func formatStats(p *message.Printer, s Stats) string {
	if s.Count == 0 {
		return "n/a"
	}
	return p.Sprintf("min %.2f  mean %.2f  max %.2f", s.Min, s.Mean, s.Max)
}
