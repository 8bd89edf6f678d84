package report

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/rickgao/temarket-data/internal/config"
	"github.com/rickgao/temarket-data/internal/model"
)

// DefaultBarWidth is the number of cells used by the longest bar.
const DefaultBarWidth = 50

// Histogram is the number of records per hour next to the arrival curve the
// generator samples from.
type Histogram struct {
	Counts    []int     // Records per hour, zeroed below Threshold
	Curve     []float64 // Theoretical participants per hour
	Threshold int
	BarWidth  int
}

// NewHistogram groups table by hour and zeroes hours with fewer than
// threshold records, so placeholder-only hours render empty.
func NewHistogram(table model.OrderTable, cfg config.MarketConfig, threshold int) Histogram {
	counts := table.CountsByHour(cfg.Hours)
	for h, n := range counts {
		if n < threshold {
			counts[h] = 0
		}
	}
	return Histogram{
		Counts:    counts,
		Curve:     GaussianCurve(cfg.Hours, cfg.DistributionMean, cfg.DistributionStddev, float64(cfg.MaxPlayers)),
		Threshold: threshold,
		BarWidth:  DefaultBarWidth,
	}
}

// GaussianCurve evaluates the Normal(mean, stddev) density at each hour and
// scales it so the largest value equals peak. If the density underflows at
// every hour the curve is all zeros.
func GaussianCurve(hours int, mean, stddev, peak float64) []float64 {
	curve := make([]float64, hours)
	for h := range curve {
		z := (float64(h) - mean) / stddev
		curve[h] = math.Exp(-0.5*z*z) / (stddev * math.Sqrt(2*math.Pi))
	}

	top := 0.0
	if hours > 0 {
		top = slices.Max(curve)
	}
	if top == 0 {
		return curve
	}
	for h := range curve {
		curve[h] = curve[h] / top * peak
	}
	return curve
}

// Render draws one row per hour: a bar for the record count and a marker
// where the theoretical curve lies.
func (hg Histogram) Render(w io.Writer) error {
	width := hg.BarWidth
	if width <= 0 {
		width = DefaultBarWidth
	}

	scale := 0.0
	for h := range hg.Counts {
		scale = math.Max(scale, float64(hg.Counts[h]))
		if h < len(hg.Curve) {
			scale = math.Max(scale, hg.Curve[h])
		}
	}
	if scale == 0 {
		scale = 1
	}
	cells := func(v float64) int {
		return int(math.Round(v / scale * float64(width)))
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Number of participants for each hour"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render(fmt.Sprintf("bars: records (below %d shown as 0)   ", hg.Threshold)))
	b.WriteString(CurveStyle.Render("◆"))
	b.WriteString(LabelStyle.Render(": Gaussian pdf"))
	b.WriteString("\n\n")

	for h, n := range hg.Counts {
		bar := cells(float64(n))
		marker := -1
		if h < len(hg.Curve) {
			marker = min(cells(hg.Curve[h]), width)
		}

		b.WriteString(LabelStyle.Render(fmt.Sprintf("%02d ", h)))
		b.WriteString(renderRow(bar, marker, width))
		b.WriteString(fmt.Sprintf(" %d\n", n))
	}

	_, err := io.WriteString(w, PanelStyle.Render(strings.TrimRight(b.String(), "\n"))+"\n")
	return err
}

// renderRow draws bar filled cells with the curve marker overlaid.
func renderRow(bar, marker, width int) string {
	var b strings.Builder
	for i := 0; i <= width; i++ {
		switch {
		case i == marker:
			b.WriteString(CurveStyle.Render("◆"))
		case i < bar:
			b.WriteString(BarStyle.Render("█"))
		default:
			b.WriteString(" ")
		}
	}
	return b.String()
}
