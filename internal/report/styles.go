package report

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7C3AED") // Purple
	BidColor     = lipgloss.Color("#10B981") // Green
	AskColor     = lipgloss.Color("#EF4444") // Red
	CurveColor   = lipgloss.Color("#F59E0B") // Amber
	BorderColor  = lipgloss.Color("#374151")
	MutedColor   = lipgloss.Color("#6B7280")
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	BarStyle = lipgloss.NewStyle().
			Foreground(BidColor)

	CurveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(CurveColor)

	BidStyle = lipgloss.NewStyle().Foreground(BidColor)
	AskStyle = lipgloss.NewStyle().Foreground(AskColor)
)
