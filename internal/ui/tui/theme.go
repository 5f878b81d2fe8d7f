package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/infra/render"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	FocusBorder lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		FocusBorder: lipgloss.Color("212"),
	}
}

// Swatch paints hex as a solid block with a readable label on top.
func (t Theme) Swatch(hex domain.HexColor, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(string(hex))).
		Foreground(lipgloss.Color(string(render.Foreground(hex)))).
		Width(width).
		Align(lipgloss.Center).
		Render(string(hex))
}
