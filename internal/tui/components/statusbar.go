package components

import (
	"strings"

	"github.com/theirongolddev/spend/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom bar with key hints on the left and info on the right.
func RenderStatusBar(width int, hints, info string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	padding := width - lipgloss.Width(hints) - lipgloss.Width(info)
	if padding < 1 {
		padding = 1
	}
	return style.Render(hints + strings.Repeat(" ", padding) + info)
}
