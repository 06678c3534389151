package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/theirongolddev/spend/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark until UseTheme is called)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

// Styles
var (
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	valueStyle  lipgloss.Style
	mutedStyle  lipgloss.Style
	costStyle   lipgloss.Style
	warnStyle   lipgloss.Style
	dimStyle    lipgloss.Style
)

func init() {
	buildStyles()
}

// UseTheme switches CLI output colors to the given theme.
func UseTheme(t theme.Theme) {
	ColorBorder = t.Border
	ColorTextDim = t.TextDim
	ColorTextMuted = t.TextMuted
	ColorText = t.TextPrimary
	ColorAccent = t.Accent
	ColorGreen = t.Green
	ColorOrange = t.Orange
	buildStyles()
}

func buildStyles() {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	costStyle = lipgloss.NewStyle().
		Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
		Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
		Foreground(ColorTextDim)
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int  // optional column widths, auto-calculated if nil
	Left    []bool // columns forced left-aligned; the first column always is
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if n := utf8.RuneCountInString(h); n > widths[i] {
				widths[i] = n
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if n := utf8.RuneCountInString(cell); i < numCols && n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns unless marked left
			var padded string
			if i == 0 || (i < len(t.Left) && t.Left[i]) {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderHorizontalBar renders a horizontal bar chart entry.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return fmt.Sprintf("  %s", label)
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	bar := strings.Repeat("█", barLen) + strings.Repeat("░", maxWidth-barLen)
	return fmt.Sprintf("%s %s", label, costStyle.Render(bar))
}

// RenderWarning renders a single highlighted warning line.
func RenderWarning(msg string) string {
	return warnStyle.Render("  ⚠  " + msg)
}

// RenderInfo renders a dimmed informational line.
func RenderInfo(msg string) string {
	return mutedStyle.Render("  " + msg)
}

// RenderSuccess renders a confirmation line.
func RenderSuccess(msg string) string {
	return valueStyle.Render("  ✓ ") + msg
}
