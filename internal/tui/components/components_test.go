package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/spend/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	widths := LayoutRow(100, 3)
	if len(widths) != 3 {
		t.Fatalf("len = %d, want 3", len(widths))
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 100 {
		t.Errorf("sum = %d, want 100", sum)
	}
	if widths[0] != 34 || widths[2] != 33 {
		t.Errorf("widths = %v, want remainder on first", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")
	row := MetricCardRow([]Metric{
		{Label: "Total", Value: "$60.00"},
		{Label: "This month", Value: "$20.00", Note: "3 expenses"},
	}, 60)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 60 {
			t.Errorf("line %d width = %d, want 60", i, w)
		}
	}
}

func TestColorForPct(t *testing.T) {
	theme.SetActive("terminal")
	defer theme.SetActive("flexoki-dark")

	if got := ColorForPct(1.2); got != string(theme.Terminal.Red) {
		t.Errorf("over budget color = %q, want red", got)
	}
	if got := ColorForPct(0.1); got != string(theme.Terminal.Green) {
		t.Errorf("low usage color = %q, want green", got)
	}
}

func TestBudgetBarShowsUncappedPercent(t *testing.T) {
	out := BudgetBar("August", 1.5, 8, 20)
	if !strings.Contains(out, "150%") {
		t.Errorf("BudgetBar missing 150%%: %q", out)
	}
}

func TestStatusBarWidth(t *testing.T) {
	out := RenderStatusBar(40, "[q]uit", "3 expenses")
	if w := lipgloss.Width(out); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
}
