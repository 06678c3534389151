// Package tui provides the interactive Bubble Tea expense browser.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/spend/internal/cli"
	"github.com/theirongolddev/spend/internal/ledger"
	"github.com/theirongolddev/spend/internal/model"
	"github.com/theirongolddev/spend/internal/tui/components"
	"github.com/theirongolddev/spend/internal/tui/theme"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Source is the read side of the ledger the browser needs.
type Source interface {
	List(category string) ([]model.Expense, error)
	Budgets() (map[model.YearMonth]decimal.Decimal, error)
	CurrentPeriod() model.YearMonth
}

// DataLoadedMsg is sent when the ledger has been read.
type DataLoadedMsg struct {
	Expenses []model.Expense
	Budgets  map[model.YearMonth]decimal.Decimal
	Err      error
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	chromeHeight     = 12 // cards + filter + budget + status bar
)

// App is the root Bubble Tea model.
type App struct {
	src      Source
	currency string

	expenses []model.Expense
	budgets  map[model.YearMonth]decimal.Decimal
	shown    []model.Expense
	loaded   bool
	err      error

	table     table.Model
	filter    textinput.Model
	filtering bool

	width  int
	height int
}

// NewApp builds the browser over src, formatting amounts in currency.
func NewApp(src Source, currency string) App {
	ti := textinput.New()
	ti.Placeholder = "category"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	t := table.New(
		table.WithColumns(columns(maxContentWidth)),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())

	return App{
		src:      src,
		currency: currency,
		table:    t,
		filter:   ti,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return loadDataCmd(a.src)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.err = msg.Err
		if msg.Err == nil {
			a.expenses = msg.Expenses
			a.budgets = msg.Budgets
			a.applyFilter()
		}
		return a, nil

	case tea.KeyMsg:
		if a.filtering {
			return a.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "/":
			a.filtering = true
			a.table.Blur()
			return a, a.filter.Focus()
		case "esc":
			a.filter.SetValue("")
			a.applyFilter()
			return a, nil
		case "r":
			return a, loadDataCmd(a.src)
		}
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		if msg.String() == "esc" {
			a.filter.SetValue("")
		}
		a.filtering = false
		a.filter.Blur()
		a.table.Focus()
		a.applyFilter()
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	return a, cmd
}

// applyFilter recomputes the visible rows from the category filter.
func (a *App) applyFilter() {
	a.shown = ledger.FilterByCategory(a.expenses, a.filter.Value())
	rows := make([]table.Row, 0, len(a.shown))
	for _, e := range a.shown {
		rows = append(rows, table.Row{
			strconv.Itoa(e.ID),
			e.DateString(),
			e.Description,
			cli.FormatAmount(e.Amount, a.currency),
			e.Category,
		})
	}
	a.table.SetRows(rows)
}

func (a *App) resize() {
	w := a.contentWidth()
	a.table.SetColumns(columns(w))
	a.table.SetWidth(w)
	h := a.height - chromeHeight
	if h < 3 {
		h = 3
	}
	a.table.SetHeight(h)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)\n", a.width, minTerminalWidth)
	}

	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	if !a.loaded {
		return "\n" + muted.Render("  Loading ledger...")
	}
	if a.err != nil {
		return "\n" + lipgloss.NewStyle().Foreground(t.Red).Render("  Error: "+a.err.Error()) +
			"\n\n" + muted.Render("  [r]etry  [q]uit")
	}

	w := a.contentWidth()
	var b strings.Builder

	b.WriteString(components.MetricCardRow(a.metrics(), w))
	b.WriteString("\n")

	if a.filtering || a.filter.Value() != "" {
		style := lipgloss.NewStyle().Foreground(t.TextPrimary)
		if a.filtering {
			style = style.Foreground(t.BorderAccent)
		}
		b.WriteString(style.Render(a.filter.View()))
		b.WriteString("\n")
	}

	if len(a.shown) == 0 {
		b.WriteString("\n" + muted.Render("  No expenses found") + "\n")
	} else {
		b.WriteString(a.table.View())
		b.WriteString("\n")
	}

	if line := a.budgetLine(w); line != "" {
		b.WriteString("\n" + line + "\n")
	}

	info := fmt.Sprintf("%d of %d expenses ", len(a.shown), len(a.expenses))
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(w, " [/]filter  [esc]clear  [r]eload  [q]uit", info))
	return b.String()
}

func (a App) metrics() []components.Metric {
	period := a.src.CurrentPeriod()
	month := ledger.FilterByMonth(a.expenses, period)

	shownNote := ""
	if f := a.filter.Value(); f != "" {
		shownNote = "category " + f
	}
	return []components.Metric{
		{Label: "Total", Value: cli.FormatAmount(ledger.Total(a.expenses), a.currency),
			Note: fmt.Sprintf("%d expenses", len(a.expenses))},
		{Label: period.MonthName() + " " + strconv.Itoa(period.Year), Value: cli.FormatAmount(ledger.Total(month), a.currency),
			Note: fmt.Sprintf("%d expenses", len(month))},
		{Label: "Shown", Value: cli.FormatAmount(ledger.Total(a.shown), a.currency), Note: shownNote},
	}
}

// budgetLine renders the current month's utilization, or "" when no budget is set.
func (a App) budgetLine(width int) string {
	period := a.src.CurrentPeriod()
	threshold, ok := a.budgets[period]
	if !ok || !threshold.IsPositive() {
		return ""
	}
	spent := ledger.Total(ledger.FilterByMonth(a.expenses, period))
	label := "Budget"
	barW := width/2 - lipgloss.Width(label)
	if barW < 10 {
		barW = 10
	}
	line := components.BudgetBar(label, cli.Share(spent, threshold), len(label), barW)
	return line + "  " + cli.FormatAmount(spent, a.currency) + " / " + cli.FormatAmount(threshold, a.currency)
}

func columns(width int) []table.Column {
	const (
		idW     = 5
		dateW   = 10
		amountW = 12
		catW    = 16
	)
	descW := width - idW - dateW - amountW - catW - 10 // cell padding
	if descW < 12 {
		descW = 12
	}
	return []table.Column{
		{Title: "ID", Width: idW},
		{Title: "Date", Width: dateW},
		{Title: "Description", Width: descW},
		{Title: "Amount", Width: amountW},
		{Title: "Category", Width: catW},
	}
}

func tableStyles() table.Styles {
	t := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Foreground(t.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(t.TextPrimary)
	s.Selected = s.Selected.
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(false)
	return s
}

func loadDataCmd(src Source) tea.Cmd {
	return func() tea.Msg {
		expenses, err := src.List("")
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		budgets, err := src.Budgets()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		return DataLoadedMsg{Expenses: expenses, Budgets: budgets}
	}
}
