// Package renderer turns engine values into terminal-ready tables.
// It makes no persistence or prompting decisions: the cmd package decides
// what to render and where it goes.
package renderer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/etnz/stash"
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))  // cyan
	creditStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))  // green
	debitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))  // red
	balanceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))  // yellow
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // bright red, the account id stands out
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // bright blue
)

// Label renders a field label in the standard label color.
func Label(s string) string { return labelStyle.Render(s) }

// Info renders an informational note (empty summary, empty statement).
func Info(s string) string { return infoStyle.Render(s) }

// kindStyle returns the style for a transaction kind: green for CREDIT,
// red for DEBIT.
func kindStyle(k stash.Kind) lipgloss.Style {
	if k == stash.Debit {
		return debitStyle
	}
	return creditStyle
}

// newGrid returns a table writer with the grid style shared by all views.
func newGrid() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	return t
}
