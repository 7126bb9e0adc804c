package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var tableTitle = lipgloss.NewStyle().Bold(true)

// printTable writes a bordered table under title. Rows may be empty.
func printTable(w io.Writer, title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, tableTitle.Render(title))
	fmt.Fprintln(w, t.String())
}
