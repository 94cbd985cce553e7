package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for secondary text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true)

	// ChargeStyle highlights commission amounts.
	ChargeStyle = lipgloss.NewStyle().Bold(true)
)

// renderTable lays rows out under headers with a bold header row.
func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}

			return style
		}).
		String()
}

// FormatMoney formats a dollar amount.
func FormatMoney(v float64) string {
	return fmt.Sprintf("$%.4f", v)
}

// FormatQuantity formats a signed quantity without trailing zeros.
func FormatQuantity(v float64) string {
	return fmt.Sprintf("%g", v)
}
