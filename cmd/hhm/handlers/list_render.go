package handlers

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/imamik/hhm/internal/fleet"
)

// Colors matching the cost and doctor output palette.
var (
	listColorGreen = lipgloss.Color("#22c55e")
	listColorRed   = lipgloss.Color("#ef4444")
	listColorBlue  = lipgloss.Color("#3b82f6")
	listColorDim   = lipgloss.Color("#6b7280")
)

var (
	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(listColorBlue).
			Padding(0, 1)

	listCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	listBorderStyle = lipgloss.NewStyle().
			Foreground(listColorDim)
)

var listHeaders = []string{"Name", "IP", "ID", "Status"}

// instanceRows converts instances to table rows in listing order.
func instanceRows(instances []fleet.Instance) [][]string {
	rows := make([][]string, 0, len(instances))
	for _, inst := range instances {
		ip := inst.IPv4
		if ip == "" {
			ip = "-"
		}
		rows = append(rows, []string{inst.Name, ip, strconv.FormatInt(inst.ID, 10), string(inst.Status)})
	}
	return rows
}

// renderInstanceTable renders instances as a table.
// Styled output uses colors and rounded borders; plain output is ASCII only.
func renderInstanceTable(instances []fleet.Instance, styled bool) string {
	rows := instanceRows(instances)

	t := table.New().
		Headers(listHeaders...).
		Rows(rows...)

	if !styled {
		return t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(_, _ int) lipgloss.Style { return listCellStyle }).
			String()
	}

	return t.Border(lipgloss.RoundedBorder()).
		BorderStyle(listBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			if col == 3 && row >= 0 && row < len(rows) {
				return listCellStyle.Foreground(statusColor(fleet.Status(rows[row][3])))
			}
			return listCellStyle
		}).
		String()
}

// statusColor picks a color for a server status.
func statusColor(s fleet.Status) lipgloss.Color {
	switch s {
	case fleet.StatusRunning:
		return listColorGreen
	case fleet.StatusOff, fleet.StatusStopping, fleet.StatusDeleting:
		return listColorRed
	default:
		return listColorDim
	}
}
