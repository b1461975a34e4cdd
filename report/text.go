package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joshuapare/slotfit/slot"
)

var (
	headerCellStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	rowCellStyle    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// printReportText prints the report heading followed by a bordered table.
func (p *Printer) printReportText(rep slot.Report) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Columns...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			return rowCellStyle
		})

	for _, row := range rep.Rows {
		t.Row(cells(row)...)
	}

	if _, err := fmt.Fprintf(p.writer, "\n### %s\n%s\n", rep.Title(), t.Render()); err != nil {
		return err
	}
	return p.printBest(rep)
}
