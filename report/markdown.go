package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/slotfit/slot"
)

// printReportMarkdown prints the report as a markdown section with a pipe table.
func (p *Printer) printReportMarkdown(rep slot.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n### %s\n\n", rep.Title())
	b.WriteString("| " + strings.Join(Columns, " | ") + " |\n")
	b.WriteString(strings.Repeat("|---:", len(Columns)) + "|\n")
	for _, row := range rep.Rows {
		b.WriteString("| " + strings.Join(cells(row), " | ") + " |\n")
	}
	b.WriteString("\n")

	if _, err := io.WriteString(p.writer, b.String()); err != nil {
		return err
	}
	return p.printBest(rep)
}
