// Package report renders slot efficiency reports as text tables, markdown or JSON.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/joshuapare/slotfit/slot"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a bordered table per report.
	FormatText Format = "text"

	// FormatMarkdown outputs a GitHub-flavoured pipe table per report.
	FormatMarkdown Format = "markdown"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Columns are the table headings, in output order.
var Columns = []string{"Slot Size", "N (Count)", "Payload", "Tail Waste", "Efficiency"}

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatMarkdown, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, markdown or json)", s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, markdown, json).
	// Default: FormatText
	Format Format

	// ShowBest appends the most efficient slot size after each table
	// (text and markdown only).
	// Default: true
	ShowBest bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:   FormatText,
		ShowBest: true,
	}
}

// Printer writes reports to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := report.New(os.Stdout, report.DefaultOptions())
//	rep, _ := slot.DefaultCatalog().Report("A")
//	p.PrintReport(rep)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintReport prints a single report.
func (p *Printer) PrintReport(rep slot.Report) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(toJSONReport(rep))
	case FormatMarkdown:
		return p.printReportMarkdown(rep)
	default:
		return p.printReportText(rep)
	}
}

// PrintReports prints reports in order. JSON output is a single array.
func (p *Printer) PrintReports(reps []slot.Report) error {
	if p.opts.Format == FormatJSON {
		out := make([]jsonReport, len(reps))
		for i, rep := range reps {
			out[i] = toJSONReport(rep)
		}
		return p.printJSON(out)
	}

	for _, rep := range reps {
		if err := p.PrintReport(rep); err != nil {
			return err
		}
	}
	return nil
}

// cells returns the table cells of a row in column order.
func cells(row slot.Row) []string {
	return []string{
		strconv.Itoa(int(row.SlotSize)),
		strconv.Itoa(int(row.Count)),
		strconv.Itoa(int(row.Payload)),
		strconv.Itoa(int(row.TailWaste)),
		row.Efficiency(),
	}
}

func (p *Printer) printBest(rep slot.Report) error {
	if !p.opts.ShowBest {
		return nil
	}
	best, ok := rep.Best()
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(p.writer, "Best: %dB at %s\n", best.SlotSize, best.Efficiency())
	return err
}
