package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/joshuapare/slotfit/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultReports(t *testing.T) []slot.Report {
	t.Helper()
	reps, err := slot.DefaultCatalog().Reports()
	require.NoError(t, err)
	return reps
}

func render(t *testing.T, opts Options, reps []slot.Report) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).PrintReports(reps))
	return buf.String()
}

func TestPrinter_Text(t *testing.T) {
	rep, err := slot.DefaultCatalog().Report("A")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, DefaultOptions()).PrintReport(rep))
	output := buf.String()
	t.Logf("Text output:\n%s", output)

	require.True(t, strings.HasPrefix(output, "\n### Config A: Minimal (Meta=2B, Page=4096B)\n"))
	for _, col := range Columns {
		require.Contains(t, output, col)
	}
	require.Contains(t, output, "75.0%")
	require.Contains(t, output, "Best: 1024B at 99.8%\n")

	// Header plus one line per slot size.
	var tableLines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "│") {
			tableLines = append(tableLines, line)
		}
	}
	require.Len(t, tableLines, 1+len(rep.Rows))

	// Rows appear in slot-size order.
	for i, row := range rep.Rows {
		fields := strings.Fields(strings.ReplaceAll(tableLines[i+1], "│", " "))
		require.Len(t, fields, len(Columns))
		assert.Equal(t, cells(row), fields)
	}
}

func TestPrinter_TextColumnOrder(t *testing.T) {
	output := render(t, DefaultOptions(), defaultReports(t)[:1])

	header := ""
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "Slot Size") {
			header = line
			break
		}
	}
	require.NotEmpty(t, header)

	last := -1
	for _, col := range Columns {
		idx := strings.Index(header, col)
		require.Greater(t, idx, last, "column %q out of order", col)
		last = idx
	}
}

func TestPrinter_TextReportOrder(t *testing.T) {
	output := render(t, DefaultOptions(), defaultReports(t))

	a := strings.Index(output, "### Config A: Minimal")
	b := strings.Index(output, "### Config B: Compact")
	c := strings.Index(output, "### Config C: Standard")
	require.GreaterOrEqual(t, a, 0)
	require.Greater(t, b, a)
	require.Greater(t, c, b)
}

func TestPrinter_Deterministic(t *testing.T) {
	for _, format := range []Format{FormatText, FormatMarkdown, FormatJSON} {
		opts := DefaultOptions()
		opts.Format = format
		first := render(t, opts, defaultReports(t))
		second := render(t, opts, defaultReports(t))
		assert.Equal(t, first, second, "format %s", format)
	}
}

func TestPrinter_Markdown(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatMarkdown
	opts.ShowBest = false

	rep, err := slot.DefaultCatalog().Report("C")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).PrintReport(rep))
	output := buf.String()

	require.Contains(t, output, "### Config C: Standard (Meta=8B, Page=4096B)")
	require.Contains(t, output, "| Slot Size | N (Count) | Payload | Tail Waste | Efficiency |\n")
	require.Contains(t, output, "| 8 | 512 | 0 | 0 | 0.0% |\n")
	require.Contains(t, output, "| 1024 | 4 | 1016 | 0 | 99.2% |\n")
	require.NotContains(t, output, "Best:")
	assert.Equal(t, 2+len(rep.Rows), strings.Count(output, "\n|"))
}

func TestPrinter_JSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON

	output := render(t, opts, defaultReports(t))

	var got []jsonReport
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	require.Len(t, got, 3)

	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, int32(2), got[0].Meta)
	assert.Equal(t, int32(4096), got[0].PageSize)
	require.Len(t, got[0].Rows, 26)
	assert.Equal(t, jsonRow{SlotSize: 8, Count: 512, Payload: 6, TailWaste: 0, Efficiency: 75}, got[0].Rows[0])
	assert.Equal(t, 99.2, got[2].Rows[25].Efficiency)
	assert.NotContains(t, output, "Best:")
}

func TestPrinter_JSONSingleReport(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON

	rep, err := slot.DefaultCatalog().Report("B")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, opts).PrintReport(rep))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Compact", got.Name)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
