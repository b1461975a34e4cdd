package slot

import "fmt"

// Config is a named metadata-overhead setting.
type Config struct {
	ID   string // Short key used for lookup ("A", "B", ...)
	Name string // Human-readable label
	Meta int32  // Bookkeeping bytes consumed inside every slot
}

// Row holds the packing statistics of one slot size under one Config.
type Row struct {
	SlotSize  int32
	Count     int32 // Slots that fit in one page
	Payload   int32 // Usable bytes per slot, negative if Meta exceeds SlotSize
	TailWaste int32 // Bytes left after the last full slot

	// EfficiencyTenths is the payload share of the page in tenths of a percent.
	EfficiencyTenths int64
}

// Efficiency renders the efficiency with one decimal digit, e.g. "75.0%".
func (r Row) Efficiency() string {
	t := r.EfficiencyTenths
	sign := ""
	if t < 0 {
		sign = "-"
		t = -t
	}
	return fmt.Sprintf("%s%d.%d%%", sign, t/10, t%10)
}

// EfficiencyPercent returns the rounded efficiency as a number (75.0 for "75.0%").
func (r Row) EfficiencyPercent() float64 {
	return float64(r.EfficiencyTenths) / 10
}

// Report is the analysis of one Config over a slot-size sequence.
type Report struct {
	Config   Config
	PageSize int32
	Rows     []Row
}

// Best returns the row with the highest efficiency. The first row wins ties.
// ok is false for a report without rows.
func (r Report) Best() (best Row, ok bool) {
	for i, row := range r.Rows {
		if i == 0 || row.EfficiencyTenths > best.EfficiencyTenths {
			best = row
		}
	}
	return best, len(r.Rows) > 0
}

// Title returns the heading for the report, e.g.
// "Config A: Minimal (Meta=2B, Page=4096B)".
func (r Report) Title() string {
	return fmt.Sprintf("Config %s: %s (Meta=%dB, Page=%dB)",
		r.Config.ID, r.Config.Name, r.Config.Meta, r.PageSize)
}
