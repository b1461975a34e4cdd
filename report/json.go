package report

import (
	"encoding/json"

	"github.com/joshuapare/slotfit/slot"
)

// jsonRow represents a table row in JSON format.
type jsonRow struct {
	SlotSize   int32   `json:"slot_size"`
	Count      int32   `json:"count"`
	Payload    int32   `json:"payload"`
	TailWaste  int32   `json:"tail_waste"`
	Efficiency float64 `json:"efficiency"`
}

// jsonReport represents a report in JSON format.
type jsonReport struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Meta     int32     `json:"meta"`
	PageSize int32     `json:"page_size"`
	Rows     []jsonRow `json:"rows"`
}

func toJSONReport(rep slot.Report) jsonReport {
	out := jsonReport{
		ID:       rep.Config.ID,
		Name:     rep.Config.Name,
		Meta:     rep.Config.Meta,
		PageSize: rep.PageSize,
		Rows:     make([]jsonRow, len(rep.Rows)),
	}
	for i, row := range rep.Rows {
		out.Rows[i] = jsonRow{
			SlotSize:   row.SlotSize,
			Count:      row.Count,
			Payload:    row.Payload,
			TailWaste:  row.TailWaste,
			Efficiency: row.EfficiencyPercent(),
		}
	}
	return out
}

// printJSON writes v as indented JSON.
func (p *Printer) printJSON(v any) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
