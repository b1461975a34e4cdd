package slot

import "github.com/joshuapare/slotfit/internal/format"

// ComputeRow derives the packing statistics of a single slot size.
// page and size must be positive. Payload is not clamped.
func ComputeRow(page, meta, size int32) Row {
	count := page / size
	payload := size - meta

	used := int64(count) * int64(payload)

	return Row{
		SlotSize:         size,
		Count:            count,
		Payload:          payload,
		TailWaste:        page % size,
		EfficiencyTenths: roundDiv(used*format.PercentScale, int64(page)),
	}
}

// Analyze computes one Row per slot size, in the order given. Sizes are neither
// filtered, sorted nor deduplicated.
func Analyze(page int32, cfg Config, sizes []int32) Report {
	rows := make([]Row, len(sizes))
	for i, size := range sizes {
		rows[i] = ComputeRow(page, cfg.Meta, size)
	}

	return Report{
		Config:   cfg,
		PageSize: page,
		Rows:     rows,
	}
}

// roundDiv returns num/den rounded to the nearest integer, halves away from zero.
// den must be positive.
func roundDiv(num, den int64) int64 {
	if num < 0 {
		return -((-num*2 + den) / (2 * den))
	}
	return (num*2 + den) / (2 * den)
}
