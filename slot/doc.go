// Package slot computes how efficiently fixed-size allocation slots pack into a
// memory page.
//
// # Overview
//
// A slot allocator carves a page into equally sized slots. Each slot spends a
// few bytes on bookkeeping (the metadata overhead) and hands the rest to the
// caller as payload. Whatever is left at the end of the page after the last
// full slot is tail waste. This package sweeps a list of candidate slot sizes
// and reports, per size, how much of the page ends up as usable payload.
//
// # Configurations
//
// A Config names a metadata overhead. Configs live in a Catalog together with
// the page size and the slot-size sequence. The catalog keeps insertion order,
// which is the order reports are produced in:
//
//	cat := slot.DefaultCatalog()
//	rep, err := cat.Report("A")
//	if err != nil {
//	    return err
//	}
//	for _, row := range rep.Rows {
//	    fmt.Println(row.SlotSize, row.Efficiency())
//	}
//
// # Per-slot arithmetic
//
// For page size P, overhead M and slot size S:
//
//	Count      = P / S              (integer division)
//	TailWaste  = P % S
//	Payload    = S - M              (signed, never clamped)
//	Efficiency = Count*Payload / P  (percent, one decimal, half away from zero)
//
// Efficiency is computed in integer tenths of a percent so the rendered value
// is exact and identical on every platform.
//
// # Size Classes
//
// SizeClassSequence derives candidate slot sizes from a size-class strategy
// (linear increments for small sizes, geometric growth above), rounded up to
// the 8-byte slot alignment. The presets mirror the strategies an allocator
// would benchmark against each other.
package slot
