// Package format holds the layout constants shared by the slot analyzer: the
// page size slots are packed into and the alignment every slot size obeys.
package format

const (
	// PageSize is the size of the memory page slots are packed into. It matches
	// the common 4 KiB hardware page.
	PageSize = 4096

	// SlotAlignment is the required alignment of generated slot sizes.
	// Slots are aligned to 8-byte boundaries.
	SlotAlignment = 8

	// SlotAlignmentMask is the bitmask used for aligning to 8-byte boundaries (SlotAlignment - 1).
	SlotAlignmentMask = SlotAlignment - 1

	// PercentScale converts a fraction into tenths of a percent (100% * 10).
	PercentScale = 1000
)
