package slot

import "errors"

var (
	// ErrUnknownConfig indicates a configuration id that is not in the catalog.
	ErrUnknownConfig = errors.New("slot: unknown configuration")

	// ErrEmptyID indicates a configuration without an id.
	ErrEmptyID = errors.New("slot: configuration id must not be empty")

	// ErrDuplicateConfig indicates two configurations sharing the same id.
	ErrDuplicateConfig = errors.New("slot: duplicate configuration id")

	// ErrBadPageSize indicates a page size that is not positive.
	ErrBadPageSize = errors.New("slot: page size must be positive")

	// ErrBadSlotSizes indicates an empty, non-positive or unordered slot-size sequence.
	ErrBadSlotSizes = errors.New("slot: slot sizes must be positive and strictly ascending")

	// ErrMetaTooLarge indicates a metadata overhead that would leave a slot with a negative payload.
	ErrMetaTooLarge = errors.New("slot: metadata overhead must be non-negative and at most the smallest slot size")

	// ErrBadSizeClass indicates a size-class strategy that cannot make progress.
	ErrBadSizeClass = errors.New("slot: invalid size class configuration")
)
