package slot

import (
	"fmt"
	"math"

	"github.com/joshuapare/slotfit/internal/format"
	"golang.org/x/text/cases"
)

// SizeClassConfig defines a size class strategy.
// Different configurations can be compared to find the best packing/granularity tradeoff.
type SizeClassConfig struct {
	// Name for this configuration (used by --classes)
	Name string

	// Small allocation settings (linear increments)
	SmallMin       int32 // Minimum allocation size (typically 8)
	SmallMax       int32 // Max for linear increments (typically 256-512)
	SmallIncrement int32 // Increment size for small allocations (8, 16, or 32)

	// Medium/Large allocation settings (logarithmic growth)
	MediumMax    int32   // Max before large allocations (typically 16KB)
	GrowthFactor float64 // Exponential growth factor (1.5, 2.0, etc.)
}

// Predefined configurations.
var (
	// FineGrained: Many small buckets, good for varied workloads
	// 8-256 step 8 + 256-16K log growth.
	ConfigFineGrained = SizeClassConfig{
		Name:           "FineGrained",
		SmallMin:       8,
		SmallMax:       256,
		SmallIncrement: 8,
		MediumMax:      16384,
		GrowthFactor:   1.5,
	}

	// Balanced: Good balance between class count and granularity
	// 8-512 step 16 + 512-16K log growth.
	ConfigBalanced = SizeClassConfig{
		Name:           "Balanced",
		SmallMin:       8,
		SmallMax:       512,
		SmallIncrement: 16,
		MediumMax:      16384,
		GrowthFactor:   1.5,
	}

	// Coarse: Fewer buckets, more internal fragmentation
	// 8-512 step 32 + 512-16K doubling.
	ConfigCoarse = SizeClassConfig{
		Name:           "Coarse",
		SmallMin:       8,
		SmallMax:       512,
		SmallIncrement: 32,
		MediumMax:      16384,
		GrowthFactor:   2.0,
	}

	// Registry: tight packing for small records
	// 8-128 step 8 + 128-16K log growth at 1.3.
	ConfigRegistry = SizeClassConfig{
		Name:           "Registry",
		SmallMin:       8,
		SmallMax:       128,
		SmallIncrement: 8,
		MediumMax:      16384,
		GrowthFactor:   1.3,
	}
)

// Presets returns the predefined size class strategies.
func Presets() []SizeClassConfig {
	return []SizeClassConfig{ConfigFineGrained, ConfigBalanced, ConfigCoarse, ConfigRegistry}
}

// PresetByName finds a predefined strategy by name, ignoring case.
func PresetByName(name string) (SizeClassConfig, error) {
	want := cases.Fold().String(name)
	for _, p := range Presets() {
		if cases.Fold().String(p.Name) == want {
			return p, nil
		}
	}
	return SizeClassConfig{}, fmt.Errorf("%w: unknown preset %q", ErrBadSizeClass, name)
}

func (cfg SizeClassConfig) validate() error {
	switch {
	case cfg.SmallMin <= 0:
		return fmt.Errorf("%w: %s: SmallMin must be positive", ErrBadSizeClass, cfg.Name)
	case cfg.SmallIncrement <= 0:
		return fmt.Errorf("%w: %s: SmallIncrement must be positive", ErrBadSizeClass, cfg.Name)
	case cfg.GrowthFactor <= 1:
		return fmt.Errorf("%w: %s: GrowthFactor must exceed 1", ErrBadSizeClass, cfg.Name)
	}
	return nil
}

// classBoundaries computes the upper bound of each size class.
func (cfg SizeClassConfig) classBoundaries() []int32 {
	boundaries := make([]int32, 0, 64)

	// Phase 1: Small allocations (linear increments)
	for size := cfg.SmallMin; size < cfg.SmallMax; size += cfg.SmallIncrement {
		boundaries = append(boundaries, size+cfg.SmallIncrement-1)
	}

	// Phase 2: Medium/Large allocations (logarithmic growth)
	if cfg.SmallMax < cfg.MediumMax {
		size := max(cfg.SmallMax, cfg.SmallMin)
		for size < cfg.MediumMax {
			nextSize := int32(math.Ceil(float64(size) * cfg.GrowthFactor))
			if nextSize <= size {
				nextSize = size + 1 // Ensure progress
			}
			boundaries = append(boundaries, nextSize-1)
			size = nextSize
		}
	}

	return boundaries
}

// SizeClassSequence returns one slot size per size class: the class upper bound
// rounded up to the slot alignment. The sequence is strictly ascending and
// stops at pageSize.
func SizeClassSequence(cfg SizeClassConfig, pageSize int32) ([]int32, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadPageSize, pageSize)
	}

	var sizes []int32
	for _, bound := range cfg.classBoundaries() {
		size := format.Align8(bound)
		if size > pageSize {
			break
		}
		// Alignment can fold neighbouring classes together.
		if n := len(sizes); n > 0 && sizes[n-1] >= size {
			continue
		}
		sizes = append(sizes, size)
	}

	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: %s yields no slot size within a %dB page",
			ErrBadSizeClass, cfg.Name, pageSize)
	}
	return sizes, nil
}
