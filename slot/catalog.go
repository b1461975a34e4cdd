package slot

import (
	"fmt"
	"slices"

	"github.com/joshuapare/slotfit/internal/format"
	"golang.org/x/text/cases"
)

// defaultPageSize is the page size used by DefaultCatalog.
const defaultPageSize int32 = format.PageSize

// defaultSlotSizes is the candidate sequence swept by DefaultCatalog.
var defaultSlotSizes = []int32{
	8, 12, 16, 20, 24, 32, 40, 48, 56, 64,
	72, 80, 96, 112, 128, 144, 160, 192, 224, 256,
	320, 384, 448, 512, 768, 1024,
}

// defaultConfigs are the overhead settings compared by DefaultCatalog, in report order.
var defaultConfigs = []Config{
	{ID: "A", Name: "Minimal", Meta: 2},
	{ID: "B", Name: "Compact", Meta: 4},
	{ID: "C", Name: "Standard", Meta: 8},
}

// DefaultSlotSizes returns a copy of the built-in slot-size sequence.
func DefaultSlotSizes() []int32 {
	return slices.Clone(defaultSlotSizes)
}

// DefaultConfigs returns a copy of the built-in configurations.
func DefaultConfigs() []Config {
	return slices.Clone(defaultConfigs)
}

// Catalog is an ordered, immutable set of configurations together with the page
// size and slot-size sequence they are evaluated against.
type Catalog struct {
	pageSize  int32
	slotSizes []int32
	configs   []Config
	index     map[string]int // folded id -> position in configs
}

// NewCatalog validates its inputs and returns a Catalog that reports configs
// in the order given.
func NewCatalog(pageSize int32, slotSizes []int32, configs ...Config) (*Catalog, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadPageSize, pageSize)
	}
	if err := validateSlotSizes(slotSizes); err != nil {
		return nil, err
	}

	c := &Catalog{
		pageSize:  pageSize,
		slotSizes: slices.Clone(slotSizes),
		configs:   make([]Config, 0, len(configs)),
		index:     make(map[string]int, len(configs)),
	}

	smallest := slotSizes[0]
	for _, cfg := range configs {
		if cfg.ID == "" {
			return nil, fmt.Errorf("%w: name %q", ErrEmptyID, cfg.Name)
		}
		key := foldID(cfg.ID)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateConfig, cfg.ID)
		}
		if cfg.Meta < 0 || cfg.Meta > smallest {
			return nil, fmt.Errorf("%w: config %q meta=%d, smallest slot=%d",
				ErrMetaTooLarge, cfg.ID, cfg.Meta, smallest)
		}
		c.index[key] = len(c.configs)
		c.configs = append(c.configs, cfg)
	}

	return c, nil
}

// DefaultCatalog returns the built-in catalog: configurations A, B and C over
// the default slot sizes on a 4 KiB page. It panics if the built-in data fails
// validation.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultPageSize, defaultSlotSizes, defaultConfigs...)
	if err != nil {
		panic(err)
	}
	return c
}

// PageSize returns the page size slots are packed into.
func (c *Catalog) PageSize() int32 { return c.pageSize }

// SlotSizes returns a copy of the slot-size sequence.
func (c *Catalog) SlotSizes() []int32 { return slices.Clone(c.slotSizes) }

// Configs returns a copy of the configurations in report order.
func (c *Catalog) Configs() []Config { return slices.Clone(c.configs) }

// Lookup finds a configuration by id. Matching is case-insensitive.
func (c *Catalog) Lookup(id string) (Config, error) {
	i, ok := c.index[foldID(id)]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownConfig, id)
	}
	return c.configs[i], nil
}

// Report analyzes the configuration with the given id.
func (c *Catalog) Report(id string) (Report, error) {
	cfg, err := c.Lookup(id)
	if err != nil {
		return Report{}, err
	}
	return Analyze(c.pageSize, cfg, c.slotSizes), nil
}

// Reports analyzes the given ids in order, or every configuration in catalog
// order when no id is given.
func (c *Catalog) Reports(ids ...string) ([]Report, error) {
	if len(ids) == 0 {
		reports := make([]Report, len(c.configs))
		for i, cfg := range c.configs {
			reports[i] = Analyze(c.pageSize, cfg, c.slotSizes)
		}
		return reports, nil
	}

	reports := make([]Report, 0, len(ids))
	for _, id := range ids {
		rep, err := c.Report(id)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

// WithPageSize returns a copy of the catalog evaluated against another page size.
func (c *Catalog) WithPageSize(pageSize int32) (*Catalog, error) {
	return NewCatalog(pageSize, c.slotSizes, c.configs...)
}

// WithSlotSizes returns a copy of the catalog evaluated against another slot-size sequence.
func (c *Catalog) WithSlotSizes(sizes []int32) (*Catalog, error) {
	return NewCatalog(c.pageSize, sizes, c.configs...)
}

func validateSlotSizes(sizes []int32) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: empty sequence", ErrBadSlotSizes)
	}
	for i, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("%w: size %d at index %d", ErrBadSlotSizes, size, i)
		}
		if i > 0 && size <= sizes[i-1] {
			return fmt.Errorf("%w: %d follows %d", ErrBadSlotSizes, size, sizes[i-1])
		}
	}
	return nil
}

// foldID normalizes a configuration id for lookup. A Caser is stateful, so a
// fresh one is used per call.
func foldID(id string) string {
	return cases.Fold().String(id)
}
