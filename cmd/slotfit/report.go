package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joshuapare/slotfit/config"
	"github.com/joshuapare/slotfit/internal/format"
	"github.com/joshuapare/slotfit/internal/logger"
	"github.com/joshuapare/slotfit/report"
	"github.com/joshuapare/slotfit/slot"
)

var (
	reportConfig  string
	reportOnly    []string
	reportClasses string
	reportFormat  string
	reportNoBest  bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&reportConfig, "config", "", "YAML file defining page size, slot sizes and configurations")
	flags.StringArrayVar(&reportOnly, "only", nil, "Report only this configuration id (repeatable, order kept)")
	flags.StringVar(&reportClasses, "classes", "", "Generate slot sizes from a size class preset (see 'slotfit classes')")
	flags.StringVar(&reportFormat, "format", string(report.FormatText), "Output format: text, markdown or json")
	flags.BoolVar(&reportNoBest, "no-best", false, "Omit the best slot size line after each table")
}

func runReport() error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	reps, err := cat.Reports(reportOnly...)
	if err != nil {
		return err
	}

	opts := report.DefaultOptions()
	opts.ShowBest = !reportNoBest
	if jsonOut {
		opts.Format = report.FormatJSON
	} else {
		opts.Format, err = report.ParseFormat(reportFormat)
		if err != nil {
			return err
		}
	}

	logger.Debug("printing reports", "count", len(reps), "format", opts.Format)
	return report.New(os.Stdout, opts).PrintReports(reps)
}

// loadCatalog builds the catalog from --config, then applies --page-size and --classes.
func loadCatalog() (*slot.Catalog, error) {
	cat := slot.DefaultCatalog()
	if reportConfig != "" {
		var err error
		if cat, err = config.Load(reportConfig); err != nil {
			return nil, err
		}
		logger.Debug("loaded config", "path", reportConfig, "configs", len(cat.Configs()))
	}

	if pageSizeFlag != "" {
		page, err := parsePageSize(pageSizeFlag)
		if err != nil {
			return nil, err
		}
		if cat, err = cat.WithPageSize(page); err != nil {
			return nil, err
		}
	}

	if reportClasses != "" {
		preset, err := slot.PresetByName(reportClasses)
		if err != nil {
			return nil, err
		}
		sizes, err := slot.SizeClassSequence(preset, cat.PageSize())
		if err != nil {
			return nil, err
		}
		if cat, err = cat.WithSlotSizes(sizes); err != nil {
			return nil, fmt.Errorf("size class preset %s: %w", preset.Name, err)
		}
		logger.Debug("using size class preset", "preset", preset.Name, "sizes", len(sizes))
	}

	return cat, nil
}

// parsePageSize accepts a positive byte count or "host".
func parsePageSize(s string) (int32, error) {
	if s == "host" {
		page := slot.HostPageSize()
		logger.Debug("using host page size", "bytes", page)
		return page, nil
	}

	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid page size %q: %w", s, err)
	}
	page := int32(n)
	if page <= 0 {
		return 0, fmt.Errorf("%w: %d", slot.ErrBadPageSize, page)
	}
	if !format.IsPowerOfTwo(page) {
		logger.Warn("page size is not a power of two", "bytes", page)
	}
	return page, nil
}
