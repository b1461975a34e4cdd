package main

import (
	"strconv"
	"strings"

	"github.com/joshuapare/slotfit/internal/format"
	"github.com/joshuapare/slotfit/slot"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newClassesCmd())
}

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List size class presets and the slot sizes they generate",
		Long: `The classes command lists the size class presets accepted by --classes
together with the slot-size sequence each one generates for the page size.

Example:
  slotfit classes
  slotfit classes --page-size 8192
  slotfit classes --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses()
		},
	}
	return cmd
}

type classSequence struct {
	Name      string  `json:"name"`
	PageSize  int32   `json:"page_size"`
	SlotSizes []int32 `json:"slot_sizes"`
}

func runClasses() error {
	page := int32(format.PageSize)
	if pageSizeFlag != "" {
		var err error
		if page, err = parsePageSize(pageSizeFlag); err != nil {
			return err
		}
	}

	var out []classSequence
	for _, preset := range slot.Presets() {
		sizes, err := slot.SizeClassSequence(preset, page)
		if err != nil {
			return err
		}
		out = append(out, classSequence{Name: preset.Name, PageSize: page, SlotSizes: sizes})
	}

	if jsonOut {
		return printJSON(out)
	}

	for _, seq := range out {
		strs := make([]string, len(seq.SlotSizes))
		for i, size := range seq.SlotSizes {
			strs[i] = strconv.Itoa(int(size))
		}
		printInfo("%s (%d sizes, page %dB):\n  %s\n", seq.Name, len(seq.SlotSizes), seq.PageSize, strings.Join(strs, " "))
	}
	return nil
}
