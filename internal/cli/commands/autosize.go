package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapgrid/internal/cli/output"
	"github.com/leapstack-labs/leapgrid/internal/loader"
	"github.com/leapstack-labs/leapgrid/internal/resizing"
)

// AutosizeOptions holds options for the autosize command.
type AutosizeOptions struct {
	CellsPath string
	Sorted    []string
}

// AutosizeColumn is one row of the autosize output.
type AutosizeColumn struct {
	ID        string  `json:"id"`
	Header    string  `json:"header"`
	AutoWidth float64 `json:"auto_width"`
	Width     string  `json:"width"`
	Source    string  `json:"source"`
}

// NewAutosizeCommand creates the autosize command.
func NewAutosizeCommand() *cobra.Command {
	opts := &AutosizeOptions{}

	cmd := &cobra.Command{
		Use:   "autosize",
		Short: "Compute content based column widths",
		Long: `Compute the auto width of every slice and leaf column from its header and
sample cell texts.

Text is measured in terminal cells scaled by measure.cell_width, then padded by
measure.padding and clamped to the auto-size bounds. Columns with a saved width
show it next to the computed one.`,
		Example: `  # Size from headers only
  leapgrid autosize

  # Size from sample cells, with c_1 sorted
  leapgrid autosize --cells cells.yaml --sorted c_1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAutosize(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.CellsPath, "cells", "", "JSON or YAML file with sample cell texts per column id")
	cmd.Flags().StringSliceVar(&opts.Sorted, "sorted", nil, "Column ids that show a sort icon")

	return cmd
}

func runAutosize(cmd *cobra.Command, opts *AutosizeOptions) error {
	c, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	var cells map[string][]string
	if opts.CellsPath != "" {
		cells, err = loader.LoadCells(opts.CellsPath)
		if err != nil {
			return err
		}
	}

	sized := append(c.Table.SliceColumns(), c.Table.LeafDataColumns()...)

	sorted := make(map[string]bool)
	if c.Cfg.Measure.SortIcon {
		for _, col := range sized {
			sorted[col.ID] = true
		}
	}
	for _, id := range opts.Sorted {
		if !c.Table.HasColumn(id) {
			return fmt.Errorf("--sorted: unknown column %q", id)
		}
		sorted[id] = true
	}

	sizer := &resizing.AutoSizer{
		Measurer: resizing.CellMeasurer{CellWidth: c.Cfg.Measure.CellWidth},
		Cache:    resizing.NewWidthCache(),
		Padding:  c.Cfg.Measure.Padding,
	}
	widths := sizer.TableWidths(c.Table, cells, sorted)
	c.Logger.Debug("measured columns", "columns", len(widths), "cached_texts", sizer.Cache.Len())

	columns := make([]AutosizeColumn, 0, len(widths))
	for _, col := range sized {
		row := AutosizeColumn{
			ID:        col.ID,
			Header:    col.HeaderName(),
			AutoWidth: widths[col.ID],
			Width:     strconv.FormatFloat(widths[col.ID], 'f', -1, 64),
			Source:    "auto",
		}
		if resolved := c.Store.Resolve(col); resolved.IsSet() && resolved.Width.IsAbsolute() {
			row.Width = resolved.Width.String()
			row.Source = resolved.Source.String()
		}
		columns = append(columns, row)
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(columns)
	}

	rows := make([][]string, 0, len(columns))
	for _, col := range columns {
		rows = append(rows, []string{
			col.ID,
			col.Header,
			strconv.FormatFloat(col.AutoWidth, 'f', -1, 64),
			col.Width,
			col.Source,
		})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Auto Widths"))
	}
	r.Table([]string{"Column", "Header", "Auto", "Width", "Source"}, rows)
	return nil
}
