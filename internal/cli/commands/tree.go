package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapgrid/internal/cli/output"
)

// TreeOutput is the JSON output of the tree command.
type TreeOutput struct {
	Columns []ColumnInfo `json:"columns"`
	Summary TreeSummary  `json:"summary"`
}

// TreeSummary counts the columns of a tree.
type TreeSummary struct {
	Slices    int  `json:"slices"`
	Leaves    int  `json:"leaves"`
	Total     int  `json:"total"`
	HasTotals bool `json:"can_have_totals"`
}

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the column tree of a result",
		Long: `Show every column derived from the result: slice columns for the row
attributes, then the data-column tree of groups and leaves.

Each column is listed with its locators and the width resolved from the saved
widths file.`,
		Example: `  # Show the tree of the configured result
  leapgrid tree

  # Use another result file
  leapgrid tree --result testdata/pivot.yaml -o json`,
		Args: cobra.NoArgs,
		RunE: runTree,
	}
}

func runTree(cmd *cobra.Command, _ []string) error {
	c, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	cols := c.Table.Columns()
	out := TreeOutput{
		Columns: make([]ColumnInfo, 0, len(cols)),
		Summary: TreeSummary{
			Slices:    len(c.Table.SliceColumns()),
			Leaves:    len(c.Table.LeafDataColumns()),
			Total:     len(cols),
			HasTotals: c.Table.CanHaveTotals(),
		},
	}
	for _, col := range cols {
		out.Columns = append(out.Columns, newColumnInfo(c.Table, c.Store, col))
	}

	r := c.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		renderTreeMarkdown(r, &out)
	default:
		renderTreeText(r, &out)
	}
	return nil
}

func treeRows(out *TreeOutput) [][]string {
	rows := make([][]string, 0, len(out.Columns))
	for _, col := range out.Columns {
		rows = append(rows, []string{
			strings.Repeat("  ", col.Depth) + col.ID,
			col.Type,
			col.Header,
			formatLocators(col.Locators),
			widthLabel(col.Width),
			col.Source,
		})
	}
	return rows
}

var treeHeader = []string{"Column", "Type", "Header", "Locators", "Width", "Source"}

func renderTreeText(r *output.Renderer, out *TreeOutput) {
	styles := r.Styles()
	r.Println(styles.Header1.Render("Columns"))
	r.Table(treeHeader, treeRows(out))
	r.Println(styles.Muted.Render(fmt.Sprintf("Total: %d columns, %d slices, %d leaves",
		out.Summary.Total, out.Summary.Slices, out.Summary.Leaves)))
}

func renderTreeMarkdown(r *output.Renderer, out *TreeOutput) {
	r.Println(output.FormatHeader(1, "Columns"))
	r.Table(treeHeader, treeRows(out))
	r.Println("")
	r.Println(output.FormatHeader(2, "Summary"))
	r.Println(output.FormatKeyValue("Total Columns", fmt.Sprintf("%d", out.Summary.Total)))
	r.Println(output.FormatKeyValue("Slice Columns", fmt.Sprintf("%d", out.Summary.Slices)))
	r.Println(output.FormatKeyValue("Leaf Columns", fmt.Sprintf("%d", out.Summary.Leaves)))
	r.Println(output.FormatKeyValue("Can Have Totals", fmt.Sprintf("%t", out.Summary.HasTotals)))
}
