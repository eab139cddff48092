package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapgrid/internal/cli/output"
	"github.com/leapstack-labs/leapgrid/pkg/core"
)

// ErrNoMatch is returned when no column matches the locators.
var ErrNoMatch = errors.New("no column matches the locators")

// LocateOutput is the JSON output of the locate command.
type LocateOutput struct {
	Locators []core.ColumnLocator `json:"locators"`
	Column   ColumnInfo           `json:"column"`
}

// NewLocateCommand creates the locate command.
func NewLocateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locate <locator>...",
		Short: "Find the column addressed by locators",
		Long: `Find the data column addressed by a set of locators.

Locators are written as attr:<attribute>[=<element>] or measure:<measure>.
An attribute locator without an element matches any element. A single
argument starting with '[' is read as a JSON locator list.

Locators with a measure address a leaf; locators without one address the
deepest group their attributes reach.`,
		Example: `  # The amount leaf under the East region
  leapgrid locate attr:region=/elements/region/east measure:amount

  # The same with JSON locators
  leapgrid locate '[{"measureLocatorItem":{"measureIdentifier":"amount"}}]'`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLocate,
	}
}

func runLocate(cmd *cobra.Command, args []string) error {
	locators, err := parseLocatorArgs(args)
	if err != nil {
		return err
	}

	c, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	col, ok := c.Table.FindColumn(locators)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoMatch, formatLocators(locators))
	}
	c.Logger.Debug("located column", "column", col.ID, "locators", len(locators))

	info := newColumnInfo(c.Table, c.Store, col)
	r := c.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(LocateOutput{Locators: locators, Column: info})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Column "+info.ID))
		r.Println(output.FormatKeyValue("Type", info.Type))
		r.Println(output.FormatKeyValue("Header", info.Header))
		r.Println(output.FormatKeyValue("Locators", formatLocators(info.Locators)))
		r.Println(output.FormatKeyValue("Width", widthLabel(info.Width)))
	default:
		styles := r.Styles()
		r.Printf("%s %s\n", styles.Column.Render(info.ID), styles.Muted.Render(output.Title(info.Type)+" "+info.Header))
		r.Printf("  %s %s\n", styles.Muted.Render("locators:"), formatLocators(info.Locators))
		r.Printf("  %s %s (%s)\n", styles.Muted.Render("width:"), widthLabel(info.Width), info.Source)
	}
	return nil
}
