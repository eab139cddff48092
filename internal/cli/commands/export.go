package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapgrid/internal/cli/output"
	"github.com/leapstack-labs/leapgrid/pkg/colwidth"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Write bool
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the normalized width items",
		Long: `Load the saved widths against the current result and export them again.

Items that no longer address a column of the result, malformed widths and
defaults without an absolute width are dropped. Column widths are re-keyed by
the locators of the column they resolve to.`,
		Example: `  # Print the normalized width items
  leapgrid export

  # Rewrite the widths file in place
  leapgrid export --write`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Write, "write", false, "Write the items back to the widths file")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	c, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	if opts.Write {
		if err := c.SaveWidths(); err != nil {
			return err
		}
		c.Renderer.Success("Saved widths to " + c.Cfg.WidthsPath)
		return nil
	}

	items := c.Store.ExportWidthItems(c.Table)
	data, err := colwidth.EncodeWidthItems(items)
	if err != nil {
		return err
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatCodeBlock("json", string(data)))
		return nil
	}
	r.Println(string(data))
	return nil
}
