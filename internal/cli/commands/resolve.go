package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapgrid/internal/cli/output"
	"github.com/leapstack-labs/leapgrid/internal/loader"
	"github.com/leapstack-labs/leapgrid/internal/structure"
)

// ResolveOptions holds options for the resolve command.
type ResolveOptions struct {
	Watch bool
}

// ResolveOutput is the JSON output of the resolve command.
type ResolveOutput struct {
	Columns []ColumnInfo `json:"columns"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	opts := &ResolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve [column-id...]",
		Short: "Resolve the widths of columns",
		Long: `Resolve the effective width of columns from the saved widths file.

A manual width of the column wins over the default of its measure, which wins
over the default for all measure columns. Columns without a width size
automatically.

Without arguments, every slice column and leaf data column is resolved.`,
		Example: `  # Resolve all slice and leaf columns
  leapgrid resolve

  # Resolve two columns
  leapgrid resolve r_0 c_3

  # Re-resolve whenever the result or widths file changes
  leapgrid resolve --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-resolve when the result or widths file changes")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, opts *ResolveOptions) error {
	c, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	if err := renderResolved(c, args); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return watchResolve(ctx, c, args)
}

// watchResolve re-renders the resolved widths after every change of the
// result or widths file. The watcher only signals changes; reloading and
// rendering happen on a second goroutine so a slow render never blocks the
// event loop. A render error stops both.
func watchResolve(ctx context.Context, c *CommandContext, args []string) error {
	eg, egctx := errgroup.WithContext(ctx)
	changed := make(chan struct{}, 1)

	eg.Go(func() error {
		defer close(changed)
		paths := []string{c.Cfg.ResultPath, c.Cfg.WidthsPath}
		return loader.Watch(egctx, c.Logger, paths, loader.DefaultDebounce, func(context.Context) error {
			select {
			case changed <- struct{}{}:
			default:
				// a reload is already pending
			}
			return nil
		})
	})

	eg.Go(func() error {
		for range changed {
			if err := c.Reload(); err != nil {
				// keep watching; the file may be mid-edit
				c.Renderer.Error(err.Error())
				continue
			}
			if err := renderResolved(c, args); err != nil {
				return err
			}
		}
		c.Logger.Debug("stopping watch")
		return nil
	})

	return eg.Wait()
}

func resolveColumns(td *structure.TableDescriptor, ids []string) ([]*structure.Column, error) {
	if len(ids) == 0 {
		return append(td.SliceColumns(), td.LeafDataColumns()...), nil
	}
	cols := make([]*structure.Column, 0, len(ids))
	for _, id := range ids {
		col, err := td.Column(id)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func renderResolved(c *CommandContext, ids []string) error {
	cols, err := resolveColumns(c.Table, ids)
	if err != nil {
		return err
	}

	out := ResolveOutput{Columns: make([]ColumnInfo, 0, len(cols))}
	for _, col := range cols {
		out.Columns = append(out.Columns, newColumnInfo(c.Table, c.Store, col))
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(out)
	}

	rows := make([][]string, 0, len(out.Columns))
	for _, col := range out.Columns {
		rows = append(rows, []string{col.ID, col.Header, widthLabel(col.Width), col.Source})
	}
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println(output.FormatHeader(1, "Resolved Widths"))
	}
	r.Table([]string{"Column", "Header", "Width", "Source"}, rows)
	if r.EffectiveMode() == output.ModeText {
		r.Muted(fmt.Sprintf("%d columns", len(rows)))
	}
	return nil
}
