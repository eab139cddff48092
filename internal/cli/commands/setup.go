package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/leapgrid/internal/cli/config"
	"github.com/leapstack-labs/leapgrid/internal/cli/output"
	intconfig "github.com/leapstack-labs/leapgrid/internal/config"
	"github.com/leapstack-labs/leapgrid/internal/loader"
	"github.com/leapstack-labs/leapgrid/internal/resizing"
	"github.com/leapstack-labs/leapgrid/internal/structure"
	"github.com/leapstack-labs/leapgrid/pkg/colwidth"
	"github.com/leapstack-labs/leapgrid/pkg/core"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Table    *structure.TableDescriptor
	Store    *resizing.ResizedColumnsStore
}

// NewCommandContext loads the result and the saved widths named by the
// configuration and builds the column tree and width store from them.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	c := NewCommandContextWithoutTable(cmd)
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCommandContextWithoutTable creates a CommandContext without loading any
// files. Useful for commands that don't need the result.
func NewCommandContextWithoutTable(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Reload rereads the result and width files, replacing the tree and the store.
func (c *CommandContext) Reload() error {
	if err := c.Cfg.ValidateResultFile(); err != nil {
		return err
	}

	var (
		result *core.ResultMetadata
		items  []colwidth.WidthItem
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		result, err = loader.LoadResult(c.Cfg.ResultPath)
		return err
	})
	eg.Go(func() error {
		var err error
		items, err = loader.LoadWidthItems(c.Cfg.WidthsPath)
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	td, err := structure.Build(result)
	if err != nil {
		return fmt.Errorf("failed to build columns: %w", err)
	}

	store := resizing.NewResizedColumnsStore(c.Logger)
	store.UpdateColumnWidths(td, items)

	c.Logger.Debug("loaded table",
		slog.String("result", c.Cfg.ResultPath),
		slog.Int("columns", len(td.Columns())),
		slog.Int("width_items", len(items)))

	c.Table = td
	c.Store = store
	return nil
}

// SaveWidths writes the store's width items to the widths file.
func (c *CommandContext) SaveWidths() error {
	items := c.Store.ExportWidthItems(c.Table)
	if err := loader.SaveWidthItems(c.Cfg.WidthsPath, items); err != nil {
		return err
	}
	c.Logger.Debug("saved widths", slog.String("path", c.Cfg.WidthsPath), slog.Int("items", len(items)))
	return nil
}

// Helper functions shared across commands

// getConfig returns the current configuration, or the defaults when no
// configuration has been loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	measure := &config.MeasureConfig{}
	intconfig.ApplyMeasureDefaults(measure)
	return &config.Config{
		ResultPath:   config.DefaultResultFile,
		WidthsPath:   config.DefaultWidthsFile,
		OutputFormat: config.DefaultOutput,
		Measure:      measure,
	}
}
