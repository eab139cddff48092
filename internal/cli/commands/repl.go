package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapgrid/internal/resizing"
)

const replPrompt = "leapgrid> "

// historyFileName is the REPL history file in the project root.
const historyFileName = ".leapgrid_history"

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Resize columns interactively",
		Long: `Start an interactive session to resize columns of the result.

Width changes go to the in-memory store and are written to the widths file
with .save. Type .help in the session for the list of commands.`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
}

func runREPL(cmd *cobra.Command, _ []string) error {
	c, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	session := &replSession{ctx: c, out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr()}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     filepath.Join(c.Cfg.ProjectRoot, historyFileName),
		AutoComplete:    session.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(session.out, "LeapGrid REPL (result: %s)\n", c.Cfg.ResultPath)
	_, _ = fmt.Fprintln(session.out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(session.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if session.execute(line) {
			break
		}
	}
	return nil
}

// replSession executes REPL lines against a loaded table and store.
type replSession struct {
	ctx    *CommandContext
	out    io.Writer
	errOut io.Writer
	dirty  bool
}

// execute runs one line and reports whether the session should end.
func (s *replSession) execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	fields := strings.Fields(line)
	if strings.HasPrefix(fields[0], ".") {
		return s.dotCommand(fields)
	}

	intent, err := parseIntent(fields)
	if err != nil {
		s.printErr(err)
		return false
	}
	resume, err := s.ctx.Store.Apply(s.ctx.Table, intent)
	if err != nil {
		s.printErr(err)
		return false
	}
	s.dirty = true
	s.ctx.Logger.Debug("applied intent", "kind", intent.Kind.String(), "column", intent.ColumnID)

	if resume {
		_, _ = fmt.Fprintf(s.out, "%s sizes to fit again\n", intent.ColumnID)
	}
	if intent.ColumnID != "" {
		s.printColumn(intent.ColumnID)
	}
	return false
}

func (s *replSession) dotCommand(fields []string) bool {
	switch strings.ToLower(fields[0]) {
	case ".quit", ".exit":
		if s.dirty {
			_, _ = fmt.Fprintln(s.errOut, "Unsaved width changes discarded (use .save to keep them)")
		}
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".show":
		if err := renderResolved(s.ctx, fields[1:]); err != nil {
			s.printErr(err)
		}

	case ".export":
		items := s.ctx.Store.ExportWidthItems(s.ctx.Table)
		if err := s.ctx.Renderer.JSON(items); err != nil {
			s.printErr(err)
		}

	case ".save":
		if err := s.ctx.SaveWidths(); err != nil {
			s.printErr(err)
			return false
		}
		s.dirty = false
		_, _ = fmt.Fprintf(s.out, "Saved widths to %s\n", s.ctx.Cfg.WidthsPath)

	case ".reload":
		if err := s.ctx.Reload(); err != nil {
			s.printErr(err)
			return false
		}
		s.dirty = false
		_, _ = fmt.Fprintln(s.out, "Reloaded result and widths")

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", fields[0])
	}
	return false
}

func (s *replSession) printColumn(id string) {
	col, err := s.ctx.Table.Column(id)
	if err != nil {
		return
	}
	info := newColumnInfo(s.ctx.Table, s.ctx.Store, col)
	_, _ = fmt.Fprintf(s.out, "%s: %s (%s)\n", info.ID, widthLabel(info.Width), info.Source)
}

func (s *replSession) printErr(err error) {
	_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
}

// parseIntent parses a resize command line.
func parseIntent(fields []string) (resizing.Intent, error) {
	usage := func() (resizing.Intent, error) {
		return resizing.Intent{}, fmt.Errorf("%w: %q (type .help for usage)", resizing.ErrInvalidIntent, strings.Join(fields, " "))
	}

	switch fields[0] {
	case "resize":
		if len(fields) != 3 {
			return usage()
		}
		w, err := parseWidthArg(fields[2])
		if err != nil {
			return resizing.Intent{}, err
		}
		return resizing.Intent{Kind: resizing.ResizeColumn, ColumnID: fields[1], Width: w}, nil

	case "resize-measure":
		if len(fields) != 3 {
			return usage()
		}
		w, err := parseWidthArg(fields[2])
		if err != nil {
			return resizing.Intent{}, err
		}
		intent := measureTarget(fields[1])
		intent.Kind = resizing.ResizeMeasure
		intent.Width = w
		return intent, nil

	case "resize-all":
		if len(fields) != 2 {
			return usage()
		}
		w, err := parseWidthArg(fields[1])
		if err != nil {
			return resizing.Intent{}, err
		}
		return resizing.Intent{Kind: resizing.ResizeAllMeasures, Width: w}, nil

	case "reset":
		if len(fields) != 2 {
			return usage()
		}
		return resizing.Intent{Kind: resizing.ResetColumn, ColumnID: fields[1]}, nil

	case "reset-measure":
		if len(fields) != 2 {
			return usage()
		}
		intent := measureTarget(fields[1])
		intent.Kind = resizing.ResetMeasure
		return intent, nil

	case "reset-all":
		if len(fields) != 1 {
			return usage()
		}
		return resizing.Intent{Kind: resizing.ResetAllMeasures}, nil

	default:
		return usage()
	}
}

// measureTarget reads measure:<id> as a measure and anything else as a column.
func measureTarget(arg string) resizing.Intent {
	if id, ok := strings.CutPrefix(arg, "measure:"); ok {
		return resizing.Intent{MeasureIdentifier: id}
	}
	return resizing.Intent{ColumnID: arg}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  resize <column> <width>              Set the width of one column
  resize-measure <column|measure:id> <width>
                                       Set the width of all columns of a measure
  resize-all <width>                   Set the width of all measure columns
  reset <column>                       Remove the width of one column
  reset-measure <column|measure:id>    Remove the width of a measure
  reset-all                            Remove the width of all measure columns

  .show [column...]  Show resolved widths
  .export            Print the width items
  .save              Write the width items to the widths file
  .reload            Reread the result and widths files
  .help              Show this help message
  .quit / .exit      Exit the REPL

Widths:
  120    absolute width in pixels
  120+   absolute width that may grow to fit
  auto   size to fit the content
`
	_, _ = fmt.Fprintln(w, help)
}

// completer offers commands and the column ids of the current table.
func (s *replSession) completer() *readline.PrefixCompleter {
	columnIDs := func(string) []string {
		cols := s.ctx.Table.Columns()
		ids := make([]string, 0, len(cols))
		for _, col := range cols {
			ids = append(ids, col.ID)
		}
		return ids
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("resize", readline.PcItemDynamic(columnIDs)),
		readline.PcItem("resize-measure", readline.PcItemDynamic(columnIDs)),
		readline.PcItem("resize-all"),
		readline.PcItem("reset", readline.PcItemDynamic(columnIDs)),
		readline.PcItem("reset-measure", readline.PcItemDynamic(columnIDs)),
		readline.PcItem("reset-all"),
		readline.PcItem(".show", readline.PcItemDynamic(columnIDs)),
		readline.PcItem(".export"),
		readline.PcItem(".save"),
		readline.PcItem(".reload"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
