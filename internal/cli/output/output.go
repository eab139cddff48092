// Package output renders CLI results for terminals, markdown consumers and
// machines.
//
// Auto mode picks styled text when stdout is a terminal and markdown otherwise,
// so piped output stays readable by tools and agents.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode selects the output format.
type OutputMode string //nolint:revive // Mode is the short alias used by commands

// Mode is an alias for OutputMode.
type Mode = OutputMode

const (
	ModeAuto     OutputMode = "auto"
	ModeText     OutputMode = "text"
	ModeMarkdown OutputMode = "markdown"
	ModeJSON     OutputMode = "json"
)

// Valid reports whether m names a known mode.
func (m OutputMode) Valid() bool {
	switch m {
	case ModeAuto, ModeText, ModeMarkdown, ModeJSON, "":
		return true
	}
	return false
}

// Modes returns the selectable modes, for flag completion.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeText), string(ModeMarkdown), string(ModeJSON)}
}

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   OutputMode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: newStyles(isTTY && mode != ModeMarkdown && mode != ModeJSON),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}

// Mode returns the configured mode.
func (r *Renderer) Mode() OutputMode { return r.mode }

// IsTTY reports whether output goes to a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// EffectiveMode resolves auto mode against the terminal state.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeMarkdown
}

// Styles returns the styles for text mode.
func (r *Renderer) Styles() *Styles { return r.styles }

// Writer returns the output writer.
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the error writer.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Println writes a line to the output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	r.status(r.styles.StatusSuccess.String(), r.styles.Success, msg, r.out)
}

// Warning writes a warning to the error writer.
func (r *Renderer) Warning(msg string) {
	r.status("!", r.styles.Warning, msg, r.errOut)
}

// Error writes an error message to the error writer.
func (r *Renderer) Error(msg string) {
	r.status(r.styles.StatusFailed.String(), r.styles.Error, msg, r.errOut)
}

// Muted writes a secondary message.
func (r *Renderer) Muted(msg string) {
	if r.EffectiveMode() == ModeText {
		msg = r.styles.Muted.Render(msg)
	}
	_, _ = fmt.Fprintln(r.out, msg)
}

func (r *Renderer) status(icon string, style interface{ Render(...string) string }, msg string, w io.Writer) {
	if r.EffectiveMode() == ModeText {
		_, _ = fmt.Fprintf(w, "%s %s\n", icon, style.Render(msg))
		return
	}
	_, _ = fmt.Fprintln(w, msg)
}
