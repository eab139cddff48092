package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapgrid/internal/loader"
	"github.com/leapstack-labs/leapgrid/internal/resizing"
	"github.com/leapstack-labs/leapgrid/pkg/colwidth"
)

func newTestSession(t *testing.T) (*replSession, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	loadProject(t, "json")

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	c, err := NewCommandContext(cmd)
	require.NoError(t, err)
	return &replSession{ctx: c, out: &out, errOut: &errOut}, &out, &errOut
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		line    string
		want    resizing.Intent
		wantErr bool
	}{
		{line: "resize c_0 120", want: resizing.Intent{Kind: resizing.ResizeColumn, ColumnID: "c_0", Width: colwidth.Absolute(120)}},
		{line: "resize r_0 auto", want: resizing.Intent{Kind: resizing.ResizeColumn, ColumnID: "r_0", Width: colwidth.Auto()}},
		{line: "resize-measure c_1 90+", want: resizing.Intent{Kind: resizing.ResizeMeasure, ColumnID: "c_1", Width: colwidth.AbsoluteGrowToFit(90)}},
		{line: "resize-measure measure:won 90", want: resizing.Intent{Kind: resizing.ResizeMeasure, MeasureIdentifier: "won", Width: colwidth.Absolute(90)}},
		{line: "resize-all 100", want: resizing.Intent{Kind: resizing.ResizeAllMeasures, Width: colwidth.Absolute(100)}},
		{line: "reset c_0", want: resizing.Intent{Kind: resizing.ResetColumn, ColumnID: "c_0"}},
		{line: "reset-measure measure:amount", want: resizing.Intent{Kind: resizing.ResetMeasure, MeasureIdentifier: "amount"}},
		{line: "reset-all", want: resizing.Intent{Kind: resizing.ResetAllMeasures}},
		{line: "resize c_0", wantErr: true},
		{line: "resize c_0 wide", wantErr: true},
		{line: "reset-all now", wantErr: true},
		{line: "shrink c_0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseIntent(splitFields(tt.line))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestREPLSession(t *testing.T) {
	s, out, errOut := newTestSession(t)

	assert.False(t, s.execute("resize c_2 130"))
	assert.Contains(t, out.String(), "c_2: 130 (manual)")

	assert.False(t, s.execute("resize-measure measure:amount 110"))
	assert.False(t, s.execute("reset r_0"))
	assert.Contains(t, out.String(), "r_0 sizes to fit again")

	assert.False(t, s.execute("resize c_9 100"))
	assert.Contains(t, errOut.String(), "unknown column")

	assert.False(t, s.execute("bogus"))
	assert.False(t, s.execute(".nope"))
	assert.Contains(t, errOut.String(), "Unknown command: .nope")

	assert.False(t, s.execute(".save"))
	assert.False(t, s.dirty)

	items, err := loader.LoadWidthItems(s.ctx.Cfg.WidthsPath)
	require.NoError(t, err)
	assert.Equal(t, []colwidth.WidthItem{
		colwidth.NewWidthForAllColumnsForMeasure("amount", colwidth.Absolute(110)),
		colwidth.NewWidthForAllColumnsForMeasure("won", colwidth.Absolute(90)),
		colwidth.NewWidthForSelectedColumns("amount", eastLocators(), colwidth.Absolute(200)),
		colwidth.NewWidthForSelectedColumns("amount", westLocators(), colwidth.Absolute(130)),
	}, items)

	assert.False(t, s.execute("resize-all 100"))
	assert.True(t, s.dirty)
	assert.False(t, s.execute(".reload"))
	assert.False(t, s.dirty)
	all, ok := s.ctx.Store.AllMeasureDefault()
	assert.False(t, ok, "reload drops unsaved changes: %v", all)

	assert.True(t, s.execute(".quit"))
}

func TestREPLSession_QuitWarnsAboutUnsavedChanges(t *testing.T) {
	s, _, errOut := newTestSession(t)

	s.execute("resize c_0 99")
	assert.True(t, s.execute(".exit"))
	assert.Contains(t, errOut.String(), "Unsaved width changes discarded")
}

func TestREPLSession_ShowAndExport(t *testing.T) {
	s, out, _ := newTestSession(t)

	s.execute(".show c_1")
	assert.Contains(t, out.String(), `"source": "weak"`)

	out.Reset()
	s.execute(".export")
	assert.Contains(t, out.String(), `"attributeIdentifier": "product_name"`)

	out.Reset()
	s.execute(".help")
	assert.Contains(t, out.String(), "resize-measure")
}

func TestREPLSession_Completer(t *testing.T) {
	s, _, _ := newTestSession(t)

	newLine, length := s.completer().Do([]rune("resize c_"), len("resize c_"))
	assert.Equal(t, len("c_"), length)
	assert.Len(t, newLine, 4)
}
