package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"empty is auto", "", false, ModeMarkdown},
		{"explicit json", ModeJSON, true, ModeJSON},
		{"explicit text piped", ModeText, false, ModeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTerminal(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestModeValid(t *testing.T) {
	for _, m := range Modes() {
		assert.True(t, OutputMode(m).Valid(), m)
	}
	assert.False(t, OutputMode("csv").Valid())
}

func TestTable(t *testing.T) {
	header := []string{"Column", "Width"}
	rows := [][]string{{"c_0", "120"}, {"c_1", "auto"}}

	t.Run("markdown", func(t *testing.T) {
		var out bytes.Buffer
		NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeMarkdown).Table(header, rows)
		assert.Equal(t, "| Column | Width |\n| --- | --- |\n| c_0 | 120 |\n| c_1 | auto |\n", out.String())
	})

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeText).Table(header, rows)
		assert.Contains(t, out.String(), "┌")
		assert.Contains(t, out.String(), "c_1")
	})
}

func TestMessages(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeMarkdown)

	r.Success("saved")
	r.Warning("careful")
	r.Error("broken")

	assert.Equal(t, "saved\n", out.String())
	assert.Equal(t, "careful\nbroken\n", errOut.String())
}

func TestJSON(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &bytes.Buffer{}, false, ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"c_0": 120}))
	assert.JSONEq(t, `{"c_0":120}`, out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Columns\n", FormatHeader(2, "Columns"))
	assert.Equal(t, "- **Leaves**: 4", FormatKeyValue("Leaves", "4"))
	assert.Equal(t, "```json\n[]\n```", FormatCodeBlock("json", "[]\n"))
	assert.Equal(t, "Data Column Group", Title("data column group"))
}
