package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapgrid/pkg/core"
)

func TestLocate(t *testing.T) {
	loadProject(t, "json")

	tests := []struct {
		name   string
		args   []string
		wantID string
	}{
		{
			name:   "leaf by element and measure",
			args:   []string{"attr:region=/elements/region/west", "measure:won"},
			wantID: "c_3",
		},
		{
			name:   "group by element",
			args:   []string{"attr:region=/elements/region/east"},
			wantID: "cg_0",
		},
		{
			name:   "any element matches first leaf",
			args:   []string{"attr:region", "measure:won"},
			wantID: "c_1",
		},
		{
			name:   "json locators",
			args:   []string{`[{"attributeLocatorItem":{"attributeIdentifier":"region","element":"/elements/region/west"}},{"measureLocatorItem":{"measureIdentifier":"amount"}}]`},
			wantID: "c_2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCommand(t, NewLocateCommand(), tt.args...)
			require.NoError(t, err)

			var got struct {
				Column columnJSON `json:"column"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tt.wantID, got.Column.ID)
		})
	}
}

func TestLocate_Errors(t *testing.T) {
	loadProject(t, "json")

	_, _, err := runCommand(t, NewLocateCommand(), "attr:region=/elements/region/north", "measure:amount")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, _, err = runCommand(t, NewLocateCommand(), "measure:amount", "measure:won")
	assert.ErrorIs(t, err, ErrNoMatch)

	_, _, err = runCommand(t, NewLocateCommand(), "region")
	assert.ErrorIs(t, err, core.ErrInvalidLocator)

	_, _, err = runCommand(t, NewLocateCommand())
	assert.Error(t, err)
}

func TestLocate_Markdown(t *testing.T) {
	loadProject(t, "markdown")

	out, _, err := runCommand(t, NewLocateCommand(), "attr:region=/elements/region/east", "measure:amount")
	require.NoError(t, err)
	assert.Contains(t, out, "# Column c_0")
	assert.Contains(t, out, "- **Width**: 200")
}
