package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapgrid/internal/cli/testutil"
	"github.com/leapstack-labs/leapgrid/pkg/colwidth"
)

// columnJSON mirrors ColumnInfo with raw locators for decoding.
type columnJSON struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Header   string          `json:"header"`
	Parent   string          `json:"parent"`
	Depth    int             `json:"depth"`
	Measure  string          `json:"measure"`
	Locators json.RawMessage `json:"locators"`
	Width    *colwidth.Width `json:"width"`
	Source   string          `json:"source"`
}

func TestTree_JSON(t *testing.T) {
	loadProject(t, "json")

	out, _, err := runCommand(t, NewTreeCommand())
	require.NoError(t, err)

	var got struct {
		Columns []columnJSON `json:"columns"`
		Summary TreeSummary  `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, TreeSummary{Slices: 1, Leaves: 4, Total: 8, HasTotals: true}, got.Summary)

	ids := make([]string, 0, len(got.Columns))
	byID := make(map[string]columnJSON)
	for _, col := range got.Columns {
		ids = append(ids, col.ID)
		byID[col.ID] = col
	}
	assert.Equal(t, []string{"r_0", "root", "cg_0", "c_0", "c_1", "cg_1", "c_2", "c_3"}, ids)

	assert.Equal(t, "slice", byID["r_0"].Type)
	assert.Equal(t, "manual", byID["r_0"].Source)
	assert.Empty(t, byID["root"].Locators)

	assert.Equal(t, "East Coast", byID["cg_0"].Header)
	assert.Equal(t, "root", byID["cg_0"].Parent)
	assert.JSONEq(t, `[{"attributeLocatorItem":{"attributeIdentifier":"region","element":"/elements/region/east"}}]`,
		string(byID["cg_0"].Locators))

	c0 := byID["c_0"]
	assert.Equal(t, 2, c0.Depth)
	assert.Equal(t, "amount", c0.Measure)
	assert.Equal(t, "manual", c0.Source)
	require.NotNil(t, c0.Width)
	assert.Equal(t, colwidth.Absolute(200), *c0.Width)

	assert.Equal(t, "weak", byID["c_3"].Source)
	assert.Equal(t, "none", byID["c_2"].Source)
	assert.Nil(t, byID["c_2"].Width)
}

func TestTree_Markdown(t *testing.T) {
	loadProject(t, "markdown")

	out, _, err := runCommand(t, NewTreeCommand())
	require.NoError(t, err)

	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "# Columns")
	assert.Contains(t, out, "| Column | Type | Header | Locators | Width | Source |")
	assert.Contains(t, out, "c_1 | leaf | Won | attr:region=/elements/region/east measure:won | 90 | weak |")
	assert.Contains(t, out, "- **Leaf Columns**: 4")
}

func TestTree_Text(t *testing.T) {
	loadProject(t, "text")

	out, _, err := runCommand(t, NewTreeCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "Columns")
	assert.Contains(t, out, "West Coast")
	assert.Contains(t, out, "Total: 8 columns, 1 slices, 4 leaves")
}
