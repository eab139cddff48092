package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapgrid/internal/testutil"
	"github.com/leapstack-labs/leapgrid/pkg/core"
)

func attr(id string, element core.AttributeHeader) core.AttributeLocator {
	return core.NewAttributeLocator(id, element.URI)
}

func TestFindColumn(t *testing.T) {
	tests := []struct {
		name     string
		result   *core.ResultMetadata
		locators []core.ColumnLocator
		want     string // empty means no match
	}{
		{
			name:     "first measure without column attributes",
			result:   testutil.TwoMeasuresWithRowAttribute(),
			locators: []core.ColumnLocator{core.NewMeasureLocator(testutil.Amount)},
			want:     "c_0",
		},
		{
			name:     "second measure without column attributes",
			result:   testutil.TwoMeasuresWithRowAttribute(),
			locators: []core.ColumnLocator{core.NewMeasureLocator(testutil.Won)},
			want:     "c_1",
		},
		{
			name:     "missing measure",
			result:   testutil.TwoMeasuresWithRowAttribute(),
			locators: []core.ColumnLocator{core.NewMeasureLocator(testutil.Probability)},
		},
		{
			name:   "attribute not in tree fails the match",
			result: testutil.TwoMeasuresWithRowAttribute(),
			locators: []core.ColumnLocator{
				attr(testutil.Region, testutil.East),
				core.NewMeasureLocator(testutil.Amount),
			},
		},
		{
			name:   "east leaf",
			result: testutil.SingleMeasureWithColumnAttribute(),
			locators: []core.ColumnLocator{
				attr(testutil.Region, testutil.East),
				core.NewMeasureLocator(testutil.Amount),
			},
			want: "c_0",
		},
		{
			name:   "west leaf",
			result: testutil.SingleMeasureWithColumnAttribute(),
			locators: []core.ColumnLocator{
				attr(testutil.Region, testutil.West),
				core.NewMeasureLocator(testutil.Amount),
			},
			want: "c_1",
		},
		{
			name:   "measure locator first",
			result: testutil.SingleMeasureWithColumnAttribute(),
			locators: []core.ColumnLocator{
				core.NewMeasureLocator(testutil.Amount),
				attr(testutil.Region, testutil.West),
			},
			want: "c_1",
		},
		{
			name:   "non-existent element",
			result: testutil.SingleMeasureWithColumnAttribute(),
			locators: []core.ColumnLocator{
				core.NewAttributeLocator(testutil.Region, "/elements/region/north"),
				core.NewMeasureLocator(testutil.Amount),
			},
		},
		{
			name:   "non-existent measure under existing element",
			result: testutil.SingleMeasureWithColumnAttribute(),
			locators: []core.ColumnLocator{
				attr(testutil.Region, testutil.East),
				core.NewMeasureLocator(testutil.Won),
			},
		},
		{
			name:   "deep leaf",
			result: testutil.TwoMeasuresWithTwoRowAndTwoColumnAttributes(),
			locators: []core.ColumnLocator{
				attr(testutil.Region, testutil.West),
				attr(testutil.ForecastCategory, testutil.Exclude),
				core.NewMeasureLocator(testutil.Won),
			},
			want: "c_5",
		},
		{
			name:   "locator without element matches the first leaf of the subtree",
			result: testutil.TwoMeasuresWithTwoRowAndTwoColumnAttributes(),
			locators: []core.ColumnLocator{
				attr(testutil.Region, testutil.West),
				core.NewAttributeLocator(testutil.ForecastCategory, ""),
				core.NewMeasureLocator(testutil.Amount),
			},
			want: "c_4",
		},
		{
			name:   "attribute-only set addresses a group",
			result: testutil.TwoMeasuresWithTwoRowAndTwoColumnAttributes(),
			locators: []core.ColumnLocator{
				attr(testutil.Region, testutil.West),
				attr(testutil.ForecastCategory, testutil.Include),
			},
			want: "cg_5",
		},
		{
			name:     "top level group",
			result:   testutil.TwoMeasuresWithTwoRowAndTwoColumnAttributes(),
			locators: []core.ColumnLocator{attr(testutil.Region, testutil.West)},
			want:     "cg_3",
		},
		{
			name:   "two measure locators",
			result: testutil.TwoMeasuresWithRowAttribute(),
			locators: []core.ColumnLocator{
				core.NewMeasureLocator(testutil.Amount),
				core.NewMeasureLocator(testutil.Won),
			},
		},
		{
			name:   "column only table",
			result: testutil.ColumnOnly(),
			locators: []core.ColumnLocator{
				attr(testutil.ProductName, testutil.Explorer),
			},
			want: "cg_2",
		},
		{
			name:   "column only table with measure locator",
			result: testutil.ColumnOnly(),
			locators: []core.ColumnLocator{
				attr(testutil.ProductName, testutil.Explorer),
				core.NewMeasureLocator(testutil.Amount),
			},
		},
		{
			name:   "empty locator set",
			result: testutil.TwoMeasuresWithRowAttribute(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := mustBuild(t, tt.result)

			col, ok := td.FindColumn(tt.locators)
			if tt.want == "" {
				assert.False(t, ok)
				assert.Nil(t, col)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, col.ID)
		})
	}
}

func TestCreateColumnLocator(t *testing.T) {
	td := mustBuild(t, testutil.TwoMeasuresWithTwoRowAndTwoColumnAttributes())

	leaf, err := td.Column("c_3")
	require.NoError(t, err)
	locators, err := CreateColumnLocator(leaf)
	require.NoError(t, err)
	assert.Equal(t, []core.ColumnLocator{
		attr(testutil.Region, testutil.East),
		attr(testutil.ForecastCategory, testutil.Include),
		core.NewMeasureLocator(testutil.Won),
	}, locators)

	group, err := td.Column("cg_4")
	require.NoError(t, err)
	locators, err = CreateColumnLocator(group)
	require.NoError(t, err)
	assert.Equal(t, []core.ColumnLocator{
		attr(testutil.Region, testutil.West),
		attr(testutil.ForecastCategory, testutil.Exclude),
	}, locators)

	for _, id := range []string{"r_0", RootColumnID} {
		col, err := td.Column(id)
		require.NoError(t, err)
		_, err = CreateColumnLocator(col)
		assert.ErrorIs(t, err, ErrNotDataColumn, id)
	}
}

func TestCreateColumnLocator_BrokenSeries(t *testing.T) {
	col := &Column{
		ID:   "c_0",
		Type: DataColumnLeaf,
		Series: &SeriesDescriptor{
			Measure:              core.MeasureDescriptor{LocalIdentifier: testutil.Amount},
			AttributeDescriptors: []core.AttributeDescriptor{{LocalIdentifier: testutil.Region}},
		},
	}
	_, err := CreateColumnLocator(col)
	assert.ErrorIs(t, err, ErrBrokenSeries)
}

// Every column the tree produces must be found again through its own locators.
func TestCreateColumnLocator_InverseOfFindColumn(t *testing.T) {
	for _, result := range []*core.ResultMetadata{
		testutil.TwoMeasuresWithRowAttribute(),
		testutil.SingleMeasureWithColumnAttribute(),
		testutil.TwoMeasuresWithTwoRowAndTwoColumnAttributes(),
		testutil.ColumnOnly(),
	} {
		td := mustBuild(t, result)
		for _, col := range td.Columns() {
			if col.IsSlice() || col.IsRoot() {
				continue
			}
			locators, err := CreateColumnLocator(col)
			require.NoError(t, err, col.ID)

			found, ok := td.FindColumn(locators)
			require.True(t, ok, col.ID)
			assert.Equal(t, col.ID, found.ID)
		}
	}
}

func TestMeasureSortMatcher(t *testing.T) {
	td := mustBuild(t, testutil.SingleMeasureWithColumnAttribute())
	east, err := td.Column("c_0")
	require.NoError(t, err)
	west, err := td.Column("c_1")
	require.NoError(t, err)

	sortItem := core.MeasureSortItem{
		Locators: []core.ColumnLocator{
			attr(testutil.Region, testutil.West),
			core.NewMeasureLocator(testutil.Amount),
		},
		SortDirection: core.SortDesc,
	}

	assert.False(t, MeasureSortMatcher(east, sortItem))
	assert.True(t, MeasureSortMatcher(west, sortItem))
	assert.False(t, MeasureSortMatcher(west, core.AttributeSortItem{AttributeIdentifier: testutil.Region}))

	group, err := td.Column("cg_1")
	require.NoError(t, err)
	assert.False(t, MeasureSortMatcher(group, sortItem))
}

func TestAttributeSortMatcher(t *testing.T) {
	td := mustBuild(t, testutil.TwoMeasuresWithTwoRowAndTwoColumnAttributes())
	slice, err := td.Column("r_1")
	require.NoError(t, err)

	assert.True(t, AttributeSortMatcher(slice, core.AttributeSortItem{
		AttributeIdentifier: testutil.Department,
		SortDirection:       core.SortAsc,
	}))
	assert.False(t, AttributeSortMatcher(slice, core.AttributeSortItem{AttributeIdentifier: testutil.ProductName}))
	assert.False(t, AttributeSortMatcher(slice, core.MeasureSortItem{}))

	group, err := td.Column("cg_0")
	require.NoError(t, err)
	assert.False(t, AttributeSortMatcher(group, core.AttributeSortItem{AttributeIdentifier: testutil.Region}))
}
