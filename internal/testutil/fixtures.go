package testutil

import "github.com/leapstack-labs/leapgrid/pkg/core"

// Identifiers used by the result fixtures.
const (
	ProductName      = "product_name"
	Department       = "department"
	Region           = "region"
	ForecastCategory = "forecast_category"

	Amount      = "amount"
	Won         = "won"
	Probability = "probability"
)

// Element headers used by the result fixtures.
var (
	East    = core.AttributeHeader{URI: "/elements/region/east", Name: "East Coast"}
	West    = core.AttributeHeader{URI: "/elements/region/west", Name: "West Coast"}
	Exclude = core.AttributeHeader{URI: "/elements/forecast_category/exclude", Name: "Exclude"}
	Include = core.AttributeHeader{URI: "/elements/forecast_category/include", Name: "Include"}

	CompuSci    = core.AttributeHeader{URI: "/elements/product/compusci", Name: "CompuSci"}
	Educationly = core.AttributeHeader{URI: "/elements/product/educationly", Name: "Educationly"}
	Explorer    = core.AttributeHeader{URI: "/elements/product/explorer", Name: "Explorer"}
)

func attribute(id, name string) core.AttributeDescriptor {
	return core.AttributeDescriptor{LocalIdentifier: id, Name: name}
}

func measure(id, name string) core.MeasureDescriptor {
	return core.MeasureDescriptor{LocalIdentifier: id, Name: name, Format: "#,##0.00"}
}

// TwoMeasuresWithRowAttribute returns a result with one row attribute and two
// measures: slice column r_0, leaves c_0 (amount) and c_1 (won).
func TwoMeasuresWithRowAttribute() *core.ResultMetadata {
	return &core.ResultMetadata{
		RowAttributes: []core.AttributeDescriptor{attribute(ProductName, "Product Name")},
		Measures:      []core.MeasureDescriptor{measure(Amount, "Amount"), measure(Won, "Won")},
	}
}

// SingleMeasureWithColumnAttribute returns a result with one row attribute, the
// region column attribute (East, West) and one measure: groups cg_0 (East) and
// cg_1 (West) with leaves c_0 and c_1.
func SingleMeasureWithColumnAttribute() *core.ResultMetadata {
	return &core.ResultMetadata{
		RowAttributes:    []core.AttributeDescriptor{attribute(ProductName, "Product Name")},
		ColumnAttributes: []core.AttributeDescriptor{attribute(Region, "Region")},
		Measures:         []core.MeasureDescriptor{measure(Amount, "Amount")},
		ColumnHeaders:    [][]core.AttributeHeader{{East}, {West}},
	}
}

// TwoMeasuresWithTwoRowAndTwoColumnAttributes returns the largest fixture:
//
//	root
//	  cg_0 East
//	    cg_1 Exclude  c_0 amount, c_1 won
//	    cg_2 Include  c_2 amount, c_3 won
//	  cg_3 West
//	    cg_4 Exclude  c_4 amount, c_5 won
//	    cg_5 Include  c_6 amount, c_7 won
func TwoMeasuresWithTwoRowAndTwoColumnAttributes() *core.ResultMetadata {
	return &core.ResultMetadata{
		RowAttributes: []core.AttributeDescriptor{
			attribute(ProductName, "Product Name"),
			attribute(Department, "Department"),
		},
		ColumnAttributes: []core.AttributeDescriptor{
			attribute(Region, "Region"),
			attribute(ForecastCategory, "Forecast Category"),
		},
		Measures: []core.MeasureDescriptor{measure(Amount, "Amount"), measure(Won, "Won")},
		ColumnHeaders: [][]core.AttributeHeader{
			{East, Exclude},
			{East, Include},
			{West, Exclude},
			{West, Include},
		},
	}
}

// ColumnOnly returns a result without measures: one row attribute and the
// product column attribute with three elements. The groups cg_0 (CompuSci),
// cg_1 (Educationly) and cg_2 (Explorer) are the leaf data columns.
func ColumnOnly() *core.ResultMetadata {
	return &core.ResultMetadata{
		RowAttributes:    []core.AttributeDescriptor{attribute(Department, "Department")},
		ColumnAttributes: []core.AttributeDescriptor{attribute(ProductName, "Product Name")},
		ColumnHeaders:    [][]core.AttributeHeader{{CompuSci}, {Educationly}, {Explorer}},
	}
}
