package colwidth

import "github.com/leapstack-labs/leapgrid/pkg/core"

// WidthItem is one persisted width setting.
//
// The set of implementations is closed:
//   - AttributeColumnWidthItem: width of a row attribute (slice) column
//   - MeasureColumnWidthItem: width of the data column(s) addressed by locators
//   - AllMeasureColumnWidthItem: default width of every measure column
//   - WeakMeasureColumnWidthItem: default width of every column of one measure
type WidthItem interface {
	isWidthItem()
	// ColumnWidth returns the width the item carries.
	ColumnWidth() Width
}

// AttributeColumnWidthItem sets the width of the slice column of an attribute.
type AttributeColumnWidthItem struct {
	AttributeIdentifier string
	Width               Width
}

// MeasureColumnWidthItem sets the width of the data columns addressed by
// Locators. Attribute locators come first, the measure locator (if any) last.
type MeasureColumnWidthItem struct {
	Locators []core.ColumnLocator
	Width    Width
}

// AllMeasureColumnWidthItem sets the default width of every measure column.
type AllMeasureColumnWidthItem struct {
	Width Width
}

// WeakMeasureColumnWidthItem sets the default width of every column of one measure.
type WeakMeasureColumnWidthItem struct {
	Locator core.MeasureLocator
	Width   Width
}

func (AttributeColumnWidthItem) isWidthItem()   {}
func (MeasureColumnWidthItem) isWidthItem()     {}
func (AllMeasureColumnWidthItem) isWidthItem()  {}
func (WeakMeasureColumnWidthItem) isWidthItem() {}

func (i AttributeColumnWidthItem) ColumnWidth() Width   { return i.Width }
func (i MeasureColumnWidthItem) ColumnWidth() Width     { return i.Width }
func (i AllMeasureColumnWidthItem) ColumnWidth() Width  { return i.Width }
func (i WeakMeasureColumnWidthItem) ColumnWidth() Width { return i.Width }

// MeasureIdentifier returns the identifier of the item's measure locator, or
// "" when the item addresses columns by attributes only.
func (i MeasureColumnWidthItem) MeasureIdentifier() string {
	_, measures := core.SplitLocators(i.Locators)
	if len(measures) == 0 {
		return ""
	}
	return measures[0].MeasureIdentifier
}

// NewWidthForAttributeColumn creates an item for the slice column of an attribute.
func NewWidthForAttributeColumn(attributeIdentifier string, width Width) AttributeColumnWidthItem {
	return AttributeColumnWidthItem{AttributeIdentifier: attributeIdentifier, Width: width}
}

// NewWidthForSelectedColumns creates an item for the data column of a measure
// under the given attribute elements. An empty measureIdentifier addresses the
// attribute group itself, as in tables without measures.
func NewWidthForSelectedColumns(measureIdentifier string, attributeLocators []core.AttributeLocator, width Width) MeasureColumnWidthItem {
	locators := make([]core.ColumnLocator, 0, len(attributeLocators)+1)
	for _, l := range attributeLocators {
		locators = append(locators, l)
	}
	if measureIdentifier != "" {
		locators = append(locators, core.NewMeasureLocator(measureIdentifier))
	}
	return MeasureColumnWidthItem{Locators: locators, Width: width}
}

// NewWidthForAllMeasureColumns creates the all-measure default item.
func NewWidthForAllMeasureColumns(width Width) AllMeasureColumnWidthItem {
	return AllMeasureColumnWidthItem{Width: width}
}

// NewWidthForAllColumnsForMeasure creates the weak default item of a measure.
func NewWidthForAllColumnsForMeasure(measureIdentifier string, width Width) WeakMeasureColumnWidthItem {
	return WeakMeasureColumnWidthItem{Locator: core.NewMeasureLocator(measureIdentifier), Width: width}
}
