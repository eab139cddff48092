package structure

import (
	"fmt"

	"github.com/leapstack-labs/leapgrid/pkg/core"
)

// CreateColumnLocator returns the locators that address a data column: one
// attribute locator per column attribute level (with the column's element), then
// the measure locator for leaves.
func CreateColumnLocator(col *Column) ([]core.ColumnLocator, error) {
	if col == nil || !col.IsDataColumn() || col.IsRoot() {
		return nil, ErrNotDataColumn
	}

	descriptors, headers := col.pathDescriptors()
	if len(descriptors) != len(headers) {
		return nil, fmt.Errorf("%w: column %s has %d descriptors and %d headers",
			ErrBrokenSeries, col.ID, len(descriptors), len(headers))
	}

	locators := make([]core.ColumnLocator, 0, len(descriptors)+1)
	for i := range descriptors {
		locators = append(locators, core.NewAttributeLocator(descriptors[i].LocalIdentifier, headers[i].URI))
	}
	if col.IsMeasureColumn() {
		locators = append(locators, core.NewMeasureLocator(col.MeasureIdentifier()))
	}
	return locators, nil
}

// FindColumn resolves a locator set against the whole data-column tree.
func (td *TableDescriptor) FindColumn(locators []core.ColumnLocator) (*Column, bool) {
	return td.SearchForLocatorMatch(td.RootDataColumns(), locators)
}

// SearchForLocatorMatch walks the subtrees under roots depth first and returns
// the first column the locator set addresses.
//
// A leaf matches when the measure locator names its measure and every attribute
// locator is satisfied by its header chain. A group matches when the set has no
// measure locator and every attribute locator is satisfied on the group's path.
// Attribute locators naming an attribute that is not on the path fail the match.
func (td *TableDescriptor) SearchForLocatorMatch(roots []*Column, locators []core.ColumnLocator) (*Column, bool) {
	if len(locators) == 0 {
		return nil, false
	}
	attrs, measures := core.SplitLocators(locators)
	if len(measures) > 1 {
		return nil, false
	}

	var measure *core.MeasureLocator
	if len(measures) == 1 {
		measure = &measures[0]
	}

	for _, root := range roots {
		if col := td.searchColumn(root, attrs, measure); col != nil {
			return col, true
		}
	}
	return nil, false
}

func (td *TableDescriptor) searchColumn(col *Column, attrs []core.AttributeLocator, measure *core.MeasureLocator) *Column {
	switch col.Type {
	case DataColumnLeaf:
		if measure != nil && leafMatches(col, attrs, *measure) {
			return col
		}
		return nil

	case DataColumnGroup:
		if !groupLevelViable(col, attrs) {
			return nil
		}
		if measure == nil && pathSatisfies(col, attrs) {
			return col
		}

	case RootGroup:
		// descend

	default:
		return nil
	}

	for _, child := range col.children {
		if found := td.searchColumn(&td.columns[child], attrs, measure); found != nil {
			return found
		}
	}
	return nil
}

// groupLevelViable checks the locators naming the group's own attribute.
func groupLevelViable(col *Column, attrs []core.AttributeLocator) bool {
	for _, l := range attrs {
		if l.AttributeIdentifier != col.AttributeIdentifier() {
			continue
		}
		if l.HasElement() && l.Element != col.Header.URI {
			return false
		}
	}
	return true
}

func leafMatches(col *Column, attrs []core.AttributeLocator, measure core.MeasureLocator) bool {
	if measure.MeasureIdentifier != col.MeasureIdentifier() {
		return false
	}
	return pathSatisfies(col, attrs)
}

// pathSatisfies reports whether every attribute locator finds its attribute on
// the column's path with a matching element.
func pathSatisfies(col *Column, attrs []core.AttributeLocator) bool {
	descriptors, headers := col.pathDescriptors()
	for _, l := range attrs {
		if !attributeLocatorMatch(descriptors, headers, l) {
			return false
		}
	}
	return true
}

func attributeLocatorMatch(descriptors []core.AttributeDescriptor, headers []core.AttributeHeader, l core.AttributeLocator) bool {
	for i, d := range descriptors {
		if d.LocalIdentifier != l.AttributeIdentifier {
			continue
		}
		if i >= len(headers) {
			return false
		}
		return !l.HasElement() || headers[i].URI == l.Element
	}
	return false
}

// MeasureSortMatcher reports whether a measure sort item addresses the leaf.
func MeasureSortMatcher(col *Column, item core.SortItem) bool {
	sortItem, ok := item.(core.MeasureSortItem)
	if !ok || col == nil || !col.IsMeasureColumn() {
		return false
	}

	descriptors, headers := col.pathDescriptors()
	for _, l := range sortItem.Locators {
		switch loc := l.(type) {
		case core.AttributeLocator:
			if !attributeLocatorMatch(descriptors, headers, loc) {
				return false
			}
		case core.MeasureLocator:
			if loc.MeasureIdentifier != col.MeasureIdentifier() {
				return false
			}
		}
	}
	return true
}

// AttributeSortMatcher reports whether an attribute sort item sorts by the slice column.
func AttributeSortMatcher(col *Column, item core.SortItem) bool {
	sortItem, ok := item.(core.AttributeSortItem)
	if !ok || col == nil || !col.IsSlice() {
		return false
	}
	return col.AttributeIdentifier() == sortItem.AttributeIdentifier
}
