// Package structure builds the column tree of a pivot table and addresses its
// columns through locators.
//
// A TableDescriptor is built once per result shape and is immutable. Columns are
// stored in a single slice; parent and child links are indexes into it.
package structure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapgrid/pkg/core"
)

// RootColumnID is the id of the root group.
const RootColumnID = "root"

// TableDescriptor is the column tree of one result.
type TableDescriptor struct {
	result *core.ResultMetadata

	columns []Column
	byID    map[string]int

	slices []int
	leaves []int
	roots  []int
}

// Build creates the column tree of a result.
//
// Slice columns come from row attributes. The data-column tree crosses every
// column attribute element combination with every measure; groups are shared by
// all combinations with an equal prefix. Without measures the bottom groups are
// the leaf data columns.
func Build(result *core.ResultMetadata) (*TableDescriptor, error) {
	if result == nil {
		return nil, fmt.Errorf("%w: nil result", ErrMalformedResult)
	}
	if err := validateResult(result); err != nil {
		return nil, err
	}

	td := &TableDescriptor{
		result: result,
		byID:   make(map[string]int),
	}

	for i := range result.RowAttributes {
		idx := td.add(Column{
			ID:        "r_" + strconv.Itoa(i),
			Type:      SliceColumn,
			Ordinal:   i,
			Attribute: &result.RowAttributes[i],
		}, noParent)
		td.slices = append(td.slices, idx)
	}

	if len(result.ColumnAttributes) == 0 {
		td.buildFlatLeaves()
		return td, nil
	}

	td.buildGroupedColumns()
	return td, nil
}

func validateResult(result *core.ResultMetadata) error {
	seen := make(map[string]bool)
	for _, a := range result.RowAttributes {
		if a.LocalIdentifier == "" {
			return fmt.Errorf("%w: row attribute without localIdentifier", ErrMalformedResult)
		}
		if seen[a.LocalIdentifier] {
			return fmt.Errorf("%w: duplicate attribute %q", ErrMalformedResult, a.LocalIdentifier)
		}
		seen[a.LocalIdentifier] = true
	}
	for _, a := range result.ColumnAttributes {
		if a.LocalIdentifier == "" {
			return fmt.Errorf("%w: column attribute without localIdentifier", ErrMalformedResult)
		}
		if seen[a.LocalIdentifier] {
			return fmt.Errorf("%w: duplicate attribute %q", ErrMalformedResult, a.LocalIdentifier)
		}
		seen[a.LocalIdentifier] = true
	}

	measures := make(map[string]bool)
	for _, m := range result.Measures {
		if m.LocalIdentifier == "" {
			return fmt.Errorf("%w: measure without localIdentifier", ErrMalformedResult)
		}
		if measures[m.LocalIdentifier] {
			return fmt.Errorf("%w: duplicate measure %q", ErrMalformedResult, m.LocalIdentifier)
		}
		measures[m.LocalIdentifier] = true
	}

	combinations := make(map[string]bool)
	for i, combination := range result.ColumnHeaders {
		if len(combination) != len(result.ColumnAttributes) {
			return fmt.Errorf("%w: column combination %d has %d headers, want %d",
				ErrMalformedResult, i, len(combination), len(result.ColumnAttributes))
		}
		for _, h := range combination {
			if h.URI == "" {
				return fmt.Errorf("%w: column combination %d has a header without uri", ErrMalformedResult, i)
			}
		}
		key := combinationKey(combination)
		if combinations[key] {
			return fmt.Errorf("%w: duplicate column combination %d", ErrMalformedResult, i)
		}
		combinations[key] = true
	}
	return nil
}

func combinationKey(headers []core.AttributeHeader) string {
	uris := make([]string, len(headers))
	for i, h := range headers {
		uris[i] = h.URI
	}
	return strings.Join(uris, "\x00")
}

// buildFlatLeaves creates one root-level leaf per measure.
func (td *TableDescriptor) buildFlatLeaves() {
	for i := range td.result.Measures {
		idx := td.add(Column{
			ID:      "c_" + strconv.Itoa(i),
			Type:    DataColumnLeaf,
			Ordinal: i,
			Series:  &SeriesDescriptor{Measure: td.result.Measures[i]},
		}, noParent)
		td.leaves = append(td.leaves, idx)
		td.roots = append(td.roots, idx)
	}
}

func (td *TableDescriptor) buildGroupedColumns() {
	result := td.result
	root := td.add(Column{ID: RootColumnID, Type: RootGroup}, noParent)
	td.roots = append(td.roots, root)

	groups := make(map[string]int)
	groupCount := 0

	for _, combination := range result.ColumnHeaders {
		parent := root
		for level := range result.ColumnAttributes {
			key := combinationKey(combination[:level+1])
			if idx, ok := groups[key]; ok {
				parent = idx
				continue
			}
			idx := td.add(Column{
				ID:                "cg_" + strconv.Itoa(groupCount),
				Type:              DataColumnGroup,
				Ordinal:           groupCount,
				Attribute:         &result.ColumnAttributes[level],
				Header:            &combination[level],
				DescriptorsToHere: result.ColumnAttributes[:level:level],
				HeadersToHere:     combination[:level:level],
			}, parent)
			groupCount++
			groups[key] = idx
			parent = idx
		}

		if !result.HasMeasures() {
			td.leaves = append(td.leaves, parent)
			continue
		}

		for i := range result.Measures {
			ordinal := len(td.leaves)
			idx := td.add(Column{
				ID:                "c_" + strconv.Itoa(ordinal),
				Type:              DataColumnLeaf,
				Ordinal:           ordinal,
				DescriptorsToHere: result.ColumnAttributes,
				HeadersToHere:     combination,
				Series: &SeriesDescriptor{
					Measure:              result.Measures[i],
					AttributeDescriptors: result.ColumnAttributes,
					AttributeHeaders:     combination,
				},
			}, parent)
			td.leaves = append(td.leaves, idx)
		}
	}
}

func (td *TableDescriptor) add(col Column, parent int) int {
	idx := len(td.columns)
	col.index = idx
	col.parent = parent
	td.columns = append(td.columns, col)
	td.byID[col.ID] = idx
	if parent != noParent {
		td.columns[parent].children = append(td.columns[parent].children, idx)
	}
	return idx
}

func (td *TableDescriptor) collect(indexes []int) []*Column {
	cols := make([]*Column, len(indexes))
	for i, idx := range indexes {
		cols[i] = &td.columns[idx]
	}
	return cols
}

// Result returns the metadata the tree was built from.
func (td *TableDescriptor) Result() *core.ResultMetadata {
	return td.result
}

// Column returns the column with the given id.
func (td *TableDescriptor) Column(id string) (*Column, error) {
	idx, ok := td.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, id)
	}
	return &td.columns[idx], nil
}

// HasColumn reports whether the tree contains a column with the given id.
func (td *TableDescriptor) HasColumn(id string) bool {
	_, ok := td.byID[id]
	return ok
}

// Columns returns every column: slice columns first, then the data-column tree
// in pre-order.
func (td *TableDescriptor) Columns() []*Column {
	cols := make([]*Column, len(td.columns))
	for i := range td.columns {
		cols[i] = &td.columns[i]
	}
	return cols
}

// SliceColumns returns the slice columns in row attribute order.
func (td *TableDescriptor) SliceColumns() []*Column {
	return td.collect(td.slices)
}

// SliceColumnFor returns the slice column of a row attribute.
func (td *TableDescriptor) SliceColumnFor(attributeIdentifier string) (*Column, bool) {
	for _, idx := range td.slices {
		if td.columns[idx].AttributeIdentifier() == attributeIdentifier {
			return &td.columns[idx], true
		}
	}
	return nil, false
}

// LeafDataColumns returns the leaf data columns in column order.
func (td *TableDescriptor) LeafDataColumns() []*Column {
	return td.collect(td.leaves)
}

// RootDataColumns returns the top of the data-column tree: the root group when
// the result has column attributes, the leaves otherwise.
func (td *TableDescriptor) RootDataColumns() []*Column {
	return td.collect(td.roots)
}

// SlicingAttributes returns the row attribute descriptors.
func (td *TableDescriptor) SlicingAttributes() []core.AttributeDescriptor {
	return td.result.RowAttributes
}

// CanHaveTotals reports whether the table has at least one row attribute.
func (td *TableDescriptor) CanHaveTotals() bool {
	return len(td.result.RowAttributes) > 0
}

// Parent returns the parent of a data column.
func (td *TableDescriptor) Parent(col *Column) (*Column, bool) {
	if col == nil || col.parent == noParent {
		return nil, false
	}
	return &td.columns[col.parent], true
}

// Children returns the children of a data column in column order.
func (td *TableDescriptor) Children(col *Column) []*Column {
	if col == nil {
		return nil
	}
	return td.collect(col.children)
}

// IsMeasureColumn reports whether the column with the given id holds measure values.
func (td *TableDescriptor) IsMeasureColumn(id string) bool {
	idx, ok := td.byID[id]
	return ok && td.columns[idx].IsMeasureColumn()
}
