package structure

import (
	"errors"

	"github.com/leapstack-labs/leapgrid/pkg/core"
)

// Sentinel errors.
var (
	// ErrUnknownColumn is returned when a column id is not part of the tree.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrMalformedResult is returned when result metadata cannot form a consistent tree.
	ErrMalformedResult = errors.New("malformed result metadata")
	// ErrNotDataColumn is returned when a data-column operation gets a slice column or the root.
	ErrNotDataColumn = errors.New("not a data column")
	// ErrBrokenSeries is returned when a column's attribute descriptors and headers differ in length.
	ErrBrokenSeries = errors.New("attribute descriptors and headers differ in length")
)

// ColumnType identifies the variant of a column node.
type ColumnType uint8

const (
	// SliceColumn is the grouping column of a row attribute.
	SliceColumn ColumnType = iota
	// DataColumnLeaf is a measure column at the bottom of the data-column tree.
	DataColumnLeaf
	// DataColumnGroup groups the columns sharing a prefix of column attribute elements.
	DataColumnGroup
	// RootGroup is the top of the data-column tree when the result has column attributes.
	RootGroup
)

func (t ColumnType) String() string {
	switch t {
	case SliceColumn:
		return "slice"
	case DataColumnLeaf:
		return "leaf"
	case DataColumnGroup:
		return "group"
	case RootGroup:
		return "root"
	default:
		return "unknown"
	}
}

const noParent = -1

// SeriesDescriptor identifies the values of a leaf: the measure and the chain of
// column attribute elements that produced the column.
type SeriesDescriptor struct {
	Measure              core.MeasureDescriptor
	AttributeDescriptors []core.AttributeDescriptor
	AttributeHeaders     []core.AttributeHeader
}

// MeasureIdentifier returns the local identifier of the series measure.
func (s *SeriesDescriptor) MeasureIdentifier() string {
	return s.Measure.LocalIdentifier
}

// Column is a node of the column tree. Columns are owned by their
// TableDescriptor and must not be modified.
type Column struct {
	// ID is the stable id of the column: r_<n>, c_<n>, cg_<n> or root
	ID   string
	Type ColumnType
	// Ordinal is the position among columns of the same id family
	Ordinal int

	index    int
	parent   int
	children []int

	// Attribute is set for slice columns and data column groups.
	Attribute *core.AttributeDescriptor
	// Header is the element of a data column group.
	Header *core.AttributeHeader

	// DescriptorsToHere and HeadersToHere are the column attribute levels above
	// this column. For groups they exclude the group's own level.
	DescriptorsToHere []core.AttributeDescriptor
	HeadersToHere     []core.AttributeHeader

	// Series is set for leaves only.
	Series *SeriesDescriptor
}

// IsSlice reports whether c is a slice column.
func (c *Column) IsSlice() bool { return c.Type == SliceColumn }

// IsLeaf reports whether c is a measure leaf.
func (c *Column) IsLeaf() bool { return c.Type == DataColumnLeaf }

// IsGroup reports whether c is a data column group (root excluded).
func (c *Column) IsGroup() bool { return c.Type == DataColumnGroup }

// IsRoot reports whether c is the root group.
func (c *Column) IsRoot() bool { return c.Type == RootGroup }

// IsDataColumn reports whether c is part of the data-column tree.
func (c *Column) IsDataColumn() bool { return c.Type != SliceColumn }

// IsMeasureColumn reports whether c holds the values of a measure.
func (c *Column) IsMeasureColumn() bool { return c.Type == DataColumnLeaf && c.Series != nil }

// MeasureIdentifier returns the measure of a leaf, or "" for any other column.
func (c *Column) MeasureIdentifier() string {
	if !c.IsMeasureColumn() {
		return ""
	}
	return c.Series.MeasureIdentifier()
}

// AttributeIdentifier returns the attribute of a slice column or group, or "".
func (c *Column) AttributeIdentifier() string {
	if c.Attribute == nil {
		return ""
	}
	return c.Attribute.LocalIdentifier
}

// HeaderName returns the text shown in the column header.
func (c *Column) HeaderName() string {
	switch c.Type {
	case SliceColumn:
		return c.Attribute.Name
	case DataColumnLeaf:
		return c.Series.Measure.Name
	case DataColumnGroup:
		return c.Header.Name
	default:
		return ""
	}
}

// pathDescriptors returns the attribute levels from the top of the data-column
// tree down to and including c.
func (c *Column) pathDescriptors() ([]core.AttributeDescriptor, []core.AttributeHeader) {
	switch {
	case c.IsLeaf():
		return c.Series.AttributeDescriptors, c.Series.AttributeHeaders
	case c.IsGroup():
		descriptors := append(append([]core.AttributeDescriptor(nil), c.DescriptorsToHere...), *c.Attribute)
		headers := append(append([]core.AttributeHeader(nil), c.HeadersToHere...), *c.Header)
		return descriptors, headers
	default:
		return nil, nil
	}
}
