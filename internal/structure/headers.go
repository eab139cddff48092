package structure

import "github.com/leapstack-labs/leapgrid/pkg/core"

// MappingHeader is one level of the header chain behind a column. Exactly one
// of Attribute (with its Element) or Measure is set.
type MappingHeader struct {
	Attribute *core.AttributeDescriptor
	Element   *core.AttributeHeader
	Measure   *core.MeasureDescriptor
}

// MappingHeaders returns the header chain of a column, top level first: the
// column attribute levels with their elements, then the measure for leaves.
// A slice column yields its row attribute only.
func MappingHeaders(col *Column) []MappingHeader {
	if col == nil {
		return nil
	}
	if col.IsSlice() {
		return []MappingHeader{{Attribute: col.Attribute}}
	}

	descriptors, headers := col.pathDescriptors()
	result := make([]MappingHeader, 0, len(descriptors)+1)
	for i := range descriptors {
		h := MappingHeader{Attribute: &descriptors[i]}
		if i < len(headers) {
			h.Element = &headers[i]
		}
		result = append(result, h)
	}
	if col.IsMeasureColumn() {
		result = append(result, MappingHeader{Measure: &col.Series.Measure})
	}
	return result
}
