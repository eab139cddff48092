package core

// AttributeDescriptor describes an attribute placed in one of the result dimensions.
type AttributeDescriptor struct {
	// LocalIdentifier is the identifier of the attribute within the execution
	LocalIdentifier string `yaml:"localIdentifier" json:"localIdentifier"`
	// Name is the display name of the attribute
	Name string `yaml:"name" json:"name"`
	// FormOf is the identifier of the attribute this display form belongs to (optional)
	FormOf string `yaml:"formOf,omitempty" json:"formOf,omitempty"`
}

// AttributeHeader is a single attribute element as it appears in the result headers.
type AttributeHeader struct {
	// URI is the element URI or primary key; locators match on it
	URI string `yaml:"uri" json:"uri"`
	// Name is the formatted element value
	Name string `yaml:"name" json:"name"`
}

// MeasureDescriptor describes a measure placed in the column dimension.
type MeasureDescriptor struct {
	// LocalIdentifier is the identifier of the measure within the execution
	LocalIdentifier string `yaml:"localIdentifier" json:"localIdentifier"`
	// Name is the display name of the measure
	Name string `yaml:"name" json:"name"`
	// Format is the number format of the measure values (optional)
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// ResultMetadata is the read-only part of an execution result the column
// structure is derived from.
//
// ColumnHeaders lists every combination of column attribute elements present in
// the result, in column order. Each combination carries exactly one header per
// column attribute, in the same order as ColumnAttributes. Measures are crossed
// with every combination.
type ResultMetadata struct {
	RowAttributes    []AttributeDescriptor `yaml:"rowAttributes" json:"rowAttributes"`
	ColumnAttributes []AttributeDescriptor `yaml:"columnAttributes" json:"columnAttributes"`
	Measures         []MeasureDescriptor   `yaml:"measures" json:"measures"`
	ColumnHeaders    [][]AttributeHeader   `yaml:"columnHeaders" json:"columnHeaders"`
}

// HasMeasures reports whether the result contains at least one measure.
func (r *ResultMetadata) HasMeasures() bool {
	return r != nil && len(r.Measures) > 0
}
