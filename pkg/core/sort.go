package core

// SortDirection is the direction of a sort item.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortItem references a column the table is sorted by.
//
// The set of implementations is closed: AttributeSortItem and MeasureSortItem.
type SortItem interface {
	isSortItem()
	// Direction returns the sort direction.
	Direction() SortDirection
}

// AttributeSortItem sorts by the elements of a row attribute.
type AttributeSortItem struct {
	AttributeIdentifier string        `yaml:"attributeIdentifier" json:"attributeIdentifier"`
	SortDirection       SortDirection `yaml:"direction" json:"direction"`
}

// MeasureSortItem sorts by the values of the data column addressed by Locators.
type MeasureSortItem struct {
	Locators      []ColumnLocator `yaml:"-" json:"-"`
	SortDirection SortDirection   `yaml:"direction" json:"direction"`
}

func (AttributeSortItem) isSortItem() {}
func (MeasureSortItem) isSortItem()   {}

func (s AttributeSortItem) Direction() SortDirection { return s.SortDirection }
func (s MeasureSortItem) Direction() SortDirection   { return s.SortDirection }
