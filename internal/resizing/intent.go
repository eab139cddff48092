package resizing

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/leapgrid/internal/structure"
	"github.com/leapstack-labs/leapgrid/pkg/colwidth"
)

// ErrInvalidIntent is returned for an intent missing the column or measure it acts on.
var ErrInvalidIntent = errors.New("invalid resize intent")

// IntentKind is the kind of a resize intent.
type IntentKind uint8

const (
	// ResizeColumn sets the manual width of one column.
	ResizeColumn IntentKind = iota
	// ResizeMeasure sets the weak default of a measure.
	ResizeMeasure
	// ResizeAllMeasures sets the all-measure default.
	ResizeAllMeasures
	// ResetColumn removes the manual width of one column.
	ResetColumn
	// ResetMeasure removes the weak default of a measure.
	ResetMeasure
	// ResetAllMeasures removes the all-measure default.
	ResetAllMeasures
)

func (k IntentKind) String() string {
	switch k {
	case ResizeColumn:
		return "resize column"
	case ResizeMeasure:
		return "resize measure"
	case ResizeAllMeasures:
		return "resize all measures"
	case ResetColumn:
		return "reset column"
	case ResetMeasure:
		return "reset measure"
	case ResetAllMeasures:
		return "reset all measures"
	default:
		return "unknown"
	}
}

// Intent is a width change requested by the user.
//
// ColumnID names the column the gesture happened on. ResizeMeasure and
// ResetMeasure take the measure from MeasureIdentifier, or from the column
// when it is empty.
type Intent struct {
	Kind              IntentKind
	ColumnID          string
	MeasureIdentifier string
	Width             colwidth.Width
}

// Apply applies an intent to the store, resolving columns against td.
// ResizeAllMeasures purges the manual widths of every leaf of td. It reports
// whether the column should resume size-to-fit.
func (s *ResizedColumnsStore) Apply(td *structure.TableDescriptor, intent Intent) (bool, error) {
	switch intent.Kind {
	case ResizeColumn:
		col, err := td.Column(intent.ColumnID)
		if err != nil {
			return false, err
		}
		s.SetManualWidth(col, intent.Width)
		return false, nil

	case ResizeMeasure:
		measure, col, err := intentMeasure(td, intent)
		if err != nil {
			return false, err
		}
		if !s.SetWeakMeasureWidth(measure, intent.Width) {
			return false, nil
		}
		// the resized column follows the new default
		if col != nil {
			s.RemoveManualWidth(col)
		}
		return false, nil

	case ResizeAllMeasures:
		s.SetAllMeasureWidth(intent.Width, td.LeafDataColumns())
		return false, nil

	case ResetColumn:
		col, err := td.Column(intent.ColumnID)
		if err != nil {
			return false, err
		}
		return s.RemoveManualWidth(col), nil

	case ResetMeasure:
		measure, _, err := intentMeasure(td, intent)
		if err != nil {
			return false, err
		}
		s.RemoveWeakMeasureWidth(measure)
		return false, nil

	case ResetAllMeasures:
		s.RemoveAllMeasureWidths()
		return false, nil

	default:
		return false, fmt.Errorf("%w: kind %d", ErrInvalidIntent, intent.Kind)
	}
}

func intentMeasure(td *structure.TableDescriptor, intent Intent) (string, *structure.Column, error) {
	var col *structure.Column
	if intent.ColumnID != "" {
		c, err := td.Column(intent.ColumnID)
		if err != nil {
			return "", nil, err
		}
		col = c
	}

	if intent.MeasureIdentifier != "" {
		return intent.MeasureIdentifier, col, nil
	}
	if col == nil || !col.IsMeasureColumn() {
		return "", nil, fmt.Errorf("%w: %s needs a measure column", ErrInvalidIntent, intent.Kind)
	}
	return col.MeasureIdentifier(), col, nil
}
