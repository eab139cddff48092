// Package resizing resolves column widths of a pivot table.
//
// The ResizedColumnsStore holds width intent at three levels: manual widths of
// single columns, weak defaults per measure and one default for all measure
// columns. The measurement helpers compute auto widths from header and cell text.
package resizing

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/leapstack-labs/leapgrid/internal/structure"
	"github.com/leapstack-labs/leapgrid/pkg/colwidth"
)

// Width bounds in pixels.
const (
	MinWidth              = 60
	ManuallySizedMaxWidth = 2000
	AutoSizedMaxWidth     = 500
	SortIconWidth         = 12
)

// WidthSource names the store level a resolved width comes from.
type WidthSource uint8

const (
	SourceNone WidthSource = iota
	SourceManual
	SourceWeak
	SourceAllMeasure
)

func (s WidthSource) String() string {
	switch s {
	case SourceManual:
		return "manual"
	case SourceWeak:
		return "weak"
	case SourceAllMeasure:
		return "all"
	default:
		return "none"
	}
}

// ResolvedWidth is the effective width of a column with its source.
type ResolvedWidth struct {
	Width  colwidth.Width
	Source WidthSource
}

// IsSet reports whether any store level produced a width.
func (r ResolvedWidth) IsSet() bool { return r.Source != SourceNone }

type manualEntry struct {
	width colwidth.Width
	// measure of the column, empty for slice columns and groups
	measureIdentifier string
}

// ResizedColumnsStore holds the width intent of one table.
//
// The store is not safe for concurrent use.
type ResizedColumnsStore struct {
	logger *slog.Logger

	manual     map[string]manualEntry
	weak       map[string]colwidth.Width
	allMeasure colwidth.Width
	hasAll     bool
}

// NewResizedColumnsStore creates an empty store. A nil logger discards output.
func NewResizedColumnsStore(logger *slog.Logger) *ResizedColumnsStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ResizedColumnsStore{
		logger: logger,
		manual: make(map[string]manualEntry),
		weak:   make(map[string]colwidth.Width),
	}
}

func clampManual(w colwidth.Width) colwidth.Width {
	return w.Clamp(MinWidth, ManuallySizedMaxWidth)
}

// Resolve returns the effective width of a column: its manual width, then the
// weak default of its measure, then the all-measure default.
func (s *ResizedColumnsStore) Resolve(col *structure.Column) ResolvedWidth {
	if col == nil {
		return ResolvedWidth{}
	}
	if entry, ok := s.manual[col.ID]; ok {
		return ResolvedWidth{Width: entry.width, Source: SourceManual}
	}
	if !col.IsMeasureColumn() {
		return ResolvedWidth{}
	}
	if w, ok := s.weak[col.MeasureIdentifier()]; ok {
		return ResolvedWidth{Width: w, Source: SourceWeak}
	}
	if s.hasAll {
		return ResolvedWidth{Width: s.allMeasure, Source: SourceAllMeasure}
	}
	return ResolvedWidth{}
}

// WidthFor returns the effective width of a column, or false when the column
// should size automatically.
func (s *ResizedColumnsStore) WidthFor(col *structure.Column) (colwidth.Width, bool) {
	r := s.Resolve(col)
	return r.Width, r.IsSet()
}

// SetManualWidth sets the width of one column. Absolute widths are clamped to
// [MinWidth, ManuallySizedMaxWidth]; malformed widths are ignored.
func (s *ResizedColumnsStore) SetManualWidth(col *structure.Column, width colwidth.Width) {
	// the root group has no locators and cannot be exported
	if col == nil || col.IsRoot() {
		return
	}
	if err := width.Validate(); err != nil {
		s.logger.Debug("ignoring manual width", "column", col.ID, "error", err)
		return
	}
	s.manual[col.ID] = manualEntry{
		width:             clampManual(width),
		measureIdentifier: col.MeasureIdentifier(),
	}
}

// RemoveManualWidth deletes the manual width of a column. It reports whether
// the column should resume size-to-fit: true when an entry was removed and the
// column no longer resolves to a default.
func (s *ResizedColumnsStore) RemoveManualWidth(col *structure.Column) (resumeSizeToFit bool) {
	if col == nil {
		return false
	}
	if _, ok := s.manual[col.ID]; !ok {
		return false
	}
	delete(s.manual, col.ID)

	if col.IsSlice() {
		return true
	}
	_, hasDefault := s.WidthFor(col)
	return !hasDefault
}

// SetWeakMeasureWidth sets the default width of every column of a measure.
// Manual auto markers of that measure are removed; absolute manual widths stay.
// It reports whether the width was applied; widths that are not absolute or
// fail validation leave the store unchanged.
func (s *ResizedColumnsStore) SetWeakMeasureWidth(measureIdentifier string, width colwidth.Width) bool {
	if measureIdentifier == "" {
		return false
	}
	if !width.IsAbsolute() || width.Validate() != nil {
		s.logger.Debug("ignoring weak measure width", "measure", measureIdentifier, "width", width.String())
		return false
	}
	s.weak[measureIdentifier] = clampManual(width)

	for id, entry := range s.manual {
		if entry.measureIdentifier == measureIdentifier && entry.width.IsAuto() {
			delete(s.manual, id)
		}
	}
	return true
}

// SetWeakMeasureWidthForColumn sets the weak default of the measure of a leaf.
// It does nothing for columns without a measure.
func (s *ResizedColumnsStore) SetWeakMeasureWidthForColumn(col *structure.Column, width colwidth.Width) bool {
	if col == nil || !col.IsMeasureColumn() {
		return false
	}
	return s.SetWeakMeasureWidth(col.MeasureIdentifier(), width)
}

// RemoveWeakMeasureWidth deletes the weak default of a measure.
func (s *ResizedColumnsStore) RemoveWeakMeasureWidth(measureIdentifier string) {
	delete(s.weak, measureIdentifier)
}

// SetAllMeasureWidth sets the default width of all measure columns. Manual
// widths of the given measure columns and every weak default are removed.
// Manual widths of columns not passed in are kept.
func (s *ResizedColumnsStore) SetAllMeasureWidth(width colwidth.Width, renderedColumns []*structure.Column) {
	if !width.IsAbsolute() || width.Validate() != nil {
		s.logger.Debug("ignoring all measure width", "width", width.String())
		return
	}
	s.allMeasure = clampManual(width)
	s.hasAll = true

	for _, col := range renderedColumns {
		if col != nil && col.IsMeasureColumn() {
			delete(s.manual, col.ID)
		}
	}
	clear(s.weak)
}

// RemoveAllMeasureWidths unsets the all-measure default.
func (s *ResizedColumnsStore) RemoveAllMeasureWidths() {
	s.allMeasure = colwidth.Width{}
	s.hasAll = false
}

// ManualWidths returns a copy of the manual widths keyed by column id.
func (s *ResizedColumnsStore) ManualWidths() map[string]colwidth.Width {
	out := make(map[string]colwidth.Width, len(s.manual))
	for id, entry := range s.manual {
		out[id] = entry.width
	}
	return out
}

// WeakDefaults returns a copy of the weak defaults keyed by measure identifier.
func (s *ResizedColumnsStore) WeakDefaults() map[string]colwidth.Width {
	return maps.Clone(s.weak)
}

// AllMeasureDefault returns the all-measure default, if set.
func (s *ResizedColumnsStore) AllMeasureDefault() (colwidth.Width, bool) {
	return s.allMeasure, s.hasAll
}

// UpdateColumnWidths replaces the store state with the given width items,
// resolved against td. Items that address no column of td and items with
// malformed widths are dropped.
func (s *ResizedColumnsStore) UpdateColumnWidths(td *structure.TableDescriptor, items []colwidth.WidthItem) {
	clear(s.manual)
	clear(s.weak)
	s.RemoveAllMeasureWidths()

	for _, item := range items {
		width := item.ColumnWidth()
		if err := width.Validate(); err != nil {
			s.logger.Debug("dropping width item", "error", err)
			continue
		}

		switch it := item.(type) {
		case colwidth.AttributeColumnWidthItem:
			col, ok := td.SliceColumnFor(it.AttributeIdentifier)
			if !ok {
				s.logger.Debug("dropping width item for unknown attribute", "attribute", it.AttributeIdentifier)
				continue
			}
			s.SetManualWidth(col, width)

		case colwidth.MeasureColumnWidthItem:
			col, ok := td.FindColumn(it.Locators)
			if !ok {
				s.logger.Debug("dropping width item without matching column", "locators", len(it.Locators))
				continue
			}
			s.SetManualWidth(col, width)

		case colwidth.AllMeasureColumnWidthItem:
			if !width.IsAbsolute() {
				s.logger.Debug("dropping non-absolute all measure width item")
				continue
			}
			s.allMeasure = clampManual(width)
			s.hasAll = true

		case colwidth.WeakMeasureColumnWidthItem:
			if !width.IsAbsolute() {
				s.logger.Debug("dropping non-absolute weak measure width item", "measure", it.Locator.MeasureIdentifier)
				continue
			}
			s.weak[it.Locator.MeasureIdentifier] = clampManual(width)
		}
	}
}

// ExportWidthItems serializes the store: attribute items for slice columns,
// the all-measure item, weak items ordered by measure, then measure items for
// data columns in tree order. Manual widths of columns that are not part of td
// are not exported.
//
// ExportWidthItems panics if a column of td cannot be addressed by locators.
func (s *ResizedColumnsStore) ExportWidthItems(td *structure.TableDescriptor) []colwidth.WidthItem {
	var items []colwidth.WidthItem

	for _, col := range td.SliceColumns() {
		if entry, ok := s.manual[col.ID]; ok {
			items = append(items, colwidth.NewWidthForAttributeColumn(col.AttributeIdentifier(), entry.width))
		}
	}

	if s.hasAll {
		items = append(items, colwidth.NewWidthForAllMeasureColumns(s.allMeasure))
	}

	for _, measureIdentifier := range slices.Sorted(maps.Keys(s.weak)) {
		items = append(items, colwidth.NewWidthForAllColumnsForMeasure(measureIdentifier, s.weak[measureIdentifier]))
	}

	for _, col := range td.Columns() {
		if !col.IsDataColumn() || col.IsRoot() {
			continue
		}
		entry, ok := s.manual[col.ID]
		if !ok {
			continue
		}
		locators, err := structure.CreateColumnLocator(col)
		if err != nil {
			panic(fmt.Sprintf("resizing: cannot export width of column %s: %v", col.ID, err))
		}
		items = append(items, colwidth.MeasureColumnWidthItem{Locators: locators, Width: entry.width})
	}

	return items
}
