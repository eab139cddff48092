package resizing

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/leapstack-labs/leapgrid/internal/structure"
)

// TextMeasurer measures the rendered width of a text in pixels.
type TextMeasurer interface {
	MeasureText(text string) float64
}

// CellMeasurer measures text in terminal cells: display cells times CellWidth.
type CellMeasurer struct {
	CellWidth float64
}

// MeasureText implements TextMeasurer.
func (m CellMeasurer) MeasureText(text string) float64 {
	return float64(runewidth.StringWidth(text)) * m.CellWidth
}

// WidthCache memoizes text measurements by literal text. It must be reset when
// the font or measurement context changes.
type WidthCache struct {
	widths map[string]float64
}

// NewWidthCache creates an empty cache.
func NewWidthCache() *WidthCache {
	return &WidthCache{widths: make(map[string]float64)}
}

// Len returns the number of cached texts.
func (c *WidthCache) Len() int { return len(c.widths) }

// Reset drops every cached measurement.
func (c *WidthCache) Reset() { clear(c.widths) }

func (c *WidthCache) measure(m TextMeasurer, text string) float64 {
	if c == nil {
		return m.MeasureText(text)
	}
	if w, ok := c.widths[text]; ok {
		return w
	}
	w := m.MeasureText(text)
	c.widths[text] = w
	return w
}

// TextWidth returns the width of text, plus SortIconWidth when
// includeSortIcon is set. A nil cache measures every call.
func TextWidth(m TextMeasurer, text string, includeSortIcon bool, cache *WidthCache) float64 {
	width := cache.measure(m, text)
	if includeSortIcon {
		width += SortIconWidth
	}
	return width
}

// MeasuredWidth is TextWidth bounded by maxWidth: it returns false when the
// width does not exceed maxWidth, meaning the column is already wide enough.
func MeasuredWidth(m TextMeasurer, text string, includeSortIcon bool, maxWidth float64, cache *WidthCache) (float64, bool) {
	width := TextWidth(m, text, includeSortIcon, cache)
	if width > maxWidth {
		return width, true
	}
	return 0, false
}

// UpdatedColumnWidths turns measured widths into column widths: the measured
// width plus padding, rounded up. Columns without a measurement get MinWidth.
func UpdatedColumnWidths(columnIDs []string, maxWidths map[string]float64, padding float64) map[string]float64 {
	out := make(map[string]float64, len(columnIDs))
	for _, id := range columnIDs {
		w, ok := maxWidths[id]
		if !ok {
			out[id] = MinWidth
			continue
		}
		out[id] = math.Ceil(w + padding)
	}
	return out
}

// AutoSizer computes content based widths of slice and leaf columns.
type AutoSizer struct {
	Measurer TextMeasurer
	Cache    *WidthCache
	Padding  float64
}

// ColumnWidth returns the auto width of one column from its header and cell
// texts, clamped to [MinWidth, AutoSizedMaxWidth].
func (a *AutoSizer) ColumnWidth(header string, sorted bool, cells []string) float64 {
	return clampAuto(math.Ceil(a.contentWidth(header, sorted, cells) + a.Padding))
}

// contentWidth is the widest of the header (with sort icon) and the cells.
func (a *AutoSizer) contentWidth(header string, sorted bool, cells []string) float64 {
	maxWidth := TextWidth(a.Measurer, header, sorted, a.Cache)
	for _, cell := range cells {
		if w, ok := MeasuredWidth(a.Measurer, cell, false, maxWidth, a.Cache); ok {
			maxWidth = w
		}
	}
	return maxWidth
}

// TableWidths returns the auto width of every slice and leaf column of td,
// keyed by column id. cells holds the cell texts per column id; sorted marks
// the columns that show a sort icon.
func (a *AutoSizer) TableWidths(td *structure.TableDescriptor, cells map[string][]string, sorted map[string]bool) map[string]float64 {
	columns := append(td.SliceColumns(), td.LeafDataColumns()...)
	ids := make([]string, 0, len(columns))
	maxWidths := make(map[string]float64, len(columns))

	for _, col := range columns {
		ids = append(ids, col.ID)
		header := col.HeaderName()
		if header == "" && len(cells[col.ID]) == 0 {
			continue
		}
		maxWidths[col.ID] = a.contentWidth(header, sorted[col.ID], cells[col.ID])
	}

	widths := UpdatedColumnWidths(ids, maxWidths, a.Padding)
	for id, w := range widths {
		widths[id] = clampAuto(w)
	}
	return widths
}

func clampAuto(w float64) float64 {
	return math.Min(math.Max(w, MinWidth), AutoSizedMaxWidth)
}
