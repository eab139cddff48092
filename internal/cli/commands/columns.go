package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapgrid/internal/resizing"
	"github.com/leapstack-labs/leapgrid/internal/structure"
	"github.com/leapstack-labs/leapgrid/pkg/colwidth"
	"github.com/leapstack-labs/leapgrid/pkg/core"
)

// ColumnInfo is the JSON form of one column with its resolved width.
type ColumnInfo struct {
	ID       string               `json:"id"`
	Type     string               `json:"type"`
	Header   string               `json:"header,omitempty"`
	Parent   string               `json:"parent,omitempty"`
	Depth    int                  `json:"depth"`
	Measure  string               `json:"measure,omitempty"`
	Locators []core.ColumnLocator `json:"locators,omitempty"`
	Width    *colwidth.Width      `json:"width,omitempty"`
	Source   string               `json:"source"`
}

func columnDepth(td *structure.TableDescriptor, col *structure.Column) int {
	depth := 0
	for p, ok := td.Parent(col); ok; p, ok = td.Parent(p) {
		depth++
	}
	return depth
}

func newColumnInfo(td *structure.TableDescriptor, store *resizing.ResizedColumnsStore, col *structure.Column) ColumnInfo {
	info := ColumnInfo{
		ID:      col.ID,
		Type:    col.Type.String(),
		Header:  col.HeaderName(),
		Depth:   columnDepth(td, col),
		Measure: col.MeasureIdentifier(),
		Source:  resizing.SourceNone.String(),
	}
	if p, ok := td.Parent(col); ok {
		info.Parent = p.ID
	}
	if col.IsDataColumn() && !col.IsRoot() {
		if locators, err := structure.CreateColumnLocator(col); err == nil {
			info.Locators = locators
		}
	}
	if store != nil {
		if r := store.Resolve(col); r.IsSet() {
			w := r.Width
			info.Width = &w
			info.Source = r.Source.String()
		}
	}
	return info
}

// formatLocators renders locators in the argument syntax of the locate command.
func formatLocators(locators []core.ColumnLocator) string {
	parts := make([]string, 0, len(locators))
	for _, l := range locators {
		switch l := l.(type) {
		case core.AttributeLocator:
			if l.HasElement() {
				parts = append(parts, "attr:"+l.AttributeIdentifier+"="+l.Element)
			} else {
				parts = append(parts, "attr:"+l.AttributeIdentifier)
			}
		case core.MeasureLocator:
			parts = append(parts, "measure:"+l.MeasureIdentifier)
		}
	}
	return strings.Join(parts, " ")
}

// parseLocator parses attr:<id>[=<element>] or measure:<id>.
func parseLocator(arg string) (core.ColumnLocator, error) {
	kind, rest, ok := strings.Cut(arg, ":")
	if !ok || rest == "" {
		return nil, fmt.Errorf("%w: %q, expected attr:<id>[=<element>] or measure:<id>", core.ErrInvalidLocator, arg)
	}
	switch kind {
	case "attr", "attribute":
		id, element, _ := strings.Cut(rest, "=")
		if id == "" {
			return nil, fmt.Errorf("%w: %q has no attribute identifier", core.ErrInvalidLocator, arg)
		}
		return core.NewAttributeLocator(id, element), nil
	case "measure":
		return core.NewMeasureLocator(rest), nil
	default:
		return nil, fmt.Errorf("%w: unknown locator kind %q", core.ErrInvalidLocator, kind)
	}
}

// parseLocatorArgs parses locator arguments. A single argument starting with
// '[' is decoded as a JSON locator list.
func parseLocatorArgs(args []string) ([]core.ColumnLocator, error) {
	if len(args) == 1 && strings.HasPrefix(strings.TrimSpace(args[0]), "[") {
		return core.DecodeLocators([]byte(args[0]))
	}
	locators := make([]core.ColumnLocator, 0, len(args))
	for _, arg := range args {
		l, err := parseLocator(arg)
		if err != nil {
			return nil, err
		}
		locators = append(locators, l)
	}
	return locators, nil
}

// parseWidthArg parses a width argument: a number of pixels, a number with a
// trailing '+' to allow growing to fit, "auto" or a JSON width object.
func parseWidthArg(arg string) (colwidth.Width, error) {
	arg = strings.TrimSpace(arg)
	switch {
	case arg == "auto":
		return colwidth.Auto(), nil
	case strings.HasPrefix(arg, "{"):
		w := colwidth.ParseWidth([]byte(arg))
		return w, w.Validate()
	}

	grow := strings.HasSuffix(arg, "+")
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "+"), 64)
	if err != nil {
		return colwidth.Width{}, fmt.Errorf("%w: %q", colwidth.ErrMalformedWidth, arg)
	}
	w := colwidth.Absolute(v)
	if grow {
		w = colwidth.AbsoluteGrowToFit(v)
	}
	return w, w.Validate()
}

func widthLabel(w *colwidth.Width) string {
	if w == nil {
		return "-"
	}
	return w.String()
}
