// Package colwidth defines column widths and the width items that persist them.
//
// Width items address columns through locators (see pkg/core), so a saved list
// of items stays valid across executions of the same table definition. The
// JSON encoding matches the wire format the table settings are stored in.
package colwidth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Sentinel errors.
var (
	// ErrMalformedWidth is reported for a width that is neither an absolute
	// number nor "auto".
	ErrMalformedWidth = errors.New("malformed column width")
	// ErrUnknownWidthItem is returned when a serialized width item has none of
	// the known shapes.
	ErrUnknownWidthItem = errors.New("unknown column width item")
)

const autoValue = "auto"

type widthKind uint8

const (
	kindMalformed widthKind = iota
	kindAbsolute
	kindAuto
)

// Width is a column width: an absolute pixel value, or "auto" (size to content).
//
// A Width decoded from input that is neither keeps the raw input and reports
// itself as malformed. Malformed widths are ignored by the store. The zero
// value is malformed.
type Width struct {
	kind           widthKind
	value          float64
	allowGrowToFit bool
	raw            json.RawMessage
}

// Absolute returns an absolute width in pixels.
func Absolute(value float64) Width {
	return Width{kind: kindAbsolute, value: value}
}

// AbsoluteGrowToFit returns an absolute width that may still grow to fit the
// available table width.
func AbsoluteGrowToFit(value float64) Width {
	return Width{kind: kindAbsolute, value: value, allowGrowToFit: true}
}

// Auto returns the auto width marker.
func Auto() Width {
	return Width{kind: kindAuto}
}

// ParseWidth decodes a width from its JSON form. It never fails: anything that
// is not a valid absolute or auto width comes back malformed.
func ParseWidth(data []byte) Width {
	raw := append(json.RawMessage(nil), bytes.TrimSpace(data)...)
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	malformed := Width{kind: kindMalformed, raw: raw}

	var body struct {
		Value          json.RawMessage `json:"value"`
		AllowGrowToFit bool            `json:"allowGrowToFit"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Value) == 0 {
		return malformed
	}

	var s string
	if err := json.Unmarshal(body.Value, &s); err == nil {
		if s == autoValue {
			return Auto()
		}
		return malformed
	}

	var n float64
	if err := json.Unmarshal(body.Value, &n); err != nil {
		return malformed
	}
	return Width{kind: kindAbsolute, value: n, allowGrowToFit: body.AllowGrowToFit}
}

// IsAbsolute reports whether the width is an absolute pixel value.
func (w Width) IsAbsolute() bool { return w.kind == kindAbsolute }

// IsAuto reports whether the width is the auto marker.
func (w Width) IsAuto() bool { return w.kind == kindAuto }

// IsMalformed reports whether the width could not be interpreted.
func (w Width) IsMalformed() bool { return w.kind == kindMalformed }

// Value returns the pixel value of an absolute width, zero otherwise.
func (w Width) Value() float64 { return w.value }

// AllowGrowToFit reports whether an absolute width may grow to fit.
func (w Width) AllowGrowToFit() bool { return w.allowGrowToFit }

// Validate returns ErrMalformedWidth unless the width is auto or a finite
// absolute value.
func (w Width) Validate() error {
	switch w.kind {
	case kindAuto:
		return nil
	case kindAbsolute:
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return fmt.Errorf("%w: %v", ErrMalformedWidth, w.value)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrMalformedWidth, string(w.raw))
	}
}

// Clamp limits an absolute width to [lo, hi]. Other widths are returned unchanged.
func (w Width) Clamp(lo, hi float64) Width {
	if w.kind != kindAbsolute {
		return w
	}
	w.value = math.Min(math.Max(w.value, lo), hi)
	return w
}

// String renders the width for humans.
func (w Width) String() string {
	switch w.kind {
	case kindAuto:
		return autoValue
	case kindAbsolute:
		s := strconv.FormatFloat(w.value, 'f', -1, 64)
		if w.allowGrowToFit {
			s += " (grow to fit)"
		}
		return s
	default:
		return "malformed"
	}
}

// MarshalJSON encodes {"value": n[, "allowGrowToFit": true]} or {"value": "auto"}.
// Malformed widths are written back as they were read.
func (w Width) MarshalJSON() ([]byte, error) {
	switch w.kind {
	case kindAuto:
		return json.Marshal(struct {
			Value string `json:"value"`
		}{Value: autoValue})
	case kindAbsolute:
		return json.Marshal(struct {
			Value          float64 `json:"value"`
			AllowGrowToFit bool    `json:"allowGrowToFit,omitempty"`
		}{Value: w.value, AllowGrowToFit: w.allowGrowToFit})
	default:
		if len(w.raw) == 0 {
			return []byte("null"), nil
		}
		return w.raw, nil
	}
}

// UnmarshalJSON decodes a width, tolerating malformed input (see ParseWidth).
func (w *Width) UnmarshalJSON(data []byte) error {
	*w = ParseWidth(data)
	return nil
}
