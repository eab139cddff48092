package colwidth

import (
	"encoding/json"
	"fmt"

	"github.com/leapstack-labs/leapgrid/pkg/core"
)

type attributeItemBody struct {
	Width               json.RawMessage `json:"width"`
	AttributeIdentifier string          `json:"attributeIdentifier"`
}

type measureItemBody struct {
	Width    json.RawMessage   `json:"width"`
	Locators []json.RawMessage `json:"locators,omitempty"`
	Locator  json.RawMessage   `json:"locator,omitempty"`
}

type itemEnvelope struct {
	AttributeColumnWidthItem *attributeItemBody `json:"attributeColumnWidthItem,omitempty"`
	MeasureColumnWidthItem   *measureItemBody   `json:"measureColumnWidthItem,omitempty"`
}

// DecodeWidthItem decodes one width item.
//
// Width values are decoded tolerantly (see ParseWidth); only the item shape
// and its locators are validated.
func DecodeWidthItem(data []byte) (WidthItem, error) {
	var env itemEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownWidthItem, err)
	}

	switch {
	case env.AttributeColumnWidthItem != nil && env.MeasureColumnWidthItem != nil:
		return nil, fmt.Errorf("%w: both attribute and measure item present", ErrUnknownWidthItem)

	case env.AttributeColumnWidthItem != nil:
		body := env.AttributeColumnWidthItem
		if body.AttributeIdentifier == "" {
			return nil, fmt.Errorf("%w: attribute item without attributeIdentifier", ErrUnknownWidthItem)
		}
		return AttributeColumnWidthItem{
			AttributeIdentifier: body.AttributeIdentifier,
			Width:               ParseWidth(body.Width),
		}, nil

	case env.MeasureColumnWidthItem != nil:
		return decodeMeasureItem(env.MeasureColumnWidthItem, data)

	default:
		return nil, ErrUnknownWidthItem
	}
}

func decodeMeasureItem(body *measureItemBody, data []byte) (WidthItem, error) {
	width := ParseWidth(body.Width)

	// a present but empty "locators" array still marks a narrowed item
	var shape struct {
		MeasureColumnWidthItem map[string]json.RawMessage `json:"measureColumnWidthItem"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownWidthItem, err)
	}
	_, hasLocators := shape.MeasureColumnWidthItem["locators"]
	_, hasLocator := shape.MeasureColumnWidthItem["locator"]

	switch {
	case hasLocators && hasLocator:
		return nil, fmt.Errorf("%w: measure item with both locator and locators", ErrUnknownWidthItem)

	case hasLocators:
		if len(body.Locators) == 0 {
			return nil, fmt.Errorf("%w: measure item with empty locators", core.ErrInvalidLocator)
		}
		locators := make([]core.ColumnLocator, 0, len(body.Locators))
		for i, raw := range body.Locators {
			loc, err := core.DecodeLocator(raw)
			if err != nil {
				return nil, fmt.Errorf("locator %d: %w", i, err)
			}
			locators = append(locators, loc)
		}
		if _, measures := core.SplitLocators(locators); len(measures) > 1 {
			return nil, fmt.Errorf("%w: more than one measure locator", core.ErrInvalidLocator)
		}
		return MeasureColumnWidthItem{Locators: locators, Width: width}, nil

	case hasLocator:
		loc, err := core.DecodeLocator(body.Locator)
		if err != nil {
			return nil, err
		}
		measure, ok := loc.(core.MeasureLocator)
		if !ok {
			return nil, fmt.Errorf("%w: weak measure item requires a measure locator", core.ErrInvalidLocator)
		}
		return WeakMeasureColumnWidthItem{Locator: measure, Width: width}, nil

	default:
		return AllMeasureColumnWidthItem{Width: width}, nil
	}
}

// DecodeWidthItems decodes a JSON array of width items. The first invalid item
// aborts decoding; the error names its index.
func DecodeWidthItems(data []byte) ([]WidthItem, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownWidthItem, err)
	}
	items := make([]WidthItem, 0, len(raw))
	for i, r := range raw {
		item, err := DecodeWidthItem(r)
		if err != nil {
			return nil, fmt.Errorf("width item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// EncodeWidthItems encodes width items as a JSON array.
func EncodeWidthItems(items []WidthItem) ([]byte, error) {
	if items == nil {
		items = []WidthItem{}
	}
	return json.Marshal(items)
}

// MarshalJSON encodes {"attributeColumnWidthItem": {...}}.
func (i AttributeColumnWidthItem) MarshalJSON() ([]byte, error) {
	type body struct {
		Width               Width  `json:"width"`
		AttributeIdentifier string `json:"attributeIdentifier"`
	}
	return json.Marshal(struct {
		Item body `json:"attributeColumnWidthItem"`
	}{Item: body{Width: i.Width, AttributeIdentifier: i.AttributeIdentifier}})
}

// MarshalJSON encodes {"measureColumnWidthItem": {"width": ..., "locators": [...]}}.
func (i MeasureColumnWidthItem) MarshalJSON() ([]byte, error) {
	type body struct {
		Width    Width                `json:"width"`
		Locators []core.ColumnLocator `json:"locators"`
	}
	locators := i.Locators
	if locators == nil {
		locators = []core.ColumnLocator{}
	}
	return json.Marshal(struct {
		Item body `json:"measureColumnWidthItem"`
	}{Item: body{Width: i.Width, Locators: locators}})
}

// MarshalJSON encodes {"measureColumnWidthItem": {"width": ...}}.
func (i AllMeasureColumnWidthItem) MarshalJSON() ([]byte, error) {
	type body struct {
		Width Width `json:"width"`
	}
	return json.Marshal(struct {
		Item body `json:"measureColumnWidthItem"`
	}{Item: body{Width: i.Width}})
}

// MarshalJSON encodes {"measureColumnWidthItem": {"width": ..., "locator": {...}}}.
func (i WeakMeasureColumnWidthItem) MarshalJSON() ([]byte, error) {
	type body struct {
		Width   Width               `json:"width"`
		Locator core.MeasureLocator `json:"locator"`
	}
	return json.Marshal(struct {
		Item body `json:"measureColumnWidthItem"`
	}{Item: body{Width: i.Width, Locator: i.Locator}})
}
