package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidLocator is returned when a serialized locator is neither an
// attribute locator nor a measure locator.
var ErrInvalidLocator = errors.New("invalid column locator")

// ColumnLocator addresses one level of a column: either an attribute (optionally
// narrowed to one element) or a measure.
//
// The set of implementations is closed: AttributeLocator and MeasureLocator.
type ColumnLocator interface {
	isColumnLocator()
	// Identifier returns the local identifier of the located attribute or measure.
	Identifier() string
}

// AttributeLocator locates all columns of an attribute, or the columns of one
// attribute element when Element is set.
type AttributeLocator struct {
	AttributeIdentifier string
	// Element is the element URI; empty matches every element of the attribute
	Element string
}

// MeasureLocator locates the columns of a measure.
type MeasureLocator struct {
	MeasureIdentifier string
}

func (AttributeLocator) isColumnLocator() {}
func (MeasureLocator) isColumnLocator()   {}

// Identifier returns the attribute local identifier.
func (l AttributeLocator) Identifier() string { return l.AttributeIdentifier }

// Identifier returns the measure local identifier.
func (l MeasureLocator) Identifier() string { return l.MeasureIdentifier }

// HasElement reports whether the locator is narrowed to a single element.
func (l AttributeLocator) HasElement() bool { return l.Element != "" }

// NewAttributeLocator creates an attribute locator. Pass an empty element to
// match all elements of the attribute.
func NewAttributeLocator(attributeIdentifier, element string) AttributeLocator {
	return AttributeLocator{AttributeIdentifier: attributeIdentifier, Element: element}
}

// NewMeasureLocator creates a measure locator.
func NewMeasureLocator(measureIdentifier string) MeasureLocator {
	return MeasureLocator{MeasureIdentifier: measureIdentifier}
}

// SplitLocators separates a locator set into its attribute and measure locators,
// preserving relative order.
func SplitLocators(locators []ColumnLocator) ([]AttributeLocator, []MeasureLocator) {
	var attrs []AttributeLocator
	var measures []MeasureLocator
	for _, l := range locators {
		switch loc := l.(type) {
		case AttributeLocator:
			attrs = append(attrs, loc)
		case MeasureLocator:
			measures = append(measures, loc)
		}
	}
	return attrs, measures
}

// --- wire format ---

type attributeLocatorBody struct {
	AttributeIdentifier string `json:"attributeIdentifier"`
	Element             string `json:"element,omitempty"`
}

type measureLocatorBody struct {
	MeasureIdentifier string `json:"measureIdentifier"`
}

type locatorEnvelope struct {
	AttributeLocatorItem *attributeLocatorBody `json:"attributeLocatorItem,omitempty"`
	MeasureLocatorItem   *measureLocatorBody   `json:"measureLocatorItem,omitempty"`
}

// MarshalJSON encodes the locator as {"attributeLocatorItem": {...}}.
func (l AttributeLocator) MarshalJSON() ([]byte, error) {
	return json.Marshal(locatorEnvelope{AttributeLocatorItem: &attributeLocatorBody{
		AttributeIdentifier: l.AttributeIdentifier,
		Element:             l.Element,
	}})
}

// UnmarshalJSON decodes an attribute locator envelope.
func (l *AttributeLocator) UnmarshalJSON(data []byte) error {
	loc, err := DecodeLocator(data)
	if err != nil {
		return err
	}
	attr, ok := loc.(AttributeLocator)
	if !ok {
		return fmt.Errorf("%w: expected attribute locator", ErrInvalidLocator)
	}
	*l = attr
	return nil
}

// MarshalJSON encodes the locator as {"measureLocatorItem": {...}}.
func (l MeasureLocator) MarshalJSON() ([]byte, error) {
	return json.Marshal(locatorEnvelope{MeasureLocatorItem: &measureLocatorBody{
		MeasureIdentifier: l.MeasureIdentifier,
	}})
}

// UnmarshalJSON decodes a measure locator envelope.
func (l *MeasureLocator) UnmarshalJSON(data []byte) error {
	loc, err := DecodeLocator(data)
	if err != nil {
		return err
	}
	m, ok := loc.(MeasureLocator)
	if !ok {
		return fmt.Errorf("%w: expected measure locator", ErrInvalidLocator)
	}
	*l = m
	return nil
}

// DecodeLocator decodes a single locator, discriminating on the envelope key.
func DecodeLocator(data []byte) (ColumnLocator, error) {
	var env locatorEnvelope
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocator, err)
	}

	switch {
	case env.AttributeLocatorItem != nil && env.MeasureLocatorItem != nil:
		return nil, fmt.Errorf("%w: both attribute and measure locator present", ErrInvalidLocator)
	case env.AttributeLocatorItem != nil:
		if env.AttributeLocatorItem.AttributeIdentifier == "" {
			return nil, fmt.Errorf("%w: missing attributeIdentifier", ErrInvalidLocator)
		}
		return AttributeLocator{
			AttributeIdentifier: env.AttributeLocatorItem.AttributeIdentifier,
			Element:             env.AttributeLocatorItem.Element,
		}, nil
	case env.MeasureLocatorItem != nil:
		if env.MeasureLocatorItem.MeasureIdentifier == "" {
			return nil, fmt.Errorf("%w: missing measureIdentifier", ErrInvalidLocator)
		}
		return MeasureLocator{MeasureIdentifier: env.MeasureLocatorItem.MeasureIdentifier}, nil
	default:
		return nil, fmt.Errorf("%w: unknown locator shape", ErrInvalidLocator)
	}
}

// DecodeLocators decodes a JSON array of locators.
func DecodeLocators(data []byte) ([]ColumnLocator, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocator, err)
	}
	locators := make([]ColumnLocator, 0, len(raw))
	for i, r := range raw {
		loc, err := DecodeLocator(r)
		if err != nil {
			return nil, fmt.Errorf("locator %d: %w", i, err)
		}
		locators = append(locators, loc)
	}
	return locators, nil
}
