package colwidth

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWidth(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		absolute  bool
		auto      bool
		value     float64
		growToFit bool
	}{
		{name: "absolute", input: `{"value":120}`, absolute: true, value: 120},
		{name: "absolute fractional", input: `{"value":80.5}`, absolute: true, value: 80.5},
		{name: "absolute grow to fit", input: `{"value":200,"allowGrowToFit":true}`, absolute: true, value: 200, growToFit: true},
		{name: "auto", input: `{"value":"auto"}`, auto: true},
		{name: "numeric string", input: `{"value":"123"}`},
		{name: "null value", input: `{"value":null}`},
		{name: "missing value", input: `{"allowGrowToFit":true}`},
		{name: "not an object", input: `120`},
		{name: "empty", input: ``},
		{name: "garbage", input: `{value`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ParseWidth([]byte(tt.input))
			assert.Equal(t, tt.absolute, w.IsAbsolute())
			assert.Equal(t, tt.auto, w.IsAuto())
			assert.Equal(t, !tt.absolute && !tt.auto, w.IsMalformed())
			assert.Equal(t, tt.value, w.Value())
			assert.Equal(t, tt.growToFit, w.AllowGrowToFit())

			if w.IsMalformed() {
				assert.ErrorIs(t, w.Validate(), ErrMalformedWidth)
			} else {
				assert.NoError(t, w.Validate())
			}
		})
	}
}

func TestWidthValidate_NonFinite(t *testing.T) {
	assert.ErrorIs(t, Absolute(math.NaN()).Validate(), ErrMalformedWidth)
	assert.ErrorIs(t, Absolute(math.Inf(1)).Validate(), ErrMalformedWidth)
	assert.ErrorIs(t, Width{}.Validate(), ErrMalformedWidth)
}

func TestWidthClamp(t *testing.T) {
	tests := []struct {
		name  string
		width Width
		want  Width
	}{
		{name: "below minimum", width: Absolute(10), want: Absolute(60)},
		{name: "above maximum", width: Absolute(3000), want: Absolute(2000)},
		{name: "in range", width: Absolute(150), want: Absolute(150)},
		{name: "keeps grow to fit", width: AbsoluteGrowToFit(5000), want: AbsoluteGrowToFit(2000)},
		{name: "auto untouched", width: Auto(), want: Auto()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.width.Clamp(60, 2000))
		})
	}
}

func TestWidthMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		width Width
		want  string
	}{
		{name: "absolute", width: Absolute(120), want: `{"value":120}`},
		{name: "grow to fit", width: AbsoluteGrowToFit(120), want: `{"value":120,"allowGrowToFit":true}`},
		{name: "auto", width: Auto(), want: `{"value":"auto"}`},
		{name: "malformed kept verbatim", width: ParseWidth([]byte(`{"value":"123"}`)), want: `{"value":"123"}`},
		{name: "zero value", width: Width{}, want: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.width)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestWidthString(t *testing.T) {
	assert.Equal(t, "120", Absolute(120).String())
	assert.Equal(t, "80.5 (grow to fit)", AbsoluteGrowToFit(80.5).String())
	assert.Equal(t, "auto", Auto().String())
	assert.Equal(t, "malformed", ParseWidth([]byte(`"x"`)).String())
}
