package colormath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToCMYK(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{name: "black point", hex: "#000000", want: "0 / 0 / 0 / 100"},
		{name: "white point", hex: "#FFFFFF", want: "0 / 0 / 0 / 0"},
		{name: "lower case white", hex: "#ffffff", want: "0 / 0 / 0 / 0"},
		{name: "pure red", hex: "#FF0000", want: "0 / 100 / 100 / 0"},
		{name: "mid grey", hex: "#808080", want: "0 / 0 / 0 / 50"},
		{name: "blue 500", hex: "#3B82F6", want: "76 / 47 / 0 / 4"},
		{name: "matrix 500", hex: "#10B981", want: "91 / 0 / 30 / 27"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HexToCMYK(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToCMYK_RangeAndDeterminism(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#123456", "#ABCDEF", "#FE01A0", "#0F172A", "#F59E0B"} {
		first, err := HexToCMYK(hex)
		require.NoError(t, err)
		second, err := HexToCMYK(hex)
		require.NoError(t, err)
		assert.Equal(t, first, second, "HexToCMYK must be pure for %s", hex)

		parts := strings.Split(first, " / ")
		require.Len(t, parts, 4, "unexpected format %q", first)
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 0)
			assert.LessOrEqual(t, n, 100)
		}
	}
}

func TestHexToCMYK_InvalidInput(t *testing.T) {
	for _, in := range []string{"", "#FFF", "FFFFFF", "#GGGGGG", "#12345", "#1234567", "rgb(0,0,0)"} {
		t.Run(fmt.Sprintf("input %q", in), func(t *testing.T) {
			_, err := HexToCMYK(in)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, InvalidColorFormat, verr.Kind)
			assert.Equal(t, in, verr.Input)
		})
	}
}

func TestMustHexToCMYK_Panics(t *testing.T) {
	assert.Panics(t, func() { MustHexToCMYK("nope") })
	assert.Equal(t, "0 / 0 / 0 / 100", MustHexToCMYK("#000000"))
}

func TestPickForeground(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Foreground
	}{
		{name: "white gets dark text", hex: "#FFFFFF", want: DarkForeground},
		{name: "black gets light text", hex: "#000000", want: LightForeground},
		{name: "lightness 0.56 gets dark text", hex: "#8F8F8F", want: DarkForeground},
		{name: "lightness 0.54 gets light text", hex: "#8A8A8A", want: LightForeground},
		// (0.299*2 + 0.587*208 + 0.114*154) / 255 == 0.55
		{name: "exactly at threshold gets light text", hex: "#02D09A", want: LightForeground},
		{name: "blue 500 is dark", hex: "#3B82F6", want: LightForeground},
		{name: "solar 300 is light", hex: "#FDE047", want: DarkForeground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PickForeground(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPerceivedLightness_Boundary(t *testing.T) {
	l, err := PerceivedLightness("#02D09A")
	require.NoError(t, err)
	assert.InDelta(t, LightnessThreshold, l, 1e-12)

	_, err = PerceivedLightness("#02D09")
	assert.Error(t, err)
}

func TestContrastRatio(t *testing.T) {
	ratio, err := ContrastRatio("#000000", "#FFFFFF")
	require.NoError(t, err)
	assert.InDelta(t, 21.0, ratio, 1e-9)

	same, err := ContrastRatio("#3B82F6", "#3B82F6")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-9)

	// Order of arguments does not matter.
	ab, err := ContrastRatio("#0F172A", "#FFFFFF")
	require.NoError(t, err)
	ba, err := ContrastRatio("#FFFFFF", "#0F172A")
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Equal(t, "17.85:1", FormatContrast(ab))

	_, err = ContrastRatio("#FFFFFF", "white")
	assert.Error(t, err)
}

func TestWCAGLevel(t *testing.T) {
	assert.Equal(t, "AAA", WCAGLevel(17.85))
	assert.Equal(t, "AA", WCAGLevel(4.76))
	assert.Equal(t, "AA Large", WCAGLevel(3.2))
	assert.Equal(t, "Fail", WCAGLevel(1.4))
}

func TestParseHex_RoundTrip(t *testing.T) {
	rgb, err := ParseHex("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x3B, G: 0x82, B: 0xF6}, rgb)
	assert.Equal(t, "#3B82F6", rgb.Hex())
}
