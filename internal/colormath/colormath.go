package colormath

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// LightnessThreshold is the perceived lightness above which a background is
// treated as light and gets the dark foreground pair.
const LightnessThreshold = 0.55

// Backgrounds the typography contrast ratios are measured against.
const (
	LightBackground = "#FFFFFF"
	DarkBackground  = "#0F172A"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RGB is a color split into 0-255 channels.
type RGB struct {
	R, G, B uint8
}

// Foreground is the text color pair chosen for a given background.
type Foreground struct {
	Text      string
	MutedText string
}

var (
	// DarkForeground is used on light backgrounds.
	DarkForeground = Foreground{Text: "#0F172A", MutedText: "#475569"}
	// LightForeground is used on dark backgrounds.
	LightForeground = Foreground{Text: "#FFFFFF", MutedText: "#E2E8F0"}
)

// IsHex reports whether s is a well-formed "#RRGGBB" string.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex splits a "#RRGGBB" string into its channels.
func ParseHex(hex string) (RGB, error) {
	if !IsHex(hex) {
		return RGB{}, invalidColor(hex)
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return RGB{}, invalidColor(hex)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the channels back into the canonical upper-case form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HexToCMYK converts hex to the "C / M / Y / K" display string, each
// component an integer percentage.
func HexToCMYK(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}

	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return "0 / 0 / 0 / 100", nil
	}

	c := math.Round((1 - r - k) / (1 - k) * 100)
	m := math.Round((1 - g - k) / (1 - k) * 100)
	y := math.Round((1 - b - k) / (1 - k) * 100)

	return fmt.Sprintf("%d / %d / %d / %d", int(c), int(m), int(y), int(math.Round(k*100))), nil
}

// MustHexToCMYK is HexToCMYK for values that were validated at startup.
func MustHexToCMYK(hex string) string {
	cmyk, err := HexToCMYK(hex)
	if err != nil {
		panic(err)
	}
	return cmyk
}

// PerceivedLightness returns (0.299R + 0.587G + 0.114B) / 255 in [0,1].
func PerceivedLightness(hex string) (float64, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return (0.299*float64(rgb.R) + 0.587*float64(rgb.G) + 0.114*float64(rgb.B)) / 255, nil
}

// PickForeground chooses the text pair that reads best on the hex background.
// A lightness of exactly LightnessThreshold still gets the light pair.
func PickForeground(hex string) (Foreground, error) {
	l, err := PerceivedLightness(hex)
	if err != nil {
		return Foreground{}, err
	}
	if l > LightnessThreshold {
		return DarkForeground, nil
	}
	return LightForeground, nil
}

// RelativeLuminance is the WCAG 2.x relative luminance of hex.
func RelativeLuminance(hex string) (float64, error) {
	if !IsHex(hex) {
		return 0, invalidColor(hex)
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return 0, invalidColor(hex)
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// ContrastRatio returns the WCAG contrast ratio between two colors, always >= 1.
func ContrastRatio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}
	hi, lo := math.Max(la, lb), math.Min(la, lb)
	return (hi + 0.05) / (lo + 0.05), nil
}

// FormatContrast renders a ratio the way the catalog displays it, e.g. "16.75:1".
func FormatContrast(ratio float64) string {
	return fmt.Sprintf("%.2f:1", ratio)
}

// WCAGLevel grades a contrast ratio for normal-size text.
func WCAGLevel(ratio float64) string {
	switch {
	case ratio >= 7:
		return "AAA"
	case ratio >= 4.5:
		return "AA"
	case ratio >= 3:
		return "AA Large"
	default:
		return "Fail"
	}
}
