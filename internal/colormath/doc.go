// Package colormath holds the pure color conversions used to keep every
// displayed value consistent with a single source hex string.
//
// All functions accept colors in the 7-character "#RRGGBB" form. Anything else
// is rejected with a *ValidationError of kind InvalidColorFormat instead of
// producing a nonsensical result.
//
// # Conversions
//
//   - HexToCMYK formats the print-oriented "C / M / Y / K" string.
//   - PickForeground chooses a text color pair for a swatch background using
//     the weighted perceived lightness (0.299R + 0.587G + 0.114B) / 255 and a
//     0.55 threshold that biases toward dark text.
//   - RelativeLuminance and ContrastRatio implement the WCAG 2.x formulas and
//     back the contrast figures shown for typography colors.
package colormath
