package model

import (
	"fmt"
	"strings"

	"anchovy/internal/catalog"
	"anchovy/internal/tokens"
)

// CopyTarget returns what the copy keys put on the clipboard for the
// focused swatch, and the key its indicator is shown under.
func (s SpectrumState) CopyTarget(cmyk bool) (text, key string) {
	f, shade := s.Selected()
	key = ShadeKey(f, shade)
	if cmyk {
		return shade.CMYK(), key
	}
	return shade.Hex, key
}

// TypographyColorKey identifies a text colour row, e.g. "text-primary-text".
func TypographyColorKey(c catalog.TypographyColor) string {
	return "text-" + strings.ToLower(strings.ReplaceAll(c.Name, " ", "-"))
}

// TypeLevelKey identifies a type scale row, e.g. "level-heading-1".
func TypeLevelKey(l catalog.TypeLevel) string {
	return "level-" + strings.ToLower(strings.ReplaceAll(l.Name, " ", "-"))
}

// CopyTarget copies the hex for the current theme (or its CMYK) from the
// colour table, the CSS block of a type level or a font-weight declaration.
func (s TypographyState) CopyTarget(isDark, cmyk bool) (text, key string) {
	switch s.Section {
	case TypographyScale:
		l := catalog.TypeScale[s.Row]
		return l.CSS(), TypeLevelKey(l)
	case TypographyWeights:
		w := catalog.FontWeights[s.Row]
		return w.CSS(), w.Key()
	}
	c := catalog.TypographyColors[s.Row]
	key = TypographyColorKey(c)
	hex, cm := c.LightHex, c.LightCMYK()
	if isDark {
		hex, cm = c.DarkHex, c.DarkCMYK()
	}
	if cmyk {
		return cm, key
	}
	return hex, key
}

// CopyTarget copies the background declaration of the focused gradient.
func (s GradientsState) CopyTarget() (text, key string) {
	g := catalog.Gradients[s.Cursor]
	return g.Background(), g.Slug()
}

// CopyTarget copies the CSS snippet of the focused primitive.
func (s ComponentsState) CopyTarget() (text, key string) {
	c := s.Focused()
	return c.CSS, c.Key()
}

// SliderToken returns the spacing token a playground slider points at.
func (s SpacingState) SliderToken(p PlaygroundProperty) catalog.SpacingToken {
	return catalog.PlaygroundScale[s.Sliders[p]]
}

// PlaygroundCSS renders the generated CSS of the playground.
func (s SpacingState) PlaygroundCSS() string {
	return fmt.Sprintf("padding: %gpx;\ngap: %gpx;\nmargin: %gpx;",
		s.SliderToken(PlaygroundPadding).Px,
		s.SliderToken(PlaygroundGap).Px,
		s.SliderToken(PlaygroundMargin).Px)
}

// CopyTarget copies "var(--name); /* Npx */" for the focused token, or its
// rem value when rem is set. In the playground it copies the generated CSS.
func (s SpacingState) CopyTarget(rem bool) (text, key string) {
	switch s.Section {
	case SizingScale:
		t := s.VisibleSizing()[s.Row]
		if rem {
			return t.Rem(), t.Name + "-rem"
		}
		return t.Declaration(), t.Name
	case SpacingPlayground:
		return s.PlaygroundCSS(), "playground"
	default:
		t := catalog.SpacingScale[s.Row]
		if rem {
			return t.Rem(), t.Name + "-rem"
		}
		return t.Declaration(), t.Name
	}
}

// CopyTarget copies the focused token path.
func (s TokensState) CopyTarget() (text, key string) {
	r := tokens.References[s.Cursor]
	return r.Path, r.Path
}
