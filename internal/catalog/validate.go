package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"anchovy/internal/colormath"
)

// Tables bundles every reference table so they can be validated together.
type Tables struct {
	Families         []ColorFamily
	TypographyColors []TypographyColor
	TypeScale        []TypeLevel
	Spacing          []SpacingToken
	Sizing           []SizingToken
	Gradients        []GradientPreset
	Components       []ComponentSpec
}

// Default returns the tables shipped with the binary.
func Default() Tables {
	return Tables{
		Families:         Families,
		TypographyColors: TypographyColors,
		TypeScale:        TypeScale,
		Spacing:          SpacingScale,
		Sizing:           SizingScale,
		Gradients:        Gradients,
		Components:       Components,
	}
}

// Problem is a single failed check.
type Problem struct {
	Table   string
	Item    string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s[%s]: %s", p.Table, p.Item, p.Message)
}

// ValidationReport collects every problem found in one pass.
type ValidationReport struct {
	Problems []Problem
}

func (r *ValidationReport) Error() string {
	lines := make([]string, 0, len(r.Problems)+1)
	lines = append(lines, fmt.Sprintf("reference data has %d problem(s):", len(r.Problems)))
	for _, p := range r.Problems {
		lines = append(lines, "  - "+p.String())
	}
	return strings.Join(lines, "\n")
}

func (r *ValidationReport) add(table, item, format string, args ...interface{}) {
	r.Problems = append(r.Problems, Problem{Table: table, Item: item, Message: fmt.Sprintf(format, args...)})
}

// Validate checks the shipped tables.
func Validate() error {
	return Default().Validate()
}

// Validate returns a *ValidationReport when any check fails, nil otherwise.
func (t Tables) Validate() error {
	r := &ValidationReport{}

	t.validateFamilies(r)
	t.validateTypography(r)
	t.validateSpacing(r)
	t.validateSizing(r)
	t.validateGradients(r)
	t.validateComponents(r)

	if len(r.Problems) > 0 {
		return r
	}
	return nil
}

func (t Tables) validateFamilies(r *ValidationReport) {
	if len(t.Families) == 0 {
		r.add("families", "-", "no color families defined")
	}
	seen := map[string]bool{}
	for _, f := range t.Families {
		if seen[f.Slug()] {
			r.add("families", f.Name, "duplicate family name")
		}
		seen[f.Slug()] = true

		prev := 2.0
		for i, s := range f.Shades {
			item := f.Name + "/" + s.Name
			if s.Name != ShadeNames[i] {
				r.add("families", item, "shade %d should be named %q", i, ShadeNames[i])
			}
			l, err := colormath.PerceivedLightness(s.Hex)
			if err != nil {
				r.add("families", item, "%v", err)
				continue
			}
			if l > prev {
				r.add("families", item, "lighter than the previous shade (%.3f > %.3f)", l, prev)
			}
			prev = l
		}
	}
}

func (t Tables) validateTypography(r *ValidationReport) {
	for _, c := range t.TypographyColors {
		for _, hex := range []string{c.LightHex, c.DarkHex} {
			if _, err := colormath.HexToCMYK(hex); err != nil {
				r.add("typographyColors", c.Name, "%v", err)
			}
		}
	}
	for _, l := range t.TypeScale {
		if l.FontFamily != FontSans && l.FontFamily != FontMono {
			r.add("typeScale", l.Name, "unknown font family %q", l.FontFamily)
		}
		if l.SizePx <= 0 {
			r.add("typeScale", l.Name, "font size must be positive, got %d", l.SizePx)
		}
		if l.Weight < 100 || l.Weight > 900 || l.Weight%100 != 0 {
			r.add("typeScale", l.Name, "font weight %d is not a multiple of 100 in 100..900", l.Weight)
		}
	}
}

func (t Tables) validateSpacing(r *ValidationReport) {
	prev := -1.0
	for _, s := range t.Spacing {
		if s.Px < 0 {
			r.add("spacing", s.Name, "negative size %v", s.Px)
		}
		if s.Px <= prev {
			r.add("spacing", s.Name, "scale must increase (%v after %v)", s.Px, prev)
		}
		prev = s.Px
		if !strings.HasPrefix(s.CSSVar, "--") {
			r.add("spacing", s.Name, "css variable %q must start with --", s.CSSVar)
		}
		checkRem(r, "spacing", s.Name, s.Px, s.Rem())
	}
}

func (t Tables) validateSizing(r *ValidationReport) {
	for _, s := range t.Sizing {
		switch s.Category {
		case SizingIcon, SizingComponent, SizingLayout:
		default:
			r.add("sizing", s.Name, "unknown category %q", s.Category)
		}
		if s.Px <= 0 {
			r.add("sizing", s.Name, "size must be positive, got %v", s.Px)
		}
		checkRem(r, "sizing", s.Name, s.Px, s.Rem())
	}
}

// checkRem parses the rendered rem back and compares it with px/16.
func checkRem(r *ValidationReport, table, name string, px float64, rem string) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(rem, "rem"), 64)
	if err != nil {
		r.add(table, name, "unparsable rem %q", rem)
		return
	}
	if diff := v - px/RemBase; diff > 0.00005 || diff < -0.00005 {
		r.add(table, name, "rem %q does not match %vpx", rem, px)
	}
}

func (t Tables) validateGradients(r *ValidationReport) {
	for _, g := range t.Gradients {
		if len(g.Colors) < 2 {
			r.add("gradients", g.Name, "needs at least two colors")
		}
		for _, c := range g.Colors {
			if !colormath.IsHex(c) {
				r.add("gradients", g.Name, "invalid color %q", c)
			}
		}
		if g.Angle < 0 || g.Angle > 360 {
			r.add("gradients", g.Name, "angle %d outside 0..360", g.Angle)
		}
		if got := g.CSS(); got != g.Published {
			r.add("gradients", g.Name, "css %q does not match published %q", got, g.Published)
		}
	}
}

func (t Tables) validateComponents(r *ValidationReport) {
	seen := map[string]bool{}
	for _, c := range t.Components {
		if seen[c.Key()] {
			r.add("components", c.Name, "duplicate key %q", c.Key())
		}
		seen[c.Key()] = true
		if !colormath.IsHex(c.Accent) {
			r.add("components", c.Name, "invalid accent %q", c.Accent)
		}
		if c.CSS == "" {
			r.add("components", c.Name, "missing css snippet")
		}
		switch c.Kind {
		case KindSelect, KindRadio:
			if c.Default < 0 || c.Default >= len(c.Options) {
				r.add("components", c.Name, "default option %d out of range", c.Default)
			}
		}
	}
}
