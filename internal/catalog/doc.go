// Package catalog contains the static reference tables of the anchovy design
// system: color families, typography colors and levels, spacing and sizing
// tokens, and gradient presets.
//
// The tables are process-wide read-only values. Values that can be derived from
// other fields (CMYK strings, rem sizes, gradient CSS, contrast ratios) are not
// stored; they are computed by accessor methods so they can never drift from
// their source. Validate checks the remaining authoring invariants and is run
// once at startup.
package catalog
