package statuscolor

import (
	"regexp"
	"strings"
)

const (
	// DefaultColor is used for statuses without a usable color (grey).
	DefaultColor = "#999999"
	// DefaultOpacity is the row background opacity handed to the renderer (0.0 - 1.0).
	DefaultOpacity = 0.1
)

// #RGB or #RRGGBB
var hexColorPattern = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// StatusColorOverride is one row of the override table: a status id and the color text stored for it.
type StatusColorOverride struct {
	StatusID int
	RawColor string
}

// ColorMap maps a status id to a "#"-prefixed hex color.
type ColorMap map[int]string

// NormalizeColor prepends "#" when missing and reports whether the result is a valid hex color.
func NormalizeColor(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	color := raw
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	if !hexColorPattern.MatchString(color) {
		return color, false
	}
	return color, true
}

// ColorResolver builds the full status color map from the override rows.
type ColorResolver struct {
	defaultColor string
}

// NewColorResolver creates a resolver; an empty default falls back to DefaultColor.
func NewColorResolver(defaultColor string) *ColorResolver {
	if defaultColor == "" {
		defaultColor = DefaultColor
	}
	return &ColorResolver{defaultColor: defaultColor}
}

// DefaultColor returns the color used for missing or malformed overrides.
func (r *ColorResolver) DefaultColor() string {
	return r.defaultColor
}

// Resolve returns a color for every known status id and every override id.
// Overrides are applied in the given order, so a later row for the same id wins.
func (r *ColorResolver) Resolve(overrides []StatusColorOverride, knownStatusIDs []int) ColorMap {
	colors := make(ColorMap, len(knownStatusIDs))

	for _, o := range overrides {
		if o.RawColor == "" {
			continue
		}
		if color, ok := NormalizeColor(o.RawColor); ok {
			colors[o.StatusID] = color
		} else {
			colors[o.StatusID] = r.defaultColor
		}
	}

	for _, id := range knownStatusIDs {
		if _, ok := colors[id]; !ok {
			colors[id] = r.defaultColor
		}
	}

	return colors
}
