package styles

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Named colors used by the built-in styles.
const (
	Black Color = "#000000"
	White Color = "#ffffff"

	GreyL0  Color = "#f5f5f6" // extremely light grey, close to white
	GreyL1  Color = "#cccdcf" // light grey
	GreyML0 Color = "#a2a2a2" // medium-light grey
	GreyMD0 Color = "#616161" // medium-dark grey
	GreyD0  Color = "#1c1e23" // dark grey
	GreyD1  Color = "#272a31" // dark grey

	RedMD0 Color = "#781f1f" // medium-dark red, similar to maroon

	Cyan0  Color = "#3a78f2"
	BluML0 Color = "#8b9fde" // medium-light blue, similar to periwinkle
	BluMD0 Color = "#2e3d5a" // medium-dark blue

	YlwL0 Color = "#ffffe0" // light yellow
)

// Lighten returns the color blended toward white by amount (0..1). Colors
// that cannot be parsed are returned unchanged; shade derivation is a
// convenience for theme authors, not a resolution step, so it never errors.
func Lighten(c Color, amount float64) Color {
	return blend(c, "#ffffff", amount)
}

// Darken returns the color blended toward black by amount (0..1).
func Darken(c Color, amount float64) Color {
	return blend(c, "#000000", amount)
}

func blend(c Color, target string, amount float64) Color {
	base, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	to, err := colorful.Hex(target)
	if err != nil {
		return c
	}
	if amount < 0 {
		amount = 0
	} else if amount > 1 {
		amount = 1
	}
	return Color(base.BlendLab(to, amount).Clamped().Hex())
}
