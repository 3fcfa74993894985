package images

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/layout"
)

// CellSize returns the pixel dimensions an image needs to fill the given
// cell box with half-block rendering: one column per cell, two rows per
// cell.
func CellSize(cells layout.XY) layout.XY {
	return layout.XY{X: cells.X, Y: cells.Y * 2}
}

// RenderHalfBlocks renders img as terminal text, two vertical pixels per
// cell: the upper pixel colors the foreground of "▀", the lower pixel the
// background. Transparent pixels leave the cell's half unstyled.
func RenderHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return ""
	}

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			upper, upperOK := hexColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			var lower string
			var lowerOK bool
			if y+1 < h {
				lower, lowerOK = hexColor(img.At(bounds.Min.X+x, bounds.Min.Y+y+1))
			}

			style := lipgloss.NewStyle()
			if upperOK {
				style = style.Foreground(lipgloss.Color(upper))
			}
			if lowerOK {
				style = style.Background(lipgloss.Color(lower))
			}
			if !upperOK && !lowerOK {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(style.Render("▀"))
		}
	}
	return sb.String()
}

// hexColor converts a pixel to a hex string, reporting false for (near)
// fully transparent pixels.
func hexColor(c color.Color) (string, bool) {
	r, g, b, a := c.RGBA()
	if a < 0x1000 {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8)), true
}
