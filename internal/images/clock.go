package images

import (
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"

	"github.com/glintlabs/glint/internal/layout"
)

// Seven-segment layout: segments a through g addressed by bit, drawn as
// filled bars.
//
//	 aaa
//	f   b
//	f   b
//	 ggg
//	e   c
//	e   c
//	 ddd
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var digitSegments = [10]int{
	segA | segB | segC | segD | segE | segF,        // 0
	segB | segC,                                    // 1
	segA | segB | segG | segE | segD,               // 2
	segA | segB | segG | segC | segD,               // 3
	segF | segG | segB | segC,                      // 4
	segA | segF | segG | segC | segD,               // 5
	segA | segF | segG | segE | segC | segD,        // 6
	segA | segB | segC,                             // 7
	segA | segB | segC | segD | segE | segF | segG, // 8
	segA | segB | segC | segD | segF | segG,        // 9
}

// Clock renders wall-clock time as a seven-segment display image.
type Clock struct {
	bar     int // segment thickness in pixels
	gap     int // spacing between characters
	seconds bool
	fg      color.Color
	bg      color.Color
}

// ClockConfig carries the clock's appearance knobs; zero values pick the
// stock appearance.
type ClockConfig struct {
	Bar        int
	Gap        int
	Seconds    bool
	Foreground color.Color
	Background color.Color
}

// NewClock creates a seven-segment clock image source.
func NewClock(cfg ClockConfig) *Clock {
	c := &Clock{bar: cfg.Bar, gap: cfg.Gap, seconds: cfg.Seconds, fg: cfg.Foreground, bg: cfg.Background}
	if c.bar < 1 {
		c.bar = 2
	}
	if c.gap < 1 {
		c.gap = c.bar
	}
	if c.fg == nil {
		c.fg = color.NRGBA{R: 0xff, A: 0xff}
	}
	if c.bg == nil {
		c.bg = color.Transparent
	}
	return c
}

// digit geometry, derived from the bar thickness
func (c *Clock) digitSize() layout.XY {
	// A digit is three bars wide and five bars tall, with the vertical
	// segments spanning the gaps between horizontal ones.
	return layout.XY{X: c.bar * 3, Y: c.bar * 5}
}

// Size returns the rendered image size.
func (c *Clock) Size() layout.XY {
	digits := 4
	colons := 1
	if c.seconds {
		digits = 6
		colons = 2
	}
	d := c.digitSize()
	chars := digits + colons
	return layout.XY{X: digits*d.X + colons*c.bar + (chars-1)*c.gap, Y: d.Y}
}

// Render draws the given time.
func (c *Clock) Render(t time.Time) *image.NRGBA {
	size := c.Size()
	img := imaging.New(size.X, size.Y, c.bg)

	hour, minute, second := t.Clock()
	pairs := []int{hour, minute}
	if c.seconds {
		pairs = append(pairs, second)
	}

	x := 0
	for i, value := range pairs {
		if i > 0 {
			c.drawColon(img, x)
			x += c.bar + c.gap
		}
		x = c.drawDigit(img, x, value/10)
		x = c.drawDigit(img, x, value%10)
	}
	return img
}

func (c *Clock) drawDigit(img *image.NRGBA, x, digit int) int {
	d := c.digitSize()
	bar := c.bar
	segs := digitSegments[digit]

	fill := func(x0, y0, x1, y1 int) {
		fillRect(img, x+x0, y0, x+x1, y1, c.fg)
	}
	if segs&segA != 0 {
		fill(0, 0, d.X, bar)
	}
	if segs&segG != 0 {
		fill(0, 2*bar, d.X, 3*bar)
	}
	if segs&segD != 0 {
		fill(0, d.Y-bar, d.X, d.Y)
	}
	if segs&segF != 0 {
		fill(0, 0, bar, d.Y/2)
	}
	if segs&segB != 0 {
		fill(d.X-bar, 0, d.X, d.Y/2)
	}
	if segs&segE != 0 {
		fill(0, d.Y/2, bar, d.Y)
	}
	if segs&segC != 0 {
		fill(d.X-bar, d.Y/2, d.X, d.Y)
	}
	return x + d.X + c.gap
}

func (c *Clock) drawColon(img *image.NRGBA, x int) {
	d := c.digitSize()
	bar := c.bar
	fillRect(img, x, d.Y/2-2*bar, x+bar, d.Y/2-bar, c.fg)
	fillRect(img, x, d.Y/2+bar, x+bar, d.Y/2+2*bar, c.fg)
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.Color) {
	r, g, b, a := c.RGBA()
	px := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	bounds := img.Bounds()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if image.Pt(x, y).In(bounds) {
				img.SetNRGBA(x, y, px)
			}
		}
	}
}
