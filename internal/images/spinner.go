package images

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/glintlabs/glint/internal/layout"
)

// Spinner generates the frames of a rotating-spoke busy indicator. Each
// frame advances the brightest spoke by one; trailing spokes fade and
// shrink down to the configured minimums.
type Spinner struct {
	size           layout.XY
	color          color.NRGBA
	bg             color.Color
	spokes         int
	sizeMinPct     float64
	opacityMinPct  float64
	framesPerSpoke int

	frame int
}

// SpinnerConfig carries the optional spinner knobs; zero values pick the
// stock appearance.
type SpinnerConfig struct {
	Size           layout.XY
	Color          color.NRGBA
	Background     color.Color
	Spokes         int
	SizeMinPct     float64
	OpacityMinPct  float64
	FramesPerSpoke int
}

// NewSpinner creates a spinner frame source.
func NewSpinner(cfg SpinnerConfig) *Spinner {
	s := &Spinner{
		size:           cfg.Size,
		color:          cfg.Color,
		bg:             cfg.Background,
		spokes:         cfg.Spokes,
		sizeMinPct:     cfg.SizeMinPct,
		opacityMinPct:  cfg.OpacityMinPct,
		framesPerSpoke: cfg.FramesPerSpoke,
	}
	if s.size.X < 1 || s.size.Y < 1 {
		s.size = layout.XY{X: 16, Y: 16}
	}
	if s.color == (color.NRGBA{}) {
		s.color = color.NRGBA{R: 0x20, G: 0x42, B: 0x74, A: 0xff} // slate blue
	}
	if s.bg == nil {
		s.bg = color.Transparent
	}
	if s.spokes < 1 {
		s.spokes = 8
	}
	if s.sizeMinPct <= 0 {
		s.sizeMinPct = 0.5
	}
	if s.opacityMinPct <= 0 {
		s.opacityMinPct = 0.4
	}
	if s.framesPerSpoke < 1 {
		s.framesPerSpoke = 4
	}
	return s
}

// FrameCount returns the cycle length.
func (s *Spinner) FrameCount() int { return s.spokes * s.framesPerSpoke }

// Next renders the next frame and advances the cycle.
func (s *Spinner) Next() *image.NRGBA {
	img := s.Frame(s.frame)
	s.frame = (s.frame + 1) % s.FrameCount()
	return img
}

// Frame renders frame n of the cycle.
func (s *Spinner) Frame(n int) *image.NRGBA {
	img := imaging.New(s.size.X, s.size.Y, s.bg)

	cx := float64(s.size.X) / 2
	cy := float64(s.size.Y) / 2
	outer := math.Min(cx, cy) - 1
	inner := outer * 0.45
	lead := float64(n) / float64(s.framesPerSpoke)

	for i := 0; i < s.spokes; i++ {
		// Distance behind the leading spoke, in spokes, controls fade.
		behind := math.Mod(lead-float64(i)+float64(s.spokes), float64(s.spokes))
		fade := 1 - behind/float64(s.spokes)

		opacity := s.opacityMinPct + (1-s.opacityMinPct)*fade
		length := s.sizeMinPct + (1-s.sizeMinPct)*fade

		angle := 2 * math.Pi * float64(i) / float64(s.spokes)
		c := s.color
		c.A = uint8(float64(c.A) * opacity)
		drawSpoke(img, cx, cy, angle, inner, inner+(outer-inner)*length, c)
	}
	return img
}

// drawSpoke draws a radial line by sampling along its length.
func drawSpoke(img *image.NRGBA, cx, cy, angle, from, to float64, c color.NRGBA) {
	sin, cos := math.Sincos(angle)
	steps := int(to-from) * 2
	if steps < 2 {
		steps = 2
	}
	for i := 0; i <= steps; i++ {
		r := from + (to-from)*float64(i)/float64(steps)
		x := int(cx + r*cos)
		y := int(cy + r*sin)
		if image.Pt(x, y).In(img.Bounds()) {
			img.SetNRGBA(x, y, c)
		}
	}
}
