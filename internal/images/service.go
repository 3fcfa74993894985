// Package images provides the image collaborators the widget layer consumes:
// loading and resizing with an in-memory cache, icon drawing, terminal
// rendering, and the animated spinner/clock frame sources.
package images

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/logger"
)

// Mode selects how a source image maps onto the target box.
type Mode string

const (
	// ModeFit scales preserving aspect ratio so the whole image fits.
	ModeFit Mode = "fit"
	// ModeFill scales preserving aspect ratio and crops to fill the box.
	ModeFill Mode = "fill"
	// ModeStretch scales each axis independently.
	ModeStretch Mode = "stretch"
)

// Resized is a resize result: the bitmap plus its actual size, which for
// ModeFit may be smaller than the requested box along one axis.
type Resized struct {
	Image *image.NRGBA
	Size  layout.XY
}

// Service loads, resizes, and caches images. Resize results are memoized per
// (source path, target, mode); images resized from in-memory sources bypass
// the cache.
//
// Like the widget layer it serves, a Service belongs to the event-loop
// goroutine.
type Service struct {
	log   *logger.Logger
	cache map[string]*Resized
}

// NewService creates an image service with an empty cache.
func NewService(log *logger.Logger) *Service {
	return &Service{
		log:   log.Component("images"),
		cache: make(map[string]*Resized),
	}
}

// Open loads the image at path.
func (s *Service) Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("loading image %s: %w", path, err)
	}
	return img, nil
}

// Resize scales img into the target box per mode.
func (s *Service) Resize(img image.Image, target layout.XY, mode Mode) *Resized {
	var out *image.NRGBA
	switch mode {
	case ModeFill:
		out = imaging.Fill(img, target.X, target.Y, imaging.Center, imaging.Lanczos)
	case ModeStretch:
		out = imaging.Resize(img, target.X, target.Y, imaging.Lanczos)
	default:
		out = imaging.Fit(img, target.X, target.Y, imaging.Lanczos)
	}
	bounds := out.Bounds()
	return &Resized{Image: out, Size: layout.XY{X: bounds.Dx(), Y: bounds.Dy()}}
}

// OpenResized loads and resizes in one call, memoizing per (path, target,
// mode).
func (s *Service) OpenResized(path string, target layout.XY, mode Mode) (*Resized, error) {
	key := fmt.Sprintf("%s|%dx%d|%s", path, target.X, target.Y, mode)
	if cached, ok := s.cache[key]; ok {
		return cached, nil
	}
	img, err := s.Open(path)
	if err != nil {
		return nil, err
	}
	resized := s.Resize(img, target, mode)
	s.cache[key] = resized
	s.log.Debugf("cached %s at %dx%d", path, resized.Size.X, resized.Size.Y)
	return resized, nil
}

// CacheSize returns the number of memoized resize results.
func (s *Service) CacheSize() int { return len(s.cache) }

// InvalidateCache drops every memoized resize result.
func (s *Service) InvalidateCache() {
	s.cache = make(map[string]*Resized)
}

// DrawIcon renders a short glyph or label into a bitmap of the given pixel
// size with the supplied colors, scaling the base face up to fill the box.
func (s *Service) DrawIcon(label string, size layout.XY, fg, bg color.Color) *image.NRGBA {
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	canvas := imaging.New(size.X, size.Y, bg)

	face := basicfont.Face7x13
	textW := font.MeasureString(face, label).Ceil()
	if textW == 0 {
		return canvas
	}

	base := imaging.New(textW, face.Height, bg)
	drawer := &font.Drawer{
		Dst:  base,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	drawer.DrawString(label)

	scaled := imaging.Fit(base, size.X, size.Y, imaging.NearestNeighbor)
	return imaging.OverlayCenter(canvas, scaled, 1.0)
}
