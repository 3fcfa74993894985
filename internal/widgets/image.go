package widgets

import (
	stdimage "image"

	"github.com/glintlabs/glint/internal/images"
	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/logger"
	"github.com/glintlabs/glint/internal/styles"
)

// Image renders a bitmap with half-block cells. Sources can be a file path
// (loaded and cached through the image service) or an in-memory image.
// Load failures are logged and the widget renders empty so the frame keeps
// drawing.
type Image struct {
	base
	svc   *images.Service
	log   *logger.Logger
	path  string
	src   stdimage.Image
	cells layout.XY
	mode  images.Mode

	rendered string
	dirty    bool
}

// NewImage creates an image widget for a file path.
func NewImage(svc *images.Service, log *logger.Logger, path string, cells layout.XY, opts ...Option) *Image {
	return &Image{
		base:  newBase("image", styles.RoleImage, opts),
		svc:   svc,
		log:   log.Component("widgets"),
		path:  path,
		cells: cells,
		mode:  images.ModeFit,
		dirty: true,
	}
}

// NewImageFrom creates an image widget for an in-memory bitmap.
func NewImageFrom(svc *images.Service, log *logger.Logger, src stdimage.Image, cells layout.XY, opts ...Option) *Image {
	img := NewImage(svc, log, "", cells, opts...)
	img.src = src
	return img
}

// SetMode selects the resize mode; fit is the default.
func (i *Image) SetMode(mode images.Mode) {
	i.mode = mode
	i.dirty = true
}

// SetSource replaces the in-memory bitmap. Animated widgets push frames
// through here.
func (i *Image) SetSource(src stdimage.Image) {
	i.src = src
	i.path = ""
	i.dirty = true
}

// View renders the image, re-rasterizing only when the source or target
// changed.
func (i *Image) View() string {
	if !i.dirty {
		return i.rendered
	}
	i.dirty = false

	src := i.src
	if i.path != "" {
		resized, err := i.svc.OpenResized(i.path, images.CellSize(i.cells), i.mode)
		if err != nil {
			i.log.Error(err, "rendering image")
			i.rendered = ""
			return i.rendered
		}
		i.rendered = images.RenderHalfBlocks(resized.Image)
		return i.rendered
	}
	if src == nil {
		i.rendered = ""
		return i.rendered
	}
	i.rendered = images.RenderHalfBlocks(i.svc.Resize(src, images.CellSize(i.cells), i.mode).Image)
	return i.rendered
}

// Requested returns the target size in cells.
func (i *Image) Requested() layout.XY { return i.cells }
