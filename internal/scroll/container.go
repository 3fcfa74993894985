package scroll

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/logger"
	"github.com/glintlabs/glint/internal/styles"
)

// ContainerConfig assembles a scrollable container around an inner row
// container.
type ContainerConfig struct {
	Inner  *layout.RowContainer
	Logger *logger.Logger

	// Parent is the nearest enclosing scrollable container, if any. The
	// resulting parent-pointer tree is what wheel dispatch walks; it is
	// fixed at construction.
	Parent *Container

	XConfig AxisConfig
	YConfig AxisConfig

	// ResizeDelay overrides the debounce quiet period (tests shorten it).
	ResizeDelay time.Duration
}

// Container wraps a viewport plus up to two scroll bars around an inner row
// container, reconciling the inner content's requested size against the
// available outer size on every (debounced) resize.
//
// Apart from the debounce timer, a container belongs to the event-loop
// goroutine.
type Container struct {
	inner  *layout.RowContainer
	parent *Container
	log    *logger.Logger

	xcfg AxisConfig
	ycfg AxisConfig

	vp      viewport.Model
	xOffset int
	raw     string // inner content as last rendered
	rawSize layout.XY

	topLevel layout.XY
	lastSize layout.XY
	sized    bool

	configures int
	debouncer  *Debouncer
}

// NewContainer builds the container and performs the initial scroll-region
// computation from the inner content's requested size.
func NewContainer(cfg ContainerConfig) *Container {
	c := &Container{
		inner:     cfg.Inner,
		parent:    cfg.Parent,
		log:       cfg.Logger.Component("scroll"),
		xcfg:      cfg.XConfig,
		ycfg:      cfg.YConfig,
		vp:        viewport.New(0, 0),
		debouncer: NewDebouncer(cfg.ResizeDelay),
	}
	c.RefreshScrollRegion()
	return c
}

// Inner returns the wrapped row container.
func (c *Container) Inner() *layout.RowContainer { return c.inner }

// Parent returns the enclosing scrollable container, or nil at the root.
func (c *Container) Parent() *Container { return c.parent }

// ConfigureCalls returns how many times the viewport was actually
// re-configured. Resize events that compute an unchanged bounding box do not
// count.
func (c *Container) ConfigureCalls() int { return c.configures }

// Resize records a new top-level size and schedules a debounced
// scroll-region recomputation. The done callback, when non-nil, runs after
// the recomputation; event-loop integrations use it to hand the refresh back
// to the loop.
func (c *Container) Resize(topLevel layout.XY, done func()) {
	c.topLevel = topLevel
	c.debouncer.Trigger(func() {
		c.RefreshScrollRegion()
		if done != nil {
			done()
		}
	})
}

// RefreshScrollRegion recomputes the viewport's bounding box from the inner
// content's requested size and the per-axis target-size rules. When the box
// matches the last configured one the call is a no-op.
func (c *Container) RefreshScrollRegion() {
	req := c.inner.Requested()
	size := layout.XY{
		X: c.xcfg.TargetSize(req.X, c.topLevel.X),
		Y: c.ycfg.TargetSize(req.Y, c.topLevel.Y),
	}
	if c.sized && size == c.lastSize {
		return
	}

	c.log.Debugf("scroll region %dx%d (requested %dx%d)", size.X, size.Y, req.X, req.Y)
	c.vp.Width = size.X
	c.vp.Height = size.Y
	if c.xcfg.Fill {
		c.inner.SetWidth(size.X)
	}
	c.refreshContent()
	c.lastSize = size
	c.sized = true
	c.configures++
}

// Stop cancels any pending debounced resize.
func (c *Container) Stop() { c.debouncer.Stop() }

// InvalidateContent re-renders the inner content without touching the
// bounding box, for content changes that do not alter geometry.
func (c *Container) InvalidateContent() {
	c.refreshContent()
}

func (c *Container) refreshContent() {
	c.raw = c.inner.View()
	lines := strings.Split(c.raw, "\n")
	c.rawSize = layout.XY{Y: len(lines)}
	for _, line := range lines {
		if w := lipgloss.Width(line); w > c.rawSize.X {
			c.rawSize.X = w
		}
	}
	c.clampX()
	c.vp.SetContent(c.visibleContent(lines))
}

// visibleContent applies the horizontal offset; vertical windowing is the
// viewport's job.
func (c *Container) visibleContent(lines []string) string {
	if c.xOffset == 0 {
		return c.raw
	}
	cut := make([]string, len(lines))
	for i, line := range lines {
		cut[i] = ansi.Cut(line, c.xOffset, c.xOffset+c.vp.Width)
	}
	return strings.Join(cut, "\n")
}

func (c *Container) clampX() {
	max := c.rawSize.X - c.vp.Width
	if max < 0 {
		max = 0
	}
	if c.xOffset > max {
		c.xOffset = max
	}
	if c.xOffset < 0 {
		c.xOffset = 0
	}
}

// View returns the span of the axis currently visible, as fractions of the
// content extent. A bar whose view spans (0, 1) is degenerate: there is
// nothing to scroll.
func (c *Container) View(axis Axis) (lo, hi float64) {
	var offset, visible, total int
	if axis == AxisX {
		offset, visible, total = c.xOffset, c.vp.Width, c.rawSize.X
	} else {
		offset, visible, total = c.vp.YOffset, c.vp.Height, c.rawSize.Y
	}
	if total <= 0 || visible >= total {
		return 0, 1
	}
	lo = float64(offset) / float64(total)
	hi = float64(offset+visible) / float64(total)
	if hi > 1 {
		hi = 1
	}
	return lo, hi
}

// BarActive reports whether the axis has a configured, non-degenerate
// scroll bar.
func (c *Container) BarActive(axis Axis) bool {
	cfg := c.xcfg
	if axis == AxisY {
		cfg = c.ycfg
	}
	if !cfg.Scroll {
		return false
	}
	lo, hi := c.View(axis)
	return !(lo == 0 && hi == 1)
}

// Scroll moves the axis by one configured wheel step.
func (c *Container) Scroll(axis Axis, positive bool) {
	if axis == AxisX {
		c.xOffset += c.xcfg.StepCells(positive, c.vp.Width)
		c.clampX()
		c.vp.SetContent(c.visibleContent(strings.Split(c.raw, "\n")))
		return
	}
	delta := c.ycfg.StepCells(positive, c.vp.Height)
	if delta > 0 {
		c.vp.LineDown(delta)
	} else {
		c.vp.LineUp(-delta)
	}
}

// Dispatch walks the region tree from start toward the root and returns the
// nearest container with an active bar for the axis, or nil. Degenerate
// inner regions pass the event through to an enclosing region. The caller
// delivers the step to the result, so one event moves one step.
func Dispatch(start *Container, axis Axis) *Container {
	for c := start; c != nil; c = c.parent {
		if c.BarActive(axis) {
			return c
		}
	}
	return nil
}

// Render returns the viewport content framed by its scroll bars, styled from
// the container's style.
func (c *Container) Render() string {
	view := c.vp.View()
	style := c.inner.Style()

	if c.ycfg.Scroll {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, c.renderBar(AxisY, style))
	}
	if c.xcfg.Scroll {
		view = lipgloss.JoinVertical(lipgloss.Left, view, c.renderBar(AxisX, style))
	}
	return view
}

func (c *Container) renderBar(axis Axis, style *styles.Style) string {
	extent := c.vp.Height
	if axis == AxisX {
		extent = c.vp.Width
	}
	if extent <= 0 {
		return ""
	}

	lo, hi := c.View(axis)
	from := int(lo * float64(extent))
	to := int(hi*float64(extent) + 0.5)
	if to <= from {
		to = from + 1
	}
	if to > extent {
		to = extent
	}

	barStyle := lipgloss.NewStyle()
	troughStyle := lipgloss.NewStyle()
	if bg := style.BG(styles.RoleScroll, styles.StateDefault); bg != "" {
		barStyle = barStyle.Foreground(bg.Lipgloss())
	}
	if trough := style.TroughColor(styles.RoleScroll, styles.StateDefault); trough != "" {
		troughStyle = troughStyle.Foreground(trough.Lipgloss())
	}

	cells := make([]string, extent)
	for i := range cells {
		if i >= from && i < to {
			cells[i] = barStyle.Render("█")
		} else {
			cells[i] = troughStyle.Render("░")
		}
	}
	if axis == AxisX {
		return strings.Join(cells, "")
	}
	return strings.Join(cells, "\n")
}
