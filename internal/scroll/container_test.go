package scroll

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

type block struct {
	id string
	w  int
	h  int
}

func (b block) ID() string { return b.id }

func (b block) PackInto(*layout.Row, int) error { return nil }

func (b block) Requested() layout.XY { return layout.XY{X: b.w, Y: b.h} }

func (b block) View() string {
	line := strings.Repeat("x", b.w)
	lines := make([]string, b.h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func newInner(t *testing.T, w, h int) *layout.RowContainer {
	t.Helper()
	inner, err := layout.NewContainer(
		layout.ContainerConfig{Registry: styles.NewRegistry()},
		layout.Layout{{block{id: "content", w: w, h: h}}},
	)
	require.NoError(t, err)
	require.NoError(t, inner.PackRows())
	return inner
}

func scrollable(axis Axis) AxisConfig {
	cfg := NewAxisConfig(axis)
	cfg.Scroll = true
	return cfg
}

func TestRefreshScrollRegionNoOp(t *testing.T) {
	t.Parallel()

	c := NewContainer(ContainerConfig{
		Inner:   newInner(t, 10, 40),
		XConfig: NewAxisConfig(AxisX),
		YConfig: scrollable(AxisY),
	})
	require.Equal(t, 1, c.ConfigureCalls(), "construction configures once")

	// No content change: recomputation short-circuits on box equality.
	c.RefreshScrollRegion()
	c.RefreshScrollRegion()
	require.Equal(t, 1, c.ConfigureCalls())
}

func TestRefreshScrollRegionTargetSizes(t *testing.T) {
	t.Parallel()

	c := NewContainer(ContainerConfig{
		Inner:   newInner(t, 10, 40),
		XConfig: NewAxisConfig(AxisX),
		YConfig: scrollable(AxisY),
	})

	// y requested 40 over the default y divisor of 2; x requested verbatim.
	require.Equal(t, layout.XY{X: 10, Y: 20}, c.lastSize)
}

func TestResizeReconfiguresOnlyOnChange(t *testing.T) {
	t.Parallel()

	ycfg := scrollable(AxisY)
	ycfg.Fill = true
	c := NewContainer(ContainerConfig{
		Inner:       newInner(t, 10, 40),
		XConfig:     NewAxisConfig(AxisX),
		YConfig:     ycfg,
		ResizeDelay: 5 * time.Millisecond,
	})
	base := c.ConfigureCalls()

	done := make(chan struct{}, 8)
	// A burst of resize events with the same final size coalesces into one
	// recomputation and one configure call.
	for i := 0; i < 5; i++ {
		c.Resize(layout.XY{X: 80, Y: 24}, func() { done <- struct{}{} })
	}
	<-done
	require.Equal(t, base+1, c.ConfigureCalls())
	require.Equal(t, 24, c.lastSize.Y, "fill axis takes the top-level extent")

	// Same size again: recomputation runs but configures nothing.
	c.Resize(layout.XY{X: 80, Y: 24}, func() { done <- struct{}{} })
	<-done
	require.Equal(t, base+1, c.ConfigureCalls())

	// A different size reconfigures.
	c.Resize(layout.XY{X: 80, Y: 30}, func() { done <- struct{}{} })
	<-done
	require.Equal(t, base+2, c.ConfigureCalls())
	require.Equal(t, 30, c.lastSize.Y)
}

func TestBarActivity(t *testing.T) {
	t.Parallel()

	c := NewContainer(ContainerConfig{
		Inner:   newInner(t, 10, 40),
		XConfig: NewAxisConfig(AxisX),
		YConfig: scrollable(AxisY),
	})

	lo, hi := c.View(AxisY)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 0.5, hi)
	require.True(t, c.BarActive(AxisY))

	// x content fits exactly: the view spans (0, 1), so even a configured
	// x bar would be degenerate.
	lo, hi = c.View(AxisX)
	require.Equal(t, 0.0, lo)
	require.Equal(t, 1.0, hi)
	require.False(t, c.BarActive(AxisX))
}

func TestScrollMovesAndClamps(t *testing.T) {
	t.Parallel()

	c := NewContainer(ContainerConfig{
		Inner:   newInner(t, 10, 40),
		XConfig: NewAxisConfig(AxisX),
		YConfig: scrollable(AxisY),
	})

	c.Scroll(AxisY, true)
	lo, _ := c.View(AxisY)
	require.Equal(t, 0.1, lo, "one step is 4 of 40 lines")

	// Scrolling back past the top clamps at 0.
	c.Scroll(AxisY, false)
	c.Scroll(AxisY, false)
	lo, _ = c.View(AxisY)
	require.Equal(t, 0.0, lo)
}

func TestDispatchPassesThroughDegenerateBars(t *testing.T) {
	t.Parallel()

	outer := NewContainer(ContainerConfig{
		Inner:   newInner(t, 10, 40),
		XConfig: NewAxisConfig(AxisX),
		YConfig: scrollable(AxisY),
	})

	// The inner region's content fits its viewport, so its y bar is
	// degenerate even though scrolling is enabled.
	innerRC, err := layout.NewContainer(
		layout.ContainerConfig{Registry: styles.NewRegistry()},
		layout.Layout{{block{id: "small", w: 5, h: 2}}},
	)
	require.NoError(t, err)
	require.NoError(t, innerRC.PackRows())
	innerY, err := AxisConfigFromSettings(AxisY, map[string]any{"scroll_y": true, "scroll_y_div": 1})
	require.NoError(t, err)
	inner := NewContainer(ContainerConfig{
		Inner:   innerRC,
		Parent:  outer,
		XConfig: NewAxisConfig(AxisX),
		YConfig: innerY,
	})

	target := Dispatch(inner, AxisY)
	require.Same(t, outer, target)

	// Locating the target does not move it; delivery is the caller's step.
	lo, _ := outer.View(AxisY)
	require.Equal(t, 0.0, lo)
	target.Scroll(AxisY, true)
	lo, _ = outer.View(AxisY)
	require.Greater(t, lo, 0.0, "the outer region scrolled")

	// No enclosing region can take the x event.
	require.Nil(t, Dispatch(inner, AxisX))
}

func TestRenderIncludesScrollBar(t *testing.T) {
	t.Parallel()

	c := NewContainer(ContainerConfig{
		Inner:   newInner(t, 10, 40),
		XConfig: NewAxisConfig(AxisX),
		YConfig: scrollable(AxisY),
	})

	view := c.Render()
	require.Contains(t, view, "█")
	require.Contains(t, view, "░")
	require.Contains(t, view, "x")
}
