package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAxisConfigDefaults(t *testing.T) {
	t.Parallel()

	x := NewAxisConfig(AxisX)
	require.False(t, x.Scroll)
	require.False(t, x.Fill)
	require.Equal(t, 4, x.Amount)
	require.Equal(t, UnitUnits, x.What)
	require.Equal(t, 1.0, x.SizeDiv())

	y := NewAxisConfig(AxisY)
	require.Equal(t, 2.0, y.SizeDiv())
}

func TestAxisConfigFromSettings(t *testing.T) {
	t.Parallel()

	settings := map[string]any{
		"scroll_y":        true,
		"scroll_y_div":    1.5,
		"scroll_y_amount": 2,
		"scroll_y_what":   "pages",
		"fill_x":          true,
		"scroll_x":        false,
	}

	y, err := AxisConfigFromSettings(AxisY, settings)
	require.NoError(t, err)
	require.True(t, y.Scroll)
	require.False(t, y.Fill)
	require.Equal(t, 2, y.Amount)
	require.Equal(t, UnitPages, y.What)
	require.Equal(t, 1.5, y.SizeDiv())

	// The same settings map serves the other axis; y keys are ignored.
	x, err := AxisConfigFromSettings(AxisX, settings)
	require.NoError(t, err)
	require.False(t, x.Scroll)
	require.True(t, x.Fill)
	require.Equal(t, 4, x.Amount)
}

func TestAxisConfigFromSettingsErrors(t *testing.T) {
	t.Parallel()

	_, err := AxisConfigFromSettings(AxisY, map[string]any{"scroll_y": "yes"})
	require.Error(t, err)

	_, err = AxisConfigFromSettings(AxisY, map[string]any{"scroll_y_what": "lines"})
	require.Error(t, err)

	_, err = AxisConfigFromSettings(AxisY, map[string]any{"scroll_y_div": -1})
	require.Error(t, err)
}

func TestTargetSize(t *testing.T) {
	t.Parallel()

	y := NewAxisConfig(AxisY)
	require.Equal(t, 50, y.TargetSize(100, 40), "non-fill halves the requested size")

	y.Fill = true
	require.Equal(t, 40, y.TargetSize(100, 40), "fill stretches to the top-level size")

	x := NewAxisConfig(AxisX)
	require.Equal(t, 100, x.TargetSize(100, 40), "x divisor defaults to 1")
}

func TestStepCells(t *testing.T) {
	t.Parallel()

	cfg := NewAxisConfig(AxisY)
	require.Equal(t, 4, cfg.StepCells(true, 30))
	require.Equal(t, -4, cfg.StepCells(false, 30))

	cfg.What = UnitPages
	cfg.Amount = 1
	require.Equal(t, 27, cfg.StepCells(true, 30), "one page is 9/10 of the extent")

	cfg.What = UnitPixels
	cfg.Amount = 3
	require.Equal(t, 3, cfg.StepCells(true, 30), "pixels move whole cells")
}
