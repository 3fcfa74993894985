// Package scroll provides scrollable viewport containers: per-axis scroll
// configuration, debounced resize handling, styled scroll bars, and wheel
// dispatch through an explicit region tree.
package scroll

import (
	"fmt"
)

// Axis selects the horizontal or vertical scroll dimension.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Unit names what one scroll step moves by.
type Unit string

const (
	UnitUnits  Unit = "units"  // one unit is one cell row/column
	UnitPages  Unit = "pages"  // one page is 9/10 of the viewport extent
	UnitPixels Unit = "pixels" // treated as units in cell terms
)

// defaultSizeDivs holds the per-axis shrink divisor applied to a scrollable
// region's requested size before the first layout pass. Requested sizes are
// frequently taller than any sensible window, so the initial y extent is
// halved.
var defaultSizeDivs = map[Axis]float64{AxisX: 1, AxisY: 2}

const defaultScrollAmount = 4

// AxisConfig is one axis's scroll configuration. It is immutable after
// construction; TargetSize is the only part consulted repeatedly (on every
// resize).
type AxisConfig struct {
	Axis    Axis
	Scroll  bool
	Amount  int
	What    Unit
	Fill    bool
	sizeDiv float64
}

// NewAxisConfig returns the default configuration for axis: scrolling off,
// 4-unit steps, per-axis size divisor.
func NewAxisConfig(axis Axis) AxisConfig {
	return AxisConfig{Axis: axis, Amount: defaultScrollAmount, What: UnitUnits}
}

// AxisConfigFromSettings builds a config from axis-suffixed setting keys
// ("scroll_y", "fill_x", "scroll_y_div", "scroll_y_amount", "scroll_y_what").
// Unknown keys are ignored so one settings map can carry both axes.
func AxisConfigFromSettings(axis Axis, settings map[string]any) (AxisConfig, error) {
	cfg := NewAxisConfig(axis)
	for key, value := range settings {
		var err error
		switch key {
		case fmt.Sprintf("scroll_%s", axis):
			cfg.Scroll, err = asBool(value)
		case fmt.Sprintf("fill_%s", axis):
			cfg.Fill, err = asBool(value)
		case fmt.Sprintf("scroll_%s_div", axis):
			cfg.sizeDiv, err = asFloat(value)
			if err == nil && cfg.sizeDiv < 0 {
				err = fmt.Errorf("negative size divisor %v", cfg.sizeDiv)
			}
		case fmt.Sprintf("scroll_%s_amount", axis), fmt.Sprintf("amount_%s", axis):
			cfg.Amount, err = asInt(value)
		case fmt.Sprintf("scroll_%s_what", axis), fmt.Sprintf("what_%s", axis):
			cfg.What, err = asUnit(value)
		default:
			continue
		}
		if err != nil {
			return AxisConfig{}, fmt.Errorf("scroll setting %q: %w", key, err)
		}
	}
	return cfg, nil
}

// SizeDiv returns the configured size divisor, or the axis default.
func (c AxisConfig) SizeDiv() float64 {
	if c.sizeDiv != 0 {
		return c.sizeDiv
	}
	return defaultSizeDivs[c.Axis]
}

// TargetSize reconciles the inner content's requested extent against the
// top-level extent along this axis. A fill axis stretches to the top-level
// size regardless of content; otherwise the requested size is shrunk by the
// size divisor for a sane first paint.
func (c AxisConfig) TargetSize(requested, topLevel int) int {
	if c.Fill {
		return topLevel
	}
	return int(float64(requested) / c.SizeDiv())
}

// StepCells converts one wheel step into a cell delta for a viewport of the
// given extent. The sign follows positive.
func (c AxisConfig) StepCells(positive bool, extent int) int {
	amount := c.Amount
	switch c.What {
	case UnitPages:
		page := extent * 9 / 10
		if page < 1 {
			page = 1
		}
		amount *= page
	default:
		// units and pixels both move whole cells
	}
	if !positive {
		amount = -amount
	}
	return amount
}

func asBool(value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T", value)
	}
	return b, nil
}

func asInt(value any) (int, error) {
	switch n := value.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("expected int, got %T", value)
}

func asFloat(value any) (float64, error) {
	switch n := value.(type) {
	case int:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("expected number, got %T", value)
}

func asUnit(value any) (Unit, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", value)
	}
	switch Unit(s) {
	case UnitUnits, UnitPages, UnitPixels:
		return Unit(s), nil
	}
	return "", fmt.Errorf("unknown scroll unit %q", s)
}
