// Package widgets provides the element implementations the layout engine
// packs: thin wrappers that resolve a style layer, configure a bubbles or
// lipgloss primitive, and render it.
package widgets

import (
	"fmt"
	"sync/atomic"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// widgetCount feeds generated widget ids.
var widgetCount atomic.Int64

// Option adjusts a widget's shared knobs at construction.
type Option func(*base)

// WithID overrides the generated widget id. Ids must be unique within a
// container.
func WithID(id string) Option {
	return func(b *base) { b.id = id }
}

// WithRole overrides the widget's default style role.
func WithRole(role styles.Role) Option {
	return func(b *base) { b.role = role }
}

// Disabled constructs the widget in the disabled state.
func Disabled() Option {
	return func(b *base) { b.disabled = true }
}

// base carries the identity, pack, and state plumbing every widget shares.
type base struct {
	id    string
	role  styles.Role
	row   *layout.Row
	index int

	disabled bool
	invalid  bool
	focused  bool
}

func newBase(kind string, role styles.Role, opts []Option) base {
	b := base{id: fmt.Sprintf("%s#%d", kind, widgetCount.Add(1)), role: role}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// ID returns the widget's id.
func (b *base) ID() string { return b.id }

// Role returns the widget's style role.
func (b *base) Role() styles.Role { return b.role }

// PackInto records the owning row. Widgets pack exactly once.
func (b *base) PackInto(row *layout.Row, index int) error {
	if b.row != nil {
		return fmt.Errorf("widget %s is already packed", b.id)
	}
	b.row = row
	b.index = index
	return nil
}

// Packed reports whether the widget has been packed into a row.
func (b *base) Packed() bool { return b.row != nil }

// Row returns the owning row, nil before packing.
func (b *base) Row() *layout.Row { return b.row }

// State returns the widget state the style resolver should use. Disabled
// wins over invalid, invalid over active.
func (b *base) State() styles.State {
	switch {
	case b.disabled:
		return styles.StateDisabled
	case b.invalid:
		return styles.StateInvalid
	case b.focused:
		return styles.StateActive
	}
	return styles.StateDefault
}

// Disable puts the widget in the disabled state.
func (b *base) Disable() { b.disabled = true }

// Enable clears the disabled state.
func (b *base) Enable() { b.disabled = false }

// Disabled reports whether the widget is disabled.
func (b *base) Disabled() bool { return b.disabled }

// MarkInvalid puts the widget in the invalid state.
func (b *base) MarkInvalid() { b.invalid = true }

// ClearInvalid clears the invalid state.
func (b *base) ClearInvalid() { b.invalid = false }

// Focus puts the widget in the active state.
func (b *base) Focus() { b.focused = true }

// Blur clears the active state.
func (b *base) Blur() { b.focused = false }

// style returns the effective style, nil before packing.
func (b *base) style() *styles.Style {
	if b.row == nil {
		return nil
	}
	return b.row.Style()
}

// render styles text with the widget's (role, state) layer. Before packing
// there is no style to resolve and the text passes through unchanged.
func (b *base) render(text string) string {
	s := b.style()
	if s == nil {
		return text
	}
	return s.Render(b.role, b.State()).Render(text)
}
