package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// Button is a clickable label drawn with the button role's border and
// colors.
type Button struct {
	base
	label   string
	onClick func()
}

// NewButton creates a button. The callback runs on Click unless the button
// is disabled.
func NewButton(label string, onClick func(), opts ...Option) *Button {
	return &Button{base: newBase("button", styles.RoleButton, opts), label: label, onClick: onClick}
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// Click invokes the callback. Disabled buttons swallow clicks.
func (b *Button) Click() {
	if b.disabled || b.onClick == nil {
		return
	}
	b.onClick()
}

// relief returns the resolved edge treatment, defaulting to raised when the
// style does not configure one.
func (b *Button) relief() styles.Relief {
	if s := b.style(); s != nil {
		if r := s.Relief(b.role, b.State()); r != "" {
			return r
		}
	}
	return styles.ReliefRaised
}

// View renders the bordered label.
func (b *Button) View() string {
	st := lipgloss.NewStyle()
	if s := b.style(); s != nil {
		st = s.Render(b.role, b.State())
	}
	return st.Padding(0, 1).Border(b.relief().Border()).Render(b.label)
}

// Requested returns the label size plus padding and border frame.
func (b *Button) Requested() layout.XY {
	frame := 0
	if b.relief().Border().Top != "" {
		frame = 2
	}
	return layout.XY{X: lipgloss.Width(b.label) + 2 + frame, Y: lipgloss.Height(b.label) + frame}
}
