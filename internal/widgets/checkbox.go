package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

const (
	checkedBox   = "[x]"
	uncheckedBox = "[ ]"
)

// Checkbox is a toggleable labeled box.
type Checkbox struct {
	base
	label    string
	checked  bool
	onToggle func(checked bool)
}

// NewCheckbox creates a checkbox. The callback runs after every toggle.
func NewCheckbox(label string, onToggle func(bool), opts ...Option) *Checkbox {
	return &Checkbox{base: newBase("checkbox", styles.RoleCheckbox, opts), label: label, onToggle: onToggle}
}

// Checked reports the current value.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the value without firing the callback.
func (c *Checkbox) SetChecked(checked bool) { c.checked = checked }

// Toggle flips the value and fires the callback. Disabled checkboxes ignore
// toggles.
func (c *Checkbox) Toggle() {
	if c.disabled {
		return
	}
	c.checked = !c.checked
	if c.onToggle != nil {
		c.onToggle(c.checked)
	}
}

func (c *Checkbox) text() string {
	box := uncheckedBox
	if c.checked {
		box = checkedBox
	}
	if c.label == "" {
		return box
	}
	return box + " " + c.label
}

// View renders the box and label.
func (c *Checkbox) View() string { return c.render(c.text()) }

// Requested returns the natural size of the box and label.
func (c *Checkbox) Requested() layout.XY {
	return layout.XY{X: lipgloss.Width(c.text()), Y: 1}
}
