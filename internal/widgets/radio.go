package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

const (
	selectedDot   = "(o)"
	unselectedDot = "( )"
)

// RadioGroup ties radio widgets into a mutually exclusive selection. Groups
// are built explicitly; radios join the group they were created from.
type RadioGroup struct {
	name     string
	radios   []*Radio
	selected int
	onSelect func(index int, value string)
}

// NewRadioGroup creates an empty group with nothing selected.
func NewRadioGroup(name string, onSelect func(index int, value string)) *RadioGroup {
	return &RadioGroup{name: name, selected: -1, onSelect: onSelect}
}

// Name returns the group name.
func (g *RadioGroup) Name() string { return g.name }

// Radio creates a radio widget belonging to this group.
func (g *RadioGroup) Radio(label string, opts ...Option) *Radio {
	r := &Radio{
		base:  newBase("radio", styles.RoleRadio, opts),
		label: label,
		group: g,
		index: len(g.radios),
	}
	g.radios = append(g.radios, r)
	return r
}

// Selected returns the selected radio's index and label, or (-1, "") when
// nothing is selected.
func (g *RadioGroup) Selected() (int, string) {
	if g.selected < 0 {
		return -1, ""
	}
	return g.selected, g.radios[g.selected].label
}

// Select makes the radio at index the group's selection. Out-of-range
// indexes are ignored.
func (g *RadioGroup) Select(index int) {
	if index < 0 || index >= len(g.radios) || index == g.selected {
		return
	}
	g.selected = index
	if g.onSelect != nil {
		g.onSelect(index, g.radios[index].label)
	}
}

// Radio is one choice within a RadioGroup.
type Radio struct {
	base
	label string
	group *RadioGroup
	index int
}

// Group returns the owning group.
func (r *Radio) Group() *RadioGroup { return r.group }

// Selected reports whether this radio is the group's selection.
func (r *Radio) Selected() bool { return r.group.selected == r.index }

// Select makes this radio the group's selection. Disabled radios ignore
// selection.
func (r *Radio) Select() {
	if r.disabled {
		return
	}
	r.group.Select(r.index)
}

func (r *Radio) text() string {
	dot := unselectedDot
	if r.Selected() {
		dot = selectedDot
	}
	if r.label == "" {
		return dot
	}
	return dot + " " + r.label
}

// View renders the dot and label.
func (r *Radio) View() string { return r.render(r.text()) }

// Requested returns the natural size of the dot and label.
func (r *Radio) Requested() layout.XY {
	return layout.XY{X: lipgloss.Width(r.text()), Y: 1}
}
