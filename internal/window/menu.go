package window

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/styles"
)

// MenuItem is one entry in a menu. A separator item has an empty label and
// no action.
type MenuItem struct {
	Label  string
	Action func()
}

// Menu is an explicitly built item list with a cursor. Menus are assembled
// with the builder methods rather than by any ambient grouping; what you
// add is what shows.
type Menu struct {
	name   string
	items  []MenuItem
	cursor int
}

// NewMenu creates an empty menu.
func NewMenu(name string) *Menu {
	return &Menu{name: name}
}

// Name returns the menu name.
func (m *Menu) Name() string { return m.name }

// Add appends an item and returns the menu for chaining.
func (m *Menu) Add(label string, action func()) *Menu {
	m.items = append(m.items, MenuItem{Label: label, Action: action})
	return m
}

// AddSeparator appends a separator line.
func (m *Menu) AddSeparator() *Menu {
	m.items = append(m.items, MenuItem{})
	return m
}

// Len returns the item count, separators included.
func (m *Menu) Len() int { return len(m.items) }

// Cursor returns the highlighted item's index.
func (m *Menu) Cursor() int { return m.cursor }

// Next moves the cursor down, skipping separators and stopping at the end.
func (m *Menu) Next() {
	for i := m.cursor + 1; i < len(m.items); i++ {
		if m.items[i].Label != "" {
			m.cursor = i
			return
		}
	}
}

// Prev moves the cursor up, skipping separators and stopping at the start.
func (m *Menu) Prev() {
	for i := m.cursor - 1; i >= 0; i-- {
		if m.items[i].Label != "" {
			m.cursor = i
			return
		}
	}
}

// Invoke runs the highlighted item's action.
func (m *Menu) Invoke() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return
	}
	if action := m.items[m.cursor].Action; action != nil {
		action()
	}
}

// Render draws the menu with the menu role, highlighting the cursor line
// with the selected role.
func (m *Menu) Render(style *styles.Style) string {
	width := 0
	for _, item := range m.items {
		if w := lipgloss.Width(item.Label); w > width {
			width = w
		}
	}

	item := style.Render(styles.RoleMenu, styles.StateDefault).Width(width + 2).Padding(0, 1)
	selected := style.Render(styles.RoleSelected, styles.StateHighlight).Width(width + 2).Padding(0, 1)

	lines := make([]string, 0, len(m.items))
	for i, it := range m.items {
		switch {
		case it.Label == "":
			lines = append(lines, item.Render(repeatRune('─', width)))
		case i == m.cursor:
			lines = append(lines, selected.Render(it.Label))
		default:
			lines = append(lines, item.Render(it.Label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func repeatRune(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
