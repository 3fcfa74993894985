package widgets

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// Table is a scrollable data table. The header, cell, and selection colors
// come from the table_header, table, and selected roles.
type Table struct {
	base
	model table.Model
}

// NewTable creates a table with the given columns and rows, showing up to
// height body rows at a time.
func NewTable(columns []table.Column, rows []table.Row, height int, opts ...Option) *Table {
	t := &Table{base: newBase("table", styles.RoleTable, opts)}
	t.model = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	return t
}

// SetRows replaces the table body.
func (t *Table) SetRows(rows []table.Row) { t.model.SetRows(rows) }

// SelectedRow returns the row under the cursor.
func (t *Table) SelectedRow() table.Row { return t.model.SelectedRow() }

// Cursor returns the cursor's row index.
func (t *Table) Cursor() int { return t.model.Cursor() }

// Update feeds an event to the table model. Disabled tables drop events.
func (t *Table) Update(msg tea.Msg) tea.Cmd {
	if t.disabled {
		return nil
	}
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return cmd
}

// applyStyle pushes the resolved role layers onto the table model.
func (t *Table) applyStyle() {
	s := t.style()
	if s == nil {
		return
	}
	state := t.State()
	st := table.DefaultStyles()
	st.Header = st.Header.Inherit(s.Render(styles.RoleTableHeader, state))
	st.Cell = st.Cell.Inherit(s.Render(styles.RoleTable, state))
	st.Selected = st.Selected.Inherit(s.Render(styles.RoleSelected, state))
	t.model.SetStyles(st)
}

// View renders the table.
func (t *Table) View() string {
	t.applyStyle()
	return t.model.View()
}

// Requested returns the summed column widths and the configured height plus
// the header.
func (t *Table) Requested() layout.XY {
	var w int
	for _, col := range t.model.Columns() {
		w += col.Width + 2
	}
	return layout.XY{X: w, Y: t.model.Height() + 1}
}
