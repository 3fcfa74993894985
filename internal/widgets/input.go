package widgets

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// Input is a single-line text entry backed by a textinput model. The style
// layer supplies the text, placeholder, and cursor colors; the insert role
// colors the cursor the way the native toolkit colors the insertion point.
type Input struct {
	base
	model textinput.Model
}

// NewInput creates an input with the given placeholder text.
func NewInput(placeholder string, opts ...Option) *Input {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Prompt = ""
	m.Width = 20
	return &Input{base: newBase("input", styles.RoleInput, opts), model: m}
}

// SetWidth sets the visible width in cells.
func (i *Input) SetWidth(w int) { i.model.Width = w }

// SetCharLimit caps the value length; zero means unlimited.
func (i *Input) SetCharLimit(n int) { i.model.CharLimit = n }

// Value returns the current text.
func (i *Input) Value() string { return i.model.Value() }

// SetValue replaces the current text.
func (i *Input) SetValue(v string) { i.model.SetValue(v) }

// Focus gives the input keyboard focus and starts cursor blinking.
func (i *Input) Focus() tea.Cmd {
	i.base.Focus()
	return i.model.Focus()
}

// Blur removes keyboard focus.
func (i *Input) Blur() {
	i.base.Blur()
	i.model.Blur()
}

// Update feeds an event to the textinput model. Disabled inputs drop
// events.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if i.disabled {
		return nil
	}
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

// applyStyle pushes the resolved layer onto the textinput model.
func (i *Input) applyStyle() {
	s := i.style()
	if s == nil {
		return
	}
	state := i.State()
	i.model.TextStyle = s.Render(i.role, state)
	i.model.PlaceholderStyle = s.Render(i.role, styles.StateDisabled)
	i.model.PromptStyle = i.model.TextStyle
	i.model.Cursor.Style = s.Render(styles.RoleInsert, state)
}

// View renders the input.
func (i *Input) View() string {
	i.applyStyle()
	return i.model.View()
}

// Requested returns the configured width plus the prompt.
func (i *Input) Requested() layout.XY {
	return layout.XY{X: i.model.Width + lipgloss.Width(i.model.Prompt), Y: 1}
}
