package widgets

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// Spinner is an indeterminate busy indicator driven by tick messages.
type Spinner struct {
	base
	model spinner.Model
	label string
}

// NewSpinner creates a spinner with an optional trailing label.
func NewSpinner(label string, opts ...Option) *Spinner {
	s := &Spinner{base: newBase("spinner", styles.RoleImage, opts), label: label}
	s.model = spinner.New(spinner.WithSpinner(spinner.Dot))
	return s
}

// SetFrames replaces the frame set.
func (s *Spinner) SetFrames(frames spinner.Spinner) {
	s.model.Spinner = frames
}

// Tick returns the command that schedules the next frame.
func (s *Spinner) Tick() tea.Cmd { return s.model.Tick }

// Update advances the animation on tick messages.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return cmd
}

// View renders the current frame and label.
func (s *Spinner) View() string {
	if st := s.style(); st != nil {
		s.model.Style = st.Render(s.role, s.State())
	}
	if s.label == "" {
		return s.model.View()
	}
	return s.model.View() + " " + s.render(s.label)
}

// Requested returns the widest frame plus the label.
func (s *Spinner) Requested() layout.XY {
	var widest int
	for _, frame := range s.model.Spinner.Frames {
		if w := lipgloss.Width(frame); w > widest {
			widest = w
		}
	}
	x := widest
	if s.label != "" {
		x += 1 + lipgloss.Width(s.label)
	}
	return layout.XY{X: x, Y: 1}
}
