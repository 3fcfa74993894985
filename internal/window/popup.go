package window

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// Popup is a modal overlay: while one is showing, the window routes keys to
// it and draws it over the base view. Popups stack; only the top one is
// live.
type Popup struct {
	title   string
	content *layout.RowContainer
	onClose func()
}

// NewPopup creates a popup around a packed container.
func NewPopup(title string, content *layout.RowContainer, onClose func()) *Popup {
	return &Popup{title: title, content: content, onClose: onClose}
}

// Title returns the popup title.
func (p *Popup) Title() string { return p.title }

// Content returns the popup's container.
func (p *Popup) Content() *layout.RowContainer { return p.content }

// render draws the framed popup body.
func (p *Popup) render() string {
	style := p.content.Style()
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.FrameColor(styles.RoleFrame, styles.StateDefault).Lipgloss()).
		Padding(0, 1)

	body := p.content.View()
	if p.title != "" {
		title := style.Render(styles.RoleFrame, styles.StateHighlight).Bold(true).Render(p.title)
		body = lipgloss.JoinVertical(lipgloss.Center, title, body)
	}
	return frame.Render(body)
}
