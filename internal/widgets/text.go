package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// Text is a styled text block.
type Text struct {
	base
	text string
}

// NewText creates a text widget.
func NewText(text string, opts ...Option) *Text {
	return &Text{base: newBase("text", styles.RoleText, opts), text: text}
}

// Value returns the current text.
func (t *Text) Value() string { return t.text }

// SetText replaces the text.
func (t *Text) SetText(text string) { t.text = text }

// View renders the text with the resolved (role, state) layer.
func (t *Text) View() string { return t.render(t.text) }

// Requested returns the text's natural size in cells.
func (t *Text) Requested() layout.XY {
	return layout.XY{X: lipgloss.Width(t.text), Y: lipgloss.Height(t.text)}
}

// Link is text styled with the link role that carries a target URL.
type Link struct {
	Text
	url string
}

// NewLink creates a link widget.
func NewLink(text, url string, opts ...Option) *Link {
	l := &Link{url: url}
	l.Text = Text{base: newBase("link", styles.RoleLink, opts), text: text}
	return l
}

// URL returns the link target.
func (l *Link) URL() string { return l.url }
