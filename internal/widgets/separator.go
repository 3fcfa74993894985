package widgets

import (
	"strings"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// Separator is a thin rule between rows or elements.
type Separator struct {
	base
	vertical bool
	span     int
}

// NewSeparator creates a horizontal rule spanning the given number of
// cells.
func NewSeparator(span int, opts ...Option) *Separator {
	if span < 1 {
		span = 1
	}
	return &Separator{base: newBase("separator", styles.RoleSeparator, opts), span: span}
}

// NewVSeparator creates a vertical rule spanning the given number of rows.
func NewVSeparator(span int, opts ...Option) *Separator {
	s := NewSeparator(span, opts...)
	s.vertical = true
	return s
}

// View renders the rule.
func (s *Separator) View() string {
	if s.vertical {
		return s.render(strings.TrimSuffix(strings.Repeat("│\n", s.span), "\n"))
	}
	return s.render(strings.Repeat("─", s.span))
}

// Requested returns the rule's size.
func (s *Separator) Requested() layout.XY {
	if s.vertical {
		return layout.XY{X: 1, Y: s.span}
	}
	return layout.XY{X: s.span, Y: 1}
}
