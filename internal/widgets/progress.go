package widgets

import (
	"github.com/charmbracelet/bubbles/progress"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/styles"
)

// Progress is a determinate progress bar. Rendering is stateless via
// ViewAs, so the widget needs no animation ticks.
type Progress struct {
	base
	model   progress.Model
	percent float64
}

// NewProgress creates a progress bar of the given width.
func NewProgress(width int, opts ...Option) *Progress {
	p := &Progress{base: newBase("progress", styles.RoleProgress, opts)}
	fill := string(styles.Cyan0)
	p.model = progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return p
}

// Percent returns the current completion in [0, 1].
func (p *Progress) Percent() float64 { return p.percent }

// SetPercent sets the completion, clamped to [0, 1].
func (p *Progress) SetPercent(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.percent = v
}

// View renders the bar at the current completion.
func (p *Progress) View() string {
	if s := p.style(); s != nil {
		if fg := s.FG(p.role, p.State()); fg != "" {
			p.model.FullColor = string(fg)
		}
		if trough := s.TroughColor(p.role, p.State()); trough != "" {
			p.model.EmptyColor = string(trough)
		}
	}
	return p.model.ViewAs(p.percent)
}

// Requested returns the bar's width.
func (p *Progress) Requested() layout.XY {
	return layout.XY{X: p.model.Width, Y: 1}
}
