package layout

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/styles"
)

// Row owns an ordered sequence of elements plus its geometry directives.
// Unset directives inherit the container defaults; unset expand/fill derive
// from the anchor at pack time.
//
// A row is one-way: unpacked until Pack, packed for the rest of its life.
// Changing a packed row's content requires discarding it and declaring a
// replacement.
type Row struct {
	parent   *RowContainer
	num      int
	elements []Element

	anchor Anchor
	expand *bool
	fill   Fill

	packed bool
}

// RowOption adjusts one row's geometry directives before packing.
type RowOption func(*Row)

// WithAnchor sets the row's anchor.
func WithAnchor(anchor Anchor) RowOption {
	return func(r *Row) { r.anchor = anchor }
}

// WithExpand sets the row's expand directive explicitly.
func WithExpand(expand bool) RowOption {
	return func(r *Row) { r.expand = &expand }
}

// WithFill sets the row's fill directive explicitly.
func WithFill(fill Fill) RowOption {
	return func(r *Row) { r.fill = fill }
}

// Container returns the row's owning container.
func (r *Row) Container() *RowContainer { return r.parent }

// Num returns the row's position within its container.
func (r *Row) Num() int { return r.num }

// Elements returns the row's elements in declaration order.
func (r *Row) Elements() []Element { return r.elements }

// Packed reports whether the row has been packed.
func (r *Row) Packed() bool { return r.packed }

// Style returns the effective style, inherited from the container.
func (r *Row) Style() *styles.Style { return r.parent.style }

// Padding returns the effective per-element padding, inherited from the
// container.
func (r *Row) Padding() XY { return r.parent.elementPadding }

// ElementSize returns the container's default element size, if one was set.
func (r *Row) ElementSize() (XY, bool) {
	return r.parent.elementSize, r.parent.hasElementSize
}

// Anchor returns the effective anchor, inherited from the container when
// unset on the row.
func (r *Row) Anchor() Anchor {
	if r.anchor != AnchorNone {
		return r.anchor
	}
	return r.parent.anchorElements
}

// Geometry returns the effective (anchor, expand, fill) triple the pack call
// will use.
func (r *Row) Geometry() (Anchor, bool, Fill) {
	anchor := r.Anchor()
	expand, fill := deriveGeometry(anchor, r.expand, r.fill)
	return anchor, expand, fill
}

// Pack materializes the row: every element is packed in declaration order
// and registered with the container's element index. Packing twice is a
// programming error.
func (r *Row) Pack() error {
	if r.packed {
		return fmt.Errorf("row %d is already packed", r.num)
	}
	for i, element := range r.elements {
		if err := element.PackInto(r, i); err != nil {
			return fmt.Errorf("packing element %d of row %d: %w", i, r.num, err)
		}
		if err := r.parent.registerElement(element); err != nil {
			return err
		}
	}
	r.packed = true
	return nil
}

// Requested returns the row's natural size: element widths plus inter-element
// padding along x, the tallest element plus padding along y.
func (r *Row) Requested() XY {
	pad := r.Padding()
	var size XY
	for i, element := range r.elements {
		req := element.Requested()
		size.X += req.X
		if i > 0 {
			size.X += pad.X
		}
		if req.Y > size.Y {
			size.Y = req.Y
		}
	}
	size.Y += 2 * pad.Y
	return size
}

// View renders the row into a frame of the given width. Element views are
// joined along the packing side; the anchor positions the result, and a
// filling row stretches its frame to the full width.
func (r *Row) View(width int) string {
	views := make([]string, 0, len(r.elements))
	for _, element := range r.elements {
		views = append(views, element.View())
	}

	pad := r.Padding()
	var content string
	switch r.parent.elementSide {
	case SideTop, SideBottom:
		if r.parent.elementSide == SideBottom {
			reverse(views)
		}
		content = lipgloss.JoinVertical(lipgloss.Left, views...)
	default:
		if r.parent.elementSide == SideRight {
			reverse(views)
		}
		content = lipgloss.JoinHorizontal(lipgloss.Center, spaced(views, pad.X)...)
	}

	frame := lipgloss.NewStyle().Padding(pad.Y, 0)
	if bg := r.Style().BG(styles.RoleBase, styles.StateDefault); bg != "" {
		frame = frame.Background(bg.Lipgloss())
	}

	anchor, _, fill := r.Geometry()
	if width > lipgloss.Width(content) && (fill == FillX || fill == FillBoth || !anchor.IsCenter()) {
		content = lipgloss.PlaceHorizontal(width, anchor.horizontal(), content)
	}
	return frame.Render(content)
}

func reverse(views []string) {
	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}
}

func spaced(views []string, gap int) []string {
	if gap <= 0 || len(views) < 2 {
		return views
	}
	pad := lipgloss.NewStyle().MarginLeft(gap)
	out := make([]string, len(views))
	out[0] = views[0]
	for i := 1; i < len(views); i++ {
		out[i] = pad.Render(views[i])
	}
	return out
}
