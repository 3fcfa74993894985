// Package layout provides declarative row/column composition: applications
// declare a grid of elements, rows derive their geometry directives from
// anchors, and containers pack rows in declaration order into a rendered
// view.
package layout

import "github.com/charmbracelet/lipgloss"

// Anchor names where a row's content sits within the container's width.
// Corner anchors pin both axes; edge anchors pin one.
type Anchor string

const (
	AnchorNone        Anchor = ""
	AnchorCenter      Anchor = "center"
	AnchorTop         Anchor = "top"
	AnchorBottom      Anchor = "bottom"
	AnchorLeft        Anchor = "left"
	AnchorRight       Anchor = "right"
	AnchorTopLeft     Anchor = "top_left"
	AnchorTopRight    Anchor = "top_right"
	AnchorBottomLeft  Anchor = "bottom_left"
	AnchorBottomRight Anchor = "bottom_right"
)

// IsCenter reports whether the anchor centers content (an unset anchor
// behaves as center).
func (a Anchor) IsCenter() bool {
	return a == AnchorNone || a == AnchorCenter
}

// horizontal returns the lipgloss horizontal position for the anchor.
func (a Anchor) horizontal() lipgloss.Position {
	switch a {
	case AnchorLeft, AnchorTopLeft, AnchorBottomLeft:
		return lipgloss.Left
	case AnchorRight, AnchorTopRight, AnchorBottomRight:
		return lipgloss.Right
	default:
		return lipgloss.Center
	}
}

// Fill names the axes a row stretches along when granted extra space.
type Fill string

const (
	FillNone Fill = "none"
	FillX    Fill = "x"
	FillY    Fill = "y"
	FillBoth Fill = "both"
)

// Truthy reports whether the fill stretches along at least one axis.
func (f Fill) Truthy() bool {
	return f == FillX || f == FillY || f == FillBoth
}

// Side names which edge of a row elements are packed against.
type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// XY is a width/height (or x-pad/y-pad) pair.
type XY struct {
	X int
	Y int
}

// Layout is the declarative form of a container's content: an ordered
// sequence of rows, each an ordered sequence of elements.
type Layout [][]Element

// deriveGeometry computes the effective (expand, fill) pair for a row from
// its anchor when either directive is unset. A centered row occupies and
// fills all extra space; an edge-anchored row stays put and fills only the
// axis orthogonal to its edge; a corner-anchored row fills nothing. When
// fill alone is given, expand follows it.
func deriveGeometry(anchor Anchor, expand *bool, fill Fill) (bool, Fill) {
	if expand == nil && fill == "" {
		if anchor.IsCenter() {
			return true, FillBoth
		}
		switch anchor {
		case AnchorTop, AnchorBottom:
			return false, FillX
		case AnchorLeft, AnchorRight:
			return false, FillY
		default:
			return false, FillNone
		}
	}
	if fill == "" {
		fill = FillNone
	}
	if expand == nil {
		return fill.Truthy(), fill
	}
	return *expand, fill
}
