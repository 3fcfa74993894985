package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color is a terminal color value in any form lipgloss accepts: a name,
// an ANSI index ("21"), or a hex string ("#1e90ff"). The empty string means
// "unset".
type Color string

// Lipgloss converts the color for use with lipgloss styles.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c)
}

// Font describes the typeface request for a layer. Terminal cells cannot
// change family or point size, so Family and Size are advisory metadata
// (preserved for config round-trips and for future pixel backends) while the
// attribute flags map directly onto cell attributes.
type Font struct {
	Family    string
	Size      int
	Bold      bool
	Italic    bool
	Underline bool
}

// IsZero reports whether the font is entirely unset.
func (f Font) IsZero() bool {
	return f == Font{}
}

// Relief names the edge treatment of an element, mirroring the classic
// desktop toolkit vocabulary. In cell terms each relief selects a border set.
type Relief string

const (
	ReliefFlat   Relief = "flat"
	ReliefRaised Relief = "raised"
	ReliefSunken Relief = "sunken"
	ReliefRidge  Relief = "ridge"
	ReliefGroove Relief = "groove"
	ReliefSolid  Relief = "solid"
)

// Border returns the lipgloss border set for the relief. Flat (and unset)
// reliefs have no border.
func (r Relief) Border() lipgloss.Border {
	switch r {
	case ReliefRaised:
		return lipgloss.ThickBorder()
	case ReliefSunken:
		return lipgloss.RoundedBorder()
	case ReliefRidge, ReliefGroove:
		return lipgloss.DoubleBorder()
	case ReliefSolid:
		return lipgloss.NormalBorder()
	default:
		return lipgloss.Border{}
	}
}

// Attr identifies one of the fixed visual attributes a layer can hold.
type Attr uint8

const (
	AttrFont Attr = iota
	AttrFG
	AttrBG
	AttrBorderWidth
	AttrRelief
	// Scroll bar attributes.
	AttrFrameColor
	AttrTroughColor
	AttrArrowColor
	AttrArrowWidth
	AttrBarWidth

	numAttrs
)

var attrNames = [numAttrs]string{
	"font", "fg", "bg", "border_width", "relief",
	"frame_color", "trough_color", "arrow_color", "arrow_width", "bar_width",
}

func (a Attr) String() string {
	if a < numAttrs {
		return attrNames[a]
	}
	return fmt.Sprintf("Attr(%d)", uint8(a))
}

// ParseAttr converts an attribute name to its Attr value.
func ParseAttr(name string) (Attr, bool) {
	for i, n := range attrNames {
		if n == name {
			return Attr(i), true
		}
	}
	return 0, false
}

func isAttrName(name string) bool {
	_, ok := ParseAttr(name)
	return ok
}
