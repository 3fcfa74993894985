package layout

import "github.com/glintlabs/glint/internal/styles"

// Element is anything a row can pack. Implementations live in the widgets
// package; the layout engine needs only identity, a one-time pack hook, a
// rendered view, and the element's natural size.
//
// PackInto is called exactly once, when the owning row packs. It receives
// the row so the element can resolve inherited style and sizing defaults.
type Element interface {
	ID() string
	PackInto(row *Row, index int) error
	View() string
	Requested() XY
}

// StateAware is implemented by elements whose rendering varies with the
// widget state (disabled, invalid, and so on).
type StateAware interface {
	State() styles.State
}
