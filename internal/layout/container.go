package layout

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintlabs/glint/internal/logger"
	"github.com/glintlabs/glint/internal/styles"
	glinterrors "github.com/glintlabs/glint/pkg/errors"
)

// containerCount feeds container ids.
var containerCount atomic.Int64

// ContainerConfig carries a container's style reference and element defaults.
// Zero values fall back to the toolkit defaults (left side packing, centered
// anchor, no padding).
type ContainerConfig struct {
	// Style accepts any style specifier the registry normalizes: nil,
	// a name, a *styles.Style, styles.Settings, or a styles.Spec.
	Style    any
	Registry *styles.Registry
	Logger   *logger.Logger

	AnchorElements Anchor
	ElementSide    Side
	ElementPadding XY
	ElementSize    *XY
}

// RowContainer owns an ordered sequence of rows plus the container-wide
// defaults rows inherit. Rows may be packed incrementally or in bulk; either
// way packing is strictly declaration order.
type RowContainer struct {
	id    int
	style *styles.Style
	log   *logger.Logger

	anchorElements Anchor
	elementSide    Side
	elementPadding XY
	elementSize    XY
	hasElementSize bool

	rows     []*Row
	elements map[string]Element

	width int
}

// NewContainer builds a container from cfg and declares (without packing)
// the given layout.
func NewContainer(cfg ContainerConfig, layout Layout) (*RowContainer, error) {
	reg := cfg.Registry
	if reg == nil {
		reg = styles.NewRegistry()
	}
	style, err := reg.Get(cfg.Style)
	if err != nil {
		return nil, err
	}

	side := cfg.ElementSide
	if side == "" {
		side = SideLeft
	}

	c := &RowContainer{
		id:             int(containerCount.Add(1)),
		style:          style,
		log:            cfg.Logger.Component("layout"),
		anchorElements: cfg.AnchorElements,
		elementSide:    side,
		elementPadding: cfg.ElementPadding,
		elements:       make(map[string]Element),
	}
	if cfg.ElementSize != nil {
		c.elementSize = *cfg.ElementSize
		c.hasElementSize = true
	}

	c.declareRows(layout)
	return c, nil
}

func (c *RowContainer) String() string {
	return fmt.Sprintf("RowContainer[%d]", c.id)
}

// Style returns the container's resolved style.
func (c *RowContainer) Style() *styles.Style { return c.style }

// Rows returns the declared rows in order.
func (c *RowContainer) Rows() []*Row { return c.rows }

// Element returns the packed element registered under id.
func (c *RowContainer) Element(id string) (Element, bool) {
	element, ok := c.elements[id]
	return element, ok
}

func (c *RowContainer) declareRows(layout Layout) {
	for _, elements := range layout {
		c.declareRow(elements)
	}
}

func (c *RowContainer) declareRow(elements []Element, opts ...RowOption) *Row {
	row := &Row{parent: c, num: len(c.rows), elements: elements}
	for _, opt := range opts {
		opt(row)
	}
	c.rows = append(c.rows, row)
	return row
}

// AddRow declares one row. With pack, the row is packed immediately, which
// supports appending to an already-visible container.
func (c *RowContainer) AddRow(elements []Element, pack bool, opts ...RowOption) (*Row, error) {
	row := c.declareRow(elements, opts...)
	if pack {
		if err := row.Pack(); err != nil {
			return nil, err
		}
	}
	return row, nil
}

// AddRows declares every row in layout. With pack, rows are packed as they
// are added; otherwise they wait for PackRows.
func (c *RowContainer) AddRows(layout Layout, pack bool) error {
	for _, elements := range layout {
		if _, err := c.AddRow(elements, pack); err != nil {
			return err
		}
	}
	return nil
}

// PackRows packs every not-yet-packed row in declaration order.
func (c *RowContainer) PackRows() error {
	for _, row := range c.rows {
		if row.packed {
			continue
		}
		c.log.Debugf("packing row %d of %d in %s", row.num, len(c.rows), c)
		if err := row.Pack(); err != nil {
			return err
		}
	}
	return nil
}

func (c *RowContainer) registerElement(element Element) error {
	id := element.ID()
	if id == "" {
		return nil
	}
	if old, exists := c.elements[id]; exists {
		return glinterrors.NewDuplicateElementError(id, old, element)
	}
	c.elements[id] = element
	return nil
}

// WidgetCount returns the number of materialized widgets: one frame per
// packed row plus one widget per packed element.
func (c *RowContainer) WidgetCount() int {
	count := 0
	for _, row := range c.rows {
		if row.packed {
			count += 1 + len(row.elements)
		}
	}
	return count
}

// Requested returns the container's natural size: the widest row by the sum
// of row heights.
func (c *RowContainer) Requested() XY {
	var size XY
	for _, row := range c.rows {
		req := row.Requested()
		if req.X > size.X {
			size.X = req.X
		}
		size.Y += req.Y
	}
	return size
}

// SetWidth assigns the width rows render into; zero means natural width.
func (c *RowContainer) SetWidth(width int) { c.width = width }

// Width returns the assigned render width.
func (c *RowContainer) Width() int { return c.width }

// View renders every packed row top to bottom.
func (c *RowContainer) View() string {
	width := c.width
	if width == 0 {
		width = c.Requested().X
	}
	views := make([]string, 0, len(c.rows))
	for _, row := range c.rows {
		if !row.packed {
			continue
		}
		views = append(views, row.View(width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
