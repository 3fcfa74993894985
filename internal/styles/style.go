package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Style is a named, optionally parented tree of layers. Attribute lookups
// resolve through a fixed four-step chain:
//
//  1. a configured layer for the role on this style,
//  2. the same role on each ancestor style in turn,
//  3. the role's fallback parent role, retried from the original style,
//  4. a memoized empty layer and the attribute's hardcoded default.
//
// Step 3 runs only after step 2 exhausts the entire ancestor chain; a role's
// unset attribute prefers an ancestor style's explicit value for that role
// over a different role on the same style.
//
// Styles are registered with and owned by a Registry. They are effectively
// immutable once other styles inherit from them; mutating a style after
// lookups have begun requires an explicit InvalidateCaches sweep.
type Style struct {
	name     string
	parent   *Style
	registry *Registry
	layers   map[Role]*Layer
}

// Name returns the style's registered (or generated) name.
func (s *Style) Name() string { return s.name }

// Parent returns the style this style inherits from, or nil.
func (s *Style) Parent() *Style { return s.parent }

func (s *Style) String() string {
	parent := "none"
	if s.parent != nil {
		parent = s.parent.name
	}
	return fmt.Sprintf("Style[%s, parent=%s]", s.name, parent)
}

// peek returns the layer for role if one has been materialized, without
// materializing one.
func (s *Style) peek(role Role) *Layer {
	return s.layers[role]
}

// layerFor returns the layer for role, materializing and memoizing an empty
// one on first access. The mutation of the layer cache is intentional
// caching, not an error: repeated lookups become map hits.
func (s *Style) layerFor(role Role) *Layer {
	if layer := s.layers[role]; layer != nil {
		return layer
	}
	layer := &Layer{style: s, role: role}
	s.layers[role] = layer
	return layer
}

// ConfiguredRoles returns the roles that hold author-assigned values on this
// style (not inherited, not cache artifacts).
func (s *Style) ConfiguredRoles() []Role {
	var out []Role
	for _, role := range allRoles {
		if layer := s.layers[role]; layer != nil && layer.configured {
			out = append(out, role)
		}
	}
	return out
}

// InvalidateCaches drops every cached resolution artifact on this style:
// realized font handles and layers that were memoized empty. Call it after
// mutating a style other styles have already resolved against.
func (s *Style) InvalidateCaches() {
	for role, layer := range s.layers {
		if !layer.configured {
			delete(s.layers, role)
			continue
		}
		layer.clearRealized()
	}
}

// resolveValues implements resolution steps 1-3 for one attribute, with the
// attribute selected by pick. It returns nil when every step misses, after
// memoizing an empty layer for the original (style, role) pair (step 4).
func resolveValues[T comparable](s *Style, role Role, pick func(*Layer) *StateValues[T]) *StateValues[T] {
	current, ok := role, true
	for ok {
		for ancestor := s; ancestor != nil; ancestor = ancestor.parent {
			if layer := ancestor.peek(current); layer != nil {
				if sv := pick(layer); sv != nil && !sv.IsEmpty() {
					return sv
				}
			}
		}
		// Role fallback restarts from the original style, never from the
		// ancestor where the walk stopped.
		current, ok = roleParents[current]
	}
	s.layerFor(role)
	return nil
}

// region Typed attribute accessors

// FG resolves the foreground color for (role, state).
func (s *Style) FG(role Role, state State) Color {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[Color] { return l.fg }); sv != nil {
		return sv.Get(state)
	}
	return ""
}

// BG resolves the background color for (role, state).
func (s *Style) BG(role Role, state State) Color {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[Color] { return l.bg }); sv != nil {
		return sv.Get(state)
	}
	return ""
}

// FrameColor resolves the scroll frame color for (role, state).
func (s *Style) FrameColor(role Role, state State) Color {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[Color] { return l.frameColor }); sv != nil {
		return sv.Get(state)
	}
	return ""
}

// TroughColor resolves the scroll trough color for (role, state).
func (s *Style) TroughColor(role Role, state State) Color {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[Color] { return l.troughColor }); sv != nil {
		return sv.Get(state)
	}
	return ""
}

// ArrowColor resolves the scroll arrow color for (role, state).
func (s *Style) ArrowColor(role Role, state State) Color {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[Color] { return l.arrowColor }); sv != nil {
		return sv.Get(state)
	}
	return ""
}

// BorderWidth resolves the border width for (role, state).
func (s *Style) BorderWidth(role Role, state State) int {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[int] { return l.borderWidth }); sv != nil {
		return sv.Get(state)
	}
	return 0
}

// ArrowWidth resolves the scroll arrow width for (role, state).
func (s *Style) ArrowWidth(role Role, state State) int {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[int] { return l.arrowWidth }); sv != nil {
		return sv.Get(state)
	}
	return 0
}

// BarWidth resolves the scroll bar width for (role, state).
func (s *Style) BarWidth(role Role, state State) int {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[int] { return l.barWidth }); sv != nil {
		return sv.Get(state)
	}
	return 0
}

// Relief resolves the relief for (role, state).
func (s *Style) Relief(role Role, state State) Relief {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[Relief] { return l.relief }); sv != nil {
		return sv.Get(state)
	}
	return ""
}

// Font resolves the font tuple for (role, state).
func (s *Style) Font(role Role, state State) Font {
	if sv := resolveValues(s, role, func(l *Layer) *StateValues[Font] { return l.font }); sv != nil {
		return sv.Get(state)
	}
	return Font{}
}

// Realized returns the native style handle realized from the resolved font
// for (role, state). The handle is computed once per (layer, state) and
// cached on the role's layer for this style; reassigning the layer's font
// (or an InvalidateCaches sweep) recomputes it.
func (s *Style) Realized(role Role, state State) lipgloss.Style {
	font := s.Font(role, state)
	return s.layerFor(role).realizedFont(state, font)
}

// Render returns a lipgloss style combining the resolved font, foreground,
// and background for (role, state). This is the value widget constructors
// feed to the native layer.
func (s *Style) Render(role Role, state State) lipgloss.Style {
	st := s.Realized(role, state)
	if fg := s.FG(role, state); fg != "" {
		st = st.Foreground(fg.Lipgloss())
	}
	if bg := s.BG(role, state); bg != "" {
		st = st.Background(bg.Lipgloss())
	}
	return st
}

// endregion

// Resolver exposes attribute resolution as a pure, auditable function over
// (style, role, attribute, state) tuples. Resolution never errors: a miss
// yields the attribute's hardcoded default and ok=false.
type Resolver struct{}

// Resolve returns the resolved value for the tuple. The concrete type of the
// result follows the attribute: Color, int, Relief, or Font. ok reports
// whether any configured layer supplied the value (false means the hardcoded
// default was used).
func (Resolver) Resolve(s *Style, role Role, attr Attr, state State) (value any, ok bool) {
	switch attr {
	case AttrFont:
		sv := resolveValues(s, role, func(l *Layer) *StateValues[Font] { return l.font })
		if sv == nil {
			return Font{}, false
		}
		return sv.Get(state), true
	case AttrFG:
		return resolveColorAttr(s, role, state, func(l *Layer) *StateValues[Color] { return l.fg })
	case AttrBG:
		return resolveColorAttr(s, role, state, func(l *Layer) *StateValues[Color] { return l.bg })
	case AttrFrameColor:
		return resolveColorAttr(s, role, state, func(l *Layer) *StateValues[Color] { return l.frameColor })
	case AttrTroughColor:
		return resolveColorAttr(s, role, state, func(l *Layer) *StateValues[Color] { return l.troughColor })
	case AttrArrowColor:
		return resolveColorAttr(s, role, state, func(l *Layer) *StateValues[Color] { return l.arrowColor })
	case AttrBorderWidth:
		return resolveIntAttr(s, role, state, func(l *Layer) *StateValues[int] { return l.borderWidth })
	case AttrArrowWidth:
		return resolveIntAttr(s, role, state, func(l *Layer) *StateValues[int] { return l.arrowWidth })
	case AttrBarWidth:
		return resolveIntAttr(s, role, state, func(l *Layer) *StateValues[int] { return l.barWidth })
	case AttrRelief:
		sv := resolveValues(s, role, func(l *Layer) *StateValues[Relief] { return l.relief })
		if sv == nil {
			return Relief(""), false
		}
		return sv.Get(state), true
	}
	return nil, false
}

func resolveColorAttr(s *Style, role Role, state State, pick func(*Layer) *StateValues[Color]) (any, bool) {
	sv := resolveValues(s, role, pick)
	if sv == nil {
		return Color(""), false
	}
	return sv.Get(state), true
}

func resolveIntAttr(s *Style, role Role, state State, pick func(*Layer) *StateValues[int]) (any, bool) {
	sv := resolveValues(s, role, pick)
	if sv == nil {
		return 0, false
	}
	return sv.Get(state), true
}
