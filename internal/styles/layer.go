package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	glinterrors "github.com/glintlabs/glint/pkg/errors"
)

// Layer is one role's bundle of state-resolved attribute values on a single
// style. Layers support partial specification: a nil attribute resolves
// through the style ancestor chain and the role's fallback parent role.
//
// Layers are materialized lazily. Constructing a Style does not allocate a
// layer per role; the first lookup touching a (style, role) pair does, and
// the result is memoized on the style.
type Layer struct {
	style *Style
	role  Role

	// configured distinguishes layers holding author-assigned values from
	// empty layers memoized purely as resolution cache entries.
	configured bool

	font        *StateValues[Font]
	fg          *StateValues[Color]
	bg          *StateValues[Color]
	borderWidth *StateValues[int]
	relief      *StateValues[Relief]
	frameColor  *StateValues[Color]
	troughColor *StateValues[Color]
	arrowColor  *StateValues[Color]
	arrowWidth  *StateValues[int]
	barWidth    *StateValues[int]

	// realized caches the native style handle derived from the font tuple,
	// one per state. Reassigning font invalidates it.
	realized [numStates]*lipgloss.Style
}

// Role returns the role this layer styles.
func (l *Layer) Role() Role { return l.role }

// apply assigns attribute values from a name→value map, as produced by the
// settings router or a whole-layer settings block.
func (l *Layer) apply(values map[string]any) error {
	for name, value := range values {
		attr, ok := ParseAttr(name)
		if !ok {
			return glinterrors.NewStyleOptionError(l.style.name, name, "not a layer attribute")
		}
		if err := l.set(attr, value); err != nil {
			return err
		}
	}
	return nil
}

func (l *Layer) set(attr Attr, value any) error {
	var err error
	switch attr {
	case AttrFont:
		var sv *StateValues[Font]
		if sv, err = fontStateValues(value); err == nil {
			l.font = sv
			l.clearRealized()
		}
	case AttrFG:
		l.fg, err = colorStateValues(value)
	case AttrBG:
		l.bg, err = colorStateValues(value)
	case AttrBorderWidth:
		l.borderWidth, err = intStateValues(value)
	case AttrRelief:
		l.relief, err = reliefStateValues(value)
	case AttrFrameColor:
		l.frameColor, err = colorStateValues(value)
	case AttrTroughColor:
		l.troughColor, err = colorStateValues(value)
	case AttrArrowColor:
		l.arrowColor, err = colorStateValues(value)
	case AttrArrowWidth:
		l.arrowWidth, err = intStateValues(value)
	case AttrBarWidth:
		l.barWidth, err = intStateValues(value)
	default:
		err = fmt.Errorf("unhandled attribute %v", attr)
	}
	if err != nil {
		return glinterrors.NewStyleOptionError(l.style.name, attr.String(), err.Error())
	}
	l.configured = true
	return nil
}

func (l *Layer) clearRealized() {
	for i := range l.realized {
		l.realized[i] = nil
	}
}

// realizedFont returns the native style handle realized from font for state,
// computing and caching it on first use.
func (l *Layer) realizedFont(state State, font Font) lipgloss.Style {
	if state >= numStates {
		state = StateDefault
	}
	if cached := l.realized[state]; cached != nil {
		return *cached
	}
	st := lipgloss.NewStyle().Bold(font.Bold).Italic(font.Italic).Underline(font.Underline)
	l.realized[state] = &st
	return st
}

// region value conversion

func colorStateValues(value any) (*StateValues[Color], error) {
	return convertStateValues(value, func(v any) (Color, error) {
		switch c := v.(type) {
		case nil:
			return "", nil
		case Color:
			return c, nil
		case string:
			return Color(c), nil
		}
		return "", fmt.Errorf("cannot use %T as a color", v)
	})
}

func intStateValues(value any) (*StateValues[int], error) {
	return convertStateValues(value, func(v any) (int, error) {
		switch n := v.(type) {
		case nil:
			return 0, nil
		case int:
			return n, nil
		case float64: // JSON/YAML numbers may decode as float64
			return int(n), nil
		}
		return 0, fmt.Errorf("cannot use %T as a width", v)
	})
}

func reliefStateValues(value any) (*StateValues[Relief], error) {
	return convertStateValues(value, func(v any) (Relief, error) {
		switch r := v.(type) {
		case nil:
			return "", nil
		case Relief:
			return r, nil
		case string:
			switch Relief(r) {
			case ReliefFlat, ReliefRaised, ReliefSunken, ReliefRidge, ReliefGroove, ReliefSolid:
				return Relief(r), nil
			}
			return "", fmt.Errorf("unknown relief %q", r)
		}
		return "", fmt.Errorf("cannot use %T as a relief", v)
	})
}

func fontStateValues(value any) (*StateValues[Font], error) {
	if m, ok := value.(map[string]any); ok && !hasStateKeys(m) {
		font, err := parseFont(m)
		if err != nil {
			return nil, err
		}
		sv := NewStateValues(font)
		return &sv, nil
	}
	return convertStateValues(value, func(v any) (Font, error) {
		switch f := v.(type) {
		case nil:
			return Font{}, nil
		case Font:
			return f, nil
		case map[string]any:
			return parseFont(f)
		}
		return Font{}, fmt.Errorf("cannot use %T as a font", v)
	})
}

func parseFont(m map[string]any) (Font, error) {
	var font Font
	for key, val := range m {
		switch key {
		case "family":
			s, ok := val.(string)
			if !ok {
				return Font{}, fmt.Errorf("font family must be a string, got %T", val)
			}
			font.Family = s
		case "size":
			switch n := val.(type) {
			case int:
				font.Size = n
			case float64:
				font.Size = int(n)
			default:
				return Font{}, fmt.Errorf("font size must be a number, got %T", val)
			}
		case "bold", "italic", "underline":
			b, ok := val.(bool)
			if !ok {
				return Font{}, fmt.Errorf("font %s must be a bool, got %T", key, val)
			}
			switch key {
			case "bold":
				font.Bold = b
			case "italic":
				font.Italic = b
			case "underline":
				font.Underline = b
			}
		default:
			return Font{}, fmt.Errorf("unknown font field %q", key)
		}
	}
	return font, nil
}

func hasStateKeys(m map[string]any) bool {
	for key := range m {
		if _, err := ParseState(key); err == nil {
			return true
		}
	}
	return false
}

// convertStateValues accepts the value forms the construction surface allows
// for a single attribute: a bare value (default slot only), an existing
// StateValues, a state-name→value map, or a slice in slot order.
func convertStateValues[T comparable](value any, conv func(any) (T, error)) (*StateValues[T], error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case StateValues[T]:
		return &v, nil
	case *StateValues[T]:
		return v, nil
	case map[State]any:
		var sv StateValues[T]
		for state, raw := range v {
			item, err := conv(raw)
			if err != nil {
				return nil, err
			}
			sv = sv.With(state, item)
		}
		return &sv, nil
	case map[string]any:
		var sv StateValues[T]
		for name, raw := range v {
			state, err := ParseState(name)
			if err != nil {
				return nil, err
			}
			item, convErr := conv(raw)
			if convErr != nil {
				return nil, convErr
			}
			sv = sv.With(state, item)
		}
		return &sv, nil
	case []any:
		if len(v) > int(numStates) {
			return nil, fmt.Errorf("too many state values: %d", len(v))
		}
		var sv StateValues[T]
		for i, raw := range v {
			item, err := conv(raw)
			if err != nil {
				return nil, err
			}
			sv = sv.With(State(i), item)
		}
		return &sv, nil
	default:
		item, err := conv(value)
		if err != nil {
			return nil, err
		}
		sv := NewStateValues(item)
		return &sv, nil
	}
}

// endregion
