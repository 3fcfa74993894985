package styles

import (
	"fmt"
	"sort"
	"strings"

	glinterrors "github.com/glintlabs/glint/pkg/errors"
)

// Registry owns every style in one application context: the name→style
// table, the default style, and the anonymous-name counter. It is an explicit
// object rather than package state so that independent application contexts
// (and tests) never share styles.
//
// The registry is not safe for concurrent use; like the rest of the toolkit
// it belongs to the event-loop goroutine.
type Registry struct {
	styles       map[string]*Style
	defaultStyle *Style
	anonCount    int
}

// NewRegistry creates a registry pre-populated with the built-in dark and
// light styles, with dark as the default.
func NewRegistry() *Registry {
	r := &Registry{styles: make(map[string]*Style)}
	registerBuiltins(r)
	return r
}

// Spec describes a style to construct: a name (empty for anonymous), an
// optional parent reference (name or *Style), and construction settings.
type Spec struct {
	Name     string
	Parent   any
	Settings Settings
}

// New constructs a style and, when named, registers it. An empty name yields
// an anonymous style with a generated unique name that is not registered.
// Parent may be nil, a registered style name, or a *Style.
func (r *Registry) New(name string, parent any, settings Settings) (*Style, error) {
	parentStyle, err := r.resolveParent(parent)
	if err != nil {
		return nil, err
	}

	style := &Style{
		name:     name,
		parent:   parentStyle,
		registry: r,
		layers:   make(map[Role]*Layer),
	}
	if name == "" {
		style.name = fmt.Sprintf("Style#%d", r.anonCount)
		r.anonCount++
	}

	if chain := parentChainCycle(style); chain != nil {
		return nil, glinterrors.NewCycleError(chain)
	}
	if err := style.configure(settings); err != nil {
		return nil, err
	}

	if name != "" {
		r.styles[name] = style
	}
	if r.defaultStyle == nil {
		r.defaultStyle = style
	}
	return style, nil
}

func (r *Registry) resolveParent(parent any) (*Style, error) {
	switch p := parent.(type) {
	case nil:
		return nil, nil
	case *Style:
		return p, nil
	case string:
		if p == "" {
			return nil, nil
		}
		style, ok := r.styles[p]
		if !ok {
			return nil, glinterrors.NewUnknownStyleError(p)
		}
		return style, nil
	default:
		return nil, fmt.Errorf("invalid style parent type %T", parent)
	}
}

// parentChainCycle walks the parent chain with a visited set and returns the
// offending chain when it revisits a style. The original toolkit never
// defended against this; here a cycle is a configuration error rather than an
// infinite resolution loop.
func parentChainCycle(style *Style) []string {
	visited := make(map[*Style]bool)
	var chain []string
	for st := style; st != nil; st = st.parent {
		chain = append(chain, st.name)
		if visited[st] {
			return chain
		}
		visited[st] = true
	}
	return nil
}

// Get normalizes any accepted style specifier into a *Style. It is the single
// entry point widget code uses to accept "a style-like thing":
//
//	nil        → the registry's default style
//	*Style     → passthrough
//	string     → registry lookup (error when absent)
//	Settings   → a new anonymous style
//	Spec       → a new style per the spec
func (r *Registry) Get(spec any) (*Style, error) {
	switch v := spec.(type) {
	case nil:
		return r.defaultStyle, nil
	case *Style:
		return v, nil
	case string:
		if v == "" {
			return r.defaultStyle, nil
		}
		style, ok := r.styles[v]
		if !ok {
			return nil, glinterrors.NewUnknownStyleError(v)
		}
		return style, nil
	case Settings:
		return r.New("", nil, v)
	case Spec:
		return r.New(v.Name, v.Parent, v.Settings)
	case *Spec:
		return r.New(v.Name, v.Parent, v.Settings)
	default:
		return nil, fmt.Errorf("invalid style spec type %T", spec)
	}
}

// Lookup returns the registered style for name.
func (r *Registry) Lookup(name string) (*Style, bool) {
	style, ok := r.styles[name]
	return style, ok
}

// Names returns the registered style names in sorted order, skipping
// internal names (a leading underscore marks a style as private).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		if strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the registry's default style.
func (r *Registry) Default() *Style { return r.defaultStyle }

// SetDefault makes style the registry default.
func (r *Registry) SetDefault(style *Style) { r.defaultStyle = style }

// InvalidateCaches sweeps cached resolution artifacts from every registered
// style. Required after mutating a style that others have resolved against;
// never triggered automatically.
func (r *Registry) InvalidateCaches() {
	for _, style := range r.styles {
		style.InvalidateCaches()
	}
}

// SubStyle constructs a child style inheriting from s. When name collides
// with a registered style it is qualified with the parent's name, matching
// the convention for view-local style variants.
func (s *Style) SubStyle(name string, settings Settings) (*Style, error) {
	if name != "" {
		if _, exists := s.registry.styles[name]; exists {
			name = s.name + ":" + name
		}
	}
	return s.registry.New(name, s, settings)
}
