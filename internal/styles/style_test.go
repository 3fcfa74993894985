package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func newBareRegistry(t *testing.T) *Registry {
	t.Helper()
	// Built-in styles would satisfy resolution step 2 and mask the behavior
	// under test, so resolution tests start from an empty registry.
	return &Registry{styles: make(map[string]*Style)}
}

func TestResolveThroughAncestorChain(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	a, err := r.New("a", nil, Settings{"button_fg": "#aa0000"})
	require.NoError(t, err)
	b, err := r.New("b", a, Settings{})
	require.NoError(t, err)
	c, err := r.New("c", b, Settings{})
	require.NoError(t, err)

	require.Equal(t, Color("#aa0000"), c.FG(RoleButton, StateDefault))
	require.Equal(t, Color("#aa0000"), b.FG(RoleButton, StateDefault))
}

func TestChildOverridesAncestor(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	a, err := r.New("a", nil, Settings{"button_fg": "#aa0000"})
	require.NoError(t, err)
	b, err := r.New("b", a, Settings{"button_fg": "#00bb00"})
	require.NoError(t, err)

	require.Equal(t, Color("#00bb00"), b.FG(RoleButton, StateDefault))
	require.Equal(t, Color("#aa0000"), a.FG(RoleButton, StateDefault))
}

// Role fallback must restart from the original style after the ancestor walk
// exhausts, not from the ancestor where the walk stopped.
func TestRoleFallbackRestartsFromOriginalStyle(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	y, err := r.New("y", nil, Settings{"text_fg": "#00ff00"})
	require.NoError(t, err)
	x, err := r.New("x", y, Settings{})
	require.NoError(t, err)

	// combo has no fg anywhere; combo falls back to text, found on y.
	require.Equal(t, Color("#00ff00"), x.FG(RoleCombo, StateDefault))

	// When the original style holds a text fg itself, the restarted fallback
	// walk must find it before the ancestor's.
	x2, err := r.New("x2", y, Settings{"text_fg": "#0000ff"})
	require.NoError(t, err)
	require.Equal(t, Color("#0000ff"), x2.FG(RoleCombo, StateDefault))
}

// An ancestor's value for the requested role wins over the same style's
// value for the fallback role.
func TestAncestorRoleBeatsOwnRoleFallback(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	y, err := r.New("y", nil, Settings{"combo_fg": "#cc0000"})
	require.NoError(t, err)
	x, err := r.New("x", y, Settings{"text_fg": "#0000cc"})
	require.NoError(t, err)

	require.Equal(t, Color("#cc0000"), x.FG(RoleCombo, StateDefault))
}

func TestMultiLevelRoleFallback(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	// table_alt falls back to table; table falls back to base.
	s, err := r.New("s", nil, Settings{"fg": "#123456"})
	require.NoError(t, err)
	require.Equal(t, Color("#123456"), s.FG(RoleTableAlt, StateDefault))

	s2, err := r.New("s2", nil, Settings{"fg": "#123456", "table_fg": "#654321"})
	require.NoError(t, err)
	require.Equal(t, Color("#654321"), s2.FG(RoleTableAlt, StateDefault))
}

func TestResolutionMissMemoizesEmptyLayer(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	s, err := r.New("s", nil, Settings{})
	require.NoError(t, err)

	require.Nil(t, s.peek(RoleButton))
	require.Equal(t, Color(""), s.FG(RoleButton, StateDefault))

	layer := s.peek(RoleButton)
	require.NotNil(t, layer, "a miss memoizes an empty layer")
	require.False(t, layer.configured)
	require.Empty(t, s.ConfiguredRoles(), "cache artifacts are not configured roles")
}

func TestInvalidateCachesDropsMemoizedLayers(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	s, err := r.New("s", nil, Settings{"button_fg": "#aa0000"})
	require.NoError(t, err)

	s.FG(RoleCombo, StateDefault) // memoizes an empty combo layer
	require.NotNil(t, s.peek(RoleCombo))

	s.InvalidateCaches()
	require.Nil(t, s.peek(RoleCombo))
	require.NotNil(t, s.peek(RoleButton), "configured layers survive the sweep")
}

func TestResolverResolve(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	s, err := r.New("s", nil, Settings{
		"button_fg":    "#aa0000",
		"border_width": 2,
		"relief":       "raised",
	})
	require.NoError(t, err)

	var res Resolver

	v, ok := res.Resolve(s, RoleButton, AttrFG, StateDefault)
	require.True(t, ok)
	require.Equal(t, Color("#aa0000"), v)

	v, ok = res.Resolve(s, RoleButton, AttrBorderWidth, StateDefault)
	require.True(t, ok)
	require.Equal(t, 2, v)

	v, ok = res.Resolve(s, RoleFrame, AttrRelief, StateDefault)
	require.True(t, ok, "relief on base resolves for frame via role fallback")
	require.Equal(t, ReliefRaised, v)

	v, ok = res.Resolve(s, RoleButton, AttrBG, StateDefault)
	require.False(t, ok, "miss reports ok=false with the hardcoded default")
	require.Equal(t, Color(""), v)
}

func TestResolutionIsStateAware(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	s, err := r.New("s", nil, Settings{
		"button_fg": []any{"#d0d0d0", "#606060"},
	})
	require.NoError(t, err)

	require.Equal(t, Color("#d0d0d0"), s.FG(RoleButton, StateDefault))
	require.Equal(t, Color("#606060"), s.FG(RoleButton, StateDisabled))
	require.Equal(t, Color("#d0d0d0"), s.FG(RoleButton, StateHighlight))
}

func TestRealizedFontHandle(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	s, err := r.New("s", nil, Settings{
		"font": map[string]any{"family": "Courier", "size": 12, "bold": true},
	})
	require.NoError(t, err)

	st := s.Realized(RoleText, StateDefault)
	require.True(t, st.GetBold())
	require.False(t, st.GetItalic())

	// Same handle on repeat lookups.
	again := s.Realized(RoleText, StateDefault)
	require.Equal(t, st.GetBold(), again.GetBold())

	font := s.Font(RoleText, StateDefault)
	require.Equal(t, "Courier", font.Family)
	require.Equal(t, 12, font.Size)
}

func TestRenderCombinesFontAndColors(t *testing.T) {
	t.Parallel()
	r := newBareRegistry(t)

	s, err := r.New("s", nil, Settings{
		"button_fg": "#f5f5f6",
		"button_bg": "#2e3d5a",
		"font":      map[string]any{"bold": true},
	})
	require.NoError(t, err)

	st := s.Render(RoleButton, StateDefault)
	require.True(t, st.GetBold())
	require.Equal(t, lipgloss.Color("#f5f5f6"), st.GetForeground())
	require.Equal(t, lipgloss.Color("#2e3d5a"), st.GetBackground())
}
