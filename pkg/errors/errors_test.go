package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("unexpected token")
	err := NewParseError("theme.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "theme.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "theme.yaml")
}

func TestStyleOptionErrorIncludesContext(t *testing.T) {
	t.Parallel()

	err := NewStyleOptionError("dark", "buttn_fg", "no matching role or attribute")

	var optionErr *StyleOptionError
	require.ErrorAs(t, err, &optionErr)
	require.Equal(t, "buttn_fg", optionErr.Option)
	require.Contains(t, err.Error(), "dark")
	require.Contains(t, err.Error(), "buttn_fg")
}

func TestCycleErrorFormatsChain(t *testing.T) {
	t.Parallel()

	err := NewCycleError([]string{"a", "b", "a"})

	var cycleErr *CycleError
	require.ErrorAs(t, err, &cycleErr)
	require.Equal(t, []string{"a", "b", "a"}, cycleErr.Chain)
	require.Contains(t, err.Error(), "a -> b -> a")
}

func TestDuplicateElementErrorCarriesBothRegistrants(t *testing.T) {
	t.Parallel()

	err := NewDuplicateElementError("submit", "button-1", "button-2")

	var dupErr *DuplicateElementError
	require.ErrorAs(t, err, &dupErr)
	require.Equal(t, "submit", dupErr.Key)
	require.Equal(t, "button-1", dupErr.Old)
	require.Equal(t, "button-2", dupErr.New)
}

func TestTeardownErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("handle destroyed")
	err := NewTeardownError("configure scroll region", underlying)

	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "configure scroll region")
}

func TestUnknownStyleError(t *testing.T) {
	t.Parallel()

	err := NewUnknownStyleError("solarized")
	require.Contains(t, err.Error(), "solarized")
}
