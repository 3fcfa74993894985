package styles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLightenDarken(t *testing.T) {
	t.Parallel()

	light := Lighten(GreyMD0, 0.3)
	require.NotEqual(t, GreyMD0, light)
	require.Regexp(t, `^#[0-9a-f]{6}$`, string(light))

	dark := Darken(GreyMD0, 0.3)
	require.NotEqual(t, GreyMD0, dark)
	require.NotEqual(t, light, dark)

	require.Equal(t, Color("#ffffff"), Lighten(GreyMD0, 1))
	require.Equal(t, Color("#000000"), Darken(GreyMD0, 1))
	require.Equal(t, GreyMD0, Lighten(GreyMD0, 0))
	require.Equal(t, GreyMD0, Lighten(GreyMD0, -2), "amount clamps to 0..1")
}

func TestBlendUnparseableColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, Color("cornflower"), Lighten("cornflower", 0.5))
	require.Equal(t, Color(""), Darken("", 0.5))
}
