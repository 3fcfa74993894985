package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := newVersionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "Glint dev")
	require.Contains(t, out.String(), "commit: none")
}

func TestThemesCommand(t *testing.T) {
	t.Parallel()

	cmd := newThemesCmd(&rootFlags{})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "* dark")
	require.Contains(t, out.String(), "  light")
}
