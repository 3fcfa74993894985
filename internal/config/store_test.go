package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, name string, defaults map[string]any) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app", "config.json")
	return New(name, path, defaults, nil)
}

func TestSetGetRoundTrip(t *testing.T) {
	t.Parallel()
	s := newStore(t, "main", nil)

	require.NoError(t, s.Set("style", "dark"))
	require.Equal(t, "dark", s.GetString("style", ""))

	// The save happened automatically, so a fresh store sees the value.
	reloaded := New("main", s.Path(), nil, nil)
	require.Equal(t, "dark", reloaded.GetString("style", ""))
}

func TestSectionsAreIsolated(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	main := New("main", path, nil, nil)
	require.NoError(t, main.Set("size", []int{80, 24}))

	popup := New("popup", path, nil, nil)
	_, _, ok := popup.GetXY("size")
	require.False(t, ok)

	x, y, ok := main.GetXY("size")
	require.True(t, ok)
	require.Equal(t, 80, x)
	require.Equal(t, 24, y)
}

func TestDefaultSectionFallback(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	shared := New(DefaultSection, path, nil, nil)
	require.NoError(t, shared.Set("style", "light"))

	main := New("main", path, nil, nil)
	require.Equal(t, "light", main.GetString("style", ""), "falls through to the default section")

	require.NoError(t, main.Set("style", "dark"))
	require.Equal(t, "dark", main.GetString("style", ""), "own section wins")
	require.Equal(t, "light", shared.GetString("style", ""))
}

func TestProgrammaticDefaultsPrecedeFileDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	shared := New(DefaultSection, path, nil, nil)
	require.NoError(t, shared.Set("remember_size", false))

	s := New("main", path, map[string]any{"remember_size": true}, nil)
	require.True(t, s.GetBool("remember_size", false))
}

func TestDirtyTrackingAndNoOpWrites(t *testing.T) {
	t.Parallel()
	s := newStore(t, "main", nil)
	s.SetAutoSave(false)

	require.NoError(t, s.Set("a", 1))
	require.NoError(t, s.Set("b", 2))
	require.Equal(t, []string{"a", "b"}, s.Dirty())

	require.NoError(t, s.Save(false))
	require.Empty(t, s.Dirty())

	// Writing the same value again does not dirty the key.
	require.NoError(t, s.Set("a", 1))
	require.Empty(t, s.Dirty())

	require.NoError(t, s.Set("a", 3))
	require.Equal(t, []string{"a"}, s.Dirty())
}

func TestUnnamedStoreIsMemoryOnly(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")

	s := New("", path, nil, nil)
	require.NoError(t, s.Set("style", "dark"))
	require.Equal(t, "dark", s.GetString("style", ""))

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "unnamed stores never touch the file")
}

func TestUpdateSavesOnce(t *testing.T) {
	t.Parallel()
	s := newStore(t, "main", nil)

	require.NoError(t, s.Update(map[string]any{
		"style":    "dark",
		"size":     []int{100, 40},
		"position": []int{5, 5},
	}))
	require.Empty(t, s.Dirty())

	reloaded := New("main", s.Path(), nil, nil)
	require.Equal(t, "dark", reloaded.GetString("style", ""))
	x, y, ok := reloaded.GetXY("position")
	require.True(t, ok)
	require.Equal(t, 5, x)
	require.Equal(t, 5, y)
}

func TestSaveFormat(t *testing.T) {
	t.Parallel()
	s := newStore(t, "main", nil)

	require.NoError(t, s.Update(map[string]any{"style": "dark", "auto_save": true}))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "dark", decoded["main"]["style"])

	text := string(raw)
	require.Contains(t, text, "    \"main\"", "4-space indent")
	require.Less(t, strings.Index(text, "auto_save"), strings.Index(text, "style"), "sorted keys")
	require.True(t, strings.HasSuffix(text, "\n"))

	_, err = os.Stat(s.Path() + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file is renamed away")
}

func TestGetIntConversion(t *testing.T) {
	t.Parallel()
	s := newStore(t, "main", nil)
	require.NoError(t, s.Set("width", 80))

	reloaded := New("main", s.Path(), nil, nil)
	require.Equal(t, 80, reloaded.GetInt("width", 0), "JSON numbers convert back to int")
	require.Equal(t, 7, reloaded.GetInt("missing", 7))
}

func TestCorruptFileIsAnError(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := New("main", path, nil, nil)
	err := s.Set("style", "dark")
	require.Error(t, err)
}
