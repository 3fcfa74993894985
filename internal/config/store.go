// Package config persists window and application settings to a JSON file.
// The file holds one object per section (window name), with a reserved
// default section consulted when a section lacks a key. Writes track dirty
// keys and save automatically unless batched.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/glintlabs/glint/internal/logger"
	glinterrors "github.com/glintlabs/glint/pkg/errors"
)

// DefaultSection is the reserved section holding process-wide defaults.
const DefaultSection = "__default__"

// Store is one named section's view over the shared config file. Multiple
// stores may point at the same file with different names; each loads the
// whole file lazily and saves it whole.
//
// A store with an empty name is memory-only: reads work, saves are no-ops.
type Store struct {
	name     string
	path     string
	log      *logger.Logger
	defaults map[string]any

	data    map[string]map[string]any
	anon    map[string]any
	changed map[string]struct{}

	autoSave bool
	batch    bool
}

// New creates a store for the given section name and file path. defaults are
// programmatic fallbacks consulted before the file's default section.
func New(name, path string, defaults map[string]any, log *logger.Logger) *Store {
	d := make(map[string]any, len(defaults))
	for k, v := range defaults {
		d[k] = v
	}
	return &Store{
		name:     name,
		path:     path,
		log:      log.Component("config"),
		defaults: d,
		changed:  make(map[string]struct{}),
		autoSave: true,
	}
}

// Name returns the store's section name.
func (s *Store) Name() string { return s.name }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// SetAutoSave toggles save-on-write. It defaults to on.
func (s *Store) SetAutoSave(enabled bool) { s.autoSave = enabled }

func (s *Store) allData() (map[string]map[string]any, error) {
	if s.data != nil {
		return s.data, nil
	}

	data := make(map[string]map[string]any)
	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		if err != nil && !os.IsNotExist(err) {
			return nil, glinterrors.NewParseError(s.path, 0, err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &data); err != nil {
				return nil, glinterrors.NewParseError(s.path, 0, err)
			}
		}
	}

	// Cached only after a clean load so a broken file is never silently
	// replaced by an empty one.
	s.data = data
	s.changed = make(map[string]struct{})
	return s.data, nil
}

func (s *Store) section(name string) (map[string]any, error) {
	if name == "" {
		if s.anon == nil {
			s.anon = make(map[string]any)
		}
		return s.anon, nil
	}
	data, err := s.allData()
	if err != nil {
		return nil, err
	}
	sec, ok := data[name]
	if !ok {
		sec = make(map[string]any)
		data[name] = sec
	}
	return sec, nil
}

// Get returns the value for key, consulting the store's section, the
// programmatic defaults, then the file's default section.
func (s *Store) Get(key string) (any, bool) {
	if sec, err := s.section(s.name); err == nil {
		if v, ok := sec[key]; ok {
			return v, true
		}
	}
	if v, ok := s.defaults[key]; ok {
		return v, true
	}
	if s.name != "" {
		if sec, err := s.section(DefaultSection); err == nil {
			if v, ok := sec[key]; ok {
				return v, true
			}
		}
	}
	return nil, false
}

// GetString returns the string value for key, or fallback.
func (s *Store) GetString(key, fallback string) string {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	str, ok := v.(string)
	if !ok {
		return fallback
	}
	return str
}

// GetBool returns the bool value for key, or fallback.
func (s *Store) GetBool(key string, fallback bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	b, ok := v.(bool)
	if !ok {
		return fallback
	}
	return b
}

// GetInt returns the int value for key, or fallback. JSON numbers load as
// float64 and convert.
func (s *Store) GetInt(key string, fallback int) int {
	v, ok := s.Get(key)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return fallback
}

// GetXY returns a two-int value (size or position) for key. JSON arrays load
// as []any.
func (s *Store) GetXY(key string) (x, y int, ok bool) {
	v, found := s.Get(key)
	if !found {
		return 0, 0, false
	}
	switch pair := v.(type) {
	case []int:
		if len(pair) == 2 {
			return pair[0], pair[1], true
		}
	case []any:
		if len(pair) == 2 {
			xf, xok := asNumber(pair[0])
			yf, yok := asNumber(pair[1])
			if xok && yok {
				return xf, yf, true
			}
		}
	}
	return 0, 0, false
}

func asNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

// Set stores value under key in the store's section. Writing a value equal
// to the current one is a no-op; otherwise the key is marked dirty and, with
// auto-save on, the file is saved.
func (s *Store) Set(key string, value any) error {
	sec, err := s.section(s.name)
	if err != nil {
		return err
	}
	if old, ok := sec[key]; ok && reflect.DeepEqual(old, value) {
		return nil
	}
	sec[key] = value
	s.changed[key] = struct{}{}
	if s.autoSave {
		return s.Save(false)
	}
	return nil
}

// Delete removes key from the store's section.
func (s *Store) Delete(key string) error {
	sec, err := s.section(s.name)
	if err != nil {
		return err
	}
	if _, ok := sec[key]; !ok {
		return nil
	}
	delete(sec, key)
	s.changed[key] = struct{}{}
	if s.autoSave {
		return s.Save(false)
	}
	return nil
}

// Update applies several writes as one batch, saving once at the end rather
// than per key.
func (s *Store) Update(values map[string]any) error {
	s.batch = true
	var firstErr error
	for _, key := range sortedKeys(values) {
		if err := s.Set(key, values[key]); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.batch = false
	if firstErr != nil {
		return firstErr
	}
	if s.autoSave {
		return s.Save(false)
	}
	return nil
}

// Save writes the whole file when dirty keys exist (or force is set).
// Batched and unnamed stores skip saving; the write is atomic via a
// temporary file and rename, with sorted keys and 4-space indentation.
func (s *Store) Save(force bool) error {
	if s.batch || s.name == "" || s.path == "" {
		return nil
	}
	if len(s.changed) == 0 && !force {
		return nil
	}
	data, err := s.allData()
	if err != nil {
		return err
	}

	s.log.Debugf("saving config to %s for keys=%s", s.path, strings.Join(sortedDirty(s.changed), ", "))

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	// encoding/json writes map keys in sorted order.
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	raw = append(raw, '\n')

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, raw, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing config: %w", err)
	}

	s.changed = make(map[string]struct{})
	return nil
}

// Dirty returns the keys written since the last save, sorted.
func (s *Store) Dirty() []string {
	return sortedDirty(s.changed)
}

func sortedDirty(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
