package prefs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastheco/folio/log"
)

func TestMain(m *testing.M) {
	log.Initialize(false)
	code := m.Run()
	log.Close()
	os.Exit(code)
}

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"sqlite": func(t *testing.T) Store { return newTestSQLiteStore(t) },
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
	}
	for name, mk := range stores {
		t.Run(name, func(t *testing.T) {
			s := mk(t)
			_, err := s.Get("missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set("k", "v1"))
			require.NoError(t, s.Set("k", "v2"))
			v, err := s.Get("k")
			require.NoError(t, err)
			assert.Equal(t, "v2", v)
		})
	}
}

func TestDefaults(t *testing.T) {
	p := Load(NewMemoryStore())
	assert.Equal(t, ThemeDark, p.Theme())
	assert.True(t, p.ScrollSnapEnabled())

	p = Load(nil)
	assert.Equal(t, ThemeDark, p.Theme())
	assert.True(t, p.ScrollSnapEnabled())
	assert.NoError(t, p.SetScrollSnapEnabled(false))
}

func TestCorruptValuesFallBack(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(KeyTheme, "sepia"))
	require.NoError(t, s.Set(KeyScrollSnap, "maybe"))

	p := Load(s)
	assert.Equal(t, ThemeDark, p.Theme())
	assert.True(t, p.ScrollSnapEnabled())
}

type brokenStore struct{}

func (brokenStore) Get(string) (string, error) { return "", errors.New("disk on fire") }
func (brokenStore) Set(string, string) error   { return errors.New("disk on fire") }
func (brokenStore) Close() error               { return nil }

func TestReadFailureFallsBack(t *testing.T) {
	p := Load(brokenStore{})
	assert.Equal(t, ThemeDark, p.Theme())
	assert.True(t, p.ScrollSnapEnabled())

	err := p.SetTheme(ThemeLight)
	assert.Error(t, err)
	assert.Equal(t, ThemeLight, p.Theme(), "in-memory value still changes")
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	p := Load(s)
	enabled, err := p.ToggleScrollSnap()
	require.NoError(t, err)
	assert.False(t, enabled)
	theme, err := p.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()
	reloaded := Load(s)
	assert.False(t, reloaded.ScrollSnapEnabled())
	assert.Equal(t, ThemeLight, reloaded.Theme())

	v, err := s.Get(KeyScrollSnap)
	require.NoError(t, err)
	assert.Equal(t, "false", v)
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	p := Load(NewMemoryStore())
	assert.Error(t, p.SetTheme("neon"))
	assert.Equal(t, ThemeDark, p.Theme())
}
