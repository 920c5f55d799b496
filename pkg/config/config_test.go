package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	drifterrors "github.com/go-drift/safearea/pkg/errors"
)

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.SystemBars.InsetsHandling)
	assert.False(t, cfg.InsetsHandlingDisabled(), "absent insetsHandling means the host still handles insets")
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "safearea.yaml"), `
statusBarStyle: dark
navigationBarStyle: LIGHT
initialViewportFitCover: false
systemBars:
  insetsHandling: css
colors:
  dark: midnightblue
`)

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.StatusBarStyle)
	assert.Equal(t, "LIGHT", cfg.NavigationBarStyle)
	assert.False(t, cfg.InitialViewportFitCover)
	assert.True(t, cfg.DetectViewportFitCoverChanges, "unset keys keep defaults")
	assert.Equal(t, "css", cfg.SystemBars.InsetsHandling)
	assert.False(t, cfg.InsetsHandlingDisabled())
	assert.Equal(t, "midnightblue", cfg.Colors.Dark)
	assert.Equal(t, "#ffffff", cfg.Colors.Light)
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "safearea.json"), `{"statusBarStyle": "LIGHT", "detectViewportFitCoverChanges": false}`)

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, "LIGHT", cfg.StatusBarStyle)
	assert.False(t, cfg.DetectViewportFitCoverChanges)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SAFEAREA_STATUSBARSTYLE", "DARK")
	t.Setenv("SAFEAREA_SYSTEMBARS_INSETSHANDLING", "css")

	cfg, err := LoadOptional(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "DARK", cfg.StatusBarStyle)
	assert.False(t, cfg.InsetsHandlingDisabled())
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "safearea.yaml"), "statusBarStyle: [unterminated")

	_, err := LoadOptional(dir)
	var e *drifterrors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, drifterrors.KindConfig, e.Kind)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "safearea.yaml")
	require.NoError(t, WriteDefault(path))
	assert.Error(t, WriteDefault(path), "must not overwrite")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got Config
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, Default(), got)

	m := NewFileManager(path)
	require.NoError(t, m.Load())
	assert.Equal(t, path, m.File())
	assert.Equal(t, Default(), m.Get())
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "safearea.yaml")
	writeFile(t, path, "statusBarStyle: LIGHT\n")

	m := NewFileManager(path)
	require.NoError(t, m.Load())

	changed := make(chan Config, 16)
	m.OnConfigChange(func(c Config) {
		select {
		case changed <- c:
		default:
		}
	})
	m.Watch(func(err error) { t.Logf("reload: %v", err) })

	writeFile(t, path, "statusBarStyle: DARK\n")

	// A write can surface as more than one event, some seeing a truncated file.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if c.StatusBarStyle == "DARK" {
				assert.Equal(t, "DARK", m.Get().StatusBarStyle)
				return
			}
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}
