package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/safearea/pkg/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestConfigInitThenCheck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "safearea.yaml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	_, err = execute(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	out, err = execute(t, "config", "check", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.Contains(t, out, "no problems found")
}

func TestConfigCheckWithoutFileFlagsInsetsHandling(t *testing.T) {
	out, err := execute(t, "config", "check", "--dir", t.TempDir())
	assert.ErrorContains(t, err, "1 problem(s)")
	assert.Contains(t, out, "systemBars.insetsHandling: \"\" should be \"disable\"")
}

func TestConfigCheckDescribesHexOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, config.WriteDefault(filepath.Join(dir, "safearea.yaml")))

	out, err := execute(t, "config", "check", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "#aarrggbb")
}

func TestConfigCheckReportsProblems(t *testing.T) {
	dir := t.TempDir()
	yaml := strings.Join([]string{
		"statusBarStyle: purple",
		"colors:",
		"  light: not-a-color",
		"systemBars:",
		"  insetsHandling: css",
	}, "\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "safearea.yaml"), []byte(yaml), 0o644))

	out, err := execute(t, "config", "check", "--dir", dir)
	assert.ErrorContains(t, err, "3 problem(s)")
	assert.Contains(t, out, "statusBarStyle: \"purple\"")
	assert.Contains(t, out, "colors.light")
	assert.Contains(t, out, "insetsHandling")
}

func TestCheckConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   int
	}{
		{"written defaults", func(*config.Config) {}, 0},
		{"insets handling absent", func(c *config.Config) { c.SystemBars.InsetsHandling = "" }, 1},
		{"lowercase style", func(c *config.Config) { c.NavigationBarStyle = "dark" }, 0},
		{"explicit default", func(c *config.Config) { c.StatusBarStyle = "Default" }, 0},
		{"named color", func(c *config.Config) { c.Colors.Dark = "navy" }, 0},
		{"bad style", func(c *config.Config) { c.NavigationBarStyle = "dim" }, 1},
		{"bad colors", func(c *config.Config) { c.Colors.Dark, c.Colors.Light = "#12", "" }, 2},
		{"insets handling case", func(c *config.Config) { c.SystemBars.InsetsHandling = "DISABLE" }, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.SystemBars.InsetsHandling = config.InsetsHandlingDisable
			tt.mutate(&cfg)
			assert.Len(t, checkConfig(cfg), tt.want)
		})
	}
}

func TestSimulateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	src := `
theme: light
steps:
  - op: setStyle
    style: dark
    target: STATUS_BAR
  - op: theme
    theme: dark
  - op: insets
    preset: keyboard
  - op: hide
    target: NAVIGATION_BAR
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := execute(t, "simulate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "setStyle style=dark target=STATUS_BAR")
	assert.Contains(t, out, "#212b35")
	assert.Contains(t, out, "top=24")
	assert.Contains(t, out, "bottom=300")
	assert.Contains(t, out, "DARK")
}

func TestSimulateRejectsBadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("steps:\n  - op: jump\n"), 0o644))

	_, err := execute(t, "simulate", path)
	assert.ErrorContains(t, err, `unknown op "jump"`)
}

func TestPreviewRejectsTheme(t *testing.T) {
	_, err := execute(t, "preview", "--theme", "sepia", "--dir", t.TempDir())
	assert.ErrorContains(t, err, "unknown theme")
}
