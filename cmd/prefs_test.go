package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefsSetShowResetSQLite(t *testing.T) {
	db := filepath.Join(t.TempDir(), "prefs.sqlite")
	store := []string{"--prefs-store", "sqlite", "--prefs-path", db}

	out, err := executeCommand(t, append([]string{"prefs", "set", "--theme", "light"}, store...)...)
	require.NoError(t, err)
	require.Contains(t, out, "theme: light")

	out, err = executeCommand(t, append([]string{"prefs", "show", "-o", "json"}, store...)...)
	require.NoError(t, err)
	require.JSONEq(t, `{"themeName":"light","viewMode":"detailed"}`, out)

	out, err = executeCommand(t, append([]string{"prefs", "reset"}, store...)...)
	require.NoError(t, err)
	require.Contains(t, out, "theme: coffee")

	out, err = executeCommand(t, append([]string{"prefs", "show", "-o", "json"}, store...)...)
	require.NoError(t, err)
	require.JSONEq(t, `{"themeName":"coffee","viewMode":"detailed"}`, out)
}

func TestPrefsCustomKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")

	_, err := executeCommand(t, "prefs", "set", "--view", "compact", "--prefs-path", path, "--prefs-key", "other")
	require.NoError(t, err)

	out, err := executeCommand(t, "prefs", "show", "--prefs-path", path)
	require.NoError(t, err)
	require.Contains(t, out, "view:  detailed")

	out, err = executeCommand(t, "prefs", "show", "--prefs-path", path, "--prefs-key", "other")
	require.NoError(t, err)
	require.Contains(t, out, "view:  compact")
}

func TestPrefsSetValidation(t *testing.T) {
	_, err := executeCommand(t, "prefs", "set", "--prefs-store", "memory")
	require.ErrorContains(t, err, "nothing to set")

	_, err = executeCommand(t, "prefs", "set", "--theme", "dark", "--prefs-store", "memory")
	require.ErrorContains(t, err, "invalid theme")

	_, err = executeCommand(t, "prefs", "show", "-o", "xml", "--prefs-store", "memory")
	require.ErrorContains(t, err, "invalid --output")
}

func TestThemesList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	_, err := executeCommand(t, "prefs", "set", "--theme", "light", "--prefs-path", path)
	require.NoError(t, err)

	out, err := executeCommand(t, "themes", "--prefs-path", path)
	require.NoError(t, err)
	require.Contains(t, out, "Available themes (default: coffee):")
	require.Contains(t, out, " - coffee\n")
	require.Contains(t, out, " - light (current)\n")
}

func TestConfigCommand(t *testing.T) {
	out, err := executeCommand(t, "config", "--prefs-store", "sqlite")
	require.NoError(t, err)
	require.Contains(t, out, "# gamecat configuration (embedded defaults)")
	require.Contains(t, out, "store: sqlite")
	require.Contains(t, out, "# Where the game catalog is fetched from")

	out, err = executeCommand(t, "config", "--format", "toml")
	require.NoError(t, err)
	require.Contains(t, out, "[preferences]")
}
