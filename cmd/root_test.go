package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/internal/schema"
	"github.com/oakwood-commons/gamecat/internal/tableview"
	"github.com/oakwood-commons/gamecat/pkg/settings"
)

const catalogJSON = `[
  {"game_name": "Cinder Road", "game_url": "https://example.test/cinder", "game_price": "$4.99",
   "genre": "Racing", "release_date": "2019-05-01", "description": "Drive through ash.",
   "tags": ["Racing", "Arcade"], "review_score": "**", "available": "true"},
  {"game_name": "Aster Fields", "game_url": "https://example.test/aster", "game_price": "$19.99",
   "genre": "Farming", "release_date": "2022-09-12", "description": "Grow stars.",
   "tags": ["Cozy"], "review_score": "*****", "available": "true"},
  {"game_name": "Bramble Keep", "game_url": "https://example.test/bramble", "game_price": "$9.99",
   "genre": "Strategy", "release_date": "2015-01-20", "description": "Hold the keep.",
   "tags": null, "review_score": "", "available": "false"}
]`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0o600))
	return path
}

// executeCommand runs a fresh command tree as if stdout were a pipe.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "")

	origTerm := stdoutIsTerminal
	stdoutIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdoutIsTerminal = origTerm })

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeMatrix(t *testing.T, out string) tableview.Matrix {
	t.Helper()
	var mtx tableview.Matrix
	require.NoError(t, json.Unmarshal([]byte(out), &mtx))
	return mtx
}

func names(mtx tableview.Matrix) []string {
	out := make([]string, len(mtx.Rows))
	for i, r := range mtx.Rows {
		out[i] = r.Record.GameName
	}
	return out
}

func TestTableOutputWhenPiped(t *testing.T) {
	src := writeCatalog(t)
	out, err := executeCommand(t, "--source-file", src, "--prefs-store", "memory")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "ID")
	require.Contains(t, lines[0], "Game Name")
	require.Contains(t, lines[0], "Score")
	require.Contains(t, lines[2], "Cinder Road")
	require.Contains(t, lines[4], "Bramble Keep (unavailable)")
	require.Contains(t, lines[4], schema.MissingScore)
	require.NotContains(t, out, "\x1b[")
}

func TestJSONOutputSorted(t *testing.T) {
	src := writeCatalog(t)

	out, err := executeCommand(t, "--source-file", src, "--prefs-store", "memory", "-o", "json", "--sort", "review_score")
	require.NoError(t, err)
	mtx := decodeMatrix(t, out)
	require.Equal(t, prefs.ViewDetailed, mtx.ViewMode)
	require.Equal(t, []string{"Aster Fields", "Cinder Road", "Bramble Keep"}, names(mtx))

	out, err = executeCommand(t, "--source-file", src, "--prefs-store", "memory", "-o", "json", "--sort", "Score", "--sort", "3")
	require.NoError(t, err)
	require.Equal(t, []string{"Bramble Keep", "Cinder Road", "Aster Fields"}, names(decodeMatrix(t, out)))
}

func TestSortFlagErrors(t *testing.T) {
	src := writeCatalog(t)

	_, err := executeCommand(t, "--source-file", src, "--prefs-store", "memory", "--sort", "ID")
	require.ErrorContains(t, err, "not sortable")

	_, err = executeCommand(t, "--source-file", src, "--prefs-store", "memory", "--sort", "genre")
	require.ErrorContains(t, err, "unknown sort column")

	out, err := executeCommand(t, "--source-file", src, "--prefs-store", "memory", "--view", "compact", "-o", "json", "--sort", "genre")
	require.NoError(t, err)
	require.Equal(t, []string{"Aster Fields", "Cinder Road", "Bramble Keep"}, names(decodeMatrix(t, out)))
}

func TestViewOverrideIsRemembered(t *testing.T) {
	src := writeCatalog(t)
	store := filepath.Join(t.TempDir(), "prefs.json")

	out, err := executeCommand(t, "--source-file", src, "--prefs-path", store, "--view", "compact", "-o", "json")
	require.NoError(t, err)
	mtx := decodeMatrix(t, out)
	require.Equal(t, prefs.ViewCompact, mtx.ViewMode)
	require.Len(t, mtx.Columns, 8)

	out, err = executeCommand(t, "--source-file", src, "--prefs-path", store, "-o", "json")
	require.NoError(t, err)
	require.Equal(t, prefs.ViewCompact, decodeMatrix(t, out).ViewMode)

	out, err = executeCommand(t, "prefs", "show", "--prefs-path", store)
	require.NoError(t, err)
	require.Contains(t, out, "view:  compact")
	require.Contains(t, out, "theme: coffee")
}

func TestInvalidOverrides(t *testing.T) {
	src := writeCatalog(t)
	_, err := executeCommand(t, "--source-file", src, "--prefs-store", "memory", "--theme", "neon")
	require.ErrorContains(t, err, "invalid theme")

	_, err = executeCommand(t, "--source-file", src, "--prefs-store", "memory", "--view", "grid")
	require.ErrorContains(t, err, "invalid view")

	_, err = executeCommand(t, "--source-file", src, "--prefs-store", "memory", "-o", "yaml")
	require.ErrorContains(t, err, "invalid --output")

	_, err = executeCommand(t, "--source-file", src, "--prefs-store", "memory", "-o", "tui")
	require.ErrorContains(t, err, "needs a terminal")

	_, err = executeCommand(t, "--source-file", src, "--prefs-store", "bolt")
	require.ErrorIs(t, err, prefs.ErrUnknownStore)
}

func TestFetchFailure(t *testing.T) {
	_, err := executeCommand(t, "--source-file", filepath.Join(t.TempDir(), "missing.json"), "--prefs-store", "memory")
	require.ErrorContains(t, err, "failed to load the game catalog")
}

func TestSourceFlagsAreExclusive(t *testing.T) {
	_, err := executeCommand(t, "--source-file", "a.json", "--source-url", "https://example.test")
	require.Error(t, err)
}

func TestRowWindow(t *testing.T) {
	src := writeCatalog(t)
	base := []string{"--source-file", src, "--prefs-store", "memory", "-o", "json", "--sort", "review_score"}

	out, err := executeCommand(t, append(base, "--limit", "2")...)
	require.NoError(t, err)
	require.Equal(t, []string{"Aster Fields", "Cinder Road"}, names(decodeMatrix(t, out)))

	out, err = executeCommand(t, append(base, "--offset", "1", "--limit", "1")...)
	require.NoError(t, err)
	require.Equal(t, []string{"Cinder Road"}, names(decodeMatrix(t, out)))

	out, err = executeCommand(t, append(base, "--tail", "1")...)
	require.NoError(t, err)
	require.Equal(t, []string{"Bramble Keep"}, names(decodeMatrix(t, out)))

	_, err = executeCommand(t, append(base, "--limit", "1", "--tail", "1")...)
	require.Error(t, err)

	_, err = executeCommand(t, append(base, "--offset", "-1")...)
	require.ErrorContains(t, err, "--offset must be non-negative")
}

func TestConfigFileSuppliesSource(t *testing.T) {
	src := writeCatalog(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := "[source]\nfile = '" + src + "'\n\n[preferences]\nstore = 'memory'\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	out, err := executeCommand(t, "--config-file", cfgPath, "-o", "json")
	require.NoError(t, err)
	require.Len(t, decodeMatrix(t, out).Rows, 3)
}

func TestVersion(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, settings.CliBinaryName+" "+settings.VersionInformation.BuildVersion))

	out, err = executeCommand(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, settings.VersionInformation.BuildVersion)
}

func TestResolveOutputMode(t *testing.T) {
	cases := []struct {
		flag     string
		terminal bool
		want     settings.OutputMode
		wantErr  bool
	}{
		{"", true, settings.OutputTUI, false},
		{"", false, settings.OutputTable, false},
		{"JSON", true, settings.OutputJSON, false},
		{"table", true, settings.OutputTable, false},
		{"tui", false, "", true},
		{"csv", true, "", true},
	}
	for _, tc := range cases {
		got, err := resolveOutputMode(tc.flag, tc.terminal)
		if tc.wantErr {
			require.Error(t, err, tc.flag)
			continue
		}
		require.NoError(t, err, tc.flag)
		require.Equal(t, tc.want, got, tc.flag)
	}
}

func TestResolveSortColumn(t *testing.T) {
	cols := schema.Build(prefs.ViewCompact)

	id, err := resolveSortColumn(cols, "release date")
	require.NoError(t, err)
	require.Equal(t, "release_date", id)

	id, err = resolveSortColumn(cols, "4")
	require.NoError(t, err)
	require.Equal(t, "game_price", id)

	_, err = resolveSortColumn(cols, "1")
	require.ErrorContains(t, err, "not sortable")

	_, err = resolveSortColumn(cols, "9")
	require.ErrorContains(t, err, "unknown sort column")
}
