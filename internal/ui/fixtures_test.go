package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/gamecat/internal/catalog"
	"github.com/oakwood-commons/gamecat/internal/controller"
	"github.com/oakwood-commons/gamecat/internal/prefs"
)

var testGames = []catalog.GameRecord{
	{
		GameName: "Cinder Road", GameURL: "https://example.test/cinder", GamePrice: "$4.99",
		Genre: "Racing", ReleaseDate: "2019-05-01", Description: "Drive through ash.",
		Tags: []string{"Racing", "Arcade"}, ReviewScore: "**", Available: "true",
	},
	{
		GameName: "Aster Fields", GameURL: "https://example.test/aster", GamePrice: "$19.99",
		Genre: "Farming", ReleaseDate: "2022-09-12", Description: "Grow stars in quiet soil.",
		Tags: []string{"Cozy", "Simulation"}, ReviewScore: "*****", Available: "true",
	},
	{
		GameName: "Bramble Keep", GameURL: "https://example.test/bramble", GamePrice: "$9.99",
		Genre: "Strategy", ReleaseDate: "2015-01-20", Description: "Hold the keep.",
		Tags: []string{"Medieval"}, ReviewScore: "", Available: "false",
	},
}

type memoryFixture struct {
	kv   *prefs.MemoryKV
	ctrl *controller.Controller
}

func newFixture(t *testing.T, src catalog.Source) memoryFixture {
	t.Helper()
	kv := prefs.NewMemoryKV()
	store := prefs.NewStore(kv, "userSettings", logr.Discard())
	return memoryFixture{kv: kv, ctrl: controller.New(src, store, logr.Discard())}
}

// readyModel returns a sized, loaded browser over testGames.
func readyModel(t *testing.T) (*Model, memoryFixture) {
	t.Helper()
	fx := newFixture(t, catalog.StaticSource(testGames))
	m := NewModel(Options{Controller: fx.ctrl, NoColor: true, Width: 120, Height: 30, Logger: logr.Discard()})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m.Update(prefsLoadedMsg{prefs: prefs.Defaults()})
	m.Update(catalogLoadedMsg{records: testGames})
	return m, fx
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyPressMsg
		switch k {
		case "enter":
			msg = tea.KeyPressMsg{Code: tea.KeyEnter}
		case "esc":
			msg = tea.KeyPressMsg{Code: tea.KeyEscape}
		case "down":
			msg = tea.KeyPressMsg{Code: tea.KeyDown}
		case "up":
			msg = tea.KeyPressMsg{Code: tea.KeyUp}
		case "left":
			msg = tea.KeyPressMsg{Code: tea.KeyLeft}
		case "right":
			msg = tea.KeyPressMsg{Code: tea.KeyRight}
		default:
			msg = tea.KeyPressMsg{Code: rune(k[0]), Text: k}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

// viewText returns the rendered view without escape sequences.
func viewText(m *Model) string {
	return ansi.Strip(fmt.Sprint(m.View().Content))
}

func firstColumn(m *Model) []string {
	var out []string
	for _, r := range m.matrix.Rows {
		out = append(out, r.Record.GameName)
	}
	return out
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q in:\n%s", needle, haystack)
	}
}

var errOffline = errors.New("offline")
