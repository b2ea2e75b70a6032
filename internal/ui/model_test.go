package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/gamecat/internal/catalog"
	"github.com/oakwood-commons/gamecat/internal/controller"
	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/internal/sorting"
)

func TestModelShowsLoadingUntilCatalogArrives(t *testing.T) {
	fx := newFixture(t, catalog.StaticSource(testGames))
	m := NewModel(Options{Controller: fx.ctrl, NoColor: true, Width: 100, Height: 30})

	require.NotNil(t, m.Init())
	require.Equal(t, controller.StateLoading, fx.ctrl.State())
	requireContains(t, viewText(m), "Loading game catalog")

	m.Update(catalogLoadedMsg{records: testGames})
	require.Equal(t, controller.StateReady, fx.ctrl.State())
	requireContains(t, viewText(m), "Aster Fields")
}

func TestEveryRecordRendersAfterResize(t *testing.T) {
	m, _ := readyModel(t)
	for _, size := range []tea.WindowSizeMsg{{Width: 160, Height: 40}, {Width: 120, Height: 30}} {
		m.Update(size)
		for _, view := range []string{"detailed", "compact"} {
			text := viewText(m)
			for _, g := range testGames {
				require.Containsf(t, text, g.GameName, "%s view at %dx%d", view, size.Width, size.Height)
			}
			press(m, "v")
		}
	}
}

func TestModelShowsFailure(t *testing.T) {
	fx := newFixture(t, catalog.StaticSource(nil))
	m := NewModel(Options{Controller: fx.ctrl, NoColor: true})
	m.Init()
	m.Update(catalogFailedMsg{err: errOffline})

	require.Equal(t, controller.StateFailed, fx.ctrl.State())
	view := viewText(m)
	requireContains(t, view, "Failed to load the game catalog.")
	requireContains(t, view, "offline")
}

func TestModelEmptyCatalog(t *testing.T) {
	fx := newFixture(t, catalog.StaticSource(nil))
	m := NewModel(Options{Controller: fx.ctrl, NoColor: true})
	m.Init()
	m.Update(catalogLoadedMsg{records: nil})
	requireContains(t, viewText(m), "The catalog is empty.")
}

func TestInitCommandsLoadAndFetch(t *testing.T) {
	fx := newFixture(t, catalog.StaticSource(testGames))
	require.NoError(t, fx.kv.Set("userSettings", `{"themeName":"light","viewMode":"compact"}`))
	m := NewModel(Options{Controller: fx.ctrl, NoColor: true})
	m.Init()

	msg := loadPreferencesCmd(fx.ctrl)()
	m.Update(msg)
	require.True(t, fx.ctrl.Loaded())
	require.Equal(t, prefs.ViewCompact, fx.ctrl.Preferences().ViewMode)

	m.Update(fetchCatalogCmd(m.ctx, fx.ctrl)())
	require.Equal(t, controller.StateReady, fx.ctrl.State())
	require.Len(t, m.matrix.Columns, 8)
}

func TestHeaderSortKeys(t *testing.T) {
	m, fx := readyModel(t)

	// Column 3 is Score in the detailed view.
	press(m, "3")
	require.Equal(t, sorting.State{Column: "review_score", Direction: sorting.DirectionAscending}, fx.ctrl.SortState())
	require.Equal(t, []string{"Aster Fields", "Cinder Road", "Bramble Keep"}, firstColumn(m))
	requireContains(t, viewText(m), "Score ▲")

	press(m, "s")
	require.Equal(t, sorting.DirectionDescending, fx.ctrl.SortState().Direction)
	require.Equal(t, []string{"Bramble Keep", "Cinder Road", "Aster Fields"}, firstColumn(m))

	press(m, "s")
	require.False(t, fx.ctrl.SortState().Active())
	require.Equal(t, []string{"Cinder Road", "Aster Fields", "Bramble Keep"}, firstColumn(m))
}

func TestHeaderSelectionMoves(t *testing.T) {
	m, fx := readyModel(t)
	require.Equal(t, 1, m.selCol)

	press(m, "left", "s")
	require.Equal(t, 0, m.selCol)
	require.False(t, fx.ctrl.SortState().Active())
	requireContains(t, viewText(m), "not sortable")

	press(m, "right", "right", "right", "right")
	require.Equal(t, 2, m.selCol)
	press(m, "s")
	require.Equal(t, "review_score", fx.ctrl.SortState().Column)
}

func TestCursorFollowsRecordAcrossSort(t *testing.T) {
	m, _ := readyModel(t)
	press(m, "down")
	require.Equal(t, "Aster Fields", m.table.SelectedRow().Record.GameName)

	press(m, "3")
	require.Equal(t, "Aster Fields", m.table.SelectedRow().Record.GameName)
	require.Equal(t, 0, m.table.Cursor())
}

func TestViewAndThemeToggles(t *testing.T) {
	m, fx := readyModel(t)

	press(m, "v")
	require.Equal(t, prefs.ViewCompact, fx.ctrl.Preferences().ViewMode)
	require.Len(t, m.matrix.Columns, 8)
	requireContains(t, viewText(m), "Compact View")

	press(m, "t")
	require.Equal(t, prefs.ThemeLight, fx.ctrl.Preferences().ThemeName)

	raw, ok, err := fx.kv.Get("userSettings")
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"themeName":"light","viewMode":"compact"}`, raw)
}

func TestTogglesBeforeLoadAreNotPersisted(t *testing.T) {
	fx := newFixture(t, catalog.StaticSource(testGames))
	m := NewModel(Options{Controller: fx.ctrl, NoColor: true})
	m.Init()

	press(m, "t")
	_, ok, err := fx.kv.Get("userSettings")
	require.NoError(t, err)
	require.False(t, ok)

	m.Update(prefsLoadedMsg{prefs: prefs.Defaults()})
	require.Equal(t, prefs.ThemeCoffee, fx.ctrl.Preferences().ThemeName)
}

func TestExpandRowInDetailedView(t *testing.T) {
	m, _ := readyModel(t)
	press(m, "down", "enter")
	view := viewText(m)
	requireContains(t, view, "▾ Aster Fields")
	requireContains(t, view, "Grow stars in quiet soil.")
	requireContains(t, view, "Release Date: 2022-09-12")

	press(m, "enter")
	require.Empty(t, m.expanded)

	// Expansion is a detailed-view feature.
	press(m, "v", "enter")
	require.Empty(t, m.expanded)
}

func TestCompactViewShowsDescriptionPane(t *testing.T) {
	m, _ := readyModel(t)
	press(m, "v")
	view := viewText(m)
	requireContains(t, view, "Drive through ash.")
	requireContains(t, view, "Arcade")
}

func TestUnavailableMarkedWithoutColor(t *testing.T) {
	m, _ := readyModel(t)
	requireContains(t, viewText(m), "(unavailable)")
}

func TestHelpOverlay(t *testing.T) {
	m, _ := readyModel(t)
	press(m, "?")
	require.True(t, m.helpVisible)
	requireContains(t, viewText(m), "toggle this help")

	press(m, "s")
	require.False(t, m.Controller().SortState().Active())

	press(m, "esc")
	require.False(t, m.helpVisible)
}

func TestQuitKeys(t *testing.T) {
	m, _ := readyModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOpenAndCopyURL(t *testing.T) {
	var calls []string
	restore := StubPlatformActions(&calls)
	defer restore()

	m, _ := readyModel(t)
	press(m, "o")
	press(m, "down", "y")
	require.Equal(t, []string{"open https://example.test/cinder", "copy https://example.test/aster"}, calls)
	requireContains(t, viewText(m), "Copied URL")
}

func TestStatusClears(t *testing.T) {
	m, _ := readyModel(t)
	press(m, "t")
	require.NotEmpty(t, m.status)

	m.Update(statusClearMsg{id: m.statusID - 1})
	require.NotEmpty(t, m.status)
	m.Update(statusClearMsg{id: m.statusID})
	require.Empty(t, m.status)
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{Logger: logr.Discard()})
	require.Equal(t, defaultWidth, m.width)
	require.Equal(t, defaultHeight, m.height)
	require.NotNil(t, m.Controller())
}
