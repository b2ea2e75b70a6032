package ui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/gamecat/internal/catalog"
	"github.com/oakwood-commons/gamecat/internal/controller"
	"github.com/oakwood-commons/gamecat/internal/prefs"
)

// prefsLoadedMsg carries the one-time preference read.
type prefsLoadedMsg struct {
	prefs prefs.UserPreferences
}

// catalogLoadedMsg carries a successful fetch.
type catalogLoadedMsg struct {
	records []catalog.GameRecord
}

// catalogFailedMsg carries a failed fetch.
type catalogFailedMsg struct {
	err error
}

// statusClearMsg clears a flash message if it is still the current one.
type statusClearMsg struct {
	id int
}

// statusFlashDuration is how long footer messages stay visible.
const statusFlashDuration = 2 * time.Second

// loadPreferencesCmd reads the store off the update loop.
func loadPreferencesCmd(ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		return prefsLoadedMsg{prefs: ctrl.ReadPreferences()}
	}
}

// fetchCatalogCmd runs the catalog source off the update loop.
func fetchCatalogCmd(ctx context.Context, ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		records, err := ctrl.FetchCatalog(ctx)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{records: records}
	}
}

func clearStatusAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return statusClearMsg{id: id}
	})
}
