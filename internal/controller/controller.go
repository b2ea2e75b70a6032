// Package controller owns the catalog fetch lifecycle and the user's display
// preferences, and projects both into a renderable table.
//
// A Controller is not safe for concurrent use. It is driven from one
// goroutine; blocking work is done elsewhere and its results are fed back
// through the transition methods.
package controller

import (
	"context"
	"errors"

	"github.com/go-logr/logr"

	"github.com/oakwood-commons/gamecat/internal/catalog"
	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/internal/schema"
	"github.com/oakwood-commons/gamecat/internal/sorting"
	"github.com/oakwood-commons/gamecat/internal/tableview"
)

// FetchState is the catalog fetch lifecycle.
type FetchState string

const (
	StateIdle    FetchState = "idle"
	StateLoading FetchState = "loading"
	StateReady   FetchState = "ready"
	StateFailed  FetchState = "failed"
)

// ErrNoSource is returned when a fetch is attempted without a catalog source.
var ErrNoSource = errors.New("no catalog source configured")

// Controller coordinates the source, the preference store, and sort state.
type Controller struct {
	source catalog.Source
	store  *prefs.Store
	log    logr.Logger

	state   FetchState
	err     error
	records []catalog.GameRecord

	prefs       prefs.UserPreferences
	loadStarted bool
	loaded      bool

	sort sorting.State
}

// New returns an idle controller with default preferences. store may be nil,
// in which case preferences live only in memory.
func New(source catalog.Source, store *prefs.Store, log logr.Logger) *Controller {
	return &Controller{
		source: source,
		store:  store,
		log:    log,
		state:  StateIdle,
		prefs:  prefs.Defaults(),
	}
}

// Start loads preferences and then fetches the catalog.
func (c *Controller) Start(ctx context.Context) {
	c.LoadPreferences()
	c.Fetch(ctx)
}

// BeginFetch moves idle to loading. It reports whether the transition happened.
func (c *Controller) BeginFetch() bool {
	if c.state != StateIdle {
		c.log.V(1).Info("ignoring fetch start", "state", c.state)
		return false
	}
	c.state = StateLoading
	return true
}

// FetchSucceeded moves loading to ready with records.
func (c *Controller) FetchSucceeded(records []catalog.GameRecord) {
	if c.state != StateLoading {
		c.log.V(1).Info("ignoring fetch result", "state", c.state)
		return
	}
	c.records = records
	c.state = StateReady
	c.log.Info("catalog loaded", "records", len(records))
}

// FetchFailed moves loading to failed.
func (c *Controller) FetchFailed(err error) {
	if c.state != StateLoading {
		c.log.V(1).Info("ignoring fetch failure", "state", c.state)
		return
	}
	c.err = err
	c.state = StateFailed
	c.log.Error(err, "catalog fetch failed")
}

// Fetch runs the source synchronously and applies the outcome. It is a no-op
// unless the controller is idle.
func (c *Controller) Fetch(ctx context.Context) {
	if !c.BeginFetch() {
		return
	}
	records, err := c.FetchCatalog(ctx)
	if err != nil {
		c.FetchFailed(err)
		return
	}
	c.FetchSucceeded(records)
}

// FetchCatalog calls the source without touching controller state, so the
// call can run off the driving goroutine.
func (c *Controller) FetchCatalog(ctx context.Context) ([]catalog.GameRecord, error) {
	if c.source == nil {
		return nil, ErrNoSource
	}
	return c.source.Fetch(ctx)
}

// State returns the fetch state.
func (c *Controller) State() FetchState { return c.state }

// Err returns the fetch error once failed.
func (c *Controller) Err() error { return c.err }

// SortState returns the current sort.
func (c *Controller) SortState() sorting.State { return c.sort }

// ToggleSort applies a header click on columnID. Columns not in the current
// schema, and derived columns, are ignored.
func (c *Controller) ToggleSort(columnID string) {
	col, ok := schema.Find(c.Columns(), columnID)
	if !ok {
		c.log.V(1).Info("ignoring sort on unknown column", "column", columnID)
		return
	}
	c.sort = sorting.ToggleColumn(c.sort, col)
	c.log.V(1).Info("sort changed", "column", c.sort.Column, "direction", c.sort.Direction)
}

// Columns returns the schema for the current view mode.
func (c *Controller) Columns() []schema.ColumnDefinition {
	return schema.Build(c.prefs.ViewMode)
}

// Rows returns the sorted rows. Empty unless the catalog is ready.
func (c *Controller) Rows() []schema.Row {
	if c.state != StateReady {
		return nil
	}
	return sorting.Apply(c.records, c.Columns(), c.sort)
}

// Matrix returns the rendered table. Rows are empty unless the catalog is ready.
func (c *Controller) Matrix() tableview.Matrix {
	var records []catalog.GameRecord
	if c.state == StateReady {
		records = c.records
	}
	return tableview.Build(records, c.prefs.ViewMode, c.sort)
}
