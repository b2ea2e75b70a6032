package controller

import "github.com/oakwood-commons/gamecat/internal/prefs"

// BeginPreferenceLoad marks the one-time preference load as started. It
// reports false when a load already started.
func (c *Controller) BeginPreferenceLoad() bool {
	if c.loadStarted {
		return false
	}
	c.loadStarted = true
	return true
}

// ReadPreferences reads the store without touching controller state.
func (c *Controller) ReadPreferences() prefs.UserPreferences {
	if c.store == nil {
		return prefs.Defaults()
	}
	return c.store.Load()
}

// PreferencesLoaded installs the loaded value, replacing any change made
// before the load finished, and enables persistence.
func (c *Controller) PreferencesLoaded(p prefs.UserPreferences) {
	if c.loaded {
		return
	}
	c.prefs = p.Normalize()
	c.loaded = true
	c.log.V(1).Info("preferences loaded", "theme", c.prefs.ThemeName, "view", c.prefs.ViewMode)
}

// LoadPreferences performs the one-time load synchronously.
func (c *Controller) LoadPreferences() {
	if !c.BeginPreferenceLoad() {
		return
	}
	c.PreferencesLoaded(c.ReadPreferences())
}

// Loaded reports whether the preference load completed.
func (c *Controller) Loaded() bool { return c.loaded }

// Preferences returns the in-memory preferences.
func (c *Controller) Preferences() prefs.UserPreferences { return c.prefs }

// SetPreferences replaces the preferences. They are persisted only after the
// initial load completed, so defaults never overwrite a stored value.
func (c *Controller) SetPreferences(p prefs.UserPreferences) {
	c.prefs = p.Normalize()
	c.persist()
}

// ToggleTheme flips the color theme.
func (c *Controller) ToggleTheme() {
	p := c.prefs
	p.ThemeName = p.ThemeName.Toggle()
	c.SetPreferences(p)
}

// ToggleViewMode flips between compact and detailed layouts. The sort
// state is kept; a sort on a column the new layout lacks has no effect.
func (c *Controller) ToggleViewMode() {
	p := c.prefs
	p.ViewMode = p.ViewMode.Toggle()
	c.SetPreferences(p)
}

func (c *Controller) persist() {
	if !c.loaded {
		c.log.V(1).Info("preferences not loaded yet, skipping save")
		return
	}
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.prefs); err != nil {
		c.log.Error(err, "failed to save preferences")
	}
}
