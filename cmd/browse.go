package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/gamecat/internal/controller"
	"github.com/oakwood-commons/gamecat/internal/limiter"
	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/internal/schema"
	"github.com/oakwood-commons/gamecat/internal/ui"
	"github.com/oakwood-commons/gamecat/pkg/logger"
	"github.com/oakwood-commons/gamecat/pkg/settings"
)

func runBrowse(cmd *cobra.Command, o *rootOptions) error {
	ctx := cmd.Context()
	lgr := *logger.FromContext(ctx)
	run, ok := settings.FromContext(ctx)
	if !ok {
		run = settings.NewCliParams()
	}

	theme, view, err := parseOverrides(o.theme, o.view)
	if err != nil {
		return err
	}

	if err := o.window.Validate(); err != nil {
		return err
	}
	if o.window.IsActive() && run.Output == settings.OutputTUI {
		return fmt.Errorf("--limit, --offset, and --tail need --output table or json")
	}

	rc, err := loadRunConfig(o)
	if err != nil {
		return err
	}
	store, where, closeStore, err := rc.openStore(lgr)
	if err != nil {
		return err
	}
	defer closeStore()

	themes, ignored := ui.NewThemeSet(rc.cfg.Themes)
	if len(ignored) > 0 {
		lgr.Info("ignoring themes that cannot be selected", "themes", ignored)
	}
	lgr.V(1).Info("starting", "source", rc.sourceName(), "store", where, "output", run.Output)

	ctrl := controller.New(rc.source(), store, lgr)

	// Overrides and sort clicks need the stored preferences first; without
	// them the browser loads them itself.
	if run.Output != settings.OutputTUI || theme != "" || view != "" || len(o.sorts) > 0 {
		ctrl.LoadPreferences()
		applyOverrides(ctrl, theme, view)
		if err := applySorts(ctrl, o.sorts); err != nil {
			return err
		}
	}

	if run.Output == settings.OutputTUI {
		return ui.Run(ui.Options{
			Controller: ctrl,
			Themes:     themes,
			NoColor:    run.NoColor,
			Width:      run.Width,
			Context:    ctx,
			Logger:     lgr,
		})
	}

	ctrl.Fetch(ctx)
	if ctrl.State() == controller.StateFailed {
		return fmt.Errorf("failed to load the game catalog: %w", ctrl.Err())
	}
	mtx := ctrl.Matrix()
	mtx.Rows = limiter.Apply(o.window, mtx.Rows)
	out := cmd.OutOrStdout()

	if run.Output == settings.OutputJSON {
		return ui.RenderJSON(out, mtx)
	}
	isTerminal := stdoutIsTerminal()
	width := run.Width
	if width <= 0 && isTerminal {
		width = detectTerminalWidth()
	}
	return ui.RenderPlain(out, mtx, ui.PlainOptions{
		Width:   width,
		NoColor: run.NoColor || !isTerminal,
		Theme:   themes.Get(ctrl.Preferences().ThemeName),
	})
}

// parseOverrides validates --theme and --view. Empty values mean no override.
func parseOverrides(theme, view string) (prefs.Theme, prefs.ViewMode, error) {
	var th prefs.Theme
	var vm prefs.ViewMode
	if theme != "" {
		t, ok := prefs.ParseTheme(theme)
		if !ok {
			return "", "", fmt.Errorf("invalid theme %q (expected coffee or light)", theme)
		}
		th = t
	}
	if view != "" {
		v, ok := prefs.ParseViewMode(view)
		if !ok {
			return "", "", fmt.Errorf("invalid view %q (expected detailed or compact)", view)
		}
		vm = v
	}
	return th, vm, nil
}

// applyOverrides sets the requested theme and view like a toggle would, so
// they are remembered.
func applyOverrides(ctrl *controller.Controller, theme prefs.Theme, view prefs.ViewMode) {
	if theme == "" && view == "" {
		return
	}
	p := ctrl.Preferences()
	if theme != "" {
		p.ThemeName = theme
	}
	if view != "" {
		p.ViewMode = view
	}
	if p != ctrl.Preferences() {
		ctrl.SetPreferences(p)
	}
}

// applySorts clicks each named header in order.
func applySorts(ctrl *controller.Controller, sorts []string) error {
	cols := ctrl.Columns()
	for _, s := range sorts {
		id, err := resolveSortColumn(cols, s)
		if err != nil {
			return err
		}
		ctrl.ToggleSort(id)
	}
	return nil
}

// resolveSortColumn accepts a column ID, a header title, or a 1-based column
// number, all case-insensitive.
func resolveSortColumn(cols []schema.ColumnDefinition, arg string) (string, error) {
	want := strings.TrimSpace(arg)
	var found *schema.ColumnDefinition
	if n, err := strconv.Atoi(want); err == nil {
		if n >= 1 && n <= len(cols) {
			found = &cols[n-1]
		}
	} else {
		for i := range cols {
			if strings.EqualFold(cols[i].ID, want) || strings.EqualFold(cols[i].Header, want) {
				found = &cols[i]
				break
			}
		}
	}
	if found == nil {
		names := make([]string, 0, len(cols))
		for _, c := range cols {
			if c.Sortable() {
				names = append(names, c.ID)
			}
		}
		return "", fmt.Errorf("unknown sort column %q (available: %s)", arg, strings.Join(names, ", "))
	}
	if !found.Sortable() {
		return "", fmt.Errorf("column %q is not sortable", found.Header)
	}
	return found.ID, nil
}
