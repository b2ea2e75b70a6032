package ui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"

	"github.com/oakwood-commons/gamecat/internal/controller"
	"github.com/oakwood-commons/gamecat/internal/prefs"
	"github.com/oakwood-commons/gamecat/internal/sorting"
	"github.com/oakwood-commons/gamecat/internal/tableview"
	"github.com/oakwood-commons/gamecat/internal/ui/table"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	minTableRows  = 3
)

// Options configures the interactive browser.
type Options struct {
	Controller *controller.Controller
	Themes     ThemeSet
	NoColor    bool
	// Width and Height of 0 wait for the terminal's size message.
	Width   int
	Height  int
	Context context.Context
	Logger  logr.Logger
}

// Model is the bubbletea model of the catalog browser.
type Model struct {
	ctrl    *controller.Controller
	ctx     context.Context
	log     logr.Logger
	themes  ThemeSet
	noColor bool

	styles  Styles
	table   *table.Model[tableview.RenderedRow]
	spinner spinner.Model
	matrix  tableview.Matrix

	selCol      int
	expanded    map[int]bool // keyed by original record index
	helpVisible bool

	status    string
	statusErr bool
	statusID  int

	width  int
	height int
}

// NewModel builds the browser around opts.Controller.
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	themes := opts.Themes
	if themes == nil {
		themes, _ = NewThemeSet(nil)
	}
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = controller.New(nil, nil, opts.Logger)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		ctrl:     ctrl,
		ctx:      ctx,
		log:      opts.Logger,
		themes:   themes,
		noColor:  opts.NoColor,
		spinner:  s,
		selCol:   1,
		expanded: map[int]bool{},
		width:    opts.Width,
		height:   opts.Height,
	}
	if m.width <= 0 {
		m.width = defaultWidth
	}
	if m.height <= 0 {
		m.height = defaultHeight
	}
	m.table = table.NewModel[tableview.RenderedRow](nil, m.renderRow)
	m.applyTheme()
	m.refresh()
	return m
}

// Controller exposes the driven controller.
func (m *Model) Controller() *controller.Controller {
	return m.ctrl
}

// Init starts the spinner, the preference load, and the catalog fetch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.ctrl.BeginPreferenceLoad() {
		cmds = append(cmds, loadPreferencesCmd(m.ctrl))
	}
	if m.ctrl.BeginFetch() {
		cmds = append(cmds, fetchCatalogCmd(m.ctx, m.ctrl))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.refresh()

	case prefsLoadedMsg:
		m.ctrl.PreferencesLoaded(msg.prefs)
		m.applyTheme()
		m.refresh()

	case catalogLoadedMsg:
		m.ctrl.FetchSucceeded(msg.records)
		m.refresh()

	case catalogFailedMsg:
		m.ctrl.FetchFailed(msg.err)
		m.refresh()

	case spinner.TickMsg:
		if m.loading() {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case statusClearMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.statusErr = false
		}

	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)
	}
	m.layout()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	action, col := ResolveKey(msg.String())

	if m.helpVisible {
		switch action {
		case ActionQuit:
			return tea.Quit
		case ActionHelp, ActionClose:
			m.helpVisible = false
		}
		return nil
	}

	switch action {
	case ActionQuit:
		return tea.Quit
	case ActionHelp:
		m.helpVisible = true
	case ActionToggleView:
		m.ctrl.ToggleViewMode()
		m.refresh()
		return m.flash(m.ctrl.Preferences().ViewMode.Label(), false)
	case ActionToggleTheme:
		m.ctrl.ToggleTheme()
		m.applyTheme()
		m.refresh()
		return m.flash("Theme: "+string(m.ctrl.Preferences().ThemeName), false)
	case ActionPrevColumn:
		if m.selCol > 0 {
			m.selCol--
			m.refresh()
		}
	case ActionNextColumn:
		if m.selCol < len(m.matrix.Columns)-1 {
			m.selCol++
			m.refresh()
		}
	case ActionSort:
		return m.sortColumn(m.selCol)
	case ActionSortColumn:
		if col >= len(m.matrix.Columns) {
			return nil
		}
		m.selCol = col
		return m.sortColumn(col)
	case ActionExpand:
		m.toggleExpanded()
	case ActionOpenURL:
		return m.withSelectedURL("Opened in browser", OpenURL)
	case ActionCopyURL:
		return m.withSelectedURL("Copied URL", CopyToClipboard)
	case ActionUp, ActionDown, ActionTop, ActionBottom:
		m.table, _ = m.table.Update(msg)
	}
	return nil
}

func (m *Model) sortColumn(i int) tea.Cmd {
	if i < 0 || i >= len(m.matrix.Columns) {
		return nil
	}
	h := m.matrix.Columns[i]
	if !h.Sortable {
		return m.flash(fmt.Sprintf("%s is not sortable", h.Title), true)
	}
	m.ctrl.ToggleSort(h.ID)
	m.refresh()
	return nil
}

func (m *Model) toggleExpanded() {
	if m.ctrl.Preferences().ViewMode != prefs.ViewDetailed {
		return
	}
	row := m.table.SelectedRow()
	if row == nil {
		return
	}
	if m.expanded[row.Index] {
		delete(m.expanded, row.Index)
	} else {
		m.expanded[row.Index] = true
	}
	m.refresh()
}

func (m *Model) withSelectedURL(done string, fn func(string) error) tea.Cmd {
	row := m.table.SelectedRow()
	if row == nil || row.Record.GameURL == "" {
		return m.flash("No URL for this game", true)
	}
	if err := fn(row.Record.GameURL); err != nil {
		m.log.V(1).Info("url action failed", "url", row.Record.GameURL, "error", err.Error())
		return m.flash(err.Error(), true)
	}
	return m.flash(done, false)
}

func (m *Model) flash(msg string, isErr bool) tea.Cmd {
	m.status = msg
	m.statusErr = isErr
	m.statusID++
	return clearStatusAfter(m.statusID, statusFlashDuration)
}

func (m *Model) loading() bool {
	s := m.ctrl.State()
	return s == controller.StateIdle || s == controller.StateLoading
}

func (m *Model) applyTheme() {
	th := m.themes.Get(m.ctrl.Preferences().ThemeName)
	m.styles = NewStyles(th, m.noColor)
	m.spinner.Style = m.styles.Title
	m.table.SetColors(th.HeaderFG, th.HeaderBG, th.SelectedFG, th.SelectedBG)
	m.table.SetNoColor(m.noColor)
}

// refresh rebuilds the matrix from the controller, keeping the cursor on the
// same record when it is still shown.
func (m *Model) refresh() {
	prev := -1
	if r := m.table.SelectedRow(); r != nil {
		prev = r.Index
	}

	m.matrix = m.ctrl.Matrix()
	if m.selCol >= len(m.matrix.Columns) {
		m.selCol = len(m.matrix.Columns) - 1
	}
	if m.selCol < 0 {
		m.selCol = 0
	}

	widths := columnWidths(m.matrix.Columns, m.width)
	m.table.SetHeaders(tableHeaders(m.matrix.Columns, widths, m.selCol))
	m.table.SetRows(m.matrix.Rows)
	if prev >= 0 {
		for i, r := range m.matrix.Rows {
			if r.Index == prev {
				m.table.SetCursor(i)
				break
			}
		}
	}
	m.layout()
}

// layout sizes the table to the space left by the chrome and the detail pane.
func (m *Model) layout() {
	chrome := 2 // title bar and footer
	if pane := m.detailPane(); pane != "" {
		chrome += lipgloss.Height(pane)
	}
	h := m.height - chrome
	if h < minTableRows {
		h = minTableRows
	}
	m.table.SetSize(m.width, h)
}

func (m *Model) renderRow(r tableview.RenderedRow) table.Row {
	out := make(table.Row, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = cellLine(c, m.styles, m.expanded[r.Index])
	}
	return out
}

func (m *Model) detailPane() string {
	if m.ctrl.State() != controller.StateReady {
		return ""
	}
	row := m.table.SelectedRow()
	if row == nil {
		return ""
	}
	if m.matrix.ViewMode != prefs.ViewCompact && !m.expanded[row.Index] {
		return ""
	}
	return renderDetail(row.Cells, m.styles, m.width)
}

func (m *Model) titleBar() string {
	p := m.ctrl.Preferences()
	left := m.styles.Title.Render("🎮 Game Catalog")
	right := m.styles.Toggle.Render(fmt.Sprintf("[v] %s  [t] %s", p.ViewMode.Label(), p.ThemeName))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) footer() string {
	text := m.status
	style := m.styles.Footer
	if text != "" && m.statusErr {
		style = m.styles.Error
	}
	if text == "" {
		text = shortHelp(m.styles)
		if s := m.ctrl.SortState(); s.Active() {
			if i := m.matrix.Column(s.Column); i >= 0 {
				arrow := "▲"
				if s.Direction == sorting.DirectionDescending {
					arrow = "▼"
				}
				text = fmt.Sprintf("sorted by %s %s · %s", m.matrix.Columns[i].Title, arrow, text)
			}
		}
	}
	return style.Width(m.width).Render(text)
}

func (m *Model) body() string {
	st := m.styles
	switch {
	case m.helpVisible:
		return renderHelp(st, m.width)
	case m.loading():
		return m.spinner.View() + " " + st.Text.Render("Loading game catalog…")
	case m.ctrl.State() == controller.StateFailed:
		msg := st.Error.Render("Failed to load the game catalog.")
		if err := m.ctrl.Err(); err != nil {
			msg += "\n" + st.Muted.Render(err.Error())
		}
		return msg
	case len(m.matrix.Rows) == 0:
		return st.Muted.Render("The catalog is empty.")
	}
	body := m.table.View()
	if pane := m.detailPane(); pane != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, pane)
	}
	return body
}

// View renders the browser.
func (m *Model) View() tea.View {
	content := lipgloss.JoinVertical(lipgloss.Left, m.titleBar(), m.body(), m.footer())
	v := tea.NewView(content)
	v.AltScreen = true
	return v
}
