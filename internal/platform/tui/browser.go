package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/storage"
)

const maxBrowserRows = 100

// BrowserKeyMap defines the key bindings for the sketch browser.
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	New    key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.New, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.New, k.Delete, k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new sketch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

var browserTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// BrowserModel lists stored sketches and lets the user open, create, or
// delete them. It never quits the program itself; the session model reads
// its selection and quitting flags.
type BrowserModel struct {
	store        *storage.Store
	config       core.RuntimeConfig
	table        table.Model
	keys         BrowserKeyMap
	help         help.Model
	selection    string
	newRequested bool
	quitting     bool
	message      string
}

// NewBrowserModel creates a browser over the given store.
// The store may be nil; the browser then only offers creating a sketch.
func NewBrowserModel(store *storage.Store, cfg core.RuntimeConfig) BrowserModel {
	m := BrowserModel{
		store:  store,
		config: cfg,
		keys:   DefaultBrowserKeyMap(),
		help:   help.New(),
	}
	m.table = table.New(
		table.WithColumns(browserColumns(cfg.ScreenW)),
		table.WithFocused(true),
		table.WithHeight(tableHeight(cfg.ScreenH)),
	)
	m.refresh()
	return m
}

func browserColumns(screenW int) []table.Column {
	nameW := screenW - 40
	if nameW < 16 {
		nameW = 16
	}
	return []table.Column{
		{Title: "Sketch", Width: nameW},
		{Title: "Strokes", Width: 8},
		{Title: "Shapes", Width: 8},
		{Title: "Updated", Width: 17},
	}
}

func tableHeight(screenH int) int {
	h := screenH - 6
	if h < 3 {
		h = 3
	}
	return h
}

// refresh reloads the sketch list from storage.
func (m *BrowserModel) refresh() {
	if m.store == nil {
		m.table.SetRows(nil)
		m.message = "no storage available; press n to sketch without saving"
		return
	}

	infos, err := m.store.ListSketches()
	if err != nil {
		m.message = fmt.Sprintf("cannot list sketches: %v", err)
		return
	}
	if len(infos) > maxBrowserRows {
		infos = infos[:maxBrowserRows]
	}

	rows := make([]table.Row, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, table.Row{
			info.Name,
			fmt.Sprintf("%d", info.Strokes),
			fmt.Sprintf("%d", info.Shapes),
			info.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)

	if len(rows) == 0 {
		m.message = "no sketches yet; press n to start one"
	} else {
		m.message = ""
	}
}

// selectedName returns the highlighted sketch name, or empty.
func (m BrowserModel) selectedName() string {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.table.SetColumns(browserColumns(msg.Width))
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if name := m.selectedName(); name != "" {
				m.selection = name
			}
			return m, nil

		case key.Matches(msg, m.keys.New):
			m.newRequested = true
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if name := m.selectedName(); name != "" && m.store != nil {
				if err := m.store.DeleteSketch(name); err != nil {
					m.message = fmt.Sprintf("delete failed: %v", err)
				} else {
					m.refresh()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	view := browserTitleStyle.Render("tui-sketch") + "\n\n" + m.table.View() + "\n"
	if m.message != "" {
		view += messageStyle.Render(m.message) + "\n"
	}
	view += m.help.View(m.keys)
	return view
}
