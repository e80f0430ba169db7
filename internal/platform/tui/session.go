package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/config"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/storage"
)

type sessionState int

const (
	stateBrowser sessionState = iota
	stateEditor
)

// SessionModel manages the full editing flow: browser -> editor -> browser.
// This is the top-level model used for SSH sessions and the local browse
// command.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	appCfg   config.Config
	username string
	state    sessionState
	browser  BrowserModel
	editor   EditorModel
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, appCfg config.Config, username string) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		appCfg:   appCfg,
		username: username,
		browser:  NewBrowserModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.browser.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so new sub-models start at the right size.
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateBrowser:
		model, cmd := m.browser.Update(msg)
		m.browser = model.(BrowserModel)

		if m.browser.quitting {
			return m, tea.Quit
		}
		if m.browser.newRequested {
			m.browser.newRequested = false
			m.openEditor(canvas.New(newSketchName()))
			return m, nil
		}
		if m.browser.selection != "" {
			name := m.browser.selection
			m.browser.selection = ""
			doc, err := m.loadDocument(name)
			if err != nil {
				m.browser.message = fmt.Sprintf("cannot open %s: %v", name, err)
				return m, nil
			}
			m.openEditor(doc)
			return m, nil
		}
		return m, cmd

	case stateEditor:
		model, _ := m.editor.Update(msg)
		m.editor = model.(EditorModel)

		if m.editor.quitting {
			// Back to the browser instead of ending the session.
			m.state = stateBrowser
			m.browser = NewBrowserModel(m.store, m.config)
			return m, nil
		}
		return m, nil
	}

	return m, nil
}

// openEditor switches to the editor for the given document.
func (m *SessionModel) openEditor(doc *canvas.Document) {
	m.editor = NewEditorModel(doc, m.store, m.config, m.appCfg)
	m.state = stateEditor
}

// loadDocument fetches a stored sketch, or starts a fresh one if it has
// vanished since the browser refresh.
func (m *SessionModel) loadDocument(name string) (*canvas.Document, error) {
	if m.store == nil {
		return canvas.New(name), nil
	}
	doc, err := m.store.LoadSketch(name)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = canvas.New(name)
	}
	return doc, nil
}

// newSketchName generates a unique default name for a fresh sketch.
func newSketchName() string {
	return "sketch-" + time.Now().Format("20060102-150405")
}

// View renders the active sub-model.
func (m SessionModel) View() string {
	switch m.state {
	case stateEditor:
		return m.editor.View()
	default:
		return m.browser.View()
	}
}

// RunSession starts the browser/editor flow in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, appCfg config.Config) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, appCfg, ""),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
