// Package tui provides the Bubble Tea integration for the sketch editor.
// It handles the terminal UI loop, pointer and key input mapping, and
// rendering, while the canvas and geometry layers stay pure.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/config"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
	"github.com/ravkin/tui-sketch/internal/registry"
	"github.com/ravkin/tui-sketch/internal/storage"
)

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// EditorModel is the Bubble Tea model for the sketch editor.
type EditorModel struct {
	doc       *canvas.Document
	store     *storage.Store
	config    core.RuntimeConfig
	appCfg    config.Config
	screen    *core.Screen
	tool      registry.Tool
	keymap    *KeyMapper
	style     canvas.Style
	region    geom.Region // Configured boundary, kept for re-enable after toggle
	hasRegion bool
	dragging  bool
	dirty     bool
	quitting  bool
	message   string
}

// NewEditorModel creates an editor for the given document. The store may be
// nil, in which case saving is unavailable but editing still works.
func NewEditorModel(doc *canvas.Document, store *storage.Store, cfg core.RuntimeConfig, appCfg config.Config) EditorModel {
	tool, err := registry.Create(appCfg.Editor.DefaultTool)
	if err != nil {
		// Unknown configured tool: fall back to the pen.
		tool, _ = registry.Create("pen")
	}
	applyStrokeColor(tool, appCfg)

	style := canvas.DefaultStyle()
	if c, ok := core.ColorByName(appCfg.Boundary.Style.Outline); ok {
		style.Outline = c
	}
	if c, ok := core.ColorByName(appCfg.Boundary.Style.Tint); ok {
		style.Tint = c
	}

	m := EditorModel{
		doc:    doc,
		store:  store,
		config: cfg,
		appCfg: appCfg,
		screen: core.NewScreen(cfg.ScreenW, canvasHeight(cfg.ScreenH)),
		tool:   tool,
		keymap: NewKeyMapper(),
		style:  style,
	}

	if appCfg.Boundary.Enabled {
		m.region = appCfg.Boundary.Region()
		m.hasRegion = true
		doc.SetBoundary(m.region)
	}

	return m
}

// applyStrokeColor passes the configured stroke color to tools that take one.
func applyStrokeColor(tool registry.Tool, appCfg config.Config) {
	c, ok := core.ColorByName(appCfg.Editor.PenColor)
	if !ok {
		return
	}
	if t, ok := tool.(interface{ SetColor(core.Color) }); ok {
		t.SetColor(c)
	}
}

// canvasHeight reserves the bottom row for the status bar.
func canvasHeight(screenH int) int {
	if screenH <= 1 {
		return 1
	}
	return screenH - 1
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, canvasHeight(msg.Height))
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, toolID := m.keymap.MapKey(msg)

	switch action {
	case EditorActionQuit:
		m.quitting = true
		return m, tea.Quit

	case EditorActionSave:
		m.save()

	case EditorActionSelectTool:
		if tool, err := registry.Create(toolID); err == nil {
			applyStrokeColor(tool, m.appCfg)
			m.tool = tool
			m.message = ""
		}

	case EditorActionToggleBoundary:
		if !m.hasRegion {
			m.message = "no boundary configured"
			break
		}
		if m.doc.Boundary != nil {
			m.doc.ClearBoundary()
			m.message = "boundary off"
		} else {
			m.doc.SetBoundary(m.region)
			m.message = "boundary on"
		}

	case EditorActionClear:
		m.doc.Strokes = nil
		m.doc.Shapes = nil
		m.dirty = true
		m.message = "canvas cleared"
	}

	return m, nil
}

// handleMouse routes pointer events to the active tool. Canvas coordinates
// are terminal cells; the status row at the bottom is not drawable.
func (m EditorModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := geom.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y >= m.screen.Height() {
			return m, nil
		}
		m.tool.Press(m.doc, p)
		m.dragging = true
		m.message = ""

	case tea.MouseActionMotion:
		if m.dragging {
			m.tool.Drag(m.doc, p)
		}

	case tea.MouseActionRelease:
		if m.dragging {
			m.tool.Release(m.doc, p)
			m.dragging = false
			m.dirty = true
		}
	}

	return m, nil
}

// save persists the document, trimmed strokes and all.
func (m *EditorModel) save() {
	if m.store == nil {
		m.message = "no storage available"
		return
	}
	if _, err := m.store.SaveSketch(m.doc); err != nil {
		m.message = fmt.Sprintf("save failed: %v", err)
		return
	}
	m.dirty = false
	m.message = "saved"
}

// View renders the canvas and the status bar.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.doc.Render(m.screen, m.style)
	m.tool.Preview(m.screen)

	return RenderScreen(m.screen) + "\n" + m.statusBar()
}

// statusBar renders the bottom row: sketch name, active tool, boundary
// state, and key hints.
func (m EditorModel) statusBar() string {
	boundary := "off"
	if m.doc.Boundary != nil {
		boundary = "on"
	}
	dirty := ""
	if m.dirty {
		dirty = "*"
	}

	left := fmt.Sprintf(" %s%s | %s | boundary:%s ", m.doc.Name, dirty, m.tool.Title(), boundary)
	hints := "[p]en [r]ect [l]ine [m]ove [e]rase [b]oundary [s]ave [q]uit"

	bar := statusStyle.Render(left)
	if m.message != "" {
		bar += " " + messageStyle.Render(m.message)
	} else {
		bar += " " + hints
	}
	return bar
}

// RunEditor starts the Bubble Tea program for a single document.
func RunEditor(doc *canvas.Document, store *storage.Store, cfg core.RuntimeConfig, appCfg config.Config) error {
	model := NewEditorModel(doc, store, cfg, appCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer-driven drawing needs motion events
	)

	_, err := p.Run()
	return err
}
