// Package registry provides a global registry for drawing tool factories.
// Tools register themselves in init() functions, allowing the platform to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
)

// Tool is the interface all drawing tools implement. Tools contain pure
// logic with no external dependencies (especially no Bubble Tea). The
// platform maps pointer events to the Press/Drag/Release protocol; tools
// mutate the document through its own methods, which apply the boundary
// constraints.
type Tool interface {
	// ID returns a unique identifier for this tool (e.g., "pen", "move").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Press begins an interaction at p in canvas coordinates.
	Press(doc *canvas.Document, p geom.Point)

	// Drag continues an interaction while the pointer is held down.
	Drag(doc *canvas.Document, p geom.Point)

	// Release finishes the interaction, committing its result to the
	// document (or discarding it, per the document's boundary policy).
	Release(doc *canvas.Document, p geom.Point)

	// Preview draws transient in-progress feedback (the uncommitted stroke
	// or rubber-band shape) on top of the rendered document.
	Preview(dst *core.Screen)
}

// ToolInfo contains metadata about a registered tool.
type ToolInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a tool.
type Factory func() Tool

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a tool factory to the registry.
// Typically called from a tool's init() function.
// Panics if a tool with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: tool %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	t := f()
	titles[id] = t.Title()
}

// List returns information about all registered tools, sorted by ID.
func List() []ToolInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ToolInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ToolInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new tool by its ID.
// Returns an error if the tool ID is not registered.
func Create(id string) (Tool, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown tool %q", id)
	}

	return f(), nil
}

// Exists checks if a tool with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
