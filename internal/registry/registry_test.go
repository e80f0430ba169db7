package registry

import (
	"testing"

	"github.com/ravkin/tui-sketch/internal/canvas"
	"github.com/ravkin/tui-sketch/internal/core"
	"github.com/ravkin/tui-sketch/internal/geom"
)

type fakeTool struct {
	id    string
	title string
}

func (f *fakeTool) ID() string                             { return f.id }
func (f *fakeTool) Title() string                          { return f.title }
func (f *fakeTool) Press(_ *canvas.Document, _ geom.Point) {}
func (f *fakeTool) Drag(_ *canvas.Document, _ geom.Point)  {}
func (f *fakeTool) Release(_ *canvas.Document, _ geom.Point) {}
func (f *fakeTool) Preview(_ *core.Screen)                   {}

func TestRegisterAndCreate(t *testing.T) {
	Register("fake-a", func() Tool {
		return &fakeTool{id: "fake-a", title: "Fake A"}
	})

	if !Exists("fake-a") {
		t.Fatal("registered tool not found")
	}

	tool, err := Create("fake-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if tool.ID() != "fake-a" || tool.Title() != "Fake A" {
		t.Errorf("created tool = %q/%q", tool.ID(), tool.Title())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-tool"); err == nil {
		t.Error("Create() of an unknown tool should fail")
	}
	if Exists("no-such-tool") {
		t.Error("Exists() true for an unknown tool")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("fake-dup", func() Tool {
		return &fakeTool{id: "fake-dup", title: "Dup"}
	})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("fake-dup", func() Tool {
		return &fakeTool{id: "fake-dup", title: "Dup"}
	})
}

func TestListSorted(t *testing.T) {
	Register("fake-z", func() Tool {
		return &fakeTool{id: "fake-z", title: "Z"}
	})
	Register("fake-b", func() Tool {
		return &fakeTool{id: "fake-b", title: "B"}
	})

	infos := List()
	if len(infos) < 2 {
		t.Fatalf("List() returned %d tools", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}
