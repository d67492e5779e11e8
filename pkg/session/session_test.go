package session

import (
	"errors"
	"testing"

	"github.com/flowdeck/flowdeck/pkg/model"
	"github.com/flowdeck/flowdeck/pkg/store"
)

func seeded(t *testing.T, ids ...string) *store.Graph {
	t.Helper()
	g := store.New()
	for i, id := range ids {
		g.InsertNode(model.Node{
			ID: id, Label: "Node " + id,
			X: float64(i * 10), Y: float64(i * 20),
			Shape: model.ShapeCircle, Width: 100, Height: 60,
			Style: model.Style{Fill: model.DefaultFill, Stroke: model.DefaultStroke, StrokeWidth: 1},
		})
	}
	return g
}

func TestClickSelects(t *testing.T) {
	g := seeded(t, "a")
	c := New(g)

	if err := c.Click("a"); err != nil {
		t.Fatalf("Click() error = %v", err)
	}
	if id, ok := c.Selected(); !ok || id != "a" {
		t.Errorf("Selected() = %q/%v, want a/true", id, ok)
	}
}

func TestClickUnknownNode(t *testing.T) {
	g := seeded(t, "a")
	c := New(g)
	c.Click("a")

	if err := c.Click("ghost"); !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("Click() error = %v, want ErrUnknownNode", err)
	}
	if _, ok := c.Selected(); ok {
		t.Error("controller still has a selection after unknown click")
	}
}

func TestCopy(t *testing.T) {
	g := seeded(t, "a")
	c := New(g)
	c.Click("a")

	orig, _ := g.Node("a")
	newID, err := c.Copy()
	if err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if newID == "" || newID == "a" {
		t.Fatalf("Copy() = %q, want fresh identifier", newID)
	}

	dup, ok := g.Node(newID)
	if !ok {
		t.Fatal("copy not found in store")
	}
	if dup.X != orig.X+CopyOffset || dup.Y != orig.Y+CopyOffset {
		t.Errorf("copy position = (%v,%v), want (%v,%v)", dup.X, dup.Y, orig.X+CopyOffset, orig.Y+CopyOffset)
	}
	if dup.Label != orig.Label || dup.Shape != orig.Shape || dup.Style != orig.Style {
		t.Errorf("copy payload differs: %+v vs %+v", dup, orig)
	}
	if dup.Width != orig.Width || dup.Height != orig.Height {
		t.Errorf("copy size = %vx%v, want %vx%v", dup.Width, dup.Height, orig.Width, orig.Height)
	}

	if g.EdgeCount() != 1 {
		t.Fatalf("edges = %d, want 1", g.EdgeCount())
	}
	e := g.Edges()[0]
	if e.Source != "a" || e.Target != newID {
		t.Errorf("edge = %s→%s, want a→%s", e.Source, e.Target, newID)
	}
	if e.DashArray != model.DashDashed {
		t.Errorf("edge dash = %q, want %q", e.DashArray, model.DashDashed)
	}

	if _, ok := c.Selected(); ok {
		t.Error("controller still selected after copy")
	}
}

func TestCopyWithoutSelection(t *testing.T) {
	c := New(seeded(t, "a"))
	if _, err := c.Copy(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Copy() error = %v, want ErrNoSelection", err)
	}
}

func TestDelete(t *testing.T) {
	g := seeded(t, "a", "b")
	g.InsertEdge(model.Edge{Source: "a", Target: "b"})
	c := New(g)
	c.Click("a")

	if err := c.Delete(); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := g.Node("a"); ok {
		t.Error("node a still present after delete")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("edges = %d, want 0 (incident edge removed)", g.EdgeCount())
	}
	if _, ok := c.Selected(); ok {
		t.Error("controller still selected after delete")
	}
}

func TestDeleteWithoutSelection(t *testing.T) {
	c := New(seeded(t, "a"))
	if err := c.Delete(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Delete() error = %v, want ErrNoSelection", err)
	}
}

func TestDismiss(t *testing.T) {
	g := seeded(t, "a")
	c := New(g)
	c.Click("a")

	c.Dismiss()
	if _, ok := c.Selected(); ok {
		t.Error("controller still selected after dismiss")
	}
	if g.NodeCount() != 1 || g.EdgeCount() != 0 {
		t.Error("dismiss mutated the store")
	}
}

func TestCopyTwiceNeedsReclick(t *testing.T) {
	g := seeded(t, "a")
	c := New(g)
	c.Click("a")
	if _, err := c.Copy(); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if _, err := c.Copy(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("second Copy() error = %v, want ErrNoSelection", err)
	}
}
