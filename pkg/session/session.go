// Package session implements the interactive mutation protocol over the
// live graph store.
//
// A Controller is a state machine with a single selection slot: a node
// click selects one node and signals that a choice dialog should open;
// the user then copies the node, deletes it, or dismisses the dialog.
// Every transition runs to completion within one event turn, so the
// controller never interleaves with an import. Mutations go through the
// same store capability the reconciler uses and preserve the same
// entity invariants - a copy is a complete canonical node, never a
// partial one.
package session

import (
	"errors"
	"fmt"

	"github.com/flowdeck/flowdeck/pkg/model"
)

// CopyOffset is the position delta applied to a duplicated node on
// both axes.
const CopyOffset = 100.0

var (
	// ErrNoSelection is returned by Copy and Delete when no node is
	// selected.
	ErrNoSelection = errors.New("no node selected")

	// ErrUnknownNode is returned by Click when the identifier does not
	// resolve against the store.
	ErrUnknownNode = errors.New("unknown node")
)

// Store is the capability the controller needs from the live graph.
// *store.Graph satisfies it; tests substitute an in-memory fake.
type Store interface {
	InsertNode(model.Node) string
	InsertEdge(model.Edge) error
	RemoveNode(id string) error
	Node(id string) (model.Node, bool)
}

// Controller dispatches click and dialog events against the store.
// It is not safe for concurrent use; callers serialize events.
type Controller struct {
	store    Store
	selected string
}

// New creates an idle controller bound to the given store.
func New(s Store) *Controller {
	return &Controller{store: s}
}

// Click selects the clicked node and signals that the choice dialog
// should open. A click on an unknown identifier leaves the controller
// idle and returns ErrUnknownNode.
func (c *Controller) Click(id string) error {
	if _, ok := c.store.Node(id); !ok {
		c.selected = ""
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	c.selected = id
	return nil
}

// Selected returns the currently selected node identifier, if any.
func (c *Controller) Selected() (string, bool) {
	return c.selected, c.selected != ""
}

// Copy duplicates the selected node and connects the original to the
// copy with a dashed edge. The copy keeps the original's label, shape,
// size, and style, offset by [CopyOffset] on both axes, under a fresh
// store-assigned identifier. The controller returns to idle and
// reports the new node's identifier.
func (c *Controller) Copy() (string, error) {
	id, ok := c.Selected()
	if !ok {
		return "", ErrNoSelection
	}
	defer func() { c.selected = "" }()

	orig, ok := c.store.Node(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}

	dup := orig
	dup.ID = "" // the store assigns a fresh identifier
	dup.X += CopyOffset
	dup.Y += CopyOffset

	newID := c.store.InsertNode(dup)
	if err := c.store.InsertEdge(model.Edge{
		Source:    id,
		Target:    newID,
		Stroke:    model.EdgeStrokeMarkup,
		DashArray: model.DashDashed,
	}); err != nil {
		return "", fmt.Errorf("connect copy: %w", err)
	}
	return newID, nil
}

// Delete removes the selected node; the store drops its incident
// edges. The controller returns to idle.
func (c *Controller) Delete() error {
	id, ok := c.Selected()
	if !ok {
		return ErrNoSelection
	}
	defer func() { c.selected = "" }()
	return c.store.RemoveNode(id)
}

// Dismiss closes the dialog without mutating the store.
func (c *Controller) Dismiss() {
	c.selected = ""
}
