// Package store holds the live, mutable diagram graph.
//
// The store is created once at startup, replaced wholesale on each
// successful import, and incrementally mutated by interactive edits
// between imports. It is addressable by node identifier and keeps
// deterministic insertion order so that repeated imports of the same
// document produce identical listings.
//
// The store is not safe for concurrent use without external
// synchronization; all mutation runs inside a single event turn.
package store

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/flowdeck/flowdeck/pkg/model"
)

var (
	// ErrUnknownSourceNode is returned by [Graph.InsertEdge] when the
	// edge's source node is not present in the store.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.InsertEdge] when the
	// edge's target node is not present in the store.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrUnknownNode is returned by [Graph.RemoveNode] when no node
	// with the given identifier exists.
	ErrUnknownNode = errors.New("unknown node")
)

// Graph is the live diagram store. The zero value is not usable; use
// [New].
type Graph struct {
	nodes map[string]model.Node
	order []string
	edges []model.Edge
}

// New creates an empty live graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]model.Node)}
}

// Clear removes all nodes and edges.
func (g *Graph) Clear() {
	g.nodes = make(map[string]model.Node)
	g.order = nil
	g.edges = nil
}

// InsertNode adds a node and returns the identifier actually used.
// When the requested identifier is empty or already taken, a fresh
// identifier is assigned instead of overwriting - the caller must use
// the returned value to address the node afterwards.
func (g *Graph) InsertNode(n model.Node) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if _, taken := g.nodes[n.ID]; taken {
		n.ID = uuid.NewString()
	}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return n.ID
}

// InsertEdge adds an edge between two existing nodes. Returns
// ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint is
// absent; the store is left unchanged in that case.
func (g *Graph) InsertEdge(e model.Edge) error {
	if _, ok := g.nodes[e.Source]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.Target]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, e)
	return nil
}

// RemoveNode removes a node and every edge incident to it.
// Returns ErrUnknownNode when the identifier does not resolve.
func (g *Graph) RemoveNode(id string) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrUnknownNode
	}
	delete(g.nodes, id)
	g.order = slices.DeleteFunc(g.order, func(s string) bool { return s == id })
	g.edges = slices.DeleteFunc(g.edges, func(e model.Edge) bool {
		return e.Source == id || e.Target == id
	})
	return nil
}

// Node looks up a node by identifier.
func (g *Graph) Node(id string) (model.Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []model.Node {
	out := make([]model.Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []model.Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Snapshot returns the current contents as a Diagram, in insertion
// order. Used by the HTTP API and the render exporter.
func (g *Graph) Snapshot() model.Diagram {
	return model.Diagram{Nodes: g.Nodes(), Edges: g.Edges()}
}
