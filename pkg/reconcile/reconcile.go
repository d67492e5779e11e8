// Package reconcile applies a built diagram model to the live graph
// store.
//
// Reconciliation is a full replace: clear the store, insert every node
// in model order, then insert every edge in model order. Edges whose
// endpoints do not resolve against the freshly inserted node set are
// skipped with a per-record diagnostic; they never abort the import.
// Because reconciliation only runs on a completely built model, a
// fatal parse or build failure leaves the previous store contents
// untouched.
package reconcile

import (
	"fmt"

	"github.com/flowdeck/flowdeck/pkg/model"
)

// Store is the capability the reconciler needs from the live graph.
// *store.Graph satisfies it; tests substitute an in-memory fake.
type Store interface {
	Clear()
	InsertNode(model.Node) string
	InsertEdge(model.Edge) error
}

// Report summarizes one reconciliation pass.
type Report struct {
	NodesInserted int
	EdgesInserted int
	// SkippedEdges holds one diagnostic per edge dropped for a
	// dangling endpoint.
	SkippedEdges []string
}

// Apply replaces the store contents with the given diagram.
// Node insertion order follows the model; edges follow after all
// nodes. The returned report is never nil.
func Apply(d *model.Diagram, s Store) *Report {
	rep := &Report{}

	s.Clear()
	for _, n := range d.Nodes {
		s.InsertNode(n)
		rep.NodesInserted++
	}
	for _, e := range d.Edges {
		if err := s.InsertEdge(e); err != nil {
			rep.SkippedEdges = append(rep.SkippedEdges,
				fmt.Sprintf("edge %s→%s: %v", e.Source, e.Target, err))
			continue
		}
		rep.EdgesInserted++
	}

	return rep
}
