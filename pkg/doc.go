// Package pkg provides the core libraries for Flowdeck diagram import
// and editing.
//
// # Overview
//
// Flowdeck reads diagram documents in two interchange formats, builds a
// canonical graph model from them, and reconciles that model into a
// live graph that can be edited interactively. The pkg directory is
// organized along that flow:
//
//  1. [diagram] - Format parsers (XML markup, tabular text)
//  2. [model] - Canonical diagram model and style defaults
//  3. [store] - Live graph store with identifier allocation
//  4. [reconcile] - Full-replacement import into the store
//  5. [session] - Interactive copy/delete protocol
//  6. [render] - Graphviz DOT and SVG export
//
// # Architecture
//
// The typical data flow through Flowdeck:
//
//	Document (markup XML or tabular text)
//	         ↓
//	    [diagram] package (parse into raw records)
//	         ↓
//	    [model] package (coerce, default, canonicalize)
//	         ↓
//	    [reconcile] package (replace the live graph)
//	         ↓
//	    [store] package (live graph) ←→ [session] package (edits)
//	         ↓
//	    JSON / DOT / SVG output
//
// # Quick Start
//
// Import a document and apply it to a live graph:
//
//	import (
//	    "context"
//	    "github.com/flowdeck/flowdeck/pkg/diagram"
//	    "github.com/flowdeck/flowdeck/pkg/pipeline"
//	    "github.com/flowdeck/flowdeck/pkg/reconcile"
//	    "github.com/flowdeck/flowdeck/pkg/store"
//	)
//
//	// 1. Pick a parser by file name
//	parser, _ := diagram.Detect("deck.xml")
//
//	// 2. Parse and build the canonical model
//	runner := pipeline.NewRunner(nil, nil)
//	res, _ := runner.Import(context.Background(), parser, raw)
//
//	// 3. Replace the live graph
//	g := store.New()
//	rep := reconcile.Apply(res.Diagram, g)
//
// Edit the graph interactively:
//
//	ctrl := session.New(g)
//	ctrl.Click(nodeID)
//	newID, _ := ctrl.Copy() // offset duplicate plus a dashed edge
//
// # Main Packages
//
// ## Import
//
// [diagram] - Document parsers producing raw node and edge records.
// Markup documents are attribute-driven XML; tabular documents are
// comma-separated node and edge sections split by a separator line.
// Record-level defects are collected, not fatal.
//
// [coerce] - Lenient string-to-value coercion used while building the
// canonical model. Coercion never fails; malformed input falls back to
// a default.
//
// [model] - Canonical diagram model: nodes with position, shape, size,
// and style; edges with stroke and dash patterns. [model.Build]
// resolves defaults and per-shape rules.
//
// [pipeline] - Parse → build orchestration with content-hash caching,
// shared by the CLI and the HTTP server.
//
// ## Live Graph
//
// [store] - Mutable graph keyed by node identifier. Allocates fresh
// identifiers on collision and validates edge endpoints on insert.
//
// [reconcile] - Applies a built model to the store as a full
// replacement: clear, then nodes, then edges. Dangling edges are
// skipped with diagnostics.
//
// [session] - Single-selection interaction protocol: click, then copy,
// delete, or dismiss.
//
// ## Infrastructure
//
// [cache] - Byte-oriented cache with file, redis, and null backends.
//
// [httputil] - Remote document fetching with retry and response
// caching.
//
// [render] - Graphviz export with pinned positions and the canonical
// style payload.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// [observability] - Optional hooks for import, cache, and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/diagram/...  # Specific package
//
// [diagram]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/diagram
// [coerce]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/coerce
// [model]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/model
// [model.Build]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/model#Build
// [pipeline]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/pipeline
// [store]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/store
// [reconcile]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/reconcile
// [session]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/session
// [cache]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/httputil
// [render]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/render
// [errors]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/errors
// [observability]: https://pkg.go.dev/github.com/flowdeck/flowdeck/pkg/observability
package pkg
