// Package pkg provides the core libraries for working with JSON canvas
// documents.
//
// # Overview
//
// A canvas is an infinite spatial board of nodes (text, file, link, group)
// optionally connected by directed edges, persisted as a single JSON file.
// The pkg directory is organized into three areas:
//
//  1. [canvas] - The typed document model: nodes, edges, the owning
//     Canvas aggregate, validation, and geometric group nesting.
//  2. [canvasjson] - The serialization boundary: the wire format and
//     conversions between JSON files and the typed model.
//  3. [cache] - A small content-addressed result cache used by the
//     HTTP API to memoize validation and nesting results.
//
// # Quick Start
//
// Load a canvas file, validate it, and resolve its group structure:
//
//	c, err := canvasjson.ReadFile("board.canvas")
//	if err != nil {
//	    return err
//	}
//	if err := c.Validate(); err != nil {
//	    return err
//	}
//	for _, nest := range c.NestAll() {
//	    fmt.Println(nest.Group.Label, len(nest.Children))
//	}
//
// Build a canvas programmatically and write it back out:
//
//	c := canvas.New()
//	note, _ := canvas.NewTextNode("Remember this", canvas.At(0, 0))
//	c.AddNode(note)
//	canvasjson.WriteFile(c, "board.canvas")
//
// # Design
//
// The model validates at its boundaries: constructors and the JSON
// decoder reject inconsistent values, so code holding a *canvas.Node or
// *canvas.Edge can trust its fields. Referential integrity between
// edges and nodes is the one invariant deferred to an explicit
// [canvas.Canvas.Validate] call, because files produced by other tools
// legitimately contain dangling references that callers may want to
// inspect rather than reject.
//
// Group membership is never stored; it is derived from bounding-box
// geometry on demand (see [canvas.ResolveNesting]).
//
// [canvas]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/canvas
// [canvasjson]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/canvasjson
// [cache]: https://pkg.go.dev/github.com/matzehuels/jsoncanvas/pkg/cache
package pkg
