// Package canvas implements the typed document model for canvas files:
// a graph of positioned visual nodes connected by directed, styled edges.
//
// # Core Types
//
//   - [Canvas]: owning aggregate of nodes and edges for one document
//   - [Node]: positioned element, one of text, file, link, or group
//   - [Edge]: directed connector between two node IDs
//   - [Color]: palette preset ("1".."6") or hex value ("#RRGGBB")
//   - [Nesting]: resolved group membership tree derived from geometry
//
// # Construction
//
// Nodes and edges are built through constructors that apply defaults,
// generate missing IDs, and validate field-level consistency:
//
//	note, _ := canvas.NewTextNode("hello", canvas.At(0, 0))
//	box, _ := canvas.NewGroupNode(canvas.WithLabel("Ideas"), canvas.WithSize(800, 600))
//	link, _ := canvas.NewEdge(note.ID, box.ID, canvas.ToSide("left", "arrow"))
//
// Raw string input (type tags, sides, ends, colors) is converted exactly
// once at the document boundary via the Parse functions; internal code
// never re-validates already-typed values.
//
// # Invariants
//
// A canvas enforces unique node and edge IDs on every insert. Edge
// endpoints are referential by ID and deliberately unchecked at edge
// construction and insertion; [Canvas.Validate] re-checks the whole
// document and wraps the first violation in a [*ValidationError].
//
// # Containment
//
// Grouping structure is not stored. [ResolveNesting] derives it from
// bounding boxes: a node belongs to a group when its box lies entirely
// within the group's box, boundaries inclusive. Nested groups resolve
// recursively; when sibling groups overlap, the first in input order
// claims contested nodes.
//
// # Concurrency
//
// A Canvas is intended for exclusive use by one logical owner. Callers
// sharing one across goroutines must serialize access externally.
package canvas
