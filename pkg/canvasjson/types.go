package canvasjson

import (
	"fmt"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
)

// Document is the canonical wire format for one canvas file: a flat
// object with "nodes" and "edges" arrays, in canvas insertion order.
// This is the entire external contract; there is no other persisted
// state.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is the wire form of a node record. All variants share one record
// shape discriminated by the "type" tag; variant fields are omitted for
// the variants they do not belong to.
//
// Geometry fields are pointers so that records without them take the
// constructor defaults on import (x=0, y=0, width=400, height=100)
// while explicit zeros survive round-trips. On export they are always
// populated.
//
// X1 and Y1 are derived corner coordinates, emitted only when
// [WithComputedCorners] is requested. They are ignored on import.
type Node struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	X      *int   `json:"x"`
	Y      *int   `json:"y"`
	Width  *int   `json:"width"`
	Height *int   `json:"height"`
	X1     *int   `json:"x1,omitempty"`
	Y1     *int   `json:"y1,omitempty"`
	Color  string `json:"color,omitempty"`

	Text            *string `json:"text,omitempty"`
	File            *string `json:"file,omitempty"`
	Subpath         string  `json:"subpath,omitempty"`
	URL             *string `json:"url,omitempty"`
	Label           string  `json:"label,omitempty"`
	Background      string  `json:"background,omitempty"`
	BackgroundStyle string  `json:"backgroundStyle,omitempty"`
}

// Edge is the wire form of an edge record.
type Edge struct {
	ID       string `json:"id"`
	FromNode string `json:"fromNode"`
	FromSide string `json:"fromSide,omitempty"`
	FromEnd  string `json:"fromEnd,omitempty"`
	ToNode   string `json:"toNode"`
	ToSide   string `json:"toSide,omitempty"`
	ToEnd    string `json:"toEnd,omitempty"`
	Color    string `json:"color,omitempty"`
	Label    string `json:"label,omitempty"`
}

// FromCanvas converts a canvas into its wire format, preserving
// insertion order. Empty canvases produce empty arrays, not null.
func FromCanvas(c *canvas.Canvas, opts ...MarshalOption) Document {
	options := applyOptions(opts)

	nodes := c.Nodes()
	edges := c.Edges()
	doc := Document{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, len(edges)),
	}
	for i, n := range nodes {
		doc.Nodes[i] = nodeToWire(n, options)
	}
	for i, e := range edges {
		doc.Edges[i] = edgeToWire(e)
	}
	return doc
}

// ToCanvas assembles a wire document into a validated canvas. Each node
// record is dispatched by its type tag into the typed model; unknown or
// missing tags fail with [canvas.ErrInvalidNodeType]. String-typed enum
// and color fields are converted here, once, at the boundary.
//
// ToCanvas does not run [canvas.Canvas.Validate]; callers wanting full
// graph-level guarantees (no orphan edges) must invoke it explicitly.
func ToCanvas(doc Document) (*canvas.Canvas, error) {
	c := canvas.New()
	for _, rec := range doc.Nodes {
		n, err := nodeFromWire(rec)
		if err != nil {
			return nil, err
		}
		if err := c.AddNode(n); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, rec := range doc.Edges {
		e, err := edgeFromWire(rec)
		if err != nil {
			return nil, err
		}
		if err := c.AddEdge(e); err != nil {
			return nil, fmt.Errorf("edge %s: %w", e.ID, err)
		}
	}
	return c, nil
}

func nodeToWire(n *canvas.Node, options marshalOptions) Node {
	x, y, w, h := n.X, n.Y, n.Width, n.Height
	rec := Node{
		ID:     n.ID,
		Type:   string(n.Type),
		X:      &x,
		Y:      &y,
		Width:  &w,
		Height: &h,
		Color:  n.Color.String(),
	}
	if options.corners {
		x1, y1 := n.X1(), n.Y1()
		rec.X1 = &x1
		rec.Y1 = &y1
	}

	switch n.Type {
	case canvas.NodeText:
		text := n.Text
		rec.Text = &text
	case canvas.NodeFile:
		file := n.File
		rec.File = &file
		rec.Subpath = n.Subpath
	case canvas.NodeLink:
		url := n.URL
		rec.URL = &url
	case canvas.NodeGroup:
		rec.Label = n.Label
		rec.Background = n.Background
		rec.BackgroundStyle = string(n.BackgroundStyle)
	}
	return rec
}

func nodeFromWire(rec Node) (*canvas.Node, error) {
	typ, err := canvas.ParseNodeType(rec.Type)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", rec.ID, err)
	}

	n := &canvas.Node{
		ID:     rec.ID,
		Type:   typ,
		X:      intOr(rec.X, 0),
		Y:      intOr(rec.Y, 0),
		Width:  intOr(rec.Width, canvas.DefaultWidth),
		Height: intOr(rec.Height, canvas.DefaultHeight),
	}
	if n.ID == "" {
		n.ID = canvas.NewID()
	}
	if rec.Color != "" {
		if n.Color, err = canvas.ParseColor(rec.Color); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}

	switch typ {
	case canvas.NodeText:
		n.Text = stringOr(rec.Text)
	case canvas.NodeFile:
		n.File = stringOr(rec.File)
		n.Subpath = rec.Subpath
	case canvas.NodeLink:
		n.URL = stringOr(rec.URL)
	case canvas.NodeGroup:
		n.Label = rec.Label
		n.Background = rec.Background
		if rec.BackgroundStyle != "" {
			style, err := canvas.ParseBackgroundStyle(rec.BackgroundStyle)
			if err != nil {
				return nil, fmt.Errorf("node %s: %w", n.ID, err)
			}
			n.BackgroundStyle = style
		}
	}

	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

func edgeToWire(e *canvas.Edge) Edge {
	return Edge{
		ID:       e.ID,
		FromNode: e.FromNode,
		FromSide: string(e.FromSide),
		FromEnd:  string(e.FromEnd),
		ToNode:   e.ToNode,
		ToSide:   string(e.ToSide),
		ToEnd:    string(e.ToEnd),
		Color:    e.Color.String(),
		Label:    e.Label,
	}
}

func edgeFromWire(rec Edge) (*canvas.Edge, error) {
	e := &canvas.Edge{
		ID:       rec.ID,
		FromNode: rec.FromNode,
		ToNode:   rec.ToNode,
		Label:    rec.Label,
	}
	if e.ID == "" {
		e.ID = canvas.NewID()
	}

	var err error
	if rec.FromSide != "" {
		if e.FromSide, err = canvas.ParseSide(rec.FromSide); err != nil {
			return nil, fmt.Errorf("edge %s: %w", e.ID, err)
		}
	}
	if rec.ToSide != "" {
		if e.ToSide, err = canvas.ParseSide(rec.ToSide); err != nil {
			return nil, fmt.Errorf("edge %s: %w", e.ID, err)
		}
	}
	if rec.FromEnd != "" {
		if e.FromEnd, err = canvas.ParseEndStyle(rec.FromEnd); err != nil {
			return nil, fmt.Errorf("edge %s: %w", e.ID, err)
		}
	}
	if rec.ToEnd != "" {
		if e.ToEnd, err = canvas.ParseEndStyle(rec.ToEnd); err != nil {
			return nil, fmt.Errorf("edge %s: %w", e.ID, err)
		}
	}
	if rec.Color != "" {
		if e.Color, err = canvas.ParseColor(rec.Color); err != nil {
			return nil, fmt.Errorf("edge %s: %w", e.ID, err)
		}
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func intOr(p *int, fallback int) int {
	if p != nil {
		return *p
	}
	return fallback
}

func stringOr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}
