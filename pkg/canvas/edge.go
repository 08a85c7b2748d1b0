package canvas

import "fmt"

// Side identifies which border of a node an edge attaches to.
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// ParseSide converts a raw side value into a Side.
// Returns [ErrInvalidEdgeAttribute] for unknown values.
func ParseSide(raw string) (Side, error) {
	switch s := Side(raw); s {
	case SideTop, SideRight, SideBottom, SideLeft:
		return s, nil
	}
	return "", fmt.Errorf("%w: side %q", ErrInvalidEdgeAttribute, raw)
}

// EndStyle identifies how an edge endpoint is drawn.
type EndStyle string

const (
	EndNone  EndStyle = "none"
	EndArrow EndStyle = "arrow"
)

// ParseEndStyle converts a raw end value into an EndStyle.
// Returns [ErrInvalidEdgeAttribute] for unknown values.
func ParseEndStyle(raw string) (EndStyle, error) {
	switch e := EndStyle(raw); e {
	case EndNone, EndArrow:
		return e, nil
	}
	return "", fmt.Errorf("%w: end %q", ErrInvalidEdgeAttribute, raw)
}

// Edge is a directed connector between two nodes, referenced by ID only.
// Construction deliberately does not check that FromNode and ToNode exist:
// referential integrity is a [Canvas] concern (see [Canvas.Validate]),
// which keeps edges constructible independent of any canvas.
//
// Like nodes, edge identity is the ID alone (see [Edge.Equal]).
type Edge struct {
	ID       string
	FromNode string
	ToNode   string
	FromSide Side     // optional; zero value means unset
	FromEnd  EndStyle // optional
	ToSide   Side     // optional
	ToEnd    EndStyle // optional
	Color    Color    // optional
	Label    string   // optional
}

// EdgeOption customizes an edge under construction.
type EdgeOption func(*Edge)

// WithEdgeID sets an explicit identifier instead of a generated one.
func WithEdgeID(id string) EdgeOption { return func(e *Edge) { e.ID = id } }

// FromSide sets the side and end style of the source endpoint.
// Empty strings leave the corresponding field unset.
func FromSide(side, end string) EdgeOption {
	return func(e *Edge) {
		e.FromSide = Side(side)
		e.FromEnd = EndStyle(end)
	}
}

// ToSide sets the side and end style of the target endpoint.
// Empty strings leave the corresponding field unset.
func ToSide(side, end string) EdgeOption {
	return func(e *Edge) {
		e.ToSide = Side(side)
		e.ToEnd = EndStyle(end)
	}
}

// WithEdgeColor sets the edge color from its raw string form.
func WithEdgeColor(raw string) EdgeOption {
	return func(e *Edge) { e.Color = Color(raw) }
}

// WithEdgeLabel sets the edge label.
func WithEdgeLabel(label string) EdgeOption {
	return func(e *Edge) { e.Label = label }
}

// NewEdge creates a validated edge from one node ID to another.
// The ID is generated when not supplied via [WithEdgeID].
func NewEdge(fromNode, toNode string, opts ...EdgeOption) (*Edge, error) {
	e := &Edge{FromNode: fromNode, ToNode: toNode}
	for _, opt := range opts {
		opt(e)
	}
	if e.ID == "" {
		e.ID = NewID()
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Equal reports whether other is the same edge, by ID only.
func (e *Edge) Equal(other *Edge) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ID == other.ID
}

// Touches reports whether the edge starts or ends at the given node ID.
func (e *Edge) Touches(nodeID string) bool {
	return e.FromNode == nodeID || e.ToNode == nodeID
}

// Validate checks the edge's field-level consistency: non-empty ID and
// endpoint references, well-formed side/end enums, and a well-formed
// color. Endpoint existence is not checked here.
func (e *Edge) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("%w: edge ID must not be empty", ErrInvalidEdgeAttribute)
	}
	if e.FromNode == "" || e.ToNode == "" {
		return fmt.Errorf("%w: edge %s must reference two node IDs", ErrInvalidEdgeAttribute, e.ID)
	}
	for _, side := range []Side{e.FromSide, e.ToSide} {
		if side == "" {
			continue
		}
		if _, err := ParseSide(string(side)); err != nil {
			return fmt.Errorf("edge %s: %w", e.ID, err)
		}
	}
	for _, end := range []EndStyle{e.FromEnd, e.ToEnd} {
		if end == "" {
			continue
		}
		if _, err := ParseEndStyle(string(end)); err != nil {
			return fmt.Errorf("edge %s: %w", e.ID, err)
		}
	}
	if err := e.Color.validate(); err != nil {
		return fmt.Errorf("edge %s: %w", e.ID, err)
	}
	return nil
}
