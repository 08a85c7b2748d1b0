package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON is returned by the codec when the input text is not
	// well-formed JSON. It is defined here so callers can test for it
	// without importing the codec package.
	ErrInvalidJSON = errors.New("invalid or malformed JSON")

	// ErrInvalidNodeType is returned when a node record carries an unknown
	// or missing type tag, or when a node's Type field is not one of the
	// four supported variants.
	ErrInvalidNodeType = errors.New("invalid or unsupported node type")

	// ErrInvalidNodeAttribute is returned by [Node.Validate] when a
	// variant-specific field has an invalid value, such as a group
	// backgroundStyle outside cover|ratio|repeat or an empty file path
	// on a file node.
	ErrInvalidNodeAttribute = errors.New("invalid node attribute")

	// ErrInvalidEdgeAttribute is returned when an edge side value is not
	// one of top|right|bottom|left or an end value is not none|arrow.
	ErrInvalidEdgeAttribute = errors.New("invalid edge attribute")

	// ErrInvalidColorValue is returned by [ParseColor] when the string is
	// neither a preset digit "1".."6" nor "#" followed by 6 hex digits.
	ErrInvalidColorValue = errors.New("invalid color value")

	// ErrNodeIDConflict is returned by [Canvas.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique per canvas.
	ErrNodeIDConflict = errors.New("node ID already exists")

	// ErrEdgeIDConflict is returned by [Canvas.AddEdge] when an edge with
	// the same ID already exists. Edge IDs must be unique per canvas.
	ErrEdgeIDConflict = errors.New("edge ID already exists")

	// ErrNodeNotFound is returned by lookups and [Canvas.RemoveNode] when
	// no node has the requested ID.
	ErrNodeNotFound = errors.New("node not found")

	// ErrEdgeNotFound is returned by lookups and [Canvas.RemoveEdge] when
	// no edge has the requested ID.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrOrphanEdge is returned by [Canvas.Validate] when an edge
	// references a node ID that does not exist in the canvas.
	ErrOrphanEdge = errors.New("edge references a missing node")
)

// ValidationError is the aggregate error returned by [Canvas.Validate].
// It wraps the first specific violation encountered, so errors.Is works
// against both ValidationError and the underlying sentinel:
//
//	if err := c.Validate(); errors.Is(err, canvas.ErrOrphanEdge) { ... }
//
// Callers needing a full violation report should check nodes and edges
// individually instead.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("canvas validation failed: %v", e.Cause)
}

// Unwrap returns the underlying violation for errors.Is/As compatibility.
func (e *ValidationError) Unwrap() error { return e.Cause }
