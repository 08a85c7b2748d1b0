package canvas

import (
	"fmt"
	"slices"
)

// Canvas is the owning aggregate of one canvas document: an ordered
// sequence of nodes and an ordered sequence of edges, both keyed by
// unique IDs. Insertion order is preserved so serialization round-trips
// byte-for-byte with other canvas tooling.
//
// The canvas owns its nodes and edges exclusively; edges reference nodes
// only by ID, never by pointer, so there are no ownership cycles.
// Mutating operations keep the uniqueness invariants and leave the
// canvas unchanged on failure. Referential integrity of edges is only
// guaranteed after [Canvas.Validate].
//
// Canvas is not safe for concurrent use without external synchronization.
type Canvas struct {
	nodes []*Node
	edges []*Edge

	nodeByID map[string]*Node
	edgeByID map[string]*Edge
}

// New creates an empty canvas.
func New() *Canvas {
	return &Canvas{
		nodeByID: make(map[string]*Node),
		edgeByID: make(map[string]*Edge),
	}
}

// AddNode appends a node, preserving insertion order.
// Returns [ErrNodeIDConflict] if a node with the same ID already exists,
// or the node's own validation error if its fields are inconsistent.
func (c *Canvas) AddNode(n *Node) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if _, exists := c.nodeByID[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrNodeIDConflict, n.ID)
	}
	c.nodes = append(c.nodes, n)
	c.nodeByID[n.ID] = n
	return nil
}

// AddEdge appends an edge, preserving insertion order.
// Returns [ErrEdgeIDConflict] on an ID collision. Endpoint existence is
// not checked here, mirroring [NewEdge]; call [Canvas.Validate] for full
// referential integrity.
func (c *Canvas) AddEdge(e *Edge) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, exists := c.edgeByID[e.ID]; exists {
		return fmt.Errorf("%w: %s", ErrEdgeIDConflict, e.ID)
	}
	c.edges = append(c.edges, e)
	c.edgeByID[e.ID] = e
	return nil
}

// RemoveNode removes the node and cascades removal of every edge that
// touches it. Returns [ErrNodeNotFound] if no node has the ID, in which
// case no edge is removed either.
func (c *Canvas) RemoveNode(id string) error {
	if _, ok := c.nodeByID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	delete(c.nodeByID, id)
	c.nodes = slices.DeleteFunc(c.nodes, func(n *Node) bool { return n.ID == id })
	c.edges = slices.DeleteFunc(c.edges, func(e *Edge) bool {
		if e.Touches(id) {
			delete(c.edgeByID, e.ID)
			return true
		}
		return false
	})
	return nil
}

// RemoveEdge removes the edge with the given ID.
// Returns [ErrEdgeNotFound] if absent.
func (c *Canvas) RemoveEdge(id string) error {
	if _, ok := c.edgeByID[id]; !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	delete(c.edgeByID, id)
	c.edges = slices.DeleteFunc(c.edges, func(e *Edge) bool { return e.ID == id })
	return nil
}

// Node returns the node with the given ID.
// Returns [ErrNodeNotFound] if absent.
func (c *Canvas) Node(id string) (*Node, error) {
	n, ok := c.nodeByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return n, nil
}

// Edge returns the edge with the given ID.
// Returns [ErrEdgeNotFound] if absent.
func (c *Canvas) Edge(id string) (*Edge, error) {
	e, ok := c.edgeByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	return e, nil
}

// Nodes returns all nodes in insertion order. The slice is a copy but
// the node pointers refer to the canvas's own nodes.
func (c *Canvas) Nodes() []*Node { return slices.Clone(c.nodes) }

// Edges returns all edges in insertion order. The slice is a copy but
// the edge pointers refer to the canvas's own edges.
func (c *Canvas) Edges() []*Edge { return slices.Clone(c.edges) }

// NodeCount returns the number of nodes.
func (c *Canvas) NodeCount() int { return len(c.nodes) }

// EdgeCount returns the number of edges.
func (c *Canvas) EdgeCount() int { return len(c.edges) }

// Connections returns every edge touching the node, in edge-list order.
// An unknown node ID yields an empty result rather than an error.
func (c *Canvas) Connections(nodeID string) []*Edge {
	var result []*Edge
	for _, e := range c.edges {
		if e.Touches(nodeID) {
			result = append(result, e)
		}
	}
	return result
}

// EdgeNodes resolves an edge's endpoints to full node values.
// Returns [ErrEdgeNotFound] for an unknown edge, or [ErrNodeNotFound]
// transitively when an endpoint is missing from the canvas.
func (c *Canvas) EdgeNodes(edgeID string) (from, to *Node, err error) {
	e, err := c.Edge(edgeID)
	if err != nil {
		return nil, nil, err
	}
	if from, err = c.Node(e.FromNode); err != nil {
		return nil, nil, err
	}
	if to, err = c.Node(e.ToNode); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// AdjacentNodes returns the nodes reachable from nodeID via any edge,
// in either direction. Incoming neighbors come first, then outgoing,
// each in edge-list order. Nodes connected by multiple edges appear once
// per edge; callers that need a set must de-duplicate. Edges whose far
// endpoint is missing are skipped.
func (c *Canvas) AdjacentNodes(nodeID string) []*Node {
	var result []*Node
	for _, e := range c.edges {
		if e.ToNode == nodeID {
			if n, ok := c.nodeByID[e.FromNode]; ok {
				result = append(result, n)
			}
		}
	}
	for _, e := range c.edges {
		if e.FromNode == nodeID {
			if n, ok := c.nodeByID[e.ToNode]; ok {
				result = append(result, n)
			}
		}
	}
	return result
}

// Groups returns all group nodes in insertion order.
func (c *Canvas) Groups() []*Node {
	var groups []*Node
	for _, n := range c.nodes {
		if n.IsGroup() {
			groups = append(groups, n)
		}
	}
	return groups
}

// Validate re-checks every canvas invariant from scratch:
//
//  1. Every node passes its variant's field validation.
//  2. Every edge passes its field validation.
//  3. Every edge's endpoints reference existing node IDs.
//
// Checks run in that order across the whole document and the first
// violation is wrapped in a [*ValidationError]. ID uniqueness is
// structural (enforced on insert) and cannot be violated here.
func (c *Canvas) Validate() error {
	for _, n := range c.nodes {
		if err := n.Validate(); err != nil {
			return &ValidationError{Cause: err}
		}
	}
	for _, e := range c.edges {
		if err := e.Validate(); err != nil {
			return &ValidationError{Cause: err}
		}
	}
	for _, e := range c.edges {
		if _, ok := c.nodeByID[e.FromNode]; !ok {
			return &ValidationError{Cause: fmt.Errorf("%w: edge %s from %s", ErrOrphanEdge, e.ID, e.FromNode)}
		}
		if _, ok := c.nodeByID[e.ToNode]; !ok {
			return &ValidationError{Cause: fmt.Errorf("%w: edge %s to %s", ErrOrphanEdge, e.ID, e.ToNode)}
		}
	}
	return nil
}
