package canvas

import (
	"errors"
	"testing"
)

// buildCanvas assembles a small document and fails the test on any error.
func buildCanvas(t *testing.T, nodes []*Node, edges []*Edge) *Canvas {
	t.Helper()
	c := New()
	for _, n := range nodes {
		if err := c.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	for _, e := range edges {
		if err := c.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%s): %v", e.ID, err)
		}
	}
	return c
}

func textNode(t *testing.T, id, text string, opts ...NodeOption) *Node {
	t.Helper()
	n, err := NewTextNode(text, append([]NodeOption{WithID(id)}, opts...)...)
	if err != nil {
		t.Fatalf("NewTextNode(%s): %v", id, err)
	}
	return n
}

func edge(t *testing.T, id, from, to string) *Edge {
	t.Helper()
	e, err := NewEdge(from, to, WithEdgeID(id))
	if err != nil {
		t.Fatalf("NewEdge(%s): %v", id, err)
	}
	return e
}

func TestAddNodeConflict(t *testing.T) {
	c := New()
	first := textNode(t, "dup", "first")
	if err := c.AddNode(first); err != nil {
		t.Fatalf("AddNode: %v", err)
	}

	err := c.AddNode(textNode(t, "dup", "second"))
	if !errors.Is(err, ErrNodeIDConflict) {
		t.Fatalf("AddNode duplicate error = %v, want ErrNodeIDConflict", err)
	}

	// The first insertion must survive the failed second one.
	got, err := c.Node("dup")
	if err != nil {
		t.Fatalf("Node(dup): %v", err)
	}
	if got.Text != "first" {
		t.Errorf("Node(dup).Text = %q, want the originally inserted node", got.Text)
	}
	if c.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1", c.NodeCount())
	}
}

func TestAddEdgeConflict(t *testing.T) {
	c := buildCanvas(t,
		[]*Node{textNode(t, "a", ""), textNode(t, "b", "")},
		[]*Edge{edge(t, "e", "a", "b")},
	)
	if err := c.AddEdge(edge(t, "e", "b", "a")); !errors.Is(err, ErrEdgeIDConflict) {
		t.Fatalf("AddEdge duplicate error = %v, want ErrEdgeIDConflict", err)
	}
	if c.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", c.EdgeCount())
	}
}

func TestRemoveNodeCascades(t *testing.T) {
	c := buildCanvas(t,
		[]*Node{textNode(t, "a", ""), textNode(t, "b", ""), textNode(t, "c", "")},
		[]*Edge{
			edge(t, "ab", "a", "b"),
			edge(t, "bc", "b", "c"),
			edge(t, "ca", "c", "a"),
		},
	)

	if err := c.RemoveNode("b"); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}

	if _, err := c.Node("b"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("Node(b) after removal error = %v, want ErrNodeNotFound", err)
	}
	for _, id := range []string{"ab", "bc"} {
		if _, err := c.Edge(id); !errors.Is(err, ErrEdgeNotFound) {
			t.Errorf("Edge(%s) after cascade error = %v, want ErrEdgeNotFound", id, err)
		}
	}
	if _, err := c.Edge("ca"); err != nil {
		t.Errorf("Edge(ca) should survive removal of b: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate after cascade: %v", err)
	}
}

func TestRemoveNodeUnknownLeavesEdges(t *testing.T) {
	c := buildCanvas(t,
		[]*Node{textNode(t, "a", ""), textNode(t, "b", "")},
		[]*Edge{edge(t, "ab", "a", "b")},
	)
	if err := c.RemoveNode("ghost"); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("RemoveNode(ghost) error = %v, want ErrNodeNotFound", err)
	}
	if c.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d after failed removal, want 1", c.EdgeCount())
	}
}

func TestRemoveEdge(t *testing.T) {
	c := buildCanvas(t,
		[]*Node{textNode(t, "a", ""), textNode(t, "b", "")},
		[]*Edge{edge(t, "ab", "a", "b")},
	)
	if err := c.RemoveEdge("ab"); err != nil {
		t.Fatalf("RemoveEdge: %v", err)
	}
	if err := c.RemoveEdge("ab"); !errors.Is(err, ErrEdgeNotFound) {
		t.Fatalf("second RemoveEdge error = %v, want ErrEdgeNotFound", err)
	}
	if c.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, removing an edge must not touch nodes", c.NodeCount())
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	ids := []string{"z", "m", "a", "q"}
	c := New()
	for _, id := range ids {
		if err := c.AddNode(textNode(t, id, "")); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for i, n := range c.Nodes() {
		if n.ID != ids[i] {
			t.Fatalf("Nodes()[%d].ID = %q, want %q", i, n.ID, ids[i])
		}
	}
}

func TestConnections(t *testing.T) {
	c := buildCanvas(t,
		[]*Node{textNode(t, "a", ""), textNode(t, "b", ""), textNode(t, "c", "")},
		[]*Edge{
			edge(t, "ab", "a", "b"),
			edge(t, "bc", "b", "c"),
			edge(t, "ca", "c", "a"),
		},
	)

	got := c.Connections("b")
	if len(got) != 2 {
		t.Fatalf("Connections(b) returned %d edges, want 2", len(got))
	}
	if got[0].ID != "ab" || got[1].ID != "bc" {
		t.Errorf("Connections(b) = [%s %s], want edge-list order [ab bc]", got[0].ID, got[1].ID)
	}

	if got := c.Connections("ghost"); len(got) != 0 {
		t.Errorf("Connections(ghost) returned %d edges, want 0", len(got))
	}
}

func TestEdgeNodes(t *testing.T) {
	c := buildCanvas(t,
		[]*Node{textNode(t, "a", ""), textNode(t, "b", "")},
		[]*Edge{edge(t, "ab", "a", "b")},
	)

	from, to, err := c.EdgeNodes("ab")
	if err != nil {
		t.Fatalf("EdgeNodes: %v", err)
	}
	if from.ID != "a" || to.ID != "b" {
		t.Errorf("EdgeNodes = %s → %s, want a → b", from.ID, to.ID)
	}

	if _, _, err := c.EdgeNodes("ghost"); !errors.Is(err, ErrEdgeNotFound) {
		t.Errorf("EdgeNodes(ghost) error = %v, want ErrEdgeNotFound", err)
	}

	// Orphan endpoint surfaces as a node lookup failure.
	if err := c.AddEdge(edge(t, "ax", "a", "x")); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, _, err := c.EdgeNodes("ax"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("EdgeNodes(ax) error = %v, want ErrNodeNotFound", err)
	}
}

func TestAdjacentNodes(t *testing.T) {
	c := buildCanvas(t,
		[]*Node{textNode(t, "a", ""), textNode(t, "b", ""), textNode(t, "c", "")},
		[]*Edge{
			edge(t, "ab", "a", "b"), // outgoing from a
			edge(t, "ca", "c", "a"), // incoming to a
		},
	)

	got := c.AdjacentNodes("a")
	if len(got) != 2 {
		t.Fatalf("AdjacentNodes(a) returned %d nodes, want 2", len(got))
	}
	// Incoming neighbors first, then outgoing.
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("AdjacentNodes(a) = [%s %s], want [c b]", got[0].ID, got[1].ID)
	}
}

func TestValidateOrphanEdge(t *testing.T) {
	c := buildCanvas(t,
		[]*Node{textNode(t, "a", "")},
		[]*Edge{edge(t, "ax", "a", "missing")},
	)

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate should fail on an orphan edge")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate error type = %T, want *ValidationError", err)
	}
	if !errors.Is(err, ErrOrphanEdge) {
		t.Errorf("Validate error = %v, want it to wrap ErrOrphanEdge", err)
	}
}

func TestValidateEmptyCanvas(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("empty canvas must validate: %v", err)
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	c := buildCanvas(t, []*Node{textNode(t, "a", ""), textNode(t, "b", "")}, nil)
	nodes := c.Nodes()
	nodes[0] = nil
	if got, err := c.Node("a"); err != nil || got == nil {
		t.Error("mutating the returned slice must not affect the canvas")
	}
}

func TestGroups(t *testing.T) {
	g, err := NewGroupNode(WithID("g"), WithLabel("Cluster"))
	if err != nil {
		t.Fatalf("NewGroupNode: %v", err)
	}
	c := buildCanvas(t, []*Node{textNode(t, "a", ""), g, textNode(t, "b", "")}, nil)

	groups := c.Groups()
	if len(groups) != 1 || groups[0].ID != "g" {
		t.Fatalf("Groups() = %v, want exactly the group node", groups)
	}
}
