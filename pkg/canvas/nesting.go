package canvas

// Containment resolver: the stored model has no parent pointers, so the
// parent/child structure among nodes is derived from geometry alone.
// A node belongs to a group when its bounding box lies entirely within
// the group's bounding box.

// Contains reports whether candidate's bounding box [x,x1]×[y,y1] lies
// entirely within group's. Boundaries are inclusive: boxes that touch or
// exactly coincide count as contained. A node never contains itself;
// identity is checked by ID, so a distinct node sharing the group's
// exact bounds is still contained.
func Contains(group, candidate *Node) bool {
	if group == nil || candidate == nil || candidate.ID == group.ID {
		return false
	}
	return candidate.X >= group.X && candidate.X1() <= group.X1() &&
		candidate.Y >= group.Y && candidate.Y1() <= group.Y1()
}

// FindChildren filters candidates down to the nodes geometrically
// contained in group, preserving input order.
func FindChildren(group *Node, candidates []*Node) []*Node {
	var children []*Node
	for _, n := range candidates {
		if Contains(group, n) {
			children = append(children, n)
		}
	}
	return children
}

// Nesting is the resolved membership tree of one group: its direct
// children in candidate order, and a resolution for each direct child
// that is itself a group. Children contains the subgroup nodes too;
// Subgroups holds their recursive structure.
type Nesting struct {
	Group     *Node
	Children  []*Node
	Subgroups []*Nesting
}

// ResolveNesting recursively partitions candidates into group's
// membership tree. It is a pure function: candidates are never mutated
// and each call returns a fresh tree.
//
// Direct children are the candidates contained in group, in input order.
// Each direct child that is a group is resolved recursively against its
// sibling set. When two sibling groups both contain a node (overlapping
// or identical bounds), the first group in input order claims it; later
// siblings resolve against what remains. Recursion terminates because a
// group is excluded from its own candidate set, so every level strictly
// shrinks.
func ResolveNesting(group *Node, candidates []*Node) *Nesting {
	children := FindChildren(group, candidates)
	nest := &Nesting{Group: group, Children: children}

	claimed := make(map[string]bool)
	for _, child := range children {
		if !child.IsGroup() || claimed[child.ID] {
			continue
		}
		var siblings []*Node
		for _, n := range children {
			if n.ID != child.ID && !claimed[n.ID] {
				siblings = append(siblings, n)
			}
		}
		sub := ResolveNesting(child, siblings)
		sub.claim(claimed)
		nest.Subgroups = append(nest.Subgroups, sub)
	}
	return nest
}

// claim marks every node in the subtree as owned, so sibling groups
// resolved later cannot double-count it.
func (n *Nesting) claim(claimed map[string]bool) {
	for _, c := range n.Children {
		claimed[c.ID] = true
	}
	for _, sub := range n.Subgroups {
		sub.claim(claimed)
	}
}

// Subgroup returns the nested resolution for the given group ID, searching
// the whole subtree. Returns nil if the ID is not a resolved subgroup.
func (n *Nesting) Subgroup(groupID string) *Nesting {
	for _, sub := range n.Subgroups {
		if sub.Group.ID == groupID {
			return sub
		}
		if found := sub.Subgroup(groupID); found != nil {
			return found
		}
	}
	return nil
}

// ContainsNode reports whether the given node ID is a direct child in
// this resolution (not a transitive descendant).
func (n *Nesting) ContainsNode(nodeID string) bool {
	for _, c := range n.Children {
		if c.ID == nodeID {
			return true
		}
	}
	return false
}

// Nesting resolves the membership tree of the group with the given ID,
// using every other node in the canvas (in insertion order) as the
// candidate set. Returns [ErrNodeNotFound] for an unknown ID and
// [ErrInvalidNodeType] when the node is not a group.
func (c *Canvas) Nesting(groupID string) (*Nesting, error) {
	g, err := c.Node(groupID)
	if err != nil {
		return nil, err
	}
	if !g.IsGroup() {
		return nil, ErrInvalidNodeType
	}
	return ResolveNesting(g, c.nodes), nil
}

// NestAll resolves the full nesting forest of the canvas: one tree per
// top-level group, in insertion order. A group is top-level when no
// other group contains it. Contested nodes follow the same rule as
// [ResolveNesting]: the first top-level group in canvas order wins.
func (c *Canvas) NestAll() []*Nesting {
	groups := c.Groups()
	var forest []*Nesting
	claimed := make(map[string]bool)

	for i, g := range groups {
		if claimed[g.ID] || hasEnclosingGroup(i, groups) {
			continue
		}
		var candidates []*Node
		for _, n := range c.nodes {
			if n.ID != g.ID && !claimed[n.ID] {
				candidates = append(candidates, n)
			}
		}
		nest := ResolveNesting(g, candidates)
		nest.claim(claimed)
		forest = append(forest, nest)
	}
	return forest
}

// hasEnclosingGroup reports whether groups[i] sits inside another group.
// Mutual containment (identical bounds) ties break by position: the
// earlier group is treated as the enclosing one.
func hasEnclosingGroup(i int, groups []*Node) bool {
	g := groups[i]
	for j, other := range groups {
		if j == i || !Contains(other, g) {
			continue
		}
		if Contains(g, other) && i < j {
			continue
		}
		return true
	}
	return false
}

// FindGroupByLabel returns the first group in input order whose label
// matches, or nil when no group does.
func FindGroupByLabel(groups []*Node, label string) *Node {
	for _, g := range groups {
		if g.IsGroup() && g.Label == label {
			return g
		}
	}
	return nil
}
