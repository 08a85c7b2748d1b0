package canvas

import "fmt"

// Default geometry applied by node constructors when the caller does not
// position or size the node explicitly.
const (
	DefaultWidth  = 400
	DefaultHeight = 100
)

// NodeType identifies one of the four node variants. The set is closed:
// any other value fails validation with [ErrInvalidNodeType].
type NodeType string

const (
	NodeText  NodeType = "text"
	NodeFile  NodeType = "file"
	NodeLink  NodeType = "link"
	NodeGroup NodeType = "group"
)

// ParseNodeType converts a raw type tag into a NodeType.
// Returns [ErrInvalidNodeType] for unknown or empty tags.
func ParseNodeType(raw string) (NodeType, error) {
	switch t := NodeType(raw); t {
	case NodeText, NodeFile, NodeLink, NodeGroup:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidNodeType, raw)
}

// BackgroundStyle controls how a group node's background image is drawn.
type BackgroundStyle string

const (
	BackgroundCover  BackgroundStyle = "cover"
	BackgroundRatio  BackgroundStyle = "ratio"
	BackgroundRepeat BackgroundStyle = "repeat"
)

// ParseBackgroundStyle converts a raw background style into a
// BackgroundStyle. Returns [ErrInvalidNodeAttribute] for unknown values.
func ParseBackgroundStyle(raw string) (BackgroundStyle, error) {
	switch s := BackgroundStyle(raw); s {
	case BackgroundCover, BackgroundRatio, BackgroundRepeat:
		return s, nil
	}
	return "", fmt.Errorf("%w: backgroundStyle %q", ErrInvalidNodeAttribute, raw)
}

// Node is a positioned visual element on a canvas: one of text, file,
// link, or group. All variants share the geometric base (ID, position,
// size, optional color); the remaining fields belong to the variant
// selected by Type and are ignored for other variants.
//
// X and Y are the top-left corner; [Node.X1] and [Node.Y1] derive the
// bottom-right corner. Width and height carry no enforced lower bound.
//
// Node identity is the ID alone: two nodes with equal IDs are the same
// node regardless of any other field (see [Node.Equal]). Once added to a
// [Canvas] a node is replaced, never patched.
type Node struct {
	ID     string
	Type   NodeType
	X      int
	Y      int
	Width  int
	Height int
	Color  Color

	// Text variant.
	Text string

	// File variant.
	File    string
	Subpath string

	// Link variant.
	URL string

	// Group variant.
	Label           string
	Background      string
	BackgroundStyle BackgroundStyle
}

// NodeOption customizes a node under construction.
type NodeOption func(*Node)

// WithID sets an explicit identifier instead of a generated one.
func WithID(id string) NodeOption { return func(n *Node) { n.ID = id } }

// At sets the top-left corner position.
func At(x, y int) NodeOption {
	return func(n *Node) { n.X, n.Y = x, y }
}

// WithSize sets the node dimensions.
func WithSize(width, height int) NodeOption {
	return func(n *Node) { n.Width, n.Height = width, height }
}

// WithColor sets the node color from its raw string form.
// Invalid values are rejected when the constructor validates.
func WithColor(raw string) NodeOption {
	return func(n *Node) { n.Color = Color(raw) }
}

// WithSubpath sets the subpath of a file node (e.g. a heading anchor).
func WithSubpath(subpath string) NodeOption {
	return func(n *Node) { n.Subpath = subpath }
}

// WithLabel sets the display label of a group node.
func WithLabel(label string) NodeOption {
	return func(n *Node) { n.Label = label }
}

// WithBackground sets the background image reference of a group node and
// optionally its style ("cover", "ratio", or "repeat"; empty keeps the
// renderer default). Invalid styles are rejected at validation.
func WithBackground(ref, style string) NodeOption {
	return func(n *Node) {
		n.Background = ref
		n.BackgroundStyle = BackgroundStyle(style)
	}
}

// newNode builds the shared base with constructor defaults applied.
func newNode(t NodeType, opts []NodeOption) *Node {
	n := &Node{
		Type:   t,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.ID == "" {
		n.ID = NewID()
	}
	return n
}

// NewTextNode creates a validated text node. Text may be empty.
func NewTextNode(text string, opts ...NodeOption) (*Node, error) {
	n := newNode(NodeText, opts)
	n.Text = text
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// NewFileNode creates a validated file node referencing a file path.
func NewFileNode(file string, opts ...NodeOption) (*Node, error) {
	n := newNode(NodeFile, opts)
	n.File = file
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// NewLinkNode creates a validated link node referencing a URL.
func NewLinkNode(url string, opts ...NodeOption) (*Node, error) {
	n := newNode(NodeLink, opts)
	n.URL = url
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// NewGroupNode creates a validated group node.
func NewGroupNode(opts ...NodeOption) (*Node, error) {
	n := newNode(NodeGroup, opts)
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// X1 returns the derived right edge (x + width).
func (n *Node) X1() int { return n.X + n.Width }

// Y1 returns the derived bottom edge (y + height).
func (n *Node) Y1() int { return n.Y + n.Height }

// Equal reports whether other is the same node. Identity is defined over
// the ID field only; no other field participates.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.ID == other.ID
}

// IsGroup reports whether the node is a group variant.
func (n *Node) IsGroup() bool { return n.Type == NodeGroup }

// Validate checks the node's field-level consistency: a known type tag,
// a non-empty ID, a well-formed color, and the variant's own rules.
// There is no cross-field validation beyond this.
func (n *Node) Validate() error {
	if _, err := ParseNodeType(string(n.Type)); err != nil {
		return err
	}
	if n.ID == "" {
		return fmt.Errorf("%w: node ID must not be empty", ErrInvalidNodeAttribute)
	}
	if err := n.Color.validate(); err != nil {
		return err
	}

	switch n.Type {
	case NodeFile:
		if n.File == "" {
			return fmt.Errorf("%w: file node %s has no file path", ErrInvalidNodeAttribute, n.ID)
		}
	case NodeLink:
		if n.URL == "" {
			return fmt.Errorf("%w: link node %s has no URL", ErrInvalidNodeAttribute, n.ID)
		}
	case NodeGroup:
		if n.BackgroundStyle != "" {
			if _, err := ParseBackgroundStyle(string(n.BackgroundStyle)); err != nil {
				return fmt.Errorf("group node %s: %w", n.ID, err)
			}
		}
	}
	return nil
}
