package canvas

import (
	"errors"
	"testing"
)

func TestNewTextNodeDefaults(t *testing.T) {
	n, err := NewTextNode("hello")
	if err != nil {
		t.Fatalf("NewTextNode: %v", err)
	}

	if n.Type != NodeText {
		t.Errorf("Type = %q, want %q", n.Type, NodeText)
	}
	if n.X != 0 || n.Y != 0 {
		t.Errorf("position = (%d,%d), want (0,0)", n.X, n.Y)
	}
	if n.Width != DefaultWidth || n.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", n.Width, n.Height, DefaultWidth, DefaultHeight)
	}
	if len(n.ID) != idLength {
		t.Errorf("generated ID %q has length %d, want %d", n.ID, len(n.ID), idLength)
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID returned duplicate %q", id)
		}
		seen[id] = true
	}
}

func TestNodeOptions(t *testing.T) {
	n, err := NewFileNode("notes/today.md",
		WithID("n1"),
		At(-20, 35),
		WithSize(250, 80),
		WithColor("#1a2b3c"),
		WithSubpath("#heading"),
	)
	if err != nil {
		t.Fatalf("NewFileNode: %v", err)
	}

	if n.ID != "n1" {
		t.Errorf("ID = %q, want n1", n.ID)
	}
	if n.X != -20 || n.Y != 35 {
		t.Errorf("position = (%d,%d), want (-20,35)", n.X, n.Y)
	}
	if n.File != "notes/today.md" || n.Subpath != "#heading" {
		t.Errorf("file = %q subpath = %q", n.File, n.Subpath)
	}
	if n.Color.String() != "#1a2b3c" {
		t.Errorf("color = %q, want #1a2b3c", n.Color)
	}
}

func TestDerivedCorners(t *testing.T) {
	n, err := NewGroupNode(WithID("g"), At(10, 20), WithSize(300, 400))
	if err != nil {
		t.Fatalf("NewGroupNode: %v", err)
	}
	if got := n.X1(); got != 310 {
		t.Errorf("X1() = %d, want 310", got)
	}
	if got := n.Y1(); got != 420 {
		t.Errorf("Y1() = %d, want 420", got)
	}
}

func TestNodeEqualByIDOnly(t *testing.T) {
	a := &Node{ID: "same", Type: NodeText, Text: "one"}
	b := &Node{ID: "same", Type: NodeFile, File: "other.md", X: 99}
	c := &Node{ID: "different", Type: NodeText, Text: "one"}

	if !a.Equal(b) {
		t.Error("nodes with equal IDs must be equal regardless of other fields")
	}
	if a.Equal(c) {
		t.Error("nodes with different IDs must not be equal")
	}
	if a.Equal(nil) {
		t.Error("non-nil node must not equal nil")
	}
}

func TestNodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr error
	}{
		{
			name: "ValidText",
			node: Node{ID: "a", Type: NodeText},
		},
		{
			name: "ValidTextEmptyContent",
			node: Node{ID: "a", Type: NodeText, Text: ""},
		},
		{
			name: "ValidGroupNoStyle",
			node: Node{ID: "g", Type: NodeGroup, Label: "Ideas"},
		},
		{
			name: "ValidGroupCover",
			node: Node{ID: "g", Type: NodeGroup, Background: "bg.png", BackgroundStyle: BackgroundCover},
		},
		{
			name:    "UnknownType",
			node:    Node{ID: "a", Type: "sticker"},
			wantErr: ErrInvalidNodeType,
		},
		{
			name:    "MissingType",
			node:    Node{ID: "a"},
			wantErr: ErrInvalidNodeType,
		},
		{
			name:    "EmptyID",
			node:    Node{Type: NodeText},
			wantErr: ErrInvalidNodeAttribute,
		},
		{
			name:    "BadColor",
			node:    Node{ID: "a", Type: NodeText, Color: "magenta"},
			wantErr: ErrInvalidColorValue,
		},
		{
			name:    "FileWithoutPath",
			node:    Node{ID: "f", Type: NodeFile},
			wantErr: ErrInvalidNodeAttribute,
		},
		{
			name:    "LinkWithoutURL",
			node:    Node{ID: "l", Type: NodeLink},
			wantErr: ErrInvalidNodeAttribute,
		},
		{
			name:    "GroupBadBackgroundStyle",
			node:    Node{ID: "g", Type: NodeGroup, BackgroundStyle: "tile"},
			wantErr: ErrInvalidNodeAttribute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNegativeSizeAllowed(t *testing.T) {
	// No lower bound is enforced on width/height; geometry is taken as-is.
	n, err := NewTextNode("tiny", WithID("t"), WithSize(0, -5))
	if err != nil {
		t.Fatalf("NewTextNode: %v", err)
	}
	if n.Y1() != -5 {
		t.Errorf("Y1() = %d, want -5", n.Y1())
	}
}

func TestParseNodeType(t *testing.T) {
	for _, raw := range []string{"text", "file", "link", "group"} {
		if _, err := ParseNodeType(raw); err != nil {
			t.Errorf("ParseNodeType(%q): %v", raw, err)
		}
	}
	if _, err := ParseNodeType("canvas"); !errors.Is(err, ErrInvalidNodeType) {
		t.Errorf("ParseNodeType(canvas) error = %v, want ErrInvalidNodeType", err)
	}
	if _, err := ParseNodeType(""); !errors.Is(err, ErrInvalidNodeType) {
		t.Errorf("ParseNodeType(\"\") error = %v, want ErrInvalidNodeType", err)
	}
}

func TestParseBackgroundStyle(t *testing.T) {
	for _, raw := range []string{"cover", "ratio", "repeat"} {
		if _, err := ParseBackgroundStyle(raw); err != nil {
			t.Errorf("ParseBackgroundStyle(%q): %v", raw, err)
		}
	}
	if _, err := ParseBackgroundStyle("stretch"); !errors.Is(err, ErrInvalidNodeAttribute) {
		t.Errorf("ParseBackgroundStyle(stretch) error = %v, want ErrInvalidNodeAttribute", err)
	}
}
