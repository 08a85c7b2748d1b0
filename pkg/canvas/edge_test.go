package canvas

import (
	"errors"
	"testing"
)

func TestNewEdge(t *testing.T) {
	e, err := NewEdge("a", "b",
		WithEdgeID("e1"),
		FromSide("right", "none"),
		ToSide("left", "arrow"),
		WithEdgeColor("4"),
		WithEdgeLabel("depends on"),
	)
	if err != nil {
		t.Fatalf("NewEdge: %v", err)
	}

	if e.ID != "e1" {
		t.Errorf("ID = %q, want e1", e.ID)
	}
	if e.FromNode != "a" || e.ToNode != "b" {
		t.Errorf("endpoints = %q → %q, want a → b", e.FromNode, e.ToNode)
	}
	if e.FromSide != SideRight || e.FromEnd != EndNone {
		t.Errorf("from = %q/%q, want right/none", e.FromSide, e.FromEnd)
	}
	if e.ToSide != SideLeft || e.ToEnd != EndArrow {
		t.Errorf("to = %q/%q, want left/arrow", e.ToSide, e.ToEnd)
	}
	if e.Label != "depends on" {
		t.Errorf("label = %q", e.Label)
	}
}

func TestNewEdgeGeneratesID(t *testing.T) {
	e, err := NewEdge("a", "b")
	if err != nil {
		t.Fatalf("NewEdge: %v", err)
	}
	if len(e.ID) != idLength {
		t.Errorf("generated ID %q has length %d, want %d", e.ID, len(e.ID), idLength)
	}
}

func TestNewEdgeUnknownNodesAllowed(t *testing.T) {
	// Endpoint existence is a canvas-level concern, not checked here.
	if _, err := NewEdge("ghost-from", "ghost-to"); err != nil {
		t.Fatalf("NewEdge with unknown endpoints: %v", err)
	}
}

func TestEdgeValidate(t *testing.T) {
	tests := []struct {
		name    string
		edge    Edge
		wantErr error
	}{
		{
			name: "Minimal",
			edge: Edge{ID: "e", FromNode: "a", ToNode: "b"},
		},
		{
			name: "SelfLoop",
			edge: Edge{ID: "e", FromNode: "a", ToNode: "a"},
		},
		{
			name:    "EmptyID",
			edge:    Edge{FromNode: "a", ToNode: "b"},
			wantErr: ErrInvalidEdgeAttribute,
		},
		{
			name:    "MissingFromNode",
			edge:    Edge{ID: "e", ToNode: "b"},
			wantErr: ErrInvalidEdgeAttribute,
		},
		{
			name:    "MissingToNode",
			edge:    Edge{ID: "e", FromNode: "a"},
			wantErr: ErrInvalidEdgeAttribute,
		},
		{
			name:    "BadSide",
			edge:    Edge{ID: "e", FromNode: "a", ToNode: "b", FromSide: "north"},
			wantErr: ErrInvalidEdgeAttribute,
		},
		{
			name:    "BadEnd",
			edge:    Edge{ID: "e", FromNode: "a", ToNode: "b", ToEnd: "diamond"},
			wantErr: ErrInvalidEdgeAttribute,
		},
		{
			name:    "BadColor",
			edge:    Edge{ID: "e", FromNode: "a", ToNode: "b", Color: "9"},
			wantErr: ErrInvalidColorValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.edge.Validate()
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

func TestEdgeTouches(t *testing.T) {
	e := &Edge{ID: "e", FromNode: "a", ToNode: "b"}
	if !e.Touches("a") || !e.Touches("b") {
		t.Error("edge must touch both of its endpoints")
	}
	if e.Touches("c") {
		t.Error("edge must not touch unrelated nodes")
	}
}

func TestEdgeEqualByIDOnly(t *testing.T) {
	a := &Edge{ID: "same", FromNode: "x", ToNode: "y"}
	b := &Edge{ID: "same", FromNode: "p", ToNode: "q", Label: "other"}
	if !a.Equal(b) {
		t.Error("edges with equal IDs must be equal regardless of other fields")
	}
	if a.Equal(&Edge{ID: "other", FromNode: "x", ToNode: "y"}) {
		t.Error("edges with different IDs must not be equal")
	}
	if a.Equal(nil) {
		t.Error("non-nil edge must not equal nil")
	}
}

func TestParseSide(t *testing.T) {
	for _, raw := range []string{"top", "right", "bottom", "left"} {
		if _, err := ParseSide(raw); err != nil {
			t.Errorf("ParseSide(%q): %v", raw, err)
		}
	}
	if _, err := ParseSide("center"); !errors.Is(err, ErrInvalidEdgeAttribute) {
		t.Errorf("ParseSide(center) error = %v, want ErrInvalidEdgeAttribute", err)
	}
}

func TestParseEndStyle(t *testing.T) {
	for _, raw := range []string{"none", "arrow"} {
		if _, err := ParseEndStyle(raw); err != nil {
			t.Errorf("ParseEndStyle(%q): %v", raw, err)
		}
	}
	if _, err := ParseEndStyle("circle"); !errors.Is(err, ErrInvalidEdgeAttribute) {
		t.Errorf("ParseEndStyle(circle) error = %v, want ErrInvalidEdgeAttribute", err)
	}
}
