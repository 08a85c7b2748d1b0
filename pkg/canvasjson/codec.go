package canvasjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
)

// defaultIndent matches the indentation used by other canvas editors so
// re-encoded files diff cleanly.
const defaultIndent = "\t"

// marshalOptions collects the encoding knobs.
type marshalOptions struct {
	indent  string
	corners bool
}

// MarshalOption customizes encoding.
type MarshalOption func(*marshalOptions)

// WithIndent sets the indentation string for encoded output.
// An empty string produces compact single-line JSON.
func WithIndent(indent string) MarshalOption {
	return func(o *marshalOptions) { o.indent = indent }
}

// WithComputedCorners includes the derived x1/y1 bottom-right corner in
// every emitted node record, for consumers that want corner coordinates
// without recomputation. Standard canvas tooling ignores the extra keys.
func WithComputedCorners() MarshalOption {
	return func(o *marshalOptions) { o.corners = true }
}

func applyOptions(opts []MarshalOption) marshalOptions {
	options := marshalOptions{indent: defaultIndent}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Marshal encodes a canvas as JSON bytes, preserving insertion order.
func Marshal(c *canvas.Canvas, opts ...MarshalOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(c, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write encodes a canvas as JSON to w.
// Use [Marshal] for in-memory serialization or [WriteFile] for files.
func Write(c *canvas.Canvas, w io.Writer, opts ...MarshalOption) error {
	options := applyOptions(opts)
	doc := FromCanvas(c, opts...)

	enc := json.NewEncoder(w)
	enc.SetIndent("", options.indent)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a canvas to a JSON file at path.
// The file is created with 0644 permissions.
func WriteFile(c *canvas.Canvas, path string, opts ...MarshalOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(c, f, opts...)
}

// Unmarshal decodes JSON bytes into a canvas.
// Malformed JSON fails with [canvas.ErrInvalidJSON]; an unknown node
// type tag fails with [canvas.ErrInvalidNodeType]. The returned canvas
// is not graph-validated: call [canvas.Canvas.Validate] for referential
// integrity guarantees.
func Unmarshal(data []byte) (*canvas.Canvas, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a JSON canvas from r.
// Use [ReadFile] for files or [Unmarshal] for in-memory data.
func Read(r io.Reader) (*canvas.Canvas, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", canvas.ErrInvalidJSON, err)
	}
	return ToCanvas(doc)
}

// ReadFile reads the JSON file at path and returns the decoded canvas.
func ReadFile(path string) (*canvas.Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
