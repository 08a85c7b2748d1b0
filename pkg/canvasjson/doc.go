// Package canvasjson converts between the in-memory canvas model and its
// persisted JSON form.
//
// This package sits at the serialization boundary: raw, loosely-typed
// records come in, get dispatched by their "type" tag, and are converted
// exactly once into the strict typed model of pkg/canvas. Internal code
// downstream never re-validates already-typed values.
//
// # Wire Format
//
// A canvas file is a single JSON object with two arrays:
//
//	{
//	  "nodes": [{"id": "a1", "type": "text", "x": 0, "y": 0,
//	             "width": 400, "height": 100, "text": "hello"}],
//	  "edges": [{"id": "e1", "fromNode": "a1", "toNode": "b2",
//	             "toSide": "left", "toEnd": "arrow"}]
//	}
//
// Variant-specific keys: text nodes carry "text"; file nodes "file" and
// optional "subpath"; link nodes "url"; group nodes optional "label",
// "background", and "backgroundStyle".
//
// # Common Operations
//
//	c, _ := canvasjson.ReadFile("board.canvas")     // file → Canvas
//	canvasjson.WriteFile(c, "board.canvas")         // Canvas → file
//	data, _ := canvasjson.Marshal(c)                // Canvas → []byte
//	c, _ = canvasjson.Unmarshal(data)               // []byte → Canvas
//
// Decoding does not run graph-level validation; call Validate on the
// result to guarantee the absence of orphan edges:
//
//	c, err := canvasjson.ReadFile(path)
//	if err == nil {
//	    err = c.Validate()
//	}
//
// # Fidelity
//
// Insertion order is preserved in both directions and colors round-trip
// as their original strings, so decode→encode reproduces a document
// other canvas implementations accept unchanged.
package canvasjson
