// Package document loads workflow documents from flowscan's own JSON
// exchange format. It stands between an upstream exporter and the analysis
// engine: the engine itself performs no I/O and no format parsing.
package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flowscan-io/flowscan/internal/flow"
)

// Load reads and decodes a single workflow document from path.
func Load(path string) (*flow.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	doc, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a workflow document from r and normalizes it.
func Decode(r io.Reader) (*flow.Document, error) {
	var doc flow.Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("document has no name")
	}
	normalize(&doc)
	return &doc, nil
}

// normalize fills in the implied edge kind so the engine only ever sees
// explicit discriminators.
func normalize(doc *flow.Document) {
	for i := range doc.Elements {
		el := &doc.Elements[i]
		for j := range el.Outgoing {
			if el.Outgoing[j].Kind == "" {
				el.Outgoing[j].Kind = flow.EdgeDefault
			}
		}
	}
}
