package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mfelder/dotwalk/pkg/dot"
	"github.com/mfelder/dotwalk/pkg/errors"
	"github.com/mfelder/dotwalk/pkg/graph"
)

// WriteJSON encodes a graph document as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// ExportJSON writes a graph document to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// ExportDOT renders a graph document to a .dot file at path.
func ExportDOT(g *graph.Graph, path string, opts dot.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return g.WriteDOT(f, opts)
}
