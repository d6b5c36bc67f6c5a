package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mfelder/dotwalk/pkg/errors"
	"github.com/mfelder/dotwalk/pkg/graph"
)

// ReadJSON decodes a JSON graph document from r and validates it.
//
// The returned graph is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var g graph.Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// ReadTOML decodes a TOML graph document from r and validates it.
func ReadTOML(r io.Reader) (*graph.Graph, error) {
	var g graph.Graph
	if _, err := toml.NewDecoder(r).Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return &g, nil
}

// Load reads a graph document from a file, picking the decoder by extension.
// Supported extensions are .json and .toml.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		g, err := ReadJSON(f)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
		}
		return g, nil
	case ".toml":
		g, err := ReadTOML(f)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "load %s", path)
		}
		return g, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported extension %q (want .json or .toml)", ext)
	}
}
