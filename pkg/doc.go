// Package pkg provides the dotwalk libraries for rendering graphs as
// Graphviz DOT and images.
//
// # Overview
//
// The pkg directory is organized into small focused packages:
//
//  1. [dot] - The DOT renderer and its capability interfaces
//  2. [graph] - A concrete, serializable graph document type
//  3. [io] - JSON and TOML import/export for graph documents
//  4. [render] - Rasterization of DOT text to SVG and PNG
//  5. [cache] - Artifact caching (file, Redis, null backends)
//  6. [errors] - Structured, coded errors shared by all packages
//  7. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through dotwalk:
//
//	Graph document (.json/.toml) or dot.Graph implementation
//	         ↓
//	dot.Render → DOT text
//	         ↓
//	render.Render → SVG / PNG (cached by pkg/cache)
//
// Library users generally need only [dot]: implement the GraphWalk and
// Labeller capabilities on an existing data structure and call dot.Render.
// The remaining packages back the dotwalk CLI.
//
// [dot]: github.com/mfelder/dotwalk/pkg/dot
// [graph]: github.com/mfelder/dotwalk/pkg/graph
// [io]: github.com/mfelder/dotwalk/pkg/io
// [render]: github.com/mfelder/dotwalk/pkg/render
// [cache]: github.com/mfelder/dotwalk/pkg/cache
// [errors]: github.com/mfelder/dotwalk/pkg/errors
// [buildinfo]: github.com/mfelder/dotwalk/pkg/buildinfo
package pkg
