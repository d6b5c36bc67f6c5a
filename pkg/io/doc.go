// Package io reads and writes graph documents.
//
// # Overview
//
// This package loads [graph.Graph] documents from JSON or TOML and writes
// them back to JSON. The formats carry the same fields; TOML is the
// friendlier one to write by hand:
//
//	name = "deps"
//
//	[[nodes]]
//	id = "app"
//
//	[[nodes]]
//	id = "lib"
//	color = "gray"
//
//	[[edges]]
//	from = "app"
//	to = "lib"
//
// # Import
//
// Use [Load] to read a file, dispatching on the extension (.json, .toml),
// or [ReadJSON]/[ReadTOML] to read from any io.Reader. All import functions
// validate the document before returning it, so a loaded graph is always
// renderable.
//
// # Export
//
// Use [ExportJSON] to write a document to a file, or [WriteJSON] to write to
// any io.Writer. Exports can be re-imported for round-trip processing.
package io
