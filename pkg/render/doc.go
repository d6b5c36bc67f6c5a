// Package render rasterizes DOT text into image formats.
//
// # Overview
//
// This package runs Graphviz (via the embedded go-graphviz engine, no
// external binary required) to turn DOT documents into SVG or PNG:
//
//	svg, err := render.SVG(ctx, dotText)
//	png, err := render.PNG(ctx, dotText)
//
// Use [Render] with a [Format] when the output format is chosen at runtime,
// e.g. from a CLI flag. FormatDOT passes the input through unchanged so
// callers can treat DOT as just another output format.
//
// SVG output gets a normalized viewBox-based root element, which makes the
// image scale to its container when embedded in HTML.
package render
