// Package render provides output conversion shared by diagram renderers.
//
// # Format Conversion
//
// Graphviz encodes SVG, PNG and JPEG itself. [ToPDF] and [ToPNG] cover the
// remaining cases (PDF output and scaled PNG) by converting SVG with the
// external rsvg-convert tool from librsvg:
//
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage turns a [diagram.Diagram] into Graphviz DOT,
// lays it out and writes the image file.
//
// [nodelink]: github.com/matzehuels/archdiagram/pkg/render/nodelink
// [diagram.Diagram]: github.com/matzehuels/archdiagram/pkg/diagram.Diagram
package render
