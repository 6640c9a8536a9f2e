// Package pkg provides the core libraries for Archdiagram.
//
// # Overview
//
// Archdiagram turns a declarative description of nodes, clusters and edges
// into a rendered architecture diagram. Layout is delegated to Graphviz. The
// pkg directory is organized as follows:
//
//  1. [diagram] - Builder and the sealed, immutable diagram model
//  2. [render/nodelink] - DOT generation, Graphviz layout and encoding
//  3. [render] - Optional SVG conversion to PDF and scaled PNG via rsvg-convert
//  4. [io] - TOML and JSON diagram descriptions
//  5. [catalog] - Ready-made diagrams declared through the builder
//  6. [errors] and [observability] - Error codes and render hooks
//
// # Architecture
//
// The typical data flow:
//
//	Builder declarations (code, TOML or JSON)
//	         ↓
//	    [diagram] package (validate references, seal)
//	         ↓
//	    [render/nodelink] package (DOT → Graphviz → PNG/SVG/JPG/PDF)
//	         ↓
//	    image file
//
// # Quick Start
//
//	b := diagram.NewBuilder()
//	a, _ := b.Node("A", "", diagram.CategoryGeneric)
//	bb, _ := b.Node("B", "", diagram.CategoryGeneric)
//	c, _ := b.Node("C", "", diagram.CategoryGeneric)
//	b.Cluster("g1", "Group", a, bb)
//	b.Connect(a, bb, c)
//
//	art, err := nodelink.Render(ctx, b, "Example", diagram.LeftToRight, "example.png")
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/archdiagram/pkg/diagram
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/archdiagram/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/archdiagram/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/archdiagram/pkg/io
// [catalog]: https://pkg.go.dev/github.com/matzehuels/archdiagram/pkg/catalog
// [errors]: https://pkg.go.dev/github.com/matzehuels/archdiagram/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/archdiagram/pkg/observability
package pkg
