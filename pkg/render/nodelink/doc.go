// Package nodelink renders architecture diagrams as node-link images using
// Graphviz.
//
// # Overview
//
// Graphviz handles layout and drawing in a single step, so the pipeline is
// short:
//
//	Builder → Build() → Diagram → ToDOT() → DOT → Graphviz dot → png/svg/jpg/pdf
//
// DOT is the intermediate representation. It is kept on the returned
// [Artifact] together with the [Structure] Graphviz parsed from it, which
// lets callers check that every declared node and edge reached the image.
//
// # Usage
//
//	b := diagram.NewBuilder()
//	a, _ := b.Node("A", "", diagram.CategoryGeneric)
//	c, _ := b.Node("C", "", diagram.CategoryGeneric)
//	_ = b.Connect(a, c)
//
//	art, err := nodelink.Render(ctx, b, "Example", diagram.LeftToRight, "out/example.png")
//
// # Appearance
//
// Clusters become "cluster_<id>" subgraphs with rounded, light blue
// boundaries. Each node category maps to a Graphviz shape and fill colour;
// unknown categories fall back to the generic rounded box. Titles are drawn
// at the top of the image.
//
// # Formats
//
// PNG, SVG, JPEG and laid-out DOT are encoded by the embedded Graphviz.
// PDF (and scaled PNG via [WithScale]) go through SVG and rsvg-convert.
//
// # Errors
//
// Every failure after the diagram is built carries
// [errors.ErrCodeRender]: an unwritable or missing output directory, an
// unsupported format, or a Graphviz failure. Output directories are never
// created implicitly.
package nodelink
