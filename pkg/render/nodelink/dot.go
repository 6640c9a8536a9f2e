package nodelink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/archdiagram/pkg/diagram"
)

// ClusterPrefix is prepended to cluster IDs in DOT subgraph names.
// Graphviz only draws a boundary around subgraphs whose name starts with "cluster".
const ClusterPrefix = "cluster_"

// Options configures DOT generation.
type Options struct {
	// Detailed appends the node category to each label.
	Detailed bool

	// Splines selects the Graphviz edge routing. Empty means "ortho".
	Splines string
}

// ToDOT converts a diagram to Graphviz DOT format.
//
// The output is deterministic: clusters, nodes and edges appear in
// declaration order. Clusters are emitted first, then unclustered nodes,
// then every edge. Edge labels are written as xlabel so they survive
// orthogonal routing.
func ToDOT(d *diagram.Diagram, opts Options) string {
	splines := opts.Splines
	if splines == "" {
		splines = "ortho"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quoteID(graphName(d)))
	fmt.Fprintf(&buf, "  rankdir=%s;\n", d.Direction)
	if d.Title != "" {
		fmt.Fprintf(&buf, "  label=%s;\n", quoteLabel(d.Title))
		buf.WriteString("  labelloc=\"t\";\n")
	}
	fmt.Fprintf(&buf, "  splines=%q;\n", splines)
	buf.WriteString("  pad=\"0.5\";\n")
	buf.WriteString("  nodesep=0.60;\n")
	buf.WriteString("  ranksep=0.75;\n")
	fmt.Fprintf(&buf, "  fontname=%q;\n", fontName)
	buf.WriteString("  fontsize=15;\n")
	fmt.Fprintf(&buf, "  fontcolor=%q;\n", fontColor)
	fmt.Fprintf(&buf, "  node [fontname=%q, fontsize=13, fontcolor=%q, margin=\"0.2,0.1\"];\n", fontName, fontColor)
	fmt.Fprintf(&buf, "  edge [color=%q, fontname=%q, fontsize=11, fontcolor=%q];\n", edgeColor, fontName, fontColor)

	nodes := d.Nodes()
	byID := make(map[string]diagram.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	for _, c := range d.Clusters() {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph %s {\n", quoteID(ClusterPrefix+c.ID))
		fmt.Fprintf(&buf, "    label=%s;\n", quoteLabel(c.DisplayLabel()))
		buf.WriteString("    labeljust=\"l\";\n")
		buf.WriteString("    style=\"rounded,filled\";\n")
		fmt.Fprintf(&buf, "    pencolor=%q;\n", clusterPen)
		fmt.Fprintf(&buf, "    bgcolor=%q;\n", clusterBG)
		for _, id := range c.Members {
			writeNode(&buf, "    ", byID[id], opts.Detailed)
		}
		buf.WriteString("  }\n")
	}

	if loose := d.Unclustered(); len(loose) > 0 {
		buf.WriteString("\n")
		for _, n := range loose {
			writeNode(&buf, "  ", n, opts.Detailed)
		}
	}

	if edges := d.Edges(); len(edges) > 0 {
		buf.WriteString("\n")
		for _, e := range edges {
			if e.Label != "" {
				fmt.Fprintf(&buf, "  %s -> %s [xlabel=%s];\n", quoteID(e.From), quoteID(e.To), quoteLabel(e.Label))
				continue
			}
			fmt.Fprintf(&buf, "  %s -> %s;\n", quoteID(e.From), quoteID(e.To))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// graphName derives the digraph name from the title. Backslashes are
// replaced because a title, unlike an identifier, is not validated.
func graphName(d *diagram.Diagram) string {
	if d.Title == "" {
		return "G"
	}
	return strings.ReplaceAll(d.Title, `\`, "/")
}

// quoteID quotes a node, cluster or graph name. Graphviz unescapes only \"
// inside quoted names and keeps every other byte, so only quotes are escaped.
// errors.ValidateID rejects the backslash sequences this cannot express.
func quoteID(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// quoteLabel quotes a label. Labels go through Graphviz's escString
// expansion, so backslashes are doubled and newlines become \n.
func quoteLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeNode(buf *bytes.Buffer, indent string, n diagram.Node, detailed bool) {
	fmt.Fprintf(buf, "%s%s [%s];\n", indent, quoteID(n.ID), strings.Join(fmtAttrs(n, fmtLabel(n, detailed)), ", "))
}

func fmtLabel(n diagram.Node, detailed bool) string {
	if !detailed {
		return n.DisplayLabel()
	}
	return n.DisplayLabel() + "\n(" + string(n.Category) + ")"
}

func fmtAttrs(n diagram.Node, label string) []string {
	s := styleFor(n.Category)
	attrs := []string{"label=" + quoteLabel(label), "shape=" + s.shape}
	if s.style != "" {
		attrs = append(attrs, fmt.Sprintf("style=%q", s.style))
	}
	if s.fill != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", s.fill))
	}
	return attrs
}
