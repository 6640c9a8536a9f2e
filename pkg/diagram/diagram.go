package diagram

import (
	"slices"
	"strings"

	"github.com/matzehuels/archdiagram/pkg/errors"
)

// Category selects the shape and colour a node is drawn with.
// Unknown categories render as [CategoryGeneric].
type Category string

// Visual categories.
const (
	CategoryGeneric    Category = "generic"
	CategoryBlank      Category = "blank"
	CategoryCompute    Category = "compute"
	CategoryStorage    Category = "storage"
	CategoryNetwork    Category = "network"
	CategoryDatabase   Category = "database"
	CategoryClient     Category = "client"
	CategoryServer     Category = "server"
	CategoryFramework  Category = "framework"
	CategoryLanguage   Category = "language"
	CategoryIdentity   Category = "identity"
	CategoryCI         Category = "ci"
	CategoryDevtools   Category = "devtools"
	CategoryMonitoring Category = "monitoring"
	CategoryAnalytics  Category = "analytics"
	CategoryCDN        Category = "cdn"
)

var knownCategories = map[Category]bool{
	CategoryGeneric:    true,
	CategoryBlank:      true,
	CategoryCompute:    true,
	CategoryStorage:    true,
	CategoryNetwork:    true,
	CategoryDatabase:   true,
	CategoryClient:     true,
	CategoryServer:     true,
	CategoryFramework:  true,
	CategoryLanguage:   true,
	CategoryIdentity:   true,
	CategoryCI:         true,
	CategoryDevtools:   true,
	CategoryMonitoring: true,
	CategoryAnalytics:  true,
	CategoryCDN:        true,
}

// Categories returns all known categories in sorted order.
func Categories() []Category {
	out := make([]Category, 0, len(knownCategories))
	for c := range knownCategories {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// ParseCategory normalizes s to a known category, falling back to
// [CategoryGeneric] for empty or unrecognized values.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if knownCategories[c] {
		return c
	}
	return CategoryGeneric
}

// Direction is the rank direction of the layout.
type Direction string

const (
	TopToBottom Direction = "TB"
	LeftToRight Direction = "LR"
)

// DefaultDirection is used when no direction is given.
const DefaultDirection = LeftToRight

// ParseDirection accepts "TB"/"LR" (any case) and the long forms
// "top-to-bottom"/"left-to-right". The empty string yields [DefaultDirection].
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultDirection, nil
	case "tb", "top-to-bottom":
		return TopToBottom, nil
	case "lr", "left-to-right":
		return LeftToRight, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidDirection, "invalid direction %q (must be 'TB' or 'LR')", s)
	}
}

// NodeRef identifies a declared node. It is returned by [Builder.Node] and
// passed to [Builder.Cluster] and [Builder.Connect].
type NodeRef string

// ID returns the referenced node identifier.
func (r NodeRef) ID() string { return string(r) }

// ClusterRef identifies a declared cluster.
type ClusterRef string

// ID returns the referenced cluster identifier.
func (r ClusterRef) ID() string { return string(r) }

// Node is a labeled entity in the diagram.
type Node struct {
	ID       string   // Unique identifier
	Label    string   // Display label (defaults to ID)
	Category Category // Visual category
	Cluster  string   // Owning cluster ID, empty when unclustered
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Cluster is a visual boundary around an ordered set of nodes.
type Cluster struct {
	ID      string
	Label   string
	Members []string // Member node IDs in declaration order
}

// DisplayLabel returns the label if set, otherwise the ID.
func (c Cluster) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.ID
}

// Edge is a directed relationship drawn as an arrow.
// Parallel edges between the same pair are allowed.
type Edge struct {
	From  string
	To    string
	Label string // Optional relationship label
}

// Diagram is the immutable result of [Builder.Build].
// All accessors return copies; the diagram cannot be modified after it is built.
type Diagram struct {
	Title     string
	Direction Direction

	nodes    []Node
	index    map[string]int
	clusters []Cluster
	edges    []Edge
}

// Nodes returns all nodes in declaration order.
func (d *Diagram) Nodes() []Node { return slices.Clone(d.nodes) }

// Node returns the node with the given ID and true, or the zero Node and false.
func (d *Diagram) Node(id string) (Node, bool) {
	i, ok := d.index[id]
	if !ok {
		return Node{}, false
	}
	return d.nodes[i], true
}

// Clusters returns all clusters in declaration order.
func (d *Diagram) Clusters() []Cluster {
	out := make([]Cluster, len(d.clusters))
	for i, c := range d.clusters {
		c.Members = slices.Clone(c.Members)
		out[i] = c
	}
	return out
}

// Unclustered returns the nodes that belong to no cluster, in declaration order.
func (d *Diagram) Unclustered() []Node {
	var out []Node
	for _, n := range d.nodes {
		if n.Cluster == "" {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns all edges in declaration order.
func (d *Diagram) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount returns the number of declared nodes.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of declared edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// ClusterCount returns the number of declared clusters.
func (d *Diagram) ClusterCount() int { return len(d.clusters) }

// DefaultFilename derives an output file name (without extension) from a
// title: whitespace-separated words joined by underscores, lowercased.
// An empty title yields "diagrams_image".
func DefaultFilename(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return "diagrams_image"
	}
	return strings.ToLower(strings.Join(fields, "_"))
}
