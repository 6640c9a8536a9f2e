package io

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/matzehuels/archdiagram/pkg/diagram"
	"github.com/matzehuels/archdiagram/pkg/errors"
)

// Encoding is a description file format.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingTOML Encoding = "toml"
)

// EncodingFromPath picks the encoding from a file extension.
func EncodingFromPath(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return EncodingJSON, nil
	case ".toml":
		return EncodingTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer description format from %q (want .json or .toml)", path)
	}
}

type document struct {
	Title     string    `json:"title,omitempty" toml:"title,omitempty"`
	Direction string    `json:"direction,omitempty" toml:"direction,omitempty"`
	Nodes     []node    `json:"nodes" toml:"nodes"`
	Clusters  []cluster `json:"clusters,omitempty" toml:"clusters,omitempty"`
	Edges     []edge    `json:"edges,omitempty" toml:"edges,omitempty"`
}

type node struct {
	ID       string `json:"id" toml:"id"`
	Label    string `json:"label,omitempty" toml:"label,omitempty"`
	Category string `json:"category,omitempty" toml:"category,omitempty"`
}

type cluster struct {
	ID      string   `json:"id" toml:"id"`
	Label   string   `json:"label,omitempty" toml:"label,omitempty"`
	Members []string `json:"members" toml:"members"`
}

// edge fans out from one source to several targets, like Connect.
type edge struct {
	From  string   `json:"from" toml:"from"`
	To    []string `json:"to" toml:"to"`
	Label string   `json:"label,omitempty" toml:"label,omitempty"`
}

// Description is a decoded diagram document whose nodes, clusters and edges
// have been declared on Builder. Title and Direction are applied at build time.
type Description struct {
	Title     string
	Direction diagram.Direction
	Builder   *diagram.Builder
}

// Build seals the builder with the document's title and direction.
func (d *Description) Build() (*diagram.Diagram, error) {
	return d.Builder.Build(d.Title, d.Direction)
}

// declare replays doc through the public builder API, so every declaration
// error surfaces with its original code.
func (doc *document) declare() (*Description, error) {
	dir, err := diagram.ParseDirection(doc.Direction)
	if err != nil {
		return nil, err
	}

	b := diagram.NewBuilder()
	for _, n := range doc.Nodes {
		if _, err := b.Node(n.ID, n.Label, diagram.ParseCategory(n.Category)); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, c := range doc.Clusters {
		if _, err := b.Cluster(c.ID, c.Label, refs(c.Members)...); err != nil {
			return nil, fmt.Errorf("cluster %s: %w", c.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := b.ConnectLabeled(diagram.NodeRef(e.From), e.Label, refs(e.To)...); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, strings.Join(e.To, ","), err)
		}
	}

	return &Description{Title: doc.Title, Direction: dir, Builder: b}, nil
}

func refs(ids []string) []diagram.NodeRef {
	out := make([]diagram.NodeRef, len(ids))
	for i, id := range ids {
		out[i] = diagram.NodeRef(id)
	}
	return out
}

// fromDiagram flattens d into a document. Consecutive edges that share a
// source and label are merged into one entry, preserving edge order.
func fromDiagram(d *diagram.Diagram) document {
	doc := document{
		Title:     d.Title,
		Direction: string(d.Direction),
		Nodes:     make([]node, 0, d.NodeCount()),
	}
	for _, n := range d.Nodes() {
		nd := node{ID: n.ID, Label: n.Label}
		if n.Category != diagram.CategoryGeneric {
			nd.Category = string(n.Category)
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, c := range d.Clusters() {
		doc.Clusters = append(doc.Clusters, cluster{ID: c.ID, Label: c.Label, Members: c.Members})
	}
	for _, e := range d.Edges() {
		if last := len(doc.Edges) - 1; last >= 0 && doc.Edges[last].From == e.From && doc.Edges[last].Label == e.Label {
			doc.Edges[last].To = append(doc.Edges[last].To, e.To)
			continue
		}
		doc.Edges = append(doc.Edges, edge{From: e.From, To: []string{e.To}, Label: e.Label})
	}
	return doc
}
