// Package catalog holds ready-made architecture diagrams declared through
// the builder API.
package catalog

import (
	"slices"

	"github.com/matzehuels/archdiagram/pkg/diagram"
)

// Entry is a named diagram definition.
type Entry struct {
	Name      string
	Title     string
	Direction diagram.Direction
	Filename  string // default output name without extension

	// Declare adds the diagram's nodes, clusters and edges to b.
	Declare func(b *diagram.Builder) error
}

// Build declares the entry on a fresh builder and seals it.
func (e Entry) Build() (*diagram.Diagram, error) {
	b := diagram.NewBuilder()
	if err := e.Declare(b); err != nil {
		return nil, err
	}
	return b.Build(e.Title, e.Direction)
}

var entries = map[string]Entry{
	"react-aws": {
		Name:      "react-aws",
		Title:     "React + AWS Architecture",
		Direction: diagram.LeftToRight,
		Filename:  diagram.DefaultFilename("React + AWS Architecture"),
		Declare:   declareReactAWS,
	},
	"project-libraries": {
		Name:      "project-libraries",
		Title:     "Project Libraries and Interactions with Visual Flow",
		Direction: diagram.LeftToRight,
		Filename:  "project_libraries_interactions_flow",
		Declare:   declareProjectLibraries,
	},
}

// Names returns the catalog entry names in sorted order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Get returns the entry with the given name.
func Get(name string) (Entry, bool) {
	e, ok := entries[name]
	return e, ok
}

// declarer records the first builder error and turns later calls into no-ops.
type declarer struct {
	b   *diagram.Builder
	err error
}

func (d *declarer) node(id, label string, c diagram.Category) diagram.NodeRef {
	if d.err != nil {
		return diagram.NodeRef(id)
	}
	ref, err := d.b.Node(id, label, c)
	d.err = err
	return ref
}

func (d *declarer) cluster(id, label string, members ...diagram.NodeRef) {
	if d.err == nil {
		_, d.err = d.b.Cluster(id, label, members...)
	}
}

func (d *declarer) connect(from diagram.NodeRef, to ...diagram.NodeRef) {
	if d.err == nil {
		d.err = d.b.Connect(from, to...)
	}
}

func (d *declarer) chain(groups ...[]diagram.NodeRef) {
	if d.err == nil {
		d.err = d.b.Chain(groups...)
	}
}

func group(refs ...diagram.NodeRef) []diagram.NodeRef { return refs }
