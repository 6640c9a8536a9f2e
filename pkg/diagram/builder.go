package diagram

import (
	"slices"

	"github.com/matzehuels/archdiagram/pkg/errors"
)

// Builder accumulates nodes, clusters and edges for a single diagram.
//
// Every declaration is checked at the point of the call: duplicate
// identifiers fail with [errors.ErrCodeDuplicateID] and references to
// undeclared nodes fail with [errors.ErrCodeUnknownNode]. A failed call
// leaves the builder unchanged.
//
// The lifecycle is linear: declare, then [Builder.Build] once. After Build
// the builder is sealed and further declarations fail with
// [errors.ErrCodeSealed].
//
// The zero value is not usable - use NewBuilder. Builder is not safe for
// concurrent use.
type Builder struct {
	nodes        []Node
	nodeIndex    map[string]int
	clusters     []Cluster
	clusterIndex map[string]int
	edges        []Edge
	sealed       bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		nodeIndex:    make(map[string]int),
		clusterIndex: make(map[string]int),
	}
}

// Node declares a node. An empty label displays the ID; an unknown
// category renders as [CategoryGeneric].
func (b *Builder) Node(id, label string, category Category) (NodeRef, error) {
	if err := b.checkOpen(); err != nil {
		return "", err
	}
	if err := errors.ValidateID(id); err != nil {
		return "", err
	}
	if _, exists := b.nodeIndex[id]; exists {
		return "", errors.DuplicateID("node", id)
	}
	if !knownCategories[category] {
		category = CategoryGeneric
	}

	b.nodeIndex[id] = len(b.nodes)
	b.nodes = append(b.nodes, Node{ID: id, Label: label, Category: category})
	return NodeRef(id), nil
}

// Cluster groups previously declared nodes under a labeled boundary.
// Clusters are flat: a node can belong to at most one cluster.
func (b *Builder) Cluster(id, label string, members ...NodeRef) (ClusterRef, error) {
	if err := b.checkOpen(); err != nil {
		return "", err
	}
	if err := errors.ValidateID(id); err != nil {
		return "", err
	}
	if _, exists := b.clusterIndex[id]; exists {
		return "", errors.DuplicateID("cluster", id)
	}
	if err := b.checkRefs(members); err != nil {
		return "", err
	}

	ids := make([]string, 0, len(members))
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if seen[m.ID()] {
			continue
		}
		seen[m.ID()] = true
		if owner := b.nodes[b.nodeIndex[m.ID()]].Cluster; owner != "" {
			err := errors.New(errors.ErrCodeInvalidInput, "node %q already belongs to cluster %q", m.ID(), owner)
			err.ID = m.ID()
			return "", err
		}
		ids = append(ids, m.ID())
	}

	for _, nid := range ids {
		b.nodes[b.nodeIndex[nid]].Cluster = id
	}
	b.clusterIndex[id] = len(b.clusters)
	b.clusters = append(b.clusters, Cluster{ID: id, Label: label, Members: ids})
	return ClusterRef(id), nil
}

// Connect records one directed edge from source to each target, in order.
func (b *Builder) Connect(source NodeRef, targets ...NodeRef) error {
	return b.ConnectLabeled(source, "", targets...)
}

// ConnectLabeled is like Connect but attaches label to every recorded edge.
// Either all edges are recorded or, on error, none are.
func (b *Builder) ConnectLabeled(source NodeRef, label string, targets ...NodeRef) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if len(targets) == 0 {
		err := errors.New(errors.ErrCodeInvalidInput, "connect from %q requires at least one target", source.ID())
		err.ID = source.ID()
		return err
	}
	if err := b.checkRefs(append([]NodeRef{source}, targets...)); err != nil {
		return err
	}

	for _, t := range targets {
		b.edges = append(b.edges, Edge{From: source.ID(), To: t.ID(), Label: label})
	}
	return nil
}

// Chain connects every node in each group to every node in the next group,
// so Chain({a}, {b}, {c, d}, {e}) records a→b, b→c, b→d, c→e and d→e.
// Either all edges are recorded or, on error, none are.
func (b *Builder) Chain(groups ...[]NodeRef) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	if len(groups) < 2 {
		return errors.New(errors.ErrCodeInvalidInput, "chain requires at least two groups, got %d", len(groups))
	}
	for i, g := range groups {
		if len(g) == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "chain group %d is empty", i)
		}
		if err := b.checkRefs(g); err != nil {
			return err
		}
	}

	for i := 0; i+1 < len(groups); i++ {
		for _, from := range groups[i] {
			for _, to := range groups[i+1] {
				b.edges = append(b.edges, Edge{From: from.ID(), To: to.ID()})
			}
		}
	}
	return nil
}

// Build seals the builder and returns the immutable diagram.
// An empty direction selects [DefaultDirection].
func (b *Builder) Build(title string, direction Direction) (*Diagram, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	dir, err := ParseDirection(string(direction))
	if err != nil {
		return nil, err
	}
	b.sealed = true

	d := &Diagram{
		Title:     title,
		Direction: dir,
		nodes:     slices.Clone(b.nodes),
		index:     make(map[string]int, len(b.nodes)),
		clusters:  make([]Cluster, len(b.clusters)),
		edges:     slices.Clone(b.edges),
	}
	for i, n := range d.nodes {
		d.index[n.ID] = i
	}
	for i, c := range b.clusters {
		c.Members = slices.Clone(c.Members)
		d.clusters[i] = c
	}
	return d, nil
}

// Sealed reports whether Build has been called.
func (b *Builder) Sealed() bool { return b.sealed }

// NodeCount returns the number of nodes declared so far.
func (b *Builder) NodeCount() int { return len(b.nodes) }

// EdgeCount returns the number of edges recorded so far.
func (b *Builder) EdgeCount() int { return len(b.edges) }

// Has reports whether a node with the given ID has been declared.
func (b *Builder) Has(id string) bool {
	_, ok := b.nodeIndex[id]
	return ok
}

func (b *Builder) checkOpen() error {
	if b.sealed {
		return errors.New(errors.ErrCodeSealed, "diagram already built; no further declarations allowed")
	}
	return nil
}

// checkRefs returns an UNKNOWN_NODE error for the first undeclared ref.
func (b *Builder) checkRefs(refs []NodeRef) error {
	for _, r := range refs {
		if _, ok := b.nodeIndex[r.ID()]; !ok {
			return errors.UnknownNode(r.ID())
		}
	}
	return nil
}
