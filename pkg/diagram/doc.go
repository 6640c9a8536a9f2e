// Package diagram provides the declarative model for architecture diagrams:
// labeled nodes, optional clusters that group them, and directed edges.
//
// # Overview
//
// A diagram is assembled through a [Builder]. Each declaration is validated
// as it is made, so a mistake surfaces at the exact call that caused it
// instead of during layout:
//
//	b := diagram.NewBuilder()
//	web, _ := b.Node("web", "Web", diagram.CategoryClient)
//	api, _ := b.Node("api", "API", diagram.CategoryServer)
//	db, _ := b.Node("db", "Postgres", diagram.CategoryDatabase)
//	_, _ = b.Cluster("backend", "Backend", api, db)
//	_ = b.Connect(web, api)
//	_ = b.Connect(api, db)
//	d, _ := b.Build("Three Tier", diagram.LeftToRight)
//
// [Builder.Build] seals the builder and returns an immutable [Diagram] that
// renderers consume (see package nodelink).
//
// # Identifiers
//
// Node identifiers are unique within a diagram, and so are cluster
// identifiers. The two namespaces are independent: a cluster may share its
// ID with a node. Re-declaring an identifier fails with
// [errors.ErrCodeDuplicateID]; referring to a node that was never declared
// fails with [errors.ErrCodeUnknownNode].
//
// # Edges
//
// [Builder.Connect] records one edge per target in argument order. All
// endpoints are checked before anything is recorded, so a failing call adds
// no edges. Parallel edges are kept. [Builder.Chain] expresses fan-out and
// fan-in pipelines in a single call.
//
// # Clusters
//
// Clusters are flat and a node belongs to at most one of them. Nodes not
// assigned to any cluster are drawn at the top level.
package diagram
