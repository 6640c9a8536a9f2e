// Package io provides JSON and TOML import and export of diagram descriptions.
//
// # Overview
//
// A description is a plain data file that declares the same things the
// builder API does: nodes, clusters and edges, plus a title and layout
// direction. It lets diagrams be rendered without writing Go.
//
// # TOML Format
//
//	title = "React + AWS Architecture"
//	direction = "LR"
//
//	[[nodes]]
//	id = "react_ui"
//	label = "React + MUI"
//	category = "framework"
//
//	[[nodes]]
//	id = "zustand"
//	label = "Zustand Slices"
//	category = "blank"
//
//	[[clusters]]
//	id = "frontend"
//	label = "Frontend"
//	members = ["react_ui", "zustand"]
//
//	[[edges]]
//	from = "react_ui"
//	to = ["zustand"]
//
// The JSON format uses the same field names:
//
//	{
//	  "title": "Three Tier",
//	  "nodes": [{"id": "web"}, {"id": "db", "category": "database"}],
//	  "edges": [{"from": "web", "to": ["db"], "label": "reads"}]
//	}
//
// # Fields
//
//   - title, direction ("TB" or "LR", default "LR"): optional
//   - nodes[].id: required; label defaults to the id, category to "generic"
//   - clusters[].members: node ids, each in at most one cluster
//   - edges[].to: one or more targets; one edge is recorded per target
//
// # Import
//
// [ReadJSON], [ReadTOML] and [ImportFile] replay the document through
// [diagram.Builder] in file order (nodes, then clusters, then edges), so the
// returned [Description] is subject to exactly the same checks as
// hand-written code. Unknown fields are rejected.
//
// # Export
//
// [WriteJSON], [WriteTOML] and [ExportFile] write a built [diagram.Diagram]
// back out. Consecutive edges with the same source and label are merged into
// one entry. Re-importing an export yields the same nodes, clusters and
// edges in the same order.
package io
