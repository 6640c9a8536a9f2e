package catalog

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/archdiagram/pkg/diagram"
	"github.com/matzehuels/archdiagram/pkg/errors"
	"github.com/matzehuels/archdiagram/pkg/render/nodelink"
)

func TestNames(t *testing.T) {
	want := []string{"project-libraries", "react-aws"}
	if got := Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if _, ok := Get("nope"); ok {
		t.Error("Get(nope) should not exist")
	}
}

func TestEntries(t *testing.T) {
	tests := []struct {
		name     string
		nodes    int
		edges    int
		clusters map[string]int
		loose    []string
	}{
		{
			name:     "react-aws",
			nodes:    12,
			edges:    13,
			clusters: map[string]int{"frontend": 3, "aws_lambda_api": 4, "cicd_monitoring": 3},
			loose:    []string{"dev_panel", "cdn"},
		},
		{
			name:     "project-libraries",
			nodes:    19,
			edges:    23,
			clusters: map[string]int{"state": 3, "visual": 4, "core": 5, "utility": 4, "testing": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := Get(tt.name)
			if !ok {
				t.Fatalf("Get(%q) missing", tt.name)
			}
			d, err := e.Build()
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if d.NodeCount() != tt.nodes || d.EdgeCount() != tt.edges {
				t.Errorf("counts = %d nodes / %d edges, want %d / %d", d.NodeCount(), d.EdgeCount(), tt.nodes, tt.edges)
			}
			if d.Direction != diagram.LeftToRight {
				t.Errorf("Direction = %q, want LR", d.Direction)
			}
			for _, c := range d.Clusters() {
				if want, ok := tt.clusters[c.ID]; !ok || len(c.Members) != want {
					t.Errorf("cluster %s has %d members, want %d", c.ID, len(c.Members), want)
				}
			}
			var loose []string
			for _, n := range d.Unclustered() {
				loose = append(loose, n.ID)
			}
			if !slices.Equal(loose, tt.loose) {
				t.Errorf("unclustered = %v, want %v", loose, tt.loose)
			}
		})
	}
}

func TestReactAWSEdges(t *testing.T) {
	e, _ := Get("react-aws")
	d, err := e.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := []diagram.Edge{
		{From: "react_ui", To: "zustand"},
		{From: "zustand", To: "msal_auth"},
		{From: "zustand", To: "dev_panel"},
		{From: "msal_auth", To: "api_gateway"},
		{From: "dev_panel", To: "api_gateway"},
		{From: "api_gateway", To: "lambda_fn"},
		{From: "lambda_fn", To: "s3"},
		{From: "lambda_fn", To: "opensearch"},
		{From: "lambda_fn", To: "logs"},
		{From: "gitlab", To: "deploy"},
		{From: "deploy", To: "lambda_fn"},
		{From: "react_ui", To: "cdn"},
		{From: "cdn", To: "api_gateway"},
	}
	if got := d.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() =\n%v\nwant\n%v", got, want)
	}
}

func TestProjectLibrariesKeepsDuplicateEdge(t *testing.T) {
	e, _ := Get("project-libraries")
	d, err := e.Build()
	if err != nil {
		t.Fatal(err)
	}
	n := 0
	for _, edge := range d.Edges() {
		if edge.From == "msw" && edge.To == "playwright" {
			n++
		}
	}
	if n != 2 {
		t.Errorf("msw->playwright edges = %d, want 2", n)
	}
	if e.Filename != "project_libraries_interactions_flow" {
		t.Errorf("Filename = %q", e.Filename)
	}
}

func TestDeclareOnUsedBuilderFails(t *testing.T) {
	e, _ := Get("react-aws")
	b := diagram.NewBuilder()
	if _, err := b.Node("cdn", "", diagram.CategoryGeneric); err != nil {
		t.Fatal(err)
	}
	err := e.Declare(b)
	if !errors.Is(err, errors.ErrCodeDuplicateID) || errors.GetID(err) != "cdn" {
		t.Errorf("err = %v, want DUPLICATE_ID for cdn", err)
	}
}

func TestEntriesRender(t *testing.T) {
	dir := t.TempDir()
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			e, _ := Get(name)
			d, err := e.Build()
			if err != nil {
				t.Fatal(err)
			}
			art, err := nodelink.RenderDiagram(context.Background(), d, filepath.Join(dir, e.Filename+".svg"))
			if err != nil {
				t.Fatalf("RenderDiagram() error: %v", err)
			}
			if art.Structure.Nodes != d.NodeCount() || art.Structure.Edges != d.EdgeCount() {
				t.Errorf("rendered %d nodes / %d edges, declared %d / %d",
					art.Structure.Nodes, art.Structure.Edges, d.NodeCount(), d.EdgeCount())
			}
			if len(art.Structure.Clusters) != d.ClusterCount() {
				t.Errorf("rendered %d clusters, declared %d", len(art.Structure.Clusters), d.ClusterCount())
			}
		})
	}
}
