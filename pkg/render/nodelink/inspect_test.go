package nodelink

import (
	"slices"
	"testing"
)

func TestInspect(t *testing.T) {
	dot := `digraph G {
  subgraph "cluster_api" { "gw"; "fn"; }
  subgraph "plain" { "x"; }
  "gw" -> "fn";
  "fn" -> "s3";
  "fn" -> "s3";
}`
	s, err := Inspect(dot)
	if err != nil {
		t.Fatalf("Inspect() error: %v", err)
	}
	if s.Nodes != 4 {
		t.Errorf("Nodes = %d, want 4", s.Nodes)
	}
	if s.Edges != 3 {
		t.Errorf("Edges = %d, want 3", s.Edges)
	}
	if len(s.Clusters) != 1 {
		t.Fatalf("Clusters = %v, want only api", s.Clusters)
	}
	if got := s.Clusters["api"]; !slices.Equal(got, []string{"fn", "gw"}) {
		t.Errorf("api members = %v, want [fn gw]", got)
	}
	want := []Link{{"fn", "s3"}, {"fn", "s3"}, {"gw", "fn"}}
	if !slices.Equal(s.Links, want) {
		t.Errorf("Links = %v, want %v", s.Links, want)
	}
}

func TestInspect_Empty(t *testing.T) {
	s, err := Inspect(`digraph G {}`)
	if err != nil {
		t.Fatalf("Inspect() error: %v", err)
	}
	if s.Nodes != 0 || s.Edges != 0 || len(s.Clusters) != 0 {
		t.Errorf("empty graph structure = %+v", s)
	}
}

func TestInspect_InvalidDOT(t *testing.T) {
	if _, err := Inspect(`not valid DOT {{{`); err == nil {
		t.Error("Inspect() should fail on invalid DOT")
	}
}
