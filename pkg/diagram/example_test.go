package diagram_test

import (
	"fmt"

	"github.com/matzehuels/archdiagram/pkg/diagram"
	"github.com/matzehuels/archdiagram/pkg/errors"
)

func ExampleBuilder_basic() {
	// A → B → C
	b := diagram.NewBuilder()
	a, _ := b.Node("A", "", diagram.CategoryGeneric)
	bb, _ := b.Node("B", "", diagram.CategoryGeneric)
	c, _ := b.Node("C", "", diagram.CategoryGeneric)
	_ = b.Connect(a, bb)
	_ = b.Connect(bb, c)

	d, _ := b.Build("Simple", diagram.LeftToRight)
	fmt.Println("Nodes:", d.NodeCount())
	fmt.Println("Edges:", d.EdgeCount())
	fmt.Println("Direction:", d.Direction)
	// Output:
	// Nodes: 3
	// Edges: 2
	// Direction: LR
}

func ExampleBuilder_Connect_unknownNode() {
	b := diagram.NewBuilder()
	a, _ := b.Node("A", "", diagram.CategoryGeneric)

	err := b.Connect(a, diagram.NodeRef("B"))
	fmt.Println("Code:", errors.GetCode(err))
	fmt.Println("ID:", errors.GetID(err))
	fmt.Println("Edges:", b.EdgeCount())
	// Output:
	// Code: UNKNOWN_NODE
	// ID: B
	// Edges: 0
}

func ExampleBuilder_Cluster() {
	b := diagram.NewBuilder()
	api, _ := b.Node("api", "API Gateway", diagram.CategoryNetwork)
	fn, _ := b.Node("fn", "Lambda", diagram.CategoryCompute)
	cdn, _ := b.Node("cdn", "CloudFront", diagram.CategoryCDN)
	_, _ = b.Cluster("aws", "AWS", api, fn)
	_ = b.Connect(cdn, api)

	d, _ := b.Build("AWS", "")
	for _, c := range d.Clusters() {
		fmt.Println(c.Label, c.Members)
	}
	for _, n := range d.Unclustered() {
		fmt.Println("top level:", n.DisplayLabel())
	}
	// Output:
	// AWS [api fn]
	// top level: CloudFront
}

func ExampleBuilder_Chain() {
	b := diagram.NewBuilder()
	ui, _ := b.Node("ui", "", diagram.CategoryFramework)
	store, _ := b.Node("store", "", diagram.CategoryBlank)
	auth, _ := b.Node("auth", "", diagram.CategoryIdentity)
	mock, _ := b.Node("mock", "", diagram.CategoryBlank)
	api, _ := b.Node("api", "", diagram.CategoryNetwork)

	_ = b.Chain([]diagram.NodeRef{ui}, []diagram.NodeRef{store}, []diagram.NodeRef{auth, mock}, []diagram.NodeRef{api})

	d, _ := b.Build("Flow", diagram.LeftToRight)
	for _, e := range d.Edges() {
		fmt.Println(e.From, "->", e.To)
	}
	// Output:
	// ui -> store
	// store -> auth
	// store -> mock
	// auth -> api
	// mock -> api
}

func ExampleDefaultFilename() {
	fmt.Println(diagram.DefaultFilename("React + AWS Architecture"))
	// Output:
	// react_+_aws_architecture
}
