package nodelink

import "github.com/matzehuels/archdiagram/pkg/diagram"

// nodeStyle is the Graphviz appearance of one category.
type nodeStyle struct {
	shape string
	style string
	fill  string
}

const (
	fontName   = "Sans-Serif"
	fontColor  = "#2D3436"
	edgeColor  = "#7B8894"
	clusterPen = "#AEB6BE"
	clusterBG  = "#E5F5FD"
)

var categoryStyles = map[diagram.Category]nodeStyle{
	diagram.CategoryGeneric:    {shape: "box", style: "rounded,filled", fill: "#ECEFF1"},
	diagram.CategoryBlank:      {shape: "plaintext", style: "", fill: ""},
	diagram.CategoryCompute:    {shape: "box3d", style: "filled", fill: "#FFE0B2"},
	diagram.CategoryStorage:    {shape: "folder", style: "filled", fill: "#C8E6C9"},
	diagram.CategoryNetwork:    {shape: "hexagon", style: "filled", fill: "#E1BEE7"},
	diagram.CategoryDatabase:   {shape: "cylinder", style: "filled", fill: "#BBDEFB"},
	diagram.CategoryClient:     {shape: "tab", style: "filled", fill: "#FFF9C4"},
	diagram.CategoryServer:     {shape: "box", style: "filled", fill: "#CFD8DC"},
	diagram.CategoryFramework:  {shape: "component", style: "filled", fill: "#B3E5FC"},
	diagram.CategoryLanguage:   {shape: "note", style: "filled", fill: "#FFECB3"},
	diagram.CategoryIdentity:   {shape: "octagon", style: "filled", fill: "#F8BBD0"},
	diagram.CategoryCI:         {shape: "cds", style: "filled", fill: "#D7CCC8"},
	diagram.CategoryDevtools:   {shape: "box", style: "rounded,filled,dashed", fill: "#DCEDC8"},
	diagram.CategoryMonitoring: {shape: "doubleoctagon", style: "filled", fill: "#FFCCBC"},
	diagram.CategoryAnalytics:  {shape: "invtrapezium", style: "filled", fill: "#D1C4E9"},
	diagram.CategoryCDN:        {shape: "ellipse", style: "filled", fill: "#B2EBF2"},
}

func styleFor(c diagram.Category) nodeStyle {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[diagram.CategoryGeneric]
}
