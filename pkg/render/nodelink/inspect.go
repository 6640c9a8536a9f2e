package nodelink

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Link is a directed edge as seen by Graphviz.
type Link struct {
	From string
	To   string
}

// Structure is the graph Graphviz recovers from DOT source: what will
// actually be drawn.
type Structure struct {
	Nodes    int
	Edges    int
	Clusters map[string][]string // cluster ID -> sorted member node IDs
	Links    []Link              // sorted by (From, To); parallel edges repeat
}

// Inspect parses DOT source with Graphviz's cgraph and reports its structure.
// Cluster IDs have [ClusterPrefix] removed; subgraphs without the prefix are
// not clusters and are ignored.
func Inspect(dot string) (Structure, error) {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return Structure{}, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var s Structure
	if s.Nodes, err = g.NodeNum(); err != nil {
		return Structure{}, fmt.Errorf("count nodes: %w", err)
	}
	if s.Edges, err = g.EdgeNum(); err != nil {
		return Structure{}, fmt.Errorf("count edges: %w", err)
	}
	if s.Clusters, err = clusters(g); err != nil {
		return Structure{}, err
	}
	if s.Links, err = links(g); err != nil {
		return Structure{}, err
	}
	return s, nil
}

func clusters(g *graphviz.Graph) (map[string][]string, error) {
	out := make(map[string][]string)
	sub, err := g.FirstSubGraph()
	for sub != nil && err == nil {
		name, nerr := sub.Name()
		if nerr != nil {
			return nil, fmt.Errorf("subgraph name: %w", nerr)
		}
		if id, ok := strings.CutPrefix(name, ClusterPrefix); ok {
			members, merr := nodeNames(sub)
			if merr != nil {
				return nil, merr
			}
			slices.Sort(members)
			out[id] = members
		}
		sub, err = sub.NextSubGraph()
	}
	if err != nil {
		return nil, fmt.Errorf("walk subgraphs: %w", err)
	}
	return out, nil
}

func nodeNames(g *graphviz.Graph) ([]string, error) {
	var names []string
	n, err := g.FirstNode()
	for n != nil && err == nil {
		name, nerr := n.Name()
		if nerr != nil {
			return nil, fmt.Errorf("node name: %w", nerr)
		}
		names = append(names, name)
		n, err = g.NextNode(n)
	}
	if err != nil {
		return nil, fmt.Errorf("walk nodes: %w", err)
	}
	return names, nil
}

func links(g *graphviz.Graph) ([]Link, error) {
	var out []Link
	n, err := g.FirstNode()
	for n != nil && err == nil {
		from, nerr := n.Name()
		if nerr != nil {
			return nil, fmt.Errorf("node name: %w", nerr)
		}
		e, eerr := g.FirstOut(n)
		for e != nil && eerr == nil {
			head, herr := e.Head()
			if herr != nil {
				return nil, fmt.Errorf("edge head: %w", herr)
			}
			to, terr := head.Name()
			if terr != nil {
				return nil, fmt.Errorf("node name: %w", terr)
			}
			out = append(out, Link{From: from, To: to})
			e, eerr = g.NextOut(e)
		}
		if eerr != nil {
			return nil, fmt.Errorf("walk edges: %w", eerr)
		}
		n, err = g.NextNode(n)
	}
	if err != nil {
		return nil, fmt.Errorf("walk nodes: %w", err)
	}
	slices.SortFunc(out, func(a, b Link) int {
		return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return out, nil
}
