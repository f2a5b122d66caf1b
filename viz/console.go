package viz

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/vizgraph/core"
)

// Console renders a graph as a deterministic text listing: a header, the
// sorted node IDs, then one line per edge ("A -- B" undirected, "A -> B"
// directed). Every Draw/Refresh writes one full listing to the writer.
type Console struct {
	graph *core.Graph
	out   io.Writer
}

// NewConsole creates a console renderer writing to out.
// Returns ErrNilGraph if g is nil.
func NewConsole(g *core.Graph, out io.Writer) (*Console, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Console{graph: g, out: out}, nil
}

// Draw writes the current listing.
// Complexity: O(V log V + E log E).
func (c *Console) Draw() error {
	return c.render()
}

// Refresh writes the listing again; identical graph state yields an
// identical listing.
func (c *Console) Refresh() error {
	return c.render()
}

func (c *Console) render() error {
	g := c.graph
	if _, err := fmt.Fprintf(c.out, "graph direction=%s nodes=%d edges=%d\n",
		g.Direction(), g.NodeCount(), g.EdgeCount()); err != nil {
		return err
	}
	for _, id := range g.Nodes() {
		if _, err := fmt.Fprintf(c.out, "  node %s\n", id); err != nil {
			return err
		}
	}

	// Edge IDs are UUIDs, so the catalog's ID order is not reproducible
	// across runs; sort the rendered lines instead.
	lines := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		arrow := "--"
		if e.Directed() {
			arrow = "->"
		}
		lines = append(lines, fmt.Sprintf("  edge %s %s %s\n", e.Source().ID(), arrow, e.Target().ID()))
	}
	sort.Strings(lines)
	for _, line := range lines {
		if _, err := io.WriteString(c.out, line); err != nil {
			return err
		}
	}

	return nil
}
