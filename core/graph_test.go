package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vizgraph/core"
)

// newGraph builds a graph or fails the test; keeps table-free tests terse.
func newGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(opts...)
	require.NoError(t, err)

	return g
}

func addNodes(t *testing.T, g *core.Graph, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := g.AddNode(id)
		require.NoError(t, err)
	}
}

// neighborIDs extracts the neighbor IDs from a node's adjacency snapshot.
func neighborIDs(n *core.Node) []string {
	conns := n.Edges()
	out := make([]string, 0, len(conns))
	for _, c := range conns {
		out = append(out, c.Neighbor().ID())
	}

	return out
}

func TestNewGraph_Defaults(t *testing.T) {
	g := newGraph(t)

	require.Equal(t, core.Undirected, g.Direction())
	require.False(t, g.Multigraph())
	require.False(t, g.Looped())
	require.False(t, g.Override())
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
}

func TestNewGraph_InvalidDirection(t *testing.T) {
	_, err := core.NewGraph(core.WithDirection(core.Direction(42)))
	require.ErrorIs(t, err, core.ErrInvalidDirection)
}

func TestAddNode_Uniqueness(t *testing.T) {
	g := newGraph(t)

	first, err := g.AddNode("a")
	require.NoError(t, err)

	_, err = g.AddNode("a")
	require.ErrorIs(t, err, core.ErrDuplicateID)

	got, ok := g.Node("a")
	require.True(t, ok)
	require.Same(t, first, got, "failed duplicate must not replace the mapping entry")

	_, err = g.AddNode("")
	require.ErrorIs(t, err, core.ErrEmptyNodeID)
}

func TestAddNode_Override(t *testing.T) {
	g := newGraph(t, core.WithOverride())

	first, err := g.AddNode("a")
	require.NoError(t, err)

	second, err := g.AddNode("a")
	require.NoError(t, err)
	require.NotSame(t, first, second)

	got, ok := g.Node("a")
	require.True(t, ok)
	require.Same(t, second, got, "mapping holds the latest node")
	require.Nil(t, first.Graph(), "replaced node is detached")
}

// Replacing a node that still has edges must not leave those edges dangling.
func TestAddNode_OverrideCascadesEdges(t *testing.T) {
	g := newGraph(t, core.WithOverride())
	addNodes(t, g, "a", "b")

	_, err := g.Connect("a", "b")
	require.NoError(t, err)

	old, _ := g.Node("a")
	_, err = g.AddNode("a")
	require.NoError(t, err)

	require.Zero(t, g.EdgeCount())
	require.Empty(t, old.Edges())
	b, _ := g.Node("b")
	require.Empty(t, b.Edges(), "neighbor adjacency cleaned with the replaced node")
}

func TestAttachNode_Errors(t *testing.T) {
	g := newGraph(t)
	other := newGraph(t)

	require.ErrorIs(t, g.AttachNode(nil), core.ErrNilNode)

	n, err := core.NewNode("a")
	require.NoError(t, err)
	require.NoError(t, g.AttachNode(n))
	require.Same(t, g, n.Graph())

	require.ErrorIs(t, g.AttachNode(n), core.ErrAlreadyAttached)
	require.ErrorIs(t, other.AttachNode(n), core.ErrAlreadyAttached,
		"a node belongs to at most one graph at a time")
}

func TestConnect_UndirectedSymmetry(t *testing.T) {
	g := newGraph(t)
	addNodes(t, g, "a", "b")

	e, err := g.Connect("a", "b")
	require.NoError(t, err)
	require.False(t, e.Directed())

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	require.Equal(t, []string{"b"}, neighborIDs(a))
	require.Equal(t, []string{"a"}, neighborIDs(b))
	require.True(t, g.HasEdge("a", "b"))
	require.True(t, g.HasEdge("b", "a"))

	require.NoError(t, g.Detach("a", "b"))
	require.Empty(t, a.Edges())
	require.Empty(t, b.Edges())
	require.Zero(t, g.EdgeCount())
}

func TestConnect_DirectedOneSided(t *testing.T) {
	g := newGraph(t, core.WithDirection(core.Directed))
	addNodes(t, g, "a", "b")

	e, err := g.Connect("a", "b")
	require.NoError(t, err)
	require.True(t, e.Directed())

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	require.Equal(t, []string{"b"}, neighborIDs(a))
	require.Empty(t, b.Edges(), "directed edges are one-way in adjacency")
	require.True(t, g.HasEdge("a", "b"))
	require.False(t, g.HasEdge("b", "a"))
}

func TestConnect_NotFound(t *testing.T) {
	g := newGraph(t)
	addNodes(t, g, "a")

	_, err := g.Connect("a", "ghost")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Connect("ghost", "a")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	require.Zero(t, g.EdgeCount())
}

func TestConnect_DuplicateEdge(t *testing.T) {
	g := newGraph(t)
	addNodes(t, g, "a", "b")

	_, err := g.Connect("a", "b")
	require.NoError(t, err)

	_, err = g.Connect("a", "b")
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	// Undirected edges collide under the reverse pair key too.
	_, err = g.Connect("b", "a")
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	require.Equal(t, 1, g.EdgeCount())
}

// A directed a→b and a directed b→a are different relationships; only an
// undirected edge under the reverse key counts as a duplicate.
func TestConnect_ReverseDirectedIsLegal(t *testing.T) {
	g := newGraph(t, core.WithDirection(core.Directed))
	addNodes(t, g, "a", "b")

	_, err := g.Connect("a", "b")
	require.NoError(t, err)
	_, err = g.Connect("b", "a")
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())

	_, err = g.Connect("a", "b")
	require.ErrorIs(t, err, core.ErrDuplicateEdge, "same order still collides")
}

func TestConnect_SelfLoopGating(t *testing.T) {
	g := newGraph(t)
	addNodes(t, g, "a")

	_, err := g.Connect("a", "a")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	g.SetLooped(true)
	e, err := g.Connect("a", "a")
	require.NoError(t, err)
	require.True(t, e.IsLoop())
	require.Equal(t, 1, g.EdgeCount(), "exactly one edge")

	a, _ := g.Node("a")
	require.Len(t, a.Edges(), 1, "exactly one adjacency entry, not two")
	require.Equal(t, []string{"a"}, neighborIDs(a))
}

func TestConnect_MixedModeHonorsOption(t *testing.T) {
	g := newGraph(t, core.WithDirection(core.Mixed))
	addNodes(t, g, "a", "b", "c")

	plain, err := g.Connect("a", "b")
	require.NoError(t, err)
	require.False(t, plain.Directed(), "Mixed default is undirected")

	directed, err := g.Connect("b", "c", core.WithEdgeDirected(true))
	require.NoError(t, err)
	require.True(t, directed.Directed())
}

// Outside Mixed mode the graph-wide value wins silently over the option.
func TestConnect_UniformModeForcesDirected(t *testing.T) {
	g := newGraph(t)
	addNodes(t, g, "a", "b")

	e, err := g.Connect("a", "b", core.WithEdgeDirected(true))
	require.NoError(t, err)
	require.False(t, e.Directed())

	dg := newGraph(t, core.WithDirection(core.Directed))
	addNodes(t, dg, "a", "b")
	de, err := dg.Connect("a", "b", core.WithEdgeDirected(false))
	require.NoError(t, err)
	require.True(t, de.Directed())
}

func TestRemoveNode_Cascade(t *testing.T) {
	g := newGraph(t)
	addNodes(t, g, "a", "b", "c")
	_, err := g.Connect("a", "b")
	require.NoError(t, err)
	_, err = g.Connect("b", "c")
	require.NoError(t, err)

	b, _ := g.Node("b")
	require.NoError(t, g.RemoveNode("b"))

	require.Zero(t, g.EdgeCount())
	require.False(t, g.HasNode("b"))
	require.Nil(t, b.Graph())
	require.Empty(t, b.Edges())

	a, _ := g.Node("a")
	c, _ := g.Node("c")
	require.Empty(t, a.Edges())
	require.Empty(t, c.Edges())
}

// Incoming directed edges leave no adjacency trace on the removed node, yet
// must still be cleaned from the source side.
func TestRemoveNode_IncomingDirected(t *testing.T) {
	g := newGraph(t, core.WithDirection(core.Directed))
	addNodes(t, g, "a", "b")
	_, err := g.Connect("a", "b")
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode("b"))

	a, _ := g.Node("a")
	require.Empty(t, a.Edges())
	require.Zero(t, g.EdgeCount())
}

func TestRemoveNode_Errors(t *testing.T) {
	g := newGraph(t)
	require.ErrorIs(t, g.RemoveNode(""), core.ErrEmptyNodeID)
	require.ErrorIs(t, g.RemoveNode("ghost"), core.ErrNodeNotFound)
}

func TestRemoveNode_SelfLoop(t *testing.T) {
	g := newGraph(t, core.WithLoops())
	addNodes(t, g, "a")
	_, err := g.Connect("a", "a")
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode("a"))
	require.Zero(t, g.EdgeCount())
	require.Zero(t, g.NodeCount())
}

func TestDetach_BothOrdersAndAllDirections(t *testing.T) {
	g := newGraph(t, core.WithDirection(core.Mixed), core.WithMultiEdges())
	addNodes(t, g, "a", "b", "c")

	_, err := g.Connect("a", "b", core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.Connect("b", "a", core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.Connect("a", "b")
	require.NoError(t, err)
	_, err = g.Connect("a", "c")
	require.NoError(t, err)

	require.NoError(t, g.Detach("a", "b"))

	require.Equal(t, 1, g.EdgeCount(), "only the a-c edge survives")
	a, _ := g.Node("a")
	b, _ := g.Node("b")
	require.Equal(t, []string{"c"}, neighborIDs(a))
	require.Empty(t, b.Edges())

	// Detaching an edgeless pair is not an error; unknown IDs are.
	require.NoError(t, g.Detach("a", "b"))
	require.ErrorIs(t, g.Detach("a", "ghost"), core.ErrNodeNotFound)
}

func TestSetDirection_NoOpAndInvalid(t *testing.T) {
	g := newGraph(t)
	require.NoError(t, g.SetDirection(core.Undirected))
	require.ErrorIs(t, g.SetDirection(core.Direction(7)), core.ErrInvalidDirection)
	require.Equal(t, core.Undirected, g.Direction())
}

func TestSetDirection_UniformWalksEdges(t *testing.T) {
	g := newGraph(t, core.WithDirection(core.Mixed))
	addNodes(t, g, "a", "b", "c")

	_, err := g.Connect("a", "b", core.WithEdgeDirected(true))
	require.NoError(t, err)
	_, err = g.Connect("b", "c")
	require.NoError(t, err)

	require.NoError(t, g.SetDirection(core.Undirected))
	b, _ := g.Node("b")
	require.ElementsMatch(t, []string{"a", "c"}, neighborIDs(b),
		"formerly directed a→b regains its target-side adjacency")
	for _, e := range g.Edges() {
		require.False(t, e.Directed())
	}

	require.NoError(t, g.SetDirection(core.Directed))
	for _, e := range g.Edges() {
		require.True(t, e.Directed())
	}
	require.Equal(t, []string{"c"}, neighborIDs(b),
		"b keeps only its source-side entries once everything is directed")
}

func TestSetDirection_ToMixedTouchesNothing(t *testing.T) {
	g := newGraph(t, core.WithDirection(core.Directed))
	addNodes(t, g, "a", "b")
	_, err := g.Connect("a", "b")
	require.NoError(t, err)

	require.NoError(t, g.SetDirection(core.Mixed))
	for _, e := range g.Edges() {
		require.True(t, e.Directed(), "existing flags survive the mode change")
	}
}

func TestMultigraph_ToggleAndNormalize(t *testing.T) {
	g := newGraph(t).SetMultigraph(true)
	addNodes(t, g, "a", "b")

	_, err := g.Connect("a", "b")
	require.NoError(t, err)
	_, err = g.Connect("a", "b")
	require.NoError(t, err)
	_, err = g.Connect("b", "a")
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())

	// Disabling multigraph blocks future connects but keeps the duplicates.
	g.SetMultigraph(false)
	_, err = g.Connect("a", "b")
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
	require.Equal(t, 3, g.EdgeCount())

	// Normalize collapses each pair-key group to one representative.
	g.Normalize()
	require.Equal(t, 2, g.EdgeCount(), "a→b group and b→a group keep one each")

	a, _ := g.Node("a")
	b, _ := g.Node("b")
	require.Len(t, a.Edges(), 2)
	require.Len(t, b.Edges(), 2)
}

func TestGraph_QuerySnapshots(t *testing.T) {
	g := newGraph(t)
	addNodes(t, g, "b", "a")
	_, err := g.Connect("a", "b")
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, g.Nodes(), "sorted IDs")

	nm := g.NodesMap()
	delete(nm, "a")
	require.True(t, g.HasNode("a"), "NodesMap is a snapshot")

	edges := g.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, "a", edges[0].Source().ID())
}

func TestGraph_Clear(t *testing.T) {
	g := newGraph(t, core.WithLoops())
	addNodes(t, g, "a", "b")
	e, err := g.Connect("a", "b")
	require.NoError(t, err)
	a, _ := g.Node("a")

	g.Clear()

	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
	require.Nil(t, a.Graph(), "surviving handles read as detached")
	require.Nil(t, e.Graph())
	require.Empty(t, a.Edges())
	require.True(t, g.Looped(), "policy flags survive Clear")
}
