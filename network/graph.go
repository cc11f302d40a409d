package network

import "fmt"

// NewGraph validates nodes and edges and builds an immutable Graph.
//
// Steps:
//  1. Apply options.
//  2. Assign index i to nodes[i]; reject empty or duplicate IDs.
//  3. Resolve each edge's endpoints; reject unknown IDs and negative weights.
//  4. Derive adjacency (two arcs per undirected edge, one per directed edge).
//     A self-loop contributes a single arc.
//
// The input slices are copied; later changes by the caller do not leak in.
//
// Complexity: O(V + E) time and memory.
func NewGraph(nodes []Node, edges []Edge, opts ...Option) (*Graph, error) {
	g := &Graph{
		nodes: make([]Node, len(nodes)),
		index: make(map[string]int, len(nodes)),
		edges: make([]Edge, len(edges)),
		ends:  make([][2]int, len(edges)),
		adj:   make([][]Arc, len(nodes)),
	}
	for _, opt := range opts {
		opt(g)
	}

	copy(g.nodes, nodes)
	for i, n := range g.nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: node %d", ErrEmptyNodeID, i)
		}
		if _, dup := g.index[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
		}
		g.index[n.ID] = i
	}

	copy(g.edges, edges)
	for i, e := range g.edges {
		u, ok := g.index[e.U]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d endpoint %q", ErrUnknownNode, i, e.U)
		}
		v, ok := g.index[e.V]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d endpoint %q", ErrUnknownNode, i, e.V)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.U, e.V, e.Weight)
		}

		g.ends[i] = [2]int{u, v}
		g.adj[u] = append(g.adj[u], Arc{To: v, Weight: e.Weight, Edge: i})
		if !g.directed && u != v {
			g.adj[v] = append(g.adj[v], Arc{To: u, Weight: e.Weight, Edge: i})
		}
	}

	return g, nil
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node at index i. It panics if i is out of range.
func (g *Graph) Node(i int) Node { return g.nodes[i] }

// ID returns the ID of the node at index i.
func (g *Graph) ID(i int) string { return g.nodes[i].ID }

// Index returns the index assigned to id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// Has reports whether id names a node of g.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]

	return ok
}

// Nodes returns a copy of the nodes in index order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edges in input order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Edge returns the edge at position i together with its endpoint indices.
func (g *Graph) Edge(i int) (Edge, int, int) {
	return g.edges[i], g.ends[i][0], g.ends[i][1]
}

// Arcs returns the outgoing arcs of node i in edge input order.
// The returned slice is shared with g and must not be modified.
func (g *Graph) Arcs(i int) []Arc { return g.adj[i] }
