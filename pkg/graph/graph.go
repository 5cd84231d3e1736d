package graph

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownNode is returned when an operation references a node that
// does not exist in the graph.
var ErrUnknownNode = errors.New("graph: unknown node")

// NodeID is an opaque identifier for a node.
type NodeID string

// EdgeID is an opaque identifier for an edge.
type EdgeID string

// Edge is a directed connection between two nodes carrying a value.
type Edge[E any] struct {
	ID    EdgeID
	From  NodeID
	To    NodeID
	Value E
}

// Graph is a directed graph with node values of type N and edge values
// of type E.
type Graph[N, E any] struct {
	nodes map[NodeID]N
	edges map[EdgeID]Edge[E]

	// outgoing adjacency, in insertion order per node
	adjacency map[NodeID][]EdgeID
}

// New creates an empty graph.
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{
		nodes:     make(map[NodeID]N),
		edges:     make(map[EdgeID]Edge[E]),
		adjacency: make(map[NodeID][]EdgeID),
	}
}

// AddNode inserts a node holding value and returns its identifier.
func (g *Graph[N, E]) AddNode(value N) NodeID {
	id := NodeID(uuid.NewString())
	g.nodes[id] = value
	return id
}

// Connect creates a directed edge from one node to another carrying
// value. It fails with ErrUnknownNode if either endpoint does not
// exist.
func (g *Graph[N, E]) Connect(from, to NodeID, value E) (EdgeID, error) {
	if _, ok := g.nodes[from]; !ok {
		return "", fmt.Errorf("connect %s -> %s: %w", from, to, ErrUnknownNode)
	}
	if _, ok := g.nodes[to]; !ok {
		return "", fmt.Errorf("connect %s -> %s: %w", from, to, ErrUnknownNode)
	}

	id := EdgeID(uuid.NewString())
	g.edges[id] = Edge[E]{ID: id, From: from, To: to, Value: value}
	g.adjacency[from] = append(g.adjacency[from], id)
	return id, nil
}

// Node returns the value held by the node with the given identifier.
// It reports false if the node does not exist.
func (g *Graph[N, E]) Node(id NodeID) (N, bool) {
	value, ok := g.nodes[id]
	return value, ok
}

// Edge returns the edge with the given identifier.
// It reports false if the edge does not exist.
func (g *Graph[N, E]) Edge(id EdgeID) (Edge[E], bool) {
	edge, ok := g.edges[id]
	return edge, ok
}

// Neighbors returns the targets of the node's outgoing edges, in the
// order the edges were created. The result is nil for an unknown node
// or a node with no outgoing edges.
func (g *Graph[N, E]) Neighbors(id NodeID) []NodeID {
	edgeIDs := g.adjacency[id]
	if len(edgeIDs) == 0 {
		return nil
	}
	out := make([]NodeID, 0, len(edgeIDs))
	for _, eid := range edgeIDs {
		out = append(out, g.edges[eid].To)
	}
	return out
}

// Outgoing returns the node's outgoing edges in creation order.
func (g *Graph[N, E]) Outgoing(id NodeID) []Edge[E] {
	edgeIDs := g.adjacency[id]
	if len(edgeIDs) == 0 {
		return nil
	}
	out := make([]Edge[E], 0, len(edgeIDs))
	for _, eid := range edgeIDs {
		out = append(out, g.edges[eid])
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[N, E]) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph[N, E]) EdgeCount() int {
	return len(g.edges)
}
