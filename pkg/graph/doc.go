/*
Package graph provides a generic directed graph with typed node and edge
values, keyed by opaque identifiers.

Nodes hold values of type N and edges hold values of type E; use
struct{} for E when edges carry no data. Identifiers are generated by
the graph and are unique across all graphs in the process.

	g := graph.New[string, int]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	id, err := g.Connect(a, b, 7)

A Graph is not safe for concurrent use; guard it externally if shared
across goroutines.
*/
package graph
