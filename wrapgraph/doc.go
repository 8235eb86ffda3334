// Package wrapgraph provides the undirected multigraph used to turn chord
// wrap counts into one continuous winding order.
//
// Vertices are pin indices 0..N−1. Every wrap of a chord is one parallel
// edge, so a chord wound k times contributes k edges between its pins.
//
// Pipeline:
//
//	FromWraps          — one edge per wrap, catalog order
//	ConnectComponents  — one bridge edge between consecutive components
//	RepairParity       — pair odd-degree vertices in vertex order
//	Trail              — Hierholzer's algorithm, O(E)
//
// After ConnectComponents and RepairParity every vertex has even degree
// and all edges lie in one component, so Trail returns a closed circuit
// consuming each edge exactly once. Trail also accepts graphs with exactly
// two odd vertices and then returns an open path starting at the first.
//
// Edges are identified by dense integer IDs in insertion order; Edges()
// and all traversals are deterministic.
package wrapgraph
