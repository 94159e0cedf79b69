// Package graph is the root of the thorsp module, a single-source
// shortest-paths engine implementing Thorup's algorithm for undirected
// graphs with positive integer weights. The root package holds no code;
// the work is done in its subpackages:
//
//	wgraph/     — adjacency-list weighted graph over vertices 0..n-1
//	unionfind/  — disjoint-set forest (union-by-size, path compression)
//	msbmst/     — msb-minimum spanning trees (Kruskal, Prim, Fredman–Tarjan)
//	ackermann/  — bounded Ackermann table and its inverse
//	findmin/    — split-findmin structure
//	comptree/   — component tree built from the msb-MST
//	unvisited/  — split-findmin bound to the component tree's leaf order
//	thorup/     — the Engine: prepare, query, clean up between queries
//	dimacs/     — DIMACS shortest-path file parser
//	refpath/    — reference Dijkstra (binary heap and Fibonacci heap)
//	randgraph/  — random connected graph generator
//	cmd/thorsp, cmd/thorsp-bench — command-line driver and benchmark
package graph
