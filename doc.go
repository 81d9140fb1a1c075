// Package citegraph computes topological orderings of small dependency
// graphs, built for citation analysis of research-paper collections.
//
// A Graph holds a dense set of nodes indexed 0..N-1 and directed edges
// between them. Sort produces a linear order in which every edge (u,v)
// has u before v, or an *ErrCycle when no such order exists. The
// ordering is fully deterministic, making it suitable for generated
// reports that must not churn between runs.
//
// The citations subpackage carries the paper dataset this library was
// written for, and the report subpackage renders orderings into
// reading schedules, dependency analyses, and timing summaries.
package citegraph
