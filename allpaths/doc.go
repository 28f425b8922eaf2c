// Package allpaths computes, for one crew segment, every minimum-distance
// path from the home node to the away node of a rail network.
//
// Overview:
//
//   - A Dijkstra variant that keeps, per node, the whole set of arc sequences
//     achieving the best known distance instead of a single predecessor.
//   - The frontier is a min-heap keyed by (distance, number of tied paths,
//     node ID). The node ID component makes the order total, so the paths
//     come out in the same order on every run.
//   - The search stops as soon as the away node is taken off the frontier.
//
// Relaxation of arc u→v with candidate distance c = dist(u) + arc.Distance:
//
//   - c <  dist(v): the tied set of v is discarded and dist(v) = c.
//   - c <= dist(v): every path of u, extended by the arc, joins v's set.
//   - c >  dist(v): nothing happens.
//
// A node that already left the frontier must never be relaxed again. With
// non-negative distances and a correct frontier order this cannot happen;
// if it does, Search returns ErrVisitedRelaxation instead of a silently wrong
// path set. A zero-distance arc leading back to a visited node at the same
// distance trips this check.
//
// Distances and NewDistanceTable run the same label loop without paths and
// without the early stop, giving the minimum distance from one node (or every
// node) to all others. Unreachable nodes report Unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap work plus the cost of copying paths, which
//     grows with the number of tied paths P and their length L: O(E·P·L).
//   - Space: O(V·P·L) for the per-node path sets.
//
// Errors (sentinel):
//
//   - ErrNilNetwork         the network pointer is nil.
//   - ErrNodeNotFound       home or away is not a node of the network.
//   - ErrNoPathFound        home and away are not connected
//     (returned as *NoPathFoundError).
//   - ErrVisitedRelaxation  internal invariant violated.
//   - ErrPathLimitExceeded  a node collected more tied paths than WithPathLimit allows.
//
// Thread safety:
//
//   - Search only reads the network; every call owns its labels and heap, so
//     concurrent searches over the same *network.Network are safe.
package allpaths
