// Package network holds the rail network model: rail nodes, bidirectional
// rail arc pairs, car blocks and crew segments.
//
// The model is an index arena. Every entity is stored in a slice owned by
// the Network and refers to its peers by integer index, so the mutual
// arc/reverse-arc links carry no ownership cycles and pairing lookups are
// O(1). The identity of an entity is its index in the arena.
//
// Lifecycle:
//
//	d := network.NewDraft()
//	a, _ := d.AddNode("A", 0)
//	b, _ := d.AddNode("B", 0)
//	fwd, rev, _ := d.AddArcPair(a, b, network.ArcAttributes{Distance: 1000})
//	n, _ := d.Freeze()
//
// A Draft is the only mutable form. Freeze builds the per-node lists of
// originating arcs once all arcs are allocated and returns the immutable
// Network. After Freeze the Draft rejects every call with ErrFrozen.
//
// Invariants of a frozen Network:
//
//   - Node IDs are 0..NodeCount()-1 in declaration order; codes are unique.
//   - Arcs come in pairs: forward 2k, reverse 2k+1. For every arc a,
//     Arc(a.Reverse).Reverse == a.ID, origin and destination are swapped,
//     and distance and capacity attributes are equal.
//   - A node's originating arcs are listed in allocation order.
//   - Distances and capacities are non-negative.
//
// Concurrency:
//
//   - A Draft is not safe for concurrent use.
//   - A Network is read-only and safe for concurrent readers. Every slice it
//     returns is a copy.
package network
