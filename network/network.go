package network

import (
	"fmt"
	"math"
	"slices"
)

// Network is the immutable rail network produced by Draft.Freeze.
type Network struct {
	nodes        []RailNode
	arcs         []RailArc
	carBlocks    []CarBlock
	crewSegments []CrewSegment
	codeIndex    map[string]int
}

// NodeCount returns the number of rail nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// ArcCount returns the number of rail arcs, reverse arcs included.
func (n *Network) ArcCount() int { return len(n.arcs) }

// CarBlockCount returns the number of car blocks.
func (n *Network) CarBlockCount() int { return len(n.carBlocks) }

// CrewSegmentCount returns the number of crew segments.
func (n *Network) CrewSegmentCount() int { return len(n.crewSegments) }

// HasNode reports whether id is a valid node ID.
func (n *Network) HasNode(id int) bool { return id >= 0 && id < len(n.nodes) }

// Node returns a copy of the node with the given ID.
func (n *Network) Node(id int) (RailNode, error) {
	if !n.HasNode(id) {
		return RailNode{}, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return cloneNode(n.nodes[id]), nil
}

// NodeByCode returns a copy of the node with the given code.
func (n *Network) NodeByCode(code string) (RailNode, error) {
	id, ok := n.codeIndex[code]
	if !ok {
		return RailNode{}, fmt.Errorf("%w: code %q", ErrNodeNotFound, code)
	}

	return cloneNode(n.nodes[id]), nil
}

// Code returns the code of node id, or "" when id is out of range.
func (n *Network) Code(id int) string {
	if !n.HasNode(id) {
		return ""
	}

	return n.nodes[id].Code
}

// Arc returns the arc with the given ID.
func (n *Network) Arc(id int) (RailArc, error) {
	if id < 0 || id >= len(n.arcs) {
		return RailArc{}, fmt.Errorf("%w: id %d", ErrArcNotFound, id)
	}

	return n.arcs[id], nil
}

// ReverseOf returns the ID of the reverse of arc id.
func (n *Network) ReverseOf(id int) (int, error) {
	if id < 0 || id >= len(n.arcs) {
		return 0, fmt.Errorf("%w: id %d", ErrArcNotFound, id)
	}

	return n.arcs[id].Reverse, nil
}

// OriginatingArcs returns a copy of the IDs of the arcs leaving node id.
func (n *Network) OriginatingArcs(id int) ([]int, error) {
	if !n.HasNode(id) {
		return nil, fmt.Errorf("%w: id %d", ErrNodeNotFound, id)
	}

	return slices.Clone(n.nodes[id].Originating), nil
}

// ForOriginatingArcs calls fn for every arc leaving node id, in allocation
// order, without copying. Out-of-range IDs visit nothing.
func (n *Network) ForOriginatingArcs(id int, fn func(arc RailArc)) {
	if !n.HasNode(id) {
		return
	}
	for _, a := range n.nodes[id].Originating {
		fn(n.arcs[a])
	}
}

// Nodes returns a copy of all nodes ordered by ID.
func (n *Network) Nodes() []RailNode {
	out := make([]RailNode, len(n.nodes))
	for i := range n.nodes {
		out[i] = cloneNode(n.nodes[i])
	}

	return out
}

// Arcs returns a copy of all arcs ordered by ID.
func (n *Network) Arcs() []RailArc { return slices.Clone(n.arcs) }

// CarBlocks returns a copy of all car blocks ordered by ID.
func (n *Network) CarBlocks() []CarBlock { return slices.Clone(n.carBlocks) }

// CrewSegments returns a copy of all crew segments ordered by ID.
func (n *Network) CrewSegments() []CrewSegment { return slices.Clone(n.crewSegments) }

// CrewSegment returns the crew segment with the given ID.
func (n *Network) CrewSegment(id int) (CrewSegment, error) {
	if id < 0 || id >= len(n.crewSegments) {
		return CrewSegment{}, fmt.Errorf("%w: id %d", ErrCrewSegmentNotFound, id)
	}

	return n.crewSegments[id], nil
}

// PathDistance sums the distances of the given arcs.
//
// Errors: ErrArcNotFound, ErrDistanceOverflow.
func (n *Network) PathDistance(arcs []int) (int64, error) {
	var total int64
	for _, a := range arcs {
		arc, err := n.Arc(a)
		if err != nil {
			return 0, err
		}
		if arc.Distance > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: at arc %d", ErrDistanceOverflow, a)
		}
		total += arc.Distance
	}

	return total, nil
}

// IsContiguous reports whether arcs form a walk from node from to node to:
// the first arc leaves from, each arc starts where the previous one ended,
// and the last arc ends at to. An empty sequence is contiguous iff from == to.
func (n *Network) IsContiguous(arcs []int, from, to int) bool {
	at := from
	for _, a := range arcs {
		if a < 0 || a >= len(n.arcs) || n.arcs[a].Origin != at {
			return false
		}
		at = n.arcs[a].Destination
	}

	return at == to
}

// cloneNode copies v including its Originating slice.
func cloneNode(v RailNode) RailNode {
	v.Originating = slices.Clone(v.Originating)

	return v
}
