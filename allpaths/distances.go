package allpaths

import (
	"fmt"

	"github.com/katalvlaran/raildesign/network"
)

// Unreachable is the distance reported for a node that cannot be reached.
const Unreachable int64 = -1

// Distances returns the minimum distance from origin to every node, indexed
// by node ID. Nodes that cannot be reached get Unreachable.
//
// It runs the Search label loop without tracking paths and without stopping
// early, so tie sets never grow and zero-distance arcs are harmless.
//
// Complexity: O((V + E) log V).
func Distances(net *network.Network, origin int) ([]int64, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if !net.HasNode(origin) {
		return nil, fmt.Errorf("%w: origin %d", ErrNodeNotFound, origin)
	}

	r := newRunner(net, DefaultOptions(), -1, false)
	r.init(origin)
	if _, err := r.process(); err != nil {
		return nil, err
	}

	out := make([]int64, net.NodeCount())
	for id, lb := range r.labels {
		if lb == nil || !lb.visited {
			out[id] = Unreachable
			continue
		}
		out[id] = lb.dist
	}

	return out, nil
}

// DistanceTable holds the minimum distance between every ordered pair of
// nodes. It is immutable and safe for concurrent readers.
type DistanceTable struct {
	n    int
	dist []int64 // row-major: dist[from*n+to]
}

// NewDistanceTable runs Distances from every node of net.
//
// Complexity: O(V (V + E) log V) time, O(V²) memory.
func NewDistanceTable(net *network.Network) (*DistanceTable, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	n := net.NodeCount()
	t := &DistanceTable{n: n, dist: make([]int64, 0, n*n)}
	for from := 0; from < n; from++ {
		row, err := Distances(net, from)
		if err != nil {
			return nil, err
		}
		t.dist = append(t.dist, row...)
	}

	return t, nil
}

// Len returns the number of nodes covered by the table.
func (t *DistanceTable) Len() int { return t.n }

// Distance returns the minimum distance from → to. The boolean is false when
// either ID is out of range or to cannot be reached.
func (t *DistanceTable) Distance(from, to int) (int64, bool) {
	if from < 0 || from >= t.n || to < 0 || to >= t.n {
		return 0, false
	}
	d := t.dist[from*t.n+to]
	if d == Unreachable {
		return 0, false
	}

	return d, true
}

// Row returns a copy of the distances from node from, Unreachable included,
// or nil when from is out of range.
func (t *DistanceTable) Row(from int) []int64 {
	if from < 0 || from >= t.n {
		return nil
	}
	out := make([]int64, t.n)
	copy(out, t.dist[from*t.n:(from+1)*t.n])

	return out
}
