package allpaths

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/raildesign/network"
)

// infinity marks a discovered node that has not been reached yet.
const infinity = math.MaxInt64

// Search computes every minimum-distance path from seg.Home to seg.Away.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. seg.Home and seg.Away must be nodes of net (ErrNodeNotFound).
//
// Returns a *NoPathFoundError when the endpoints are not connected.
func Search(net *network.Network, seg network.CrewSegment, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if net == nil {
		return nil, ErrNilNetwork
	}
	if !net.HasNode(seg.Home) {
		return nil, fmt.Errorf("%w: home %d", ErrNodeNotFound, seg.Home)
	}
	if !net.HasNode(seg.Away) {
		return nil, fmt.Errorf("%w: away %d", ErrNodeNotFound, seg.Away)
	}

	r := newRunner(net, cfg, seg.Away, true)
	r.init(seg.Home)

	found, err := r.process()
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, &NoPathFoundError{
			Segment:  seg,
			HomeCode: net.Code(seg.Home),
			AwayCode: net.Code(seg.Away),
		}
	}

	return &Result{Segment: seg, Distance: found.dist, Paths: found.paths}, nil
}

// label is the per-run search state of one discovered node.
type label struct {
	node    int
	dist    int64
	visited bool
	paths   [][]int // arc sequences achieving dist
	index   int     // position in the frontier, -1 once popped
}

// runner holds the mutable state for a single Search or Distances execution.
type runner struct {
	net        *network.Network
	options    Options
	away       int      // -1 runs until the frontier is empty
	trackPaths bool     // false keeps distances only
	labels     []*label // by node ID; nil means undiscovered
	pq         frontier
}

func newRunner(net *network.Network, options Options, away int, trackPaths bool) *runner {
	return &runner{
		net:        net,
		options:    options,
		away:       away,
		trackPaths: trackPaths,
		labels:     make([]*label, net.NodeCount()),
		pq:         make(frontier, 0, net.NodeCount()),
	}
}

// init seeds the frontier with the home node at distance 0 and, when paths
// are tracked, a single empty path.
func (r *runner) init(home int) {
	start := &label{node: home, dist: 0}
	if r.trackPaths {
		start.paths = [][]int{{}}
	}
	r.labels[home] = start
	heap.Push(&r.pq, start)
}

// process pops labels in (distance, tied paths, node ID) order until the
// away node is popped or the frontier runs dry. A nil label with a nil
// error means the away node is unreachable.
func (r *runner) process() (*label, error) {
	for r.pq.Len() > 0 {
		cur := heap.Pop(&r.pq).(*label)
		if cur.visited {
			return nil, fmt.Errorf("%w: node %d popped twice", ErrVisitedRelaxation, cur.node)
		}
		cur.visited = true

		if cur.node == r.away {
			return cur, nil
		}

		if err := r.relax(cur); err != nil {
			return nil, err
		}
	}

	return nil, nil
}

// relax offers every arc leaving cur to its destination.
func (r *runner) relax(cur *label) error {
	var err error
	r.net.ForOriginatingArcs(cur.node, func(arc network.RailArc) {
		if err != nil {
			return
		}
		err = r.relaxArc(cur, arc)
	})

	return err
}

func (r *runner) relaxArc(cur *label, arc network.RailArc) error {
	// Candidate beyond int64 cannot beat any label.
	if arc.Distance > infinity-cur.dist {
		return nil
	}
	next := cur.dist + arc.Distance

	// 1) Discover the destination.
	lb := r.labels[arc.Destination]
	if lb == nil {
		lb = &label{node: arc.Destination, dist: infinity}
		r.labels[arc.Destination] = lb
		heap.Push(&r.pq, lb)
	}

	if next > lb.dist {
		return nil
	}
	if lb.visited && !r.trackPaths {
		// Non-negative distances: a visited label is already minimal.
		return nil
	}
	if lb.visited {
		return fmt.Errorf("%w: arc %d reaches node %d at %d, label already final at %d",
			ErrVisitedRelaxation, arc.ID, lb.node, next, lb.dist)
	}

	// 2) A strictly shorter route invalidates every tie recorded so far.
	if next < lb.dist {
		lb.dist = next
		lb.paths = nil
	}

	if !r.trackPaths {
		heap.Fix(&r.pq, lb.index)
		return nil
	}

	// 3) Extend each of cur's paths by the arc.
	for _, p := range cur.paths {
		ext := make([]int, len(p)+1)
		copy(ext, p)
		ext[len(p)] = arc.ID
		lb.paths = append(lb.paths, ext)
	}
	if r.options.PathLimit > 0 && len(lb.paths) > r.options.PathLimit {
		return fmt.Errorf("%w: node %d holds %d paths, limit %d",
			ErrPathLimitExceeded, lb.node, len(lb.paths), r.options.PathLimit)
	}

	// 4) Distance and path count are both part of the key.
	heap.Fix(&r.pq, lb.index)

	return nil
}

// frontier is a min-heap of unvisited labels ordered by
// (dist, len(paths), node). Labels are updated in place and re-sifted with
// heap.Fix, so every node appears at most once.
type frontier []*label

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if len(a.paths) != len(b.paths) {
		return len(a.paths) < len(b.paths)
	}

	return a.node < b.node
}

func (pq frontier) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *frontier) Push(x interface{}) {
	lb := x.(*label)
	lb.index = len(*pq)
	*pq = append(*pq, lb)
}

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	lb := old[n-1]
	old[n-1] = nil
	lb.index = -1
	*pq = old[:n-1]

	return lb
}
