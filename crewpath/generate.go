package crewpath

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/raildesign/allpaths"
	"github.com/katalvlaran/raildesign/distance"
	"github.com/katalvlaran/raildesign/network"
)

// Generate computes the crew segment paths of every crew segment in net.
//
// Steps:
//  1. Search every crew segment (sequentially, or on WithWorkers goroutines).
//  2. Fail with the error of the lowest failing crew segment ID, if any.
//  3. Number the paths: per segment in ID order, per segment in discovery
//     order, forward 2k and reverse 2k+1.
//
// Errors: ErrNilNetwork, or the wrapped allpaths error
// (allpaths.ErrNoPathFound, allpaths.ErrPathLimitExceeded, ...).
func Generate(net *network.Network, opts ...Option) (*PathSet, error) {
	cfg := newConfig(opts...)
	if net == nil {
		return nil, ErrNilNetwork
	}

	segments := net.CrewSegments()
	results := make([]*allpaths.Result, len(segments))
	errs := make([]error, len(segments))

	if cfg.workers == 1 || len(segments) < 2 {
		for i, seg := range segments {
			results[i], errs[i] = allpaths.Search(net, seg, cfg.searchOpts...)
			if errs[i] != nil {
				break
			}
		}
	} else {
		searchParallel(net, segments, cfg, results, errs)
	}

	for i, err := range errs {
		if err != nil {
			cfg.logger.Error("crew path generation failed", "crewSegment", segments[i].ID, "err", err)
			return nil, fmt.Errorf("crewpath: crew segment %d: %w", segments[i].ID, err)
		}
	}

	ps := assemble(net, segments, results)
	for i, seg := range segments {
		cfg.logger.Debug("crew segment paths",
			"crewSegment", seg.ID,
			"home", net.Code(seg.Home),
			"away", net.Code(seg.Away),
			"distance", distance.Format(results[i].Distance),
			"paths", len(results[i].Paths),
		)
	}
	cfg.logger.Info("crew segment paths generated",
		"crewSegments", len(segments),
		"paths", ps.Len(),
		"workers", cfg.workers,
	)

	return ps, nil
}

// searchParallel feeds segment indices through a closed, pre-filled channel
// to cfg.workers goroutines. Each worker writes only its own result slots.
func searchParallel(net *network.Network, segments []network.CrewSegment, cfg config,
	results []*allpaths.Result, errs []error) {
	jobs := make(chan int, len(segments))
	for i := range segments {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = allpaths.Search(net, segments[i], cfg.searchOpts...)
			}
		}()
	}
	wg.Wait()
}

// assemble numbers the paths and builds every reverse path.
func assemble(net *network.Network, segments []network.CrewSegment, results []*allpaths.Result) *PathSet {
	total := 0
	for _, r := range results {
		total += 2 * len(r.Paths)
	}

	ps := &PathSet{
		paths:     make([]CrewSegmentPath, 0, total),
		bySegment: make(map[int][]int, len(segments)),
		distances: make(map[int]int64, len(segments)),
	}
	for i, seg := range segments {
		ps.distances[seg.ID] = results[i].Distance
		for _, arcs := range results[i].Paths {
			id := len(ps.paths)
			ps.paths = append(ps.paths,
				CrewSegmentPath{ID: id, Segment: seg.ID, Arcs: arcs, Reverse: id + 1},
				CrewSegmentPath{ID: id + 1, Segment: seg.ID, Arcs: reverseArcs(net, arcs), Reverse: id},
			)
			ps.bySegment[seg.ID] = append(ps.bySegment[seg.ID], id)
		}
	}

	return ps
}

// reverseArcs maps each arc to its paired reverse and reverses the order.
func reverseArcs(net *network.Network, arcs []int) []int {
	out := make([]int, len(arcs))
	for i, a := range arcs {
		// Arcs come from a search over net, so the lookup cannot miss.
		rev, _ := net.ReverseOf(a)
		out[len(arcs)-1-i] = rev
	}

	return out
}

// PathSet is the arena of generated crew segment paths. It is immutable and
// safe for concurrent readers; every slice it returns is a copy.
type PathSet struct {
	paths     []CrewSegmentPath
	bySegment map[int][]int // crew segment ID → forward path IDs
	distances map[int]int64 // crew segment ID → minimum distance
}

// Len returns the number of paths, reverse paths included.
func (ps *PathSet) Len() int { return len(ps.paths) }

// Path returns the path with the given ID.
func (ps *PathSet) Path(id int) (CrewSegmentPath, error) {
	if id < 0 || id >= len(ps.paths) {
		return CrewSegmentPath{}, fmt.Errorf("%w: id %d", ErrPathNotFound, id)
	}

	return clonePath(ps.paths[id]), nil
}

// Reverse returns the mirror of the path with the given ID.
func (ps *PathSet) Reverse(id int) (CrewSegmentPath, error) {
	p, err := ps.Path(id)
	if err != nil {
		return CrewSegmentPath{}, err
	}

	return ps.Path(p.Reverse)
}

// Paths returns every path, forward and reverse, ordered by ID.
func (ps *PathSet) Paths() []CrewSegmentPath {
	out := make([]CrewSegmentPath, len(ps.paths))
	for i := range ps.paths {
		out[i] = clonePath(ps.paths[i])
	}

	return out
}

// Forward returns the home→away member of every pair, ordered by ID.
func (ps *PathSet) Forward() []CrewSegmentPath {
	out := make([]CrewSegmentPath, 0, len(ps.paths)/2)
	for i := 0; i < len(ps.paths); i += 2 {
		out = append(out, clonePath(ps.paths[i]))
	}

	return out
}

// ForSegment returns the forward paths of crew segment segID, ordered by ID.
func (ps *PathSet) ForSegment(segID int) []CrewSegmentPath {
	ids := ps.bySegment[segID]
	out := make([]CrewSegmentPath, len(ids))
	for i, id := range ids {
		out[i] = clonePath(ps.paths[id])
	}

	return out
}

// Distance returns the minimum distance of crew segment segID and whether
// the segment is part of the set.
func (ps *PathSet) Distance(segID int) (int64, bool) {
	d, ok := ps.distances[segID]

	return d, ok
}

func clonePath(p CrewSegmentPath) CrewSegmentPath {
	p.Arcs = slices.Clone(p.Arcs)

	return p
}
