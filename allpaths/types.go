package allpaths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/raildesign/network"
)

// Sentinel errors returned by Search.
var (
	// ErrNilNetwork indicates that a nil *network.Network was passed to Search.
	ErrNilNetwork = errors.New("allpaths: network is nil")

	// ErrNodeNotFound indicates that the crew segment names a node outside the network.
	ErrNodeNotFound = errors.New("allpaths: node not found in network")

	// ErrNoPathFound indicates that the away node is unreachable from the home node.
	ErrNoPathFound = errors.New("allpaths: no path found")

	// ErrVisitedRelaxation indicates that a visited node was about to be
	// relaxed again. This is a defect, not an input problem.
	ErrVisitedRelaxation = errors.New("allpaths: visited node relaxed")

	// ErrPathLimitExceeded indicates that the tied path set of a node grew
	// beyond the configured limit.
	ErrPathLimitExceeded = errors.New("allpaths: tied path limit exceeded")

	// ErrBadPathLimit indicates that WithPathLimit received a value ≤ 0.
	ErrBadPathLimit = errors.New("allpaths: path limit must be positive")
)

// NoPathFoundError names the crew segment whose endpoints are not connected.
type NoPathFoundError struct {
	Segment  network.CrewSegment
	HomeCode string
	AwayCode string
}

func (e *NoPathFoundError) Error() string {
	return fmt.Sprintf("allpaths: the crew segment (%d: %s→%s) has no valid rail path",
		e.Segment.ID, e.HomeCode, e.AwayCode)
}

// Is lets errors.Is(err, ErrNoPathFound) match.
func (e *NoPathFoundError) Is(target error) bool { return target == ErrNoPathFound }

// Result is the outcome of a Search.
type Result struct {
	// Segment is the crew segment that was searched.
	Segment network.CrewSegment

	// Distance is the minimum home→away distance in thousandths of a mile.
	Distance int64

	// Paths holds every arc sequence of length Distance, in discovery order.
	// When home == away it holds exactly one empty path.
	Paths [][]int
}

// Options configures Search.
//
// PathLimit - maximum number of tied paths any single node may collect.
//
//	0 means unlimited (the default).
type Options struct {
	PathLimit int
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithPathLimit caps the number of tied paths per node. Tied path sets can
// grow exponentially on grid-like networks; the cap turns that into
// ErrPathLimitExceeded. Panics if n ≤ 0.
func WithPathLimit(n int) Option {
	if n <= 0 {
		panic(ErrBadPathLimit.Error())
	}
	return func(o *Options) {
		o.PathLimit = n
	}
}

// DefaultOptions returns the defaults: no path limit.
func DefaultOptions() Options {
	return Options{}
}
