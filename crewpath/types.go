package crewpath

import (
	"errors"
	"io"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/raildesign/allpaths"
)

// Sentinel errors for crew path generation.
var (
	// ErrNilNetwork indicates that Generate received a nil network.
	ErrNilNetwork = errors.New("crewpath: network is nil")

	// ErrPathNotFound indicates a PathSet lookup outside the set.
	ErrPathNotFound = errors.New("crewpath: path not found")
)

// CrewSegmentPath is one concrete minimum-distance route of a crew segment.
type CrewSegmentPath struct {
	// ID is the path's index in its PathSet.
	ID int

	// Segment is the ID of the crew segment this path serves.
	Segment int

	// Arcs is the contiguous arc sequence, home→away for forward paths and
	// away→home for reverse paths.
	Arcs []int

	// Reverse is the ID of the mirror path.
	Reverse int
}

// IsForward reports whether p is the home→away member of its pair.
func (p CrewSegmentPath) IsForward() bool { return p.ID%2 == 0 }

// Option configures Generate.
type Option func(*config)

type config struct {
	workers    int
	logger     *slog.Logger
	searchOpts []allpaths.Option
}

func newConfig(opts ...Option) config {
	cfg := config{
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWorkers runs the per-segment searches on n goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("crewpath: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger routes generation progress to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("crewpath: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithPathLimit forwards allpaths.WithPathLimit(n) to every search.
// Panics if n ≤ 0.
func WithPathLimit(n int) Option {
	o := allpaths.WithPathLimit(n)
	return func(c *config) {
		c.searchOpts = append(c.searchOpts, o)
	}
}
