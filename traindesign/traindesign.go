// Package traindesign assembles everything the optimizer needs from one
// input: the rail network, the crew segment paths and the parametrization.
//
// Assemble runs the pipeline in input order: build the network (nodes, car
// blocks, arcs, crew segments), read the parametrization, compute the
// node-to-node shortest distance table, then generate the crew segment
// paths. Any error aborts the whole assembly.
package traindesign

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/raildesign/allpaths"
	"github.com/katalvlaran/raildesign/builder"
	"github.com/katalvlaran/raildesign/crewpath"
	"github.com/katalvlaran/raildesign/dataset"
	"github.com/katalvlaran/raildesign/network"
	"github.com/katalvlaran/raildesign/params"
)

// ErrNilDataset indicates that FromDataset received a nil dataset.
var ErrNilDataset = errors.New("traindesign: dataset is nil")

// TrainDesign is the precomputed input of the optimizer.
type TrainDesign struct {
	Name    string
	Network *network.Network

	// ShortestDistances holds the minimum distance between every pair of
	// rail nodes, used to score car block routing.
	ShortestDistances *allpaths.DistanceTable

	Paths           *crewpath.PathSet
	Parametrization params.TrainDesignParametrization
}

// Option configures Assemble.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	workers   int
	pathLimit int
}

// WithLogger routes progress of every stage to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("traindesign: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithWorkers is passed to crewpath.WithWorkers.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("traindesign: WithWorkers(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// WithPathLimit is passed to crewpath.WithPathLimit.
func WithPathLimit(n int) Option {
	if n <= 0 {
		panic("traindesign: WithPathLimit(n<=0)")
	}
	return func(c *config) { c.pathLimit = n }
}

// Assemble builds the network from recs, parses values and generates the
// crew segment paths.
func Assemble(name string, recs builder.Records, values map[string]string, opts ...Option) (*TrainDesign, error) {
	cfg := config{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: 1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With("design", name)

	// 1) Network.
	net, err := builder.Build(recs, builder.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("traindesign: %w", err)
	}

	// 2) Parametrization.
	p, err := params.Parse(values)
	if err != nil {
		return nil, fmt.Errorf("traindesign: %w", err)
	}

	// 3) Node-to-node shortest distances.
	table, err := allpaths.NewDistanceTable(net)
	if err != nil {
		return nil, fmt.Errorf("traindesign: %w", err)
	}
	log.Debug("shortest distance table built", "nodes", table.Len())

	// 4) Crew segment paths.
	pathOpts := []crewpath.Option{crewpath.WithLogger(log), crewpath.WithWorkers(cfg.workers)}
	if cfg.pathLimit > 0 {
		pathOpts = append(pathOpts, crewpath.WithPathLimit(cfg.pathLimit))
	}
	ps, err := crewpath.Generate(net, pathOpts...)
	if err != nil {
		return nil, fmt.Errorf("traindesign: %w", err)
	}

	log.Info(fmt.Sprintf("train design with %d rail nodes, %d rail arcs, %d car blocks, %d train crews",
		net.NodeCount(), net.ArcCount(), net.CarBlockCount(), net.CrewSegmentCount()))

	return &TrainDesign{
		Name:              name,
		Network:           net,
		ShortestDistances: table,
		Paths:             ps,
		Parametrization:   p,
	}, nil
}

// FromDataset assembles a decoded dataset.
func FromDataset(ds *dataset.Dataset, opts ...Option) (*TrainDesign, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	return Assemble(ds.Name, ds.Records(), ds.Parameters, opts...)
}
