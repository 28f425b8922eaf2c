// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: Build(recs, opts...). It owns a network.Draft, runs
//     the impl_* readers in a fixed order and freezes the draft.
//   - All-or-nothing: the draft is dropped on the first error, so callers
//     never see a partially linked network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/raildesign/network"
)

// Record is one tokenized input line: its fields in the documented order.
type Record []string

// Records holds the four ordered record streams.
type Records struct {
	Nodes        []Record
	CarBlocks    []Record
	Arcs         []Record
	CrewSegments []Record
}

// reader reads one record stream into the draft.
type reader func(d *network.Draft, res resolver, recs []Record) error

// Build creates the rail network described by recs.
//
// Steps:
//  1. Resolve options.
//  2. Read nodes, car blocks, arcs and crew segments, in that order.
//  3. Freeze the draft.
//
// Errors: ErrFieldCount, ErrBadInteger, *UnknownNodeReferenceError, distance
// codec errors and network draft errors, each wrapped with the record that
// caused it.
//
// Complexity: O(V + E + B + C) over the record counts.
func Build(recs Records, opts ...Option) (*network.Network, error) {
	cfg := newBuilderConfig(opts...)

	d := network.NewDraft()
	res := resolver{lookup: d.Lookup}

	steps := []struct {
		kind string
		read reader
		recs []Record
	}{
		{KindNode, readNodes, recs.Nodes},
		{KindCarBlock, readCarBlocks, recs.CarBlocks},
		{KindArc, readArcs, recs.Arcs},
		{KindCrewSegment, readCrewSegments, recs.CrewSegments},
	}
	for _, st := range steps {
		if err := st.read(d, res, st.recs); err != nil {
			cfg.logger.Error("build aborted", "kind", st.kind, "err", err)
			return nil, err
		}
		cfg.logger.Debug("records read", "kind", st.kind, "count", len(st.recs))
	}

	n, err := d.Freeze()
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}
	cfg.logger.Info("rail network built",
		"nodes", n.NodeCount(),
		"arcs", n.ArcCount(),
		"carBlocks", n.CarBlockCount(),
		"crewSegments", n.CrewSegmentCount(),
	)

	return n, nil
}
