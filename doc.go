// Package raildesign precomputes the input of a rail train design optimizer:
// the rail network, the crew segment paths and the cost parametrization.
//
// What it does:
//
//	• Builds an index-arena rail network from node, car block, arc and crew
//	  segment records. Every arc is stored together with its reverse.
//	• Finds every tied minimum-distance path between each crew home and away
//	  node, and pairs every path with its exact mirror.
//	• Parses distances as exact fixed-point integers (thousandths of a mile).
//
// Packages:
//
//	distance/          - exact decimal-mile codec (×1000, never truncates)
//	network/           - RailNode, RailArc, CarBlock, CrewSegment arenas
//	builder/           - records → *network.Network, all-or-nothing
//	allpaths/          - all-shortest-paths search, node-to-node distance table
//	crewpath/          - crew segment paths for the whole network, optional workers
//	params/            - optimizer cost and limit settings
//	dataset/           - YAML input document
//	traindesign/       - the full pipeline, one call
//	cmd/traindesign/   - command-line front end
//
// Quick ASCII example:
//
//	    A──1.000──B
//	     \        │
//	    2.000   1.000
//	       \      │
//	        ──────C
//
//	crew segment A→C has two tied paths of 2.000: [A→C] and [A→B→C].
//
//	go install github.com/katalvlaran/raildesign/cmd/traindesign@latest
package raildesign
