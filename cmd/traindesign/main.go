// Command traindesign loads a YAML dataset, builds the rail network,
// precomputes every crew segment path and prints the result.
//
// Usage:
//
//	traindesign -input data/network.yaml [-log-level info] [-workers 4] [-path-limit 0]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/raildesign/dataset"
	"github.com/katalvlaran/raildesign/distance"
	"github.com/katalvlaran/raildesign/internal/logging"
	"github.com/katalvlaran/raildesign/traindesign"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "traindesign:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("traindesign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "path of the YAML dataset")
	levelName := fs.String("log-level", "info", "debug, info, warn or error")
	workers := fs.Int("workers", runtime.NumCPU(), "concurrent crew segment searches")
	pathLimit := fs.Int("path-limit", 0, "maximum tied paths per node, 0 for no limit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("missing -input")
	}
	if *workers < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", *workers)
	}
	if *pathLimit < 0 {
		return fmt.Errorf("-path-limit must not be negative, got %d", *pathLimit)
	}

	level, err := logging.ParseLevel(*levelName)
	if err != nil {
		return err
	}
	log := slog.New(logging.NewHandler(stderr, &slog.HandlerOptions{Level: level}))

	ds, err := dataset.Load(*input)
	if err != nil {
		return err
	}

	opts := []traindesign.Option{traindesign.WithLogger(log), traindesign.WithWorkers(*workers)}
	if *pathLimit > 0 {
		opts = append(opts, traindesign.WithPathLimit(*pathLimit))
	}
	td, err := traindesign.FromDataset(ds, opts...)
	if err != nil {
		return err
	}

	return printPaths(stdout, td)
}

// printPaths writes one line per forward crew segment path:
//
//	<segment> <home>-<...>-<away> <distance>
func printPaths(w io.Writer, td *traindesign.TrainDesign) error {
	net := td.Network
	for _, p := range td.Paths.Forward() {
		seg, err := net.CrewSegment(p.Segment)
		if err != nil {
			return err
		}
		codes := []string{net.Code(seg.Home)}
		for _, id := range p.Arcs {
			arc, err := net.Arc(id)
			if err != nil {
				return err
			}
			codes = append(codes, net.Code(arc.Destination))
		}
		d, err := net.PathDistance(p.Arcs)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%d %s %s\n", p.Segment, strings.Join(codes, "-"), distance.Format(d)); err != nil {
			return err
		}
	}
	return nil
}
