// Package dataset loads a train design dataset from YAML.
//
// A dataset holds the four record streams consumed by builder.Build and the
// parametrization key/value pairs consumed by params.Parse:
//
//	name: texas
//	nodes:
//	  - [HOU, 150]
//	  - [DAL, 120]
//	carBlocks:
//	  - [K1, HOU, DAL, 20, 1200, 2400, 239.5]
//	arcs:
//	  - [HOU, DAL, 239.5, 8000, 12000, 6]
//	crewSegments:
//	  - [HOU, DAL]
//	parameters:
//	  Cost per work event: 350
//	  ...
//
// Every scalar is kept as the exact source text, so "1.0005" reaches the
// distance codec untouched and is rejected there rather than being rounded
// by a float conversion.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/raildesign/builder"
)

// ErrDecode indicates that the YAML document does not describe a dataset.
var ErrDecode = errors.New("dataset: decode failed")

// Dataset is the decoded YAML document.
type Dataset struct {
	Name         string  `yaml:"name"`
	Nodes        []Row   `yaml:"nodes"`
	CarBlocks    []Row   `yaml:"carBlocks"`
	Arcs         []Row   `yaml:"arcs"`
	CrewSegments []Row   `yaml:"crewSegments"`
	Parameters   Scalars `yaml:"parameters"`
}

// Row is one record: a flow or block sequence of scalars.
type Row []string

// UnmarshalYAML keeps the literal text of every scalar in the sequence.
func (r *Row) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: record must be a sequence", value.Line)
	}
	row := make(Row, 0, len(value.Content))
	for _, n := range value.Content {
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: record field must be a scalar", n.Line)
		}
		row = append(row, n.Value)
	}
	*r = row

	return nil
}

// Scalars is a mapping of scalar keys to scalar values, kept as literal text.
type Scalars map[string]string

// UnmarshalYAML keeps the literal text of every key and value.
func (s *Scalars) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: parameters must be a mapping", value.Line)
	}
	out := make(Scalars, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: parameter must be a scalar pair", k.Line)
		}
		if _, dup := out[k.Value]; dup {
			return fmt.Errorf("line %d: duplicate parameter %q", k.Line, k.Value)
		}
		out[k.Value] = v.Value
	}
	*s = out

	return nil
}

// Load reads and decodes the dataset file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads one YAML document from r. Unknown top-level keys are rejected.
func Decode(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &ds, nil
}

// Records converts the rows into builder record streams.
func (d *Dataset) Records() builder.Records {
	return builder.Records{
		Nodes:        toRecords(d.Nodes),
		CarBlocks:    toRecords(d.CarBlocks),
		Arcs:         toRecords(d.Arcs),
		CrewSegments: toRecords(d.CrewSegments),
	}
}

func toRecords(rows []Row) []builder.Record {
	out := make([]builder.Record, len(rows))
	for i, r := range rows {
		out[i] = builder.Record(r)
	}

	return out
}
