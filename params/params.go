// Package params reads the train design parametrization: the flat cost and
// limit settings handed unchanged to the optimizer.
//
// The settings arrive as key/value pairs keyed by the labels of the input
// file (see the Key constants). Integer settings are parsed as decimal
// integers; the two per-mile costs go through the distance codec and are
// therefore expressed per thousandth of a mile.
package params

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/raildesign/distance"
)

// Sentinel errors for parametrization parsing.
var (
	// ErrMissingParameter indicates that a required key is absent.
	ErrMissingParameter = errors.New("params: missing parameter")

	// ErrUnknownParameter indicates a key that is not a known setting.
	ErrUnknownParameter = errors.New("params: unknown parameter")

	// ErrBadValue indicates a value that could not be parsed.
	ErrBadValue = errors.New("params: bad value")
)

// Keys of the parametrization, as labelled in the input.
const (
	KeyCrewImbalancePenalty                  = "Crew Imbalance Penalty per imbalance"
	KeyTrainImbalancePenalty                 = "Train Imbalance Penalty per imbalance"
	KeyTrainTravelCostPerDistance            = "Train travel cost per mile"
	KeyCarTravelCostPerDistance              = "Car travel cost per mile"
	KeyWorkEventCost                         = "Cost per work event"
	KeyMaximumBlocksPerTrain                 = "Maximum Blocks per train"
	KeyMaximumBlockSwapsPerBlock             = "Maximum Block swaps per block"
	KeyMaximumIntermediateWorkEventsPerTrain = "Maximum intermediate work events per train"
	KeyTrainStartCost                        = "Train start Cost"
	KeyMissedCarCost                         = "Missed cost per railcar"
)

// TrainDesignParametrization holds the optimizer's cost and limit settings.
type TrainDesignParametrization struct {
	CrewImbalancePenalty  int
	TrainImbalancePenalty int

	// Per-mile costs scaled by distance.Multiplicand.
	TrainTravelCostPerDistance int64
	CarTravelCostPerDistance   int64

	WorkEventCost                         int
	MaximumBlocksPerTrain                 int
	MaximumBlockSwapsPerBlock             int
	MaximumIntermediateWorkEventsPerTrain int
	TrainStartCost                        int
	MissedCarCost                         int
}

// field binds a key to its destination and parser.
type field struct {
	key   string
	parse func(p *TrainDesignParametrization, v string) error
}

func intField(key string, dst func(p *TrainDesignParametrization) *int) field {
	return field{key: key, parse: func(p *TrainDesignParametrization, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %q = %q", ErrBadValue, key, v)
		}
		*dst(p) = n
		return nil
	}}
}

func distanceField(key string, dst func(p *TrainDesignParametrization) *int64) field {
	return field{key: key, parse: func(p *TrainDesignParametrization, v string) error {
		d, err := distance.Parse(v)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrBadValue, key, err)
		}
		*dst(p) = d
		return nil
	}}
}

// fields lists every setting in input order.
var fields = []field{
	intField(KeyCrewImbalancePenalty, func(p *TrainDesignParametrization) *int { return &p.CrewImbalancePenalty }),
	intField(KeyTrainImbalancePenalty, func(p *TrainDesignParametrization) *int { return &p.TrainImbalancePenalty }),
	distanceField(KeyTrainTravelCostPerDistance, func(p *TrainDesignParametrization) *int64 { return &p.TrainTravelCostPerDistance }),
	distanceField(KeyCarTravelCostPerDistance, func(p *TrainDesignParametrization) *int64 { return &p.CarTravelCostPerDistance }),
	intField(KeyWorkEventCost, func(p *TrainDesignParametrization) *int { return &p.WorkEventCost }),
	intField(KeyMaximumBlocksPerTrain, func(p *TrainDesignParametrization) *int { return &p.MaximumBlocksPerTrain }),
	intField(KeyMaximumBlockSwapsPerBlock, func(p *TrainDesignParametrization) *int { return &p.MaximumBlockSwapsPerBlock }),
	intField(KeyMaximumIntermediateWorkEventsPerTrain, func(p *TrainDesignParametrization) *int { return &p.MaximumIntermediateWorkEventsPerTrain }),
	intField(KeyTrainStartCost, func(p *TrainDesignParametrization) *int { return &p.TrainStartCost }),
	intField(KeyMissedCarCost, func(p *TrainDesignParametrization) *int { return &p.MissedCarCost }),
}

// Keys returns every recognised key in input order.
func Keys() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.key
	}

	return out
}

// Parse builds a parametrization from key/value pairs. Every key of Keys
// must be present and no other key is allowed. Errors are reported for the
// first offending key in input order (unknown keys in lexical order).
func Parse(values map[string]string) (TrainDesignParametrization, error) {
	var p TrainDesignParametrization

	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.key] = true
		v, ok := values[f.key]
		if !ok {
			return TrainDesignParametrization{}, fmt.Errorf("%w: %q", ErrMissingParameter, f.key)
		}
		if err := f.parse(&p, v); err != nil {
			return TrainDesignParametrization{}, err
		}
	}

	var unknown []string
	for k := range values {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return TrainDesignParametrization{}, fmt.Errorf("%w: %q", ErrUnknownParameter, unknown[0])
	}

	return p, nil
}
