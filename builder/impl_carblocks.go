// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// impl_carblocks.go - car block stream:
// code; origin; destination; # of cars; length; tonnage; shortest distance.

package builder

import (
	"github.com/katalvlaran/raildesign/distance"
	"github.com/katalvlaran/raildesign/network"
)

func readCarBlocks(d *network.Draft, res resolver, recs []Record) error {
	for i, rec := range recs {
		if err := validateFieldCount(rec, FieldsCarBlock); err != nil {
			return recordErrorf(KindCarBlock, i, rec, err)
		}
		cb, err := parseCarBlock(res, rec)
		if err != nil {
			return recordErrorf(KindCarBlock, i, rec, err)
		}
		if _, err = d.AddCarBlock(cb); err != nil {
			return recordErrorf(KindCarBlock, i, rec, err)
		}
	}

	return nil
}

func parseCarBlock(res resolver, rec Record) (network.CarBlock, error) {
	var (
		cb  = network.CarBlock{Code: rec[0]}
		err error
	)
	if cb.Origin, err = res.resolve(KindCarBlock, RoleOrigin, rec, 1); err != nil {
		return cb, err
	}
	if cb.Destination, err = res.resolve(KindCarBlock, RoleDestination, rec, 2); err != nil {
		return cb, err
	}
	if cb.NumberOfCars, err = parseInt("number of cars", rec[3]); err != nil {
		return cb, err
	}
	if cb.Length, err = parseInt("length", rec[4]); err != nil {
		return cb, err
	}
	if cb.Tonnage, err = parseInt("tonnage", rec[5]); err != nil {
		return cb, err
	}
	if cb.ShortestDistance, err = distance.Parse(rec[6]); err != nil {
		return cb, err
	}

	return cb, nil
}
