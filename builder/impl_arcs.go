// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// impl_arcs.go - arc stream:
// origin; destination; distance; max train length; max tonnage; max # of trains.
//
// Every record allocates an arc and its reverse (network.Draft.AddArcPair).

package builder

import (
	"github.com/katalvlaran/raildesign/distance"
	"github.com/katalvlaran/raildesign/network"
)

func readArcs(d *network.Draft, res resolver, recs []Record) error {
	for i, rec := range recs {
		if err := validateFieldCount(rec, FieldsArc); err != nil {
			return recordErrorf(KindArc, i, rec, err)
		}
		origin, dest, attrs, err := parseArc(res, rec)
		if err != nil {
			return recordErrorf(KindArc, i, rec, err)
		}
		if _, _, err = d.AddArcPair(origin, dest, attrs); err != nil {
			return recordErrorf(KindArc, i, rec, err)
		}
	}

	return nil
}

func parseArc(res resolver, rec Record) (origin, dest int, attrs network.ArcAttributes, err error) {
	if origin, err = res.resolve(KindArc, RoleOrigin, rec, 0); err != nil {
		return
	}
	if dest, err = res.resolve(KindArc, RoleDestination, rec, 1); err != nil {
		return
	}
	if attrs.Distance, err = distance.Parse(rec[2]); err != nil {
		return
	}
	if attrs.MaximumTrainLength, err = parseInt("maximum train length", rec[3]); err != nil {
		return
	}
	if attrs.MaximumTonnage, err = parseInt("maximum tonnage", rec[4]); err != nil {
		return
	}
	attrs.MaximumNumberOfTrains, err = parseInt("maximum number of trains", rec[5])

	return
}
