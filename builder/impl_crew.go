// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// impl_crew.go - crew segment stream: home; away.

package builder

import "github.com/katalvlaran/raildesign/network"

func readCrewSegments(d *network.Draft, res resolver, recs []Record) error {
	for i, rec := range recs {
		if err := validateFieldCount(rec, FieldsCrewSegment); err != nil {
			return recordErrorf(KindCrewSegment, i, rec, err)
		}
		home, err := res.resolve(KindCrewSegment, RoleHome, rec, 0)
		if err != nil {
			return recordErrorf(KindCrewSegment, i, rec, err)
		}
		away, err := res.resolve(KindCrewSegment, RoleAway, rec, 1)
		if err != nil {
			return recordErrorf(KindCrewSegment, i, rec, err)
		}
		if _, err = d.AddCrewSegment(home, away); err != nil {
			return recordErrorf(KindCrewSegment, i, rec, err)
		}
	}

	return nil
}
