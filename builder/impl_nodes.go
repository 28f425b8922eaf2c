// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// impl_nodes.go - node stream: code; block swap cost.

package builder

import "github.com/katalvlaran/raildesign/network"

// readNodes declares every node in input order, so IDs follow the input.
func readNodes(d *network.Draft, _ resolver, recs []Record) error {
	for i, rec := range recs {
		if err := validateFieldCount(rec, FieldsNode); err != nil {
			return recordErrorf(KindNode, i, rec, err)
		}
		cost, err := parseInt("block swap cost", rec[1])
		if err != nil {
			return recordErrorf(KindNode, i, rec, err)
		}
		if _, err = d.AddNode(rec[0], cost); err != nil {
			return recordErrorf(KindNode, i, rec, err)
		}
	}

	return nil
}
