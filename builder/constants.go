// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// constants.go - record layouts and context tokens for error messages.

package builder

// Field counts per record kind.
const (
	FieldsNode        = 2
	FieldsCarBlock    = 7
	FieldsArc         = 6
	FieldsCrewSegment = 2
)

// Record kinds, used to prefix errors with the stream a record came from.
const (
	KindNode        = "node"
	KindCarBlock    = "car block"
	KindArc         = "arc"
	KindCrewSegment = "crew segment"
)

// Roles of node-reference fields.
const (
	RoleOrigin      = "origin"
	RoleDestination = "destination"
	RoleHome        = "crew home"
	RoleAway        = "crew away"
)
