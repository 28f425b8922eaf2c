// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// errors.go - sentinel and typed errors for the builder package.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX) / errors.As(err, &*UnknownNodeReferenceError).
//   • Lower-level errors (distance codec, network draft) are wrapped with %w
//     and keep their own sentinels reachable.
//   • Build never panics at runtime.

package builder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownNodeReference indicates that a record names a node code that was
// not declared in the node stream.
var ErrUnknownNodeReference = errors.New("builder: unknown node reference")

// ErrFieldCount indicates that a record has the wrong number of fields for
// its kind.
var ErrFieldCount = errors.New("builder: wrong field count")

// ErrBadInteger indicates that an integer field could not be parsed.
var ErrBadInteger = errors.New("builder: bad integer field")

// UnknownNodeReferenceError carries the offending record and code.
type UnknownNodeReferenceError struct {
	Kind   string // KindArc, KindCarBlock or KindCrewSegment
	Role   string // RoleOrigin, RoleDestination, RoleHome or RoleAway
	Record Record
	Code   string
}

func (e *UnknownNodeReferenceError) Error() string {
	return fmt.Sprintf("builder: %s record (%s) has a non existing %s (%s)",
		e.Kind, e.Record, e.Role, e.Code)
}

// Is lets errors.Is(err, ErrUnknownNodeReference) match.
func (e *UnknownNodeReferenceError) Is(target error) bool {
	return target == ErrUnknownNodeReference
}

// String renders the record the way it would appear in a semicolon
// separated input line.
func (r Record) String() string { return strings.Join(r, ";") }

// recordErrorf wraps err with the record kind and index for context.
// It returns an error of the form "builder: <kind> record #<i> (<rec>): <err>".
func recordErrorf(kind string, i int, rec Record, err error) error {
	return fmt.Errorf("builder: %s record #%d (%s): %w", kind, i, rec, err)
}
