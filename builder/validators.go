// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// validators.go - field-level parsing helpers shared by the impl_* readers.

package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// validateFieldCount ensures rec has exactly want fields.
func validateFieldCount(rec Record, want int) error {
	if len(rec) != want {
		return fmt.Errorf("%w: want %d, got %d", ErrFieldCount, want, len(rec))
	}

	return nil
}

// parseInt parses a decimal integer field; name is used for context only.
func parseInt(name, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadInteger, name, field)
	}

	return v, nil
}

// resolver looks up node codes and reports misses as UnknownNodeReferenceError.
type resolver struct {
	lookup func(code string) (int, bool)
}

// resolve returns the node ID for rec[field].
func (r resolver) resolve(kind, role string, rec Record, field int) (int, error) {
	code := rec[field]
	id, ok := r.lookup(code)
	if !ok {
		return 0, &UnknownNodeReferenceError{Kind: kind, Role: role, Record: rec, Code: code}
	}

	return id, nil
}
