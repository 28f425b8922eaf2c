// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// options.go - functional options for Build.
//
// Option constructors validate and panic on meaningless inputs; Build itself
// never panics.

package builder

import "golang.org/x/exp/slog"

// Option customizes Build by mutating a builderConfig before records are read.
type Option func(*builderConfig)

// WithLogger routes build progress to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
