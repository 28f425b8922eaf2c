// SPDX-License-Identifier: MIT
// Package: raildesign/builder
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   • logger = a logger that discards everything

package builder

import (
	"io"

	"golang.org/x/exp/slog"
)

// builderConfig aggregates all knobs used by Build.
type builderConfig struct {
	logger *slog.Logger
}

// newBuilderConfig applies options in order over the defaults; later options
// override earlier ones.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
