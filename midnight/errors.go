// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package midnight

import "errors"

var (
	// ErrNoMinimumInWindow is returned when the sun stays above the
	// horizon for the whole window, as during polar day, and hence
	// there is no solar midnight to find.
	ErrNoMinimumInWindow = errors.New("the sun stays above the horizon throughout the window")

	// ErrMinimumAtBoundary is returned when the lowest sampled
	// altitude falls on the first or last sample, in which case the
	// true minimum likely lies outside the window and the window
	// should be repositioned or widened.
	ErrMinimumAtBoundary = errors.New("the lowest altitude lies at the edge of the window")

	// ErrConvergenceFailure is returned when refinement fails to
	// reach the requested tolerance within the configured iteration
	// limit.
	ErrConvergenceFailure = errors.New("refinement failed to converge")
)
