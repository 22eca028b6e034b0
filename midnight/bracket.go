// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package midnight

import (
	"fmt"
	"time"
)

// Bracket is a pair of instants known to straddle a local minimum of
// the sun's altitude.
type Bracket struct {
	Lower time.Time
	Upper time.Time
}

func (b Bracket) String() string {
	return fmt.Sprintf("%v .. %v", b.Lower.Format(TimestampLayout), b.Upper.Format(TimestampLayout))
}

// SelectBracket returns the instants of the samples immediately
// before and after the lowest one, which therefore bracket the
// minimum. Ties resolve to the earliest of the lowest samples. If the
// lowest sample is the first or last, the true minimum may lie
// outside the sampled window and ErrMinimumAtBoundary is returned.
func SelectBracket(samples []Sample) (Bracket, error) {
	if len(samples) < 3 {
		return Bracket{}, fmt.Errorf("%v samples cannot bracket a minimum, need at least 3", len(samples))
	}
	low := lowestIndex(samples)
	if low == 0 || low == len(samples)-1 {
		return Bracket{}, fmt.Errorf("lowest sample %v: %w", samples[low], ErrMinimumAtBoundary)
	}
	return Bracket{Lower: samples[low-1].When, Upper: samples[low+1].When}, nil
}
