// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/solstice"
)

// The solstice and equinox instants are computed from Meeus' series
// and converted from dynamical time to UTC without correcting for ΔT,
// which leaves them around a minute late in the current era.

func jdeToTime(jde float64) time.Time {
	return julian.JDToTime(jde)
}

// December returns the December solstice for the year.
func December(year int) time.Time {
	return jdeToTime(solstice.December(year))
}

// March returns the March equinox for the year.
func March(year int) time.Time {
	return jdeToTime(solstice.March(year))
}

// June returns the June solstice for the year.
func June(year int) time.Time {
	return jdeToTime(solstice.June(year))
}

// September returns the September equinox for the year.
func September(year int) time.Time {
	return jdeToTime(solstice.September(year))
}

// Seasons returns the year's equinoxes and solstices in calendar
// order.
func Seasons(year int) []Event {
	return []Event{
		{Name: "march equinox", At: March(year)},
		{Name: "june solstice", At: June(year)},
		{Name: "september equinox", At: September(year)},
		{Name: "december solstice", At: December(year)},
	}
}
