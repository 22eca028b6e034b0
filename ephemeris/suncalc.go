// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"cloudeng.io/solar/place"
)

// SunCalc computes Sun positions using the low precision formulae
// from the suncalc library. It agrees with Meeus to within a few
// tenths of a degree and is useful as an independent cross check;
// prefer Meeus when accuracy matters.
type SunCalc struct{}

func (s SunCalc) Name() string { return "suncalc" }

// SunPosition implements Provider.
func (s SunCalc) SunPosition(p place.Place, t time.Time) (Position, error) {
	if err := checkSupported(t); err != nil {
		return Position{}, err
	}
	pos := suncalc.GetPosition(t.UTC(), p.Latitude, p.Longitude)
	return Position{
		// suncalc measures azimuth in radians westwards from south.
		Azimuth:  math.Mod(pos.Azimuth*180/math.Pi+180+360, 360),
		Altitude: pos.Altitude * 180 / math.Pi,
	}, nil
}
