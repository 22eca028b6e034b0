// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"
	"github.com/soniakeys/unit"

	"cloudeng.io/solar/place"
)

// Meeus computes Sun positions using the solar position series from
// Meeus' "Astronomical Algorithms": the apparent equatorial
// coordinates of the Sun, corrected for aberration, transformed to
// horizontal coordinates using the apparent sidereal time at
// Greenwich. Positions are good to about a hundredth of a degree
// over [MinYear..MaxYear].
//
// ΔT (the difference between terrestrial and universal time, around a
// minute in the current era) displaces the Sun by under 3 arc seconds
// and is not applied. Atmospheric refraction and the Sun's horizontal
// parallax are not modelled; both are smaller than the accuracy of
// the series except within a degree of the horizon. Place height is
// accepted but does not perturb the result.
type Meeus struct{}

func (m Meeus) Name() string { return "meeus" }

// SunPosition implements Provider.
func (m Meeus) SunPosition(p place.Place, t time.Time) (Position, error) {
	if err := checkSupported(t); err != nil {
		return Position{}, err
	}
	jd := julian.TimeToJD(t.UTC())
	ra, dec := solar.ApparentEquatorial(jd)
	st := sidereal.Apparent(jd)
	lat := unit.AngleFromDeg(p.Latitude)
	// Meeus measures geographic longitude positive westwards.
	long := unit.AngleFromDeg(-p.Longitude)
	az, alt := coord.EqToHz(ra, dec, lat, long, st)
	return Position{
		// EqToHz measures azimuth westwards from south; rebase to
		// clockwise from north.
		Azimuth:  math.Mod(az.Deg()+180+360, 360),
		Altitude: alt.Deg(),
	}, nil
}
