// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ephemeris computes the apparent position of the Sun as seen
// from a place on the Earth's surface at an instant in time.
package ephemeris

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/solar/place"
)

// Position is the apparent position of the Sun on the sky in
// horizontal coordinates. Azimuth is measured in degrees clockwise
// from true north (90 is east), Altitude in degrees above the local
// horizon, negative below it, in the range [-90..90].
type Position struct {
	Azimuth  float64
	Altitude float64
}

func (p Position) String() string {
	return fmt.Sprintf("az %.3f° alt %.3f°", p.Azimuth, p.Altitude)
}

// Provider computes Sun positions. Implementations are pure functions
// of their arguments: the same place and time always yield the same
// position.
type Provider interface {
	// Name returns the name by which the provider is known.
	Name() string
	// SunPosition returns the apparent position of the Sun as seen
	// from the place at the instant t.
	SunPosition(p place.Place, t time.Time) (Position, error)
}

// ErrDataUnavailable is returned, possibly wrapped, when a provider
// cannot resolve a position for the requested instant.
var ErrDataUnavailable = errors.New("ephemeris data unavailable")

// Providers will return ErrDataUnavailable for instants whose year
// falls outside [MinYear..MaxYear]; the series they evaluate lose
// accuracy beyond this range.
const (
	MinYear = 1000
	MaxYear = 3000
)

func checkSupported(t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%w: zero time", ErrDataUnavailable)
	}
	if y := t.UTC().Year(); y < MinYear || y > MaxYear {
		return fmt.Errorf("%w: year %v outside %v..%v", ErrDataUnavailable, y, MinYear, MaxYear)
	}
	return nil
}

// ForName returns the named provider, currently one of "meeus" or
// "suncalc".
func ForName(name string) (Provider, error) {
	switch name {
	case "meeus":
		return Meeus{}, nil
	case "suncalc":
		return SunCalc{}, nil
	}
	return nil, fmt.Errorf("unrecognised ephemeris provider: %v", name)
}

// Names returns the names of the available providers.
func Names() []string {
	return []string{"meeus", "suncalc"}
}
