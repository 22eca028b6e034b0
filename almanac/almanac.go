// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package almanac provides the dates and times of recurring solar
// events: sunrise and sunset, apparent solar noon and midnight,
// twilights, equinoxes and solstices.
package almanac

import (
	"errors"
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"cloudeng.io/solar/place"
)

// Event is a named instant.
type Event struct {
	Name string
	At   time.Time
}

func (e Event) String() string {
	return fmt.Sprintf("%v: %v", e.Name, e.At)
}

// ErrPolarDayOrNight is returned for dates on which the sun never
// crosses the horizon at the requested place.
var ErrPolarDayOrNight = errors.New("the sun does not rise or set on this date")

// SunRiseSet returns the times of sunrise and sunset at the place on
// the given date, in UTC. For dates on which the sun never rises or
// never sets both returned times are zero.
func SunRiseSet(p place.Place, date Date) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		p.Latitude, p.Longitude,
		date.Year, date.Month, date.Day)
	return
}

// ApparentSolarNoon returns the instant at which the sun crosses the
// place's meridian on the given date, computed as the midpoint of
// sunrise and sunset and expressed in the place's time zone. It
// returns ErrPolarDayOrNight for dates with no sunrise or sunset.
func ApparentSolarNoon(p place.Place, date Date) (time.Time, error) {
	rise, set := SunRiseSet(p, date)
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, fmt.Errorf("%v: %v: %w", p, date, ErrPolarDayOrNight)
	}
	return rise.Add(set.Sub(rise) / 2).In(p.Location()), nil
}

// ApparentSolarMidnight returns the instant at which the sun crosses
// the place's antimeridian at the start of the given date, that is,
// the solar midnight between the previous date and this one. It is
// computed as the midpoint of the previous date's sunset and the
// date's sunrise and expressed in the place's time zone. It returns
// ErrPolarDayOrNight when either date lacks a sunrise or sunset.
func ApparentSolarMidnight(p place.Place, date Date) (time.Time, error) {
	_, prevSet := SunRiseSet(p, date.Add(-1))
	rise, _ := SunRiseSet(p, date)
	if prevSet.IsZero() || rise.IsZero() {
		return time.Time{}, fmt.Errorf("%v: %v: %w", p, date, ErrPolarDayOrNight)
	}
	return prevSet.Add(rise.Sub(prevSet) / 2).In(p.Location()), nil
}
