// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package midnight

import (
	"fmt"
	"time"

	"cloudeng.io/solar/almanac"
	"cloudeng.io/solar/place"
)

// Window is a closed interval of time over which to search for solar
// midnight.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowAround returns the window extending halfWidth either side
// of t.
func WindowAround(t time.Time, halfWidth time.Duration) Window {
	return Window{Start: t.Add(-halfWidth), End: t.Add(halfWidth)}
}

// CivilWindow returns the window extending halfWidth either side of
// the civil midnight that begins the date in the given location. Civil
// midnight can drift the better part of an hour from solar midnight,
// more in zones with daylight saving or a poorly matched meridian, so
// size halfWidth accordingly.
func CivilWindow(date almanac.Date, loc *time.Location, halfWidth time.Duration) Window {
	return WindowAround(date.Time(loc), halfWidth)
}

// SolarWindow returns the window extending halfWidth either side of
// the apparent solar midnight that begins the date at the place. It
// fails with almanac.ErrPolarDayOrNight when the midnight cannot be
// estimated from the surrounding sunset and sunrise.
func SolarWindow(p place.Place, date almanac.Date, halfWidth time.Duration) (Window, error) {
	centre, err := almanac.ApparentSolarMidnight(p, date)
	if err != nil {
		return Window{}, err
	}
	return WindowAround(centre, halfWidth), nil
}

// Validate returns an error unless the window's start strictly
// precedes its end.
func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("window %v: zero start or end", w)
	}
	if !w.Start.Before(w.End) {
		return fmt.Errorf("window %v: start is not before end", w)
	}
	return nil
}

// Duration returns the length of the window.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains returns true if t falls within the window, inclusive of
// its endpoints.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("%v .. %v", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}

// instant returns the i'th of n evenly spaced instants spanning the
// window, with instant 0 at Start and instant n-1 exactly at End.
func (w Window) instant(i, n int) time.Time {
	if i == n-1 {
		return w.End
	}
	return w.Start.Add(w.Duration() / time.Duration(n-1) * time.Duration(i))
}
