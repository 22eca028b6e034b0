// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package place represents observer locations on the Earth's surface.
package place

import (
	"fmt"
	"math"
	"time"
)

// Place represents a location on the Earth's surface in terms of its
// latitude and longitude (wgs84 degrees, north and east positive), its
// height above mean sea level in metres and the time zone to use when
// interpreting or displaying civil times for that location.
type Place struct {
	TimeLocation *time.Location
	Latitude     float64
	Longitude    float64
	Height       float64
}

// Validate returns an error if the place's latitude is outside
// [-90..90], its longitude is outside [-180..180], its height is
// negative or any coordinate is NaN. A nil TimeLocation is valid and
// is interpreted as UTC.
func (p Place) Validate() error {
	if math.IsNaN(p.Latitude) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %v: out of range -90..90", p.Latitude)
	}
	if math.IsNaN(p.Longitude) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %v: out of range -180..180", p.Longitude)
	}
	if math.IsNaN(p.Height) || p.Height < 0 {
		return fmt.Errorf("height %vm: negative", p.Height)
	}
	return nil
}

// Location returns the place's time zone, or time.UTC if none is set.
func (p Place) Location() *time.Location {
	if p.TimeLocation == nil {
		return time.UTC
	}
	return p.TimeLocation
}

func (p Place) String() string {
	latH, longH := "N", "E"
	lat, long := p.Latitude, p.Longitude
	if lat < 0 {
		latH, lat = "S", -lat
	}
	if long < 0 {
		longH, long = "W", -long
	}
	return fmt.Sprintf("%.4f%s %.4f%s %.0fm %s", lat, latH, long, longH, p.Height, p.Location())
}
