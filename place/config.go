// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package place

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeZone wraps time.Location so that time zones can be specified by
// name in yaml configuration files.
type TimeZone struct {
	*time.Location
}

func (tz *TimeZone) UnmarshalYAML(value *yaml.Node) error {
	loc, err := time.LoadLocation(value.Value)
	if err != nil {
		return fmt.Errorf("invalid time zone: %v: %v", value.Value, err)
	}
	tz.Location = loc
	return nil
}

func (tz TimeZone) MarshalYAML() (any, error) {
	if tz.Location == nil {
		return "UTC", nil
	}
	return tz.Location.String(), nil
}

// ConfigEntry describes a single named place in a yaml configuration
// file.
type ConfigEntry struct {
	Name      string   `yaml:"name" cmd:"name by which the place is known"`
	Latitude  float64  `yaml:"latitude" cmd:"latitude in degrees, north positive"`
	Longitude float64  `yaml:"longitude" cmd:"longitude in degrees, east positive"`
	Height    float64  `yaml:"height" cmd:"height above mean sea level in metres"`
	TimeZone  TimeZone `yaml:"timezone" cmd:"time zone database name, eg. America/New_York"`
}

// Place returns the place described by the entry.
func (e ConfigEntry) Place() Place {
	return Place{
		TimeLocation: e.TimeZone.Location,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		Height:       e.Height,
	}
}

// Config represents a yaml configuration file defining a set of named
// places, eg:
//
//	places:
//	  - name: nyc
//	    latitude: 40.7128
//	    longitude: -74.0060
//	    height: 10
//	    timezone: America/New_York
type Config struct {
	Places []ConfigEntry `yaml:"places" cmd:"the set of named places"`
}

// Validate validates every entry in the configuration, rejecting
// unnamed or duplicate names and out of range coordinates.
func (c Config) Validate() error {
	seen := map[string]bool{}
	for _, e := range c.Places {
		if len(e.Name) == 0 {
			return fmt.Errorf("place with no name: %v", e.Place())
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate place: %v", e.Name)
		}
		seen[e.Name] = true
		if err := e.Place().Validate(); err != nil {
			return fmt.Errorf("place %v: %w", e.Name, err)
		}
	}
	return nil
}

// Lookup returns the named place.
func (c Config) Lookup(name string) (Place, bool) {
	for _, e := range c.Places {
		if e.Name == name {
			return e.Place(), true
		}
	}
	return Place{}, false
}
