// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package place_test

import (
	"math"
	"testing"
	"time"

	"cloudeng.io/solar/place"
)

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		place place.Place
		ok    bool
	}{
		{place.Place{Latitude: 40.7128, Longitude: -74.0060}, true},
		{place.Place{Latitude: 90, Longitude: 180, Height: 8848}, true},
		{place.Place{Latitude: -90, Longitude: -180}, true},
		{place.Place{Latitude: 90.001}, false},
		{place.Place{Latitude: -90.001}, false},
		{place.Place{Longitude: 180.5}, false},
		{place.Place{Longitude: -181}, false},
		{place.Place{Height: -1}, false},
		{place.Place{Latitude: math.NaN()}, false},
		{place.Place{Longitude: math.NaN()}, false},
	} {
		err := tc.place.Validate()
		if got, want := err == nil, tc.ok; got != want {
			t.Errorf("%v: got %v, want %v (%v)", tc.place, got, want, err)
		}
	}
}

func TestLocationDefault(t *testing.T) {
	p := place.Place{Latitude: 1, Longitude: 2}
	if got, want := p.Location(), time.UTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	p.TimeLocation = loc
	if got, want := p.Location(), loc; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	p := place.Place{TimeLocation: loc, Latitude: 40.7128, Longitude: -74.0060, Height: 10}
	if got, want := p.String(), "40.7128N 74.0060W 10m America/New_York"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p = place.Place{Latitude: -33.8688, Longitude: 151.2093}
	if got, want := p.String(), "33.8688S 151.2093E 0m UTC"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
