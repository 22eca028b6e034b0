// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package place_test

import (
	"strings"
	"testing"

	"cloudeng.io/solar/place"
	"gopkg.in/yaml.v3"
)

const placesConfig = `places:
  - name: nyc
    latitude: 40.7128
    longitude: -74.0060
    height: 10
    timezone: America/New_York
  - name: sydney
    latitude: -33.8688
    longitude: 151.2093
    timezone: Australia/Sydney
`

func TestConfig(t *testing.T) {
	var cfg place.Config
	if err := yaml.Unmarshal([]byte(placesConfig), &cfg); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	p, ok := cfg.Lookup("nyc")
	if !ok {
		t.Fatal("expected to find nyc")
	}
	if got, want := p.Latitude, 40.7128; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Location().String(), "America/New_York"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := p.Height, 10.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	p, ok = cfg.Lookup("sydney")
	if !ok {
		t.Fatal("expected to find sydney")
	}
	if got, want := p.Longitude, 151.2093; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := cfg.Lookup("atlantis"); ok {
		t.Errorf("expected not to find atlantis")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	var cfg place.Config
	if err := yaml.Unmarshal([]byte(placesConfig), &cfg); err != nil {
		t.Fatal(err)
	}
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	var again place.Config
	if err := yaml.Unmarshal(buf, &again); err != nil {
		t.Fatal(err)
	}
	if got, want := len(again.Places), len(cfg.Places); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range again.Places {
		if got, want := again.Places[i].Place().String(), cfg.Places[i].Place().String(); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}
}

func TestConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		config string
		err    string
	}{
		{"places:\n  - name: x\n    timezone: Mars/Olympus\n", "invalid time zone"},
		{"places:\n  - latitude: 1\n", "no name"},
		{"places:\n  - name: a\n  - name: a\n", "duplicate place"},
		{"places:\n  - name: a\n    latitude: 91\n", "out of range"},
	} {
		var cfg place.Config
		err := yaml.Unmarshal([]byte(tc.config), &cfg)
		if err == nil {
			err = cfg.Validate()
		}
		if err == nil || !strings.Contains(err.Error(), tc.err) {
			t.Errorf("%q: expected an error containing %q, got %v", tc.config, tc.err, err)
		}
	}
}
