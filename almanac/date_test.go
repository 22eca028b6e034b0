// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac_test

import (
	"testing"
	"time"

	"cloudeng.io/solar/almanac"
)

func TestDate(t *testing.T) {
	d, err := almanac.ParseDate("2026-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, almanac.NewDate(2026, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.String(), "2026-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Add(-1), almanac.NewDate(2025, 12, 31); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.Add(31), almanac.NewDate(2026, 2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := almanac.ParseDate("01/02/2026"); err == nil {
		t.Errorf("expected an error")
	}

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d.Time(loc), time.Date(2026, 1, 1, 0, 0, 0, 0, loc); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := almanac.DateOf(time.Date(2026, 1, 1, 23, 59, 0, 0, loc).UTC()), almanac.NewDate(2026, 1, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
