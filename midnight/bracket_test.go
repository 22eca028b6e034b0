// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package midnight_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/solar/midnight"
)

func samplesFor(alts ...float64) []midnight.Sample {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	samples := make([]midnight.Sample, len(alts))
	for i, alt := range alts {
		samples[i] = midnight.Sample{
			When:     start.Add(time.Duration(i) * time.Minute),
			Altitude: alt,
		}
	}
	return samples
}

func TestSelectBracket(t *testing.T) {
	samples := samplesFor(3, 1, 0, 2, 5)
	br, err := midnight.SelectBracket(samples)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := br.Lower, samples[1].When; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := br.Upper, samples[3].When; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectBracketTies(t *testing.T) {
	// Equal minima resolve to the earliest.
	samples := samplesFor(5, 2, 2, 3, 4)
	br, err := midnight.SelectBracket(samples)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := br.Lower, samples[0].When; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := br.Upper, samples[2].When; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSelectBracketBoundary(t *testing.T) {
	for _, alts := range [][]float64{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
	} {
		if _, err := midnight.SelectBracket(samplesFor(alts...)); !errors.Is(err, midnight.ErrMinimumAtBoundary) {
			t.Errorf("%v: expected ErrMinimumAtBoundary, got %v", alts, err)
		}
	}
}

func TestSelectBracketTooFew(t *testing.T) {
	for _, alts := range [][]float64{{}, {1}, {1, 2}} {
		_, err := midnight.SelectBracket(samplesFor(alts...))
		if err == nil {
			t.Errorf("%v: expected an error", alts)
		}
		if errors.Is(err, midnight.ErrMinimumAtBoundary) {
			t.Errorf("%v: too few samples is not a boundary condition: %v", alts, err)
		}
	}
}
