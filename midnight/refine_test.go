// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package midnight_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloudeng.io/solar/ephemeris"
	"cloudeng.io/solar/midnight"
	"cloudeng.io/solar/place"
)

// quadSun has a purely quadratic altitude curve with its minimum at
// vertex.
type quadSun struct {
	vertex time.Time
	floor  float64
}

func (q quadSun) Name() string { return "quad" }

func (q quadSun) SunPosition(_ place.Place, t time.Time) (ephemeris.Position, error) {
	ds := t.Sub(q.vertex).Seconds()
	return ephemeris.Position{Altitude: q.floor + 1e-4*ds*ds}, nil
}

func TestRefine(t *testing.T) {
	pl := newYork(t)
	vertex := time.Date(2026, 1, 1, 4, 59, 12, 594465000, time.UTC)
	sun := quadSun{vertex: vertex, floor: -72.3}
	est, err := midnight.New(sun)
	if err != nil {
		t.Fatal(err)
	}
	br := midnight.Bracket{Lower: vertex.Add(-36 * time.Second), Upper: vertex.Add(36 * time.Second)}
	got, err := est.Refine(context.Background(), pl, br)
	if err != nil {
		t.Fatal(err)
	}
	if d := got.When.Sub(vertex).Abs(); d > 150*time.Millisecond {
		t.Errorf("refined %v is %v from the vertex", got, d)
	}
	if got.Altitude < sun.floor || got.Altitude > sun.floor+1e-5 {
		t.Errorf("got %v, want close to %v", got.Altitude, sun.floor)
	}
	if got.When.Before(br.Lower) || got.When.After(br.Upper) {
		t.Errorf("refined %v outside bracket %v", got.When, br)
	}
}

func TestRefineTightTolerance(t *testing.T) {
	pl := newYork(t)
	vertex := time.Date(2026, 1, 1, 4, 59, 12, 594465000, time.UTC)
	sun := quadSun{vertex: vertex, floor: -72.3}
	est, err := midnight.New(sun, midnight.WithTolerance(time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	br := midnight.Bracket{Lower: vertex.Add(-36 * time.Second), Upper: vertex.Add(36 * time.Second)}
	got, err := est.Refine(context.Background(), pl, br)
	if err != nil {
		t.Fatal(err)
	}
	if d := got.When.Sub(vertex).Abs(); d > 5*time.Millisecond {
		t.Errorf("refined %v is %v from the vertex", got, d)
	}
}

func TestRefineOffCentre(t *testing.T) {
	// The vertex sits near one end of the bracket rather than in the
	// middle.
	pl := newYork(t)
	vertex := time.Date(2026, 1, 1, 4, 59, 12, 0, time.UTC)
	sun := quadSun{vertex: vertex, floor: -10}
	est, err := midnight.New(sun)
	if err != nil {
		t.Fatal(err)
	}
	br := midnight.Bracket{Lower: vertex.Add(-5 * time.Second), Upper: vertex.Add(65 * time.Second)}
	got, err := est.Refine(context.Background(), pl, br)
	if err != nil {
		t.Fatal(err)
	}
	if d := got.When.Sub(vertex).Abs(); d > 150*time.Millisecond {
		t.Errorf("refined %v is %v from the vertex", got, d)
	}
}

func TestRefineDegenerateBracket(t *testing.T) {
	pl := newYork(t)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	est, err := midnight.New(quadSun{vertex: at})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := est.Refine(context.Background(), pl, midnight.Bracket{Lower: at, Upper: at}); err == nil {
		t.Errorf("expected an error for an empty bracket")
	}
	if _, err := est.Refine(context.Background(), pl, midnight.Bracket{Lower: at.Add(time.Minute), Upper: at}); err == nil {
		t.Errorf("expected an error for a reversed bracket")
	}
}

func TestRefineProviderError(t *testing.T) {
	pl := newYork(t)
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	est, err := midnight.New(errSun{err: ephemeris.ErrDataUnavailable})
	if err != nil {
		t.Fatal(err)
	}
	br := midnight.Bracket{Lower: at, Upper: at.Add(time.Minute)}
	if _, err := est.Refine(context.Background(), pl, br); !errors.Is(err, ephemeris.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}
