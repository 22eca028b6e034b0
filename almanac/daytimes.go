// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"sort"
	"time"

	"github.com/sixdouglas/suncalc"

	"cloudeng.io/solar/place"
)

// DayTimes returns the sun event table for the place and date, in
// time order: night end, dawns, sunrise, golden hours, solar noon,
// sunset, dusks, nadir and so on. Events that do not occur on the
// date, as during polar day or night, are omitted. Times are in the
// place's time zone.
func DayTimes(p place.Place, date Date) []Event {
	noon := date.Time(p.Location()).Add(12 * time.Hour)
	times := suncalc.GetTimes(noon, p.Latitude, p.Longitude)
	events := make([]Event, 0, len(times))
	for name, dt := range times {
		// suncalc reports events that never happen on the date as
		// instants far outside it; keep only instants within a day
		// of local noon.
		if dt.Value.IsZero() || dt.Value.Sub(noon).Abs() > 24*time.Hour {
			continue
		}
		events = append(events, Event{Name: string(name), At: dt.Value.In(p.Location())})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].At.Equal(events[j].At) {
			return events[i].Name < events[j].Name
		}
		return events[i].At.Before(events[j].At)
	})
	return events
}
