// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package place

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PostalDB is a postal code to place lookup table built from data
// published by www.geonames.org.
type PostalDB struct {
	timeLocation *time.Location
	lookup       map[string]latLong
}

type latLong struct {
	lat  float64
	long float64
}

type PostalOption func(o *postalOptions)

type postalOptions struct {
	timeLocation *time.Location
}

// WithPostalTimeLocation sets the time zone attached to places returned
// by Place. The geonames postal data does not record time zones; the
// default is UTC.
func WithPostalTimeLocation(loc *time.Location) PostalOption {
	return func(o *postalOptions) {
		o.timeLocation = loc
	}
}

func NewPostalDB(opts ...PostalOption) *PostalDB {
	var options postalOptions
	for _, fn := range opts {
		fn(&options)
	}
	return &PostalDB{
		timeLocation: options.timeLocation,
		lookup:       make(map[string]latLong),
	}
}

// Place returns the place for the specified postal code and admin
// code (eg. AK 99553). GB and CA postal codes come in two formats,
// either the short form or long form:
//
//	GB: ENG BN91, or ENG "BN91 9AA".
//	CA: AB T0A, or AB "T0A 0A0".
//
// The returned place has height zero since the postal data does not
// record elevations.
func (db *PostalDB) Place(admin, postal string) (Place, bool) {
	ll, ok := db.lookup[admin+" "+postal]
	if !ok {
		return Place{}, false
	}
	return Place{
		TimeLocation: db.timeLocation,
		Latitude:     ll.lat,
		Longitude:    ll.long,
	}, true
}

// Load parses the tab-separated allCountries format published by
// www.geonames.org for postal codes and adds each entry to the
// database. It may be called repeatedly to merge multiple files.
func (db *PostalDB) Load(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if len(scanner.Text()) == 0 {
			continue
		}
		parts := strings.Split(scanner.Text(), "\t")
		if len(parts) != 12 {
			return fmt.Errorf("invalid line, wrong number of fields: (%v != 12) %v", len(parts), scanner.Text())
		}
		latStr, longStr := parts[9], parts[10]
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return fmt.Errorf("invalid latitude: %v: %v", latStr, err)
		}
		long, err := strconv.ParseFloat(longStr, 64)
		if err != nil {
			return fmt.Errorf("invalid longitude: %v: %v", longStr, err)
		}
		key := parts[4] + " " + parts[1]
		db.lookup[key] = latLong{lat: lat, long: long}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read data: %v", err)
	}
	return nil
}

// Size returns the number of postal codes in the database.
func (db *PostalDB) Size() int {
	return len(db.lookup)
}
