// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command solar estimates solar midnight and related solar events for
// places on the Earth's surface.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/solar/almanac"
	"cloudeng.io/solar/ephemeris"
	"cloudeng.io/solar/midnight"
	"cloudeng.io/solar/place"
)

var cmdSet *subcmd.CommandSet

func init() {
	cmdSet = subcmd.NewCommandSet(
		midnightCmd(),
		noonCmd(),
		positionCmd(),
		curveCmd(),
		eventsCmd(),
		seasonsCmd(),
		placesCmd(),
	)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	cmdutil.HandleSignals(cancel, os.Interrupt, os.Kill)
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// placeFlags selects the observer's location, one of three ways.
type placeFlags struct {
	Coords     string `subcmd:"coords,,'place as latitude,longitude[,height]: degrees north, degrees east and optional metres above sea level, eg. 40.7,-74.0,10'"`
	TZ         string `subcmd:"tz,,'time zone database name for the place, eg. America/New_York; UTC when unset'"`
	Place      string `subcmd:"place,,name of a place defined in the configuration file"`
	Config     string `subcmd:"config,,yaml configuration file of named places"`
	Postal     string `subcmd:"postal,,'postal code as admin-code/postal-code, eg. AK/99553'"`
	PostalData string `subcmd:"postal-data,,geonames postal code data file resolved against by --postal"`
}

func parseCoords(coords string, loc *time.Location) (place.Place, error) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return place.Place{}, fmt.Errorf("invalid coordinates: %v: expected latitude,longitude[,height]", coords)
	}
	vals := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return place.Place{}, fmt.Errorf("invalid coordinates: %v: %v", coords, err)
		}
		vals[i] = v
	}
	pl := place.Place{TimeLocation: loc, Latitude: vals[0], Longitude: vals[1]}
	if len(vals) == 3 {
		pl.Height = vals[2]
	}
	return pl, nil
}

func (fv placeFlags) resolve() (place.Place, error) {
	loc := time.UTC
	if len(fv.TZ) > 0 {
		var err error
		if loc, err = time.LoadLocation(fv.TZ); err != nil {
			return place.Place{}, fmt.Errorf("invalid time zone: %v: %v", fv.TZ, err)
		}
	}
	var pl place.Place
	switch {
	case len(fv.Coords) > 0:
		var err error
		if pl, err = parseCoords(fv.Coords, loc); err != nil {
			return place.Place{}, err
		}
	case len(fv.Place) > 0:
		if len(fv.Config) == 0 {
			return place.Place{}, fmt.Errorf("--place requires --config")
		}
		var cfg place.Config
		if err := cmdyaml.ParseConfigFile(context.Background(), fv.Config, &cfg); err != nil {
			return place.Place{}, err
		}
		if err := cfg.Validate(); err != nil {
			return place.Place{}, err
		}
		var ok bool
		if pl, ok = cfg.Lookup(fv.Place); !ok {
			return place.Place{}, fmt.Errorf("no such place in %v: %v", fv.Config, fv.Place)
		}
	case len(fv.Postal) > 0:
		if len(fv.PostalData) == 0 {
			return place.Place{}, fmt.Errorf("--postal requires --postal-data")
		}
		admin, code, ok := strings.Cut(fv.Postal, "/")
		if !ok {
			return place.Place{}, fmt.Errorf("invalid postal code: %v: expected admin-code/postal-code", fv.Postal)
		}
		data, err := os.ReadFile(fv.PostalData)
		if err != nil {
			return place.Place{}, err
		}
		db := place.NewPostalDB(place.WithPostalTimeLocation(loc))
		if err := db.Load(data); err != nil {
			return place.Place{}, err
		}
		if pl, ok = db.Place(admin, code); !ok {
			return place.Place{}, fmt.Errorf("no such postal code in %v: %v", fv.PostalData, fv.Postal)
		}
	default:
		return place.Place{}, fmt.Errorf("specify a place using --coords, --place or --postal")
	}
	return pl, pl.Validate()
}

// windowFlags selects the search window for the midnight and curve
// commands.
type windowFlags struct {
	Date      string        `subcmd:"date,,'date of interest as yyyy-mm-dd; today in the time zone of the place when unset'"`
	Centre    string        `subcmd:"centre,civil,'window centre: civil for the civil midnight beginning the date, solar for the almanac estimate of solar midnight'"`
	HalfWidth time.Duration `subcmd:"half-width,1h,half width of the search window either side of its centre"`
}

func (fv windowFlags) date(pl place.Place) (almanac.Date, error) {
	if len(fv.Date) == 0 {
		return almanac.DateOf(time.Now().In(pl.Location())), nil
	}
	return almanac.ParseDate(fv.Date)
}

func (fv windowFlags) resolve(pl place.Place) (midnight.Window, error) {
	if fv.HalfWidth <= 0 {
		return midnight.Window{}, fmt.Errorf("half width %v: must be positive", fv.HalfWidth)
	}
	date, err := fv.date(pl)
	if err != nil {
		return midnight.Window{}, err
	}
	if err := flags.OneOf(fv.Centre).Validate("civil", "solar"); err != nil {
		return midnight.Window{}, err
	}
	if fv.Centre == "solar" {
		return midnight.SolarWindow(pl, date, fv.HalfWidth)
	}
	return midnight.CivilWindow(date, pl.Location(), fv.HalfWidth), nil
}

// samplerFlags configures the coarse sampling stage.
type samplerFlags struct {
	Provider    string `subcmd:"provider,meeus,'ephemeris provider: meeus or suncalc'"`
	Samples     int    `subcmd:"samples,100,number of evenly spaced samples across the window"`
	Concurrency int    `subcmd:"concurrency,1,number of goroutines evaluating samples"`
}

// estimatorFlags additionally configures the refinement stage.
type estimatorFlags struct {
	samplerFlags
	Tolerance     time.Duration `subcmd:"tolerance,50ms,time tolerance to which the estimate converges"`
	MaxIterations int           `subcmd:"max-iterations,64,limit on refinement iterations"`
}

func (fv samplerFlags) provider() (ephemeris.Provider, error) {
	names := ephemeris.Names()
	if err := flags.OneOf(fv.Provider).Validate(names[0], names[1:]...); err != nil {
		return nil, err
	}
	return ephemeris.ForName(fv.Provider)
}

func (fv samplerFlags) newSampler() (*midnight.Estimator, error) {
	provider, err := fv.provider()
	if err != nil {
		return nil, err
	}
	return midnight.New(provider,
		midnight.WithSampleCount(fv.Samples),
		midnight.WithConcurrency(fv.Concurrency))
}

func (fv estimatorFlags) newEstimator() (*midnight.Estimator, error) {
	provider, err := fv.provider()
	if err != nil {
		return nil, err
	}
	return midnight.New(provider,
		midnight.WithSampleCount(fv.Samples),
		midnight.WithConcurrency(fv.Concurrency),
		midnight.WithTolerance(fv.Tolerance),
		midnight.WithMaxIterations(fv.MaxIterations))
}

// loggingContext installs a logger configured by the logging flags
// into the context. The returned function closes any log file.
func loggingContext(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := lf.LoggingConfig().NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { _ = logger.Close() }, nil
}
