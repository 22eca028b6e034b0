// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/solar/almanac"
	"cloudeng.io/solar/midnight"
)

type noonFlags struct {
	cmdutil.LoggingFlags
	placeFlags
	samplerFlags
	Date string `subcmd:"date,,'date of interest as yyyy-mm-dd; today in the time zone of the place when unset'"`
}

func noonCmd() *subcmd.Command {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(&noonFlags{}, nil, nil)
	cmd := subcmd.NewCommand("noon", fs, estimateNoon, subcmd.WithoutArguments())
	cmd.Document(`report apparent solar noon for a place and date.

Solar noon is taken as the midpoint of sunrise and sunset and is
printed in the place's time zone along with the sun's position at
that instant. Places in polar day or polar night have no sunrise or
sunset and hence no noon estimate.`)
	return cmd
}

func estimateNoon(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*noonFlags)
	ctx, closer, err := loggingContext(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	pl, err := fv.placeFlags.resolve()
	if err != nil {
		return err
	}
	date, err := windowFlags{Date: fv.Date}.date(pl)
	if err != nil {
		return err
	}
	noon, err := almanac.ApparentSolarNoon(pl, date)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("apparent solar noon", "place", pl.String(), "date", date.String(), "noon", noon)
	provider, err := fv.samplerFlags.provider()
	if err != nil {
		return err
	}
	pos, err := provider.SunPosition(pl, noon)
	if err != nil {
		return err
	}
	fmt.Printf("apparent solar noon: %v\n", noon.Format(midnight.TimestampLayout))
	fmt.Printf("sun altitude:        %.4f°\n", pos.Altitude)
	fmt.Printf("sun azimuth:         %.4f°\n", pos.Azimuth)
	return nil
}
