// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/solar/almanac"
	"cloudeng.io/solar/midnight"
)

type seasonsFlags struct {
	cmdutil.LoggingFlags
	Year int    `subcmd:"year,0,'year of interest; the current year when 0'"`
	TZ   string `subcmd:"tz,UTC,time zone database name in which to print the instants"`
}

func seasonsCmd() *subcmd.Command {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(&seasonsFlags{}, nil, nil)
	cmd := subcmd.NewCommand("seasons", fs, reportSeasons, subcmd.WithoutArguments())
	cmd.Document(`report the equinoxes and solstices for a year.

The instants mark the sun reaching celestial longitudes 0, 90, 180
and 270 degrees and are printed in time order.`)
	return cmd
}

func reportSeasons(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*seasonsFlags)
	_, closer, err := loggingContext(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	loc, err := time.LoadLocation(fv.TZ)
	if err != nil {
		return fmt.Errorf("invalid time zone: %v: %v", fv.TZ, err)
	}
	year := fv.Year
	if year == 0 {
		year = time.Now().In(loc).Year()
	}
	for _, ev := range almanac.Seasons(year) {
		fmt.Printf("%-18v %v\n", ev.Name, ev.At.In(loc).Format(midnight.TimestampLayout))
	}
	return nil
}
