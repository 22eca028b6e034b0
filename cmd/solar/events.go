// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/solar/almanac"
	"cloudeng.io/solar/midnight"
)

type eventsFlags struct {
	cmdutil.LoggingFlags
	placeFlags
	Date string `subcmd:"date,,'date of interest as yyyy-mm-dd; today in the time zone of the place when unset'"`
}

func eventsCmd() *subcmd.Command {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(&eventsFlags{}, nil, nil)
	cmd := subcmd.NewCommand("events", fs, reportEvents, subcmd.WithoutArguments())
	cmd.Document(`report the day's solar events for a place.

The events cover dawn, sunrise, solar noon, sunset, dusk, the
twilight boundaries and the nadir, printed in time order in the
place's time zone. Events that do not occur on the date, as during
polar day or polar night, are omitted.`)
	return cmd
}

func reportEvents(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*eventsFlags)
	_, closer, err := loggingContext(ctx, fv.LoggingFlags)
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
	for _, ev := range almanac.DayTimes(pl, date) {
		fmt.Printf("%-16v %v\n", ev.Name, ev.At.Format(midnight.TimestampLayout))
	}
	return nil
}
