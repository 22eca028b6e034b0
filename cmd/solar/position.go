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
	"cloudeng.io/solar/midnight"
)

type positionFlags struct {
	cmdutil.LoggingFlags
	placeFlags
	samplerFlags
	At string `subcmd:"at,,'instant of interest as RFC3339 or yyyy-mm-dd hh:mm:ss in the time zone of the place; now when unset'"`
}

func positionCmd() *subcmd.Command {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(&positionFlags{}, nil, nil)
	cmd := subcmd.NewCommand("position", fs, reportPosition, subcmd.WithoutArguments())
	cmd.Document(`report the sun's position as seen from a place at an instant.

The position is printed as an azimuth measured in degrees clockwise
from true north and an altitude measured in degrees above the
horizon; negative altitudes place the sun below the horizon.`)
	return cmd
}

func parseInstant(at string, loc *time.Location) (time.Time, error) {
	if len(at) == 0 {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, at); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(time.DateTime, at, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant: %v: expected RFC3339 or %q", at, time.DateTime)
	}
	return t, nil
}

func reportPosition(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*positionFlags)
	_, closer, err := loggingContext(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	pl, err := fv.placeFlags.resolve()
	if err != nil {
		return err
	}
	at, err := parseInstant(fv.At, pl.Location())
	if err != nil {
		return err
	}
	provider, err := fv.samplerFlags.provider()
	if err != nil {
		return err
	}
	pos, err := provider.SunPosition(pl, at)
	if err != nil {
		return err
	}
	fmt.Printf("place:    %v\n", pl)
	fmt.Printf("time:     %v\n", at.In(pl.Location()).Format(midnight.TimestampLayout))
	fmt.Printf("azimuth:  %.4f°\n", pos.Azimuth)
	fmt.Printf("altitude: %.4f°\n", pos.Altitude)
	return nil
}
