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
	"cloudeng.io/solar/midnight"
)

type midnightFlags struct {
	cmdutil.LoggingFlags
	placeFlags
	windowFlags
	estimatorFlags
	Verbose bool `subcmd:"verbose,false,print the search window and estimator statistics"`
}

func midnightCmd() *subcmd.Command {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(&midnightFlags{}, nil, nil)
	cmd := subcmd.NewCommand("midnight", fs, estimateMidnight, subcmd.WithoutArguments())
	cmd.Document(`estimate the instant of solar midnight for a place and date.

The estimate is the instant within the search window at which the sun
reaches its lowest altitude. The window is centred on the civil
midnight that begins the date (or on the almanac estimate of solar
midnight with --centre=solar) and the estimate is printed in the
place's time zone. A window that never sees the sun set is reported
as an error; polar night, where the sun never rises, is not.`)
	return cmd
}

func estimateMidnight(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*midnightFlags)
	ctx, closer, err := loggingContext(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	pl, err := fv.placeFlags.resolve()
	if err != nil {
		return err
	}
	window, err := fv.windowFlags.resolve(pl)
	if err != nil {
		return err
	}
	est, err := fv.estimatorFlags.newEstimator()
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("estimating solar midnight", "place", pl.String(), "window", window.String(), "provider", fv.Provider)
	result, err := est.Estimate(ctx, pl, window)
	if err != nil {
		return err
	}
	fmt.Printf("solar midnight: %v\n", result.When.Format(midnight.TimestampLayout))
	fmt.Printf("sun altitude:   %.6f°\n", result.Altitude)
	if fv.Verbose {
		fmt.Printf("window:         %v\n", window)
		fmt.Printf("samples:        %v\n", result.Samples)
		fmt.Printf("evaluations:    %v\n", result.Evaluations)
		fmt.Printf("iterations:     %v\n", result.Iterations)
	}
	return nil
}
