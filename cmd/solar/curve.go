// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging"
	"cloudeng.io/solar/midnight"
	"cloudeng.io/solar/place"
	"github.com/maseology/mmio"
)

type curveFlags struct {
	cmdutil.LoggingFlags
	placeFlags
	windowFlags
	samplerFlags
	Format string `subcmd:"format,csv,'output format: csv, jsonl or png'"`
	Output string `subcmd:"output,,'output file; - writes jsonl to stdout'"`
}

func curveCmd() *subcmd.Command {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(&curveFlags{}, nil, nil)
	cmd := subcmd.NewCommand("curve", fs, writeCurve, subcmd.WithoutArguments())
	cmd.Document(`write the sun's altitude curve across a window of time.

The window is sampled at evenly spaced instants and the resulting
curve is written as csv, as a stream of json objects (one per line)
or as a png line plot. Timestamps are reported in the place's time
zone alongside the offset in seconds from the start of the window.`)
	return cmd
}

type curveRow struct {
	When          string  `json:"when"`
	OffsetSeconds float64 `json:"offset_seconds"`
	Altitude      float64 `json:"altitude"`
}

func curveRows(pl place.Place, window midnight.Window, samples []midnight.Sample) []curveRow {
	rows := make([]curveRow, len(samples))
	for i, s := range samples {
		rows[i] = curveRow{
			When:          s.When.In(pl.Location()).Format(midnight.TimestampLayout),
			OffsetSeconds: s.When.Sub(window.Start).Seconds(),
			Altitude:      s.Altitude,
		}
	}
	return rows
}

func writeCurve(ctx context.Context, values interface{}, _ []string) error {
	fv := values.(*curveFlags)
	ctx, closer, err := loggingContext(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	if err := flags.OneOf(fv.Format).Validate("csv", "jsonl", "png"); err != nil {
		return err
	}
	if len(fv.Output) == 0 || (fv.Output == "-" && fv.Format != "jsonl") {
		return fmt.Errorf("format %v requires --output naming a file", fv.Format)
	}
	pl, err := fv.placeFlags.resolve()
	if err != nil {
		return err
	}
	window, err := fv.windowFlags.resolve(pl)
	if err != nil {
		return err
	}
	sampler, err := fv.samplerFlags.newSampler()
	if err != nil {
		return err
	}
	samples, err := sampler.Samples(ctx, pl, window)
	if err != nil {
		return err
	}
	rows := curveRows(pl, window, samples)
	switch fv.Format {
	case "jsonl":
		return writeJSONL(fv.Output, rows)
	case "png":
		writePNG(fv.Output, rows)
		return nil
	}
	return writeCSV(fv.Output, rows)
}

func writeCSV(output string, rows []curveRow) error {
	csvw := mmio.NewCSVwriter(output)
	defer csvw.Close()
	if err := csvw.WriteHead("when,offset_seconds,altitude"); err != nil {
		return err
	}
	for _, row := range rows {
		csvw.WriteLine(row.When, row.OffsetSeconds, row.Altitude)
	}
	return nil
}

func writeJSONL(output string, rows []curveRow) error {
	w := os.Stdout
	if output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	jf := logging.NewJSONFormatter(w, "", "")
	for _, row := range rows {
		if err := jf.Format(row); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(output string, rows []curveRow) {
	xs := make([]float64, len(rows))
	alts := make(map[string][]float64, 1)
	alt := make([]float64, len(rows))
	for i, row := range rows {
		xs[i] = row.OffsetSeconds
		alt[i] = row.Altitude
	}
	alts["altitude"] = alt
	mmio.Line(output, xs, alts, 48.)
}
