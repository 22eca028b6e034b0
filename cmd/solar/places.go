// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/solar/place"
)

type placesFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,yaml configuration file of named places"`
}

func placesCmd() *subcmd.Command {
	fs := subcmd.NewFlagSet()
	fs.MustRegisterFlagStruct(&placesFlags{}, nil, nil)
	cmd := subcmd.NewCommand("places", fs, listPlaces)
	cmd.Document(`validate and list the places defined in a configuration file.

With no arguments every place in the configuration is listed; with
arguments only the named places are resolved and listing continues
past names that cannot be found, with the command failing if any
were missing.`, "[name ...]")
	return cmd
}

func listPlaces(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*placesFlags)
	_, closer, err := loggingContext(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	if len(fv.Config) == 0 {
		return fmt.Errorf("specify a configuration file using --config")
	}
	var cfg place.Config
	if err := cmdyaml.ParseConfigFile(ctx, fv.Config, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(args) == 0 {
		for _, entry := range cfg.Places {
			fmt.Printf("%v: %v\n", entry.Name, entry.Place())
		}
		return nil
	}
	var errs errors.M
	for _, name := range args {
		pl, ok := cfg.Lookup(name)
		if !ok {
			errs.Append(fmt.Errorf("no such place in %v: %v", fv.Config, name))
			continue
		}
		fmt.Printf("%v: %v\n", name, pl)
	}
	return errs.Err()
}
