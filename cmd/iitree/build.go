// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/mlin/iitj/iitio"
)

func newBuildCommand(verbosity *logLevelFlag) *cobra.Command {
	var keyType string
	var fastScan bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "build INPUT",
		Short: "Build a serialized interval index from a delimited file of (beg, end) records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validKeyType(keyType) {
				return fmt.Errorf("unrecognized --key-type %q", keyType)
			}
			ctx := cmdCtx(cmd, verbosity.Level)

			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			pairs, err := readPairs(in)
			if err != nil {
				return err
			}
			dlog.Infof(ctx, "read %d records from %s", len(pairs), args[0])

			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			switch keyType {
			case "int64":
				beg, end, err := parseInt64Pairs(pairs)
				if err != nil {
					return err
				}
				idx, err := buildIndex[int64](beg, end, fastScan)
				if err != nil {
					return err
				}
				if err := iitio.Save(out, idx); err != nil {
					return err
				}
				dlog.Infof(ctx, "built index of %d intervals, wrote %s", idx.Size(), outPath)
			case "float64":
				beg, end, err := parseFloat64Pairs(pairs)
				if err != nil {
					return err
				}
				idx, err := buildIndex[float64](beg, end, fastScan)
				if err != nil {
					return err
				}
				if err := iitio.Save(out, idx); err != nil {
					return err
				}
				dlog.Infof(ctx, "built index of %d intervals, wrote %s", idx.Size(), outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyType, "key-type", "int64", "key type for interval coordinates (int64|float64)")
	cmd.Flags().BoolVar(&fastScan, "fast-scan", false, "use the sparse (fast-scan) augmentation layout")
	cmd.Flags().StringVar(&outPath, "out", "index.iit", "path to write the serialized index to")
	return cmd
}
