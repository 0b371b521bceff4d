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

func newValidateCommand(verbosity *logLevelFlag) *cobra.Command {
	var keyType string

	cmd := &cobra.Command{
		Use:   "validate INDEX",
		Short: "Check a serialized interval index's internal invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validKeyType(keyType) {
				return fmt.Errorf("unrecognized --key-type %q", keyType)
			}
			ctx := cmdCtx(cmd, verbosity.Level)

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			switch keyType {
			case "int64":
				idx, err := iitio.Load[int64](f)
				if err != nil {
					return err
				}
				if err := idx.Validate(); err != nil {
					return err
				}
				dlog.Infof(ctx, "%s: ok, %d intervals", args[0], idx.Size())
			case "float64":
				idx, err := iitio.Load[float64](f)
				if err != nil {
					return err
				}
				if err := idx.Validate(); err != nil {
					return err
				}
				dlog.Infof(ctx, "%s: ok, %d intervals", args[0], idx.Size())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyType, "key-type", "int64", "key type the index was built with (int64|float64)")
	return cmd
}
