// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/mlin/iitj/iitcache"
	"github.com/mlin/iitj/iitio"
)

// newListCommand loads a set of name=path index files into a
// iitcache.Registry and prints the registered names back out in sorted
// order, exercising Registry the way a worker process would when it first
// receives its broadcast set of indexes.
func newListCommand(verbosity *logLevelFlag) *cobra.Command {
	var keyType string

	cmd := &cobra.Command{
		Use:   "list NAME=INDEX...",
		Short: "Load named indexes into a registry and list what's registered",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validKeyType(keyType) {
				return fmt.Errorf("unrecognized --key-type %q", keyType)
			}
			ctx := cmdCtx(cmd, verbosity.Level)

			names, err := loadRegistry(keyType, args)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(os.Stdout, name)
			}
			dlog.Debugf(ctx, "registered %d indexes", len(names))
			return nil
		},
	}
	cmd.Flags().StringVar(&keyType, "key-type", "int64", "key type the indexes were built with (int64|float64)")
	return cmd
}

func loadRegistry(keyType string, args []string) ([]string, error) {
	switch keyType {
	case "int64":
		var reg iitcache.Registry[int64]
		for _, arg := range args {
			if err := loadOne(&reg, arg); err != nil {
				return nil, err
			}
		}
		return reg.Names(), nil
	case "float64":
		var reg iitcache.Registry[float64]
		for _, arg := range args {
			if err := loadOne(&reg, arg); err != nil {
				return nil, err
			}
		}
		return reg.Names(), nil
	default:
		return nil, fmt.Errorf("unrecognized key type %q", keyType)
	}
}

func loadOne[K iitio.Numeric](reg *iitcache.Registry[K], arg string) error {
	name, path, err := splitNameValue(arg)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = reg.Load(name, f)
	return err
}

func splitNameValue(arg string) (name, path string, err error) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected NAME=PATH, got %q", arg)
	}
	return parts[0], parts[1], nil
}
