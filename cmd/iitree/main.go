// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Command iitree builds, queries, validates, and lists implicit interval
// indexes from the command line.
package main

import (
	"context"
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mlin/iitj/internal/textui"
)

type logLevelFlag struct {
	logrus.Level
}

func (lvl *logLevelFlag) Type() string { return "loglevel" }
func (lvl *logLevelFlag) Set(str string) error {
	var err error
	lvl.Level, err = logrus.ParseLevel(str)
	return err
}

var _ pflag.Value = (*logLevelFlag)(nil)

// cmdCtx threads a logger-bearing context into each subcommand's RunE,
// mirroring how the per-filesystem context gets built up before dispatch.
func cmdCtx(cmd *cobra.Command, lvl logrus.Level) context.Context {
	logger := logrus.New()
	logger.SetLevel(lvl)
	return dlog.WithLogger(cmd.Context(), dlog.WrapLogrus(logger))
}

func main() {
	verbosity := logLevelFlag{Level: logrus.InfoLevel}

	argparser := &cobra.Command{
		Use:           "iitree {[flags]|SUBCOMMAND}",
		Short:         "Build, query, and validate implicit interval indexes",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	argparser.PersistentFlags().Var(&verbosity, "verbosity", "set the verbosity (panic|fatal|error|warn|info|debug|trace)")

	argparser.AddCommand(newBuildCommand(&verbosity))
	argparser.AddCommand(newQueryCommand(&verbosity))
	argparser.AddCommand(newValidateCommand(&verbosity))
	argparser.AddCommand(newListCommand(&verbosity))

	if err := argparser.ExecuteContext(context.Background()); err != nil {
		textui.Fprintf(os.Stderr, "%v: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
