// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/datawire/dlib/dgroup"
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"github.com/mlin/iitj/iitcache"
	"github.com/mlin/iitj/iitio"
	"github.com/mlin/iitj/iitree"
	"github.com/mlin/iitj/internal/textui"
)

func newQueryCommand(verbosity *logLevelFlag) *cobra.Command {
	var keyType string
	var queriesPath string
	var workers int

	cmd := &cobra.Command{
		Use:   "query INDEX",
		Short: "Run a batch of overlap queries against a serialized interval index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validKeyType(keyType) {
				return fmt.Errorf("unrecognized --key-type %q", keyType)
			}
			ctx := cmdCtx(cmd, verbosity.Level)

			idxFile, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer idxFile.Close()

			qFile, err := os.Open(queriesPath)
			if err != nil {
				return err
			}
			defer qFile.Close()
			queries, err := readPairs(qFile)
			if err != nil {
				return err
			}

			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			switch keyType {
			case "int64":
				idx, err := iitio.Load[int64](idxFile)
				if err != nil {
					return err
				}
				beg, end, err := parseInt64Pairs(queries)
				if err != nil {
					return err
				}
				return runQueries(ctx, idx, beg, end, workers, out)
			case "float64":
				idx, err := iitio.Load[float64](idxFile)
				if err != nil {
					return err
				}
				beg, end, err := parseFloat64Pairs(queries)
				if err != nil {
					return err
				}
				return runQueries(ctx, idx, beg, end, workers, out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyType, "key-type", "int64", "key type the index was built with (int64|float64)")
	cmd.Flags().StringVar(&queriesPath, "queries", "", "path to a delimited file of (beg, end) query records")
	if err := cmd.MarkFlagRequired("queries"); err != nil {
		panic(err)
	}
	cmd.Flags().IntVar(&workers, "workers", 1, "number of queries to run concurrently")
	return cmd
}

// runQueries fans the query batch out across workers concurrent goroutines,
// bounded by a semaphore, the same pattern protocompile's executor uses to
// cap parallelism below a fixed weight. Each worker pulls its scratch
// buffer from a shared HitBufferPool and walks positions directly via
// QueryOverlapPositions/HitAt, rather than letting QueryOverlap allocate a
// fresh []Hit[K] per query.
func runQueries[K iitree.Key](ctx context.Context, idx *iitree.Index[K], beg, end []K, workers int, out *bufio.Writer) error {
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var outMu sync.Mutex
	var pool iitcache.HitBufferPool
	var hitQueries int64
	grp := dgroup.NewGroup(ctx, dgroup.GroupConfig{})

	for i := range beg {
		i := i
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}
		grp.Go(fmt.Sprintf("query-%d", i), func(ctx context.Context) error {
			defer sem.Release(1)
			positions := idx.QueryOverlapPositions(beg[i], end[i], pool.Get())
			if len(positions) > 0 {
				atomic.AddInt64(&hitQueries, 1)
			}
			outMu.Lock()
			for _, pos := range positions {
				h := idx.HitAt(pos)
				fmt.Fprintf(out, "%d\t%d\t%v\t%v\n", i, h.ID, h.Beg, h.End)
			}
			outMu.Unlock()
			pool.Put(positions)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	dlog.Infof(ctx, "%s", textui.Sprintf("%v queries had at least one overlap", textui.Portion[int]{N: int(hitQueries), D: len(beg)}))
	return nil
}
