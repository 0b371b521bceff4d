// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mlin/iitj/iitree"
)

// pair is one (beg, end) record read from a delimited input file, still in
// text form -- the caller converts it to whatever key type was requested.
type pair struct {
	beg, end string
}

// readPairs reads whitespace/tab-delimited "beg end" records from r, one per
// line, skipping blank lines and lines starting with '#'.
func readPairs(r io.Reader) ([]pair, error) {
	var out []pair
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected at least 2 fields, got %d", lineNo, len(fields))
		}
		out = append(out, pair{beg: fields[0], end: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseInt64Pairs(pairs []pair) ([]int64, []int64, error) {
	beg := make([]int64, len(pairs))
	end := make([]int64, len(pairs))
	for i, p := range pairs {
		b, err := strconv.ParseInt(p.beg, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		e, err := strconv.ParseInt(p.end, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		beg[i], end[i] = b, e
	}
	return beg, end, nil
}

func parseFloat64Pairs(pairs []pair) ([]float64, []float64, error) {
	beg := make([]float64, len(pairs))
	end := make([]float64, len(pairs))
	for i, p := range pairs {
		b, err := strconv.ParseFloat(p.beg, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		e, err := strconv.ParseFloat(p.end, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", i, err)
		}
		beg[i], end[i] = b, e
	}
	return beg, end, nil
}

// buildIndex drives iitree.Builder generically once the caller has parsed
// its key type's beg/end slices.
func buildIndex[K iitree.Key](beg, end []K, fastScan bool) (*iitree.Index[K], error) {
	b := iitree.NewBuilder[K]()
	for i := range beg {
		if _, err := b.Add(beg[i], end[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	var opts []iitree.BuildOption
	if fastScan {
		opts = append(opts, iitree.WithFastScan())
	}
	return b.Build(opts...), nil
}

func validKeyType(s string) bool {
	switch s {
	case "int64", "float64":
		return true
	default:
		return false
	}
}
