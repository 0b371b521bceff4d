// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package textui holds the small locale-aware formatting helpers cmd/iitree
// uses for progress and summary output.
package textui

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Fprintf is like fmt.Fprintf, but goes through the
// golang.org/x/text/message.Printer extensions so that %d/%v on large
// counts get comma grouping.
func Fprintf(w io.Writer, key string, a ...any) (n int, err error) {
	return printer.Fprintf(w, key, a...)
}

// Sprintf is like fmt.Sprintf, but goes through the
// golang.org/x/text/message.Printer extensions.
func Sprintf(key string, a ...any) string {
	return printer.Sprintf(key, a...)
}

// Portion renders a fraction N/D as both a percentage and parenthetically
// as the exact fractional value, with comma-grouped integers.
//
// For example:
//
//	fmt.Sprint(Portion[int]{N: 1, D: 12345}) ⇒ "0% (1/12,345)"
type Portion[T constraints.Integer] struct {
	N, D T
}

var _ fmt.Stringer = Portion[int]{}

// String implements fmt.Stringer.
func (p Portion[T]) String() string {
	pct := float64(1)
	if p.D > 0 {
		pct = float64(p.N) / float64(p.D)
	}
	return printer.Sprintf("%v (%v/%v)", number.Percent(pct), uint64(p.N), uint64(p.D))
}
