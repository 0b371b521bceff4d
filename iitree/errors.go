// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitree

import "fmt"

// InvalidIntervalError is returned by Builder.Add when beg > end.
type InvalidIntervalError struct {
	Beg, End any
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("iitree: invalid interval: beg (%v) > end (%v)", e.Beg, e.End)
}

// CapacityError is returned by Builder.Add when adding the interval would
// push the builder past the maximum number of intervals a single Index can
// address.
type CapacityError struct {
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("iitree: builder capacity exceeded (max %d intervals)", e.Max)
}

// InvariantError is returned by Index.Validate when a debug self-check
// fails. It indicates a bug in this package, not misuse by a caller.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("iitree: invariant violation: %s", e.Reason)
}
