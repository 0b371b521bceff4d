// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package slicesx provides the handful of ordered-slice helpers the
// augmentation builder needs when combining maxEnd values.
package slicesx

import (
	"golang.org/x/exp/constraints"
)

// Max returns the greater of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
