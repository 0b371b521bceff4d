// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package iitio is the serialization collaborator for package iitree: it
// packs an *iitree.Index to a versioned little-endian byte stream and
// reconstructs a bitwise identical index from one; see Save for the layout.
package iitio

import "fmt"

// MarshalError wraps a failure writing a named section of the index.
type MarshalError struct {
	Section string
	Err     error
}

func (e *MarshalError) Error() string {
	return fmt.Sprintf("iitio: marshal %s: %v", e.Section, e.Err)
}
func (e *MarshalError) Unwrap() error { return e.Err }

// UnmarshalError wraps a failure reading a named section of the index.
type UnmarshalError struct {
	Section string
	Err     error
}

func (e *UnmarshalError) Error() string {
	return fmt.Sprintf("iitio: unmarshal %s: %v", e.Section, e.Err)
}
func (e *UnmarshalError) Unwrap() error { return e.Err }

// InvalidFormatError reports a header that cannot possibly describe a
// valid index (bad magic, unsupported version, or a key-type tag that does
// not match the type parameter Load was instantiated with).
type InvalidFormatError struct {
	Reason string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("iitio: invalid format: %s", e.Reason)
}
