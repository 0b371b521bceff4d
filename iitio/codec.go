// Copyright (C) 2024  mlin
//
// SPDX-License-Identifier: GPL-2.0-or-later

package iitio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"reflect"

	"golang.org/x/exp/constraints"

	"github.com/mlin/iitj/iitree"
)

// Numeric is the key-type constraint iitio can persist: a fixed-width
// integer or floating-point type, which encoding/binary can read and write
// directly without per-type bespoke code (iitree.Key is wider, and also
// permits string keys, which have no fixed-width wire representation).
type Numeric interface {
	constraints.Integer | constraints.Float
}

const (
	magic          = "IIT1"
	formatVersion  = uint16(1)
	boolTrue  byte = 1
	boolFalse byte = 0
)

func keyTag[K Numeric]() string {
	var zero K
	return reflect.TypeOf(zero).String()
}

// Save writes idx to w in a versioned little-endian layout: a header (magic,
// format version, key-type tag length and tag, N, perm-present flag,
// fast-scan flag) followed by the length-prefixed forest descriptor idx[],
// the length-prefixed sparse offsets (fast-scan indexes only), the
// length-prefixed maxEnd[] (in whichever augmentation layout idx was built
// with), then beg[], end[], and perm[] if present.
func Save[K Numeric](w io.Writer, idx *iitree.Index[K]) error {
	raw := idx.Raw()

	if err := writeSection(w, "magic", []byte(magic)); err != nil {
		return err
	}
	if err := writeSection(w, "version", formatVersion); err != nil {
		return err
	}
	tag := keyTag[K]()
	if err := writeSection(w, "keyTagLen", uint16(len(tag))); err != nil {
		return err
	}
	if err := writeSection(w, "keyTag", []byte(tag)); err != nil {
		return err
	}
	if err := writeSection(w, "n", uint64(raw.N)); err != nil {
		return err
	}
	permPresent := boolFalse
	if raw.Perm != nil {
		permPresent = boolTrue
	}
	if err := writeSection(w, "permPresent", permPresent); err != nil {
		return err
	}
	fastScan := boolFalse
	if raw.FastScan {
		fastScan = boolTrue
	}
	if err := writeSection(w, "fastScan", fastScan); err != nil {
		return err
	}

	if err := writeSection(w, "forestIdxLen", uint32(len(raw.ForestIdx))); err != nil {
		return err
	}
	if err := writeSection(w, "forestIdx", raw.ForestIdx); err != nil {
		return err
	}
	if raw.FastScan {
		if err := writeSection(w, "sparseIdxLen", uint32(len(raw.SparseIdx))); err != nil {
			return err
		}
		if err := writeSection(w, "sparseIdx", raw.SparseIdx); err != nil {
			return err
		}
	}

	if err := writeSection(w, "maxEndLen", uint64(len(raw.MaxEnd))); err != nil {
		return err
	}
	if err := writeSection(w, "maxEnd", raw.MaxEnd); err != nil {
		return err
	}
	if err := writeSection(w, "beg", raw.Beg); err != nil {
		return err
	}
	if err := writeSection(w, "end", raw.End); err != nil {
		return err
	}
	if raw.Perm != nil {
		if err := writeSection(w, "perm", raw.Perm); err != nil {
			return err
		}
	}
	return nil
}

// Load reconstructs an *iitree.Index[K] from the stream Save wrote,
// verifying that the stored key-type tag matches K.
func Load[K Numeric](r io.Reader) (*iitree.Index[K], error) {
	var magicBuf [4]byte
	if err := readSection(r, "magic", magicBuf[:]); err != nil {
		return nil, err
	}
	if string(magicBuf[:]) != magic {
		return nil, &InvalidFormatError{Reason: fmt.Sprintf("bad magic %q", magicBuf)}
	}

	var version uint16
	if err := readSection(r, "version", &version); err != nil {
		return nil, err
	}
	if version != formatVersion {
		return nil, &InvalidFormatError{Reason: fmt.Sprintf("unsupported format version %d", version)}
	}

	var tagLen uint16
	if err := readSection(r, "keyTagLen", &tagLen); err != nil {
		return nil, err
	}
	tagBuf := make([]byte, tagLen)
	if err := readSection(r, "keyTag", tagBuf); err != nil {
		return nil, err
	}
	if want := keyTag[K](); string(tagBuf) != want {
		return nil, &InvalidFormatError{Reason: fmt.Sprintf("key type tag %q does not match requested type %q", tagBuf, want)}
	}

	var n64 uint64
	if err := readSection(r, "n", &n64); err != nil {
		return nil, err
	}
	n := int(n64)

	var permPresent, fastScanFlag byte
	if err := readSection(r, "permPresent", &permPresent); err != nil {
		return nil, err
	}
	if err := readSection(r, "fastScan", &fastScanFlag); err != nil {
		return nil, err
	}

	var forestLen uint32
	if err := readSection(r, "forestIdxLen", &forestLen); err != nil {
		return nil, err
	}
	forestIdx := make([]int32, forestLen)
	if err := readSection(r, "forestIdx", forestIdx); err != nil {
		return nil, err
	}

	var sparseIdx []int32
	fastScan := fastScanFlag == boolTrue
	if fastScan {
		var sparseLen uint32
		if err := readSection(r, "sparseIdxLen", &sparseLen); err != nil {
			return nil, err
		}
		sparseIdx = make([]int32, sparseLen)
		if err := readSection(r, "sparseIdx", sparseIdx); err != nil {
			return nil, err
		}
	}

	var maxEndLen uint64
	if err := readSection(r, "maxEndLen", &maxEndLen); err != nil {
		return nil, err
	}
	maxEnd := make([]K, maxEndLen)
	if err := readSection(r, "maxEnd", maxEnd); err != nil {
		return nil, err
	}

	beg := make([]K, n)
	if err := readSection(r, "beg", beg); err != nil {
		return nil, err
	}
	end := make([]K, n)
	if err := readSection(r, "end", end); err != nil {
		return nil, err
	}

	var perm []int32
	if permPresent == boolTrue {
		perm = make([]int32, n)
		if err := readSection(r, "perm", perm); err != nil {
			return nil, err
		}
	}

	return iitree.FromRaw(iitree.RawIndex[K]{
		N:         n,
		Beg:       beg,
		End:       end,
		MaxEnd:    maxEnd,
		ForestIdx: forestIdx,
		SparseIdx: sparseIdx,
		Perm:      perm,
		FastScan:  fastScan,
	}), nil
}

// Bytes is a convenience that serializes idx to an in-memory buffer, for
// callers (such as package iitcache) that treat the payload as an opaque
// blob rather than streaming it to a file.
func Bytes[K Numeric](idx *iitree.Index[K]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(&buf, idx); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(w io.Writer, name string, v any) error {
	if err := binary.Write(w, binary.LittleEndian, v); err != nil {
		return &MarshalError{Section: name, Err: err}
	}
	return nil
}

func readSection(r io.Reader, name string, v any) error {
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return &UnmarshalError{Section: name, Err: err}
	}
	return nil
}
