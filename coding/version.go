// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the capacity
// table, codeword sequencing, Reed-Solomon blocks, the module grid and
// its fixed patterns, data placement, masking and format information.
package coding // import "github.com/unixdj/qrgrid/coding"

import (
	"errors"
	"strconv"

	"rsc.io/qr/gf256"
)

var (
	ErrLevel   = errors.New("qr: invalid level")
	ErrVersion = errors.New("qr: invalid version")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is a QR version.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string {
	if l.IsValid() {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is a QR error correction level.
func (l Level) IsValid() bool { return L <= l && l <= H }

// Code returns the two bit level indicator used in format
// information: L=01, M=00, Q=11, H=10.
func (l Level) Code() int { return int(l) ^ 1 }

// A version describes metadata associated with a version.
type version struct {
	bytes     int // total codewords
	remainder int // remainder bits
	level     [4]level
}

type level struct {
	nblock int // number of blocks
	check  int // check bytes per block
}

// Version table.
var vtab = [MaxVersion + 1]version{
	{},
	{26, 0, [4]level{{1, 7}, {1, 10}, {1, 13}, {1, 17}}}, // 1
	{44, 7, [4]level{{1, 10}, {1, 16}, {1, 22}, {1, 28}}},
	{70, 7, [4]level{{1, 15}, {1, 26}, {2, 18}, {2, 22}}},
	{100, 7, [4]level{{1, 20}, {2, 18}, {2, 26}, {4, 16}}},
	{134, 7, [4]level{{1, 26}, {2, 24}, {4, 18}, {4, 22}}}, // 5
	{172, 7, [4]level{{2, 18}, {4, 16}, {4, 24}, {4, 28}}},
	{196, 0, [4]level{{2, 20}, {4, 18}, {6, 18}, {5, 26}}},
	{242, 0, [4]level{{2, 24}, {4, 22}, {6, 22}, {6, 26}}},
	{292, 0, [4]level{{2, 30}, {5, 22}, {8, 20}, {8, 24}}},
	{346, 0, [4]level{{4, 18}, {5, 26}, {8, 24}, {8, 28}}}, // 10
	{404, 0, [4]level{{4, 20}, {5, 30}, {8, 28}, {11, 24}}},
	{466, 0, [4]level{{4, 24}, {8, 22}, {10, 26}, {11, 28}}},
	{532, 0, [4]level{{4, 26}, {9, 22}, {12, 24}, {16, 22}}},
	{581, 3, [4]level{{4, 30}, {9, 24}, {16, 20}, {16, 24}}},
	{655, 3, [4]level{{6, 22}, {10, 24}, {12, 30}, {18, 24}}}, // 15
	{733, 3, [4]level{{6, 24}, {10, 28}, {17, 24}, {16, 30}}},
	{815, 3, [4]level{{6, 28}, {11, 28}, {16, 28}, {19, 28}}},
	{901, 3, [4]level{{6, 30}, {13, 26}, {18, 28}, {21, 28}}},
	{991, 3, [4]level{{7, 28}, {14, 26}, {21, 26}, {25, 26}}},
	{1085, 3, [4]level{{8, 28}, {16, 26}, {20, 30}, {25, 28}}}, // 20
	{1156, 4, [4]level{{8, 28}, {17, 26}, {23, 28}, {25, 30}}},
	{1258, 4, [4]level{{9, 28}, {17, 28}, {23, 30}, {34, 24}}},
	{1364, 4, [4]level{{9, 30}, {18, 28}, {25, 30}, {30, 30}}},
	{1474, 4, [4]level{{10, 30}, {20, 28}, {27, 30}, {32, 30}}},
	{1588, 4, [4]level{{12, 26}, {21, 28}, {29, 30}, {35, 30}}}, // 25
	{1706, 4, [4]level{{12, 28}, {23, 28}, {34, 28}, {37, 30}}},
	{1828, 4, [4]level{{12, 30}, {25, 28}, {34, 30}, {40, 30}}},
	{1921, 3, [4]level{{13, 30}, {26, 28}, {35, 30}, {42, 30}}},
	{2051, 3, [4]level{{14, 30}, {28, 28}, {38, 30}, {45, 30}}},
	{2185, 3, [4]level{{15, 30}, {29, 28}, {40, 30}, {48, 30}}}, // 30
	{2323, 3, [4]level{{16, 30}, {31, 28}, {43, 30}, {51, 30}}},
	{2465, 3, [4]level{{17, 30}, {33, 28}, {45, 30}, {54, 30}}},
	{2611, 3, [4]level{{18, 30}, {35, 28}, {48, 30}, {57, 30}}},
	{2761, 3, [4]level{{19, 30}, {37, 28}, {51, 30}, {60, 30}}},
	{2876, 0, [4]level{{19, 30}, {38, 28}, {53, 30}, {63, 30}}}, // 35
	{3034, 0, [4]level{{20, 30}, {40, 28}, {56, 30}, {66, 30}}},
	{3196, 0, [4]level{{21, 30}, {43, 28}, {59, 30}, {70, 30}}},
	{3362, 0, [4]level{{22, 30}, {45, 28}, {62, 30}, {74, 30}}},
	{3532, 0, [4]level{{24, 30}, {47, 28}, {65, 30}, {77, 30}}},
	{3706, 0, [4]level{{25, 30}, {49, 28}, {68, 30}, {81, 30}}}, // 40
}

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// TotalBytes returns the total number of codewords, data and check.
func (v Version) TotalBytes() int { return vtab[v].bytes }

// ECBytes returns the number of error correction codewords
// at level l.
func (v Version) ECBytes(l Level) int {
	lev := vtab[v].level[l]
	return lev.nblock * lev.check
}

// DataBytes returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	return vtab[v].bytes - v.ECBytes(l)
}

// Blocks returns the number of Reed-Solomon blocks and the number
// of check bytes in each at level l.
func (v Version) Blocks(l Level) (nblock, check int) {
	lev := vtab[v].level[l]
	return lev.nblock, lev.check
}

// RemainderBits returns the number of zero bits placed after the
// codewords to fill the symbol.
func (v Version) RemainderBits() int { return vtab[v].remainder }

// CountLength returns the length in bits of the byte mode character
// count field.
func (v Version) CountLength() int {
	if v <= 9 {
		return 8
	}
	return 16
}

// AlignmentCoords returns the row and column coordinates of
// alignment pattern centres, in ascending order.  All pairs of
// coordinates are candidate centres.  Version 1 has none.
func (v Version) AlignmentCoords() []int {
	if v < 2 {
		return nil
	}
	// One more coordinate every 7 versions.  The coordinates run
	// backwards from siz-7 in equal even steps, the first one is
	// always 6 and the gap after it takes up the slack.
	n := int(v)/7 + 2
	step := 26
	if v != 32 {
		step = (int(v)*4 + n*2 + 1) / (n*2 - 2) * 2
	}
	c := make([]int, n)
	c[0] = 6
	for i, pos := n-1, v.Size()-7; i > 0; i, pos = i-1, pos-step {
		c[i] = pos
	}
	return c
}
