// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"math/bits"
)

const (
	formatPoly  = 0x537  // BCH(15,5) generator
	formatMask  = 0x5412 // XORed with format information
	versionPoly = 0x1f25 // BCH(18,6) generator
)

// bch returns data followed by the remainder of its division by poly.
func bch(data, poly uint32) uint32 {
	deg := bits.Len32(poly) - 1
	rem := data << deg
	for n := bits.Len32(rem); n > deg; n = bits.Len32(rem) {
		rem ^= poly << (n - 1 - deg)
	}
	return data<<deg | rem
}

// FormatBits returns the 15-bit format information for level l and
// mask m.
func FormatBits(l Level, m int) uint16 {
	if !l.IsValid() || uint(m) >= NumMasks {
		panic(fmt.Sprintf("qr: invalid format %s/%d", l, m))
	}
	return uint16(bch(uint32(l.Code()<<3|m), formatPoly) ^ formatMask)
}

// VersionBits returns the 18-bit version information for v.
// Only versions 7 and up carry version information.
func VersionBits(v Version) uint32 {
	if v < 7 || v > MaxVersion {
		panic("qr: no version information for version " + v.String())
	}
	return bch(uint32(v), versionPoly)
}

// WriteFormat writes both copies of the format information for
// level l and mask m.  The first copy runs along row 8 from the left
// edge and up column 8, most significant bit first; the second runs
// up column 8 from the bottom edge and along row 8 to the right edge.
func (g *Grid) WriteFormat(l Level, m int) {
	fb := FormatBits(l, m)
	siz := g.Size
	row, col, i := 8, 0, 14
	for col != siz {
		p := g.At(row, col)
		switch p.Class {
		case Format:
			p.Black = fb>>i&1 != 0
		case Timing:
			if row == 8 {
				col++
			} else {
				row--
			}
			continue
		case DarkModule:
			row, col = 8, siz-8
			continue
		default:
			panic(fmt.Sprintf("qr: version %s: %s module (%d, %d) "+
				"in format area", g.Version, p.Class, row, col))
		}
		if i--; i < 0 {
			i = 14
		}
		switch {
		case row == 8 && (col < 8 || col >= siz-8):
			col++
		case col == 8 && row > 0:
			row--
		case col == 8 && row == 0:
			row = siz - 1
		}
	}
}

// WriteVersion writes both copies of the version information, if the
// version has any.  Bit i goes to row i/3, column Size-11+i%3 and its
// transpose.
func (g *Grid) WriteVersion() {
	if g.Version < 7 {
		return
	}
	vb := VersionBits(g.Version)
	for i := 0; i < 18; i++ {
		a, b := g.Size-11+i%3, i/3
		black := vb>>i&1 != 0
		for _, p := range [2]*Module{g.At(b, a), g.At(a, b)} {
			if p.Class != VersionInfo {
				panic(fmt.Sprintf("qr: version %s: %s module (%d, %d) "+
					"in version area", g.Version, p.Class, p.Row, p.Col))
			}
			p.Black = black
		}
	}
}
