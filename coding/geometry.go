// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// NewGrid returns a grid for version v with all fixed patterns in
// place: finder patterns and their separators, alignment patterns,
// timing patterns, the dark module and the reserved format and
// version information areas.  All other modules are unassigned.
func NewGrid(v Version) *Grid {
	if !v.IsValid() {
		panic("qr: invalid version " + v.String())
	}
	g := newGrid(v)
	siz := g.Size

	// Finder patterns: centres 3 modules in from the corners.
	// Separators run along their inner edges.
	for _, p := range [3][2]int{{3, 3}, {3, siz - 4}, {siz - 4, 3}} {
		g.plotRings(p[0], p[1], 3, Finder)
		g.separator(p[0], p[1])
	}

	// Alignment patterns at all pairs of coordinates, unless the
	// centre is taken by a finder pattern.
	coords := v.AlignmentCoords()
	for _, row := range coords {
		for _, col := range coords {
			if g.At(row, col).Class == Unassigned {
				g.plotRings(row, col, 2, Alignment)
			}
		}
	}

	// Timing patterns between the separators, around alignment
	// patterns.
	for i := 8; i < siz-8; i++ {
		g.claim(6, i, Timing, i&1 == 0)
		g.claim(i, 6, Timing, i&1 == 0)
	}

	g.set(4*int(v)+9, 8, DarkModule, true)

	// Format information: row and column 8 next to the finder
	// patterns, minus timing and dark modules.
	for i := 0; i < 9; i++ {
		g.claim(8, i, Format, false)
		g.claim(i, 8, Format, false)
	}
	for i := siz - 8; i < siz; i++ {
		g.claim(8, i, Format, false)
		g.claim(i, 8, Format, false)
	}

	// Version information: 6x3 above the bottom left finder
	// pattern and 3x6 left of the top right one.
	if v >= 7 {
		for i := 0; i < 18; i++ {
			a, b := siz-11+i%3, i/3
			g.set(b, a, VersionInfo, false)
			g.set(a, b, VersionInfo, false)
		}
	}
	return g
}

// plotRings plots concentric square rings of radius r down to 0
// around row, col, alternately black and white from the outside in.
// The centre module is always black.
func (g *Grid) plotRings(row, col, r int, c Class) {
	g.set(row, col, c, true)
	for d := 1; d <= r; d++ {
		black := (r-d)&1 == 0
		for i := -d; i < d; i++ {
			g.set(row-d, col+i, c, black) // top, left to right
			g.set(row+i, col+d, c, black) // right, downwards
			g.set(row+d, col-i, c, black) // bottom, right to left
			g.set(row-i, col-d, c, black) // left, upwards
		}
	}
}

// separator plots the separator of the finder pattern centred at
// row, col: from the grid edge along the inner row to the corner,
// then along the inner column to the other grid edge.
func (g *Grid) separator(row, col int) {
	last := g.Size - 1
	dr, dc := 1, 1 // direction towards the grid centre
	if row > last/2 {
		dr = -1
	}
	if col > last/2 {
		dc = -1
	}
	er, ec := row+4*dr, col+4*dc // inner corner
	for c := col - 3*dc; c != ec; c += dc {
		g.set(er, c, Separator, false)
	}
	for r := er; r != row-4*dr; r -= dr {
		g.set(r, ec, Separator, false)
	}
}

// Geometry templates, built once per version.
var templates [MaxVersion + 1]struct {
	once sync.Once
	g    *Grid
}

// geometry returns a private copy of the template grid for v.
func geometry(v Version) *Grid {
	t := &templates[v]
	t.once.Do(func() { t.g = NewGrid(v) })
	return t.g.Clone()
}
