// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strconv"
	"sync"
)

// NumMasks is the number of QR mask patterns.
const NumMasks = 8

// Mask conditions by mask number; a module is flipped where the
// condition holds.
var masks = [NumMasks]func(row, col int) bool{
	func(r, c int) bool { return (r+c)%2 == 0 },
	func(r, c int) bool { return r%2 == 0 },
	func(r, c int) bool { return c%3 == 0 },
	func(r, c int) bool { return (r+c)%3 == 0 },
	func(r, c int) bool { return (r/2+c/3)%2 == 0 },
	func(r, c int) bool { return r*c%2+r*c%3 == 0 },
	func(r, c int) bool { return (r*c%2+r*c%3)%2 == 0 },
	func(r, c int) bool { return ((r+c)%2+r*c%3)%2 == 0 },
}

// MaskBit reports whether mask m flips the module at row, col.
func MaskBit(m, row, col int) bool {
	return masks[m](row, col)
}

// ApplyMask flips the colour of Message modules where mask m is set.
// Applying the same mask twice restores the grid.
func (g *Grid) ApplyMask(m int) {
	if uint(m) >= NumMasks {
		panic("qr: invalid mask " + strconv.Itoa(m))
	}
	f := masks[m]
	for i := range g.Modules {
		if p := &g.Modules[i]; p.Class == Message && f(p.Row, p.Col) {
			p.Black = !p.Black
		}
	}
}

// Penalties returns the penalty of g with each mask applied.
// The candidates are scored concurrently on private copies.
func (g *Grid) Penalties() [NumMasks]int {
	var p [NumMasks]int
	var wg sync.WaitGroup
	wg.Add(NumMasks)
	for m := range p {
		c := g.Clone()
		go func(m int) {
			defer wg.Done()
			c.ApplyMask(m)
			p[m] = c.Penalty()
		}(m)
	}
	wg.Wait()
	return p
}

// SelectMask returns the mask giving the smallest penalty and the
// penalty.  Of equal penalties the lowest mask wins.  g is not
// modified.
func (g *Grid) SelectMask() (mask, penalty int) {
	mask = -1
	for m, p := range g.Penalties() {
		if mask < 0 || p < penalty {
			mask, penalty = m, p
		}
	}
	return mask, penalty
}
