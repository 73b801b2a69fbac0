// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Penalty weights.
const (
	penaltyRun     = 3  // run of 5, plus 1 per further module
	penaltyBox     = 3  // 2x2 box of one colour
	penaltyFinder  = 40 // finder-like pattern
	penaltyBalance = 10 // per 5% deviation from 50% dark
)

// Finder-like patterns: 1:1:3:1:1 dark/light with four light modules
// on either side, read left to right or top to bottom.
const (
	finderLeft   = 0x5d0 // 10111010000
	finderRight  = 0x05d // 00001011101
	finderWidth  = 11
	finderWindow = 1<<finderWidth - 1
)

// Neighbors is a set of directions.
type Neighbors uint8

// Directions.
const (
	Up Neighbors = 1 << iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

var directions = [8]struct {
	n      Neighbors
	dr, dc int
}{
	{Up, -1, 0}, {UpRight, -1, 1}, {Right, 0, 1}, {DownRight, 1, 1},
	{Down, 1, 0}, {DownLeft, 1, -1}, {Left, 0, -1}, {UpLeft, -1, -1},
}

// Box reports whether n completes a 2x2 box extending right and down.
func (n Neighbors) Box() bool {
	const box = Right | DownRight | Down
	return n&box == box
}

// Same returns the set of neighbours of the module at row, col that
// lie inside the grid and have its colour.
func (g *Grid) Same(row, col int) Neighbors {
	var n Neighbors
	black := g.Black(row, col)
	for _, d := range directions {
		r, c := row+d.dr, col+d.dc
		if uint(r) < uint(g.Size) && uint(c) < uint(g.Size) &&
			g.Modules[r*g.Size+c].Black == black {
			n |= d.n
		}
	}
	return n
}

// line returns the colour of module i of row or column k.
func (g *Grid) line(k, i int, vertical bool) bool {
	if vertical {
		return g.Modules[i*g.Size+k].Black
	}
	return g.Modules[k*g.Size+i].Black
}

// RunPenalty scores runs of 5 or more modules of one colour in each
// row and column: 3 for the first 5, 1 for each further module.
func (g *Grid) RunPenalty() int {
	p := 0
	for _, vertical := range [2]bool{false, true} {
		for k := 0; k < g.Size; k++ {
			run, last := 0, false
			for i := 0; i < g.Size; i++ {
				b := g.line(k, i, vertical)
				if i > 0 && b == last {
					run++
					continue
				}
				p += runPenalty(run)
				run, last = 1, b
			}
			p += runPenalty(run)
		}
	}
	return p
}

// BoxPenalty scores each 2x2 box of one colour, overlapping boxes
// counted separately.
func (g *Grid) BoxPenalty() int {
	p := 0
	for row := 0; row < g.Size-1; row++ {
		for col := 0; col < g.Size-1; col++ {
			if g.Same(row, col).Box() {
				p += penaltyBox
			}
		}
	}
	return p
}

// FinderPenalty scores each occurrence of a finder-like pattern in
// a row or column.  Only windows lying wholly inside the grid count.
func (g *Grid) FinderPenalty() int {
	p := 0
	for _, vertical := range [2]bool{false, true} {
		for k := 0; k < g.Size; k++ {
			var w uint
			for i := 0; i < g.Size; i++ {
				w = w << 1 & finderWindow
				if g.line(k, i, vertical) {
					w |= 1
				}
				if i >= finderWidth-1 && (w == finderLeft || w == finderRight) {
					p += penaltyFinder
				}
			}
		}
	}
	return p
}

// BalancePenalty scores the deviation of the proportion of dark
// modules from one half: 10 for every 5% step between the nearest
// multiple of 5% and 50%.
func (g *Grid) BalancePenalty() int {
	dark := 0
	for i := range g.Modules {
		if g.Modules[i].Black {
			dark++
		}
	}
	total := len(g.Modules)
	pct := (dark*200 + total) / (total * 2) // rounded
	prev := pct - pct%5
	next := prev + 5
	return penaltyBalance * min(abs(prev-50)/5, abs(next-50)/5)
}

// Penalty returns the total penalty of g, lower being better.
func (g *Grid) Penalty() int {
	return g.RunPenalty() + g.BoxPenalty() + g.FinderPenalty() +
		g.BalancePenalty()
}

func runPenalty(n int) int {
	if n < 5 {
		return 0
	}
	return penaltyRun + n - 5
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
