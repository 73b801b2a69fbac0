// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
)

// A Class classifies a module by the structure it belongs to.
type Class uint8

// Module classes.
const (
	Unassigned  Class = iota // not claimed yet
	Finder                   // finder pattern
	Separator                // white border around a finder pattern
	Timing                   // timing pattern
	Alignment                // alignment pattern
	Format                   // format information
	DarkModule               // the fixed black module
	VersionInfo              // version information
	Message                  // data and check codewords
	NumClasses
)

var classNames = [NumClasses]string{
	"unassigned", "finder", "separator", "timing", "alignment",
	"format", "dark-module", "version-info", "message",
}

func (c Class) String() string {
	if c < NumClasses {
		return classNames[c]
	}
	return strconv.Itoa(int(c))
}

// A Module is a cell of the grid.  Black is the QR bit.
type Module struct {
	Row, Col int
	Class    Class
	Black    bool
}

// A Grid is a square grid of modules stored in row-major order.
// A Grid is owned by a single encode; it is not safe for concurrent
// use.
type Grid struct {
	Version Version
	Size    int      // modules on a side
	Modules []Module // Size*Size modules
}

// newGrid returns a grid of unassigned modules for version v.
func newGrid(v Version) *Grid {
	siz := v.Size()
	g := &Grid{Version: v, Size: siz, Modules: make([]Module, siz*siz)}
	for i := range g.Modules {
		g.Modules[i].Row, g.Modules[i].Col = i/siz, i%siz
	}
	return g
}

// index returns the index of the module at row, col.  Coordinates
// outside the grid are a programming error.
func (g *Grid) index(row, col int) int {
	if uint(row) >= uint(g.Size) || uint(col) >= uint(g.Size) {
		panic(fmt.Sprintf("qr: version %s: module (%d, %d) outside "+
			"%dx%d grid", g.Version, row, col, g.Size, g.Size))
	}
	return row*g.Size + col
}

// At returns the module at row, col.
func (g *Grid) At(row, col int) *Module {
	return &g.Modules[g.index(row, col)]
}

// Black reports whether the module at row, col is black.
func (g *Grid) Black(row, col int) bool {
	return g.Modules[g.index(row, col)].Black
}

// set classifies the module at row, col.
func (g *Grid) set(row, col int, c Class, black bool) {
	m := &g.Modules[g.index(row, col)]
	m.Class, m.Black = c, black
}

// claim classifies the module at row, col if it is unassigned and
// reports whether it was.
func (g *Grid) claim(row, col int, c Class, black bool) bool {
	m := &g.Modules[g.index(row, col)]
	if m.Class != Unassigned {
		return false
	}
	m.Class, m.Black = c, black
	return true
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.Modules = append([]Module(nil), g.Modules...)
	return &c
}

// Count returns the number of modules of class c.
func (g *Grid) Count(c Class) int {
	n := 0
	for i := range g.Modules {
		if g.Modules[i].Class == c {
			n++
		}
	}
	return n
}

// Classes returns the class of every module in row-major order.
func (g *Grid) Classes() []Class {
	cl := make([]Class, len(g.Modules))
	for i := range g.Modules {
		cl[i] = g.Modules[i].Class
	}
	return cl
}
