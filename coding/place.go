// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// BitStream reads bits from the underlying buffer.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading from b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Bytes returns the data underlying s.
func (s *BitStream) Bytes() []byte { return s.b }

// Len returns the number of bits read.
func (s *BitStream) Len() int { return s.pos }

// Next returns the next bit from s as 0 or 1.
// Past end of buffer Next returns 0.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
	}
	s.pos++
	return b
}

// zigzag calls f for each module in placement order: starting at
// the bottom right corner, upwards and downwards in turn through
// two column wide strips, right module first, skipping the vertical
// timing pattern.
func (g *Grid) zigzag(f func(row, col int)) {
	siz := g.Size
	for x := siz - 1; x >= 1; x -= 2 {
		if x == 6 {
			x = 5
		}
		up := (x+1)&2 == 0
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			f(y, x)
			f(y, x-1)
		}
	}
}

// Place writes codewords and remainder bits into the unassigned
// modules in zigzag order, classifying them as Message.  The number
// of unassigned modules must match exactly.
func (g *Grid) Place(codewords []byte) {
	nbit := len(codewords)*8 + g.Version.RemainderBits()
	if n := g.Count(Unassigned); n != nbit {
		panic(fmt.Sprintf("qr: version %s: %d bits for %d modules",
			g.Version, nbit, n))
	}
	s := NewBitStream(codewords)
	g.zigzag(func(row, col int) {
		m := &g.Modules[g.index(row, col)]
		if m.Class == Unassigned {
			m.Class, m.Black = Message, s.Next() != 0
		}
	})
	if s.Len() != nbit {
		panic("qr: internal error")
	}
}
