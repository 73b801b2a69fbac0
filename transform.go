// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

// Flip mirrors the code horizontally.
func (c *Code) Flip() {
	c.remap(func(x, y int) (int, int) { return c.Size - 1 - x, y })
}

// Rotate rotates the code 90° counterclockwise.
func (c *Code) Rotate() {
	c.remap(func(x, y int) (int, int) { return c.Size - 1 - y, x })
}

// remap rebuilds the modules of c, taking the module at (x, y)
// from src(x, y).
func (c *Code) remap(src func(x, y int) (int, int)) {
	siz := c.Size
	b := make([]bool, len(c.Bitmap))
	var cl []Class
	if c.Classes != nil {
		cl = make([]Class, len(c.Classes))
	}
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			sx, sy := src(x, y)
			i, j := y*siz+x, sy*siz+sx
			b[i] = c.Bitmap[j]
			if cl != nil {
				cl[i] = c.Classes[j]
			}
		}
	}
	c.Bitmap, c.Classes = b, cl
}
