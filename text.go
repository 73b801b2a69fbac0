// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// String returns the code drawn with UTF-8 block elements, two
// modules per character vertically, for display as light text on
// a dark terminal.  With c.Reverse set, the blocks are dark modules.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	blocks := [4]string{"█", "▀", "▄", " "}
	if c.Reverse {
		blocks = [4]string{" ", "▄", "▀", "█"}
	}
	bord := c.Border
	var b strings.Builder
	b.Grow((c.Size + 2*bord) * ((c.Size+1)/2 + bord) * 3)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if c.Black(x, y) {
				n = 2
			}
			bottom := c.Black(x, y+1)
			if y+1 == c.Size+bord {
				bottom = !c.Reverse // background below odd rows
			}
			if bottom {
				n++
			}
			b.WriteString(blocks[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeASCII writes the code to w drawn with two "#" characters per
// dark module and two spaces per light one.
func (c *Code) EncodeASCII(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	dark, light := byte('#'), byte(' ')
	if c.Reverse {
		dark, light = light, dark
	}
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			p := light
			if c.Black(x, y) {
				p = dark
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
