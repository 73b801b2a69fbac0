// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette and
// c.ShowClasses, as other PNM formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	scale := c.Scale
	length := c.pixels()
	if length > maxPixels {
		return ErrLargeImage
	}
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	var white byte
	if c.Reverse {
		white = 0xff
	}
	row := make([]byte, (length+7)/8)
	for y := -c.Border; y < c.Size+c.Border; y++ {
		pbmRow(row, c, y, white)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes row y of the code with border in PBM format.
// Bits past the end of the row are zero.
func pbmRow(row []byte, c *Code, y int, white byte) {
	for i := range row {
		row[i] = white
	}
	j := 0
	for x := -c.Border; x < c.Size+c.Border; x++ {
		if c.Black(x, y) {
			for i := 0; i < c.Scale; i, j = i+1, j+1 {
				row[j>>3] ^= 0x80 >> (j & 7)
			}
		} else {
			j += c.Scale
		}
	}
	if n := j & 7; n != 0 {
		row[len(row)-1] &= 0xff << (8 - n)
	}
}
