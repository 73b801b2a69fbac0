// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"
)

// EncodeEPS writes an Encapsulated PostScript image displaying the
// code to w, with c.Scale points per module.  Colours are those of
// Image: runs of equal colour along a row are filled as one
// rectangle.
func (c *Code) EncodeEPS(w io.Writer) error {
	if !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	pts := c.pixels()
	fmt.Fprintf(b, `%%!PS-Adobe-3.0 EPSF-3.0
%%%%Creator: github.com/unixdj/qrgrid
%%%%Title: QR code version %d-%s
%%%%BoundingBox: 0 0 %d %d
%%%%EndComments
/c { setrgbcolor } bind def
/f { 1 rectfill } bind def
gsave
0 %d translate
%d dup neg scale
`, c.Version, c.Level, pts, pts, pts, c.Scale)
	bord := c.Border
	pix := c.Size + 2*bord
	var last color.Color
	for y := 0; y < pix; y++ {
		for x := 0; x < pix; {
			col := c.color(x-bord, y-bord)
			n := 1
			for x+n < pix && c.color(x+n-bord, y-bord) == col {
				n++
			}
			if col != last {
				r, g, bl, _ := col.RGBA()
				fmt.Fprintln(b, psColor(r), psColor(g), psColor(bl), "c")
				last = col
			}
			fmt.Fprintln(b, x, y, n, "f")
			x += n
		}
	}
	b.WriteString("grestore\n%%EOF\n")
	return b.Flush()
}

// psColor formats a 16-bit colour component as a PostScript number
// between 0 and 1.
func psColor(v uint32) string {
	return strconv.FormatFloat(float64(v)/0xffff, 'g', 3, 64)
}
