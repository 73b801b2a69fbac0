// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
)

// ClassPalette holds the light and dark colours of each module class
// for images with ShowClasses set.
var ClassPalette = [NumClasses][2]color.RGBA{
	Unassigned:  {{0xff, 0xff, 0x00, 0xff}, {0x80, 0x80, 0x00, 0xff}},
	Finder:      {{0xff, 0xc8, 0xa0, 0xff}, {0xff, 0x78, 0x10, 0xff}},
	Separator:   {{0xf0, 0xd8, 0xc8, 0xff}, {0xcd, 0x78, 0x10, 0xff}},
	Timing:      {{0xe0, 0xe8, 0xc8, 0xff}, {0x9b, 0x78, 0x10, 0xff}},
	Alignment:   {{0xc8, 0xe8, 0xc0, 0xff}, {0x37, 0x78, 0x10, 0xff}},
	Format:      {{0xc0, 0xe0, 0xff, 0xff}, {0x10, 0x50, 0xc0, 0xff}},
	DarkModule:  {{0xff, 0xe8, 0xa0, 0xff}, {0xff, 0xaf, 0x10, 0xff}},
	VersionInfo: {{0xe8, 0xd0, 0xff, 0xff}, {0x70, 0x30, 0xc0, 0xff}},
	Message:     {{0xff, 0xff, 0xff, 0xff}, {0x00, 0x00, 0x00, 0xff}},
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

// Image returns an Image displaying the code.
// A Scale below 1 is treated as 1.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

func (c *codeImage) Bounds() image.Rectangle {
	d := c.pixels()
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	scale := c.scale()
	return c.color(x/scale-c.Border, y/scale-c.Border)
}

func (c *codeImage) ColorModel() color.Model {
	if c.ShowClasses || c.Palette != nil {
		return color.RGBAModel
	}
	return color.GrayModel
}

// color returns the colour of the module at (x, y), honouring
// c.Reverse, c.Palette and c.ShowClasses.
func (c *Code) color(x, y int) color.Color {
	class, black := c.Module(x, y)
	if c.Reverse {
		black = !black
	}
	n := 0
	if black {
		n = 1
	}
	switch {
	case c.ShowClasses:
		if x < 0 || x >= c.Size || y < 0 || y >= c.Size {
			class = Message // quiet zone
		}
		return ClassPalette[class][n]
	case c.Palette != nil:
		return c.Palette[n]
	case black:
		return blackColor
	}
	return whiteColor
}
