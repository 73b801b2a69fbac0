// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes QR codes.

Data is encoded in a single byte mode segment into a symbol of the
requested version and error correction level.  The mask pattern is
chosen automatically.  Package coding implements the details.
*/
package qr // import "github.com/unixdj/qrgrid"

import (
	"errors"
	"image/color"

	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrgrid/coding"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
	ErrLatin1     = errors.New("qr: text not representable in Latin-1")

	ErrLevel           = coding.ErrLevel
	ErrVersion         = coding.ErrVersion
	ErrMessageTooLarge = coding.ErrMessageTooLarge
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // 20% redundant
	M              // 38% redundant
	Q              // 55% redundant
	H              // 65% redundant
)

func (l Level) String() string { return coding.Level(l).String() }

// A Class classifies a module by the structure it belongs to.
type Class = coding.Class

// Module classes.
const (
	Unassigned  = coding.Unassigned
	Finder      = coding.Finder
	Separator   = coding.Separator
	Timing      = coding.Timing
	Alignment   = coding.Alignment
	Format      = coding.Format
	DarkModule  = coding.DarkModule
	VersionInfo = coding.VersionInfo
	Message     = coding.Message
	NumClasses  = coding.NumClasses
)

// MinVersion and MaxVersion bound QR versions.
const (
	MinVersion = int(coding.MinVersion)
	MaxVersion = int(coding.MaxVersion)
)

// MaxBytes returns the maximum length of data that fits in a QR code
// with the given version and level, or -1 if either is invalid.
func MaxBytes(version int, level Level) int {
	v, l := coding.Version(version), coding.Level(level)
	if !v.IsValid() || !l.IsValid() {
		return -1
	}
	return v.MaxMessageBytes(l)
}

// Encode returns a QR code with the given version and level holding
// data in byte mode.
func Encode(data []byte, version int, level Level) (*Code, error) {
	s, err := coding.Encode(coding.Version(version), coding.Level(level),
		data)
	if err != nil {
		return nil, err
	}
	c := &Code{
		Size:    s.Size,
		Version: version,
		Level:   level,
		Mask:    s.Mask,
		Bitmap:  make([]bool, len(s.Modules)),
		Classes: s.Classes(),
		Scale:   8,
		Border:  4,
	}
	for i := range s.Modules {
		c.Bitmap[i] = s.Modules[i].Black
	}
	return c, nil
}

// EncodeString is like Encode, with the bytes of text as data.
func EncodeString(text string, version int, level Level) (*Code, error) {
	return Encode([]byte(text), version, level)
}

// EncodeLatin1 is like EncodeString, but converts UTF-8 text to
// ISO 8859-1, the default QR byte mode character set.
func EncodeLatin1(text string, version int, level Level) (*Code, error) {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, ErrLatin1
	}
	return Encode(b, version, level)
}

// A Code is a square grid of modules.
// It implements image.Image and direct PBM and text encoding.
type Code struct {
	Size    int     // number of modules on a side
	Version int     // QR version
	Level   Level   // error correction level
	Mask    int     // mask pattern
	Bitmap  []bool  // row-major, true is black
	Classes []Class // row-major module classes

	Scale   int             // number of image pixels per module
	Border  int             // quiet zone width in modules
	Reverse bool            // reverse colours
	Palette *[2]color.Color // light and dark colours, nil for white and black

	// ShowClasses colours modules by class in Image using
	// ClassPalette.  Palette is ignored.
	ShowClasses bool
}

// Black reports whether the module at (x, y) is black.
// Modules outside the code are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Size+x]
}

// Module returns the class and colour of the module at (x, y).
// Codes without Classes report every module as Message.
// Modules outside the code are white and unassigned.
func (c *Code) Module(x, y int) (Class, bool) {
	if x < 0 || x >= c.Size || y < 0 || y >= c.Size {
		return Unassigned, false
	}
	i := y*c.Size + x
	if c.Classes == nil {
		return Message, c.Bitmap[i]
	}
	return c.Classes[i], c.Bitmap[i]
}

// maxPixels is the largest image side, under 64 gigapixels.
const maxPixels = 32767 * 8

// pixels returns the width of the image in pixels.
func (c *Code) pixels() int { return c.scale() * (c.Size + c.Border*2) }

// scale returns c.Scale, or 1 if it is not positive.
func (c *Code) scale() int { return max(c.Scale, 1) }

func (c *Code) isValid() bool {
	return c != nil && c.Size > 0 && len(c.Bitmap) == c.Size*c.Size &&
		(c.Classes == nil || len(c.Classes) == len(c.Bitmap)) &&
		c.Scale > 0 && c.Border >= 0
}
