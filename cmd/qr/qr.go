// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qr writes a QR code of the given version and error
// correction level holding its arguments, or standard input, in
// byte mode.
package main

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/image/colornames"

	"github.com/unixdj/qrgrid"
)

var g = struct {
	scale   int              // module size in pixels or points
	border  int              // quiet zone, -1 for default
	rev     bool             // reverse colours
	classes bool             // colour modules by class
	fn      string           // filename
	lev     level            // QR correction level
	ver     int              // QR version
	format  int              // output file format
	ops     []func(*qr.Code) // flips and rotations, in order
	bg, fg  colour           // colours
	latin1  bool             // Latin-1 byte mode
	upper   bool             // uppercase
}{
	lev: level(qr.M),
	bg:  colour{c: color.RGBA{0xff, 0xff, 0xff, 0xff}},
	fg:  colour{c: color.RGBA{0x00, 0x00, 0x00, 0xff}},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: %s [options] [string ...]
Write a QR code holding the strings, joined by spaces, in byte mode.
Without strings, standard input is encoded minus its final newline.

`, getopt.CommandLine.Program())
	getopt.CommandLine.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 1.0.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

// level is an error correction level flag.
type level qr.Level

func (l *level) String() string { return strings.ToLower(qr.Level(*l).String()) }

func (l *level) Set(s string, _ getopt.Option) error {
	if len(s) == 1 {
		if i := strings.IndexByte("lmqh", s[0]|0x20); i >= 0 {
			*l = level(i)
			return nil
		}
	}
	return fmt.Errorf("%q: level must be l, m, q or h", s)
}

// colour is a colour flag taking an SVG colour name or a hex
// RGB[A] value with one or two digits per component.
type colour struct {
	c   color.RGBA
	set bool // given on the command line
}

func (c *colour) String() string {
	return hex.EncodeToString([]byte{c.c.R, c.c.G, c.c.B, c.c.A})
}

func (c *colour) Set(s string, _ getopt.Option) error {
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		c.c, c.set = named, true
		return nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for i := 0; i < len(h); i++ {
			b.WriteByte(h[i])
			b.WriteByte(h[i])
		}
		h = b.String()
	}
	p, err := hex.DecodeString(h)
	if err != nil || len(p) < 3 || len(p) > 4 {
		return fmt.Errorf("%q: bad colour", s)
	}
	if len(p) == 3 {
		p = append(p, 0xff)
	}
	c.c, c.set = color.RGBA{p[0], p[1], p[2], p[3]}, true
	return nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	func(c *qr.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	(*qr.Code).EncodePBM,
	(*qr.Code).EncodeEPS,
	func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.String())
		return err
	},
	(*qr.Code).EncodeASCII,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', "background colour", "colour")
	getopt.FlagLong(&g.fg, "foreground", 'F', "foreground colour: "+
		"SVG name, RGB, RGBA, RRGGBB or RRGGBBAA; png and eps only",
		"colour")
	getopt.Flag(opt(func() { g.ops = append(g.ops, (*qr.Code).Flip) }),
		'f', "flip horizontally").SetFlag()
	getopt.Flag(opt(func() { g.ops = append(g.ops, (*qr.Code).Rotate) }),
		'r', "rotate 90° counterclockwise; "+
			"-f and -r apply in the order given").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert UTF-8 input to Latin-1")
	getopt.Flag(&g.upper, 'i', "convert input to uppercase")
	getopt.Flag(&g.classes, 'c',
		"colour modules by class; png and eps only")
	getopt.Flag(&g.border, 'm', "quiet zone modules [4]", "margin")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`,
		"file")
	ver := getopt.Unsigned('v', 1, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"QR code version, 1 to 40", "ver")
	getopt.FlagLong(&g.lev, "ec", 'l',
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 8,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		"pixels (eps: points) per module; png, pbm and eps only",
		"scale")
	ff := getopt.Enum('t', formats, "", "output type, one of "+
		strings.Join(formats, ", ")+`; a trailing "i" inverts colours; `+
		"default utf8 on a terminal without -o, otherwise png", "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.ver = int(*ver)
	if !getopt.IsSet('m') {
		g.border = -1
	}
	if *ff == "" {
		*ff = "png"
		if g.fn == "" && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format, g.rev = i/2, i%2 == 1
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

// input returns the command line arguments joined by spaces, or
// standard input without the final newline.
func input() string {
	if args := getopt.Args(); len(args) != 0 {
		return strings.Join(args, " ")
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalln(err)
	}
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r")
}

func main() {
	log.SetFlags(0)
	parseFlags()

	s := input()
	if g.upper {
		s = strings.ToUpper(s)
	}
	encode := qr.EncodeString
	if g.latin1 {
		encode = qr.EncodeLatin1
	}
	c, err := encode(s, g.ver, qr.Level(g.lev))
	if err != nil {
		log.Fatalln(err)
	}
	for _, op := range g.ops {
		op(c)
	}
	c.Scale = g.scale
	c.Reverse = g.rev
	c.ShowClasses = g.classes
	if g.bg.set || g.fg.set {
		c.Palette = &[2]color.Color{g.bg.c, g.fg.c}
	}
	if g.border >= 0 {
		c.Border = g.border
	}
	if err := write(c); err != nil {
		log.Fatalln(err)
	}
}

func write(c *qr.Code) error {
	if g.fn == "" {
		return encoders[g.format](c, os.Stdout)
	}
	f, err := os.Create(g.fn)
	if err != nil {
		return err
	}
	if err := encoders[g.format](c, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
