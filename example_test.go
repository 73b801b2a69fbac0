// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"fmt"
	"image/png"
	"io"
	"log"

	"github.com/unixdj/qrgrid"
)

func ExampleEncodeString() {
	c, err := qr.EncodeString("HELLO", 1, qr.M)
	if err != nil {
		log.Fatalln(err)
	}
	c.Border = 1
	fmt.Printf("version %d-%s, mask %d\n", c.Version, c.Level, c.Mask)
	fmt.Print(c)
	// Output:
	// version 1-M, mask 2
	// █▀▀▀▀▀▀▀████▀██▀▀▀▀▀▀▀█
	// █ █▀▀▀█ █▀▀▄█▄█ █▀▀▀█ █
	// █ █   █ █ ▀▄█ █ █   █ █
	// █ ▀▀▀▀▀ █ ▄ ▄▀█ ▀▀▀▀▀ █
	// █▀█▀▀▀▀▀█▄▄▀▀██▀▀▀▀▀███
	// ██▄ ▀  ▀▄▀▄▄▄ ▄ ▀█  ▀██
	// ██ ▄▀ ▀▀▀▀▄▄▄ ▄▄▀█▄ █▀█
	// █▀▀▀▀▀▀▀█▄▀ ▀▄▀█▄▀▄▀▀██
	// █ █▀▀▀█ █ ▀▄▀█▀█▄ ▄  ██
	// █ █   █ █  █▄ ▄  █▄▀███
	// █ ▀▀▀▀▀ █▀ ▄▄ ▄▄█ ▄ ▀██
	// ▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀
}

func ExampleCode_Image() {
	c, err := qr.EncodeString("https://example.com/", 2, qr.Q)
	if err != nil {
		log.Fatalln(err)
	}
	c.Scale, c.Border = 4, 2
	img := c.Image()
	fmt.Println(img.Bounds().Dx(), "pixels wide")
	if err := png.Encode(io.Discard, img); err != nil {
		log.Fatalln(err)
	}
	// Output:
	// 116 pixels wide
}
