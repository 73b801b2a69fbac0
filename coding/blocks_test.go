// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"testing"
)

func TestSplitGroups(t *testing.T) {
	for _, tt := range []struct {
		v     Version
		l     Level
		sizes []int
	}{
		{1, M, []int{16}},
		{5, Q, []int{15, 15, 16, 16}},
		{7, H, []int{13, 13, 13, 13, 14}},
		{4, H, []int{9, 9, 9, 9}},
	} {
		data := make([]byte, tt.v.DataBytes(tt.l))
		for i := range data {
			data[i] = byte(i)
		}
		blocks := Split(data, tt.v, tt.l)
		_, check := tt.v.Blocks(tt.l)
		if len(blocks) != len(tt.sizes) {
			t.Errorf("version %s-%s: %d blocks, want %d",
				tt.v, tt.l, len(blocks), len(tt.sizes))
			continue
		}
		var joined []byte
		for i, b := range blocks {
			if len(b.Data) != tt.sizes[i] || len(b.Check) != check {
				t.Errorf("version %s-%s block %d: %d+%d codewords, "+
					"want %d+%d", tt.v, tt.l, i, len(b.Data),
					len(b.Check), tt.sizes[i], check)
			}
			joined = append(joined, b.Data...)
		}
		if !bytes.Equal(joined, data) {
			t.Errorf("version %s-%s: blocks don't cover the data in order",
				tt.v, tt.l)
		}
	}
}

func TestSplitCheck(t *testing.T) {
	data, err := Sequence([]byte("HELLO"), 1, M)
	if err != nil {
		t.Fatal(err)
	}
	blocks := Split(data, 1, M)
	want := []byte{0x23, 0x73, 0x23, 0x99, 0xec, 0x08, 0xc9, 0xf7, 0x37, 0xdf}
	if len(blocks) != 1 || !bytes.Equal(blocks[0].Check, want) {
		t.Errorf("check codewords = % x, want % x", blocks[0].Check, want)
	}
}

func TestSplitMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Split did not panic on short data")
		}
	}()
	Split(make([]byte, 15), 1, M)
}

func TestInterleave(t *testing.T) {
	blocks := []Block{
		{Data: []byte{1, 2}, Check: []byte{7, 8}},
		{Data: []byte{3, 4, 5}, Check: []byte{9, 10}},
		{Data: []byte{11, 12, 13}, Check: []byte{14, 15}},
	}
	want := []byte{1, 3, 11, 2, 4, 12, 5, 13, 7, 9, 14, 8, 10, 15}
	if got := Interleave(blocks); !bytes.Equal(got, want) {
		t.Errorf("Interleave = %v, want %v", got, want)
	}
}

func TestCodewords(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			data, err := Sequence([]byte("QR"), v, l)
			if err != nil {
				t.Fatal(err)
			}
			cw := Codewords(data, v, l)
			if len(cw) != v.TotalBytes() {
				t.Errorf("version %s-%s: %d codewords, want %d",
					v, l, len(cw), v.TotalBytes())
			}
			// Data codewords from the first block lead.
			if cw[0] != data[0] {
				t.Errorf("version %s-%s: first codeword %#02x, want %#02x",
					v, l, cw[0], data[0])
			}
		}
	}
}
