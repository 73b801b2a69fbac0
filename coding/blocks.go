// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"rsc.io/qr/gf256"
)

// A Block is a Reed-Solomon block: data codewords and their check
// codewords.
type Block struct {
	Data  []byte
	Check []byte
}

// Split splits the data codewords for the given version and level
// into blocks and computes their check codewords.  Blocks in the
// first group hold len(data)/nblock codewords, blocks in the second
// group one more.
func Split(data []byte, v Version, l Level) []Block {
	if len(data) != v.DataBytes(l) {
		panic(fmt.Sprintf("qr: version %s-%s: %d data codewords, want %d",
			v, l, len(data), v.DataBytes(l)))
	}
	nblock, check := v.Blocks(l)
	db := len(data) / nblock
	normal := nblock - len(data)%nblock
	rs := gf256.NewRSEncoder(Field, check)
	ecc := make([]byte, nblock*check)
	blocks := make([]Block, nblock)
	for i := range blocks {
		n := db
		if i >= normal {
			n++
		}
		if len(data) < n {
			panic(fmt.Sprintf("qr: version %s-%s: block %d short "+
				"by %d codewords", v, l, i, n-len(data)))
		}
		b := &blocks[i]
		b.Data, data = data[:n:n], data[n:]
		b.Check, ecc = ecc[:check:check], ecc[check:]
		rs.ECC(b.Data, b.Check)
	}
	if len(data) != 0 {
		panic("qr: internal error")
	}
	return blocks
}

// Interleave returns the codewords of blocks in transmission order:
// the first data codeword of each block, then the second, and so on,
// skipping blocks that have run out, followed by the check codewords
// in the same manner.
func Interleave(blocks []Block) []byte {
	var n, nd, nc int
	for _, b := range blocks {
		n += len(b.Data) + len(b.Check)
		nd = max(nd, len(b.Data))
		nc = max(nc, len(b.Check))
	}
	dst := make([]byte, 0, n)
	for i := 0; i < nd; i++ {
		for _, b := range blocks {
			if i < len(b.Data) {
				dst = append(dst, b.Data[i])
			}
		}
	}
	for i := 0; i < nc; i++ {
		for _, b := range blocks {
			if i < len(b.Check) {
				dst = append(dst, b.Check[i])
			}
		}
	}
	return dst
}

// Codewords returns the final codeword sequence for the data
// codewords: data and check codewords interleaved.
func Codewords(data []byte, v Version, l Level) []byte {
	cw := Interleave(Split(data, v, l))
	if len(cw) != v.TotalBytes() {
		panic(fmt.Sprintf("qr: version %s-%s: %d codewords, want %d",
			v, l, len(cw), v.TotalBytes()))
	}
	return cw
}
