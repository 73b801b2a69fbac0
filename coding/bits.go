// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ByteMode is the mode indicator for byte mode segments.
const ByteMode = 4

// ErrMessageTooLarge is matched by errors.Is for MessageTooLargeError.
var ErrMessageTooLarge = errors.New("qr: message too large")

// MessageTooLargeError reports a message that doesn't fit in the
// requested version and level.
type MessageTooLargeError struct {
	Len, Max int // message length and capacity in bytes
	Version  Version
	Level    Level
}

func (e *MessageTooLargeError) Error() string {
	return fmt.Sprintf("qr: %d byte message too large for version %s-%s "+
		"(max %d bytes)", e.Len, e.Version, e.Level, e.Max)
}

func (e *MessageTooLargeError) Is(target error) bool {
	return target == ErrMessageTooLarge
}

// MaxMessageBytes returns the maximum length of a byte mode message
// in a QR code with the given version and level.
func (v Version) MaxMessageBytes(l Level) int {
	return (v.DataBytes(l)*8 - 4 - v.CountLength()) / 8
}

// Bits is a codeword stream written most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, v.TotalBytes())}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the codewords.  b must end on a byte boundary.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Write appends the low nbit bits of v.
func (b *Bits) Write(v uint32, nbit int) {
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// AddBytes writes a byte mode segment: the mode indicator, the
// character count for version v and msg.  The segment header is
// 12 or 20 bits long, so the data is never byte aligned.
func (b *Bits) AddBytes(msg []byte, v Version) {
	b.Write(ByteMode, 4)
	b.Write(uint32(len(msg)), v.CountLength())
	s := msg
	for ; len(s) >= 4; s = s[4:] {
		b.Write(binary.BigEndian.Uint32(s), 32)
	}
	for _, c := range s {
		b.Write(uint32(c), 8)
	}
}

// Pad adds up to 4 terminator bits to b, aligns it to a byte
// boundary and fills it to n bytes with alternating pad codewords.
func (b *Bits) Pad(n int) {
	if b.nbit > n*8 {
		panic("qr: too much data")
	}
	b.Write(0, min(4, n*8-b.nbit))
	b.nbit = len(b.b) * 8
	for pad := byte(0xec); len(b.b) < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
	}
	b.nbit = len(b.b) * 8
}

// Sequence returns the data codewords for msg encoded as a byte
// mode segment at the given version and level.
func Sequence(msg []byte, v Version, l Level) ([]byte, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	if n := v.MaxMessageBytes(l); len(msg) > n {
		return nil, &MessageTooLargeError{Len: len(msg), Max: n,
			Version: v, Level: l}
	}
	b := NewBits(v)
	b.AddBytes(msg, v)
	b.Pad(v.DataBytes(l))
	return b.Bytes(), nil
}
