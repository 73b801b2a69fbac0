// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "fmt"

// A Symbol is a complete QR symbol: every module classified and
// coloured, the mask applied and format and version information
// written.
type Symbol struct {
	*Grid
	Level   Level
	Mask    int // mask pattern, 0-7
	Penalty int // penalty of the chosen mask
}

// Encoder encodes byte mode messages into QR symbols of a fixed
// version and level.  The message is accumulated with Write.
type Encoder struct {
	v   Version
	l   Level
	msg []byte
}

// NewEncoder returns an Encoder for the given version and level.
func NewEncoder(v Version, l Level) (*Encoder, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	return &Encoder{v: v, l: l}, nil
}

// Version returns the version of symbols produced by e.
func (e *Encoder) Version() Version { return e.v }

// Level returns the error correction level of symbols produced by e.
func (e *Encoder) Level() Level { return e.l }

// Write appends p to the message.  If the message would not fit,
// Write writes nothing and returns a *MessageTooLargeError.
func (e *Encoder) Write(p []byte) (int, error) {
	if n := e.v.MaxMessageBytes(e.l); len(e.msg)+len(p) > n {
		return 0, &MessageTooLargeError{Len: len(e.msg) + len(p),
			Max: n, Version: e.v, Level: e.l}
	}
	e.msg = append(e.msg, p...)
	return len(p), nil
}

// Reset discards the message.
func (e *Encoder) Reset() { e.msg = e.msg[:0] }

// Symbol returns a QR symbol containing the message written to e.
func (e *Encoder) Symbol() (*Symbol, error) {
	data, err := Sequence(e.msg, e.v, e.l)
	if err != nil {
		return nil, err
	}
	g := geometry(e.v)
	g.Place(Codewords(data, e.v, e.l))

	// Score all masks, apply the best one, then fill in the metadata
	// that depends on it.
	mask, pen := g.SelectMask()
	g.ApplyMask(mask)
	g.WriteFormat(e.l, mask)
	g.WriteVersion()
	if n := g.Count(Unassigned); n != 0 {
		panic(fmt.Sprintf("qr: version %s: %d modules unassigned",
			e.v, n))
	}
	return &Symbol{Grid: g, Level: e.l, Mask: mask, Penalty: pen}, nil
}

// Encode is a wrapper around Reset, Write and Symbol.
func (e *Encoder) Encode(msg []byte) (*Symbol, error) {
	e.Reset()
	if _, err := e.Write(msg); err != nil {
		return nil, err
	}
	return e.Symbol()
}

// Encode encodes msg as a byte mode QR symbol with the given version
// and level.
func Encode(v Version, l Level, msg []byte) (*Symbol, error) {
	e, err := NewEncoder(v, l)
	if err != nil {
		return nil, err
	}
	return e.Encode(msg)
}
