// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/d4l3k/messagediff"
)

// HELLO, version 1-M, mask 2.
var helloSymbol = []string{
	"#######----#--#######",
	"#-----#---#-#-#-----#",
	"#-###-#-##----#-###-#",
	"#-###-#-#-#-#-#-###-#",
	"#-###-#-##--#-#-###-#",
	"#-----#-####--#-----#",
	"#######-#-#-#-#######",
	"--------##-----------",
	"#-#####---##--#####--",
	"-##-##-#-######--##--",
	"--#####-#---#-##-###-",
	"-##-#----######--##--",
	"-#-######---#--#--#-#",
	"--------#-#-#--#-#---",
	"#######--###-#--#-##-",
	"#-----#-#-#----#####-",
	"#-###-#-##-#-#--#-##-",
	"#-###-#-##-#####-#---",
	"#-###-#-##--#-##--#--",
	"#-----#--######-###--",
	"#######-##--#---#-##-",
}

func picture(g *Grid) []string {
	var rows []string
	for row := 0; row < g.Size; row++ {
		var b strings.Builder
		for col := 0; col < g.Size; col++ {
			if g.Black(row, col) {
				b.WriteByte('#')
			} else {
				b.WriteByte('-')
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

func TestEncodeHello(t *testing.T) {
	s, err := Encode(1, M, []byte("HELLO"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Mask != 2 || s.Penalty != 441 || s.Level != M || s.Version != 1 {
		t.Errorf("symbol %s-%s mask %d penalty %d, want 1-M mask 2 "+
			"penalty 441", s.Version, s.Level, s.Mask, s.Penalty)
	}
	if diff, equal := messagediff.PrettyDiff(helloSymbol,
		picture(s.Grid)); !equal {
		t.Errorf("HELLO symbol:\n%s\n%s",
			strings.Join(picture(s.Grid), "\n"), diff)
	}
}

func TestEncode(t *testing.T) {
	for _, tt := range []struct {
		msg     []byte
		v       Version
		l       Level
		mask    int
		penalty int
	}{
		{[]byte("hello, world"), 1, L, 3, 488},
		{bytes.Repeat([]byte("A"), 100), 7, M, 0, 1715},
		{seq(150), 12, H, 7, 3183},
	} {
		s, err := Encode(tt.v, tt.l, tt.msg)
		if err != nil {
			t.Errorf("%s-%s: %v", tt.v, tt.l, err)
			continue
		}
		if s.Mask != tt.mask || s.Penalty != tt.penalty {
			t.Errorf("%s-%s: mask %d penalty %d, want mask %d penalty %d",
				tt.v, tt.l, s.Mask, s.Penalty, tt.mask, tt.penalty)
		}
		if n := s.Count(Unassigned); n != 0 {
			t.Errorf("%s-%s: %d modules unassigned", tt.v, tt.l, n)
		}
		if s.Size != tt.v.Size() || len(s.Modules) != s.Size*s.Size {
			t.Errorf("%s-%s: size %d, %d modules",
				tt.v, tt.l, s.Size, len(s.Modules))
		}
	}
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestEncodeDeterministic(t *testing.T) {
	msg := []byte("https://example.com/")
	a, err := Encode(5, Q, msg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		b, err := Encode(5, Q, msg)
		if err != nil {
			t.Fatal(err)
		}
		if diff, equal := messagediff.PrettyDiff(a, b); !equal {
			t.Fatalf("symbols differ:\n%s", diff)
		}
	}
}

func TestEncodeAllVersions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		for l := L; l <= H; l++ {
			msg := bytes.Repeat([]byte{0xa5}, v.MaxMessageBytes(l))
			s, err := Encode(v, l, msg)
			if err != nil {
				t.Errorf("%s-%s: %v", v, l, err)
				continue
			}
			if n := s.Count(Unassigned); n != 0 {
				t.Errorf("%s-%s: %d modules unassigned", v, l, n)
			}
			if uint(s.Mask) >= NumMasks {
				t.Errorf("%s-%s: mask %d", v, l, s.Mask)
			}
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	if _, err := Encode(0, M, nil); err != ErrVersion {
		t.Errorf("version 0: error %v, want %v", err, ErrVersion)
	}
	if _, err := Encode(1, -1, nil); err != ErrLevel {
		t.Errorf("level -1: error %v, want %v", err, ErrLevel)
	}
	_, err := Encode(1, H, []byte("too long for 1-H"))
	if !errors.Is(err, ErrMessageTooLarge) {
		t.Errorf("16 bytes at 1-H: error %v, want %v",
			err, ErrMessageTooLarge)
	}
}

func TestEncoderWrite(t *testing.T) {
	e, err := NewEncoder(1, H)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"HEL", "LO"} {
		if n, err := e.Write([]byte(s)); n != len(s) || err != nil {
			t.Fatalf("Write(%q) = %d, %v", s, n, err)
		}
	}
	n, err := e.Write([]byte("abc"))
	var tooLarge *MessageTooLargeError
	if n != 0 || !errors.As(err, &tooLarge) || tooLarge.Len != 8 ||
		tooLarge.Max != 7 {
		t.Errorf("Write past capacity = %d, %v", n, err)
	}
	got, err := e.Symbol()
	if err != nil {
		t.Fatal(err)
	}
	want, err := Encode(1, H, []byte("HELLO"))
	if err != nil {
		t.Fatal(err)
	}
	if diff, equal := messagediff.PrettyDiff(want, got); !equal {
		t.Errorf("written symbol differs:\n%s", diff)
	}
	e.Reset()
	if s, err := e.Symbol(); err != nil || s.Mask < 0 {
		t.Errorf("empty message: %v", err)
	}
}
