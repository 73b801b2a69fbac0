// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"testing"

	"github.com/d4l3k/messagediff"
)

func TestGeometryCounts(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		g := NewGrid(v)
		siz := v.Size()
		n := len(v.AlignmentCoords())
		want := [NumClasses]int{
			Unassigned: v.TotalBytes()*8 + v.RemainderBits(),
			Finder:     3 * 49,
			Separator:  3 * 15,
			Timing:     2 * (siz - 16),
			Format:     30,
			DarkModule: 1,
		}
		switch {
		case v >= 7:
			want[Alignment] = 25 * (n*n - 3)
			want[Timing] -= 2 * 5 * (n - 2)
			want[VersionInfo] = 36
		case v >= 2:
			want[Alignment] = 25
		}
		var got [NumClasses]int
		for c := range got {
			got[c] = g.Count(Class(c))
		}
		if got != want {
			t.Errorf("version %d: class counts\n%v\nwant\n%v",
				v, got, want)
		}
	}
}

// Version 1 before any data is placed:
// # black, - white, ? unassigned.
var version1 = []string{
	"#######--????-#######",
	"#-----#--????-#-----#",
	"#-###-#--????-#-###-#",
	"#-###-#--????-#-###-#",
	"#-###-#--????-#-###-#",
	"#-----#--????-#-----#",
	"#######-#-#-#-#######",
	"---------????--------",
	"------#--????--------",
	"??????-??????????????",
	"??????#??????????????",
	"??????-??????????????",
	"??????#??????????????",
	"--------#????????????",
	"#######--????????????",
	"#-----#--????????????",
	"#-###-#--????????????",
	"#-###-#--????????????",
	"#-###-#--????????????",
	"#-----#--????????????",
	"#######--????????????",
}

func TestGeometryVersion1(t *testing.T) {
	g := NewGrid(1)
	var got []string
	for row := 0; row < g.Size; row++ {
		var b strings.Builder
		for col := 0; col < g.Size; col++ {
			switch m := g.At(row, col); {
			case m.Class == Unassigned:
				b.WriteByte('?')
			case m.Black:
				b.WriteByte('#')
			default:
				b.WriteByte('-')
			}
		}
		got = append(got, b.String())
	}
	if diff, equal := messagediff.PrettyDiff(version1, got); !equal {
		t.Errorf("version 1 geometry:\n%s\n%s", strings.Join(got, "\n"), diff)
	}
}

func TestGeometryClasses(t *testing.T) {
	g := NewGrid(7)
	siz := g.Size
	for _, tt := range []struct {
		row, col int
		c        Class
		black    bool
	}{
		{0, 0, Finder, true},
		{3, 3, Finder, true},
		{1, 1, Finder, false},
		{7, 7, Separator, false},
		{0, 7, Separator, false},
		{7, siz - 1, Separator, false},
		{siz - 8, 0, Separator, false},
		{6, 8, Timing, true},
		{6, 9, Timing, false},
		{9, 6, Timing, false},
		{22, 22, Alignment, true},
		{20, 20, Alignment, true},
		{21, 21, Alignment, false},
		{6, 22, Alignment, true},
		{4, 22, Alignment, true},
		{37, 8, DarkModule, true},
		{8, 0, Format, false},
		{8, 8, Format, false},
		{siz - 1, 8, Format, false},
		{8, siz - 1, Format, false},
		{0, siz - 11, VersionInfo, false},
		{siz - 9, 5, VersionInfo, false},
		{9, 9, Unassigned, false},
	} {
		m := g.At(tt.row, tt.col)
		if m.Class != tt.c || m.Black != tt.black {
			t.Errorf("version 7 (%d, %d): %s black=%t, want %s black=%t",
				tt.row, tt.col, m.Class, m.Black, tt.c, tt.black)
		}
	}
}

func TestTemplatePrivate(t *testing.T) {
	a := geometry(3)
	a.At(10, 10).Black = true
	a.At(10, 10).Class = Message
	b := geometry(3)
	if diff, equal := messagediff.PrettyDiff(NewGrid(3), b); !equal {
		t.Errorf("template modified through a copy:\n%s", diff)
	}
}

func TestGridOutside(t *testing.T) {
	g := NewGrid(1)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("At(%d, %d) did not panic", p[0], p[1])
				}
			}()
			g.At(p[0], p[1])
		}()
	}
}
