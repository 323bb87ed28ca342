// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package geom

import (
	"math"
	"testing"
)

func TestNear(t *testing.T) {
	cases := []struct {
		a, b Point
		want bool
	}{
		{Pt(0, 0), Pt(0, 0), true},
		{Pt(0, 0), Pt(1e-7, 0), true},
		{Pt(0, 0), Pt(1e-5, 0), false},
	}
	for _, c := range cases {
		if got := Near(c.a, c.b); got != c.want {
			t.Errorf("Near(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestDiv(t *testing.T) {
	p := Pt(4, 8)
	got := Div(p, 2)
	want := Pt(2, 4)
	if !Near(got, want) {
		t.Errorf("Div(%v, 2) = %v, want %v", p, got, want)
	}
}

func TestSquaredNorm(t *testing.T) {
	p := Pt(3, 4)
	if got := SquaredNorm(p); got != 25 {
		t.Errorf("SquaredNorm(%v) = %v, want 25", p, got)
	}
}

func TestApplyIdentity(t *testing.T) {
	p := Pt(3, -2)
	if got := Apply(Identity, p); !Near(got, p) {
		t.Errorf("Apply(Identity, %v) = %v, want %v", p, got, p)
	}
}

func TestApplyTranslate(t *testing.T) {
	a := Translate(5, -1)
	got := Apply(a, Pt(1, 1))
	want := Pt(6, 0)
	if !Near(got, want) {
		t.Errorf("Apply(Translate(5,-1), (1,1)) = %v, want %v", got, want)
	}
}

func TestApplyRotate(t *testing.T) {
	a := Rotate(math.Pi / 2)
	got := Apply(a, Pt(1, 0))
	want := Pt(0, 1)
	if !Near(got, want) {
		t.Errorf("Apply(Rotate(pi/2), (1,0)) = %v, want %v", got, want)
	}
}

func TestApplyLinearIgnoresTranslation(t *testing.T) {
	a := Translate(100, 100)
	got := ApplyLinear(a, Pt(1, 1))
	want := Pt(1, 1)
	if !Near(got, want) {
		t.Errorf("ApplyLinear(Translate, (1,1)) = %v, want %v", got, want)
	}
}
