package glide

import (
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ffffff", Color{1, 1, 1, 1}},
		{"#000", Color{0, 0, 0, 1}},
		{"rgb(255, 0, 0)", Color{1, 0, 0, 1}},
		{"rgba(0, 0, 255, 0.5)", Color{0, 0, 1, 0.5}},
		{"white", Color{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if math.Abs(got.R-tt.want.R) > 0.01 || math.Abs(got.G-tt.want.G) > 0.01 ||
			math.Abs(got.B-tt.want.B) > 0.01 || math.Abs(got.A-tt.want.A) > 0.01 {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("expected error for an unknown color")
	}
}

func TestLerpColor(t *testing.T) {
	a := Color{R: 1, G: 0, B: 0, A: 1}
	b := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	mid := LerpColor(0.5, a, b)
	if math.Abs(mid.R-0.5) > 1e-9 || math.Abs(mid.G-0.5) > 1e-9 ||
		math.Abs(mid.B-0.25) > 1e-9 || math.Abs(mid.A-0.75) > 1e-9 {
		t.Errorf("mid = %+v", mid)
	}
	if LerpColor(0, a, b) != a {
		t.Error("t=0 should return a")
	}
	if LerpColor(1, a, b) != b {
		t.Error("t=1 should return b")
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 1}.ToRGBA()
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("ToRGBA = %+v", c)
	}
	half := Color{R: 1, G: 1, B: 1, A: 0.5}.ToRGBA()
	if half.R != 128 || half.A != 128 {
		t.Errorf("premultiplied = %+v", half)
	}
	over := Color{R: 2, G: -1, B: 0, A: 1}.ToRGBA()
	if over.R != 255 || over.G != 0 {
		t.Errorf("clamped = %+v", over)
	}
}

func TestColorString(t *testing.T) {
	if s := RGB(112, 192, 0).String(); s != "#70c000" {
		t.Errorf("String = %q, want #70c000", s)
	}
	if s := (Color{R: 0, G: 0, B: 0, A: 0.5}).String(); s != "#00000080" {
		t.Errorf("String = %q, want #00000080", s)
	}
}
