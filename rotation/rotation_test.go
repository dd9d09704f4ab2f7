package rotation

import (
	"math"
	"testing"
)

func TestR1R3Identity(t *testing.T) {
	r1 := R1(0)
	r3 := R3(0)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if r1.At(i, j) != want || r3.At(i, j) != want {
				t.Fatalf("R1/R3 at angle 0 should be identity, got r1(%d,%d)=%f r3(%d,%d)=%f", i, j, r1.At(i, j), i, j, r3.At(i, j))
			}
		}
	}
}

func TestMxV33RotatesAboutZ(t *testing.T) {
	got := MxV33(R3(-math.Pi/2), [3]float64{1, 0, 0})
	want := [3]float64{0, 1, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("R3(-pi/2)*(1,0,0) = %+v, want %+v", got, want)
		}
	}
}

func TestMxV33TiltsAboutX(t *testing.T) {
	got := MxV33(R1(-math.Pi/2), [3]float64{0, 1, 0})
	want := [3]float64{0, 0, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("R1(-pi/2)*(0,1,0) = %+v, want %+v", got, want)
		}
	}
}
