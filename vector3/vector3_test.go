package vector3

import (
	"testing"

	"gonum.org/v1/gonum/floats"
)

func vectorsEqual(a, b Vector3) bool {
	return floats.EqualWithinAbs(a.X, b.X, 1e-9) &&
		floats.EqualWithinAbs(a.Y, b.Y, 1e-9) &&
		floats.EqualWithinAbs(a.Z, b.Z, 1e-9)
}

func TestCross(t *testing.T) {
	i := New(1, 0, 0)
	j := New(0, 1, 0)
	k := New(0, 0, 1)
	if !vectorsEqual(i.Cross(j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(j.Cross(k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(New(2, 3, 4).Cross(New(5, 6, 7)), New(-3, 6, -3)) {
		t.Fatal("cross fail")
	}
}

func TestAddSub(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, 5, 6)
	if !vectorsEqual(a.Add(b), New(5, 7, 9)) {
		t.Fatal("add fail")
	}
	if !vectorsEqual(b.Sub(a), New(3, 3, 3)) {
		t.Fatal("sub fail")
	}
	a.AddMut(b)
	if !vectorsEqual(a, New(5, 7, 9)) {
		t.Fatal("add-mut fail")
	}
}

func TestMagnitudeAndNormalize(t *testing.T) {
	v := New(3, 4, 0)
	if !floats.EqualWithinAbs(v.Magnitude(), 5, 1e-12) {
		t.Fatalf("magnitude = %f, want 5", v.Magnitude())
	}
	n := v.Normalize()
	if !floats.EqualWithinAbs(n.Magnitude(), 1, 1e-12) {
		t.Fatalf("normalize did not produce a unit vector: %f", n.Magnitude())
	}
	if !vectorsEqual(Zero.Normalize(), Zero) {
		t.Fatal("normalizing the zero vector should return zero")
	}
}

func TestDot(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)
	if got, want := a.Dot(b), 4.0-10.0+18.0; !floats.EqualWithinAbs(got, want, 1e-12) {
		t.Fatalf("dot = %f, want %f", got, want)
	}
}
