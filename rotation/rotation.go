// Package rotation provides the axis-rotation matrices used to incline a
// circular orbit out of its reference plane, grounded on the teacher's own
// R1/R3/MxV33 rotation helpers.
package rotation

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// R1 returns the rotation matrix about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 returns the rotation matrix about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a 3x3 matrix by a 3-vector.
func MxV33(m *mat.Dense, v [3]float64) [3]float64 {
	vVec := mat.NewVecDense(3, v[:])
	var rVec mat.VecDense
	rVec.MulVec(m, vVec)
	return [3]float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}
