/*
 * matrix.go, part of gosubstrate
 *
 * Copyright 2026 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package v3

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Matrix is a set of vectors in 3D space. The underlying implementation is
// a gonum Dense. A Matrix with no vectors wraps an empty Dense, since gonum
// doesn't allow zero-sized matrices.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs <= 0 {
		return &Matrix{new(mat.Dense)}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// Eye returns a 3x3 identity matrix, i.e. the orientation that leaves a residue as it is.
func Eye() *Matrix {
	return &Matrix{mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})}
}

// FromVecs returns a Matrix with one row per vector in vecs.
func FromVecs(vecs []r3.Vec) *Matrix {
	F := Zeros(len(vecs))
	for i, v := range vecs {
		F.SetVec(i, v)
	}
	return F
}

//METHODS

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil || F.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) r3.Vec {
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v r3.Vec) {
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

// View returns a view of n vectors of F, starting from the ith. Changes in
// the view are reflected in F and vice-versa.
func (F *Matrix) View(i, n int) *Matrix {
	if n == 0 {
		return Zeros(0)
	}
	r := F.Dense.Slice(i, i+n, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	n := F.NVecs()
	ret := Zeros(n)
	if n > 0 {
		ret.Dense.Copy(F.Dense)
	}
	return ret
}

// AddVec adds the vector vec to each vector of the matrix A, putting the result on the receiver.
// Panics if matrices are mismatched.
func (F *Matrix) AddVec(A *Matrix, vec r3.Vec) {
	ar := A.NVecs()
	if ar != F.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Add(A.Vec(i), vec))
	}
}

// SubVec subtracts the vector vec from each vector of the matrix A, putting
// the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A *Matrix, vec r3.Vec) {
	F.AddVec(A, r3.Scale(-1, vec))
}

// Mul wraps mat.Dense.Mul to take care of the case when one of the
// arguments is also the receiver.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if a, ok := A.(*Matrix); ok {
		A = a.Dense
	}
	if b, ok := B.(*Matrix); ok {
		B = b.Dense
	}
	F.Dense.Mul(A, B)
}

// Rotate puts in F the vectors of A rotated by the 3x3 operator R (A*R).
// It panics if R is not a proper rotation.
func (F *Matrix) Rotate(A, R *Matrix) {
	if !IsRotation(R, -1) {
		panic(ErrNotRotation)
	}
	F.Mul(A, R)
}

// Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() r3.Vec {
	n := F.NVecs()
	if n == 0 {
		panic(ErrNotEnoughElements)
	}
	var c r3.Vec
	for i := 0; i < n; i++ {
		c = r3.Add(c, F.Vec(i))
	}
	return r3.Scale(1/float64(n), c)
}

// Bounds returns the per-axis minimum and maximum of the vectors in F.
func (F *Matrix) Bounds() (r3.Vec, r3.Vec) {
	n := F.NVecs()
	if n == 0 {
		panic(ErrNotEnoughElements)
	}
	min := F.Vec(0)
	max := min
	for i := 1; i < n; i++ {
		v := F.Vec(i)
		min = r3.Vec{X: math.Min(min.X, v.X), Y: math.Min(min.Y, v.Y), Z: math.Min(min.Z, v.Z)}
		max = r3.Vec{X: math.Max(max.X, v.X), Y: math.Max(max.Y, v.Y), Z: math.Max(max.Z, v.Z)}
	}
	return min, max
}

// IsRotation returns true if the 3x3 matrix R is a proper rotation, i.e. orthonormal
// with determinant 1, within tol. A negative tol means the default tolerance.
func IsRotation(R *Matrix, tol float64) bool {
	if tol < 0 {
		tol = 1e-9
	}
	if r, c := R.Dims(); r != 3 || c != 3 {
		return false
	}
	if math.Abs(mat.Det(R.Dense)-1) > tol {
		return false
	}
	var p mat.Dense
	p.Mul(R.Dense, R.Dense.T())
	return mat.EqualApprox(&p, Eye().Dense, tol)
}
