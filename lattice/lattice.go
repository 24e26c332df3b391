/*
 * lattice.go, part of gosubstrate
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

// Package lattice generates the 2D point sets on which surface residues are placed.
// A lattice is given by two primitive vectors; the first one always lies along x.
package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Spec describes the unit cell of a 2D lattice. The only implementations
// are Hexagonal and Triclinic.
type Spec interface {
	// Vectors returns the two primitive vectors of the lattice.
	Vectors() (r2.Vec, r2.Vec)
	// Validate returns an error if the spec can't produce a lattice.
	Validate() error
	String() string
	isSpec()
}

// Hexagonal is a lattice with two primitive vectors of length A separated by 60 degrees.
type Hexagonal struct {
	A float64
}

func (H Hexagonal) isSpec() {}

// Vectors returns (a, 0) and (a cos60, a sin60)
func (H Hexagonal) Vectors() (r2.Vec, r2.Vec) {
	return Triclinic{A: H.A, B: H.A, Gamma: 60}.Vectors()
}

// Validate returns an error if the spacing is not positive.
func (H Hexagonal) Validate() error {
	if !(H.A > 0) || math.IsInf(H.A, 0) {
		return Error{fmt.Sprintf("Hexagonal lattice spacing must be positive, got a=%g", H.A), []string{"Hexagonal.Validate"}}
	}
	return nil
}

func (H Hexagonal) String() string {
	return fmt.Sprintf("Hexagonal lattice (a = %.3f)", H.A)
}

// Triclinic is a lattice with primitive vectors of lengths A and B separated
// by an angle Gamma, given in degrees.
type Triclinic struct {
	A     float64
	B     float64
	Gamma float64
}

func (T Triclinic) isSpec() {}

// Vectors returns (a, 0) and (b cos(gamma), b sin(gamma))
func (T Triclinic) Vectors() (r2.Vec, r2.Vec) {
	g := deg2Rad(T.Gamma)
	return r2.Vec{X: T.A, Y: 0}, r2.Vec{X: T.B * math.Cos(g), Y: T.B * math.Sin(g)}
}

// Validate returns an error if a or b are not positive or gamma is outside (0, 180).
func (T Triclinic) Validate() error {
	if !(T.A > 0) || !(T.B > 0) || math.IsInf(T.A, 0) || math.IsInf(T.B, 0) {
		return Error{fmt.Sprintf("Triclinic lattice vector lengths must be positive, got a=%g b=%g", T.A, T.B), []string{"Triclinic.Validate"}}
	}
	if !(T.Gamma > 0 && T.Gamma < 180) {
		return Error{fmt.Sprintf("Triclinic lattice angle must be in (0, 180) degrees, got gamma=%g", T.Gamma), []string{"Triclinic.Validate"}}
	}
	return nil
}

func (T Triclinic) String() string {
	return fmt.Sprintf("Triclinic lattice (a = %.3f, b = %.3f, gamma = %.1f)", T.A, T.B, T.Gamma)
}

// relative tolerance for the lattice box edges.
const edgeTol = 1e-9

// MaxPoints is the largest number of points Generate will produce.
const MaxPoints = 1 << 28

// initial capacity limit for the point slice.
const maxPrealloc = 1 << 20

// Generate returns the points of the lattice described by spec that lie in
// [0, width) x [0, height). Points are ordered by increasing row (second primitive
// vector) and, within a row, by increasing column. An extent that would hold more
// than MaxPoints points is an error.
func Generate(spec Spec, width, height float64) ([]r2.Vec, error) {
	if spec == nil {
		return nil, Error{"Nil lattice spec", []string{"Generate"}}
	}
	if err := spec.Validate(); err != nil {
		return nil, errDecorate(err, "Generate")
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, Error{fmt.Sprintf("Lattice extent must be positive, got %g x %g", width, height), []string{"Generate"}}
	}
	a1, a2 := spec.Vectors()
	if n := (width/a1.X + 1) * (height/a2.Y + 1); !(n <= MaxPoints) {
		return nil, Error{fmt.Sprintf("A %g x %g extent holds about %.3g points of a %s, more than the limit of %d", width, height, n, spec, MaxPoints), []string{"Generate"}}
	}
	epsx := edgeTol * math.Max(1, width)
	epsy := edgeTol * math.Max(1, height)
	//a1 lies along x, so the row is fixed by j alone. One cell of margin on each side.
	jmax := int(math.Ceil(height/a2.Y)) + 1
	ret := make([]r2.Vec, 0, int(math.Min((width/a1.X+2)*(height/a2.Y+2), maxPrealloc)))
	for j := -1; j <= jmax; j++ {
		shift := float64(j) * a2.X
		imin := int(math.Floor(-shift/a1.X)) - 1
		imax := int(math.Ceil((width-shift)/a1.X)) + 1
		for i := imin; i <= imax; i++ {
			p := r2.Add(r2.Scale(float64(i), a1), r2.Scale(float64(j), a2))
			if p.X < -epsx || p.X >= width-epsx || p.Y < -epsy || p.Y >= height-epsy {
				continue
			}
			//snap float noise at the lower edges
			if p.X < 0 {
				p.X = 0
			}
			if p.Y < 0 {
				p.Y = 0
			}
			ret = append(ret, p)
		}
	}
	return ret, nil
}

// NearestNeighbour returns the distance between the closest pair of points
// in the lattice.
func NearestNeighbour(spec Spec) float64 {
	a1, a2 := spec.Vectors()
	d := math.Min(r2.Norm(a1), r2.Norm(a2))
	d = math.Min(d, r2.Norm(r2.Sub(a1, a2)))
	return math.Min(d, r2.Norm(r2.Add(a1, a2)))
}

// Period returns the distance after which each row of the lattice repeats itself
// along x.
func Period(spec Spec) float64 {
	a1, _ := spec.Vectors()
	return a1.X
}

// Snap returns the extent closest to (width, height) that contains a whole number of
// lattice periods along both directions, i.e. an extent that can be periodically replicated.
// At least one period is always returned.
func Snap(spec Spec, width, height float64) (float64, float64) {
	a1, a2 := spec.Vectors()
	nx := math.Max(1, math.Round(width/a1.X))
	ny := math.Max(1, math.Round(height/a2.Y))
	return nx * a1.X, ny * a2.Y
}

// Translate returns a new slice with all the points displaced by the vector by.
func Translate(points []r2.Vec, by r2.Vec) []r2.Vec {
	ret := make([]r2.Vec, len(points))
	for i, p := range points {
		ret[i] = r2.Add(p, by)
	}
	return ret
}

func deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}
