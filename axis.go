/*
 * axis.go, part of gosubstrate
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

package substrate

import (
	"fmt"
	"strings"

	"github.com/rmera/gosubstrate/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis is one of the three cartesian axes.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (A Axis) String() string {
	switch A {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(A))
}

// Valid returns true if A is X, Y or Z.
func (A Axis) Valid() bool {
	return A == X || A == Y || A == Z
}

// ParseAxis reads an axis from its name, case-insensitive.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "Y":
		return Y, nil
	case "Z":
		return Z, nil
	}
	return X, Errorf(ErrInvalidComponent, "ParseAxis", "unknown axis %q", s)
}

// Of returns the component of v along A.
func (A Axis) Of(v r3.Vec) float64 {
	switch A {
	case X:
		return v.X
	case Y:
		return v.Y
	default:
		return v.Z
	}
}

// Embed returns the vector with coordinates (u, v) in the plane perpendicular to A
// and w along A. The in-plane axes follow the cyclic order, so (u, v, A) is always
// right-handed: Z gives (u, v, w), X gives (w, u, v) and Y gives (v, w, u).
func (A Axis) Embed(u, v, w float64) r3.Vec {
	switch A {
	case X:
		return r3.Vec{X: w, Y: u, Z: v}
	case Y:
		return r3.Vec{X: v, Y: w, Z: u}
	default:
		return r3.Vec{X: u, Y: v, Z: w}
	}
}

// Project is the inverse of Embed. It returns the in-plane coordinates of p
// and its coordinate along A.
func (A Axis) Project(p r3.Vec) (u, v, w float64) {
	switch A {
	case X:
		return p.Y, p.Z, p.X
	case Y:
		return p.Z, p.X, p.Y
	default:
		return p.X, p.Y, p.Z
	}
}

// Frame returns the rotation (row-vector convention) that takes the local
// x, y and z axes to the first in-plane axis, the second in-plane axis and A.
func (A Axis) Frame() *v3.Matrix {
	return v3.FromVecs([]r3.Vec{A.Embed(1, 0, 0), A.Embed(0, 1, 0), A.Embed(0, 0, 1)})
}

// Cap selects which ends of a cylinder are closed.
type Cap int

const (
	CapNone Cap = iota
	CapTop
	CapBottom
	CapBoth
)

// Top returns true if the end at the full height is closed.
func (C Cap) Top() bool { return C == CapTop || C == CapBoth }

// Bottom returns true if the end at height 0 is closed.
func (C Cap) Bottom() bool { return C == CapBottom || C == CapBoth }

func (C Cap) String() string {
	switch C {
	case CapNone:
		return "None"
	case CapTop:
		return "Top"
	case CapBottom:
		return "Bottom"
	case CapBoth:
		return "Both"
	}
	return fmt.Sprintf("Cap(%d)", int(C))
}

// ParseCap reads a Cap from its name, case-insensitive. The empty string is CapNone.
func ParseCap(s string) (Cap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CapNone, nil
	case "top":
		return CapTop, nil
	case "bottom":
		return CapBottom, nil
	case "both":
		return CapBoth, nil
	}
	return CapNone, Errorf(ErrInvalidComponent, "ParseCap", "unknown cap %q", s)
}
