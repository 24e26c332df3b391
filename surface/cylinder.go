/*
 * cylinder.go, part of gosubstrate
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

package surface

import (
	"math"

	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/lattice"
	"github.com/rmera/gosubstrate/v3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// diskTol is the relative tolerance for points on the rim of a cap.
const diskTol = 1e-9

// rowTol is the resolution, in nm, used to tell lattice rows apart.
const rowTol = 1e-9

// CheckClosure returns an error of the ErrNonClosingLattice kind if not even one
// lattice period, described by spec, fits around a cylinder of the given radius
// within half a period. The actual seam is measured by MapToCylinder.
func CheckClosure(spec lattice.Spec, radius float64) error {
	if spec == nil {
		return substrate.NewError(substrate.ErrInvalidLattice, "nil lattice spec", "CheckClosure")
	}
	if err := spec.Validate(); err != nil {
		return substrate.Decorate(err, "CheckClosure")
	}
	w := 2 * math.Pi * radius
	a := lattice.Period(spec)
	if n := math.Round(w / a); n < 1 {
		return substrate.Errorf(substrate.ErrNonClosingLattice, "CheckClosure", "circumference %.4f nm is shorter than half a lattice period of %.4f nm (radius %.4f nm)", w, a, radius)
	}
	return nil
}

// ShellWidth returns the width over which the lattice of a cylinder shell must be
// generated: the whole number of lattice periods closest to the circumference.
// With that width, the gap across the seam differs from the lattice period by
// at most half a period.
func ShellWidth(spec lattice.Spec, radius float64) float64 {
	a := lattice.Period(spec)
	return math.Max(1, math.Round(2*math.Pi*radius/a)) * a
}

// SeamMismatch returns, over all the rows of points, the largest difference
// between the lattice period and the gap left between the last and the first
// point of the row once it is wrapped around a circumference of the given width.
// Rows are the sets of points with the same y.
func SeamMismatch(points []r2.Vec, spec lattice.Spec, width float64) float64 {
	type row struct{ min, max float64 }
	rows := make(map[int64]*row)
	for _, p := range points {
		k := int64(math.Round(p.Y / rowTol))
		r, ok := rows[k]
		if !ok {
			rows[k] = &row{p.X, p.X}
			continue
		}
		r.min = math.Min(r.min, p.X)
		r.max = math.Max(r.max, p.X)
	}
	a := lattice.Period(spec)
	worst := 0.0
	for _, r := range rows {
		gap := width - (r.max - r.min)
		worst = math.Max(worst, math.Abs(gap-a))
	}
	return worst
}

// MapToCylinder wraps lattice points, generated by the caller over a width close to
// the circumference 2*pi*radius (see ShellWidth), around a cylinder. A point (x, y) goes to the angle
// x/radius and to y along the cylinder axis, which lies along alignment and passes
// through the origin. The orientation of each placement takes the local x axis of the
// residue to the tangent, the local y axis to the cylinder axis and the local z axis to
// the outward radial direction. If, in any row, the gap across the seam differs from
// the lattice period by more than half a period, an error of the ErrNonClosingLattice
// kind is returned.
//
// If cp closes one or both ends, a disk of the same lattice is added at 0 and/or at
// height along the axis, after the shell placements. The bottom disk is flipped so the
// local z axis of its residues points away from the cylinder.
func MapToCylinder(points []r2.Vec, spec lattice.Spec, radius, height float64, alignment substrate.Axis, cp substrate.Cap) ([]substrate.Placement, error) {
	if !alignment.Valid() {
		return nil, substrate.Errorf(substrate.ErrInvalidComponent, "MapToCylinder", "invalid alignment %v", alignment)
	}
	if !(radius > 0) || !(height > 0) || math.IsInf(radius, 0) || math.IsInf(height, 0) {
		return nil, substrate.Errorf(substrate.ErrInvalidComponent, "MapToCylinder", "radius and height must be positive, got %g and %g", radius, height)
	}
	if err := CheckClosure(spec, radius); err != nil {
		return nil, substrate.Decorate(err, "MapToCylinder")
	}
	w := 2 * math.Pi * radius
	a := lattice.Period(spec)
	if m := SeamMismatch(points, spec, w); m > a/2 {
		return nil, substrate.Errorf(substrate.ErrNonClosingLattice, "MapToCylinder", "the seam gap is off the lattice period %.4f nm by %.4f nm around a circumference of %.4f nm", a, m, w)
	}
	ret := make([]substrate.Placement, 0, len(points))
	for _, p := range points {
		theta := 2 * math.Pi * p.X / w
		sin, cos := math.Sincos(theta)
		pos := alignment.Embed(radius*cos, radius*sin, p.Y)
		frame := v3.FromVecs([]r3.Vec{
			alignment.Embed(-sin, cos, 0), //tangent
			alignment.Embed(0, 0, 1),      //axis
			alignment.Embed(cos, sin, 0),  //radial
		})
		ret = append(ret, substrate.Placement{Position: pos, Orientation: frame, Part: substrate.PartShell})
	}
	if cp.Bottom() {
		bottom, err := capPlacements(spec, radius, 0, alignment, substrate.PartBottomCap)
		if err != nil {
			return nil, substrate.Decorate(err, "MapToCylinder")
		}
		ret = append(ret, bottom...)
	}
	if cp.Top() {
		top, err := capPlacements(spec, radius, height, alignment, substrate.PartTopCap)
		if err != nil {
			return nil, substrate.Decorate(err, "MapToCylinder")
		}
		ret = append(ret, top...)
	}
	return ret, nil
}

// Disk returns the points of the lattice inside a circle of the given radius,
// centered at the origin. The lattice is generated over a 2*radius square and
// then centered, so a lattice point always sits at (-radius, -radius).
func Disk(spec lattice.Spec, radius float64) ([]r2.Vec, error) {
	points, err := lattice.Generate(spec, 2*radius, 2*radius)
	if err != nil {
		return nil, substrate.Decorate(err, "Disk")
	}
	points = lattice.Translate(points, r2.Vec{X: -radius, Y: -radius})
	lim := radius * (1 + diskTol)
	ret := points[:0]
	for _, p := range points {
		if r2.Norm(p) <= lim {
			ret = append(ret, p)
		}
	}
	return ret, nil
}

func capPlacements(spec lattice.Spec, radius, at float64, alignment substrate.Axis, part substrate.Part) ([]substrate.Placement, error) {
	points, err := Disk(spec, radius)
	if err != nil {
		return nil, err
	}
	//the top cap faces +axis, the bottom one is turned around its local x axis.
	frame := alignment.Frame()
	if part == substrate.PartBottomCap {
		frame = v3.FromVecs([]r3.Vec{alignment.Embed(1, 0, 0), alignment.Embed(0, -1, 0), alignment.Embed(0, 0, -1)})
	}
	ret := make([]substrate.Placement, len(points))
	for i, p := range points {
		ret[i] = substrate.Placement{Position: alignment.Embed(p.X, p.Y, at), Orientation: frame, Part: part}
	}
	return ret, nil
}

// Cylinder generates the lattice of the component over the ShellWidth for its
// radius and over its height, and maps it with MapToCylinder.
func Cylinder(cyl *substrate.SurfaceCylinder) ([]substrate.Placement, error) {
	if err := cyl.Validate(); err != nil {
		return nil, substrate.Decorate(err, "Cylinder")
	}
	if err := CheckClosure(cyl.Lattice, cyl.Radius); err != nil {
		return nil, substrate.Decorate(err, "Cylinder")
	}
	points, err := lattice.Generate(cyl.Lattice, ShellWidth(cyl.Lattice, cyl.Radius), cyl.Height)
	if err != nil {
		return nil, substrate.Decorate(err, "Cylinder")
	}
	pl, err := MapToCylinder(points, cyl.Lattice, cyl.Radius, cyl.Height, cyl.Alignment, cyl.Cap)
	if err != nil {
		return nil, substrate.Decorate(err, "Cylinder")
	}
	return pl, nil
}
