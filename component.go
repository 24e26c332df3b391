/*
 * component.go, part of gosubstrate
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
	"math"
	"strings"

	"github.com/rmera/gosubstrate/lattice"
	"gonum.org/v1/gonum/spatial/r3"
)

// Component is a definition of something that can be built into a System.
// The only implementations are SurfaceSheet, SurfaceCylinder and VolumeConf.
type Component interface {
	// ComponentName returns the name under which the component is stored.
	ComponentName() string
	// Validate returns an error if the component can't be built.
	Validate() error
	// Describe returns a one-line summary.
	Describe() string
	isComponent()
}

// SurfaceSheet is a flat tiling of Residue over Lattice, lying in the plane
// perpendicular to Normal. Length and Width are the extents along the first and
// second in-plane axes (see Axis.Embed). StdZ, if positive, is the scale of a random
// displacement of each residue along Normal.
type SurfaceSheet struct {
	Name        string
	Description string
	Residue     *Residue
	Lattice     lattice.Spec
	StdZ        float64
	Normal      Axis
	Length      float64
	Width       float64
}

func (S *SurfaceSheet) isComponent() {}

// ComponentName returns the name of the sheet, or "" for a nil sheet.
func (S *SurfaceSheet) ComponentName() string {
	if S == nil {
		return ""
	}
	return S.Name
}

func (S *SurfaceSheet) Validate() error {
	if err := validateSurface(S.Residue, S.Lattice); err != nil {
		return Decorate(err, "SurfaceSheet.Validate")
	}
	if !S.Normal.Valid() {
		return Errorf(ErrInvalidComponent, "SurfaceSheet.Validate", "sheet %s: invalid normal %v", S.Name, S.Normal)
	}
	if !positive(S.Length) || !positive(S.Width) {
		return Errorf(ErrInvalidComponent, "SurfaceSheet.Validate", "sheet %s: size must be positive, got %g x %g", S.Name, S.Length, S.Width)
	}
	if S.StdZ < 0 || math.IsNaN(S.StdZ) || math.IsInf(S.StdZ, 0) {
		return Errorf(ErrInvalidComponent, "SurfaceSheet.Validate", "sheet %s: roughness can't be %g", S.Name, S.StdZ)
	}
	return nil
}

func (S *SurfaceSheet) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Surface sheet %s of %s on a %s, %.3f x %.3f nm, normal %v", quoted(S.Name), residueCode(S.Residue), latticeString(S.Lattice), S.Length, S.Width, S.Normal)
	if S.StdZ > 0 {
		fmt.Fprintf(&b, ", roughness %.3f nm", S.StdZ)
	}
	return withDescription(b.String(), S.Description)
}

// SurfaceCylinder is Lattice wrapped around a cylindrical shell of the given radius and
// height, whose axis lies along Alignment. Cap selects which ends are closed with
// a disk of the same lattice.
type SurfaceCylinder struct {
	Name        string
	Description string
	Residue     *Residue
	Lattice     lattice.Spec
	Alignment   Axis
	Cap         Cap
	Radius      float64
	Height      float64
}

func (S *SurfaceCylinder) isComponent() {}

func (S *SurfaceCylinder) ComponentName() string {
	if S == nil {
		return ""
	}
	return S.Name
}

func (S *SurfaceCylinder) Validate() error {
	if err := validateSurface(S.Residue, S.Lattice); err != nil {
		return Decorate(err, "SurfaceCylinder.Validate")
	}
	if !S.Alignment.Valid() {
		return Errorf(ErrInvalidComponent, "SurfaceCylinder.Validate", "cylinder %s: invalid alignment %v", S.Name, S.Alignment)
	}
	if S.Cap < CapNone || S.Cap > CapBoth {
		return Errorf(ErrInvalidComponent, "SurfaceCylinder.Validate", "cylinder %s: invalid cap %v", S.Name, S.Cap)
	}
	if !positive(S.Radius) || !positive(S.Height) {
		return Errorf(ErrInvalidComponent, "SurfaceCylinder.Validate", "cylinder %s: radius and height must be positive, got %g and %g", S.Name, S.Radius, S.Height)
	}
	return nil
}

func (S *SurfaceCylinder) Describe() string {
	d := fmt.Sprintf("Surface cylinder %s of %s on a %s, radius %.3f nm, height %.3f nm, along %v, caps: %v", quoted(S.Name), residueCode(S.Residue), latticeString(S.Lattice), S.Radius, S.Height, S.Alignment, S.Cap)
	return withDescription(d, S.Description)
}

// Circumference returns the lattice width that wraps once around the cylinder.
func (S *SurfaceCylinder) Circumference() float64 {
	return 2 * math.Pi * S.Radius
}

// VolumeConf is a pre-built block of residues, read from Path, tiled and cut to Volume.
type VolumeConf struct {
	Name        string
	Description string
	Path        string
	Volume      VolumeType
}

func (V *VolumeConf) isComponent() {}

func (V *VolumeConf) ComponentName() string {
	if V == nil {
		return ""
	}
	return V.Name
}

func (V *VolumeConf) Validate() error {
	if strings.TrimSpace(V.Path) == "" {
		return Errorf(ErrInvalidComponent, "VolumeConf.Validate", "volume %s: no block file given", V.Name)
	}
	if V.Volume == nil {
		return Errorf(ErrInvalidComponent, "VolumeConf.Validate", "volume %s: no volume type given", V.Name)
	}
	if err := V.Volume.Validate(); err != nil {
		return Decorate(err, "VolumeConf.Validate")
	}
	return nil
}

func (V *VolumeConf) Describe() string {
	vol := "no volume"
	if V.Volume != nil {
		vol = V.Volume.String()
	}
	return withDescription(fmt.Sprintf("Volume %s from '%s' cut to a %s", quoted(V.Name), V.Path, vol), V.Description)
}

// VolumeType is the shape a block is cut to. The only implementations are
// Cuboid and Cylinder.
type VolumeType interface {
	Validate() error
	String() string
	isVolume()
}

// Cuboid is the box [0, Size.X] x [0, Size.Y] x [0, Size.Z].
type Cuboid struct {
	Size r3.Vec
}

func (C Cuboid) isVolume() {}

func (C Cuboid) Validate() error {
	if !positive(C.Size.X) || !positive(C.Size.Y) || !positive(C.Size.Z) {
		return Errorf(ErrInvalidComponent, "Cuboid.Validate", "cuboid size must be positive, got %v", C.Size)
	}
	return nil
}

func (C Cuboid) String() string {
	return fmt.Sprintf("cuboid of %.3f x %.3f x %.3f nm", C.Size.X, C.Size.Y, C.Size.Z)
}

// Cylinder is a cylinder of the given radius, with its axis along Normal, spanning
// [0, Height] along Normal. The axis passes through (Radius, Radius) in the
// perpendicular plane, so the cylinder's bounding box starts at the origin.
type Cylinder struct {
	Radius float64
	Height float64
	Normal Axis
}

func (C Cylinder) isVolume() {}

func (C Cylinder) Validate() error {
	if !positive(C.Radius) || !positive(C.Height) {
		return Errorf(ErrInvalidComponent, "Cylinder.Validate", "cylinder radius and height must be positive, got %g and %g", C.Radius, C.Height)
	}
	if !C.Normal.Valid() {
		return Errorf(ErrInvalidComponent, "Cylinder.Validate", "invalid cylinder normal %v", C.Normal)
	}
	return nil
}

func (C Cylinder) String() string {
	return fmt.Sprintf("cylinder of radius %.3f nm and height %.3f nm along %v", C.Radius, C.Height, C.Normal)
}

func validateSurface(res *Residue, spec lattice.Spec) error {
	if res == nil {
		return NewError(ErrUnknownResidueCode, "surface component without a residue", "validateSurface")
	}
	if err := res.Validate(); err != nil {
		return Decorate(err, "validateSurface")
	}
	if spec == nil {
		return NewError(ErrInvalidLattice, "surface component without a lattice", "validateSurface")
	}
	return Decorate(spec.Validate(), "validateSurface")
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

func quoted(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return "'" + name + "'"
}

func residueCode(r *Residue) string {
	if r == nil {
		return "no residue"
	}
	return r.Code
}

func latticeString(spec lattice.Spec) string {
	if spec == nil {
		return "no lattice"
	}
	return spec.String()
}

func withDescription(s, desc string) string {
	if desc == "" {
		return s
	}
	return s + " (" + desc + ")"
}
