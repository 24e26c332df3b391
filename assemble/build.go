/*
 * build.go, part of gosubstrate
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

// Package assemble turns component definitions into Systems: it stamps residues at
// the placements computed by the surface package, or takes the residues left by the
// volume package, numbers them, and merges Systems together.
package assemble

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/lattice"
	"github.com/rmera/gosubstrate/surface"
	"github.com/rmera/gosubstrate/v3"
	"github.com/rmera/gosubstrate/volume"
	"gonum.org/v1/gonum/spatial/r3"
)

// Lookup gives access to stored residue and component definitions.
type Lookup interface {
	Residue(code string) (*substrate.Residue, error)
	Component(name string) (substrate.Component, error)
}

// BlockLoader reads the pre-built block used by a volume component.
type BlockLoader interface {
	LoadBlock(path string) (*substrate.Block, error)
}

// Builder builds components into Systems. The lookup and loader are only read,
// so a Builder can be used from several goroutines.
type Builder struct {
	lookup Lookup
	loader BlockLoader
	opts   *substrate.Options
}

// NewBuilder returns a Builder using the given collaborators. Either can be nil
// if the components built don't need it. If no options are given, the defaults are used.
func NewBuilder(lookup Lookup, loader BlockLoader, options ...*substrate.Options) *Builder {
	o := substrate.DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	return &Builder{lookup: lookup, loader: loader, opts: o}
}

// Options returns the options used by B.
func (B *Builder) Options() *substrate.Options {
	return B.opts
}

// Build builds one component with its bounding box starting at origin. The
// residues are numbered from 1 and the box of the returned System contains both
// origin plus the extent of the component and every atom. Nothing is returned
// on error.
func (B *Builder) Build(comp substrate.Component, origin r3.Vec) (*substrate.System, error) {
	sys, err := B.build(comp, origin, B.opts.Rand(0))
	if err != nil {
		return nil, substrate.Decorate(err, "Build")
	}
	return sys, nil
}

// BuildNamed looks a component up by name and builds it.
func (B *Builder) BuildNamed(name string, origin r3.Vec) (*substrate.System, error) {
	comp, err := B.component(name)
	if err != nil {
		return nil, substrate.Decorate(err, "BuildNamed")
	}
	return B.Build(comp, origin)
}

func (B *Builder) component(name string) (substrate.Component, error) {
	if B.lookup == nil {
		return nil, substrate.Errorf(substrate.ErrUnknownComponent, "component", "no database to look up %q", name)
	}
	return B.lookup.Component(name)
}

func (B *Builder) build(comp substrate.Component, origin r3.Vec, rng *rand.Rand) (*substrate.System, error) {
	switch c := comp.(type) {
	case *substrate.SurfaceSheet:
		if c == nil {
			break
		}
		s := *c
		res, err := B.residue(s.Residue)
		if err != nil {
			return nil, err
		}
		s.Residue = res
		pl, err := surface.Sheet(&s, rng)
		if err != nil {
			return nil, err
		}
		corner := r3.Add(origin, s.Normal.Embed(s.Length, s.Width, 0))
		return stamp(res, pl, origin, origin, corner), nil
	case *substrate.SurfaceCylinder:
		if c == nil {
			break
		}
		s := *c
		res, err := B.residue(s.Residue)
		if err != nil {
			return nil, err
		}
		s.Residue = res
		pl, err := surface.Cylinder(&s)
		if err != nil {
			return nil, err
		}
		if seam := seam(s.Lattice, s.Circumference()); seam > 1e-6 {
			log.Printf("Cylinder %s: the circumference is not a whole number of lattice periods, the seam is off by %.4f nm", s.Name, seam)
		}
		//the axis goes through (r, r) so the box starts at origin.
		shift := r3.Add(origin, s.Alignment.Embed(s.Radius, s.Radius, 0))
		corner := r3.Add(origin, s.Alignment.Embed(2*s.Radius, 2*s.Radius, s.Height))
		return stamp(res, pl, shift, origin, corner), nil
	case *substrate.VolumeConf:
		if c == nil {
			break
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		block, err := B.block(c.Path)
		if err != nil {
			return nil, err
		}
		kept, err := volume.TileAndTrim(block, c.Volume, B.opts.TrimPolicy())
		if err != nil {
			return nil, substrate.Decorate(err, fmt.Sprintf("build: volume %s", c.Name))
		}
		return fromInstances(kept, origin, volume.BoundingBox(c.Volume)), nil
	}
	return nil, substrate.Errorf(substrate.ErrInvalidComponent, "build", "can't build a %T", comp)
}

// residue returns res, or the stored residue with the same code if res
// is only a reference (no atoms).
func (B *Builder) residue(res *substrate.Residue) (*substrate.Residue, error) {
	if res == nil || len(res.Atoms) > 0 {
		return res, nil
	}
	if B.lookup == nil {
		return nil, substrate.Errorf(substrate.ErrUnknownResidueCode, "residue", "no database to look up residue %q", res.Code)
	}
	ret, err := B.lookup.Residue(res.Code)
	if err != nil {
		return nil, substrate.Decorate(err, "residue")
	}
	return ret, nil
}

func (B *Builder) block(path string) (*substrate.Block, error) {
	if B.loader == nil {
		return nil, substrate.Errorf(substrate.ErrBlockLoad, "block", "no block loader for %s", path)
	}
	b, err := B.loader.LoadBlock(path)
	if err != nil {
		if _, ok := err.(substrate.Error); ok {
			return nil, substrate.Decorate(err, "block")
		}
		return nil, substrate.Errorf(substrate.ErrBlockLoad, "block", "%s: %s", path, err)
	}
	return b, nil
}

// seam returns how far the circumference is from a whole number of lattice periods.
func seam(spec lattice.Spec, circumference float64) float64 {
	a := lattice.Period(spec)
	return math.Abs(circumference - math.Round(circumference/a)*a)
}

// stamp builds a System with one residue per placement, displaced by shift.
func stamp(res *substrate.Residue, pl []substrate.Placement, shift, origin, corner r3.Vec) *substrate.System {
	coords := surface.Instantiate(res, pl)
	residues := make([]*substrate.Residue, len(pl))
	for i := range residues {
		residues[i] = res
	}
	return newSystem(residues, coords, shift, origin, corner)
}

func fromInstances(inst []*substrate.Instance, origin, extent r3.Vec) *substrate.System {
	residues := make([]*substrate.Residue, len(inst))
	n := 0
	for i, in := range inst {
		residues[i] = in.Residue
		n += in.Coords.NVecs()
	}
	coords := v3.Zeros(n)
	off := 0
	for _, in := range inst {
		m := in.Coords.NVecs()
		coords.View(off, m).Copy(in.Coords)
		off += m
	}
	return newSystem(residues, coords, origin, origin, r3.Add(origin, extent))
}

// liftTol is the distance below origin that atoms may reach before the
// component is lifted.
const liftTol = 1e-9

// newSystem numbers the atoms of residues, whose coordinates are in coords in the
// same order, and moves them by shift. Atoms that end up below origin along any
// axis (the bottom oxygens of a silica sheet, a flipped cap, a rough sheet) lift
// the whole component so its lowest atom sits at origin. The box is the per-axis
// maximum of corner and every coordinate, padded above by the lift so the
// periodic images of the component keep the same gap.
func newSystem(residues []*substrate.Residue, coords *v3.Matrix, shift, origin, corner r3.Vec) *substrate.System {
	atoms := make([]*substrate.Atom, 0, coords.NVecs())
	for i, r := range residues {
		for _, a := range r.Atoms {
			atoms = append(atoms, &substrate.Atom{ID: len(atoms) + 1, ResidueID: i + 1, ResidueCode: r.Code, Code: a.Code})
		}
	}
	sys := &substrate.System{Atoms: atoms, Coords: coords}
	sys.Translate(shift)
	low := below(coords, origin)
	if low != (r3.Vec{}) {
		coords.SubVec(coords, low)
	}
	sys.Box = box(corner, coords, r3.Scale(-1, low))
	return sys
}

// below returns, per axis, how far the lowest vector of coords is under origin,
// as a negative number, or 0 if it is not further than liftTol.
func below(coords *v3.Matrix, origin r3.Vec) r3.Vec {
	if coords.NVecs() == 0 {
		return r3.Vec{}
	}
	min, _ := coords.Bounds()
	d := r3.Sub(min, origin)
	f := func(x float64) float64 {
		if x < -liftTol {
			return x
		}
		return 0
	}
	return r3.Vec{X: f(d.X), Y: f(d.Y), Z: f(d.Z)}
}

func box(corner r3.Vec, coords *v3.Matrix, pad r3.Vec) r3.Vec {
	b := r3.Vec{X: math.Max(corner.X, 0), Y: math.Max(corner.Y, 0), Z: math.Max(corner.Z, 0)}
	if coords.NVecs() == 0 {
		return b
	}
	_, max := coords.Bounds()
	return maxVec(b, r3.Add(max, pad))
}

func maxVec(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
