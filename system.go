/*
 * system.go, part of gosubstrate
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

	"github.com/rmera/gosubstrate/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Part tells which piece of a component a Placement belongs to.
type Part int

const (
	PartSheet Part = iota
	PartShell
	PartBottomCap
	PartTopCap
)

func (P Part) String() string {
	switch P {
	case PartSheet:
		return "sheet"
	case PartShell:
		return "shell"
	case PartBottomCap:
		return "bottom cap"
	case PartTopCap:
		return "top cap"
	}
	return fmt.Sprintf("Part(%d)", int(P))
}

// Placement is where, and how rotated, a residue template is stamped.
// A local position p goes to p*Orientation + Position.
type Placement struct {
	Position    r3.Vec
	Orientation *v3.Matrix
	Part        Part
}

// Instance is a residue with absolute coordinates, one row per atom of Residue.
type Instance struct {
	Residue *Residue
	Coords  *v3.Matrix
}

// Translated returns a copy of I displaced by the vector by.
func (I *Instance) Translated(by r3.Vec) *Instance {
	c := I.Coords.Clone()
	c.AddVec(c, by)
	return &Instance{Residue: I.Residue, Coords: c}
}

// Centroid returns the geometric center of the atoms of I.
func (I *Instance) Centroid() r3.Vec {
	return I.Coords.Centroid()
}

// Block is a pre-built set of residues with the extent of its periodic box.
type Block struct {
	Residues []*Instance
	Size     r3.Vec
}

// Validate returns an error of the ErrBlockLoad kind if the block can't be tiled.
func (B *Block) Validate() error {
	if B == nil {
		return NewError(ErrBlockLoad, "nil block", "Block.Validate")
	}
	if !positive(B.Size.X) || !positive(B.Size.Y) || !positive(B.Size.Z) {
		return Errorf(ErrBlockLoad, "Block.Validate", "block size must be positive, got %v", B.Size)
	}
	if len(B.Residues) == 0 {
		return NewError(ErrBlockLoad, "block has no residues", "Block.Validate")
	}
	for i, r := range B.Residues {
		if r == nil || r.Residue == nil {
			return Errorf(ErrBlockLoad, "Block.Validate", "residue %d of the block has no template", i)
		}
		if r.Coords.NVecs() != r.Residue.Len() {
			return Errorf(ErrBlockLoad, "Block.Validate", "residue %d (%s) has %d coordinates for %d atoms", i, r.Residue.Code, r.Coords.NVecs(), r.Residue.Len())
		}
	}
	return nil
}

// Len returns the number of atoms in the block.
func (B *Block) Len() int {
	n := 0
	for _, r := range B.Residues {
		n += r.Residue.Len()
	}
	return n
}

// Atom is an atom of a built System. Coordinates are kept in the System.
type Atom struct {
	ID          int //1-based serial over the whole system
	ResidueID   int //1-based, contiguous over the whole system
	ResidueCode string
	Code        string
}

// Copy returns a copy of the atom.
func (A *Atom) Copy() *Atom {
	ret := *A
	return &ret
}

// System is the result of a build: atoms, their coordinates (row i of Coords
// belongs to Atoms[i]), and the box that contains them.
type System struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Box    r3.Vec
}

// Len returns the number of atoms in the system.
func (S *System) Len() int {
	return len(S.Atoms)
}

// Residues returns the number of residues in the system.
func (S *System) Residues() int {
	if len(S.Atoms) == 0 {
		return 0
	}
	return S.Atoms[len(S.Atoms)-1].ResidueID
}

// Translate displaces all the coordinates of S by the vector by. The box is
// not changed.
func (S *System) Translate(by r3.Vec) {
	if S.Len() == 0 {
		return
	}
	S.Coords.AddVec(S.Coords, by)
}

// WithPBC moves every coordinate into the box [0, Box) along each axis with
// a positive box side, using periodic boundary conditions. Atoms of one residue
// may end up on different sides of the box.
func (S *System) WithPBC() {
	for i := 0; i < S.Len(); i++ {
		p := S.Coords.Vec(i)
		S.Coords.SetVec(i, r3.Vec{X: wrap(p.X, S.Box.X), Y: wrap(p.Y, S.Box.Y), Z: wrap(p.Z, S.Box.Z)})
	}
}

func wrap(x, side float64) float64 {
	if side <= 0 {
		return x
	}
	x = math.Mod(x, side)
	if x < 0 {
		x += side
	}
	//-tiny+side can round to side itself
	if x >= side {
		x = 0
	}
	return x
}

// Describe returns a short summary of the system.
func (S *System) Describe() string {
	return fmt.Sprintf("System of %d atoms in %d residues, box %.3f x %.3f x %.3f nm", S.Len(), S.Residues(), S.Box.X, S.Box.Y, S.Box.Z)
}
