/*
 * residue.go, part of gosubstrate
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

// ResidueAtom is one atom of a residue template, with its position in the
// local frame of the residue.
type ResidueAtom struct {
	Code     string
	Position r3.Vec
}

// Residue is a named rigid group of atoms, placed as a unit. The positions
// of the atoms are offsets in a right-handed local frame. A Residue should
// not be modified once it is used in a build.
type Residue struct {
	Code  string
	Atoms []ResidueAtom
}

// NewResidue returns a validated residue with the given code and atoms.
func NewResidue(code string, atoms ...ResidueAtom) (*Residue, error) {
	r := &Residue{Code: code, Atoms: append([]ResidueAtom(nil), atoms...)}
	if err := r.Validate(); err != nil {
		return nil, Decorate(err, "NewResidue")
	}
	return r, nil
}

// Validate returns an error if the residue has no code, no atoms, or
// two atoms with the same code.
func (R *Residue) Validate() error {
	if R == nil {
		return NewError(ErrInvalidComponent, "nil residue", "Residue.Validate")
	}
	if strings.TrimSpace(R.Code) == "" {
		return NewError(ErrInvalidComponent, "residue without a code", "Residue.Validate")
	}
	if len(R.Atoms) == 0 {
		return Errorf(ErrInvalidComponent, "Residue.Validate", "residue %s has no atoms", R.Code)
	}
	seen := make(map[string]bool, len(R.Atoms))
	for _, a := range R.Atoms {
		if seen[a.Code] {
			return Errorf(ErrDuplicateAtomCode, "Residue.Validate", "atom %s appears twice in residue %s", a.Code, R.Code)
		}
		seen[a.Code] = true
	}
	return nil
}

// Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.Atoms)
}

// Coords returns a new matrix with the local positions of the atoms, one per row.
func (R *Residue) Coords() *v3.Matrix {
	vecs := make([]r3.Vec, len(R.Atoms))
	for i, a := range R.Atoms {
		vecs[i] = a.Position
	}
	return v3.FromVecs(vecs)
}

// Describe returns a one-line summary of the residue.
func (R *Residue) Describe() string {
	codes := make([]string, len(R.Atoms))
	for i, a := range R.Atoms {
		codes[i] = a.Code
	}
	return fmt.Sprintf("%s (%d atoms: %s)", R.Code, len(R.Atoms), strings.Join(codes, ", "))
}

// Graphene returns the residue used for graphene sheets: a single carbon
// at every lattice point, lifted half a bond from the lattice plane.
func Graphene(bond float64) *Residue {
	b := bond / 2
	return &Residue{
		Code:  "GRPH",
		Atoms: []ResidueAtom{{Code: "C", Position: r3.Vec{X: b, Y: b, Z: b}}},
	}
}

// Silica returns a rigid SiO2 residue. The oxygens lie 0.151 nm above and
// below the silicon, along the local z axis.
func Silica(spacing float64) *Residue {
	const dz = 0.151
	base := r3.Vec{X: spacing / 4, Y: spacing / 6}
	return &Residue{
		Code: "SIO",
		Atoms: []ResidueAtom{
			{Code: "O1", Position: r3.Add(base, r3.Vec{Z: dz})},
			{Code: "SI", Position: base},
			{Code: "O2", Position: r3.Add(base, r3.Vec{Z: -dz})},
		},
	}
}
