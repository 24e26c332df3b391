/*
 * tile.go, part of gosubstrate
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

package volume

import (
	"math"

	substrate "github.com/rmera/gosubstrate"
	"gonum.org/v1/gonum/spatial/r3"
)

func checkVolume(vol substrate.VolumeType, caller string) error {
	switch vol.(type) {
	case substrate.Cuboid, substrate.Cylinder:
		return substrate.Decorate(vol.Validate(), caller)
	}
	return substrate.Errorf(substrate.ErrInvalidComponent, caller, "unsupported volume type %T", vol)
}

// Counts returns how many copies of a block of the given size are needed along
// each axis to cover vol. For a Cylinder, one more copy is added along the
// two axes perpendicular to its normal.
func Counts(size r3.Vec, vol substrate.VolumeType) [3]int {
	box := BoundingBox(vol)
	n := [3]int{count(box.X, size.X), count(box.Y, size.Y), count(box.Z, size.Z)}
	if c, ok := vol.(substrate.Cylinder); ok {
		for i, ax := range []substrate.Axis{substrate.X, substrate.Y, substrate.Z} {
			if ax != c.Normal {
				n[i]++
			}
		}
	}
	return n
}

func count(target, cell float64) int {
	n := int(math.Ceil(target/cell - edgeTol))
	if n < 1 {
		n = 1
	}
	return n
}

// Tile replicates the residues of block periodically until the bounding box of
// vol is covered. The copy with translation (i*Lx, j*Ly, k*Lz) comes before
// (i, j, k+1), which comes before (i, j+1, 0) and so on. Within a copy, residues
// keep the order they have in the block.
func Tile(block *substrate.Block, vol substrate.VolumeType) ([]*substrate.Instance, error) {
	if err := block.Validate(); err != nil {
		return nil, substrate.Decorate(err, "Tile")
	}
	if err := checkVolume(vol, "Tile"); err != nil {
		return nil, err
	}
	n := Counts(block.Size, vol)
	ret := make([]*substrate.Instance, 0, n[0]*n[1]*n[2]*len(block.Residues))
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			for k := 0; k < n[2]; k++ {
				by := r3.Vec{X: float64(i) * block.Size.X, Y: float64(j) * block.Size.Y, Z: float64(k) * block.Size.Z}
				for _, r := range block.Residues {
					ret = append(ret, r.Translated(by))
				}
			}
		}
	}
	return ret, nil
}

// Keep returns true if the residue instance is kept in vol under the given policy.
func Keep(inst *substrate.Instance, vol substrate.VolumeType, policy substrate.TrimPolicy) bool {
	if policy == substrate.Centroid {
		return Contains(vol, inst.Centroid())
	}
	for i := 0; i < inst.Coords.NVecs(); i++ {
		if !Contains(vol, inst.Coords.Vec(i)) {
			return false
		}
	}
	return true
}

// Trim returns the instances that lie inside vol, in their original order.
// Residues are kept or dropped as a whole: with the AnyAtom policy a residue is
// dropped if any of its atoms is outside, with the Centroid policy if its center is.
// The instances are not copied.
func Trim(instances []*substrate.Instance, vol substrate.VolumeType, policy substrate.TrimPolicy) ([]*substrate.Instance, error) {
	if err := checkVolume(vol, "Trim"); err != nil {
		return nil, err
	}
	if policy != substrate.AnyAtom && policy != substrate.Centroid {
		return nil, substrate.Errorf(substrate.ErrInvalidComponent, "Trim", "unknown trimming policy %v", policy)
	}
	ret := make([]*substrate.Instance, 0, len(instances))
	for _, inst := range instances {
		if inst.Coords.NVecs() == 0 {
			continue
		}
		if Keep(inst, vol, policy) {
			ret = append(ret, inst)
		}
	}
	if len(ret) == 0 {
		return nil, substrate.Errorf(substrate.ErrEmptyVolume, "Trim", "none of %d residues fits in the %s", len(instances), vol)
	}
	return ret, nil
}

// TileAndTrim tiles block over vol and trims the result to it.
func TileAndTrim(block *substrate.Block, vol substrate.VolumeType, policy substrate.TrimPolicy) ([]*substrate.Instance, error) {
	tiled, err := Tile(block, vol)
	if err != nil {
		return nil, substrate.Decorate(err, "TileAndTrim")
	}
	ret, err := Trim(tiled, vol, policy)
	if err != nil {
		return nil, substrate.Decorate(err, "TileAndTrim")
	}
	return ret, nil
}

