/*
 * volume.go, part of gosubstrate
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

// Package volume fills a volume with copies of a pre-built block of residues
// and cuts the result to the volume, keeping or dropping whole residues.
package volume

import (
	"math"

	substrate "github.com/rmera/gosubstrate"
	"gonum.org/v1/gonum/spatial/r3"
)

// absolute tolerance for points on the border of a volume, relative
// to the size of the volume when that is larger than 1 nm.
const edgeTol = 1e-9

// BoundingBox returns the extent of the axis-aligned box, starting at the
// origin, that contains vol.
func BoundingBox(vol substrate.VolumeType) r3.Vec {
	switch v := vol.(type) {
	case substrate.Cuboid:
		return v.Size
	case substrate.Cylinder:
		return v.Normal.Embed(2*v.Radius, 2*v.Radius, v.Height)
	}
	panic("volume: unknown volume type")
}

// Contains returns true if p lies inside vol or on its border.
func Contains(vol substrate.VolumeType, p r3.Vec) bool {
	switch v := vol.(type) {
	case substrate.Cuboid:
		return within(p.X, v.Size.X) && within(p.Y, v.Size.Y) && within(p.Z, v.Size.Z)
	case substrate.Cylinder:
		a, b, h := v.Normal.Project(p)
		if !within(h, v.Height) {
			return false
		}
		return math.Hypot(a-v.Radius, b-v.Radius) <= v.Radius+eps(v.Radius)
	}
	panic("volume: unknown volume type")
}

func within(x, max float64) bool {
	e := eps(max)
	return x >= -e && x <= max+e
}

func eps(size float64) float64 {
	return edgeTol * math.Max(1, size)
}
