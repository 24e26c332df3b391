/*
 * sheet.go, part of gosubstrate
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

// Package surface maps 2D lattices onto flat sheets and cylindrical shells,
// producing the Placements at which residues are stamped.
package surface

import (
	"math"
	"math/rand/v2"

	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/lattice"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat/distuv"
)

// roughness draws are truncated at this many standard deviations.
const truncation = 3.0

// MapToSheet puts each lattice point in the plane perpendicular to normal, at 0 along
// normal. If stdZ is positive, each point is then displaced along normal by an
// independent draw from a normal distribution with standard deviation stdZ,
// truncated at 3 standard deviations. The draws come from rng, which is required
// in that case. All the placements share one orientation, which takes the
// local z axis of the residue to normal.
func MapToSheet(points []r2.Vec, normal substrate.Axis, stdZ float64, rng *rand.Rand) ([]substrate.Placement, error) {
	if !normal.Valid() {
		return nil, substrate.Errorf(substrate.ErrInvalidComponent, "MapToSheet", "invalid normal %v", normal)
	}
	if stdZ < 0 || math.IsNaN(stdZ) || math.IsInf(stdZ, 0) {
		return nil, substrate.Errorf(substrate.ErrInvalidComponent, "MapToSheet", "roughness can't be %g", stdZ)
	}
	var draw func() float64
	if stdZ > 0 {
		if rng == nil {
			return nil, substrate.Errorf(substrate.ErrNoRandomSource, "MapToSheet", "std_z = %g", stdZ)
		}
		draw = truncatedNormal(stdZ, rng)
	}
	frame := normal.Frame()
	ret := make([]substrate.Placement, len(points))
	for i, p := range points {
		w := 0.0
		if draw != nil {
			w = draw()
		}
		ret[i] = substrate.Placement{Position: normal.Embed(p.X, p.Y, w), Orientation: frame, Part: substrate.PartSheet}
	}
	return ret, nil
}

// truncatedNormal returns a function that draws from a normal distribution
// of mean 0 and standard deviation sigma, restricted to +-3 sigma, by inverting
// the CDF on a uniform draw from rng.
func truncatedNormal(sigma float64, rng *rand.Rand) func() float64 {
	dist := distuv.Normal{Mu: 0, Sigma: sigma}
	lo := dist.CDF(-truncation * sigma)
	hi := dist.CDF(truncation * sigma)
	return func() float64 {
		return dist.Quantile(lo + (hi-lo)*rng.Float64())
	}
}

// Sheet generates the lattice of the component over its Length x Width and
// maps it with MapToSheet. rng is only used, and only required, for rough sheets.
func Sheet(sheet *substrate.SurfaceSheet, rng *rand.Rand) ([]substrate.Placement, error) {
	if err := sheet.Validate(); err != nil {
		return nil, substrate.Decorate(err, "Sheet")
	}
	points, err := lattice.Generate(sheet.Lattice, sheet.Length, sheet.Width)
	if err != nil {
		return nil, substrate.Decorate(err, "Sheet")
	}
	pl, err := MapToSheet(points, sheet.Normal, sheet.StdZ, rng)
	if err != nil {
		return nil, substrate.Decorate(err, "Sheet")
	}
	return pl, nil
}
