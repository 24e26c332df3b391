/*
 * instantiate.go, part of gosubstrate
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
	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/v3"
)

// Instantiate stamps residue at each placement. It returns the coordinates
// of all the atoms, residue after residue, in the order of the placements.
// A nil orientation leaves the residue unrotated.
func Instantiate(residue *substrate.Residue, placements []substrate.Placement) *v3.Matrix {
	m := residue.Len()
	ret := v3.Zeros(m * len(placements))
	if m == 0 {
		return ret
	}
	local := residue.Coords()
	for k, p := range placements {
		view := ret.View(k*m, m)
		if p.Orientation == nil {
			view.Copy(local)
		} else {
			view.Rotate(local, p.Orientation)
		}
		view.AddVec(view, p.Position)
	}
	return ret
}
