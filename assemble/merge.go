/*
 * merge.go, part of gosubstrate
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

package assemble

import (
	"fmt"

	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/v3"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// Entry is one component of an assembly, placed with its box starting at Origin.
// If Component is nil, it is looked up by Name.
type Entry struct {
	Name      string
	Component substrate.Component
	Origin    r3.Vec
}

// Assemble builds all the entries and merges them, in the order given. The
// builds run concurrently, at most Options.Cpus() at a time. Entry i uses
// the random stream Options.Rand(i), so the result does not depend on the
// order in which the builds finish. If any build fails, no System is returned.
func (B *Builder) Assemble(entries []Entry) (*substrate.System, error) {
	if len(entries) == 0 {
		return nil, substrate.NewError(substrate.ErrEmptySystem, "no components to assemble", "Assemble")
	}
	built := make([]*substrate.System, len(entries))
	var g errgroup.Group
	g.SetLimit(B.opts.Cpus())
	for i, e := range entries {
		g.Go(func() error {
			comp := e.Component
			if comp == nil {
				var err error
				comp, err = B.component(e.Name)
				if err != nil {
					return substrate.Decorate(err, fmt.Sprintf("Assemble: entry %d", i))
				}
			}
			sys, err := B.build(comp, e.Origin, B.opts.Rand(i))
			if err != nil {
				return substrate.Decorate(err, fmt.Sprintf("Assemble: entry %d (%s)", i, comp.ComponentName()))
			}
			built[i] = sys
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Merge(built...)
}

// Merge concatenates systems in order into a new System. Residues and atoms are
// renumbered so both stay contiguous and 1-based over the result, and the box is
// the per-axis maximum of the boxes. The given systems are not modified.
func Merge(systems ...*substrate.System) (*substrate.System, error) {
	if len(systems) == 0 {
		return nil, substrate.NewError(substrate.ErrEmptySystem, "no systems given", "Merge")
	}
	n := 0
	for i, s := range systems {
		if s == nil {
			return nil, substrate.Errorf(substrate.ErrEmptySystem, "Merge", "system %d is nil", i)
		}
		n += s.Len()
	}
	ret := &substrate.System{Atoms: make([]*substrate.Atom, 0, n), Coords: v3.Zeros(n)}
	resOffset, atOffset := 0, 0
	for _, s := range systems {
		for _, a := range s.Atoms {
			at := a.Copy()
			at.ID += atOffset
			at.ResidueID += resOffset
			ret.Atoms = append(ret.Atoms, at)
		}
		if l := s.Len(); l > 0 {
			ret.Coords.View(atOffset, l).Copy(s.Coords)
		}
		atOffset += s.Len()
		resOffset += s.Residues()
		ret.Box = maxVec(ret.Box, s.Box)
	}
	return ret, nil
}
