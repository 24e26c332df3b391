/*
 * errors.go, part of gosubstrate
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

package lattice

import "errors"

// ErrInvalidLattice is the kind of every error returned by this package.
// The root package exports the same value, so errors.Is works from either side.
var ErrInvalidLattice = errors.New("invalid lattice")

// Error is the same as substrate.Error but avoids a circular import.
// All lattice errors are of the ErrInvalidLattice kind.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return "lattice: " + err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical always returns true, a bad lattice can't be used for anything.
func (err Error) Critical() bool { return true }

func (err Error) Unwrap() error { return ErrInvalidLattice }

func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
