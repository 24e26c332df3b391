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

package v3

//Errors

// PanicMsg is a message used for panics. It satisfies the error interface, so
// a recovered panic can be returned as an error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("goSubstrate/v3: A Matrix should have 3 columns")
	ErrNotRotation       = PanicMsg("goSubstrate/v3: Rotation operators must be 3x3 proper rotations")
	ErrNotEnoughElements = PanicMsg("goSubstrate/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("goSubstrate/v3: Dimension mismatch")
)
