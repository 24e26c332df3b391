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

package substrate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rmera/gosubstrate/lattice"
)

//Error kinds. Every error returned by goSubstrate matches one of these with errors.Is.
var (
	ErrInvalidLattice     = lattice.ErrInvalidLattice
	ErrNonClosingLattice  = errors.New("lattice does not close around the cylinder")
	ErrEmptyVolume        = errors.New("no residue survives trimming")
	ErrUnknownResidueCode = errors.New("unknown residue code")
	ErrUnknownComponent   = errors.New("unknown component")
	ErrBlockLoad          = errors.New("could not load block")
	ErrInvalidComponent   = errors.New("invalid component")
	ErrDuplicateAtomCode  = errors.New("duplicate atom code in residue")
	ErrNoRandomSource     = errors.New("roughness requested without a random source")
	ErrEmptySystem        = errors.New("nothing to merge")
	ErrConfig             = errors.New("could not read options")
)

// Error is the error type for all goSubstrate packages. It carries the kind of
// failure, a message with the offending values, and the chain of functions it
// passed through (see Decorate).
type Error struct {
	kind     error
	message  string
	deco     []string
	critical bool
}

// NewError returns a critical Error of the given kind. deco is the initial
// decoration, usually the name of the function creating the error.
func NewError(kind error, message string, deco ...string) Error {
	return Error{kind: kind, message: message, deco: deco, critical: true}
}

// Errorf is NewError with a formatted message, decorated with caller.
func Errorf(kind error, caller, format string, a ...interface{}) Error {
	return NewError(kind, fmt.Sprintf(format, a...), caller)
}

func (err Error) Error() string {
	if err.kind == nil {
		return "goSubstrate: " + err.message
	}
	return fmt.Sprintf("goSubstrate: %s: %s", err.kind, err.message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Trace returns the decoration as a single string, innermost function first.
func (err Error) Trace() string {
	return strings.Join(err.deco, " <- ")
}

// Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

// Kind returns the sentinel error describing the class of failure.
func (err Error) Kind() error { return err.kind }

func (err Error) Unwrap() error { return err.kind }

type decorator interface {
	Decorate(string) []string
}

// Decorate adds caller to the decoration of err, if err is a goSubstrate error.
// Errors from the lattice package are turned into Errors of the ErrInvalidLattice kind.
// Other errors are returned unchanged.
func Decorate(err error, caller string) error {
	switch e := err.(type) {
	case nil:
		return nil
	case Error:
		e.deco = e.Decorate(caller)
		return e
	case lattice.Error:
		return Error{kind: ErrInvalidLattice, message: strings.TrimPrefix(e.Error(), "lattice: "), deco: e.Decorate(caller), critical: true}
	case decorator:
		e.Decorate(caller)
		return err
	}
	return err
}
