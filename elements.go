/*
 * elements.go, part of gosubstrate
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
	"strings"
)

// Masses of the elements that usually appear in substrates and
// the liquids put on them, in atomic mass units.
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Ti": 47.87,
	"Fe": 55.84,
	"Cu": 63.55,
	"Zn": 65.38,
	"Br": 79.904,
	"Ag": 107.87,
	"I":  126.90,
	"Au": 196.97,
}

// two-letter atom codes that are elements and not, say, a carbon named CA.
var twoLetter = map[string]string{
	"NA": "Na",
	"CL": "Cl",
	"SI": "Si",
	"MG": "Mg",
	"AL": "Al",
	"TI": "Ti",
	"FE": "Fe",
	"CU": "Cu",
	"ZN": "Zn",
	"BR": "Br",
	"AG": "Ag",
	"AU": "Au",
	"CA": "Ca",
}

// Symbol guesses the element of an atom from its code, as written in residue
// templates and GRO files (O1, SI, HW2, C, NA...). A two-letter element is only
// recognized if the code is exactly those two letters, so CA is calcium but
// CA1 is a carbon. Virtual sites (codes starting with M, as MW) are not elements.
func Symbol(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return "", NewError(ErrInvalidComponent, "empty atom code", "Symbol")
	}
	if s, ok := twoLetter[c]; ok {
		return s, nil
	}
	letter := c[:1]
	if _, ok := symbolMass[letter]; !ok {
		return "", Errorf(ErrInvalidComponent, "Symbol", "can't guess the element of atom %q", code)
	}
	return letter, nil
}

// Mass returns the mass of the atom with the given code, guessing its element with Symbol.
func Mass(code string) (float64, error) {
	s, err := Symbol(code)
	if err != nil {
		return 0, Decorate(err, "Mass")
	}
	return symbolMass[s], nil
}

// Masses returns the mass of each atom of S. Atoms whose element can't be
// guessed get a mass of 0 and are listed in the returned error.
func (S *System) Masses() ([]float64, error) {
	ret := make([]float64, S.Len())
	var unknown []string
	seen := make(map[string]bool)
	for i, a := range S.Atoms {
		m, err := Mass(a.Code)
		if err != nil && !seen[a.Code] {
			seen[a.Code] = true
			unknown = append(unknown, a.ResidueCode+"/"+a.Code)
		}
		ret[i] = m
	}
	if len(unknown) > 0 {
		return ret, Errorf(ErrInvalidComponent, "System.Masses", "unknown elements for atoms %s", strings.Join(unknown, ", "))
	}
	return ret, nil
}
