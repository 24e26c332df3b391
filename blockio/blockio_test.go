/*
 * blockio_test.go, part of gosubstrate
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

package blockio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const water = `Two waters and an ion
    7
    1SOL     OW    1   0.126   0.639   0.322
    1SOL    HW1    2   0.187   0.713   0.394
    1SOL    HW2    3   0.145   0.560   0.376
    2SOL     OW    4   0.500   0.500   0.500
    2SOL    HW1    5   0.561   0.574   0.572
    2SOL    HW2    6   0.519   0.421   0.554
    3NA      NA    7   0.900   0.100   0.200
   1.00000   1.00000   1.00000
`

func TestRead(Te *testing.T) {
	b, err := Read(strings.NewReader(water))
	require.NoError(Te, err)
	require.Len(Te, b.Residues, 3)
	assert.Equal(Te, r3.Vec{X: 1, Y: 1, Z: 1}, b.Size)
	assert.Equal(Te, 7, b.Len())
	//both waters share the template
	assert.Same(Te, b.Residues[0].Residue, b.Residues[1].Residue)
	assert.Equal(Te, "NA", b.Residues[2].Residue.Code)
	sol := b.Residues[0].Residue
	assert.Equal(Te, "SOL", sol.Code)
	assert.Equal(Te, "HW2", sol.Atoms[2].Code)
	assert.Equal(Te, r3.Vec{}, sol.Atoms[0].Position)
	assert.InDelta(Te, 0.061, sol.Atoms[1].Position.X, 1e-9)
	assert.Equal(Te, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, b.Residues[1].Coords.Vec(0))
}

func TestReadErrors(Te *testing.T) {
	bad := []string{
		"",
		"title\nnot a number\n",
		"title\n    2\n    1SOL     OW    1   0.126   0.639   0.322\n   1.0 1.0 1.0\n",
		"title\n    1\n    1SOL     OW    1   0.126   0.639\n   1.0 1.0 1.0\n",
		"title\n    1\n    1SOL     OW    1   0.126   0.639   0.322\n",
		"title\n    1\n    1SOL     OW    1   0.126   0.639   0.322\n   1.0 1.0\n",
		"title\n    1\n    1SOL     OW    1   0.126   0.639   0.322\n   0.0 1.0 1.0\n",
	}
	for i, s := range bad {
		_, err := Read(strings.NewReader(s))
		require.Error(Te, err, "case %d", i)
		assert.True(Te, errors.Is(err, substrate.ErrBlockLoad), "case %d: %v", i, err)
	}
}

func testSystem() *substrate.System {
	atoms := []*substrate.Atom{
		{ID: 1, ResidueID: 1, ResidueCode: "SIO", Code: "O1"},
		{ID: 2, ResidueID: 1, ResidueCode: "SIO", Code: "SI"},
		{ID: 3, ResidueID: 2, ResidueCode: "GRPH", Code: "C"},
	}
	coords := v3.FromVecs([]r3.Vec{{X: 0.1, Y: 0.2, Z: 0.3}, {X: 0.4, Y: 0.5, Z: 0.6}, {X: 1.25, Y: 0.75, Z: 0.5}})
	return &substrate.System{Atoms: atoms, Coords: coords, Box: r3.Vec{X: 2, Y: 1, Z: 1}}
}

func TestWriteReadFiles(Te *testing.T) {
	dir := Te.TempDir()
	sys := testSystem()
	for _, name := range []string{"out.gro", "out.gro.gz", "out.gro.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, WriteGro(path, "test system", sys), name)
		b, err := ReadGro(path)
		require.NoError(Te, err, name)
		require.Len(Te, b.Residues, 2, name)
		assert.Equal(Te, sys.Box, b.Size, name)
		assert.Equal(Te, "GRPH", b.Residues[1].Residue.Code, name)
		assert.InDelta(Te, 1.25, b.Residues[1].Coords.At(0, 0), 1e-9, name)
	}
	//the compressed files really are compressed
	plain, err := os.ReadFile(filepath.Join(dir, "out.gro"))
	require.NoError(Te, err)
	gz, err := os.ReadFile(filepath.Join(dir, "out.gro.gz"))
	require.NoError(Te, err)
	assert.NotEqual(Te, plain, gz)
	assert.True(Te, strings.HasPrefix(string(plain), "test system\n    3\n"))
}

func TestNumberWrap(Te *testing.T) {
	sys := testSystem()
	sys.Atoms[2].ID = 100001
	sys.Atoms[2].ResidueID = 100000
	var sb strings.Builder
	require.NoError(Te, Write(&sb, "wrap", sys))
	lines := strings.Split(sb.String(), "\n")
	assert.Equal(Te, "    0GRPH     C    1   1.250   0.750   0.500", lines[4])
}

func TestLoader(Te *testing.T) {
	dir := Te.TempDir()
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "water.gro"), []byte(water), 0o644))
	b, err := Loader{Dir: dir}.LoadBlock("water.gro")
	require.NoError(Te, err)
	assert.Len(Te, b.Residues, 3)
	_, err = Loader{Dir: dir}.LoadBlock("missing.gro")
	assert.True(Te, errors.Is(err, substrate.ErrBlockLoad))
}
