/*
 * database_test.go, part of gosubstrate
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

package database

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const jsonDB = `{
  "residue_definitions": [
    {"code": "RES", "atoms": [
      {"code": "A1", "position": [0.0, 1.0, 2.0]},
      {"code": "A2", "position": [3.0, 4.0, 5.0]}
    ]}
  ],
  "component_definitions": [
    {"type": "SurfaceSheet", "name": "sheet", "residue": "RES",
     "lattice": {"type": "Hexagonal", "a": 0.142}, "normal": "X", "length": 2, "width": 1},
    {"type": "SurfaceCylinder", "name": "tube", "residue": "RES",
     "lattice": {"type": "Triclinic", "a": 0.45, "b": 0.45, "gamma": 60}, "cap": "Top", "radius": 1, "height": 3},
    {"type": "VolumeCuboid", "name": "water", "path": "spc216.gro", "size": [1, 2, 3]},
    {"type": "VolumeCylinder", "name": "drop", "description": "a drop", "path": "spc216.gro", "radius": 2, "height": 1, "normal": "y"}
  ]
}`

func testDataBase() *DataBase {
	res := &substrate.Residue{Code: "RES", Atoms: []substrate.ResidueAtom{{Code: "A1", Position: r3.Vec{Y: 1, Z: 2}}, {Code: "A2", Position: r3.Vec{X: 3, Y: 4, Z: 5}}}}
	db := New()
	db.ResidueDefs = append(db.ResidueDefs, res)
	db.ComponentDefs = append(db.ComponentDefs,
		&substrate.SurfaceSheet{Name: "sheet", Residue: res, Lattice: lattice.Hexagonal{A: 0.142}, StdZ: 0.01, Normal: substrate.Y, Length: 2, Width: 1},
		&substrate.SurfaceCylinder{Name: "tube", Residue: res, Lattice: lattice.Triclinic{A: 0.45, B: 0.45, Gamma: 60}, Alignment: substrate.X, Cap: substrate.CapBoth, Radius: 1, Height: 2},
		&substrate.VolumeConf{Name: "water", Description: "SPC", Path: "spc216.gro", Volume: substrate.Cuboid{Size: r3.Vec{X: 1, Y: 1, Z: 1}}},
		&substrate.VolumeConf{Name: "drop", Path: "spc216.gro", Volume: substrate.Cylinder{Radius: 1, Height: 2, Normal: substrate.Z}},
	)
	return db
}

func TestDecodeJSON(Te *testing.T) {
	db, err := Decode(strings.NewReader(jsonDB), JSON)
	require.NoError(Te, err)
	require.Len(Te, db.ResidueDefs, 1)
	require.Len(Te, db.ComponentDefs, 4)
	res, err := db.Residue("RES")
	require.NoError(Te, err)
	assert.Equal(Te, r3.Vec{X: 3, Y: 4, Z: 5}, res.Atoms[1].Position)

	c, err := db.Component("sheet")
	require.NoError(Te, err)
	sheet, ok := c.(*substrate.SurfaceSheet)
	require.True(Te, ok)
	assert.Same(Te, res, sheet.Residue)
	assert.Equal(Te, substrate.X, sheet.Normal)
	assert.Equal(Te, lattice.Hexagonal{A: 0.142}, sheet.Lattice)

	c, err = db.Component("tube")
	require.NoError(Te, err)
	tube := c.(*substrate.SurfaceCylinder)
	assert.Equal(Te, substrate.CapTop, tube.Cap)
	assert.Equal(Te, substrate.Z, tube.Alignment)

	c, err = db.Component("drop")
	require.NoError(Te, err)
	assert.Equal(Te, substrate.Cylinder{Radius: 2, Height: 1, Normal: substrate.Y}, c.(*substrate.VolumeConf).Volume)
	c, _ = db.Component("water")
	assert.Equal(Te, substrate.Cuboid{Size: r3.Vec{X: 1, Y: 2, Z: 3}}, c.(*substrate.VolumeConf).Volume)

	_, err = db.Component("nothing")
	assert.True(Te, errors.Is(err, substrate.ErrUnknownComponent))
	_, err = db.Residue("SOL")
	assert.True(Te, errors.Is(err, substrate.ErrUnknownResidueCode))
}

func TestEmptyDataBase(Te *testing.T) {
	db, err := Decode(strings.NewReader("{}"), JSON)
	require.NoError(Te, err)
	assert.Empty(Te, db.ResidueDefs)
	assert.Empty(Te, db.ComponentDefs)
	db, err = Decode(strings.NewReader(""), YAML)
	require.NoError(Te, err)
	assert.Empty(Te, db.ComponentDefs)
}

func TestDecodeErrors(Te *testing.T) {
	bad := strings.Replace(jsonDB, `"residue": "RES"`, `"residue": "SOL"`, 1)
	_, err := Decode(strings.NewReader(bad), JSON)
	assert.True(Te, errors.Is(err, substrate.ErrUnknownResidueCode))

	bad = strings.Replace(jsonDB, `"type": "VolumeCuboid"`, `"type": "VolumeSphere"`, 1)
	_, err = Decode(strings.NewReader(bad), JSON)
	assert.True(Te, errors.Is(err, substrate.ErrInvalidComponent))

	bad = strings.Replace(jsonDB, `"a": 0.142`, `"a": -0.142`, 1)
	_, err = Decode(strings.NewReader(bad), JSON)
	assert.True(Te, errors.Is(err, substrate.ErrInvalidLattice))

	bad = strings.Replace(jsonDB, `"code": "A2"`, `"code": "A1"`, 1)
	_, err = Decode(strings.NewReader(bad), JSON)
	assert.True(Te, errors.Is(err, substrate.ErrDuplicateAtomCode))

	_, err = Decode(strings.NewReader("{"), JSON)
	assert.True(Te, errors.Is(err, ErrBadFile))
	_, err = Decode(strings.NewReader("components: [\n"), YAML)
	assert.True(Te, errors.Is(err, ErrBadFile))
}

func TestRoundTrip(Te *testing.T) {
	for _, format := range []Format{JSON, YAML} {
		db := testDataBase()
		var buf bytes.Buffer
		require.NoError(Te, db.Encode(&buf, format), format.String())
		back, err := Decode(&buf, format)
		require.NoError(Te, err, format.String())
		assert.Equal(Te, db.ResidueDefs, back.ResidueDefs, format.String())
		require.Len(Te, back.ComponentDefs, len(db.ComponentDefs))
		for i := range db.ComponentDefs {
			assert.Equal(Te, db.ComponentDefs[i], back.ComponentDefs[i], format.String())
		}
	}
}

func TestReadWriteFile(Te *testing.T) {
	dir := Te.TempDir()
	db := testDataBase()
	require.Error(Te, WriteDataBase(db))
	for _, name := range []string{"db.json", "db.yaml"} {
		db.Path = filepath.Join(dir, name)
		require.NoError(Te, WriteDataBase(db))
		back, err := ReadDataBase(db.Path)
		require.NoError(Te, err)
		assert.Equal(Te, db.Path, back.Path)
		assert.Equal(Te, db.ResidueDefs, back.ResidueDefs)
		assert.Len(Te, back.ComponentDefs, 4)
	}
	_, err := ReadDataBase(filepath.Join(dir, "missing.json"))
	assert.True(Te, errors.Is(err, ErrBadPath))
	err = WriteDataBase(&DataBase{Path: filepath.Join(dir, "nodir", "db.json")})
	assert.True(Te, errors.Is(err, ErrBadPath))
	assert.Equal(Te, YAML, FormatOf("a/b.YML"))
	assert.Equal(Te, JSON, FormatOf("a/b"))
}

func TestSetPath(Te *testing.T) {
	db := New()
	assert.Equal(Te, "None", db.PathPretty())
	require.NoError(Te, db.SetPath("test"))
	assert.Equal(Te, "test.json", db.Path)
	require.NoError(Te, db.SetPath("/a/file.yaml"))
	assert.Equal(Te, "/a/file.json", db.Path)
	assert.Equal(Te, "'/a/file.json'", db.PathPretty())

	db.Path = "unchanged.json"
	err := db.SetPath("")
	assert.True(Te, errors.Is(err, ErrBadPath))
	assert.Equal(Te, "unchanged.json", db.Path)
}

func TestDescribe(Te *testing.T) {
	db := testDataBase()
	db.Path = "db.json"
	d := db.Describe()
	assert.Contains(Te, d, "Database path: 'db.json'")
	assert.Contains(Te, d, "Surface cylinder 'tube'")
	assert.Contains(Te, d, "RES (2 atoms: A1, A2)")
	assert.Contains(Te, d, "(SPC)")
}
