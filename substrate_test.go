/*
 * substrate_test.go, part of gosubstrate
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
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/gosubstrate/lattice"
	"github.com/rmera/gosubstrate/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestResidueValidate(Te *testing.T) {
	r, err := NewResidue("SOL", ResidueAtom{Code: "OW"}, ResidueAtom{Code: "HW1", Position: r3.Vec{X: 0.1}})
	require.NoError(Te, err)
	assert.Equal(Te, 2, r.Len())
	assert.Equal(Te, r3.Vec{X: 0.1}, r.Coords().Vec(1))
	_, err = NewResidue("SOL", ResidueAtom{Code: "OW"}, ResidueAtom{Code: "OW"})
	assert.True(Te, errors.Is(err, ErrDuplicateAtomCode))
	_, err = NewResidue("", ResidueAtom{Code: "OW"})
	assert.True(Te, errors.Is(err, ErrInvalidComponent))
	_, err = NewResidue("SOL")
	assert.True(Te, errors.Is(err, ErrInvalidComponent))
	assert.Equal(Te, "SIO (3 atoms: O1, SI, O2)", Silica(0.45).Describe())
	g := Graphene(0.142)
	assert.Equal(Te, r3.Vec{X: 0.071, Y: 0.071, Z: 0.071}, g.Atoms[0].Position)
}

func TestErrorDecoration(Te *testing.T) {
	err := Errorf(ErrEmptyVolume, "Trim", "volume %s", "box")
	err2 := Decorate(err, "Build")
	var e Error
	require.True(Te, errors.As(err2, &e))
	assert.Equal(Te, "Trim <- Build", e.Trace())
	assert.Equal(Te, ErrEmptyVolume, e.Kind())
	assert.True(Te, e.Critical())
	assert.Contains(Te, err2.Error(), "volume box")

	_, lerr := lattice.Generate(lattice.Hexagonal{A: -1}, 1, 1)
	lerr = Decorate(lerr, "Build")
	assert.True(Te, errors.As(lerr, &e))
	assert.True(Te, errors.Is(lerr, ErrInvalidLattice))
	assert.Nil(Te, Decorate(nil, "Build"))
}

func TestAxisEmbed(Te *testing.T) {
	for _, ax := range []Axis{X, Y, Z} {
		p := ax.Embed(1, 2, 3)
		assert.Equal(Te, 3.0, ax.Of(p), ax.String())
		u, v, w := ax.Project(p)
		assert.Equal(Te, []float64{1, 2, 3}, []float64{u, v, w})
		F := ax.Frame()
		require.True(Te, v3.IsRotation(F, -1), ax.String())
		//local z goes along the axis
		z := v3.Zeros(1)
		z.Rotate(v3.FromVecs([]r3.Vec{{Z: 1}}), F)
		assert.Equal(Te, 1.0, ax.Of(z.Vec(0)))
	}
	a, err := ParseAxis(" y")
	require.NoError(Te, err)
	assert.Equal(Te, Y, a)
	_, err = ParseAxis("w")
	assert.Error(Te, err)
	assert.False(Te, Axis(7).Valid())
}

func TestCap(Te *testing.T) {
	c, err := ParseCap("Both")
	require.NoError(Te, err)
	assert.True(Te, c.Top() && c.Bottom())
	c, _ = ParseCap("")
	assert.Equal(Te, CapNone, c)
	assert.False(Te, CapTop.Bottom())
	assert.True(Te, CapBottom.Bottom())
	_, err = ParseCap("side")
	assert.Error(Te, err)
}

func TestComponentValidate(Te *testing.T) {
	sheet := &SurfaceSheet{Name: "graphene", Residue: Graphene(0.142), Lattice: lattice.Hexagonal{A: 0.142}, Normal: Z, Length: 2, Width: 1}
	require.NoError(Te, sheet.Validate())
	assert.Contains(Te, sheet.Describe(), "'graphene'")
	sheet.Lattice = lattice.Triclinic{A: 1, B: 1, Gamma: 200}
	assert.True(Te, errors.Is(sheet.Validate(), ErrInvalidLattice))
	sheet.Lattice = lattice.Hexagonal{A: 0.142}
	sheet.Residue = nil
	assert.True(Te, errors.Is(sheet.Validate(), ErrUnknownResidueCode))
	sheet.Residue = Graphene(0.142)
	sheet.StdZ = -1
	assert.True(Te, errors.Is(sheet.Validate(), ErrInvalidComponent))

	cyl := &SurfaceCylinder{Name: "tube", Residue: Graphene(0.142), Lattice: lattice.Hexagonal{A: 0.142}, Alignment: Z, Radius: 1, Height: 2}
	require.NoError(Te, cyl.Validate())
	assert.InDelta(Te, 6.2832, cyl.Circumference(), 1e-4)
	cyl.Height = 0
	assert.True(Te, errors.Is(cyl.Validate(), ErrInvalidComponent))

	vol := &VolumeConf{Name: "water", Path: "spc216.gro", Volume: Cuboid{Size: r3.Vec{X: 1, Y: 1, Z: 1}}}
	require.NoError(Te, vol.Validate())
	vol.Volume = Cylinder{Radius: 1, Height: -1, Normal: Z}
	assert.True(Te, errors.Is(vol.Validate(), ErrInvalidComponent))
	vol.Volume = nil
	assert.Error(Te, vol.Validate())
	var _ Component = vol
}

func TestBlockValidate(Te *testing.T) {
	res := &Residue{Code: "SOL", Atoms: []ResidueAtom{{Code: "OW"}, {Code: "HW1"}}}
	inst := &Instance{Residue: res, Coords: v3.Zeros(2)}
	b := &Block{Residues: []*Instance{inst}, Size: r3.Vec{X: 1, Y: 1, Z: 1}}
	require.NoError(Te, b.Validate())
	assert.Equal(Te, 2, b.Len())
	b.Residues = append(b.Residues, &Instance{Residue: res, Coords: v3.Zeros(1)})
	assert.True(Te, errors.Is(b.Validate(), ErrBlockLoad))
	b = &Block{Residues: []*Instance{inst}}
	assert.True(Te, errors.Is(b.Validate(), ErrBlockLoad))
	moved := inst.Translated(r3.Vec{X: 1})
	assert.Equal(Te, 1.0, moved.Coords.At(1, 0))
	assert.Equal(Te, 0.0, inst.Coords.At(1, 0))
}

func TestSystemPBC(Te *testing.T) {
	coords := v3.FromVecs([]r3.Vec{{X: 0.5}, {X: 1.5}, {X: 2.5}, {Y: 1.5}, {X: -0.5}})
	atoms := make([]*Atom, 5)
	for i := range atoms {
		atoms[i] = &Atom{ID: i + 1, ResidueID: i + 1, ResidueCode: "GRPH", Code: "C"}
	}
	sys := &System{Atoms: atoms, Coords: coords, Box: r3.Vec{X: 2, Y: 1}}
	sys.WithPBC()
	expected := []r3.Vec{{X: 0.5}, {X: 1.5}, {X: 0.5}, {Y: 0.5}, {X: 1.5}}
	for i, e := range expected {
		assert.InDelta(Te, e.X, sys.Coords.At(i, 0), 1e-12)
		assert.InDelta(Te, e.Y, sys.Coords.At(i, 1), 1e-12)
	}
	sys.Translate(r3.Vec{Z: 1})
	assert.Equal(Te, 1.0, sys.Coords.At(4, 2))
	assert.Equal(Te, 5, sys.Residues())
	assert.Contains(Te, sys.Describe(), "5 atoms")
}

func TestOptions(Te *testing.T) {
	o := DefaultOptions()
	assert.Equal(Te, AnyAtom, o.TrimPolicy())
	prev := o.Cpus(3)
	assert.Greater(Te, prev, 0)
	assert.Equal(Te, 3, o.Cpus(-1))
	assert.Equal(Te, 3, o.Cpus())
	o.Seed(42)
	a, b := o.Rand(0), o.Rand(0)
	assert.Equal(Te, a.Float64(), b.Float64())
	assert.NotEqual(Te, o.Rand(0).Float64(), o.Rand(1).Float64())
}

func TestLoadOptions(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "options.toml")
	require.NoError(Te, os.WriteFile(path, []byte("cpus = 2\nseed = 7\ntrim = \"centroid\"\n"), 0o644))
	o, err := LoadOptions(path)
	require.NoError(Te, err)
	assert.Equal(Te, 2, o.Cpus())
	assert.Equal(Te, uint64(7), o.Seed())
	assert.Equal(Te, Centroid, o.TrimPolicy())

	require.NoError(Te, os.WriteFile(path, []byte("seed = 3\n"), 0o644))
	o, err = LoadOptions(path)
	require.NoError(Te, err)
	assert.Equal(Te, AnyAtom, o.TrimPolicy())
	assert.Equal(Te, uint64(3), o.Seed())

	_, err = LoadOptions(filepath.Join(dir, "missing.toml"))
	assert.True(Te, errors.Is(err, ErrConfig))
	require.NoError(Te, os.WriteFile(path, []byte("cpus = \"two\"\n"), 0o644))
	_, err = LoadOptions(path)
	assert.True(Te, errors.Is(err, ErrConfig))
}

func TestElements(Te *testing.T) {
	for code, sym := range map[string]string{"O1": "O", "SI": "Si", "HW2": "H", "C": "C", "NA": "Na", "CA1": "C", "ow": "O"} {
		s, err := Symbol(code)
		require.NoError(Te, err, code)
		assert.Equal(Te, sym, s, code)
	}
	_, err := Symbol("MW")
	assert.True(Te, errors.Is(err, ErrInvalidComponent))
	m, err := Mass("SI")
	require.NoError(Te, err)
	assert.Equal(Te, 28.08, m)
	sys := &System{Atoms: []*Atom{{ID: 1, ResidueID: 1, ResidueCode: "SOL", Code: "OW"}, {ID: 2, ResidueID: 1, ResidueCode: "SOL", Code: "MW"}}}
	masses, err := sys.Masses()
	require.Error(Te, err)
	assert.Equal(Te, []float64{16.00, 0}, masses)
}
