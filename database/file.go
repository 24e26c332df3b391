/*
 * file.go, part of gosubstrate
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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/lattice"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Component type tags on disk.
const (
	TypeSurfaceSheet    = "SurfaceSheet"
	TypeSurfaceCylinder = "SurfaceCylinder"
	TypeVolumeCuboid    = "VolumeCuboid"
	TypeVolumeCylinder  = "VolumeCylinder"
)

type fileDataBase struct {
	Residues   []fileResidue   `json:"residue_definitions" yaml:"residue_definitions"`
	Components []fileComponent `json:"component_definitions" yaml:"component_definitions"`
}

type fileResidue struct {
	Code  string     `json:"code" yaml:"code"`
	Atoms []fileAtom `json:"atoms" yaml:"atoms"`
}

type fileAtom struct {
	Code     string    `json:"code" yaml:"code"`
	Position []float64 `json:"position" yaml:"position,flow"`
}

type fileLattice struct {
	Type  string  `json:"type" yaml:"type"`
	A     float64 `json:"a" yaml:"a"`
	B     float64 `json:"b,omitempty" yaml:"b,omitempty"`
	Gamma float64 `json:"gamma,omitempty" yaml:"gamma,omitempty"`
}

// fileComponent holds the fields of every component type. Type tells which
// ones are used.
type fileComponent struct {
	Type        string       `json:"type" yaml:"type"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Residue     string       `json:"residue,omitempty" yaml:"residue,omitempty"`
	Lattice     *fileLattice `json:"lattice,omitempty" yaml:"lattice,omitempty"`
	StdZ        float64      `json:"std_z,omitempty" yaml:"std_z,omitempty"`
	Normal      string       `json:"normal,omitempty" yaml:"normal,omitempty"`
	Alignment   string       `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Cap         string       `json:"cap,omitempty" yaml:"cap,omitempty"`
	Length      float64      `json:"length,omitempty" yaml:"length,omitempty"`
	Width       float64      `json:"width,omitempty" yaml:"width,omitempty"`
	Radius      float64      `json:"radius,omitempty" yaml:"radius,omitempty"`
	Height      float64      `json:"height,omitempty" yaml:"height,omitempty"`
	Path        string       `json:"path,omitempty" yaml:"path,omitempty"`
	Size        []float64    `json:"size,omitempty" yaml:"size,omitempty,flow"`
}

func decodeJSON(r io.Reader, fd *fileDataBase) error {
	if err := json.NewDecoder(r).Decode(fd); err != nil {
		return fmt.Errorf("decoding JSON database: %w", err)
	}
	return nil
}

func decodeYAML(r io.Reader, fd *fileDataBase) error {
	err := yaml.NewDecoder(r).Decode(fd)
	//an empty document is an empty database
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding YAML database: %w", err)
	}
	return nil
}

func encodeJSON(w io.Writer, fd *fileDataBase) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fd)
}

func encodeYAML(w io.Writer, fd *fileDataBase) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fd); err != nil {
		return err
	}
	return enc.Close()
}

func vec(v []float64, what string) (r3.Vec, error) {
	if len(v) != 3 {
		return r3.Vec{}, substrate.Errorf(substrate.ErrInvalidComponent, "vec", "%s needs 3 values, got %d", what, len(v))
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

func (fd *fileDataBase) dataBase() (*DataBase, error) {
	db := New()
	for _, fr := range fd.Residues {
		res := &substrate.Residue{Code: fr.Code}
		for _, fa := range fr.Atoms {
			p, err := vec(fa.Position, "position of atom "+fa.Code)
			if err != nil {
				return nil, substrate.Decorate(err, "residue "+fr.Code)
			}
			res.Atoms = append(res.Atoms, substrate.ResidueAtom{Code: fa.Code, Position: p})
		}
		if err := res.Validate(); err != nil {
			return nil, substrate.Decorate(err, "dataBase")
		}
		db.ResidueDefs = append(db.ResidueDefs, res)
	}
	for i, fc := range fd.Components {
		c, err := fc.component(db)
		if err != nil {
			return nil, substrate.Decorate(err, fmt.Sprintf("dataBase: component %d", i))
		}
		db.ComponentDefs = append(db.ComponentDefs, c)
	}
	return db, nil
}

func (fl *fileLattice) spec() (lattice.Spec, error) {
	if fl == nil {
		return nil, substrate.NewError(substrate.ErrInvalidLattice, "no lattice given", "fileLattice.spec")
	}
	var s lattice.Spec
	switch strings.ToLower(fl.Type) {
	case "hexagonal":
		s = lattice.Hexagonal{A: fl.A}
	case "triclinic":
		s = lattice.Triclinic{A: fl.A, B: fl.B, Gamma: fl.Gamma}
	default:
		return nil, substrate.Errorf(substrate.ErrInvalidLattice, "fileLattice.spec", "unknown lattice type %q", fl.Type)
	}
	return s, substrate.Decorate(s.Validate(), "fileLattice.spec")
}

func (fc *fileComponent) component(db *DataBase) (substrate.Component, error) {
	switch fc.Type {
	case TypeSurfaceSheet, TypeSurfaceCylinder:
		res, err := db.Residue(fc.Residue)
		if err != nil {
			return nil, err
		}
		spec, err := fc.Lattice.spec()
		if err != nil {
			return nil, err
		}
		if fc.Type == TypeSurfaceSheet {
			normal, err := axisOr(fc.Normal, substrate.Z)
			if err != nil {
				return nil, err
			}
			return &substrate.SurfaceSheet{Name: fc.Name, Description: fc.Description, Residue: res, Lattice: spec,
				StdZ: fc.StdZ, Normal: normal, Length: fc.Length, Width: fc.Width}, nil
		}
		alignment, err := axisOr(fc.Alignment, substrate.Z)
		if err != nil {
			return nil, err
		}
		cp, err := substrate.ParseCap(fc.Cap)
		if err != nil {
			return nil, err
		}
		return &substrate.SurfaceCylinder{Name: fc.Name, Description: fc.Description, Residue: res, Lattice: spec,
			Alignment: alignment, Cap: cp, Radius: fc.Radius, Height: fc.Height}, nil
	case TypeVolumeCuboid:
		size, err := vec(fc.Size, "cuboid size")
		if err != nil {
			return nil, err
		}
		return &substrate.VolumeConf{Name: fc.Name, Description: fc.Description, Path: fc.Path, Volume: substrate.Cuboid{Size: size}}, nil
	case TypeVolumeCylinder:
		normal, err := axisOr(fc.Normal, substrate.Z)
		if err != nil {
			return nil, err
		}
		return &substrate.VolumeConf{Name: fc.Name, Description: fc.Description, Path: fc.Path,
			Volume: substrate.Cylinder{Radius: fc.Radius, Height: fc.Height, Normal: normal}}, nil
	}
	return nil, substrate.Errorf(substrate.ErrInvalidComponent, "fileComponent.component", "unknown component type %q for %q", fc.Type, fc.Name)
}

func axisOr(s string, def substrate.Axis) (substrate.Axis, error) {
	if s == "" {
		return def, nil
	}
	return substrate.ParseAxis(s)
}

func fromLattice(spec lattice.Spec) *fileLattice {
	switch s := spec.(type) {
	case lattice.Hexagonal:
		return &fileLattice{Type: "Hexagonal", A: s.A}
	case lattice.Triclinic:
		return &fileLattice{Type: "Triclinic", A: s.A, B: s.B, Gamma: s.Gamma}
	}
	return nil
}

func residueCode(r *substrate.Residue) string {
	if r == nil {
		return ""
	}
	return r.Code
}

func fromDataBase(D *DataBase) (*fileDataBase, error) {
	fd := &fileDataBase{Residues: []fileResidue{}, Components: []fileComponent{}}
	for _, r := range D.ResidueDefs {
		fr := fileResidue{Code: r.Code}
		for _, a := range r.Atoms {
			fr.Atoms = append(fr.Atoms, fileAtom{Code: a.Code, Position: []float64{a.Position.X, a.Position.Y, a.Position.Z}})
		}
		fd.Residues = append(fd.Residues, fr)
	}
	for _, comp := range D.ComponentDefs {
		var fc fileComponent
		switch c := comp.(type) {
		case *substrate.SurfaceSheet:
			fc = fileComponent{Type: TypeSurfaceSheet, Name: c.Name, Description: c.Description, Residue: residueCode(c.Residue),
				Lattice: fromLattice(c.Lattice), StdZ: c.StdZ, Normal: c.Normal.String(), Length: c.Length, Width: c.Width}
		case *substrate.SurfaceCylinder:
			fc = fileComponent{Type: TypeSurfaceCylinder, Name: c.Name, Description: c.Description, Residue: residueCode(c.Residue),
				Lattice: fromLattice(c.Lattice), Alignment: c.Alignment.String(), Cap: c.Cap.String(), Radius: c.Radius, Height: c.Height}
		case *substrate.VolumeConf:
			fc = fileComponent{Name: c.Name, Description: c.Description, Path: c.Path}
			switch v := c.Volume.(type) {
			case substrate.Cuboid:
				fc.Type = TypeVolumeCuboid
				fc.Size = []float64{v.Size.X, v.Size.Y, v.Size.Z}
			case substrate.Cylinder:
				fc.Type = TypeVolumeCylinder
				fc.Radius, fc.Height, fc.Normal = v.Radius, v.Height, v.Normal.String()
			default:
				return nil, substrate.Errorf(substrate.ErrInvalidComponent, "fromDataBase", "volume %q has an unsupported volume type %T", c.Name, c.Volume)
			}
		default:
			return nil, substrate.Errorf(substrate.ErrInvalidComponent, "fromDataBase", "can't store a %T", comp)
		}
		fd.Components = append(fd.Components, fc)
	}
	return fd, nil
}
