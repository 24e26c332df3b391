/*
 * database.go, part of gosubstrate
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

// Package database keeps the residue and component definitions used to build
// substrates, and reads them from and writes them to JSON or YAML files.
package database

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	substrate "github.com/rmera/gosubstrate"
)

// ErrBadPath is the kind of the error returned when a database path can't be used.
var ErrBadPath = errors.New("bad database path")

// ErrBadFile is the kind of the error returned when a database can't be parsed.
var ErrBadFile = errors.New("malformed database file")

// Format is the file format of a database.
type Format int

const (
	JSON Format = iota
	YAML
)

func (F Format) String() string {
	if F == YAML {
		return "YAML"
	}
	return "JSON"
}

// FormatOf returns the format of a database file from its extension:
// YAML for .yaml and .yml, JSON for anything else.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// DataBase is a collection of residue and component definitions. Components
// refer to their residues by pointer, and on disk, by residue code.
type DataBase struct {
	Path          string
	ResidueDefs   []*substrate.Residue
	ComponentDefs []substrate.Component
}

// New returns an empty DataBase without a path.
func New() *DataBase {
	return &DataBase{ResidueDefs: []*substrate.Residue{}, ComponentDefs: []substrate.Component{}}
}

// PathPretty returns the path of the database in single quotes, or None if
// it has no path.
func (D *DataBase) PathPretty() string {
	if D.Path == "" {
		return "None"
	}
	return "'" + D.Path + "'"
}

// SetPath sets the path of the database to path with the extension changed to .json.
// The path must name a file. On error the path is not changed.
func (D *DataBase) SetPath(path string) error {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.TrimSpace(path) == "" || stem == "" || base == "." || base == string(filepath.Separator) {
		return substrate.NewError(ErrBadPath, fmt.Sprintf("%q does not name a file", path), "DataBase.SetPath")
	}
	D.Path = strings.TrimSuffix(path, filepath.Ext(base)) + ".json"
	return nil
}

// Residue returns the residue with the given code.
func (D *DataBase) Residue(code string) (*substrate.Residue, error) {
	for _, r := range D.ResidueDefs {
		if r.Code == code {
			return r, nil
		}
	}
	return nil, substrate.Errorf(substrate.ErrUnknownResidueCode, "DataBase.Residue", "no residue %q in database %s", code, D.PathPretty())
}

// Component returns the component with the given name.
func (D *DataBase) Component(name string) (substrate.Component, error) {
	for _, c := range D.ComponentDefs {
		if c.ComponentName() == name {
			return c, nil
		}
	}
	return nil, substrate.Errorf(substrate.ErrUnknownComponent, "DataBase.Component", "no component %q in database %s", name, D.PathPretty())
}

// Describe returns a listing of the database.
func (D *DataBase) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Database path: %s\n\n", D.PathPretty())
	b.WriteString("Component definitions:\n")
	for i, c := range D.ComponentDefs {
		fmt.Fprintf(&b, "%3d. %s\n", i, c.Describe())
	}
	b.WriteString("\nResidue definitions:\n")
	for i, r := range D.ResidueDefs {
		fmt.Fprintf(&b, "%3d. %s\n", i, r.Describe())
	}
	return b.String()
}

// ReadDataBase reads a database from a JSON or YAML file, chosen by the
// extension (see FormatOf). The path of the returned database is set to path.
func ReadDataBase(path string) (*DataBase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, substrate.Errorf(ErrBadPath, "ReadDataBase", "%s", err)
	}
	defer f.Close()
	db, err := Decode(f, FormatOf(path))
	if err != nil {
		return nil, substrate.Decorate(err, "ReadDataBase: "+path)
	}
	db.Path = path
	return db, nil
}

// WriteDataBase writes db to its own path, in the format given by the extension.
func WriteDataBase(db *DataBase) error {
	if db.Path == "" {
		return substrate.NewError(ErrBadPath, "no path was set when trying to write the database to disk", "WriteDataBase")
	}
	f, err := os.Create(db.Path)
	if err != nil {
		return substrate.Errorf(ErrBadPath, "WriteDataBase", "%s", err)
	}
	if err := db.Encode(f, FormatOf(db.Path)); err != nil {
		f.Close()
		return substrate.Decorate(err, "WriteDataBase")
	}
	if err := f.Close(); err != nil {
		return substrate.Errorf(ErrBadPath, "WriteDataBase", "%s", err)
	}
	return nil
}

// Decode reads a database in the given format from r. Missing sections are
// left empty. The path of the returned database is empty.
func Decode(r io.Reader, format Format) (*DataBase, error) {
	var fd fileDataBase
	var err error
	if format == YAML {
		err = decodeYAML(r, &fd)
	} else {
		err = decodeJSON(r, &fd)
	}
	if err != nil {
		return nil, substrate.Errorf(ErrBadFile, "Decode", "%s", err)
	}
	db, err := fd.dataBase()
	if err != nil {
		return nil, substrate.Decorate(err, "Decode")
	}
	return db, nil
}

// Encode writes D to w in the given format. The path is not written.
func (D *DataBase) Encode(w io.Writer, format Format) error {
	fd, err := fromDataBase(D)
	if err != nil {
		return substrate.Decorate(err, "DataBase.Encode")
	}
	if format == YAML {
		return encodeYAML(w, fd)
	}
	return encodeJSON(w, fd)
}
