/*
 * gro.go, part of gosubstrate
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

// Package blockio reads the pre-built blocks used by volume components from
// GRO files, and writes built Systems in the same format. Files ending in .gz
// or .zst are transparently decompressed and compressed.
package blockio

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	substrate "github.com/rmera/gosubstrate"
	"github.com/rmera/gosubstrate/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

// GRO numbers residues and atoms with 5 digits.
const groWrap = 100000

//zstd.Decoder.Close returns nothing, so the decoder is not an io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
	f *os.File
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g gzipReadCloser) Close() error {
	g.Reader.Close()
	return g.f.Close()
}

// open returns a reader for name, decompressing it if the name ends in .gz or .zst.
func open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return gzipReadCloser{r, f}, nil
	case ".zst":
		r, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return zstdReadCloser{r, f}, nil
	}
	return f, nil
}

type fileWriteCloser struct {
	io.WriteCloser
	f *os.File
}

func (w fileWriteCloser) Close() error {
	if err := w.WriteCloser.Close(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// create returns a writer for name, compressing the output if the name ends in .gz or .zst.
func create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".zst":
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
	default:
		return f, nil
	}
	return fileWriteCloser{w, f}, nil
}

// ReadGro reads a block from the GRO file name. Consecutive atoms with the same
// residue number and name form a residue. The block size is taken from the box
// in the last line.
func ReadGro(name string) (*substrate.Block, error) {
	r, err := open(name)
	if err != nil {
		return nil, substrate.Errorf(substrate.ErrBlockLoad, "ReadGro", "%s: %s", name, err)
	}
	defer r.Close()
	b, err := Read(r)
	if err != nil {
		return nil, substrate.Decorate(err, "ReadGro: "+name)
	}
	return b, nil
}

type groAtom struct {
	resid   int
	resname string
	name    string
	pos     r3.Vec
}

func parseGroAtom(line string) (groAtom, error) {
	var a groAtom
	if len(line) < 44 {
		return a, fmt.Errorf("atom line too short: %q", line)
	}
	var err error
	if a.resid, err = strconv.Atoi(strings.TrimSpace(line[0:5])); err != nil {
		return a, err
	}
	a.resname = strings.TrimSpace(line[5:10])
	a.name = strings.TrimSpace(line[10:15])
	var c [3]float64
	for i := range c {
		if c[i], err = strconv.ParseFloat(strings.TrimSpace(line[20+8*i:28+8*i]), 64); err != nil {
			return a, err
		}
	}
	a.pos = r3.Vec{X: c[0], Y: c[1], Z: c[2]}
	return a, nil
}

func parseBox(line string) (r3.Vec, error) {
	f := strings.Fields(line)
	if len(f) < 3 {
		return r3.Vec{}, fmt.Errorf("box line needs at least 3 values: %q", line)
	}
	if len(f) > 3 {
		log.Printf("Triclinic box found, only the box vector lengths along x, y and z will be used")
	}
	var c [3]float64
	for i := range c {
		var err error
		if c[i], err = strconv.ParseFloat(f[i], 64); err != nil {
			return r3.Vec{}, err
		}
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Read reads a block in GRO format from r.
func Read(r io.Reader) (*substrate.Block, error) {
	s := bufio.NewScanner(r)
	lines := make([]string, 0, 2)
	for i := 0; i < 2 && s.Scan(); i++ {
		lines = append(lines, s.Text())
	}
	if len(lines) < 2 {
		return nil, substrate.NewError(substrate.ErrBlockLoad, "GRO file without a header", "Read")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(lines[1]))
	if err != nil || natoms < 0 {
		return nil, substrate.Errorf(substrate.ErrBlockLoad, "Read", "bad atom count %q", lines[1])
	}
	atoms := make([]groAtom, 0, natoms)
	for len(atoms) < natoms && s.Scan() {
		a, err := parseGroAtom(s.Text())
		if err != nil {
			return nil, substrate.Errorf(substrate.ErrBlockLoad, "Read", "atom %d: %s", len(atoms)+1, err)
		}
		atoms = append(atoms, a)
	}
	if len(atoms) < natoms {
		return nil, substrate.Errorf(substrate.ErrBlockLoad, "Read", "expected %d atoms, found %d", natoms, len(atoms))
	}
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, substrate.Errorf(substrate.ErrBlockLoad, "Read", "%s", err)
		}
		return nil, substrate.NewError(substrate.ErrBlockLoad, "GRO file without a box line", "Read")
	}
	size, err := parseBox(s.Text())
	if err != nil {
		return nil, substrate.Errorf(substrate.ErrBlockLoad, "Read", "%s", err)
	}
	b := &substrate.Block{Residues: group(atoms), Size: size}
	if err := b.Validate(); err != nil {
		return nil, substrate.Decorate(err, "Read")
	}
	return b, nil
}

// group splits the atoms in residues. Residues with the same name and atom names
// share one template, with the local positions of the first of them.
func group(atoms []groAtom) []*substrate.Instance {
	templates := make(map[string]*substrate.Residue)
	var ret []*substrate.Instance
	for start := 0; start < len(atoms); {
		end := start + 1
		for end < len(atoms) && atoms[end].resid == atoms[start].resid && atoms[end].resname == atoms[start].resname {
			end++
		}
		res := atoms[start:end]
		names := make([]string, len(res))
		vecs := make([]r3.Vec, len(res))
		for i, a := range res {
			names[i] = a.name
			vecs[i] = a.pos
		}
		key := res[0].resname + ":" + strings.Join(names, ",")
		t, ok := templates[key]
		if !ok {
			t = &substrate.Residue{Code: res[0].resname}
			for i, a := range res {
				t.Atoms = append(t.Atoms, substrate.ResidueAtom{Code: a.name, Position: r3.Sub(vecs[i], vecs[0])})
			}
			templates[key] = t
		}
		ret = append(ret, &substrate.Instance{Residue: t, Coords: v3.FromVecs(vecs)})
		start = end
	}
	return ret
}

// WriteGro writes sys to the GRO file name, compressed if the name ends in .gz or .zst.
func WriteGro(name, title string, sys *substrate.System) error {
	w, err := create(name)
	if err != nil {
		return err
	}
	if err := Write(w, title, sys); err != nil {
		w.Close()
		return substrate.Decorate(err, "WriteGro: "+name)
	}
	return w.Close()
}

// Write writes sys in GRO format to w. Residue and atom numbers wrap
// after 99999, as in GROMACS.
func Write(w io.Writer, title string, sys *substrate.System) error {
	bw := bufio.NewWriter(w)
	title = strings.ReplaceAll(title, "\n", " ")
	fmt.Fprintf(bw, "%s\n%5d\n", title, sys.Len())
	for i, a := range sys.Atoms {
		p := sys.Coords.Vec(i)
		fmt.Fprintf(bw, "%5d%-5s%5s%5d%8.3f%8.3f%8.3f\n", a.ResidueID%groWrap, trunc(a.ResidueCode), trunc(a.Code), a.ID%groWrap, p.X, p.Y, p.Z)
	}
	fmt.Fprintf(bw, "%10.5f%10.5f%10.5f\n", sys.Box.X, sys.Box.Y, sys.Box.Z)
	return bw.Flush()
}

func trunc(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// Loader reads blocks from GRO files. Relative paths are taken from Dir,
// or from the working directory if Dir is empty.
type Loader struct {
	Dir string
}

// LoadBlock reads the block in path.
func (L Loader) LoadBlock(path string) (*substrate.Block, error) {
	if L.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(L.Dir, path)
	}
	return ReadGro(path)
}
