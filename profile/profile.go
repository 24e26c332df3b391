/*
 * profile.go, part of gosubstrate
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

// Package profile computes and plots the atom density of a built System along
// one of the Cartesian axes, which is the quickest way to check the layering of
// a substrate.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	substrate "github.com/rmera/gosubstrate"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Profile is a histogram of atom positions along Axis.
type Profile struct {
	Axis       substrate.Axis
	Dividers   []float64 //len(Counts)+1 bin edges, in nm
	Counts     []float64
	Total      int //atoms
	weighted   bool
	normalized bool
}

// Density bins the coordinates of the atoms of sys along axis. The bins span
// from the lowest of 0 and the smallest coordinate, to the largest of the box
// side and the largest coordinate.
func Density(sys *substrate.System, axis substrate.Axis, bins int) (*Profile, error) {
	p, err := density(sys, axis, bins, nil)
	if err != nil {
		return nil, substrate.Decorate(err, "Density")
	}
	return p, nil
}

// MassDensity is like Density, but each atom counts with its mass, in amu, instead of 1.
// Elements are guessed from the atom codes; atoms that can't be guessed are an error.
func MassDensity(sys *substrate.System, axis substrate.Axis, bins int) (*Profile, error) {
	if sys == nil || sys.Len() == 0 {
		return nil, substrate.NewError(substrate.ErrEmptySystem, "no atoms to profile", "MassDensity")
	}
	masses, err := sys.Masses()
	if err != nil {
		return nil, substrate.Decorate(err, "MassDensity")
	}
	p, err := density(sys, axis, bins, masses)
	if err != nil {
		return nil, substrate.Decorate(err, "MassDensity")
	}
	return p, nil
}

type weighted struct {
	x, w []float64
}

func (W weighted) Len() int           { return len(W.x) }
func (W weighted) Less(i, j int) bool { return W.x[i] < W.x[j] }
func (W weighted) Swap(i, j int) {
	W.x[i], W.x[j] = W.x[j], W.x[i]
	if W.w != nil {
		W.w[i], W.w[j] = W.w[j], W.w[i]
	}
}

func density(sys *substrate.System, axis substrate.Axis, bins int, weights []float64) (*Profile, error) {
	if sys == nil || sys.Len() == 0 {
		return nil, substrate.NewError(substrate.ErrEmptySystem, "no atoms to profile", "density")
	}
	if !axis.Valid() {
		return nil, substrate.Errorf(substrate.ErrInvalidComponent, "density", "invalid axis %v", axis)
	}
	if bins < 1 {
		return nil, substrate.Errorf(substrate.ErrInvalidComponent, "density", "need at least one bin, got %d", bins)
	}
	x := make([]float64, sys.Len())
	for i := range x {
		x[i] = axis.Of(sys.Coords.Vec(i))
	}
	sort.Sort(weighted{x, weights}) //stat.Histogram wants sorted data
	lo := math.Min(0, x[0])
	hi := math.Max(axis.Of(sys.Box), x[len(x)-1])
	if hi <= lo {
		hi = lo + 1
	}
	//the last divider is exclusive
	hi = math.Nextafter(hi, math.Inf(1))
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	counts := stat.Histogram(nil, dividers, x, weights)
	return &Profile{Axis: axis, Dividers: dividers, Counts: counts, Total: len(x), weighted: weights != nil}, nil
}

// Centers returns the middle point of each bin.
func (P *Profile) Centers() []float64 {
	ret := make([]float64, len(P.Counts))
	for i := range ret {
		ret[i] = (P.Dividers[i] + P.Dividers[i+1]) / 2
	}
	return ret
}

// Normalized returns true if the counts are fractions of the total.
func (P *Profile) Normalized() bool {
	return P.normalized
}

// Normalize turns the counts into fractions of the total number, or mass, of atoms.
func (P *Profile) Normalize() {
	if P.normalized || P.Total <= 0 {
		return
	}
	total := floats.Sum(P.Counts)
	if total == 0 {
		return
	}
	floats.Scale(1/total, P.Counts)
	P.normalized = true
}

// Peak returns the center of the most populated bin.
func (P *Profile) Peak() float64 {
	return P.Centers()[floats.MaxIdx(P.Counts)]
}

func (P *Profile) String() string {
	d := make([]string, 0, len(P.Counts))
	h := make([]string, 0, len(P.Counts))
	for i, v := range P.Counts {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", P.Dividers[i], P.Dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("Axis: %v, Normalized: %v, Atoms: %d\n%s\n%s", P.Axis, P.normalized, P.Total, strings.Join(d, " "), strings.Join(h, " "))
}

// Plot saves a line plot of the profile to filename. The format is taken
// from the extension, which must be one supported by gonum/plot (png, svg, pdf...).
func Plot(P *Profile, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = P.Axis.String() + " (nm)"
	p.Y.Label.Text = "Atoms"
	if P.weighted {
		p.Y.Label.Text = "Mass (amu)"
	}
	if P.normalized {
		p.Y.Label.Text = "Fraction of the total"
	}
	c := P.Centers()
	pts := make(plotter.XYs, len(c))
	for i, v := range c {
		pts[i].X = v
		pts[i].Y = P.Counts[i]
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return substrate.Errorf(substrate.ErrInvalidComponent, "Plot", "%s", err)
	}
	p.Add(plotter.NewGrid(), l)
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
