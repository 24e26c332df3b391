/*
 * doc.go, part of gosubstrate
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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package substrate holds the data model of goSubstrate, a library to build the
atomic coordinates of substrates for molecular dynamics input: flat sheets,
cylindrical shells and blocks of pre-equilibrated liquid cut to a volume.

A build starts from a component definition (SurfaceSheet, SurfaceCylinder or
VolumeConf) and a Residue template. The lattice package produces the 2D point set,
the surface package turns it into Placements, the volume package tiles and trims
pre-built blocks, and the assemble package stamps residues, numbers them and
merges everything into a System.

	**goSubstrate packages**

	lattice   Hexagonal and Triclinic 2D lattices.
	surface   sheets, cylinders and their caps.
	volume    periodic tiling and whole-residue trimming.
	assemble  builds and merges Systems, in parallel if asked.
	database  residue and component definitions in JSON or YAML.
	blockio   GRO reading and writing, optionally compressed.
	profile   density profiles of a System.
	v3        Nx3 coordinate matrices over gonum.

Coordinates are in nm, angles in degrees unless a function says otherwise.
*/
package substrate
