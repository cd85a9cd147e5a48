/*
 * doc.go, part of poscen.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package poscen centers the atoms of a periodic structure in its unit cell.

The geometric center (centroid) of the fractional coordinates is moved to
the middle of the cell, (0.5, 0.5, 0.5), and every atom is then wrapped
back into the [0,1) range, so the result describes the same crystal.

	**Capabilities**

    Reads and writes VASP POSCAR files in direct coordinates (package poscar),
	keeping the 8 header lines byte by byte. gzip and zstd compressed
	files are handled transparently.

    Centers a set of fractional coordinates on any point of the cell
	(Center, CenterAt).

    Runs the whole read-center-write pipeline for a pair of files (CenterFile),
	which is what the poscen command does.

Coordinates are kept in a v3.Matrix, a Nx3 gonum Dense where each row is
one atom.

The centering is done entirely in fractional space. The lattice is only
used to report the cell lengths, so the result is the same for any cell shape.
*/
package poscen
