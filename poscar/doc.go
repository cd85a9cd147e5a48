/*
 * doc.go, part of poscen.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
Package poscar reads and writes VASP POSCAR files in direct (fractional)
coordinates.

A POSCAR file has an 8 line header:

	comment
	scale factor
	lattice vector a
	lattice vector b
	lattice vector c
	element symbols
	atoms per element
	Direct

followed by one line with the 3 fractional coordinates of each atom.
The header is kept byte by byte, so a structure that is read and written
back has exactly the same first 8 lines. Coordinates are written with 16
decimals.

Selective dynamics, cartesian coordinates and velocity blocks are not
supported. Files ending in .gz or .zst are (de)compressed on the fly.
*/
package poscar
