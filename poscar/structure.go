/*
 * structure.go, part of poscen.
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

package poscar

import (
	"fmt"

	v3 "github.com/rmera/poscen/v3"
	"gonum.org/v1/gonum/mat"
)

//HeaderLines is the number of lines in a POSCAR header.
const HeaderLines = 8

//Structure contains everything read from a POSCAR file.
type Structure struct {
	//Header has the first 8 lines of the file, including their line terminators.
	//Only lines 2 to 7 are interpreted, the rest is carried as-is.
	Header   [HeaderLines]string
	Scale    float64
	Lattice  *mat.Dense //3x3, each row is a lattice vector.
	Elements []string
	Counts   []int
	Coords   *v3.Matrix //fractional coordinates, one atom per vector. nil if no atoms.
	filename string
}

//NAtoms returns the number of coordinate lines that were read.
func (S *Structure) NAtoms() int {
	return S.Coords.NVecs()
}

//DeclaredAtoms returns the sum of the atom counts in the header.
func (S *Structure) DeclaredAtoms() int {
	var ret int
	for _, v := range S.Counts {
		ret += v
	}
	return ret
}

//CellLengths returns the diagonal of the lattice matrix. This is only
//the length of each cell vector for orthogonal cells.
func (S *Structure) CellLengths() [3]float64 {
	if S.Lattice == nil {
		return [3]float64{}
	}
	return CellLengths(S.Lattice)
}

//CheckCounts returns an error if the total atom count declared in the
//header is not the number of coordinate lines in the file.
//It is never called by Read.
func (S *Structure) CheckCounts() error {
	if d, n := S.DeclaredAtoms(), S.NAtoms(); d != n {
		return formatError(S.filename, HeaderLines-1, "CheckCounts", fmt.Sprintf("%s: %d declared, %d read", CountsDiffer, d, n), nil)
	}
	return nil
}

//CellLengths returns the diagonal elements of lattice, or zeros if lattice is nil
//or smaller than 3x3.
func CellLengths(lattice mat.Matrix) [3]float64 {
	var ret [3]float64
	if lattice == nil {
		return ret
	}
	if r, c := lattice.Dims(); r < 3 || c < 3 {
		return ret
	}
	for i := range ret {
		ret[i] = lattice.At(i, i)
	}
	return ret
}
