/*
 * gocoords.go, part of poscen.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

//NVecs returns the number of vecs in F. A nil Matrix has no vectors.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//AddVec adds the vector vec to each vector of the matrix A, putting the
//result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.RawRowView(0)
	for i := 0; i < ar; i++ {
		floats.AddTo(F.RawRowView(i), A.RawRowView(i), v)
	}
}

//ModFloat puts in the receiver the elements of A reduced modulo m, always
//in the [0,m) range, also for negative elements. m must be positive.
func (F *Matrix) ModFloat(A *Matrix, m float64) {
	if m <= 0 {
		panic(ErrNonPositiveModulus)
	}
	if F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	F.Dense.Apply(func(_, _ int, v float64) float64 {
		return NonNegMod(v, m)
	}, A.Dense)
}

//NonNegMod returns v modulo m in the [0,m) range. A negative
//zero is returned as a positive one, and results that round to m
//(tiny negative v) are returned as 0.
func NonNegMod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	if r >= m || r == 0 {
		r = 0 //this also gets rid of the -0
	}
	return r
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	if F.NVecs() == 0 {
		return "[ ]"
	}
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf("%6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	return "[" + strings.Join(v, "\n ") + " ]"
}
