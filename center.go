/*
 * center.go, part of poscen.
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

package poscen

import (
	"fmt"

	"github.com/rmera/poscen/poscar"
	v3 "github.com/rmera/poscen/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//CellCenter is the middle of the unit cell in fractional coordinates.
var CellCenter = [3]float64{0.5, 0.5, 0.5}

//Centering contains the result of a centering and the quantities used to obtain it.
type Centering struct {
	Coords      *v3.Matrix //translated and wrapped into [0,1)
	Centroid    [3]float64 //of the original coordinates
	Shift       [3]float64 //added to every atom before wrapping
	CellLengths [3]float64 //diagonal of the lattice. Not used for the translation.
}

//Center returns a new matrix with the coordinates in coords translated so their centroid
//is in the middle of the cell, and wrapped into the [0,1) range.
//coords is not modified. The translation is done in fractional space, lattice
//is not needed for it and can be nil.
func Center(lattice *mat.Dense, coords *v3.Matrix) (*v3.Matrix, error) {
	c, err := CenterAt(lattice, coords, CellCenter)
	if err != nil {
		return nil, errDecorate(err, "Center")
	}
	return c.Coords, nil
}

//CenterAt is like Center but moves the centroid to target, which needs to be
//inside the cell. It returns everything used in the centering.
func CenterAt(lattice *mat.Dense, coords *v3.Matrix, target [3]float64) (*Centering, error) {
	for _, v := range target {
		if !(v >= 0 && v < 1) {
			return nil, &CenterError{fmt.Sprintf("target %v", target), []string{"CenterAt"}, true, ErrTarget}
		}
	}
	centroid, err := Centroid(coords)
	if err != nil {
		return nil, errDecorate(err, "CenterAt")
	}
	ret := &Centering{Centroid: centroid}
	if lattice != nil {
		ret.CellLengths = poscar.CellLengths(lattice)
	}
	for i := range ret.Shift {
		ret.Shift[i] = target[i] - centroid[i]
	}
	shift, err := v3.NewMatrix([]float64{ret.Shift[0], ret.Shift[1], ret.Shift[2]})
	if err != nil {
		return nil, errDecorate(err, "CenterAt")
	}
	ret.Coords = v3.Zeros(coords.NVecs())
	ret.Coords.AddVec(coords, shift)
	ret.Coords.ModFloat(ret.Coords, 1.0)
	return ret, nil
}

//Centroid returns the geometric center of coords. It returns an error
//if there are no coordinates.
func Centroid(coords *v3.Matrix) ([3]float64, error) {
	var ret [3]float64
	n := coords.NVecs()
	if n == 0 {
		return ret, &CenterError{"centroid of 0 atoms", []string{"Centroid"}, true, ErrEmptyCoordinates}
	}
	col := make([]float64, n)
	for i := range ret {
		ret[i] = stat.Mean(mat.Col(col, i, coords), nil)
	}
	return ret, nil
}
