/*
 * v3_test.go
 *
 * Copyright 2013 Raul Mera <rmera@zinc>
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
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", A.NVecs())
	}
	v := A.Vec(2)
	v[0] = -1
	if A.At(2, 0) != 7 {
		Te.Errorf("Vec should return a copy, matrix changed: %v", A)
	}
	fmt.Println("Matrix\n", A)
	if _, err = NewMatrix([]float64{1, 2}); err == nil {
		Te.Error("Expected an error for a slice not divisible by 3")
	}
	if _, err = NewMatrix(nil); err == nil {
		Te.Error("Expected an error for an empty slice")
	}
	var N *Matrix
	if N.NVecs() != 0 {
		Te.Error("A nil Matrix should have no vectors")
	}
}

func TestAddVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	vec, _ := NewMatrix([]float64{0.5, -1, 2})
	B := Zeros(2)
	B.AddVec(A, vec)
	want := mat.NewDense(2, 3, []float64{1.5, 1, 5, 4.5, 4, 8})
	if !mat.EqualApprox(B, want, 1e-12) {
		Te.Errorf("AddVec: got %v want %v", B, want)
	}
	B.AddVec(B, vec)
	want.Apply(func(_, j int, v float64) float64 { return v + vec.At(0, j) }, want)
	if !mat.EqualApprox(B, want, 1e-12) {
		Te.Errorf("AddVec in place: got %v want %v", B, want)
	}
	defer func() {
		if r := recover(); r != ErrShape {
			Te.Errorf("Expected ErrShape panic, got %v", r)
		}
	}()
	B.AddVec(A, A)
}

func TestModFloat(Te *testing.T) {
	A, _ := NewMatrix([]float64{1.25, -0.25, 0.5, -1e-17, 2, -0.0})
	B := Zeros(2)
	B.ModFloat(A, 1.0)
	want := []float64{0.25, 0.75, 0.5, 0, 0, 0}
	got := append(B.Vec(0), B.Vec(1)...)
	if !floats.EqualApprox(got, want, 1e-12) {
		Te.Errorf("ModFloat: got %v want %v", got, want)
	}
	for _, v := range got {
		if v < 0 || v >= 1 || math.Signbit(v) {
			Te.Errorf("Value %v out of [0,1)", v)
		}
	}
}
