/*
 * gonum.go, part of gocg.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 * goCG is developed at the Universidad de Santiago de Chile
 * (USACH).
 *
 */

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//Matrix is a set of vectors in 3D space. The underlying implementation varies.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some functions in
//the library reflect this.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix returns a Matrix wrapping the given gonum Dense matrix.
//It panics if A does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3)
	}
	return &Matrix{A}
}

//NewMatrix creates and returns a Matrix with the given data, which must have
//a length divisible by 3, as the Matrix will have 3 columns.
func NewMatrix(data []float64) (*Matrix, error) {
	if len(data)%3 != 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by 3", len(data)), []string{"NewMatrix"}}
	}
	r := len(data) / 3
	return &Matrix{mat.NewDense(r, 3, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of 3D row vectors in F.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of F. Changes to the view
//are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//Row fills the given slice (or a new one, if nil is given) with the
//ith row of F, and returns it.
func (F *Matrix) Row(dst []float64, i int) []float64 {
	return mat.Row(dst, i, F.Dense)
}

//SomeVecs fills F with the vectors of A whose indexes are given in clist.
//F must have len(clist) rows.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) || A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for k, i := range clist {
		for j := 0; j < 3; j++ {
			F.Set(k, j, A.At(i, j))
		}
	}
}

//SetVecs replaces the vectors of F whose indexes are given in clist with
//the successive vectors of A. A must have at least len(clist) rows.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() < len(clist) {
		panic(ErrShape)
	}
	for k, i := range clist {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(k, j))
		}
	}
}

//Norm returns the order-ord norm of F, as defined by gonum's mat.Norm.
//For a single row vector and ord 2 this is the Euclidean norm.
func (F *Matrix) Norm(ord float64) float64 {
	return mat.Norm(F.Dense, ord)
}

//Copy returns a fresh Matrix with a copy of the data in F.
func (F *Matrix) Copy() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

//Errors

//Error is the v3 error type, it implements the cg.Error interface.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

//Decorate adds the given string to the error's decoration slice, if not empty,
//and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//For errors, use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3          = PanicMsg("v3: Matrixes must have 3 columns")
	ErrIndexOutOfRange = PanicMsg("v3: Vector index out of range")
	ErrShape           = PanicMsg("v3: Inconsistent shapes among the matrices involved")
)
