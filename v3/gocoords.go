/*
 * gocoords.go, part of gocg.
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
	"math"

	"gonum.org/v1/gonum/floats"
)

//AddVec adds the 1x3 vector vec to each vector of A, putting the result
//in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar := A.NVecs()
	if vec.NVecs() != 1 || F.NVecs() != ar {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		f := F.VecView(i)
		f.Add(A.VecView(i).Dense, vec.Dense)
	}
}

//SubVec subtracts the 1x3 vector vec from each vector of A, putting the result
//in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar := A.NVecs()
	if vec.NVecs() != 1 || F.NVecs() != ar {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		f := F.VecView(i)
		f.Sub(A.VecView(i).Dense, vec.Dense)
	}
}

//Dist returns the Euclidean distance between the first vector of a and
//the first vector of b.
func Dist(a, b *Matrix) float64 {
	var d2 float64
	for j := 0; j < 3; j++ {
		d := a.At(0, j) - b.At(0, j)
		d2 += d * d
	}
	return math.Sqrt(d2)
}

//Mean returns a new 1x3 vector with the column-wise mean of the vectors of A.
//If indexes are given, only the vectors of A in the first index slice given
//are considered. It panics on an empty selection, as the mean of nothing
//is not defined.
func Mean(A *Matrix, indexes ...[]int) *Matrix {
	r := Zeros(1)
	acc := r.RawRowView(0)
	var n int
	if len(indexes) > 0 && indexes[0] != nil {
		n = len(indexes[0])
		for _, i := range indexes[0] {
			floats.Add(acc, A.RawRowView(i))
		}
	} else {
		n = A.NVecs()
		for i := 0; i < n; i++ {
			floats.Add(acc, A.RawRowView(i))
		}
	}
	if n == 0 {
		panic(ErrMeanOfNothing)
	}
	floats.Scale(1/float64(n), acc)
	return r
}

//ErrMeanOfNothing is the panic raised by Mean on an empty selection.
const ErrMeanOfNothing = PanicMsg("v3: Mean requires at least one vector")
