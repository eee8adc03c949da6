/*
 * box.go, part of gocg.
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

package cg

import (
	"math"

	v3 "github.com/rmera/gocg/v3"
)

//PeriodicBox represents the periodic cell of a simulation. The primary cell
//goes from -L/2 to L/2 on each axis. Angles, if given, are kept for
//bookkeeping, but the wrap/unwrap arithmetic is axis-aligned: positions are
//displaced by integer multiples of the cell lengths only.
type PeriodicBox struct {
	lengths [3]float64
	angles  [3]float64 //degrees
}

//NewPeriodicBox builds a box from 3 lengths, or 6 values (lengths then
//angles, in degrees). It returns a NoBoxError if vals is empty or nil, and an
//IntegrityError if a length is not strictly positive.
func NewPeriodicBox(vals []float64) (*PeriodicBox, error) {
	if len(vals) == 0 {
		return nil, &NoBoxError{}
	}
	if len(vals) != 3 && len(vals) != 6 {
		return nil, newIntegrityError("cg: A box takes 3 lengths or 3 lengths and 3 angles, got %d values", len(vals))
	}
	B := new(PeriodicBox)
	for i := 0; i < 3; i++ {
		if vals[i] <= 0 {
			return nil, newIntegrityError("cg: Box lengths must be strictly positive, got %v", vals[:3])
		}
		B.lengths[i] = vals[i]
	}
	if len(vals) == 6 {
		copy(B.angles[:], vals[3:])
	} else {
		B.angles = [3]float64{90, 90, 90}
	}
	return B, nil
}

//Lengths returns the 3 cell lengths.
func (B *PeriodicBox) Lengths() [3]float64 { return B.lengths }

//Angles returns the 3 cell angles, in degrees. Boxes built from lengths only
//report 90, 90, 90.
func (B *PeriodicBox) Angles() [3]float64 { return B.angles }

//Wrap puts the first vector of pos into the primary cell [-L/2, L/2) of each
//axis, in place.
func (B *PeriodicBox) Wrap(pos *v3.Matrix) {
	for j := 0; j < 3; j++ {
		L := B.lengths[j]
		x := pos.At(0, j)
		pos.Set(0, j, x-L*math.Floor(x/L+0.5))
	}
}

//Unwrap displaces the first vector of pos by the given per-axis integer
//image, in cell lengths, in place. An image of {0,0,0} leaves pos untouched.
func (B *PeriodicBox) Unwrap(pos *v3.Matrix, image [3]int) {
	for j := 0; j < 3; j++ {
		pos.Set(0, j, pos.At(0, j)+float64(image[j])*B.lengths[j])
	}
}

//MinImage returns, for each axis, +1 if the corresponding component of the
//1x3 vector delta exceeds half the cell length, -1 if it is below minus half
//the cell length, and 0 otherwise. Applying the result with Unwrap to a
//position pos moves pos one cell towards delta on every axis where pos and
//delta are more than half a cell apart.
func (B *PeriodicBox) MinImage(delta *v3.Matrix) [3]int {
	var img [3]int
	for j := 0; j < 3; j++ {
		half := B.lengths[j] / 2
		d := delta.At(0, j)
		if d > half {
			img[j] = 1
		} else if d < -half {
			img[j] = -1
		}
	}
	return img
}

//Inside reports whether the first vector of pos lies in the primary cell
//[-L/2, L/2) of every axis.
func (B *PeriodicBox) Inside(pos *v3.Matrix) bool {
	for j := 0; j < 3; j++ {
		half := B.lengths[j] / 2
		x := pos.At(0, j)
		if x < -half || x >= half {
			return false
		}
	}
	return true
}
