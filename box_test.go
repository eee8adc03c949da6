/*
 * box_test.go, part of gocg.
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
	"testing"

	v3 "github.com/rmera/gocg/v3"
)

func TestNewPeriodicBox(Te *testing.T) {
	if _, err := NewPeriodicBox(nil); err == nil {
		Te.Error("Expected a NoBoxError for absent lengths")
	} else if _, ok := err.(*NoBoxError); !ok {
		Te.Errorf("Expected *NoBoxError, got %T", err)
	}
	if _, err := NewPeriodicBox([]float64{10, 0, 10}); err == nil {
		Te.Error("Expected an error for a non-positive length")
	}
	if _, err := NewPeriodicBox([]float64{10, 10}); err == nil {
		Te.Error("Expected an error for 2 values")
	}
	B, err := NewPeriodicBox([]float64{10, 20, 30, 90, 90, 120})
	if err != nil {
		Te.Fatal(err)
	}
	if B.Lengths() != [3]float64{10, 20, 30} || B.Angles() != [3]float64{90, 90, 120} {
		Te.Errorf("Box values: %v %v", B.Lengths(), B.Angles())
	}
	B, _ = NewPeriodicBox([]float64{10, 10, 10})
	if B.Angles() != [3]float64{90, 90, 90} {
		Te.Errorf("Default angles: %v", B.Angles())
	}
}

func TestWrapUnwrap(Te *testing.T) {
	B, _ := NewPeriodicBox([]float64{10, 10, 10})
	pos, _ := v3.NewMatrix([]float64{9.9, -5.0, 17})
	B.Wrap(pos)
	want := []float64{-0.1, -5.0, -3} //-5 is inside [-5, 5)
	for j, w := range want {
		if math.Abs(pos.At(0, j)-w) > 1e-9 {
			Te.Errorf("Wrap axis %d: got %v, want %v", j, pos.At(0, j), w)
		}
	}
	if !B.Inside(pos) {
		Te.Error("Wrapped position reported outside the primary cell")
	}
	B.Unwrap(pos, [3]int{1, 0, -2})
	want = []float64{9.9, -5.0, -23}
	for j, w := range want {
		if math.Abs(pos.At(0, j)-w) > 1e-9 {
			Te.Errorf("Unwrap axis %d: got %v, want %v", j, pos.At(0, j), w)
		}
	}
}

func TestMinImage(Te *testing.T) {
	B, _ := NewPeriodicBox([]float64{10, 10, 10})
	delta, _ := v3.NewMatrix([]float64{9.8, -9.8, 1})
	if img := B.MinImage(delta); img != [3]int{1, -1, 0} {
		Te.Errorf("MinImage = %v", img)
	}
}
