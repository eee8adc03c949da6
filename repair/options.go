/*
 * options.go, part of gocg.
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

package repair

//Options contains the tunables of the boundary repair engine.
type Options struct {
	tolerance  float64
	maxRetries int
}

//DefaultOptions returns reasonable options for coarse-grained structures in
//reduced units: bonds longer than 0.22 length units are taken to span the
//periodic boundary, and the engine re-runs at most 5 times on a structure
//that did not come out clean.
func DefaultOptions() *Options {
	r := new(Options)
	r.tolerance = 0.22
	r.maxRetries = 5
	return r
}

//Tolerance returns the distance beyond which a bond is considered to span
//the periodic boundary, and sets it to a new value, if a positive one is
//given.
func (O *Options) Tolerance(d ...float64) float64 {
	if len(d) > 0 && d[0] > 0 {
		O.tolerance = d[0]
	}
	return O.tolerance
}

//MaxRetries returns the number of times the engine will re-run on a
//structure with remaining bad bonds before giving up, and sets it to a new
//value, if a non-negative one is given.
func (O *Options) MaxRetries(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.maxRetries = n[0]
	}
	return O.maxRetries
}
