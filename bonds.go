/*
 * bonds.go, part of gocg.
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
	"sort"

	v3 "github.com/rmera/gocg/v3"
)

//Bond is an unordered pair of particle indexes. At1 < At2 always.
type Bond struct {
	At1 int
	At2 int
}

//NewBond returns a bond between the particles with indexes i and j,
//with the pair stored sorted. A bond from a particle to itself is an
//IntegrityError.
func NewBond(i, j int) (*Bond, error) {
	if i == j {
		return nil, newIntegrityError("cg: Attempted to bond particle %d to itself", i)
	}
	if i > j {
		i, j = j, i
	}
	return &Bond{At1: i, At2: j}, nil
}

//Cross returns the index at the other end of the bond from the given one.
//It panics if origin is not part of the bond, as that got to be a
//programming error.
func (B *Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin index given is not present in the bond!")
}

//Dist returns the current Euclidean length of the bond in the given
//coordinate set.
func (B *Bond) Dist(coords *v3.Matrix) float64 {
	return v3.Dist(coords.VecView(B.At1), coords.VecView(B.At2))
}

//sortBonds puts a bond slice in the canonical global order: by first index,
//then by second.
func sortBonds(bonds []*Bond) {
	sort.Slice(bonds, func(i, j int) bool {
		if bonds[i].At1 != bonds[j].At1 {
			return bonds[i].At1 < bonds[j].At1
		}
		return bonds[i].At2 < bonds[j].At2
	})
}

//BondGraph maps each particle index to the sorted indexes of its bonded
//neighbors. It is symmetric: if j is a neighbor of i, i is a neighbor of j.
type BondGraph map[int][]int

//NewBondGraph builds the adjacency map for the given bonds. Particles
//without bonds do not appear in the map.
func NewBondGraph(bonds []*Bond) BondGraph {
	G := make(BondGraph)
	for _, b := range bonds {
		G[b.At1] = append(G[b.At1], b.At2)
		G[b.At2] = append(G[b.At2], b.At1)
	}
	for _, neig := range G {
		sort.Ints(neig)
	}
	return G
}

//Neighbors returns the indexes bonded to i, or nil if i has no bonds.
func (G BondGraph) Neighbors(i int) []int {
	return G[i]
}

//Molecule is the set of particle indexes of one connected component of a
//bond graph, sorted.
type Molecule []int

//Contains reports whether index i is a member of the molecule.
func (M Molecule) Contains(i int) bool {
	k := sort.SearchInts(M, i)
	return k < len(M) && M[k] == i
}
