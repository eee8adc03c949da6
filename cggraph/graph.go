/*
 * graph.go, part of gocg.
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

//Package cggraph puts the bond topology of a cg.Structure in gonum graph
//form, and derives molecule membership from it.
package cggraph

import (
	"sort"

	cg "github.com/rmera/gocg"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

//Graph returns the bond topology of S as a gonum undirected graph. Node IDs
//are the particle indexes, so the graph can be used with any gonum graph
//algorithm and the results mapped back to the Structure.
func Graph(S *cg.Structure) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < S.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range S.Bonds() {
		g.SetEdge(simple.Edge{F: simple.Node(b.At1), T: simple.Node(b.At2)})
	}
	return g
}

//Molecules partitions the particles of S into its connected molecules, with
//a breadth-first flood fill from each not-yet-seen particle. The molecules
//are pairwise disjoint and cover every particle; a particle without bonds is
//a molecule of one. The returned slice is ordered by the smallest particle
//index of each molecule, and each molecule is internally sorted, so repeated
//calls on an unchanged Structure give identical results.
func Molecules(S *cg.Structure) []cg.Molecule {
	g := Graph(S)
	seen := make([]bool, S.Len())
	mols := make([]cg.Molecule, 0, 10)
	var members []int
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) {
			seen[int(n.ID())] = true
			members = append(members, int(n.ID()))
		},
	}
	for i := 0; i < S.Len(); i++ {
		if seen[i] {
			continue
		}
		members = make([]int, 0, 10)
		bf.Walk(g, g.Node(int64(i)), nil)
		bf.Reset()
		sort.Ints(members)
		mols = append(mols, cg.Molecule(members))
	}
	return mols
}

//MoleculeOf returns the index, in the slice given, of the molecule
//containing particle i, or -1 if no molecule contains it.
func MoleculeOf(mols []cg.Molecule, i int) int {
	for mi, m := range mols {
		if m.Contains(i) {
			return mi
		}
	}
	return -1
}
