/*
 * graph_test.go, part of gocg.
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

package cggraph

import (
	"testing"

	cg "github.com/rmera/gocg"
	v3 "github.com/rmera/gocg/v3"
	"github.com/stretchr/testify/require"
)

//six particles: a 3-chain, a pair and an isolated one
func testStructure(t *testing.T) *cg.Structure {
	t.Helper()
	names := []string{"C", "C", "C", "O", "H", "N"}
	coords, err := v3.NewMatrix(make([]float64, 18))
	require.NoError(t, err)
	S, err := cg.NewStructure(names, coords, nil,
		[][2]int{{0, 1}, {1, 2}, {3, 4}}, nil)
	require.NoError(t, err)
	return S
}

func TestGraph(t *testing.T) {
	S := testStructure(t)
	g := Graph(S)
	require.Equal(t, S.Len(), g.Nodes().Len())
	require.Equal(t, len(S.Bonds()), g.Edges().Len())
	require.True(t, g.HasEdgeBetween(0, 1))
	require.True(t, g.HasEdgeBetween(1, 0))
	require.False(t, g.HasEdgeBetween(0, 2))
	require.NotNil(t, g.Node(5)) //bondless particles are still nodes
}

func TestMolecules(t *testing.T) {
	S := testStructure(t)
	mols := Molecules(S)
	require.Equal(t, []cg.Molecule{{0, 1, 2}, {3, 4}, {5}}, mols)
	//membership is a partition: disjoint and covering
	seen := make(map[int]bool)
	total := 0
	for _, m := range mols {
		for _, i := range m {
			require.False(t, seen[i])
			seen[i] = true
			total++
		}
	}
	require.Equal(t, S.Len(), total)
}

func TestMoleculesDeterministic(t *testing.T) {
	S := testStructure(t)
	require.Equal(t, Molecules(S), Molecules(S))
}

func TestMoleculeOf(t *testing.T) {
	mols := []cg.Molecule{{0, 1, 2}, {3, 4}, {5}}
	require.Equal(t, 0, MoleculeOf(mols, 2))
	require.Equal(t, 1, MoleculeOf(mols, 3))
	require.Equal(t, 2, MoleculeOf(mols, 5))
	require.Equal(t, -1, MoleculeOf(mols, 6))
}
