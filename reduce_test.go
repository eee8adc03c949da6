/*
 * reduce_test.go, part of gocg.
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
	"testing"

	v3 "github.com/rmera/gocg/v3"
	"github.com/stretchr/testify/require"
)

//pentane-ish chain: 5 carbons bonded consecutively
func chainStructure(t *testing.T) *Structure {
	t.Helper()
	data := []float64{0, 0, 0, 1, 0, 0, 2, 0, 0, 3, 0, 0, 4, 0, 0}
	coords, err := v3.NewMatrix(data)
	require.NoError(t, err)
	S, err := NewStructure([]string{"C", "C", "C", "C", "C"}, coords, nil,
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, nil)
	require.NoError(t, err)
	return S
}

func TestChainOverlapDiscarded(t *testing.T) {
	S := chainStructure(t)
	matches := []*Match{
		{Pattern: "CCC", Bead: "_A", Atoms: []int{0, 1, 2}},
		{Pattern: "CCC", Bead: "_A", Atoms: []int{2, 3, 4}}, //atom 2 already claimed
	}
	rep, err := Reduce(S, matches, nil)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Accepted)
	require.Equal(t, 1, rep.Discarded)
	require.Equal(t, 2, rep.Uncovered) //atoms 3 and 4
	require.Equal(t, 1, S.Len())       //atomistic stripped, one bead left
	require.True(t, S.Atom(0).Bead)
	require.Equal(t, "_A", S.Atom(0).Name)
	require.Equal(t, "A", S.Atom(0).Label)
	require.Equal(t, []int{0, 1, 2}, S.Atom(0).Source)
}

func TestBeadCentroidExact(t *testing.T) {
	S := chainStructure(t)
	matches := []*Match{
		{Pattern: "CCC", Bead: "_A", Atoms: []int{0, 1, 2}},
	}
	O := DefaultReduceOptions()
	O.KeepAtomistic(true)
	rep, err := Reduce(S, matches, O)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Accepted)
	require.Equal(t, 6, S.Len()) //5 atoms + 1 bead, overlaid
	bead := S.Coord(5)
	require.InDelta(t, 1.0, bead.At(0, 0), 1e-12) //mean of 0, 1, 2
	require.InDelta(t, 0.0, bead.At(0, 1), 1e-12)
	require.InDelta(t, 0.0, bead.At(0, 2), 1e-12)
}

func TestRingMatchesMayOverlap(t *testing.T) {
	//two fused six-rings sharing atoms, as a naphthalene-like query yields
	n := 10
	names := make([]string, n)
	data := make([]float64, 0, 3*n)
	for i := range names {
		names[i] = "C"
		data = append(data, float64(i), 0, 0)
	}
	coords, err := v3.NewMatrix(data)
	require.NoError(t, err)
	bonds := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		bonds = append(bonds, [2]int{i - 1, i})
	}
	S, err := NewStructure(names, coords, nil, bonds, nil)
	require.NoError(t, err)
	matches := []*Match{
		{Pattern: "c1ccccc1", Bead: "_A", Atoms: []int{0, 1, 2, 3, 4, 5}},
		{Pattern: "c1ccccc1", Bead: "_A", Atoms: []int{4, 5, 6, 7, 8, 9}}, //shares 4 and 5
	}
	rep, err := Reduce(S, matches, nil)
	require.NoError(t, err)
	require.Equal(t, 2, rep.Accepted)
	require.Equal(t, 0, rep.Discarded)
	require.Equal(t, 2, S.Len())
	//the groups share a bond, so their beads are bonded, exactly once
	require.Len(t, S.Bonds(), 1)
}

func TestBeadBondsDerivedOnce(t *testing.T) {
	//two groups with two atomistic bonds crossing between them
	data := make([]float64, 18)
	coords, err := v3.NewMatrix(data)
	require.NoError(t, err)
	S, err := NewStructure([]string{"C", "C", "C", "C", "C", "C"}, coords, nil,
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {0, 5}}, nil)
	require.NoError(t, err)
	matches := []*Match{
		{Pattern: "CCC", Bead: "_A", Atoms: []int{0, 1, 2}},
		{Pattern: "CCC", Bead: "_B", Atoms: []int{3, 4, 5}},
	}
	rep, err := Reduce(S, matches, nil)
	require.NoError(t, err)
	require.Equal(t, 2, rep.Accepted)
	require.Equal(t, 0, rep.Uncovered)
	require.Equal(t, 2, S.Len())
	require.Len(t, S.Bonds(), 1) //bonds 2-3 and 0-5 both cross, one bead bond
	require.Equal(t, &Bond{At1: 0, At2: 1}, S.Bonds()[0])
}

func TestReduceDeterministic(t *testing.T) {
	find := func(pattern string) ([][]int, error) {
		switch pattern {
		case "CCC":
			return [][]int{{0, 1, 2}, {2, 3, 4}}, nil
		default:
			return nil, nil
		}
	}
	run := func() *Structure {
		S := chainStructure(t)
		_, err := CoarseGrain(S, []string{"c1sccc1", "CCC"}, find, nil)
		require.NoError(t, err)
		return S
	}
	a, b := run(), run()
	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		require.Equal(t, a.Atom(i).Name, b.Atom(i).Name)
		require.Equal(t, a.Atom(i).Label, b.Atom(i).Label)
		require.Equal(t, a.Atom(i).Source, b.Atom(i).Source)
		require.Equal(t, a.Coord(i).RawRowView(0), b.Coord(i).RawRowView(0))
	}
	require.Equal(t, a.Bonds(), b.Bonds())
}

func TestEmptyPatternIsWarningOnly(t *testing.T) {
	S := chainStructure(t)
	find := func(pattern string) ([][]int, error) {
		if pattern == "CCC" {
			return [][]int{{0, 1, 2}}, nil
		}
		return nil, nil
	}
	rep, err := CoarseGrain(S, []string{"c1sccc1", "CCC"}, find, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"c1sccc1"}, rep.EmptyPatterns)
	require.Equal(t, 1, rep.Accepted)
	//beads are named after the pattern's position in the list, not the bead count
	require.Equal(t, "_B", S.Atom(0).Name)
}

func TestMatchOffset(t *testing.T) {
	S := chainStructure(t)
	O := DefaultReduceOptions()
	O.MatchOffset(1) //1-indexed matcher
	matches := []*Match{{Pattern: "CCC", Bead: "_A", Atoms: []int{1, 2, 3}}}
	rep, err := Reduce(S, matches, O)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Accepted)
	require.Equal(t, []int{0, 1, 2}, S.Atom(0).Source)
}

func TestMatchValidation(t *testing.T) {
	S := chainStructure(t)
	_, err := Reduce(S, []*Match{{Pattern: "CCC", Atoms: []int{3, 4, 5}}}, nil)
	require.Error(t, err)
	require.IsType(t, &IntegrityError{}, err)
	//a group with no atoms must be rejected up front, even for a ring-like
	//pattern that skips the overlap check: a bead cannot stand for nothing
	require.NotPanics(t, func() {
		_, err = Reduce(S, []*Match{{Pattern: "c1ccccc1", Bead: "_A", Atoms: []int{}}}, nil)
	})
	require.Error(t, err)
	require.IsType(t, &IntegrityError{}, err)
	require.Equal(t, 5, S.Len()) //structure untouched after the failed call
}
