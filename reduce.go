/*
 * reduce.go, part of gocg.
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
	"log"
	"sort"

	v3 "github.com/rmera/gocg/v3"
)

//Match is one hit of a structural pattern on an atomistic Structure: the
//indexes of the matched atoms, the pattern that matched them, and the name
//the resulting bead should carry. Matches come from an external pattern
//matcher; within this library atom indexes are always 0-based.
type Match struct {
	Pattern string
	Bead    string
	Atoms   []int
}

//MatchFunc queries an external pattern matcher, returning the groups of atom
//indexes matching the given pattern. Zero groups is not an error.
type MatchFunc func(pattern string) ([][]int, error)

//ReduceOptions contains the tunables of coarse-grain reduction.
type ReduceOptions struct {
	keepAtomistic bool
	offset        int
	ringLike      func(pattern string) bool
}

//DefaultReduceOptions returns the reduction behavior of the original
//workflow: atomistic particles are dropped once beads are built, match
//indexes are taken as 0-based, and a pattern is ring-like when it contains a
//digit (SMARTS ring-closure labels).
func DefaultReduceOptions() *ReduceOptions {
	r := new(ReduceOptions)
	r.keepAtomistic = false
	r.offset = 0
	r.ringLike = hasDigit
	return r
}

//KeepAtomistic returns whether the atomistic particles are retained next to
//the beads for overlay rendering, and sets it, if a value is given.
func (O *ReduceOptions) KeepAtomistic(b ...bool) bool {
	if len(b) > 0 {
		O.keepAtomistic = b[0]
	}
	return O.keepAtomistic
}

//MatchOffset returns the value subtracted from every incoming match index,
//and sets it, if a non-negative value is given. Set 1 for matchers that
//number atoms from 1, as SMARTS matchers commonly do.
func (O *ReduceOptions) MatchOffset(n ...int) int {
	if len(n) > 0 && n[0] >= 0 {
		O.offset = n[0]
	}
	return O.offset
}

//RingLike returns the classifier deciding whether a pattern is ring-like
//(its matches may share atoms with other groups) rather than chain-like
//(mutually exclusive), and sets it, if one is given.
func (O *ReduceOptions) RingLike(f ...func(string) bool) func(string) bool {
	if len(f) > 0 && f[0] != nil {
		O.ringLike = f[0]
	}
	return O.ringLike
}

//ReduceReport tells what a reduction did. All its conditions are
//informational; none stops the pipeline.
type ReduceReport struct {
	Accepted  int //groups turned into beads
	Discarded int //chain-like groups dropped for overlapping a previous group
	//Uncovered is the number of heavy (non-hydrogen) atoms claimed by no
	//accepted group.
	Uncovered int
	//EmptyPatterns lists the patterns that matched nothing. Filled by
	//CoarseGrain; Reduce itself never sees the patterns that produced no
	//match.
	EmptyPatterns []string
}

func claim(claimed map[int]bool, group []int) {
	for _, a := range group {
		claimed[a] = true
	}
}

func overlaps(claimed map[int]bool, group []int) bool {
	for _, a := range group {
		if claimed[a] {
			return true
		}
	}
	return false
}

//Reduce replaces groups of atoms in S with single coarse beads. Matches are
//walked in the given order: ring-like matches are always accepted, as fused
//rings legitimately share atoms; a chain-like match is accepted only if no
//atom of it was claimed before, and discarded whole otherwise. Each accepted
//group becomes one bead at the arithmetic mean of its member positions,
//carrying the group's atom indexes as its Source and a unique base-26 Label
//in creation order. Bead-to-bead bonds are derived from the atomistic bond
//list: two beads are bonded, once, if any atomistic bond crosses between
//their groups. Unless the options say to keep them, the original atomistic
//particles are then removed and only beads remain.
//Matches with no atoms, or referencing particles that do not exist or that
//are already beads, are an IntegrityError.
func Reduce(S *Structure, matches []*Match, O *ReduceOptions) (*ReduceReport, error) {
	if O == nil {
		O = DefaultReduceOptions()
	}
	rep := new(ReduceReport)
	natoms := S.Len()
	accepted := make([]*Match, 0, len(matches))
	claimed := make(map[int]bool)
	for _, m := range matches {
		if len(m.Atoms) == 0 {
			return rep, newIntegrityError("cg: Match for %q contains no atoms", m.Pattern)
		}
		group := make([]int, 0, len(m.Atoms))
		for _, a := range m.Atoms {
			i := a - O.offset
			if i < 0 || i >= natoms {
				return rep, newIntegrityError("cg: Match for %q references particle %d, outside the structure", m.Pattern, i)
			}
			if S.Atom(i).Bead {
				return rep, newIntegrityError("cg: Match for %q references particle %d, which is already a bead", m.Pattern, i)
			}
			group = append(group, i)
		}
		sort.Ints(group)
		if O.ringLike(m.Pattern) {
			//ring patterns can share atoms, the group goes in regardless
			claim(claimed, group)
			accepted = append(accepted, &Match{Pattern: m.Pattern, Bead: m.Bead, Atoms: group})
			continue
		}
		if overlaps(claimed, group) {
			rep.Discarded++
			continue
		}
		claim(claimed, group)
		accepted = append(accepted, &Match{Pattern: m.Pattern, Bead: m.Bead, Atoms: group})
	}
	rep.Accepted = len(accepted)

	for i := 0; i < natoms; i++ {
		p := S.Atom(i)
		if !p.Bead && p.Element() != "H" && !claimed[i] {
			rep.Uncovered++
		}
	}
	if rep.Uncovered > 0 {
		log.Printf("cg: %d heavy atoms were left out of coarse-graining", rep.Uncovered)
	}

	beadIndex := make([]int, len(accepted))
	for k, m := range accepted {
		name := m.Bead
		if name == "" {
			name = BeadPrefix + BeadLabel(k)
		}
		bead := &Particle{
			Name:   name,
			Bead:   true,
			Label:  BeadLabel(k),
			Source: m.Atoms,
		}
		beadIndex[k] = S.AppendParticle(bead, v3.Mean(S.Coords(), m.Atoms))
	}

	groupsOf := make(map[int][]int) //atom index -> accepted groups containing it
	for k, m := range accepted {
		for _, a := range m.Atoms {
			groupsOf[a] = append(groupsOf[a], k)
		}
	}
	//snapshot: AddBond below mutates the bond list being walked
	atomBonds := make([]*Bond, 0, len(S.Bonds()))
	for _, b := range S.Bonds() {
		if b.At1 < natoms && b.At2 < natoms {
			atomBonds = append(atomBonds, b)
		}
	}
	for _, b := range atomBonds {
		for _, gi := range groupsOf[b.At1] {
			for _, gj := range groupsOf[b.At2] {
				if gi == gj {
					continue
				}
				if err := S.AddBond(beadIndex[gi], beadIndex[gj]); err != nil {
					return rep, errDecorate(err, "Reduce")
				}
			}
		}
	}

	if !O.keepAtomistic {
		atomistic := make([]int, 0, natoms)
		for i := 0; i < natoms; i++ {
			if !S.Atom(i).Bead {
				atomistic = append(atomistic, i)
			}
		}
		if err := S.Remove(atomistic); err != nil {
			return rep, errDecorate(err, "Reduce")
		}
	}
	return rep, nil
}

//CoarseGrain coarse-grains S with the given patterns, in order, using an
//external matcher. All the matches of the ith pattern produce beads named
//with the prefix-and-letter convention for that pattern (_A for the first
//pattern, _B for the second, and so on). A pattern that matches nothing is
//reported, not an error: reduction proceeds with the rest, as the original
//workflow does when a SMARTS query finds no hit.
func CoarseGrain(S *Structure, patterns []string, find MatchFunc, O *ReduceOptions) (*ReduceReport, error) {
	matches := make([]*Match, 0, len(patterns))
	empty := make([]string, 0)
	for i, pat := range patterns {
		groups, err := find(pat)
		if err != nil {
			return nil, errDecorate(err, "CoarseGrain")
		}
		if len(groups) == 0 {
			log.Printf("cg: Pattern %q not found in the structure", pat)
			empty = append(empty, pat)
			continue
		}
		for _, g := range groups {
			matches = append(matches, &Match{Pattern: pat, Bead: BeadPrefix + BeadLabel(i), Atoms: g})
		}
	}
	rep, err := Reduce(S, matches, O)
	if rep != nil {
		rep.EmptyPatterns = empty
	}
	if err != nil {
		return rep, errDecorate(err, "CoarseGrain")
	}
	return rep, nil
}
