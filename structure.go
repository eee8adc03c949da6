/*
 * structure.go, part of gocg.
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
	"fmt"
	"sort"
	"strings"

	v3 "github.com/rmera/gocg/v3"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is way-most likely wrong and should
 * crash. The panics are related to accessing out-of-bounds particles.**/

//Particle is one site of a Structure: an atomistic atom or a coarse-grained
//bead. All its fields are explicit; nothing is attached to a particle at
//runtime.
type Particle struct {
	Name   string
	Symbol string //element symbol; empty if unknown
	Charge float64
	Bead   bool
	Label  string //for beads, a unique base-26 letter sequence in creation order
	//Source contains the indexes of the atomistic particles a bead stands
	//for, as they were when the bead was created. Nil for atomistic
	//particles. Removal of particles from the Structure does not rewrite
	//Source: it is a record of the original atomistic indexing.
	Source []int
}

//Copy returns a copy of the Particle object.
func (P *Particle) Copy() *Particle {
	if P == nil {
		panic("Attempted to copy a nil particle")
	}
	newp := new(Particle)
	newp.Name = P.Name
	newp.Symbol = P.Symbol
	newp.Charge = P.Charge
	newp.Bead = P.Bead
	newp.Label = P.Label
	if P.Source != nil {
		newp.Source = make([]int, len(P.Source))
		copy(newp.Source, P.Source)
	}
	return newp
}

//Element returns the element symbol of the particle, falling back to its
//name when no symbol was assigned.
func (P *Particle) Element() string {
	if P.Symbol != "" {
		return P.Symbol
	}
	return P.Name
}

//Structure is a set of particles with their coordinates, bond topology, and,
//optionally, a periodic box. A particle's index is its position in the
//Structure and is stable until particles are removed; removal reindexes
//everything, including the bond list.
//A Structure is exclusively owned: it must not be read while one of the
//mutating operations of this library runs on it.
type Structure struct {
	particles []*Particle
	coords    *v3.Matrix
	bonds     []*Bond
	box       *PeriodicBox
}

//NewStructure builds a Structure for one trajectory frame: per-particle
//names and positions, optional per-particle charges, a bond list, and an
//optional box (3 lengths, or 6 lengths-and-angles; nil or empty means no
//box). Bonds referencing particles that do not exist are an IntegrityError.
func NewStructure(names []string, coords *v3.Matrix, charges []float64, bonds [][2]int, box []float64) (*Structure, error) {
	if coords == nil || coords.NVecs() != len(names) {
		return nil, newIntegrityError("cg: Need one coordinate vector per particle name")
	}
	if charges != nil && len(charges) != len(names) {
		return nil, newIntegrityError("cg: Got %d charges for %d particles", len(charges), len(names))
	}
	S := new(Structure)
	S.particles = make([]*Particle, 0, len(names))
	for i, name := range names {
		p := &Particle{Name: name, Bead: strings.HasPrefix(name, BeadPrefix)}
		if charges != nil {
			p.Charge = charges[i]
		}
		S.particles = append(S.particles, p)
	}
	S.coords = coords.Copy()
	S.bonds = make([]*Bond, 0, len(bonds))
	for _, pair := range bonds {
		if err := S.AddBond(pair[0], pair[1]); err != nil {
			return nil, errDecorate(err, "NewStructure")
		}
	}
	if len(box) > 0 {
		b, err := NewPeriodicBox(box)
		if err != nil {
			return nil, errDecorate(err, "NewStructure")
		}
		S.box = b
	}
	return S, nil
}

//Len returns the number of particles in the Structure.
func (S *Structure) Len() int { return len(S.particles) }

//Atom returns the Particle corresponding to the index i. It panics if
//out of range.
func (S *Structure) Atom(i int) *Particle {
	if i < 0 || i >= len(S.particles) {
		panic("Particle index out of range")
	}
	return S.particles[i]
}

//Coords returns the Nx3 coordinate matrix of the Structure. The matrix is
//the Structure's own: changes to it move the particles.
func (S *Structure) Coords() *v3.Matrix { return S.coords }

//Coord returns a view of the position of the ith particle.
func (S *Structure) Coord(i int) *v3.Matrix {
	return S.coords.VecView(i)
}

//Box returns the periodic box of the Structure, or nil if none is set.
func (S *Structure) Box() *PeriodicBox { return S.box }

//SetBox sets the periodic box of the Structure. A nil box disables the
//wrap/unwrap operations.
func (S *Structure) SetBox(b *PeriodicBox) { S.box = b }

//Bonds returns the bond list, index-sorted per pair and globally. The
//returned slice is the Structure's own and must not be modified.
func (S *Structure) Bonds() []*Bond { return S.bonds }

//AddBond adds a bond between particles i and j. Adding a bond that already
//exists is a no-op. Dangling or self bonds are an IntegrityError.
func (S *Structure) AddBond(i, j int) error {
	if i < 0 || i >= len(S.particles) || j < 0 || j >= len(S.particles) {
		return newIntegrityError("cg: Bond %d-%d references a particle outside the structure (%d particles)", i, j, len(S.particles))
	}
	b, err := NewBond(i, j)
	if err != nil {
		return errDecorate(err, "AddBond")
	}
	for _, prev := range S.bonds {
		if prev.At1 == b.At1 && prev.At2 == b.At2 {
			return nil
		}
	}
	S.bonds = append(S.bonds, b)
	sortBonds(S.bonds)
	return nil
}

//BondGraph returns the adjacency map derived from the current bond list.
//It is rebuilt on every call, as repair and reduction change bonds in
//batches.
func (S *Structure) BondGraph() BondGraph {
	return NewBondGraph(S.bonds)
}

//AppendParticle adds a particle with the given 1x3 position at the end of
//the Structure and returns its index.
func (S *Structure) AppendParticle(p *Particle, pos *v3.Matrix) int {
	n := S.Len()
	newc := v3.Zeros(n + 1)
	if n > 0 {
		ilist := make([]int, n)
		for i := range ilist {
			ilist[i] = i
		}
		newc.SetVecs(S.coords, ilist)
	}
	newc.SetVecs(pos, []int{n})
	S.coords = newc
	S.particles = append(S.particles, p)
	return n
}

//Copy returns a deep copy of the Structure.
func (S *Structure) Copy() *Structure {
	newS := new(Structure)
	newS.particles = make([]*Particle, 0, len(S.particles))
	for _, p := range S.particles {
		newS.particles = append(newS.particles, p.Copy())
	}
	newS.coords = S.coords.Copy()
	newS.bonds = make([]*Bond, len(S.bonds))
	for i, b := range S.bonds {
		nb := *b
		newS.bonds[i] = &nb
	}
	if S.box != nil {
		nb := *S.box
		newS.box = &nb
	}
	return newS
}

//SomeParticles returns a new Structure with copies of the particles at the
//given indexes, their coordinates, and the bonds with both ends in the
//selection, all reindexed. The receiver is not changed.
func (S *Structure) SomeParticles(indexes []int) (*Structure, error) {
	want := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= S.Len() {
			return nil, newIntegrityError("cg: Cannot select particle %d from a structure of %d", i, S.Len())
		}
		want[i] = true
	}
	newS := S.Copy()
	rest := make([]int, 0, S.Len()-len(want))
	for i := 0; i < S.Len(); i++ {
		if !want[i] {
			rest = append(rest, i)
		}
	}
	if err := newS.Remove(rest); err != nil {
		return nil, errDecorate(err, "SomeParticles")
	}
	return newS, nil
}

//Remove deletes the particles with the given indexes, along with every bond
//touching them, and reindexes the remaining particles and bonds. All
//particle indexes held by the caller are invalid afterwards.
func (S *Structure) Remove(indexes []int) error {
	if len(indexes) == 0 {
		return nil
	}
	gone := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= len(S.particles) {
			return newIntegrityError("cg: Cannot remove particle %d from a structure of %d", i, len(S.particles))
		}
		gone[i] = true
	}
	keep := make([]int, 0, len(S.particles)-len(gone))
	newindex := make(map[int]int, len(S.particles)-len(gone))
	for i := range S.particles {
		if !gone[i] {
			newindex[i] = len(keep)
			keep = append(keep, i)
		}
	}
	newparts := make([]*Particle, 0, len(keep))
	for _, i := range keep {
		newparts = append(newparts, S.particles[i])
	}
	newcoords := v3.Zeros(len(keep))
	newcoords.SomeVecs(S.coords, keep)
	newbonds := make([]*Bond, 0, len(S.bonds))
	for _, b := range S.bonds {
		if gone[b.At1] || gone[b.At2] {
			continue
		}
		newbonds = append(newbonds, &Bond{At1: newindex[b.At1], At2: newindex[b.At2]})
	}
	sortBonds(newbonds)
	S.particles = newparts
	S.coords = newcoords
	S.bonds = newbonds
	return nil
}

//NameIndexes returns the indexes of the particles whose name matches the
//given name.
func (S *Structure) NameIndexes(name string) []int {
	ret := make([]int, 0, 10)
	for i, p := range S.particles {
		if p.Name == name {
			ret = append(ret, i)
		}
	}
	return ret
}

//NamesOf returns the names of the particles with the given indexes, sorted.
func (S *Structure) NamesOf(indexes []int) []string {
	names := make([]string, 0, len(indexes))
	for _, i := range indexes {
		names = append(names, S.Atom(i).Name)
	}
	sort.Strings(names)
	return names
}

//AmberToElements renames every particle from its AMBER-style atom type to
//the corresponding element symbol, and sets the Symbol field. Beads are
//skipped. An unknown type name is an error (the table is not guessed
//around), and leaves the structure partially renamed.
func (S *Structure) AmberToElements() error {
	for i, p := range S.particles {
		if p.Bead {
			continue
		}
		symbol, ok := AmberSymbol(p.Name)
		if !ok {
			return &CError{msg: fmt.Sprintf("cg: No element for AMBER type %q (particle %d)", p.Name, i)}
		}
		p.Name = symbol
		p.Symbol = symbol
	}
	return nil
}

//RemoveHydrogens removes every hydrogen particle from the Structure,
//reindexing the rest.
func (S *Structure) RemoveHydrogens() error {
	hs := make([]int, 0, S.Len()/2)
	for i, p := range S.particles {
		if !p.Bead && p.Element() == "H" {
			hs = append(hs, i)
		}
	}
	return errDecorate(S.Remove(hs), "RemoveHydrogens")
}

//RemoveAtomistic removes every non-bead particle, leaving a purely
//coarse-grained Structure.
func (S *Structure) RemoveAtomistic() error {
	at := make([]int, 0, S.Len())
	for i, p := range S.particles {
		if !p.Bead {
			at = append(at, i)
		}
	}
	return errDecorate(S.Remove(at), "RemoveAtomistic")
}

//RemoveCoarse removes every bead, leaving a purely atomistic Structure.
func (S *Structure) RemoveCoarse() error {
	beads := make([]int, 0, S.Len())
	for i, p := range S.particles {
		if p.Bead {
			beads = append(beads, i)
		}
	}
	return errDecorate(S.Remove(beads), "RemoveCoarse")
}

//Wrap translates every particle found outside the primary cell back into
//it. It returns a NoBoxError, and changes nothing, if the Structure has no
//box.
func (S *Structure) Wrap() error {
	if S.box == nil {
		return &NoBoxError{deco: []string{"Wrap"}}
	}
	for i := 0; i < S.Len(); i++ {
		pos := S.Coord(i)
		if !S.box.Inside(pos) {
			S.box.Wrap(pos)
		}
	}
	return nil
}

//FindBonds returns the unique bond constraints of the Structure: a map from
//the sorted pair of particle names to the bonds between particles so named.
func (S *Structure) FindBonds() map[string][]*Bond {
	ret := make(map[string][]*Bond)
	for _, b := range S.bonds {
		key := strings.Join(S.NamesOf([]int{b.At1, b.At2}), "-")
		ret[key] = append(ret[key], b)
	}
	return ret
}

//FindAngles returns the unique angle constraints of the Structure: a map
//from the sorted triplet of particle names to the index triplets (i, j, k)
//with i and k both bonded to the central j.
func (S *Structure) FindAngles() map[string][][3]int {
	graph := S.BondGraph()
	angles := make([][3]int, 0, len(S.bonds))
	for i := 0; i < S.Len(); i++ {
		for _, n1 := range graph.Neighbors(i) {
			for _, n2 := range graph.Neighbors(n1) {
				if n2 > i { //n2 == i is the bond walked back; n2 < i was already seen from the other end
					angles = append(angles, [3]int{i, n1, n2})
				}
			}
		}
	}
	ret := make(map[string][][3]int)
	for _, t := range angles {
		key := strings.Join(S.NamesOf([]int{t[0], t[1], t[2]}), "-")
		ret[key] = append(ret[key], t)
	}
	return ret
}

//FindPairs returns every unique unordered pair of coarse bead names in the
//Structure, sorted.
func (S *Structure) FindPairs() [][2]string {
	names := make(map[string]bool)
	for _, p := range S.particles {
		if p.Bead {
			names[p.Name] = true
		}
	}
	uniq := make([]string, 0, len(names))
	for n := range names {
		uniq = append(uniq, n)
	}
	sort.Strings(uniq)
	pairs := make([][2]string, 0, len(uniq)*len(uniq)/2)
	for i, a := range uniq {
		for _, b := range uniq[i:] {
			pairs = append(pairs, [2]string{a, b})
		}
	}
	return pairs
}
