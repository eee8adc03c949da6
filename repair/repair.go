/*
 * repair.go, part of gocg.
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

/*Package repair corrects molecules split across the periodic boundary of a
simulation box, by translating the particles on the wrong side of the
boundary to their real-space positions. A bond longer than a distance
tolerance marks a molecule as split; the endpoint sitting away from the bulk
of its molecule, and everything bonded to it, is moved by whole cells until
the molecule is contiguous again. Topology is never changed, only positions.
*/
package repair

import (
	"fmt"
	"log"
	"math"
	"sort"

	cg "github.com/rmera/gocg"
	"github.com/rmera/gocg/cggraph"
	v3 "github.com/rmera/gocg/v3"
	"gonum.org/v1/gonum/stat"
)

const appzero float64 = 0.000000000001

//Report tells what a Repair call did, so the calling tool can decide how to
//surface it.
type Report struct {
	//Skipped is true when the Structure has no periodic box, in which case
	//nothing was done.
	Skipped bool
	//BadBonds is the number of boundary-spanning bonds in the first scan. A
	//zero here on a converged Report means the structure needed no repair,
	//or that the tolerance was larger than any actual bond; the two cases
	//cannot be told apart from the geometry.
	BadBonds int
	//Retries counts the full re-runs after the first pass.
	Retries int
	//Remaining is the number of bad bonds still present when the engine
	//stopped. Nonzero only when Converged is false.
	Remaining int
	//Moved counts particle relocations over all passes.
	Moved     int
	Converged bool
}

//AmbiguousError reports a bad bond whose two endpoints are exactly
//equidistant from their molecule's center, so neither can be blamed for
//spanning the boundary. The repair gives up rather than guess; the original
//tie-break intent for such geometries is undefined.
type AmbiguousError struct {
	At1, At2 int //the candidate particle indexes
	deco     []string
}

func (err *AmbiguousError) Error() string {
	return fmt.Sprintf("repair: Can't determine which of the bonded particles %d and %d is the outlier", err.At1, err.At2)
}

func (err *AmbiguousError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Repair moves the particles of S that sit across the periodic boundary from
//the rest of their molecule back to their real-space positions, so that no
//bond is longer than the tolerance in O. It mutates positions in place and
//never changes bonds. Molecules are re-derived and the whole procedure
//re-run while bad bonds remain, up to the retry limit in O: at most
//maxRetries+1 repair passes, each verified by the scan of the next, so at
//most maxRetries+2 bond scans in total. If bonds remain bad at the limit the
//Structure keeps its best-effort positions, which are never worse than the
//input, and the Report says how many were left.
//A Structure with no box is left unchanged (Skipped in the Report).
//The only errors are fatal ones: an ambiguous outlier classification.
func Repair(S *cg.Structure, O *Options) (*Report, error) {
	if O == nil {
		O = DefaultOptions()
	}
	rep := new(Report)
	if S.Box() == nil {
		rep.Skipped = true
		log.Print("repair: No periodic box set. Structure left unchanged")
		return rep, nil
	}
	for pass := 0; ; pass++ {
		bad := badBonds(S, O.tolerance)
		if pass == 0 {
			rep.BadBonds = len(bad)
			if len(bad) == 0 {
				log.Printf("repair: No bonds longer than %v found. Either the structure needs no repair or the tolerance is too small. No changes made", O.tolerance)
			}
		}
		if len(bad) == 0 {
			rep.Converged = true
			return rep, nil
		}
		if pass > O.maxRetries {
			rep.Remaining = len(bad)
			log.Printf("repair: %d bad bonds still present and retry limit (%d) exceeded", len(bad), O.maxRetries)
			return rep, nil
		}
		if pass > 0 {
			rep.Retries++
		}
		moved, err := repairPass(S, bad)
		if err != nil {
			return rep, err
		}
		rep.Moved += moved
	}
}

//badBonds returns the bonds of S whose current length exceeds the tolerance,
//in the canonical bond order.
func badBonds(S *cg.Structure, tolerance float64) []*cg.Bond {
	coords := S.Coords()
	bad := make([]*cg.Bond, 0, 10)
	for _, b := range S.Bonds() {
		if b.Dist(coords) > tolerance {
			bad = append(bad, b)
		}
	}
	return bad
}

//repairPass runs one classify-propagate-relocate cycle over the given bad
//bonds and returns how many particles it moved.
func repairPass(S *cg.Structure, bad []*cg.Bond) (int, error) {
	mols := cggraph.Molecules(S)
	outliers, checked, err := classify(S, mols, bad)
	if err != nil {
		return 0, err
	}
	propagate(S.BondGraph(), outliers, checked)
	return relocate(S, mols, outliers), nil
}

//classify decides, for each bad bond, which endpoint is the outlier: the one
//whose exclusion from its molecule brings the mean particle-to-center
//distance down. If both endpoints pass that test, the one farther from the
//molecule's center is taken; on a tie in that distance, the one sitting
//outside the primary cell is taken, and if that does not separate them
//either, the classification is an AmbiguousError. It also returns the set of
//all endpoints examined, which bounds the later propagation.
func classify(S *cg.Structure, mols []cg.Molecule, bad []*cg.Bond) (map[int]bool, map[int]bool, error) {
	outliers := make(map[int]bool)
	checked := make(map[int]bool)
	for _, b := range bad {
		o1 := exclusionImproves(S, mols, b.At1)
		o2 := exclusionImproves(S, mols, b.At2)
		switch {
		case o1 && o2:
			d1 := distToCenter(S, mols, b.At1)
			d2 := distToCenter(S, mols, b.At2)
			if math.Abs(d1-d2) <= appzero {
				in1 := S.Box().Inside(S.Coord(b.At1))
				in2 := S.Box().Inside(S.Coord(b.At2))
				if in1 == in2 {
					return nil, nil, &AmbiguousError{At1: b.At1, At2: b.At2}
				}
				if in1 {
					outliers[b.At2] = true
				} else {
					outliers[b.At1] = true
				}
			} else if d1 > d2 {
				outliers[b.At1] = true
			} else {
				outliers[b.At2] = true
			}
		case o1:
			outliers[b.At1] = true
		case o2:
			outliers[b.At2] = true
		}
		checked[b.At1] = true
		checked[b.At2] = true
	}
	return outliers, checked, nil
}

//exclusionImproves reports whether leaving particle i out of its molecule
//lowers the mean distance from the member particles to their geometric
//center, i.e. whether i sits away from where the bulk of its molecule is.
func exclusionImproves(S *cg.Structure, mols []cg.Molecule, i int) bool {
	mi := cggraph.MoleculeOf(mols, i)
	if mi < 0 {
		return false
	}
	mol := mols[mi]
	rest := make([]int, 0, len(mol)-1)
	for _, m := range mol {
		if m != i {
			rest = append(rest, m)
		}
	}
	return meanDistToCenter(S.Coords(), mol) > meanDistToCenter(S.Coords(), rest)
}

func meanDistToCenter(coords *v3.Matrix, members []int) float64 {
	center := v3.Mean(coords, members)
	dists := make([]float64, 0, len(members))
	for _, i := range members {
		dists = append(dists, v3.Dist(coords.VecView(i), center))
	}
	return stat.Mean(dists, nil)
}

//distToCenter returns the distance from particle i to the geometric center
//of its whole molecule.
func distToCenter(S *cg.Structure, mols []cg.Molecule, i int) float64 {
	mol := mols[cggraph.MoleculeOf(mols, i)]
	return v3.Dist(S.Coord(i), v3.Mean(S.Coords(), []int(mol)))
}

//propagate extends the outlier set along the bond graph: everything bonded
//to an outlier, except the endpoints already examined by classify, was
//displaced together with it and must move together. The fill is iterative;
//recursion would not survive large systems.
func propagate(graph cg.BondGraph, outliers, checked map[int]bool) {
	starts := make([]int, 0, len(outliers))
	for i := range outliers {
		starts = append(starts, i)
	}
	sort.Ints(starts)
	for len(starts) > 0 {
		i := starts[len(starts)-1]
		starts = starts[:len(starts)-1]
		for _, n := range graph.Neighbors(i) {
			if checked[n] || outliers[n] {
				continue
			}
			outliers[n] = true
			starts = append(starts, n)
		}
		checked[i] = true
	}
}

//relocate moves every outlier by whole cells towards the center of the
//non-outlier part of its molecule. It returns the number of particles whose
//position actually changed.
func relocate(S *cg.Structure, mols []cg.Molecule, outliers map[int]bool) int {
	if len(outliers) == 0 {
		return 0
	}
	box := S.Box()
	byMol := make(map[int][]int)
	for i := range outliers {
		if mi := cggraph.MoleculeOf(mols, i); mi >= 0 {
			byMol[mi] = append(byMol[mi], i)
		}
	}
	molIndexes := make([]int, 0, len(byMol))
	for mi := range byMol {
		molIndexes = append(molIndexes, mi)
	}
	sort.Ints(molIndexes)
	var moved int
	delta := v3.Zeros(1)
	for _, mi := range molIndexes {
		anchors := make([]int, 0, len(mols[mi]))
		for _, m := range mols[mi] {
			if !outliers[m] {
				anchors = append(anchors, m)
			}
		}
		if len(anchors) == 0 {
			//a whole molecule drifting out of the cell is a job for Wrap, not for repair
			log.Printf("repair: Molecule of %d particles is displaced in its entirety; left in place", len(mols[mi]))
			continue
		}
		center := v3.Mean(S.Coords(), anchors)
		outs := byMol[mi]
		sort.Ints(outs)
		for _, i := range outs {
			pos := S.Coord(i)
			delta.Sub(center.Dense, pos.Dense)
			img := box.MinImage(delta)
			if img == [3]int{} {
				continue
			}
			box.Unwrap(pos, img)
			moved++
		}
	}
	return moved
}
