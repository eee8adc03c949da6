/*
 * doc.go, part of gocg.
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

/*Package cg supports coarse-graining of molecular dynamics structures:
reducing an atomistic representation to a smaller set of representative
beads, while keeping the bond topology between them, and repairing
structures whose molecules were split across the periodic boundary of the
simulation box.


	**goCG capabilities**

    Holds particles, coordinates, bonds and the periodic box of one
	trajectory frame in a Structure, built from the plain slices any
	trajectory reader produces.

    Derives molecule membership (connected components of the bond graph)
	deterministically, through the cggraph subpackage.

    Repairs bonds that span the periodic boundary, moving the displaced
	particles to their real-space positions (repair subpackage).

    Replaces pattern-matched groups of atoms with single beads at the group
	centroid, resolving overlaps between ring-like and chain-like matches,
	and re-deriving bead-to-bead bonds from the atomistic bond list.

    Wraps out-of-cell particles back into the primary cell.

    Finds the unique bond, angle and coarse pair types of a structure.

    Renames AMBER/GAFF-typed particles to their element symbols.

The actual reading of trajectory and molecule files, the structural pattern
matching (e.g. SMARTS) and any visualization are left to external tools;
this library consumes and produces their plain data. Forces, energies and
simulation itself are, and will stay, out of its scope.

Coordinates are kept in v3.Matrix objects (the v3 subpackage), one row per
particle.
*/
package cg
