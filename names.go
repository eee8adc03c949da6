/*
 * names.go, part of gocg.
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

import "strings"

//BeadPrefix marks the name of a coarse-grained particle. Every bead created
//by this library has a name starting with it, so beads and atomistic
//particles can coexist in one Structure and still be told apart.
const BeadPrefix = "_"

//amberSymbol maps GAFF/AMBER atom type names to element symbols.
var amberSymbol = map[string]string{
	"c": "C", "c1": "C", "c2": "C", "c3": "C", "ca": "C", "cp": "C",
	"cq": "C", "cc": "C", "cd": "C", "ce": "C", "cf": "C", "cg": "C",
	"ch": "C", "cx": "C", "cy": "C", "cu": "C", "cv": "C",
	"h1": "H", "h2": "H", "h3": "H", "h4": "H", "h5": "H", "ha": "H",
	"hc": "H", "hn": "H", "ho": "H", "hp": "H", "hs": "H", "hw": "H",
	"hx": "H",
	"f":  "F",
	"cl": "Cl",
	"br": "Br",
	"i":  "I",
	"n":  "N", "n1": "N", "n2": "N", "n3": "N", "n4": "N", "na": "N",
	"nb": "N", "nc": "N", "nd": "N", "ne": "N", "nf": "N", "nh": "N",
	"no": "N",
	"o":  "O", "oh": "O", "os": "O", "ow": "O",
	"p2": "P", "p3": "P", "p4": "P", "p5": "P", "pb": "P", "pc": "P",
	"pd": "P", "pe": "P", "pf": "P", "px": "P", "py": "P",
	"s":  "S", "s2": "S", "s4": "S", "s6": "S", "sh": "S", "ss": "S",
	"sx": "S", "sy": "S",
}

//AmberSymbol returns the element symbol for an AMBER-style atom type name,
//and whether the name was known.
func AmberSymbol(name string) (string, bool) {
	s, ok := amberSymbol[name]
	return s, ok
}

//Features contains SMARTS queries for structural features commonly used as
//coarse-grained beads in conjugated polymers.
var Features = map[string]string{
	"thiophene":          "c1sccc1",
	"thiophene_F":        "c1scc(F)c1",
	"alkyl_3":            "CCC",
	"benzene":            "c1ccccc1",
	"splitring1":         "csc",
	"splitring2":         "cc",
	"twobenzene":         "c2ccc1ccccc1c2",
	"ring_F":             "c1sc2c(scc2c1F)",
	"ring_3":             "c3sc4cc5ccsc5cc4c3",
	"chain1":             "OCC(CC)CCCC",
	"chain2":             "CCCCC(CC)COC(=O)",
	"cyclopentadiene":    "C1cccc1",
	"c4":                 "cC(c)(c)c",
	"cyclopentadienone":  "C=C1C(=C)ccC1=O",
}

//BeadLabel returns a deterministic capital letter sequence for a
//non-negative bead ordinal: A...Z for 0-25, then AA, AB... ZZ, AAA, and so
//on, growing a letter every 26^k ordinals. It panics on a negative ordinal.
func BeadLabel(n int) string {
	if n < 0 {
		panic("Bead ordinals are non-negative")
	}
	label := make([]byte, 0, 2)
	for n >= 0 {
		label = append(label, byte('A'+n%26))
		n = n/26 - 1
	}
	for i, j := 0, len(label)-1; i < j; i, j = i+1, j-1 {
		label[i], label[j] = label[j], label[i]
	}
	return string(label)
}

//hasDigit reports whether s contains a decimal digit. SMARTS queries use
//digits for ring-closure labels, so this is the default test for a ring-like
//pattern.
func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
