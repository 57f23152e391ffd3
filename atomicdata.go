/*
 * atomicdata.go, part of forcebalance.
 *
 *
 * Copyright 2026 The forcebalance developers
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
 */

package forcebalance

//A map for assigning atomic numbers to element symbols.
//Note that just common "bio-elements" are present
var symbolZ = map[string]int{
	"H":  1,
	"Be": 4,
	"C":  6,
	"N":  7,
	"O":  8,
	"F":  9,
	"Na": 11,
	"Mg": 12,
	"Si": 14,
	"P":  15,
	"S":  16,
	"Cl": 17,
	"K":  19,
	"Ca": 20,
	"Cr": 24,
	"Mn": 25,
	"Fe": 26,
	"Co": 27,
	"Cu": 29,
	"Zn": 30,
	"Se": 34,
	"Br": 35,
	"I":  53,
}

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"Be": 9.012,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
	"I":  126.90,
}

var zSymbol = map[int]string{}

func init() {
	for k, v := range symbolZ {
		zSymbol[v] = k
	}
}

//AtomicNumber returns the atomic number for the given element symbol,
//or 0 if the symbol is not in the table.
func AtomicNumber(symbol string) int {
	return symbolZ[symbol]
}

//Symbol returns the element symbol for the given atomic number, or an
//empty string if the number is not in the table.
func Symbol(z int) string {
	return zSymbol[z]
}

//Mass returns the atomic mass for the given element symbol, or -1
//if the symbol is not in the table.
func Mass(symbol string) float64 {
	m, ok := symbolMass[symbol]
	if !ok {
		return -1
	}
	return m
}
