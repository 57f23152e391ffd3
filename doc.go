/*
 * doc.go, part of forcebalance.
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

/*
Package forcebalance holds the vocabulary shared by the force-field
parameter parsing packages.

The interesting work happens in the subdirectories:

itp reads Gromacs force-field/topology files (.itp, .top) line by line
and, for every data line, resolves the interaction type encoded by the
line, the atoms (or atom types) involved, and a canonical label for them.

forcefield consumes the itp classifications to build parameter
identifiers -strings that uniquely name each tunable numeric field of a
force field- and to collect the starting values of those parameters into
a vector suitable for an optimizer.

ffplot draws simple diagnostics of a collected parameter set.

This package itself only provides the error interfaces implemented by the
subpackages and a small table of atomic data.
*/
package forcebalance
