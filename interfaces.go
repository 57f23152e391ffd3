/*
 * interfaces.go, part of forcebalance.
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

// Error is the interface for errors in this library. It allows you to add information
// when you pass an error up. Each Decorate call also returns the "decoration" slice of
// strings resulting from the current call. If passed an empty string, it should just
// return the current value, not add the empty string to the slice.
// The decorate slice should contain a list of functions in the calling stack, plus,
// for each function, any relevant information, or nothing. If information is to be
// added to an element of the slice, it should be in this format: "FunctionName: Extra info"
type Error interface {
	Error() string
	Decorate(string) []string
}

// TopError is the interface for errors raised while parsing a topology file.
// Non-critical errors mark lines that could not be classified but that a
// caller may legitimately skip (for instance, a line inside a section this
// library doesn't handle). Critical errors mean the file is malformed or
// out of order and the parse should stop.
type TopError interface {
	Error
	Critical() bool
	FileName() string
	Line() int
}
