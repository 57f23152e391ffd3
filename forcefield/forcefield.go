/*
 * forcefield.go, part of forcebalance.
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

// Package forcefield collects the tunable parameters of a force field.
//
// A parameter is marked tunable by a PARM annotation in the comment of the
// topology line that holds it, followed by the 0-based fields to tune:
//
//	CA   CB   O   1   109.47  350.00  ; PARM 4 5
//
// For each such field the package builds a parameter identifier, a string
// unique to that physical parameter: the interaction type of the line,
// the symbolic name of the field, and the canonical atom label, e.g.
// "ANGLESBCACBO" and "ANGLESKCACBO" for the line above. The starting
// values go into a vector (one slot per identifier) and every file
// location holding a given parameter is remembered, so an optimizer can
// later write new values back.
//
// An RPT annotation ties a field to a parameter registered earlier
// instead of allocating a new slot:
//
//	RPT 4 ANGLESBCACAH 5 MINUS_ANGLESKCACAH /RPT
//
// the MINUS_ prefix records the location with a -1 multiplier, which is
// how opposite charges and mirrored virtual sites share one parameter.
package forcefield

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	fb "github.com/falagara/forcebalance"
	"github.com/falagara/forcebalance/itp"
	"gonum.org/v1/gonum/mat"
)

// PField records one file location holding (a multiple of) a parameter
// value: which file, which line, which whitespace-delimited field, and
// the multiplier relating the stored value to the parameter.
type PField struct {
	File  string
	Line  int
	Field int
	Mult  float64
}

// FF accumulates the tunable parameters declared in one or more topology
// files.
type FF struct {
	Map     map[string]int //parameter identifier -> slot in the value vector
	pvals   []float64      //starting values, one per slot
	PFields [][]PField     //per slot, every file location mapped to it
}

// New returns an empty parameter collection.
func New() *FF {
	return &FF{Map: make(map[string]int)}
}

// AddParam registers a starting value and location for the parameter
// named by pid, and returns its slot. A pid seen before keeps its slot
// and first value; the new location is appended to it.
func (F *FF) AddParam(pid string, val float64, loc PField) int {
	ix, seen := F.Map[pid]
	if !seen {
		ix = len(F.pvals)
		F.Map[pid] = ix
		F.pvals = append(F.pvals, val)
		F.PFields = append(F.PFields, nil)
	}
	F.PFields[ix] = append(F.PFields[ix], loc)
	return ix
}

// Repeat ties a file location to a parameter that must already be
// registered, and returns its slot.
func (F *FF) Repeat(pid string, loc PField) (int, error) {
	ix, ok := F.Map[pid]
	if !ok {
		return -1, fmt.Errorf("forcefield: RPT references unknown parameter %s (%s, line %d)", pid, loc.File, loc.Line)
	}
	F.PFields[ix] = append(F.PFields[ix], loc)
	return ix, nil
}

// NParams returns the number of distinct parameters collected so far.
func (F *FF) NParams() int { return len(F.pvals) }

// Pval returns the starting value in the given slot.
func (F *FF) Pval(i int) float64 { return F.pvals[i] }

// Pvals returns a copy of the starting parameter values as a gonum
// vector.
func (F *FF) Pvals() *mat.VecDense {
	if len(F.pvals) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(F.pvals), append([]float64{}, F.pvals...))
}

// PIDs returns the parameter identifiers, indexed by slot.
func (F *FF) PIDs() []string {
	r := make([]string, len(F.pvals))
	for pid, ix := range F.Map {
		r[ix] = pid
	}
	return r
}

// ReadITP feeds the named topology file through an itp.Reader and
// registers every parameter its PARM and RPT annotations mark. Lines
// inside sections the reader doesn't handle are logged and skipped; any
// other classification error aborts the read.
func (F *FF) ReadITP(fname string) error {
	top, err := itp.OpenTop(fname)
	if err != nil {
		return fmt.Errorf("forcefield.ReadITP: %w", err)
	}
	defer top.Close()
	R := itp.NewReader(fname)
	apply := func(l string) error {
		ferr := F.feed(R, l)
		if ferr == nil {
			return nil
		}
		if te, ok := ferr.(fb.TopError); ok && !te.Critical() {
			log.Printf("forcefield: skipping line %d of %s: %v", te.Line(), te.FileName(), te)
			return nil
		}
		return ferr
	}
	var l string
	for l, err = top.ReadString('\n'); err == nil; l, err = top.ReadString('\n') {
		if ferr := apply(l); ferr != nil {
			return ferr
		}
	}
	if !errors.Is(err, io.EOF) {
		return err
	}
	if l != "" { //a last line without a newline still counts
		return apply(l)
	}
	return nil
}

//feed classifies one line and applies the PARM/RPT annotations found in
//its comment, if any.
func (F *FF) feed(R *itp.Reader, line string) error {
	itype, _, err := R.Feed(line)
	if err != nil {
		return err
	}
	if itype == "" {
		return nil
	}
	split := strings.SplitN(line, ";", 2)
	if len(split) < 2 {
		return nil //no comment, no tags
	}
	parms, rpts, terr := scanTags(split[1])
	if terr != nil {
		return fmt.Errorf("%s (%s, line %d)", terr.Error(), R.FileName(), R.LineNum())
	}
	if len(parms) == 0 && len(rpts) == 0 {
		return nil
	}
	fields := fi(split[0])
	suffix := R.Suffix()
	if itype == "QTPIE" {
		//qtpie terms label atoms by atomic number; use the element
		//symbol in the identifier when we know it.
		if z, zerr := strconv.Atoi(suffix); zerr == nil && fb.Symbol(z) != "" {
			suffix = fb.Symbol(z)
		}
	}
	for _, fld := range parms {
		pname, ok := R.Tables().ParamName(itype, fld)
		if !ok {
			return fmt.Errorf("forcefield: field %d of a %s line is not tunable (%s, line %d)", fld, itype, R.FileName(), R.LineNum())
		}
		if fld >= len(fields) {
			return fmt.Errorf("forcefield: PARM names field %d but the line has %d fields (%s, line %d)", fld, len(fields), R.FileName(), R.LineNum())
		}
		v, verr := strconv.ParseFloat(fields[fld], 64)
		if verr != nil {
			return fmt.Errorf("forcefield: non-numeric value %q at tunable field %d (%s, line %d)", fields[fld], fld, R.FileName(), R.LineNum())
		}
		F.AddParam(itype+pname+suffix, v, PField{R.FileName(), R.LineNum(), fld, 1.0})
	}
	for _, rp := range rpts {
		if _, rerr := F.Repeat(rp.pid, PField{R.FileName(), R.LineNum(), rp.field, rp.mult}); rerr != nil {
			return rerr
		}
	}
	return nil
}

var fi func(string) []string = strings.Fields

type rptRef struct {
	field int
	pid   string
	mult  float64
}

//scanTags picks the PARM and RPT annotations out of a line's comment.
//PARM is followed by the 0-based fields holding tunable values. RPT pairs
//each field with the identifier of an already-seen parameter, up to /RPT.
func scanTags(comment string) (parms []int, rpts []rptRef, err error) {
	words := fi(comment)
	i := 0
	for i < len(words) {
		switch words[i] {
		case "PARM":
			i++
			for i < len(words) {
				n, cerr := strconv.Atoi(words[i])
				if cerr != nil {
					break //end of the field list
				}
				parms = append(parms, n)
				i++
			}
		case "RPT":
			i++
			for i < len(words) && words[i] != "/RPT" {
				if i+1 >= len(words) || words[i+1] == "/RPT" {
					return nil, nil, fmt.Errorf("forcefield: RPT field %q has no parameter identifier", words[i])
				}
				n, cerr := strconv.Atoi(words[i])
				if cerr != nil {
					return nil, nil, fmt.Errorf("forcefield: bad RPT field %q", words[i])
				}
				pid := words[i+1]
				mult := 1.0
				if strings.HasPrefix(pid, "MINUS_") {
					mult = -1.0
					pid = strings.TrimPrefix(pid, "MINUS_")
				}
				rpts = append(rpts, rptRef{field: n, pid: pid, mult: mult})
				i += 2
			}
			if i < len(words) {
				i++ //the /RPT itself
			}
		default:
			i++
		}
	}
	return parms, rpts, nil
}
