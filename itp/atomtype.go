package itp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var fi func(string) []string = strings.Fields
var sf func(string, ...any) string = fmt.Sprintf

// Returns a string without gromacs comments (sequences starting with ';'),
// trailing and leading spaces, tabs and newlines
func cleanString(s string) string {
	f := strings.Split(s, ";")[0]
	return strings.Trim(f, "\n\t ")
}

func parsefloats(s ...string) ([]float64, error) {
	r := make([]float64, 0, len(s))
	for _, v := range s {
		i, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// AtomType holds one record of the [ atomtypes ] section.
type AtomType struct {
	Type       string    //primary type name
	BondedType string    //same as Type unless the line carries a separate bonded type
	AtomicNum  int       //-1 when the line doesn't give one
	Mass       float64
	Charge     float64   //default charge, almost always overridden in [ atoms ]
	Ptype      string    //particle type: actual atom or virtual site?
	Params     []float64 //trailing force-field parameters
	Bonus      int       //how many optional leading fields the line had (0-2)
}

var leadingAlpha = regexp.MustCompile(`^[A-Za-z]`)

// ParseAtomTypeLine parses one [ atomtypes ] record. These lines come in
// several shapes:
//
//	opls_135  CT  6  12.0107  0.0000  A  3.5000e-01  2.7614e-01
//	C   12.0107  0.0000  A  3.7500e-01  4.3932e-01
//	Na  11  22.9897  0.0000  A  6.0681e+03  2.6627e+01  0.0000e+00
//
// The bonded type and the atomic number are both optional; a field that
// begins with a letter is a bonded type, an integer field before the mass
// is an atomic number. The Bonus count of the returned record says how
// many of these optional fields were present, which is what the caller
// needs to keep the parameter field positions straight.
func ParseAtomTypeLine(line string) (*AtomType, error) {
	sline := fi(cleanString(line))
	if len(sline) < 6 {
		return nil, Error{message: sf("%s: %d fields", InsufficientFields, len(sline)), critical: true}
	}
	at := &AtomType{AtomicNum: -1}
	wrd := 0
	at.Type = sline[wrd]
	at.BondedType = sline[wrd]
	wrd++
	if leadingAlpha.MatchString(sline[wrd]) {
		at.BondedType = sline[wrd]
		wrd++
		at.Bonus++
	}
	//Atomic numbers never have decimals, which tells them apart from the mass.
	if isInt(sline[wrd]) {
		at.AtomicNum, _ = strconv.Atoi(sline[wrd])
		wrd++
		at.Bonus++
	}
	var err error
	at.Mass, err = strconv.ParseFloat(sline[wrd], 64)
	if err != nil {
		return nil, Error{message: sf("%s: bad mass %q", MalformedLine, sline[wrd]), critical: true}
	}
	wrd++
	at.Charge, err = strconv.ParseFloat(sline[wrd], 64)
	if err != nil {
		return nil, Error{message: sf("%s: bad charge %q", MalformedLine, sline[wrd]), critical: true}
	}
	wrd++
	at.Ptype = sline[wrd]
	wrd++
	at.Params, err = parsefloats(sline[wrd:]...)
	if err != nil {
		return nil, Error{message: sf("%s: bad parameter field: %s", MalformedLine, err.Error()), critical: true}
	}
	return at, nil
}
