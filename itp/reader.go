package itp

import (
	"slices"
	"strconv"
	"strings"
)

// Reader is a finite-state machine for classifying the lines of one
// Gromacs force-field file. Feed it every line of the file, in file
// order; it keeps track of the current section, the current molecule
// type and its atom numbering, and the nonbonded function type from
// [ defaults ], and uses that state to resolve each data line into an
// interaction type and the atoms involved.
//
// Lines must be fed in order and exactly once: feeding [ bonds ] lines
// of a molecule before its [ atoms ] section has been read, as with
// reordering the file itself, leaves the atom indices unresolvable.
// A Reader (and the Tables it owns) serves a single file; concurrent
// parses need one Reader each.
type Reader struct {
	filename string
	ln       int
	sec      Section
	secname  string              //the header name as written, kept for unhandled sections
	res      string              //current moleculetype
	adict    map[string][]string //residue -> atom names, in file order, 1-based indexing
	nbfunc   int                 //nonbonded function type from [ defaults ]
	tables   *Tables
	itype    string
	suffix   string
}

// NewReader returns a Reader for the named file. The name is only used to
// report errors; the caller owns the actual reading of the file.
func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
		adict:    make(map[string][]string),
		tables:   NewTables(),
	}
}

// Section returns the section the Reader is currently in.
func (R *Reader) Section() Section { return R.sec }

// SectionName returns the current section header as written in the file,
// which also covers sections this library doesn't handle.
func (R *Reader) SectionName() string { return R.secname }

// InteractionType returns the interaction type matched by the last fed
// line, or an empty string if that line carried no interaction.
func (R *Reader) InteractionType() string { return R.itype }

// Suffix returns the canonical atom label of the last fed line: the atom
// identifiers joined together after ordering normalization, ready to be
// appended to a parameter identifier.
func (R *Reader) Suffix() string { return R.suffix }

// Tables returns the lookup tables owned by this Reader. Callers use them
// to resolve the tunable fields of the line they just fed.
func (R *Reader) Tables() *Tables { return R.tables }

// LineNum returns the number of lines fed so far, which after a Feed call
// is the 1-based number of the line it classified.
func (R *Reader) LineNum() int { return R.ln }

// FileName returns the name this Reader reports errors against.
func (R *Reader) FileName() string { return R.filename }

//errf builds a critical or non-critical Error stamped with the Reader's
//file name and current line.
func (R *Reader) errf(message string, critical bool) error {
	return Error{message: message, filename: R.filename, line: R.ln, critical: critical}
}

//place stamps file name and line number on errors built by helpers that
//don't know them, like the Tables lookups or the atomtype parser.
func (R *Reader) place(err error) error {
	if e, ok := err.(Error); ok {
		e.filename = R.filename
		e.line = R.ln
		return e
	}
	return err
}

//canonical enforces a stable ordering of multi-atom labels: if the first
//atom sorts after the last, the whole tuple is reversed. A bond or angle
//written in either direction thus gets the same label. Tuples whose ends
//compare equal are left as given.
func canonical(atoms []string) []string {
	if len(atoms) > 1 && atoms[0] > atoms[len(atoms)-1] {
		slices.Reverse(atoms)
	}
	return atoms
}

//names resolves the first n fields of a topology-instance line as 1-based
//atom indices of the current residue, returning the atom names.
func (R *Reader) names(s []string, n int) ([]string, error) {
	if len(s) < n+1 { //n atoms plus the function type
		return nil, R.errf(sf("%s: %d fields, want at least %d", MalformedLine, len(s), n+1), true)
	}
	table := R.adict[R.res]
	r := make([]string, 0, n)
	for _, v := range s[:n] {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, R.errf(sf("%s: bad atom index %q", MalformedLine, v), true)
		}
		if i < 1 || i > len(table) {
			return nil, R.errf(sf("%s: index %d, but residue %q has %d atoms on record", IndexLookupFailure, i, R.res, len(table)), true)
		}
		r = append(r, table[i-1])
	}
	return r, nil
}

//types takes the first n fields of a type-definition line verbatim; these
//sections describe generic atom types, not a particular molecule, so there
//is nothing to look up.
func (R *Reader) types(s []string, n int) ([]string, error) {
	if len(s) < n+1 {
		return nil, R.errf(sf("%s: %d fields, want at least %d", MalformedLine, len(s), n+1), true)
	}
	return append([]string{}, s[:n]...), nil
}

//code resolves the function-type integer at the given field against the
//section's interaction-type table.
func (R *Reader) code(s []string, field int) (string, error) {
	if len(s) <= field {
		return "", R.errf(sf("%s: no function type at field %d", MalformedLine, field), true)
	}
	c, err := strconv.Atoi(s[field])
	if err != nil {
		return "", R.errf(sf("%s: bad function type %q", MalformedLine, s[field]), true)
	}
	it, err := R.tables.InteractionType(R.sec, c)
	if err != nil {
		return "", R.place(err)
	}
	return it, nil
}

// Feed classifies one line of the topology file. It returns the
// interaction type the line encodes and the atoms involved, in canonical
// order: atom names for topology-instance sections ([ bonds ], [ angles ]...),
// type names for type-definition sections ([ bondtypes ], [ atomtypes ]...).
// Blank lines, comments, section headers and the bookkeeping sections
// ([ defaults ], [ moleculetype ]) classify to an empty interaction type
// with nil atoms and no error; they only update the Reader's state.
//
// Errors carry the file name and line number. A data line inside a section
// this library doesn't handle gives a non-critical error (see
// forcebalance.TopError); everything else reported is a hard parse error,
// and the Reader should not be fed further lines after one.
func (R *Reader) Feed(line string) (string, []string, error) {
	R.ln++
	R.itype = ""
	R.suffix = ""
	l := cleanString(line)
	s := fi(l)
	if len(s) == 0 {
		return "", nil, nil
	}
	if name, ok := headerName(l); ok {
		R.secname = name
		R.sec = sectionFromName(name)
		return "", nil, nil
	}
	var atoms []string
	var err error
	switch R.sec {
	case SecDefaults:
		R.nbfunc, err = strconv.Atoi(s[0])
		if err != nil {
			return "", nil, R.errf(sf("%s: bad nonbonded function type %q", MalformedLine, s[0]), true)
		}
		return "", nil, nil
	case SecMoleculeType:
		R.res = s[0]
		return "", nil, nil
	case SecAtomTypes:
		at, aerr := ParseAtomTypeLine(line)
		if aerr != nil {
			return "", nil, R.place(aerr)
		}
		if at.Bonus > 0 {
			R.tables.ShiftVDW(at.Bonus)
		}
		atoms = []string{at.Type}
		R.itype, err = R.tables.InteractionType(SecAtomTypes, R.nbfunc)
		if err != nil {
			return "", nil, R.place(err)
		}
	case SecNonbondParams:
		atoms, err = R.types(s, 2)
		if err != nil {
			return "", nil, err
		}
		R.itype, err = R.tables.InteractionType(SecNonbondParams, R.nbfunc)
		if err != nil {
			return "", nil, R.place(err)
		}
	case SecAtoms:
		if len(s) < 5 {
			return "", nil, R.errf(sf("%s: %d fields in atom line, want at least 5", MalformedLine, len(s)), true)
		}
		atoms = []string{s[4]}
		R.itype = "COUL"
		//Register the atom name; its 1-based index in this residue is the
		//new length of the list.
		R.adict[R.res] = append(R.adict[R.res], s[4])
	case SecQTPIE:
		//the atom involved is labeled by its atomic number
		atoms = []string{s[0]}
		R.itype = "QTPIE"
	case SecBonds:
		atoms, err = R.names(s, 2)
		if err == nil {
			R.itype, err = R.code(s, 2)
		}
	case SecBondTypes:
		atoms, err = R.types(s, 2)
		if err == nil {
			R.itype, err = R.code(s, 2)
		}
	case SecAngles:
		atoms, err = R.names(s, 3)
		if err == nil {
			R.itype, err = R.code(s, 3)
		}
	case SecAngleTypes:
		atoms, err = R.types(s, 3)
		if err == nil {
			R.itype, err = R.code(s, 3)
		}
	case SecDihedrals:
		atoms, err = R.names(s, 4)
		if err == nil {
			R.itype, err = R.dihedral(s)
		}
	case SecDihedralTypes:
		atoms, err = R.types(s, 4)
		if err == nil {
			R.itype, err = R.dihedral(s)
		}
	case SecVSites2:
		atoms = []string{s[0]}
		R.itype, err = R.code(s, 3)
	case SecVSites3:
		atoms = []string{s[0]}
		R.itype, err = R.code(s, 4)
	case SecVSites4:
		atoms = []string{s[0]}
		R.itype, err = R.code(s, 5)
	default: //SecNone or SecUnknown
		return "", nil, R.errf(sf("%s %q", UnresolvedSection, R.secname), false)
	}
	if err != nil {
		R.itype = ""
		return "", nil, errDecorate(err, "Feed")
	}
	atoms = canonical(atoms)
	R.suffix = strings.Join(atoms, "")
	return R.itype, atoms, nil
}

//dihedral resolves the function type at field 4 and, for proper dihedrals,
//appends the multiplicity digit found at field 7 to the interaction type,
//so that e.g. the multiplicity-3 term of a torsion is a different
//interaction than its multiplicity-1 term.
func (R *Reader) dihedral(s []string) (string, error) {
	it, err := R.code(s, 4)
	if err != nil {
		return "", err
	}
	if it == "PDIHS" && len(s) >= 8 {
		it += s[7]
	}
	return it, nil
}
