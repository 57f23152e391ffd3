package itp

import "strings"

// Interaction types per section, indexed by the function-type integer
// found on the data line. An empty string marks a code with no supported
// functional form.
var (
	nftypes = []string{"", "VDW", "VDW_BHAM"}   //nonbonded (atomtypes)
	pftypes = []string{"", "VPAIR", "VPAIR_BHAM"} //pairwise (nonbond_params)
	bftypes = []string{"", "BONDS", "G96BONDS", "MORSE"}
	aftypes = []string{"", "ANGLES", "G96ANGLES", "CROSS_BOND_BOND",
		"CROSS_BOND_ANGLE", "UREY_BRADLEY", "QANGLES"}
	dftypes = []string{"", "PDIHS", "IDIHS", "RBDIHS"}
	v2types = []string{"NONE", "VSITE2"}
	v3types = []string{"NONE", "VSITE3", "VSITE3FD", "VSITE3FAD", "VSITE3OUT"}
	v4types = []string{"NONE", "VSITE4FD"}
)

// Section -> interaction-type list. Based on the section you're in and the
// integer given on the current line, this looks up the interaction type:
// for example, within bonded interactions there are harmonic, G96 and
// Morse forms.
var ftable = map[Section][]string{
	SecAtomTypes:     nftypes,
	SecNonbondParams: pftypes,
	SecBonds:         bftypes,
	SecBondTypes:     bftypes,
	SecAngles:        aftypes,
	SecAngleTypes:    aftypes,
	SecDihedrals:     dftypes,
	SecDihedralTypes: dftypes,
	SecVSites2:       v2types,
	SecVSites3:       v3types,
	SecVSites4:       v4types,
}

// Interaction type -> {field -> parameter name}. Once the interaction type
// of a line is known, this is where a tunable field on that line gets its
// short symbolic name (B for an equilibrium value, K for a force constant,
// and so on). Fields absent from a map are not tunable. Proper dihedrals
// ("PDIHS" plus a multiplicity digit) all resolve through the PDIHS entry.
var basePdict = map[string]map[int]string{
	"BONDS":            {3: "B", 4: "K"},
	"G96BONDS":         {},
	"MORSE":            {3: "B", 4: "C", 5: "E"},
	"ANGLES":           {4: "B", 5: "K"},
	"G96ANGLES":        {},
	"CROSS_BOND_BOND":  {4: "1", 5: "2", 6: "K"},
	"CROSS_BOND_ANGLE": {4: "1", 5: "2", 6: "3", 7: "K"},
	"QANGLES":          {4: "B", 5: "K0", 6: "K1", 7: "K2", 8: "K3", 9: "K4"},
	"UREY_BRADLEY":     {4: "T", 5: "K1", 6: "B", 7: "K2"},
	"PDIHS":            {5: "B", 6: "K"},
	"IDIHS":            {5: "B", 6: "K"},
	"RBDIHS":           {6: "K1", 7: "K2", 8: "K3", 9: "K4", 10: "K5"},
	"VDW":              {4: "S", 5: "T"},
	"VPAIR":            {3: "S", 4: "T"},
	"VDW_BHAM":         {4: "A", 5: "B", 6: "C"},
	"VPAIR_BHAM":       {3: "A", 4: "B", 5: "C"},
	"COUL":             {6: ""},
	"QTPIE":            {1: "C", 2: "H", 3: "A"},
	"VSITE2":           {4: "A"},
	"VSITE3":           {5: "A", 6: "B"},
	"VSITE3FD":         {5: "A", 6: "D"},
	"VSITE3FAD":        {5: "T", 6: "D"},
	"VSITE3OUT":        {5: "A", 6: "B", 7: "C"},
	"VSITE4FD":         {6: "A", 7: "B", 8: "D"},
}

// Tables resolves interaction types and parameter names for one topology
// file. Each Reader owns a private copy: the VDW entries of the parameter
// table are rebound while the file is read (see ShiftVDW), so Tables must
// never be shared between concurrent parses.
type Tables struct {
	pdict map[string]map[int]string
}

// NewTables returns a fresh set of lookup tables.
func NewTables() *Tables {
	T := &Tables{pdict: make(map[string]map[int]string, len(basePdict))}
	for k, v := range basePdict {
		T.pdict[k] = v //inner maps are never mutated, only whole entries rebound
	}
	return T
}

// InteractionType returns the symbolic interaction type for the given
// section and function-type code. Codes outside the section's table mean
// the input is malformed, and give a critical error.
func (T *Tables) InteractionType(sec Section, code int) (string, error) {
	list, ok := ftable[sec]
	if !ok {
		return "", Error{message: sf("%s: section %s takes no function type", UnknownFunctionCode, sec), critical: true}
	}
	if code < 0 || code >= len(list) || list[code] == "" {
		return "", Error{message: sf("%s: %d in section %s", UnknownFunctionCode, code, sec), critical: true}
	}
	return list[code], nil
}

// ParamName returns the symbolic name of the parameter at the given
// 0-based field of a line with the given interaction type. The second
// return is false when the field is not a tunable parameter (or the
// interaction type is unknown). Trailing digits on the interaction type
// (the multiplicity suffix of proper dihedrals) are stripped if the type
// is not found verbatim.
func (T *Tables) ParamName(itype string, field int) (string, bool) {
	m, ok := T.pdict[itype]
	if !ok {
		m, ok = T.pdict[strings.TrimRight(itype, "0123456789")]
		if !ok {
			return "", false
		}
	}
	name, ok := m[field]
	return name, ok
}

// ShiftVDW rebinds the van-der-Waals parameter entries so their fields sit
// bonus positions further right. Atom-type lines may carry up to two
// optional leading fields (a bonded type and an atomic number); when they
// do, the Lennard-Jones/Buckingham parameters of every subsequent
// atom-type line move over by the same amount. Calling this repeatedly
// with the same bonus is harmless, the entries are recomputed from the
// base offsets each time.
func (T *Tables) ShiftVDW(bonus int) {
	T.pdict["VDW"] = map[int]string{4 + bonus: "S", 5 + bonus: "T"}
	T.pdict["VDW_BHAM"] = map[int]string{4 + bonus: "A", 5 + bonus: "B", 6 + bonus: "C"}
}
