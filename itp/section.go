package itp

import (
	"regexp"
	"strings"
)

// Section identifies which bracketed table of a topology file is
// currently being read.
type Section int

const (
	SecNone Section = iota //before the first header
	SecDefaults
	SecMoleculeType
	SecAtomTypes
	SecNonbondParams
	SecAtoms
	SecQTPIE
	SecBonds
	SecBondTypes
	SecAngles
	SecAngleTypes
	SecDihedrals
	SecDihedralTypes
	SecVSites2
	SecVSites3
	SecVSites4
	SecUnknown //a header this library doesn't handle
)

var sections = map[string]Section{
	"defaults":       SecDefaults,
	"moleculetype":   SecMoleculeType,
	"atomtypes":      SecAtomTypes,
	"nonbond_params": SecNonbondParams,
	"atoms":          SecAtoms,
	"qtpie":          SecQTPIE,
	"bonds":          SecBonds,
	"bondtypes":      SecBondTypes,
	"angles":         SecAngles,
	"angletypes":     SecAngleTypes,
	"dihedrals":      SecDihedrals,
	"dihedraltypes":  SecDihedralTypes,
	"virtual_sites2": SecVSites2,
	"virtual_sites3": SecVSites3,
	"virtual_sites4": SecVSites4,
}

var secStrings = map[Section]string{
	SecNone:          "none",
	SecDefaults:      "defaults",
	SecMoleculeType:  "moleculetype",
	SecAtomTypes:     "atomtypes",
	SecNonbondParams: "nonbond_params",
	SecAtoms:         "atoms",
	SecQTPIE:         "qtpie",
	SecBonds:         "bonds",
	SecBondTypes:     "bondtypes",
	SecAngles:        "angles",
	SecAngleTypes:    "angletypes",
	SecDihedrals:     "dihedrals",
	SecDihedralTypes: "dihedraltypes",
	SecVSites2:       "virtual_sites2",
	SecVSites3:       "virtual_sites3",
	SecVSites4:       "virtual_sites4",
	SecUnknown:       "unknown",
}

func (s Section) String() string {
	n, ok := secStrings[s]
	if !ok {
		return "unknown"
	}
	return n
}

var headerRe = regexp.MustCompile(`^\[\p{Zs}*([^\]\p{Zs}]+)\p{Zs}*\]`)

//sectionFromName returns the Section for a header name, SecUnknown if
//the name is not one we handle.
func sectionFromName(name string) Section {
	s, ok := sections[name]
	if !ok {
		return SecUnknown
	}
	return s
}

//headerName extracts the name from a bracketed section header, and reports
//whether the line was a header at all. The line must already be stripped of
//comments and surrounding whitespace.
func headerName(line string) (string, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}
