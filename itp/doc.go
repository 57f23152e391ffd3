/*
Package itp reads Gromacs force-field and topology files (.itp, .top).

A topology file is organized in bracketed sections ([ atomtypes ],
[ bonds ], [ dihedrals ]...). Within a section, each data line describes
one interaction, but the exact functional form is usually selected by a
small integer on the line itself (the function type), and the position of
the atom fields depends on the section and, for atom-type lines, on which
optional fields are present. The Reader in this package keeps the state
needed to untangle all of that: the current section, the current molecule
type, the number-to-name table for its atoms, and the nonbonded function
type declared in [ defaults ].

For every data line fed to it, a Reader reports the interaction type (a
short symbolic tag like "BONDS" or "UREY_BRADLEY") and the atoms involved,
in a canonical order, so that the same physical interaction always gets
the same label no matter how the file writes it.
*/
package itp
