package itp

import (
	"fmt"

	fb "github.com/falagara/forcebalance"
)

//Errors

//errDecorate is a helper function that asserts that the error
//implements forcebalance.Error and decorates the error with the caller's
//name before returning it. If used with an error that doesn't implement
//forcebalance.Error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(fb.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for topology-parsing errors. It fulfills
//forcebalance.Error and forcebalance.TopError.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	line     int    //1-based line where the problem was found, 0 if unknown.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("itp file %s, line %d: %s", err.filename, err.line, err.message)
}

//Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing parse was associated
func (err Error) FileName() string { return err.filename }

//Line returns the 1-based number of the offending line
func (err Error) Line() int { return err.line }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	InsufficientFields  = "Not enough fields in atomtype line"
	IndexLookupFailure  = "Atom index not registered for the residue"
	UnknownFunctionCode = "Unknown function-type code"
	UnresolvedSection   = "Data line in unresolved section"
	MalformedLine       = "Malformed line"
)
