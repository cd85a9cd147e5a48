package poscar

import (
	"errors"
	"fmt"
)

//Kinds of errors, to be checked with errors.Is
var (
	ErrFormat = errors.New("poscar: wrong format")
	ErrIO     = errors.New("poscar: input/output failure")
)

//Error is the general structure for POSCAR errors. It fullfills poscen.Error
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	line     int    //1-based, 0 if the error is not tied to a line
	deco     []string
	critical bool
	kinds    []error
	cause    error
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("poscar file %s error in line %d: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("poscar file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing structure was associated
func (err *Error) FileName() string { return err.filename }

//Line returns the line of the file where the problem was found, or 0.
func (err *Error) Line() int { return err.line }

//Critical returns true if the error is critical, false otherwise
func (err *Error) Critical() bool { return err.critical }

//Unwrap allows errors.Is to match the kind of the error and its cause.
func (err *Error) Unwrap() []error {
	ret := make([]error, 0, len(err.kinds)+1)
	ret = append(ret, err.kinds...)
	if err.cause != nil {
		ret = append(ret, err.cause)
	}
	return ret
}

func formatError(filename string, line int, caller, message string, cause error) *Error {
	return &Error{message: message, filename: filename, line: line, deco: []string{caller}, critical: true, kinds: []error{ErrFormat}, cause: cause}
}

func ioError(filename, caller string, cause error) *Error {
	return &Error{message: cause.Error(), filename: filename, deco: []string{caller}, critical: true, kinds: []error{ErrIO}, cause: cause}
}

const (
	ShortHeader   = "File shorter than the 8 line header"
	TooFewFields  = "Too few fields"
	TooManyFields = "Too many fields"
	NotANumber    = "Can't parse number"
	DataAfterGap  = "Coordinates after a blank line"
	CountsDiffer  = "Declared atom counts don't match the coordinates"
)
