package v3

import "fmt"

//Error is the error type for the v3 package. It satisfies poscen.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("poscen/v3: %s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec only returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err *Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix       = PanicMsg("poscen/v3: A Matrix should have 3 columns")
	ErrShape              = PanicMsg("poscen/v3: Dimension mismatch")
	ErrNonPositiveModulus = PanicMsg("poscen/v3: Modulus must be positive")
)
