/*
 * interfaces.go, part of poscen.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package poscen

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller to the decoration slice and returns it. An empty string only returns the current slice.
	Critical() bool
}

//Kinds of errors returned by this package, to be checked with errors.Is.
var (
	ErrEmptyCoordinates = errors.New("poscen: no coordinates to center")
	ErrTarget           = errors.New("poscen: centering target out of the cell")
)

//CenterError is the error type of this package.
type CenterError struct {
	message  string
	deco     []string
	critical bool
	kind     error
}

func (err *CenterError) Error() string {
	return fmt.Sprintf("%s: %s", err.kind.Error(), err.message)
}

//Decorate Adds new information to the error
func (err *CenterError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err *CenterError) Critical() bool { return err.critical }

func (err *CenterError) Unwrap() error { return err.kind }

//errDecorate adds caller to the decorations of err if err implements Error,
//and returns err.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

//Trace returns the decoration trail of err (innermost caller first),
//joined with " <- ", or an empty string if err doesn't implement Error.
func Trace(err error) string {
	var e Error
	if !errors.As(err, &e) {
		return ""
	}
	return strings.Join(e.Decorate(""), " <- ")
}
