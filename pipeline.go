/*
 * pipeline.go, part of poscen.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"fmt"
	"io"
	"log"

	"github.com/rmera/poscen/poscar"
)

//Default file names for CenterFile's input and output.
const (
	DefaultInput  = "POSCAR"
	DefaultOutput = "POSCAR_centrado"
)

//Options modify the behavior of CenterFile. The zero value is
//what the poscen command does by default.
type Options struct {
	//CheckCounts makes CenterFile fail if the atom counts in the header don't add up
	//to the number of coordinates in the file. Otherwise the mismatch is only logged.
	CheckCounts bool
	//Verbose logs the centroid, shift and cell lengths.
	Verbose bool
	//If not nil, a confirmation line is written to Report when the output is written.
	Report io.Writer
}

//CenterFile reads the POSCAR file in, centers its atoms in the cell and writes the
//result to out, keeping the header of in. opts can be nil.
//Any error aborts the process. An error while writing can leave out truncated.
func CenterFile(in, out string, opts *Options) error {
	if opts == nil {
		opts = new(Options)
	}
	S, err := poscar.Read(in)
	if err != nil {
		return errDecorate(err, "CenterFile: read")
	}
	if err := S.CheckCounts(); err != nil {
		if opts.CheckCounts {
			return errDecorate(err, "CenterFile: read")
		}
		log.Printf("Warning: %s", err.Error())
	}
	c, err := CenterAt(S.Lattice, S.Coords, CellCenter)
	if err != nil {
		return errDecorate(err, "CenterFile: center")
	}
	if opts.Verbose {
		log.Printf("%s: %d atoms, centroid %v, shift %v, cell lengths %v (not used)", in, c.Coords.NVecs(), c.Centroid, c.Shift, c.CellLengths)
	}
	if err = poscar.Write(out, S.Header, c.Coords); err != nil {
		return errDecorate(err, "CenterFile: write")
	}
	if opts.Report != nil {
		fmt.Fprintf(opts.Report, "Centered structure written to %s\n", out)
	}
	return nil
}
