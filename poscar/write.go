/*
 * write.go, part of poscen.
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

package poscar

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	v3 "github.com/rmera/poscen/v3"
)

//coordFormat gives each component a sign column (a space for non-negative
//numbers) and 16 decimals, with 2 spaces before each component.
const coordFormat = "  % .16f  % .16f  % .16f\n"

//Write creates (or truncates) the file name and writes to it header, unchanged,
//followed by coords. If the write fails the file may be left truncated.
func Write(name string, header [HeaderLines]string, coords *v3.Matrix) error {
	f, err := openWrite(name)
	if err != nil {
		return ioError(name, "Write", err)
	}
	err = WriteTo(f, name, header, coords)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = ioError(name, "Write", cerr)
	}
	if err != nil {
		return errDecorate(err, "Write")
	}
	return nil
}

//WriteTo writes header and coords to w in the POSCAR format.
//name is only used in error messages.
func WriteTo(w io.Writer, name string, header [HeaderLines]string, coords *v3.Matrix) error {
	b := bufio.NewWriter(w)
	for i, l := range header {
		//A header without the coordinates after it might not end in a newline.
		if i == HeaderLines-1 && !strings.HasSuffix(l, "\n") && coords.NVecs() > 0 {
			l += "\n"
		}
		if _, err := b.WriteString(l); err != nil {
			return ioError(name, "WriteTo", err)
		}
	}
	for i := 0; i < coords.NVecs(); i++ {
		if _, err := b.WriteString(FormatCoords(coords.RawRowView(i))); err != nil {
			return ioError(name, "WriteTo", err)
		}
	}
	if err := b.Flush(); err != nil {
		return ioError(name, "WriteTo", err)
	}
	return nil
}

//FormatCoords returns the POSCAR line for the first 3 elements of vec.
func FormatCoords(vec []float64) string {
	return fmt.Sprintf(coordFormat, vec[0], vec[1], vec[2])
}
