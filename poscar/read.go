/*
 * read.go, part of poscen.
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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strconv"
	"strings"

	v3 "github.com/rmera/poscen/v3"
	"gonum.org/v1/gonum/mat"
)

//Read reads the POSCAR file name and returns a Structure with its contents.
//The file is closed before Read returns.
func Read(name string) (*Structure, error) {
	f, err := openRead(name)
	if err != nil {
		e := ioError(name, "Read", err)
		if errors.Is(err, fs.ErrNotExist) {
			e.kinds = append(e.kinds, ErrFormat)
		}
		return nil, e
	}
	defer f.Close()
	S, err := ReadFrom(f, name)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return S, nil
}

//ReadFrom reads a POSCAR from r. name is only used in error messages.
func ReadFrom(r io.Reader, name string) (*Structure, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, ioError(name, "ReadFrom", err)
	}
	if len(lines) < HeaderLines {
		return nil, formatError(name, len(lines), "ReadFrom", fmt.Sprintf("%s: %d lines", ShortHeader, len(lines)), nil)
	}
	S := &Structure{filename: name}
	copy(S.Header[:], lines[:HeaderLines])
	if err = S.parseHeader(); err != nil {
		return nil, errDecorate(err, "ReadFrom")
	}
	S.Coords, err = parseCoords(lines[HeaderLines:], name)
	if err != nil {
		return nil, errDecorate(err, "ReadFrom")
	}
	return S, nil
}

//readLines returns all the lines in r, each with its terminator, if it has one.
func readLines(r io.Reader) ([]string, error) {
	ret := make([]string, 0, 64)
	b := bufio.NewReader(r)
	for {
		s, err := b.ReadString('\n')
		if s != "" {
			ret = append(ret, s)
		}
		if err == io.EOF {
			return ret, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

//parseHeader interprets the lines 2 to 7 of S.Header.
func (S *Structure) parseHeader() error {
	scale, err := parseFloats(S.Header[1], 1, true, S.filename, 2)
	if err != nil {
		return errDecorate(err, "parseHeader: scale")
	}
	S.Scale = scale[0]
	lat := make([]float64, 0, 9)
	for i := 2; i < 5; i++ {
		vec, err := parseFloats(S.Header[i], 3, true, S.filename, i+1)
		if err != nil {
			return errDecorate(err, "parseHeader: lattice")
		}
		lat = append(lat, vec...)
	}
	S.Lattice = mat.NewDense(3, 3, lat)
	S.Elements = strings.Fields(S.Header[5])
	counts := strings.Fields(S.Header[6])
	S.Counts = make([]int, len(counts))
	for i, v := range counts {
		S.Counts[i], err = strconv.Atoi(v)
		if err != nil {
			return formatError(S.filename, 7, "parseHeader: counts", fmt.Sprintf("%s %q", NotANumber, v), err)
		}
	}
	return nil
}

//parseCoords reads one vector per line. Blank lines are allowed only at the end.
//Returns nil, nil if there are no coordinates.
func parseCoords(lines []string, name string) (*v3.Matrix, error) {
	data := make([]float64, 0, 3*len(lines))
	blank := 0 //line number of the first blank line after the header
	for i, l := range lines {
		lineno := i + HeaderLines + 1
		if strings.TrimSpace(l) == "" {
			if blank == 0 {
				blank = lineno
			}
			continue
		}
		if blank != 0 {
			return nil, formatError(name, lineno, "parseCoords", fmt.Sprintf("%s in line %d", DataAfterGap, blank), nil)
		}
		vec, err := parseFloats(l, 3, false, name, lineno)
		if err != nil {
			return nil, errDecorate(err, "parseCoords")
		}
		data = append(data, vec...)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return v3.NewMatrix(data)
}

//parseFloats parses the first n whitespace-separated fields of line.
//If strict, line must have exactly n fields, otherwise additional fields are ignored.
//Only decimal notation is accepted.
func parseFloats(line string, n int, strict bool, name string, lineno int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, formatError(name, lineno, "parseFloats", fmt.Sprintf("%s: %d, expected %d", TooFewFields, len(fields), n), nil)
	}
	if strict && len(fields) > n {
		return nil, formatError(name, lineno, "parseFloats", fmt.Sprintf("%s: %d, expected %d", TooManyFields, len(fields), n), nil)
	}
	ret := make([]float64, n)
	var err error
	for i, v := range fields[:n] {
		if strings.ContainsAny(v, "xX_") {
			return nil, formatError(name, lineno, "parseFloats", fmt.Sprintf("%s %q", NotANumber, v), strconv.ErrSyntax)
		}
		ret[i], err = strconv.ParseFloat(v, 64)
		if err == nil && (math.IsNaN(ret[i]) || math.IsInf(ret[i], 0)) {
			err = strconv.ErrRange
		}
		if err != nil {
			return nil, formatError(name, lineno, "parseFloats", fmt.Sprintf("%s %q", NotANumber, v), err)
		}
	}
	return ret, nil
}

//errDecorate adds caller to err's decorations, if err supports them,
//and returns err.
func errDecorate(err error, caller string) error {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(caller)
	}
	return err
}
