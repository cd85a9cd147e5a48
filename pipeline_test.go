package poscen

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/poscen/poscar"
	"gonum.org/v1/gonum/floats"
)

var rootdirtest string = "testdata"

func TestCenterFile(Te *testing.T) {
	in := filepath.Join(rootdirtest, "POSCAR")
	out := filepath.Join(Te.TempDir(), DefaultOutput)
	report := new(bytes.Buffer)
	if err := CenterFile(in, out, &Options{Verbose: true, Report: report}); err != nil {
		Te.Fatal(err)
	}
	if report.String() != "Centered structure written to "+out+"\n" {
		Te.Errorf("Unexpected report: %q", report.String())
	}
	orig, _ := os.ReadFile(in)
	written, err := os.ReadFile(out)
	if err != nil {
		Te.Fatal(err)
	}
	origLines := strings.SplitAfter(string(orig), "\n")
	outLines := strings.SplitAfter(string(written), "\n")
	if strings.Join(origLines[:poscar.HeaderLines], "") != strings.Join(outLines[:poscar.HeaderLines], "") {
		Te.Errorf("Header changed:\n%s", strings.Join(outLines[:poscar.HeaderLines], ""))
	}
	S, err := poscar.Read(out)
	if err != nil {
		Te.Fatal(err)
	}
	if S.NAtoms() != 6 {
		Te.Fatalf("Expected 6 atoms, got %d", S.NAtoms())
	}
	//centroid of the input is (1/3, 1/3, 1/3)
	shift := 0.5 - 1.0/3.0
	if !floats.EqualApprox(S.Coords.Vec(0), []float64{shift, shift, shift}, 1e-15) {
		Te.Errorf("First atom: got %v", S.Coords.Vec(0))
	}
	if outLines[poscar.HeaderLines] != poscar.FormatCoords(S.Coords.Vec(0)) {
		Te.Errorf("Coordinate line not in the expected format: %q", outLines[poscar.HeaderLines])
	}
	fmt.Print(string(written))
}

func TestCenterFileNilOptions(Te *testing.T) {
	out := filepath.Join(Te.TempDir(), "POSCAR.zst")
	if err := CenterFile(filepath.Join(rootdirtest, "POSCAR"), out, nil); err != nil {
		Te.Fatal(err)
	}
	S, err := poscar.Read(out)
	if err != nil {
		Te.Fatal(err)
	}
	if S.NAtoms() != 6 {
		Te.Errorf("Expected 6 atoms, got %d", S.NAtoms())
	}
}

func TestCenterFileErrors(Te *testing.T) {
	dir := Te.TempDir()
	out := filepath.Join(dir, "out")
	err := CenterFile(filepath.Join(dir, "missing"), out, nil)
	if !errors.Is(err, poscar.ErrIO) {
		Te.Errorf("Missing input: expected an IO error, got %v", err)
	}
	if !strings.HasSuffix(Trace(err), "CenterFile: read") {
		Te.Errorf("Unexpected trace %q", Trace(err))
	}
	err = CenterFile(filepath.Join(rootdirtest, "POSCAR_empty"), out, nil)
	if !errors.Is(err, ErrEmptyCoordinates) {
		Te.Errorf("No atoms: expected ErrEmptyCoordinates, got %v", err)
	}
	if _, serr := os.Stat(out); !errors.Is(serr, os.ErrNotExist) {
		Te.Error("Nothing should be written when the centering fails")
	}
	err = CenterFile(filepath.Join(rootdirtest, "POSCAR"), filepath.Join(dir, "nodir", "out"), nil)
	if !errors.Is(err, poscar.ErrIO) {
		Te.Errorf("Unwritable output: expected an IO error, got %v", err)
	}
}

//The atom counts are only checked when asked for.
func TestCenterFileCounts(Te *testing.T) {
	in := filepath.Join(rootdirtest, "POSCAR_counts")
	out := filepath.Join(Te.TempDir(), "out")
	if err := CenterFile(in, out, nil); err != nil {
		Te.Errorf("A count mismatch should only be logged: %v", err)
	}
	err := CenterFile(in, out, &Options{CheckCounts: true})
	if !errors.Is(err, poscar.ErrFormat) {
		Te.Errorf("Expected a format error for the count mismatch, got %v", err)
	}
}
