package lpsim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestExportTrajectory(t *testing.T) {
	resetConfig()
	defer resetConfig()
	dir := t.TempDir()
	config = _lpsimconfig{outputDir: dir}
	cfgLoaded = true

	s := newQuietSimulator()
	s.SetNumYears(0.001)
	if err := s.Simulate(); err != nil {
		t.Fatal(err)
	}
	if err := ExportTrajectory(ExportConfig{Filename: "l4"}, s); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(dir, "trajectory-l4.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != s.NumSteps()+2 {
		t.Fatalf("expected header plus %d rows, got %d", s.NumSteps()+1, len(records))
	}
	if records[0][0] != "t_years" || len(records[0]) != 19 {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][0] != "0.00000000" {
		t.Fatalf("first row should start at t=0, got %s", records[1][0])
	}
}

func TestExportConfigIsUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("empty export config should be useless")
	}
	if (ExportConfig{Filename: "x"}).IsUseless() {
		t.Fatal("named export config should not be useless")
	}
	// A useless config is a silent no-op.
	if err := ExportTrajectory(ExportConfig{}, newQuietSimulator()); err != nil {
		t.Fatal(err)
	}
}
