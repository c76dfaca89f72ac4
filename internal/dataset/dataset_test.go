package dataset

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestLoadStations verifies parsing of coordinates, observations and the
// two accepted missing markers.
func TestLoadStations(t *testing.T) {
	path := writeFile(t, "stations.csv",
		"x,y,elevation,d1,d2\n"+
			"1000,2000,150,20.5,21\n"+
			"3000,4000,900,NA,16.25\n"+
			"5000,6000,300,19,\n")

	table, err := LoadStations(path)
	if err != nil {
		t.Fatalf("LoadStations failed: %v", err)
	}
	if table.Len() != 3 || table.Days() != 2 {
		t.Fatalf("Expected 3 stations x 2 days, got %d x %d", table.Len(), table.Days())
	}
	if table.X[1] != 3000 || table.Elevation[2] != 300 {
		t.Errorf("Coordinates parsed wrong: %+v", table)
	}
	if table.Observations.At(0, 0) != 20.5 {
		t.Errorf("Expected observation 20.5, got %g", table.Observations.At(0, 0))
	}
	if !math.IsNaN(table.Observations.At(1, 0)) {
		t.Errorf("Expected NA cell to be NaN, got %g", table.Observations.At(1, 0))
	}
	if !math.IsNaN(table.Observations.At(2, 1)) {
		t.Errorf("Expected empty cell to be NaN, got %g", table.Observations.At(2, 1))
	}
}

// TestLoadStationsErrors verifies the malformed-input failures.
func TestLoadStationsErrors(t *testing.T) {
	cases := map[string]string{
		"headerOnly": "x,y,elevation,d1\n",
		"fewColumns": "x,y,elevation\n1,2,3\n",
		"raggedRow":  "x,y,elevation,d1\n1,2,3\n",
		"notANumber": "x,y,elevation,d1\n1,2,3,abc\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name+".csv", content)
			if _, err := LoadStations(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

// TestLoadPoints verifies point parsing and the rejection of missing
// target coordinates.
func TestLoadPoints(t *testing.T) {
	path := writeFile(t, "points.csv", "x,y,elevation\n100,200,50\n300,400,1200\n")
	points, err := LoadPoints(path)
	if err != nil {
		t.Fatalf("LoadPoints failed: %v", err)
	}
	if points.Len() != 2 || points.Elevation[1] != 1200 {
		t.Errorf("Points parsed wrong: %+v", points)
	}

	pts := points.Points()
	if len(pts) != 2 || pts[0].X != 100 || pts[0].Z != 50 {
		t.Errorf("Point conversion wrong: %+v", pts)
	}

	bad := writeFile(t, "bad_points.csv", "x,y,elevation\n100,NA,50\n")
	if _, err := LoadPoints(bad); err == nil {
		t.Error("Expected an error for a missing target coordinate")
	}
}

// TestWriteResults verifies the CSV output including the day-column
// header and the NA marker for no-data cells.
func TestWriteResults(t *testing.T) {
	result := mat.NewDense(2, 3, []float64{18.5, math.NaN(), 17, 16, 15.25, math.NaN()})
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := WriteResults(path, result); err != nil {
		t.Fatalf("WriteResults failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read results back: %v", err)
	}
	got := strings.TrimSpace(string(data))
	want := "d1,d2,d3\n18.5,NA,17\n16,15.25,NA"
	if got != want {
		t.Errorf("Result file mismatch:\n got: %q\nwant: %q", got, want)
	}
}

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
