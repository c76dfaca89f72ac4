// Package dataset reads station tables and target point lists from CSV
// files and writes interpolation results back out. The missing-value
// marker is "NA" (an empty field is accepted on input as well).
package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"meteointerp/internal/models"
)

// missingMarker is the token written for NaN cells and accepted, along
// with an empty field, when reading.
const missingMarker = "NA"

// LoadStations reads a station table CSV. The first row is a header; the
// first three columns of every data row are x, y and elevation, and each
// remaining column is one time step of observations. Missing cells may be
// empty or "NA"; missing coordinates are allowed the same way.
func LoadStations(path string) (*models.StationTable, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("station file %s has no data rows", path)
	}
	if len(rows[0]) < 4 {
		return nil, fmt.Errorf("station file %s needs x, y, elevation and at least one observation column, got %d columns",
			path, len(rows[0]))
	}

	days := len(rows[0]) - 3
	n := len(rows) - 1
	table := &models.StationTable{
		X:            make([]float64, n),
		Y:            make([]float64, n),
		Elevation:    make([]float64, n),
		Observations: mat.NewDense(n, days, nil),
	}

	for i, row := range rows[1:] {
		if len(row) != days+3 {
			return nil, fmt.Errorf("station file %s row %d has %d columns, expected %d",
				path, i+2, len(row), days+3)
		}
		if table.X[i], err = parseCell(row[0]); err != nil {
			return nil, fmt.Errorf("station file %s row %d x: %w", path, i+2, err)
		}
		if table.Y[i], err = parseCell(row[1]); err != nil {
			return nil, fmt.Errorf("station file %s row %d y: %w", path, i+2, err)
		}
		if table.Elevation[i], err = parseCell(row[2]); err != nil {
			return nil, fmt.Errorf("station file %s row %d elevation: %w", path, i+2, err)
		}
		for d := 0; d < days; d++ {
			v, err := parseCell(row[3+d])
			if err != nil {
				return nil, fmt.Errorf("station file %s row %d day %d: %w", path, i+2, d+1, err)
			}
			table.Observations.Set(i, d, v)
		}
	}
	return table, nil
}

// LoadPoints reads a target point CSV with a header row and x, y,
// elevation columns.
func LoadPoints(path string) (*models.PointList, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("point file %s has no data rows", path)
	}

	n := len(rows) - 1
	points := &models.PointList{
		X:         make([]float64, n),
		Y:         make([]float64, n),
		Elevation: make([]float64, n),
	}
	for i, row := range rows[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("point file %s row %d has %d columns, expected 3", path, i+2, len(row))
		}
		for c, dst := range []*float64{&points.X[i], &points.Y[i], &points.Elevation[i]} {
			v, err := parseCell(row[c])
			if err != nil || math.IsNaN(v) {
				return nil, fmt.Errorf("point file %s row %d column %d: target points may not be missing", path, i+2, c+1)
			}
			*dst = v
		}
	}
	return points, nil
}

// WriteResults writes a points-by-days result matrix as CSV, one row per
// target point in input order, with NaN cells rendered as "NA". A header
// row labels the day columns d1..dN, mirroring the header expected on
// input files.
func WriteResults(path string, result *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating result file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows, cols := result.Dims()
	record := make([]string, cols)
	for d := range record {
		record[d] = fmt.Sprintf("d%d", d+1)
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("error writing result header: %w", err)
	}
	for i := 0; i < rows; i++ {
		for d := 0; d < cols; d++ {
			v := result.At(i, d)
			if math.IsNaN(v) {
				record[d] = missingMarker
			} else {
				record[d] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("error writing result row %d: %w", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return rows, nil
}

func parseCell(s string) (float64, error) {
	if s == "" || s == missingMarker {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
