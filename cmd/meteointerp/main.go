package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"meteointerp/internal/dataset"
	"meteointerp/pkg/config"
	"meteointerp/pkg/interpolation"
)

func main() {
	// Parse command line arguments
	stationsPath := flag.String("stations", "", "Station CSV: x, y, elevation, then one observation column per day")
	pointsPath := flag.String("points", "", "Target point CSV: x, y, elevation")
	configPath := flag.String("config", "meteointerp.yaml", "YAML configuration file (defaults are used when absent)")
	outputPath := flag.String("output", "interpolated.csv", "Output CSV, one row per target point")
	verbose := flag.Bool("verbose", false, "Print per-day diagnostic output")
	flag.Parse()

	// Validate inputs
	if *stationsPath == "" || *pointsPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *verbose {
		cfg.Output.Verbose = true
	}
	params := cfg.Params()

	fmt.Println("================================")
	fmt.Println("METEOINTERP - GAUSSIAN-WEIGHTED ELEVATION-CORRECTED STATION INTERPOLATION")
	fmt.Println("Based on the method of Thornton, Running & White (1997)")
	fmt.Println("================================")

	stations, err := dataset.LoadStations(*stationsPath)
	if err != nil {
		log.Fatalf("Failed to load stations: %v", err)
	}
	points, err := dataset.LoadPoints(*pointsPath)
	if err != nil {
		log.Fatalf("Failed to load target points: %v", err)
	}

	fmt.Printf("Loaded %d stations over %d days, %d target points\n",
		stations.Len(), stations.Days(), points.Len())
	fmt.Printf("Parameters: radius=%.0f shape=%.1f targetStations=%d iterations=%d\n",
		params.InitialRadius, params.Shape, params.TargetStationCount, params.RadiusIterations)

	startTime := time.Now()
	result, dayErrs, err := interpolation.InterpolateSeries(
		points.Points(), stations.X, stations.Y, stations.Elevation,
		stations.Observations, params)
	if err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}
	elapsed := time.Since(startTime)

	failedDays := 0
	for d, derr := range dayErrs {
		if derr == nil {
			continue
		}
		failedDays++
		if errors.Is(derr, interpolation.ErrInsufficientStations) {
			log.Printf("Warning: %v", derr)
		} else {
			log.Printf("Warning: day %d: %v", d, derr)
		}
	}

	if err := dataset.WriteResults(*outputPath, result); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}

	rows, cols := result.Dims()
	noData := 0
	for i := 0; i < rows; i++ {
		for d := 0; d < cols; d++ {
			if math.IsNaN(result.At(i, d)) {
				noData++
			}
		}
	}

	fmt.Printf("\nInterpolation completed in %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Results written to: %s\n", *outputPath)
	fmt.Printf("Output: %d points x %d days, %d no-data cells, %d failed days\n",
		rows, cols, noData, failedDays)
}
