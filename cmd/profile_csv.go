package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	gop "github.com/gop-sim/gop-sim/gop"
)

// ReadProfileCSV loads a baryon density profile from a CSV file with a
// header row and columns radius_kpc,density. Extra columns are ignored so
// exported prediction tables can be fed back in.
func ReadProfileCSV(path string) (gop.RadialProfile, error) {
	if path == "" {
		return gop.RadialProfile{}, fmt.Errorf("profile path must not be empty")
	}
	file, err := os.Open(path)
	if err != nil {
		return gop.RadialProfile{}, fmt.Errorf("opening profile %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return gop.RadialProfile{}, fmt.Errorf("reading CSV header from %s: %w", path, err)
	}

	var radii, density []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return gop.RadialProfile{}, fmt.Errorf("reading CSV row from %s: %w", path, err)
		}
		if len(record) < 2 {
			return gop.RadialProfile{}, fmt.Errorf("%s: want at least 2 columns per row, got %d", path, len(record))
		}
		r, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return gop.RadialProfile{}, fmt.Errorf("%s: bad radius %q: %w", path, record[0], err)
		}
		rho, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return gop.RadialProfile{}, fmt.Errorf("%s: bad density %q: %w", path, record[1], err)
		}
		radii = append(radii, r)
		density = append(density, rho)
	}

	profile, err := gop.NewRadialProfile(radii, density)
	if err != nil {
		return gop.RadialProfile{}, fmt.Errorf("%s: %w", path, err)
	}
	return profile, nil
}

// WritePredictionCSV exports the full prediction table (radius, baryon,
// probabilistic, effective density and enhancement factor) to a CSV file.
func WritePredictionCSV(pred *gop.Prediction, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // flushed and checked below

	w := csv.NewWriter(file)
	if err := w.Write([]string{"radius_kpc", "rho_baryon", "rho_prob", "rho_eff", "enhancement"}); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	enh := pred.Enhancement()
	for i, r := range pred.Profile.RadiiKpc {
		row := []string{
			strconv.FormatFloat(r, 'g', -1, 64),
			strconv.FormatFloat(pred.Profile.Density[i], 'g', -1, 64),
			strconv.FormatFloat(pred.RhoProb[i], 'g', -1, 64),
			strconv.FormatFloat(pred.RhoEff[i], 'g', -1, 64),
			strconv.FormatFloat(enh[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing row %d to %s: %w", i, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}
