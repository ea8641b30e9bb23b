// Package data loads capacity-factor profiles from local CSV files. The
// formulation itself performs no I/O; this is the input-provider side.
package data

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadProfileCSV reads a profile series from path. Accepted shapes:
// a single value column, or a two-column time,value layout (the last
// column wins). A header row is skipped when its last field is not
// numeric. Empty and "nan" cells parse to NaN so missing data survives
// into input verification instead of vanishing here.
func LoadProfileCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty profile", path)
	}

	start := 0
	if _, err := parseCell(lastField(records[0])); err != nil {
		start = 1 // header row
	}

	profile := make([]float64, 0, len(records)-start)
	for i, rec := range records[start:] {
		v, err := parseCell(lastField(rec))
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, start+i+1, err)
		}
		profile = append(profile, v)
	}
	if len(profile) == 0 {
		return nil, fmt.Errorf("%s: no profile rows", path)
	}
	return profile, nil
}

func lastField(rec []string) string {
	if len(rec) == 0 {
		return ""
	}
	return rec[len(rec)-1]
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
