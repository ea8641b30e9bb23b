package results

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"
	"time"
)

// WriteOperationCSV writes the full operation table to path, one row per
// time step. Technology columns come out in sorted-name order so the
// header is stable across runs.
func WriteOperationCSV(path string, rows []FullOperationRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	techs := technologyColumns(rows)

	header := []string{
		"step",
		"time",
		"storagelevel",
		"charge",
		"discharge",
		"charge_cumulative",
		"discharge_cumulative",
	}
	header = append(header, techs...)
	header = append(header,
		"total_generation",
		"load",
		"curtailment",
	)
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Step),
			fmtTime(r.Time),
			fmtFloat(r.StorageLevel),
			fmtFloat(r.Charge),
			fmtFloat(r.Discharge),
			fmtFloat(r.ChargeCumulative),
			fmtFloat(r.DischargeCumulative),
		}
		for _, tech := range techs {
			row = append(row, fmtFloat(r.Generation[tech]))
		}
		row = append(row,
			fmtFloat(r.Total),
			fmtFloat(r.Load),
			fmtFloat(r.Curtailment),
		)
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func technologyColumns(rows []FullOperationRow) []string {
	if len(rows) == 0 {
		return nil
	}
	techs := make([]string, 0, len(rows[0].Generation))
	for name := range rows[0].Generation {
		techs = append(techs, name)
	}
	sort.Strings(techs)
	return techs
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
