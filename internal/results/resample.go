package results

import (
	"sort"
	"time"
)

// MonthlyRow holds per-calendar-month means of the operation series.
type MonthlyRow struct {
	Month time.Time // first instant of the month, in the series' location

	StorageLevel float64
	Charge       float64
	Discharge    float64
	Total        float64
	Load         float64
	Curtailment  float64
}

// ResampleMonthly averages full-operation rows per calendar month, sorted
// chronologically. Useful for plotting long horizons at a readable scale.
func ResampleMonthly(rows []FullOperationRow) []MonthlyRow {
	type acc struct {
		sum MonthlyRow
		n   int
	}
	buckets := make(map[time.Time]*acc)
	for _, row := range rows {
		month := time.Date(row.Time.Year(), row.Time.Month(), 1, 0, 0, 0, 0, row.Time.Location())
		a, ok := buckets[month]
		if !ok {
			a = &acc{sum: MonthlyRow{Month: month}}
			buckets[month] = a
		}
		a.sum.StorageLevel += row.StorageLevel
		a.sum.Charge += row.Charge
		a.sum.Discharge += row.Discharge
		a.sum.Total += row.Total
		a.sum.Load += row.Load
		a.sum.Curtailment += row.Curtailment
		a.n++
	}

	out := make([]MonthlyRow, 0, len(buckets))
	for _, a := range buckets {
		n := float64(a.n)
		out = append(out, MonthlyRow{
			Month:        a.sum.Month,
			StorageLevel: a.sum.StorageLevel / n,
			Charge:       a.sum.Charge / n,
			Discharge:    a.sum.Discharge / n,
			Total:        a.sum.Total / n,
			Load:         a.sum.Load / n,
			Curtailment:  a.sum.Curtailment / n,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}
