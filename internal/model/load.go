package model

// Load scales a normalized demand profile into an absolute series.
// Units:
// - Capacity: MW
// - Profile: fraction of capacity in [0,1] per time step
// - Series: MW per time step
type Load struct {
	Capacity float64
	Profile  []float64
	Series   []float64
}

// NewLoad derives the absolute load series. Any numeric profile is
// accepted; quality checks (missing values, supply adequacy) belong to the
// scenario manager's input verification.
func NewLoad(capacity float64, profile []float64) Load {
	series := make([]float64, len(profile))
	for t, f := range profile {
		series[t] = capacity * f
	}
	return Load{Capacity: capacity, Profile: profile, Series: series}
}
