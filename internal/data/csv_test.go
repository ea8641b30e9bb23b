package data

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfileCSV_SingleColumn(t *testing.T) {
	path := writeFile(t, "profile.csv", "0.0\n0.5\n1.0\n")
	profile, err := LoadProfileCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1}, profile)
}

func TestLoadProfileCSV_HeaderAndTimeColumn(t *testing.T) {
	path := writeFile(t, "profile.csv", "time,value\n2030-01-01T00:00:00Z,0.25\n2030-01-01T01:00:00Z,0.75\n")
	profile, err := LoadProfileCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75}, profile)
}

func TestLoadProfileCSV_MissingValuesBecomeNaN(t *testing.T) {
	path := writeFile(t, "profile.csv", "t0,0.1\nt1,nan\nt2,\nt3,0.4\n")
	profile, err := LoadProfileCSV(path)
	require.NoError(t, err)
	require.Len(t, profile, 4)
	assert.Equal(t, 0.1, profile[0])
	assert.True(t, math.IsNaN(profile[1]))
	assert.True(t, math.IsNaN(profile[2]))
	assert.Equal(t, 0.4, profile[3])
}

func TestLoadProfileCSV_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	_, err := LoadProfileCSV(path)
	assert.Error(t, err)
}

func TestLoadProfileCSV_HeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "value\n")
	_, err := LoadProfileCSV(path)
	assert.Error(t, err)
}

func TestLoadProfileCSV_MissingFile(t *testing.T) {
	_, err := LoadProfileCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
