package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gop "github.com/gop-sim/gop-sim/gop"
)

func TestReadProfileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"radius_kpc,density\n0.1,4.0\n0.5,1.0\n2.0,0.25\n"), 0o644))

	profile, err := ReadProfileCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.5, 2.0}, profile.RadiiKpc)
	assert.Equal(t, []float64{4.0, 1.0, 0.25}, profile.Density)
}

func TestReadProfileCSV_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad radius", "radius_kpc,density\nabc,1.0\n"},
		{"bad density", "radius_kpc,density\n0.1,abc\n"},
		{"one column", "radius_kpc\n0.1\n"},
		{"non-increasing radii", "radius_kpc,density\n0.5,1.0\n0.1,2.0\n"},
		{"empty file", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "profile.csv")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
			_, err := ReadProfileCSV(path)
			assert.Error(t, err)
		})
	}
}

func TestWritePredictionCSV_RoundTrip(t *testing.T) {
	radii, err := gop.RadialGrid(0.01, 10.0, 40)
	require.NoError(t, err)
	profile, err := gop.NewRadialProfile(radii, gop.RhoBaryon(radii, 1.0, 0.5))
	require.NoError(t, err)
	pred, err := gop.Predict(profile, gop.DefaultParameters(), gop.Normalized(), 1.0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "prediction.csv")
	require.NoError(t, WritePredictionCSV(pred, path))

	// exported tables are readable back as profiles (extra columns ignored)
	back, err := ReadProfileCSV(path)
	require.NoError(t, err)
	require.Equal(t, profile.Len(), back.Len())
	for i := range profile.RadiiKpc {
		assert.InEpsilon(t, profile.RadiiKpc[i], back.RadiiKpc[i], 1e-12, "radius %d", i)
		assert.InEpsilon(t, profile.Density[i], back.Density[i], 1e-12, "density %d", i)
	}
}
