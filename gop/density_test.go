package gop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyProfile(t *testing.T) RadialProfile {
	t.Helper()
	radii, err := RadialGrid(0.01, 63.0, 50)
	require.NoError(t, err)
	profile, err := NewRadialProfile(radii, RhoBaryon(radii, 1.0, 0.5))
	require.NoError(t, err)
	return profile
}

func TestProbabilisticDensity_Composition(t *testing.T) {
	// rho_prob must be exactly Gamma(E_local) * f_ent * (1 + a_cp),
	// with no additive terms
	params := DefaultParameters()
	profile := toyProfile(t)

	rhoProb, err := ProbabilisticDensity(profile, params, Normalized())
	require.NoError(t, err)
	require.Len(t, rhoProb, profile.Len())

	eLocal, err := MapToEnergy(profile.Density, params, Normalized())
	require.NoError(t, err)
	for i := range rhoProb {
		gamma, err := Gamma(eLocal[i], params.KappaA, params.E0)
		require.NoError(t, err)
		assert.Equal(t, gamma*(params.FEnt*(1+params.ACP)), rhoProb[i], "index %d", i)
	}
}

func TestEffectiveDensity_AtLeastBaryon(t *testing.T) {
	params := DefaultParameters()
	profile := toyProfile(t)

	rhoEff, err := EffectiveDensity(profile, params, Normalized())
	require.NoError(t, err)
	require.Len(t, rhoEff, profile.Len())
	for i, eff := range rhoEff {
		assert.GreaterOrEqual(t, eff, profile.Density[i], "index %d", i)
	}
}

func TestEffectiveDensity_PropagatesModeError(t *testing.T) {
	_, err := EffectiveDensity(toyProfile(t), DefaultParameters(), EnergyMode{})
	var merr *InvalidModeError
	assert.ErrorAs(t, err, &merr)
}

func TestProbabilisticDensityDiagnostics(t *testing.T) {
	params := DefaultParameters()
	profile := toyProfile(t)

	rhoProb, diag, err := ProbabilisticDensityDiagnostics(profile, params, Normalized())
	require.NoError(t, err)

	// normalized mode pins the innermost sample at E0, everything else below
	assert.InEpsilon(t, 1.0, diag.MaxELocalOverE0, 1e-12)
	assert.Greater(t, diag.MinELocalOverE0, 0.0)
	assert.Less(t, diag.MinELocalOverE0, diag.MaxELocalOverE0)

	// kernel peaks at kappaA*E0 and the innermost sample sits on the peak
	assert.InEpsilon(t, params.KappaA*params.E0, diag.MaxGamma, 1e-12)

	maxRatio := math.Inf(-1)
	for i, rp := range rhoProb {
		if r := rp / profile.Density[i]; r > maxRatio {
			maxRatio = r
		}
	}
	assert.InEpsilon(t, maxRatio, diag.MaxRhoProbRatio, 1e-12)
}

func TestProbabilisticDensityDiagnostics_FloorLeavesDensitiesUntouched(t *testing.T) {
	// a profile with effectively zero density: the diagnostic ratio is
	// floored but the returned array is the plain composition result
	params := DefaultParameters()
	profile, err := NewRadialProfile([]float64{0.1, 0.2, 0.4}, []float64{1e-310, 1e-311, 1e-312})
	require.NoError(t, err)

	plain, err := ProbabilisticDensity(profile, params, Normalized())
	require.NoError(t, err)
	withDiag, diag, err := ProbabilisticDensityDiagnostics(profile, params, Normalized())
	require.NoError(t, err)

	assert.Equal(t, plain, withDiag)
	assert.False(t, math.IsNaN(diag.MaxRhoProbRatio))
	assert.False(t, math.IsInf(diag.MaxRhoProbRatio, 1))
}

func TestRhoBaryon_PeakAtCenter(t *testing.T) {
	got := RhoBaryon([]float64{0}, 2.0, 1.0)
	assert.Equal(t, []float64{2.0}, got)
}

func TestRhoBaryon_HalvesAtCoreRadius(t *testing.T) {
	rho0, rCore := 3.0, 0.5
	got := RhoBaryon([]float64{rCore, 2 * rCore}, rho0, rCore)
	assert.InEpsilon(t, rho0/2, got[0], 1e-12)
	assert.InEpsilon(t, rho0/5, got[1], 1e-12)
}
