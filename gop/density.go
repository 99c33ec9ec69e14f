package gop

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ratioFloor guards only the diagnostic rho_prob/rho_b ratio against
// vanishing baryon densities. Returned density arrays are never floored.
const ratioFloor = 1e-300

// Diagnostics summarizes kernel activation for one probabilistic-density
// evaluation: whether E_local reached the kernel peak and how large the
// contribution got relative to the baryons.
type Diagnostics struct {
	MinELocalOverE0 float64
	MaxELocalOverE0 float64
	MaxGamma        float64
	MaxRhoProbRatio float64 // max rho_prob/rho_b, baryon density floored at ratioFloor
}

// ProbabilisticDensity computes the GoP probabilistic density contribution
// rho_prob = Gamma(E_local) * f_ent * (1 + a_cp) for every sample of the
// profile. It is a pure multiplicative composition of the energy mapping,
// the canonical kernel and the two scalar factors.
func ProbabilisticDensity(profile RadialProfile, params Parameters, mode EnergyMode) ([]float64, error) {
	rhoProb, _, err := probabilisticDensity(profile, params, mode, false)
	return rhoProb, err
}

// ProbabilisticDensityDiagnostics is ProbabilisticDensity plus the
// activation summary. The diagnostic floor never feeds back into the
// returned array.
func ProbabilisticDensityDiagnostics(profile RadialProfile, params Parameters, mode EnergyMode) ([]float64, Diagnostics, error) {
	return probabilisticDensity(profile, params, mode, true)
}

func probabilisticDensity(profile RadialProfile, params Parameters, mode EnergyMode, wantDiag bool) ([]float64, Diagnostics, error) {
	eLocal, err := MapToEnergy(profile.Density, params, mode)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	kernel, err := NewKernel(params.KappaA, params.E0, KernelCanonical)
	if err != nil {
		return nil, Diagnostics{}, err
	}
	gamma := kernel.Over(eLocal)

	scale := params.FEnt * (1 + params.ACP)
	rhoProb := make([]float64, len(gamma))
	for i, g := range gamma {
		rhoProb[i] = g * scale
	}

	var diag Diagnostics
	if wantDiag && len(eLocal) > 0 {
		diag.MinELocalOverE0 = floats.Min(eLocal) / params.E0
		diag.MaxELocalOverE0 = floats.Max(eLocal) / params.E0
		diag.MaxGamma = floats.Max(gamma)
		maxRatio := math.Inf(-1)
		for i, rp := range rhoProb {
			rhoB := math.Max(profile.Density[i], ratioFloor)
			if r := rp / rhoB; r > maxRatio {
				maxRatio = r
			}
		}
		diag.MaxRhoProbRatio = maxRatio
	}
	return rhoProb, diag, nil
}

// EffectiveDensity returns rho_eff = rho_b + rho_prob elementwise. With
// non-negative kappaA and f_ent*(1+a_cp), and non-negative energies, the
// result is bounded below by the baryon profile.
func EffectiveDensity(profile RadialProfile, params Parameters, mode EnergyMode) ([]float64, error) {
	rhoProb, err := ProbabilisticDensity(profile, params, mode)
	if err != nil {
		return nil, err
	}
	return floats.AddTo(make([]float64, len(rhoProb)), profile.Density, rhoProb), nil
}

// RhoBaryon is the toy cored-isothermal baryonic profile
// rho(r) = rho0 / (1 + (r/r_core)^2), the default input when no external
// profile is supplied. Callers may pass any positive profile instead.
func RhoBaryon(radiiKpc []float64, rho0, rCoreKpc float64) []float64 {
	out := make([]float64, len(radiiKpc))
	for i, r := range radiiKpc {
		x := r / rCoreKpc
		out[i] = rho0 / (1 + x*x)
	}
	return out
}
