package gop

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Prediction bundles the warm-core pipeline outputs for one profile: the
// density arrays, the cusp/core slope diagnostics and the headline
// warm-core factor at the innermost radius.
type Prediction struct {
	Profile RadialProfile
	RhoProb []float64
	RhoEff  []float64

	SlopeBaryon   float64
	SlopeBaryonOK bool
	SlopeEff      float64
	SlopeEffOK    bool

	// WarmCoreFactor is rho_eff/rho_b at the innermost sample; NaN when
	// the innermost baryon density is zero or the profile is empty.
	WarmCoreFactor float64

	Diagnostics Diagnostics
}

// Predict runs the full warm-core pipeline over one profile: probabilistic
// and effective densities, inner slopes of both profiles over
// (0, slopeRMaxKpc], and the warm-core factor.
func Predict(profile RadialProfile, params Parameters, mode EnergyMode, slopeRMaxKpc float64) (*Prediction, error) {
	rhoProb, diag, err := ProbabilisticDensityDiagnostics(profile, params, mode)
	if err != nil {
		return nil, err
	}
	rhoEff := floats.AddTo(make([]float64, len(rhoProb)), profile.Density, rhoProb)

	p := &Prediction{
		Profile:     profile,
		RhoProb:     rhoProb,
		RhoEff:      rhoEff,
		Diagnostics: diag,
	}
	p.SlopeBaryon, p.SlopeBaryonOK = InnerSlope(profile.RadiiKpc, profile.Density, slopeRMaxKpc)
	p.SlopeEff, p.SlopeEffOK = InnerSlope(profile.RadiiKpc, rhoEff, slopeRMaxKpc)

	p.WarmCoreFactor = math.NaN()
	if len(rhoEff) > 0 && profile.Density[0] != 0 {
		p.WarmCoreFactor = rhoEff[0] / profile.Density[0]
	}
	return p, nil
}

// Enhancement returns the warm-core enhancement factor sqrt(rho_eff/rho_b)
// per radius. Zero baryon densities propagate to Inf the way the ratio
// itself would; no flooring is applied here.
func (p *Prediction) Enhancement() []float64 {
	out := make([]float64, len(p.RhoEff))
	for i, eff := range p.RhoEff {
		out[i] = math.Sqrt(eff / p.Profile.Density[i])
	}
	return out
}
