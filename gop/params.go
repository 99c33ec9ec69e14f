package gop

// CLightCmPerS is the speed of light in cm/s (CGS), the only physical
// constant the model depends on.
const CLightCmPerS = 2.99792458e10

// Fixed July 2025 calibration of the core-four GoP parameters. These were
// frozen after the July 2025 fits and are never tuned at runtime; a
// different calibration enters the pipeline as a new Parameters value,
// never as an edit of this block.
const (
	// defaultKappaA is the effective kernel amplitude. Its units absorb
	// the energy dimension of the canonical kernel so that
	// kappaA * E0 is a dimensionless density ratio.
	defaultKappaA = 2.4e-29

	// defaultE0Erg is the characteristic decoherence energy in erg; the
	// kernel peaks exactly there.
	defaultE0Erg = 1.6e29

	// defaultFEnt is the entanglement fraction.
	defaultFEnt = 0.12

	// defaultACP is the CP-asymmetry term.
	defaultACP = 2.2e-3
)

// Parameters holds the core-four GoP parameters plus the speed of light.
// Values are fixed at construction; a changed value means a new Parameters
// record, never an in-place edit, so any two runs given the same record are
// reproducible by construction.
type Parameters struct {
	KappaA float64 // effective kernel amplitude
	E0     float64 // characteristic decoherence energy [erg], > 0
	FEnt   float64 // entanglement fraction
	ACP    float64 // CP-asymmetry term
	CLight float64 // speed of light [cm/s], > 0
}

// NewParameters builds a validated Parameters record. E0 and cLight are
// divisor/scale factors downstream and must be positive; anything else is
// a DomainError.
func NewParameters(kappaA, e0, fEnt, aCP, cLight float64) (Parameters, error) {
	if e0 <= 0 {
		return Parameters{}, &DomainError{Param: "E0", Value: e0}
	}
	if cLight <= 0 {
		return Parameters{}, &DomainError{Param: "CLight", Value: cLight}
	}
	return Parameters{KappaA: kappaA, E0: e0, FEnt: fEnt, ACP: aCP, CLight: cLight}, nil
}

// DefaultParameters returns the fixed July 2025 calibration.
func DefaultParameters() Parameters {
	return Parameters{
		KappaA: defaultKappaA,
		E0:     defaultE0Erg,
		FEnt:   defaultFEnt,
		ACP:    defaultACP,
		CLight: CLightCmPerS,
	}
}
