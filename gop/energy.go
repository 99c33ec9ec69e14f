package gop

import "strings"

type modeKind int

const (
	modeNormalized modeKind = iota + 1
	modePhysical
)

// EnergyMode selects how a baryon density profile maps onto the kernel
// energy argument E_local. The zero value is invalid; build one with
// Normalized, NormalizedWithReference, Physical, or ParseEnergyMode.
type EnergyMode struct {
	kind   modeKind
	ref    float64
	hasRef bool
	lcohCM float64
}

// Normalized is the shape-preserving template mode:
// E_local = E0 * rho_b/rho_ref, with rho_ref taken from the innermost
// sample. It keeps the kernel active for toy profiles in arbitrary units
// without touching the core-four parameters.
func Normalized() EnergyMode { return EnergyMode{kind: modeNormalized} }

// NormalizedWithReference is Normalized with the reference density pinned
// instead of defaulting to the innermost sample.
func NormalizedWithReference(rhoRef float64) EnergyMode {
	return EnergyMode{kind: modeNormalized, ref: rhoRef, hasRef: true}
}

// Physical is the dimensionally literal mode:
// E_local = rho_b * c^2 * Lcoh^3, with the coherence length in
// centimeters. It requires rho_b to be a physical mass density (g/cm^3 or
// a consistent proxy).
func Physical(lcohCM float64) EnergyMode {
	return EnergyMode{kind: modePhysical, lcohCM: lcohCM}
}

// IsPhysical reports whether the mode is the dimensionally literal one.
func (m EnergyMode) IsPhysical() bool { return m.kind == modePhysical }

func (m EnergyMode) String() string {
	switch m.kind {
	case modeNormalized:
		return "normalized"
	case modePhysical:
		return "physical"
	default:
		return "invalid"
	}
}

// ParseEnergyMode maps a driver-supplied mode tag onto an EnergyMode. Tags
// are trimmed and matched case-insensitively; anything but "normalized" or
// "physical" is an InvalidModeError. The coherence length rides along for
// physical mode because it is a separate driver option, not part of the tag.
func ParseEnergyMode(tag string, lcohCM float64) (EnergyMode, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "normalized":
		return Normalized(), nil
	case "physical":
		return Physical(lcohCM), nil
	default:
		return EnergyMode{}, &InvalidModeError{Mode: tag}
	}
}

// MapToEnergy converts a density array into the kernel energy argument
// under the given mode. Mode and parameter validation happens before any
// array work: on error no partial output exists.
//
// Normalized reference fallback order: the explicit reference when set and
// nonzero, else the first density sample when nonzero, else 1.0 (which
// keeps the mapping defined for degenerate profiles).
func MapToEnergy(density []float64, params Parameters, mode EnergyMode) ([]float64, error) {
	switch mode.kind {
	case modeNormalized:
		if params.E0 == 0 {
			return nil, &DomainError{Param: "E0", Value: params.E0}
		}
		ref := 1.0
		switch {
		case mode.hasRef && mode.ref != 0:
			ref = mode.ref
		case len(density) > 0 && density[0] != 0:
			ref = density[0]
		}
		out := make([]float64, len(density))
		for i, rho := range density {
			out[i] = params.E0 * (rho / ref)
		}
		return out, nil

	case modePhysical:
		if mode.lcohCM <= 0 {
			return nil, &DomainError{Param: "Lcoh_cm", Value: mode.lcohCM}
		}
		vCoh := mode.lcohCM * mode.lcohCM * mode.lcohCM
		c2 := params.CLight * params.CLight
		out := make([]float64, len(density))
		for i, rho := range density {
			out[i] = rho * c2 * vCoh
		}
		return out, nil

	default:
		return nil, &InvalidModeError{Mode: mode.String()}
	}
}
