package gop

import (
	"fmt"
	"math"
)

// KernelForm selects between the canonical decoherence kernel and the
// historical bell-curve convention it superseded. The two differ only in
// normalization; both peak at E = E0.
type KernelForm int

const (
	// KernelCanonical is Gamma(E) = kappaA * E * exp(1 - E/E0), with peak
	// value exactly kappaA*E0.
	KernelCanonical KernelForm = iota

	// KernelLegacyBell is the earlier dimensionless convention
	// Gamma(E) = A * (E/E0) * exp(-E/E0), with peak value A/e. Kept as an
	// explicitly named variant so older runs remain comparable.
	KernelLegacyBell
)

// Kernel evaluates the decoherence kernel Gamma(E) for a fixed amplitude
// and characteristic energy. NewKernel rejects E0 = 0 up front, so
// evaluation can never divide by zero.
type Kernel struct {
	amplitude float64
	e0        float64
	form      KernelForm
}

// NewKernel builds a kernel for the given form. A zero characteristic
// energy is a DomainError; an unknown form is rejected before use.
func NewKernel(amplitude, e0 float64, form KernelForm) (Kernel, error) {
	if e0 == 0 {
		return Kernel{}, &DomainError{Param: "E0", Value: e0}
	}
	switch form {
	case KernelCanonical, KernelLegacyBell:
	default:
		return Kernel{}, fmt.Errorf("unknown kernel form %d", form)
	}
	return Kernel{amplitude: amplitude, e0: e0, form: form}, nil
}

// At evaluates Gamma at a single energy.
func (k Kernel) At(e float64) float64 {
	x := e / k.e0
	if k.form == KernelLegacyBell {
		return k.amplitude * x * math.Exp(-x)
	}
	return k.amplitude * e * math.Exp(1-x)
}

// Over evaluates Gamma elementwise over an energy array, returning a fresh
// slice. The evaluation is pure; disjoint slices may be processed
// concurrently by callers that need to.
func (k Kernel) Over(energies []float64) []float64 {
	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = k.At(e)
	}
	return out
}

// Gamma is the free-function form of the canonical kernel,
// Gamma = kappaA * E * exp(1 - E/E0). A zero e0 is a DomainError.
func Gamma(e, kappaA, e0 float64) (float64, error) {
	k, err := NewKernel(kappaA, e0, KernelCanonical)
	if err != nil {
		return 0, err
	}
	return k.At(e), nil
}
