package gop

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// RadialProfile is a 1-D baryonic density profile sampled on a strictly
// increasing grid of positive radii. The radius grid is carried for slope
// estimation and reporting; the energy mapping itself only reads Density.
type RadialProfile struct {
	RadiiKpc []float64
	Density  []float64
}

// NewRadialProfile validates and wraps a radius/density pair of arrays.
func NewRadialProfile(radiiKpc, density []float64) (RadialProfile, error) {
	if len(radiiKpc) != len(density) {
		return RadialProfile{}, fmt.Errorf("radius/density length mismatch: %d vs %d", len(radiiKpc), len(density))
	}
	for i, r := range radiiKpc {
		if r <= 0 {
			return RadialProfile{}, fmt.Errorf("radius at index %d must be positive, got %v", i, r)
		}
		if i > 0 && r <= radiiKpc[i-1] {
			return RadialProfile{}, fmt.Errorf("radii must be strictly increasing (index %d: %v after %v)", i, r, radiiKpc[i-1])
		}
	}
	return RadialProfile{RadiiKpc: radiiKpc, Density: density}, nil
}

// Len returns the number of samples.
func (p RadialProfile) Len() int { return len(p.RadiiKpc) }

// RadialGrid returns n log-spaced radii covering [rMinKpc, rMaxKpc],
// the sampling the toy pipeline uses (0.01 -> ~63 kpc, 400 samples by
// default in the driver).
func RadialGrid(rMinKpc, rMaxKpc float64, n int) ([]float64, error) {
	if rMinKpc <= 0 {
		return nil, fmt.Errorf("rMinKpc must be positive, got %v", rMinKpc)
	}
	if rMaxKpc <= rMinKpc {
		return nil, fmt.Errorf("rMaxKpc must exceed rMinKpc (%v <= %v)", rMaxKpc, rMinKpc)
	}
	if n < 2 {
		return nil, fmt.Errorf("grid needs at least 2 samples, got %d", n)
	}
	return floats.LogSpan(make([]float64, n), rMinKpc, rMaxKpc), nil
}
