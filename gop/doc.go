// Package gop implements the warm-core prediction core of the GoP
// ("Gravity of Probability") phenomenological model.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - params.go: the fixed core-four parameter record (July 2025 calibration)
//   - kernel.go: the bell-shaped decoherence kernel Gamma(E)
//   - predict.go: the end-to-end warm-core prediction over a radial profile
//
// # Architecture
//
// The pipeline is a straight-line composition of pure functions:
//
//	Parameters -> MapToEnergy -> Kernel.Over -> ProbabilisticDensity
//	                                          -> EffectiveDensity -> InnerSlope
//
// Every stage takes immutable inputs and returns a fresh slice owned by the
// caller; nothing is cached or mutated in place, so identical inputs always
// reproduce identical outputs. Errors (unknown energy mode, out-of-domain
// parameters) are raised before any array work begins — a call either fully
// succeeds or produces no output at all.
//
// All user-facing surfaces (flags, printing, CSV files) live in the cmd
// driver; this package performs no I/O and no logging.
package gop
