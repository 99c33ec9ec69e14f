package cmd

import (
	"fmt"

	gop "github.com/gop-sim/gop-sim/gop"
)

// formatSlope renders a slope fit result, surfacing the undefined sentinel
// instead of a meaningless float.
func formatSlope(slope float64, ok bool) string {
	if !ok {
		return "undefined (fewer than 3 samples in window)"
	}
	return fmt.Sprintf("%.3f", slope)
}

// printParameters echoes the calibration in use, for reproducibility of
// logged runs.
func printParameters(params gop.Parameters, emode gop.EnergyMode) {
	fmt.Println("Core-four parameters:")
	fmt.Printf("  kappa_A = %.3e\n", params.KappaA)
	fmt.Printf("  E0      = %.3e erg\n", params.E0)
	fmt.Printf("  f_ent   = %.3f\n", params.FEnt)
	fmt.Printf("  a_cp    = %.4f\n", params.ACP)
	fmt.Println()
	fmt.Println("Energy mapping configuration:")
	fmt.Printf("  mode    = %s\n", emode)
	if emode.IsPhysical() {
		fmt.Printf("  Lcoh_cm = %.3e cm\n", lcohCM)
	} else if rhoRef != 0 {
		fmt.Printf("  rho_ref = %.6e\n", rhoRef)
	} else {
		fmt.Println("  rho_ref = rho_b[r_min]")
	}
	fmt.Println()
}

// printDiagnostics reports kernel activation maxima, the quickest way to
// confirm the probabilistic term is not silently dormant.
func printDiagnostics(emode gop.EnergyMode, pred *gop.Prediction) {
	d := pred.Diagnostics
	fmt.Println("---- Diagnostics ----")
	fmt.Printf("mode                : %s\n", emode)
	fmt.Printf("max(E_local/E0)     : %.6e\n", d.MaxELocalOverE0)
	fmt.Printf("min(E_local/E0)     : %.6e\n", d.MinELocalOverE0)
	fmt.Printf("max(Gamma)          : %.6e\n", d.MaxGamma)
	fmt.Printf("max(rho_prob/rho_b) : %.6e\n", d.MaxRhoProbRatio)
	fmt.Println("---------------------")
	fmt.Println()
}

// printPrediction writes the human-readable summary of one pipeline run.
func printPrediction(pred *gop.Prediction) {
	fmt.Println("=== GoP Warm-Core Prediction (Fixed July 2025 Parameters) ===")
	fmt.Printf("Inner slope (baryons only)  : %s\n", formatSlope(pred.SlopeBaryon, pred.SlopeBaryonOK))
	fmt.Printf("Inner slope (GoP effective) : %s\n", formatSlope(pred.SlopeEff, pred.SlopeEffOK))
	fmt.Printf("Warm-core factor            : %.4fx baryonic density at r=%.3g kpc\n",
		pred.WarmCoreFactor, pred.Profile.RadiiKpc[0])
}

// printSlope reports a standalone inner-slope fit for the slope subcommand.
func printSlope(profile gop.RadialProfile, rMaxKpc float64) {
	slope, ok := gop.InnerSlope(profile.RadiiKpc, profile.Density, rMaxKpc)
	fmt.Printf("Inner slope over (0, %g] kpc: %s\n", rMaxKpc, formatSlope(slope, ok))
}
