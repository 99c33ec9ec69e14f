package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	gop "github.com/gop-sim/gop-sim/gop"
)

var (
	// CLI flags for the warm-core pipeline
	logLevel     string  // Log verbosity level
	mode         string  // Energy mapping mode ("normalized" or "physical")
	rho0         float64 // Toy baryonic central density normalization
	rCoreKpc     float64 // Core radius for the toy baryonic profile (kpc)
	rhoRef       float64 // Reference density for normalized mode (0 = innermost sample)
	lcohCM       float64 // Coherence length (cm) for physical mode
	rMinKpc      float64 // Innermost radius of the toy grid (kpc)
	rMaxKpc      float64 // Outermost radius of the toy grid (kpc)
	samples      int     // Number of radial grid samples
	slopeRMaxKpc float64 // Outer radius of the inner-slope fit window (kpc)
	profilePath  string  // Optional CSV baryon profile (radius_kpc,density)
	outPath      string  // Optional CSV export of the prediction table
	paramsFile   string  // Optional YAML parameter-set file
	paramSetID   string  // Parameter set id inside the YAML file
	debug        bool    // Print kernel activation diagnostics
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gop-sim",
	Short: "Warm-core prediction pipeline for the GoP phenomenological model",
}

// buildProfile loads the CSV baryon profile when one was given, otherwise
// builds the toy cored-isothermal profile on a log-spaced radial grid.
func buildProfile() (gop.RadialProfile, error) {
	if profilePath != "" {
		return ReadProfileCSV(profilePath)
	}
	radii, err := gop.RadialGrid(rMinKpc, rMaxKpc, samples)
	if err != nil {
		return gop.RadialProfile{}, err
	}
	return gop.NewRadialProfile(radii, gop.RhoBaryon(radii, rho0, rCoreKpc))
}

// predictCmd runs the full warm-core pipeline using parameters from CLI flags
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the warm-core correction and inner slopes for a baryon profile",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		params, err := GetParameters(paramsFile, paramSetID)
		if err != nil {
			logrus.Fatalf("Unable to load parameters: %v", err)
		}

		emode, err := gop.ParseEnergyMode(mode, lcohCM)
		if err != nil {
			logrus.Fatalf("Unable to select energy mapping: %v", err)
		}
		if rhoRef != 0 && emode == gop.Normalized() {
			emode = gop.NormalizedWithReference(rhoRef)
		}

		profile, err := buildProfile()
		if err != nil {
			logrus.Fatalf("Unable to build baryon profile: %v", err)
		}
		logrus.Infof("Running warm-core prediction: mode=%s, samples=%d, slope window (0, %g] kpc",
			emode, profile.Len(), slopeRMaxKpc)

		pred, err := gop.Predict(profile, params, emode, slopeRMaxKpc)
		if err != nil {
			logrus.Fatalf("Prediction failed: %v", err)
		}

		printParameters(params, emode)
		if debug {
			printDiagnostics(emode, pred)
		}
		printPrediction(pred)

		if outPath != "" {
			if err := WritePredictionCSV(pred, outPath); err != nil {
				logrus.Fatalf("Unable to write prediction table: %v", err)
			}
			logrus.Infof("Wrote prediction table to %s", outPath)
		}
	},
}

// slopeCmd fits the inner log-log slope of an external CSV profile
var slopeCmd = &cobra.Command{
	Use:   "slope",
	Short: "Fit the inner log-log density slope of a CSV profile",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if profilePath == "" {
			logrus.Fatalf("No profile given. Pass --profile with a radius_kpc,density CSV file.")
		}
		profile, err := ReadProfileCSV(profilePath)
		if err != nil {
			logrus.Fatalf("Unable to read profile: %v", err)
		}

		printSlope(profile, slopeRMaxKpc)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	predictCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	predictCmd.Flags().StringVar(&mode, "mode", "normalized", "Energy mapping mode used to define E_local (normalized, physical)")

	// Toy baryon profile configs
	predictCmd.Flags().Float64Var(&rho0, "rho0", 1.0, "Toy baryonic central density normalization")
	predictCmd.Flags().Float64Var(&rCoreKpc, "rcore-kpc", 0.5, "Core radius for the toy baryonic profile (kpc)")
	predictCmd.Flags().Float64Var(&rMinKpc, "rmin-kpc", 0.01, "Innermost radius of the toy grid (kpc)")
	predictCmd.Flags().Float64Var(&rMaxKpc, "rmax-kpc", 63.0, "Outermost radius of the toy grid (kpc)")
	predictCmd.Flags().IntVar(&samples, "samples", 400, "Number of log-spaced radial grid samples")

	// Energy mapping configs
	predictCmd.Flags().Float64Var(&rhoRef, "rho-ref", 0, "Reference density for normalized mode (0 = innermost sample)")
	predictCmd.Flags().Float64Var(&lcohCM, "lcoh-cm", 1.0e18, "Coherence length (cm) for physical mode: E_local = rho_b * c^2 * Lcoh^3")

	// Slope fit and I/O configs
	predictCmd.Flags().Float64Var(&slopeRMaxKpc, "slope-rmax-kpc", 1.0, "Outer radius of the inner-slope fit window (kpc)")
	predictCmd.Flags().StringVar(&profilePath, "profile", "", "CSV baryon profile (radius_kpc,density); replaces the toy profile")
	predictCmd.Flags().StringVar(&outPath, "out", "", "CSV export path for the prediction table")
	predictCmd.Flags().StringVar(&paramsFile, "params", "", "YAML parameter-set file (empty = fixed July 2025 defaults)")
	predictCmd.Flags().StringVar(&paramSetID, "param-set", "july-2025", "Parameter set id inside the YAML file")
	predictCmd.Flags().BoolVar(&debug, "debug", false, "Print diagnostic maxima to confirm Gamma(E) and rho_prob are activating")

	slopeCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	slopeCmd.Flags().StringVar(&profilePath, "profile", "", "CSV density profile (radius_kpc,density)")
	slopeCmd.Flags().Float64Var(&slopeRMaxKpc, "slope-rmax-kpc", 1.0, "Outer radius of the inner-slope fit window (kpc)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(slopeCmd)
}
