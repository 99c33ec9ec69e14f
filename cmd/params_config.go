package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	gop "github.com/gop-sim/gop-sim/gop"
)

// Define structs for the YAML parameter-set schema
type ParamsFile struct {
	Sets    []ParamSet `yaml:"sets"`
	Version string     `yaml:"version"`
}

// ParamSet is one named calibration of the core-four GoP parameters.
type ParamSet struct {
	ID     string  `yaml:"id"`
	KappaA float64 `yaml:"kappa_a"`
	E0Erg  float64 `yaml:"e0_erg"`
	FEnt   float64 `yaml:"f_ent"`
	ACP    float64 `yaml:"a_cp"`
}

// GetParameters loads the named parameter set from a YAML file and builds
// an immutable gop.Parameters from it. An empty path returns the embedded
// July 2025 defaults, so the file is optional.
func GetParameters(path, id string) (gop.Parameters, error) {
	if path == "" {
		return gop.DefaultParameters(), nil
	}

	// Read YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return gop.Parameters{}, fmt.Errorf("read parameter file %q: %w", path, err)
	}

	// Parse YAML
	var cfg ParamsFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return gop.Parameters{}, fmt.Errorf("parse parameter file %q: %w", path, err)
	}

	for _, set := range cfg.Sets {
		if set.ID == id {
			return gop.NewParameters(set.KappaA, set.E0Erg, set.FEnt, set.ACP, gop.CLightCmPerS)
		}
	}
	return gop.Parameters{}, fmt.Errorf("parameter set %q not found in %s", id, path)
}
