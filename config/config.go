// Package config loads optional overrides for the simulation's tunable
// constants from a YAML file, using a two-stage viper-then-yaml.v3
// decode: viper locates and reads the file, then its generic settings
// map is remarshaled into a concretely-typed struct of optional
// pointer fields. A missing config file is not an error: the
// simulation falls back to its built-in defaults.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"flocksim/simulation"
)

// fileParameters mirrors simulation.Parameters but with every field
// optional, so a config file only needs to name the constants it wants
// to override. The tags are lower-case because viper lower-cases every
// key it reads, so that is the form the remarshaled map arrives in.
type fileParameters struct {
	MetricRange        *float32 `yaml:"metricrange"`
	MimeticWeight      *float64 `yaml:"mimeticweight"`
	CharacteristicLen  *float64 `yaml:"characteristiclen"`
	MimeticExponent    *float64 `yaml:"mimeticexponent"`
	AlignmentMimetic   *float64 `yaml:"alignmentmimetic"`
	EquilibriumForce   *float64 `yaml:"equilibriumforce"`
	EquilibriumDist    *float64 `yaml:"equilibriumdist"`
	WalkingSpeed       *float32 `yaml:"walkingspeed"`
	RunningSpeed       *float32 `yaml:"runningspeed"`
	HeadingNoiseRadian *float32 `yaml:"headingnoiseradian"`
	WorldWidth         *float32 `yaml:"worldwidth"`
	WorldHeight        *float32 `yaml:"worldheight"`
}

// Load returns the simulation parameters to run with: the built-in
// defaults, overridden field-by-field by whatever path contains. If
// path does not exist, Load silently returns the defaults.
func Load(path string) (simulation.Parameters, error) {
	params := simulation.DefaultParameters()

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return params, nil
		}
		return params, err
	}

	// viper's generic map isn't directly mapstructure-compatible with
	// pointer-typed optional fields, so remarshal through yaml.v3 into a
	// concretely-typed struct instead.
	raw, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return params, err
	}

	var fp fileParameters
	if err := yaml.Unmarshal(raw, &fp); err != nil {
		return params, err
	}

	applyOverrides(&params, fp)
	return params, nil
}

func applyOverrides(p *simulation.Parameters, fp fileParameters) {
	if fp.MetricRange != nil {
		p.MetricRange = *fp.MetricRange
	}
	if fp.MimeticWeight != nil {
		p.MimeticWeight = *fp.MimeticWeight
	}
	if fp.CharacteristicLen != nil {
		p.CharacteristicLen = *fp.CharacteristicLen
	}
	if fp.MimeticExponent != nil {
		p.MimeticExponent = *fp.MimeticExponent
	}
	if fp.AlignmentMimetic != nil {
		p.AlignmentMimetic = *fp.AlignmentMimetic
	}
	if fp.EquilibriumForce != nil {
		p.EquilibriumForce = *fp.EquilibriumForce
	}
	if fp.EquilibriumDist != nil {
		p.EquilibriumDist = *fp.EquilibriumDist
	}
	if fp.WalkingSpeed != nil {
		p.WalkingSpeed = *fp.WalkingSpeed
	}
	if fp.RunningSpeed != nil {
		p.RunningSpeed = *fp.RunningSpeed
	}
	if fp.HeadingNoiseRadian != nil {
		p.HeadingNoiseRadian = *fp.HeadingNoiseRadian
	}
	if fp.WorldWidth != nil {
		p.WorldWidth = *fp.WorldWidth
	}
	if fp.WorldHeight != nil {
		p.WorldHeight = *fp.WorldHeight
	}
}
