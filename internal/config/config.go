// Package config implements the Configuration Facade (spec.md §4.6): a
// validated, read-only record consumed by every core component. Parsing
// the TOML file itself is the external-collaborator half of this package
// (Loader, in load.go); Validate below is the actual core facade.
package config

import (
	"fmt"

	"github.com/notargets/eppic/internal/field"
	"github.com/notargets/eppic/internal/grid"
)

// Config is the validated, immutable-after-construction configuration
// record of spec.md §3. Only Validate may produce one.
type Config struct {
	EndTime field.Real // (s) simulated duration, > 0

	Len [3]field.Real // (m) box lengths x,y,z, each > 0

	MaxFrequency        field.Real // (Hz) highest resolved frequency, > 0
	NumVoxMinWavelength int        // voxels per shortest wavelength, >= 1
	NumVoxMinFeature    int        // voxels per smallest feature, >= 1

	EpR   field.Real // relative permittivity, > 0
	MuR   field.Real // relative permeability, > 0
	Sigma field.Real // (S/m) conductivity, >= 0

	// DSRatio is the normative snapshot cadence in steps (SPEC_FULL.md §9
	// Open Question resolution): a snapshot is taken every DSRatio steps,
	// and always on the final step. > 0 when given; 0 when the cadence
	// comes from LogPeriod or NumSnapshots instead.
	DSRatio int

	// LogPeriod is copied unchanged from the source file (0 if absent).
	// When DSRatio is 0, internal/sim resolves it to a step count lazily
	// once dt is known (SPEC_FULL.md §9); when DSRatio is set, DSRatio
	// takes precedence and LogPeriod is not used.
	LogPeriod field.Real

	// NumSnapshots is the supplemented original_source cadence knob
	// (original_source/src/core/config.h's num_snapshots), used as a last
	// resort when neither DSRatio nor LogPeriod is given.
	NumSnapshots int
}

// GridInputs projects the physical subset of Config into a grid.Inputs,
// keeping the Grid Sizer ignorant of the Configuration Facade's package.
func (c *Config) GridInputs() grid.Inputs {
	return grid.Inputs{
		Len:                 c.Len,
		EpR:                 c.EpR,
		MuR:                 c.MuR,
		MaxFrequency:        c.MaxFrequency,
		NumVoxMinWavelength: c.NumVoxMinWavelength,
		NumVoxMinFeature:    c.NumVoxMinFeature,
	}
}

// ConfigError names the offending field and the reason it failed
// validation (spec.md §7, taxonomy entry 1).
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: field %q: %s", e.Field, e.Reason)
}

// Validate enforces the constraint column of spec.md §3 against a raw,
// unvalidated RawConfig (as parsed by Loader from the TOML tables) and
// returns the immutable Config the rest of the core consumes. Mirrors the
// teacher's InputParameters parse/validate split (InputParameters/InputParameters.go)
// and san-kum-dynsim's Load-returns-(*Config,error) shape.
func Validate(raw *RawConfig) (*Config, error) {
	if raw.Time.EndTime <= 0 {
		return nil, &ConfigError{Field: "time.end_time", Reason: "must be > 0"}
	}
	if raw.Geometry.LenX <= 0 {
		return nil, &ConfigError{Field: "geometry.len_x", Reason: "must be > 0"}
	}
	if raw.Geometry.LenY <= 0 {
		return nil, &ConfigError{Field: "geometry.len_y", Reason: "must be > 0"}
	}
	if raw.Geometry.LenZ <= 0 {
		return nil, &ConfigError{Field: "geometry.len_z", Reason: "must be > 0"}
	}
	if raw.Material.MaxFrequency <= 0 {
		return nil, &ConfigError{Field: "material.max_frequency", Reason: "must be > 0"}
	}
	if raw.Material.NumVoxMinWavelength < 1 {
		return nil, &ConfigError{Field: "material.num_vox_min_wavelength", Reason: "must be >= 1"}
	}
	if raw.Material.NumVoxMinFeature < 1 {
		return nil, &ConfigError{Field: "material.num_vox_min_feature", Reason: "must be >= 1"}
	}
	if raw.Material.EpR <= 0 {
		return nil, &ConfigError{Field: "material.ep_r", Reason: "must be > 0"}
	}
	if raw.Material.MuR <= 0 {
		return nil, &ConfigError{Field: "material.mu_r", Reason: "must be > 0"}
	}
	if raw.Material.Sigma < 0 {
		return nil, &ConfigError{Field: "material.sigma", Reason: "must be >= 0"}
	}

	haveDSRatio := raw.Data.DSRatio > 0
	haveLogPeriod := raw.Data.LogPeriod > 0
	haveNumSnapshots := raw.Data.NumSnapshots > 0
	if !haveDSRatio && !haveLogPeriod && !haveNumSnapshots {
		return nil, &ConfigError{Field: "data.ds_ratio", Reason: "one of ds_ratio, log_period, or num_snapshots must be > 0"}
	}
	if raw.Data.DSRatio < 0 {
		return nil, &ConfigError{Field: "data.ds_ratio", Reason: "must be > 0"}
	}
	if raw.Data.LogPeriod < 0 {
		return nil, &ConfigError{Field: "data.log_period", Reason: "must be > 0"}
	}
	if raw.Data.NumSnapshots < 0 {
		return nil, &ConfigError{Field: "data.num_snapshots", Reason: "must be > 0"}
	}

	cfg := &Config{
		EndTime:             raw.Time.EndTime,
		Len:                 [3]field.Real{raw.Geometry.LenX, raw.Geometry.LenY, raw.Geometry.LenZ},
		MaxFrequency:        raw.Material.MaxFrequency,
		NumVoxMinWavelength: raw.Material.NumVoxMinWavelength,
		NumVoxMinFeature:    raw.Material.NumVoxMinFeature,
		EpR:                 raw.Material.EpR,
		MuR:                 raw.Material.MuR,
		Sigma:               raw.Material.Sigma,
		DSRatio:             raw.Data.DSRatio,
		LogPeriod:           raw.Data.LogPeriod,
		NumSnapshots:        raw.Data.NumSnapshots,
	}
	return cfg, nil
}
