package config

import (
	"fmt"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// RawConfig is the as-parsed shape of the TOML input file (spec.md §6):
// four tables, [time]/[geometry]/[material]/[data], matching the field
// enumeration of spec.md §3. Unknown keys are ignored; RawConfig carries
// no validation of its own — that is Validate's job.
type RawConfig struct {
	Time struct {
		EndTime float64 `mapstructure:"end_time"`
	} `mapstructure:"time"`

	Geometry struct {
		LenX float64 `mapstructure:"len_x"`
		LenY float64 `mapstructure:"len_y"`
		LenZ float64 `mapstructure:"len_z"`
	} `mapstructure:"geometry"`

	Material struct {
		MaxFrequency        float64 `mapstructure:"max_frequency"`
		NumVoxMinWavelength int     `mapstructure:"num_vox_min_wavelength"`
		NumVoxMinFeature    int     `mapstructure:"num_vox_min_feature"`
		EpR                 float64 `mapstructure:"ep_r"`
		MuR                 float64 `mapstructure:"mu_r"`
		Sigma               float64 `mapstructure:"sigma"`
	} `mapstructure:"material"`

	Data struct {
		DSRatio      int     `mapstructure:"ds_ratio"`
		LogPeriod    float64 `mapstructure:"log_period"`
		NumSnapshots int     `mapstructure:"num_snapshots"`
	} `mapstructure:"data"`
}

// Loader reads the TOML configuration file named on the command line
// (spec.md §6) — the external-collaborator half of the Configuration
// Facade (§1, §4.6). This is not the core; it hands Validate a RawConfig
// and never touches the numerical contracts itself.
type Loader struct {
	v *viper.Viper
}

// NewLoader constructs a Loader bound to viper's TOML decoder.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("toml")
	return &Loader{v: v}
}

// Load expands a leading '~' in path via go-homedir, reads the file
// through viper, and decodes it into a RawConfig. It does not validate
// the decoded values — call Validate on the result.
func (l *Loader) Load(path string) (*RawConfig, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, &ConfigError{Field: "<path>", Reason: fmt.Sprintf("could not expand %q: %v", path, err)}
	}
	l.v.SetConfigFile(filepath.Clean(expanded))
	if err := l.v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Field: "<file>", Reason: fmt.Sprintf("could not read %q: %v", expanded, err)}
	}
	var raw RawConfig
	if err := l.v.Unmarshal(&raw); err != nil {
		return nil, &ConfigError{Field: "<file>", Reason: fmt.Sprintf("could not decode %q: %v", expanded, err)}
	}
	return &raw, nil
}

// LoadAndValidate is the common-case entry point: load the TOML file and
// validate it into a Config in one call.
func LoadAndValidate(path string) (*Config, error) {
	raw, err := NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	return Validate(raw)
}
