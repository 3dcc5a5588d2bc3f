package config

import "github.com/ghodss/yaml"

// dumpView is the YAML-friendly projection of Config written to the
// startup line of log/log.log, grounded on the teacher's
// InputParameters.Print() startup dump (InputParameters/InputParameters.go) —
// here rendered as YAML instead of ad hoc Printf lines since the
// diagnostic log wants one structured record, not a sequence of lines.
type dumpView struct {
	EndTime             float64 `json:"end_time"`
	Len                 [3]float64 `json:"len"`
	MaxFrequency        float64    `json:"max_frequency"`
	NumVoxMinWavelength int        `json:"num_vox_min_wavelength"`
	NumVoxMinFeature    int        `json:"num_vox_min_feature"`
	EpR                 float64    `json:"ep_r"`
	MuR                 float64    `json:"mu_r"`
	Sigma               float64    `json:"sigma"`
	DSRatio             int        `json:"ds_ratio"`
}

// Dump renders the validated configuration as YAML for the startup
// diagnostic line; input parsing stays TOML (Loader), only this echo is
// YAML.
func (c *Config) Dump() string {
	v := dumpView{
		EndTime:             c.EndTime,
		Len:                 c.Len,
		MaxFrequency:        c.MaxFrequency,
		NumVoxMinWavelength: c.NumVoxMinWavelength,
		NumVoxMinFeature:    c.NumVoxMinFeature,
		EpR:                 c.EpR,
		MuR:                 c.MuR,
		Sigma:               c.Sigma,
		DSRatio:             c.DSRatio,
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		return "<config dump unavailable>"
	}
	return string(out)
}
