package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file name searched in the
	// current and home directories.
	DefaultConfigFile = ".bidscan"

	// XDGConfigFile is the configuration file name inside XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// File is the structure of the .bidscan configuration file. Pointer fields
// distinguish "unset" from an explicit zero.
type File struct {
	Scoring struct {
		LicenseWeight *int `yaml:"licenseWeight,omitempty"`
		ItemWeight    *int `yaml:"itemWeight,omitempty"`
		SuitableMin   *int `yaml:"suitableMin,omitempty"`
		ReviewMin     *int `yaml:"reviewMin,omitempty"`
	} `yaml:"scoring,omitempty"`

	Assembly struct {
		HighCompetitionThreshold *int   `yaml:"highCompetitionThreshold,omitempty"`
		ImageCaseMarker          string `yaml:"imageCaseMarker,omitempty"`
	} `yaml:"assembly,omitempty"`

	// Profiles is the roster file. Relative paths are resolved against the
	// directory of the config file.
	Profiles string `yaml:"profiles,omitempty"`

	// Batch is the number of announcements analyzed concurrently.
	Batch int `yaml:"batch,omitempty"`
}

// LoadConfigFile loads a configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Profiles != "" && !filepath.IsAbs(cf.Profiles) {
		cf.Profiles = filepath.Join(filepath.Dir(path), cf.Profiles)
	}

	return &cf, nil
}

// Apply overlays the values set in f onto c.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}

	setInt(&c.Scoring.LicenseWeight, f.Scoring.LicenseWeight)
	setInt(&c.Scoring.ItemWeight, f.Scoring.ItemWeight)
	setInt(&c.Scoring.SuitableMin, f.Scoring.SuitableMin)
	setInt(&c.Scoring.ReviewMin, f.Scoring.ReviewMin)
	setInt(&c.Assembly.HighCompetitionThreshold, f.Assembly.HighCompetitionThreshold)

	if f.Assembly.ImageCaseMarker != "" {
		c.Assembly.ImageCaseMarker = f.Assembly.ImageCaseMarker
	}
	if f.Profiles != "" {
		c.ProfilesFile = f.Profiles
	}
	if f.Batch != 0 {
		c.BatchSize = f.Batch
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. configPath, if specified
//  2. .bidscan in the current directory
//  3. .bidscan in the user's home directory
//  4. config.yaml in the XDG config directory
//
// Returns the path of the first file found, or "" if none exists.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
