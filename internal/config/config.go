// Package config loads typesniff.yaml.
//
// A config file is optional. When present it may:
//   - override the severity of any diagnostic code, or turn it off
//   - disable missing native type reports for code bases that still
//     target language versions without type hints
//   - restrict inspection to some subject kinds
//   - name the baseline database
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level typesniff.yaml configuration.
type Config struct {
	// Severities maps diagnostic codes (e.g. "mismatched_type") to a severity.
	Severities map[string]Severity `yaml:"severities,omitempty"`

	// ReportMissingNative turns missing_native_type off when false.
	// Defaults to true.
	ReportMissingNative *bool `yaml:"report_missing_native,omitempty"`

	// Kinds lists the subject kinds to inspect: parameter, property,
	// constant, return. Empty means all of them.
	Kinds []string `yaml:"kinds,omitempty"`

	// Baseline is the path of the baseline database, relative to the
	// config file.
	Baseline string `yaml:"baseline,omitempty"`

	dir string
}

var validKinds = map[string]bool{
	"parameter": true,
	"property":  true,
	"constant":  true,
	"return":    true,
}

// Default returns the configuration used when no typesniff.yaml exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a typesniff.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses typesniff.yaml content from bytes.
// The path argument is used for error messages and to resolve the baseline.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	cfg.setDefaults()
	return &cfg, nil
}

// IsSiteFile reports whether path has a site list extension.
func IsSiteFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range SiteFileExtensions {
		if ext == known {
			return true
		}
	}
	return false
}

// FindConfig searches for typesniff.yaml starting from dir and walking up
// to parent directories. It returns "" and a nil error if none is found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving directory")
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	for code, severity := range c.Severities {
		if _, ok := DefaultSeverities[code]; !ok {
			return errors.Errorf("%s: severities: unknown code %q", path, code)
		}
		switch severity {
		case SeverityError, SeverityWarning, SeverityOff:
		default:
			return errors.Errorf("%s: severities.%s: invalid severity %q (want error, warning or off)", path, code, severity)
		}
	}
	for i, kind := range c.Kinds {
		if !validKinds[kind] {
			return errors.Errorf("%s: kinds[%d]: unknown subject kind %q", path, i, kind)
		}
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if c.Severities == nil {
		c.Severities = make(map[string]Severity)
	}
	for code, severity := range DefaultSeverities {
		if _, ok := c.Severities[code]; !ok {
			c.Severities[code] = severity
		}
	}
	if c.ReportMissingNative == nil {
		enabled := true
		c.ReportMissingNative = &enabled
	}
	if !*c.ReportMissingNative {
		c.Severities[MissingNativeTypeCode] = SeverityOff
	}
	if c.Baseline == "" {
		c.Baseline = DefaultBaselineFile
	}
}

// Severity returns the severity of a code; unknown codes are off.
func (c *Config) Severity(code string) Severity {
	if severity, ok := c.Severities[code]; ok {
		return severity
	}
	return SeverityOff
}

// Inspects reports whether subjects of the given kind are inspected.
func (c *Config) Inspects(kind string) bool {
	if len(c.Kinds) == 0 {
		return true
	}
	for _, k := range c.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// BaselinePath resolves the baseline path against the config directory.
func (c *Config) BaselinePath() string {
	if filepath.IsAbs(c.Baseline) || c.dir == "" {
		return c.Baseline
	}
	return filepath.Join(c.dir, c.Baseline)
}
