// Package config loads and validates conversion run configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lotuslion/go-rtf2html/internal/fileutil"
	"github.com/lotuslion/go-rtf2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrMissingInput    = errors.New("document entry missing input path")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength        = 200  // Document title
	MaxOrganizationLength = 100  // Organization name
	MaxNoteLength         = 300  // Incorporation statement
	MaxURLLength          = 2048 // Browser limit
	MaxLabelLength        = 100  // Back-link label
	MaxPathLength         = 4096 // Input/output paths
)

// Config holds all configuration for a conversion run.
type Config struct {
	Documents []DocumentConfig `yaml:"documents"`
	Page      PageConfig       `yaml:"page"`
	Recovery  RecoveryConfig   `yaml:"recovery"`
	Workers   int              `yaml:"workers"`
}

// DocumentConfig describes one source file and its destination.
type DocumentConfig struct {
	Input  string `yaml:"input"`  // Source RTF file path (required)
	Output string `yaml:"output"` // Destination HTML path (empty = derive from input)
	Title  string `yaml:"title"`  // Page title (empty = derive from input filename)
}

// PageConfig defines the fixed parts of every rendered page.
type PageConfig struct {
	Organization     string `yaml:"organization"`
	OrganizationNote string `yaml:"organizationNote"`
	BackLink         string `yaml:"backLink"`      // Empty = no back link
	BackLinkLabel    string `yaml:"backLinkLabel"` // Visible link text
}

// RecoveryConfig tunes quality checks on recovered documents.
type RecoveryConfig struct {
	// MinParagraphs flags conversions that recover fewer paragraphs than
	// this as suspect. 0 disables the check.
	MinParagraphs int `yaml:"minParagraphs"`
}

// Validate checks field lengths and document entries.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	for i, d := range c.Documents {
		if d.Input == "" {
			return fmt.Errorf("%w: documents[%d]", ErrMissingInput, i)
		}
		if err := validateFieldLength(fmt.Sprintf("documents[%d].input", i), d.Input, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("documents[%d].output", i), d.Output, MaxPathLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("documents[%d].title", i), d.Title, MaxTitleLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("page.organization", c.Page.Organization, MaxOrganizationLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.organizationNote", c.Page.OrganizationNote, MaxNoteLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.backLink", c.Page.BackLink, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.backLinkLabel", c.Page.BackLinkLabel, MaxLabelLength); err != nil {
		return err
	}

	if c.Recovery.MinParagraphs < 0 {
		return fmt.Errorf("recovery.minParagraphs: must be >= 0, got %d", c.Recovery.MinParagraphs)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers: must be >= 0, got %d", c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration for the standard legal-document
// set: the three policy pages published alongside the course index.
func DefaultConfig() *Config {
	return &Config{
		Documents: []DocumentConfig{
			{
				Input:  "TERMS AND CONDITIONS OF SERVICE.txt",
				Output: "terms.html",
				Title:  "TERMS AND CONDITIONS OF SERVICE",
			},
			{
				Input:  "PRIVACY AND DATA PROTECTION POLICY.txt",
				Output: "privacy.html",
				Title:  "PRIVACY AND DATA PROTECTION POLICY",
			},
			{
				Input:  "POLICY FOR REFUND, RESTITUTION AND REVERSAL OF PECUNIARY CONSIDERATION.txt",
				Output: "refund.html",
				Title:  "POLICY FOR REFUND, RESTITUTION AND REVERSAL OF PECUNIARY CONSIDERATION",
			},
		},
		Page: PageConfig{
			Organization:     "LOTUSLION VENTURE LLP",
			OrganizationNote: "(A Limited Liability Partnership incorporated under the Limited Liability Partnership Act, 2008)",
			BackLink:         "index.html",
			BackLinkLabel:    "← Back to Course",
		},
		Recovery: RecoveryConfig{MinParagraphs: 3},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-rtf2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-rtf2html", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
