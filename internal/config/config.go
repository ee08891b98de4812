package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alnah/go-swiftguide/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidColor    = errors.New("invalid hex color")
)

// Field length limits.
const (
	MaxTitleLength    = 200
	MaxAuthorLength   = 100
	MaxDateLength     = 30
	MaxPageSizeLength = 10
	MaxFontLength     = 50
	MaxStyleLength    = 50
)

// Config holds all configuration for guide generation.
type Config struct {
	Output   OutputConfig           `yaml:"output"`
	Document DocumentConfig         `yaml:"document"`
	Page     PageConfig             `yaml:"page"`
	Code     CodeConfig             `yaml:"code"`
	Footer   FooterConfig           `yaml:"footer"`
	Styles   map[string]StyleConfig `yaml:"styles"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	File string `yaml:"file"` // Output file path (empty = default name)
}

// DocumentConfig defines PDF metadata and title page options.
type DocumentConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"` // Title page date (empty = today)
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "a4", "letter", "legal" (default: "a4")
	Margin float64 `yaml:"margin"` // points (default: 72)
}

// CodeConfig defines syntax highlighting options.
type CodeConfig struct {
	Highlight bool   `yaml:"highlight"`
	Style     string `yaml:"style"` // chroma style name (default: "github")
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	PageNumbers bool `yaml:"pageNumbers"`
}

// StyleConfig overrides a named text style. Zero-valued fields keep
// the built-in value for that role.
type StyleConfig struct {
	Font        string  `yaml:"font"`
	Style       string  `yaml:"style"` // "", "B", "I", "BI"
	Size        float64 `yaml:"size"`
	Leading     float64 `yaml:"leading"`
	Color       string  `yaml:"color"`      // "#RRGGBB"
	Background  string  `yaml:"background"` // "#RRGGBB"
	SpaceBefore float64 `yaml:"spaceBefore"`
	SpaceAfter  float64 `yaml:"spaceAfter"`
	Alignment   string  `yaml:"alignment"` // "left", "center", "right", "justify"
	Indent      float64 `yaml:"indent"`
}

// Validate checks field lengths and color formats. Called
// automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.date", c.Document.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}

	for role, st := range c.Styles {
		if err := validateFieldLength(fmt.Sprintf("styles.%s.font", role), st.Font, MaxFontLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("styles.%s.style", role), st.Style, MaxStyleLength); err != nil {
			return err
		}
		if st.Color != "" {
			if _, _, _, err := ParseHexColor(st.Color); err != nil {
				return fmt.Errorf("styles.%s.color: %w", role, err)
			}
		}
		if st.Background != "" {
			if _, _, _, err := ParseHexColor(st.Background); err != nil {
				return fmt.Errorf("styles.%s.background: %w", role, err)
			}
		}
		if st.Size < 0 {
			return fmt.Errorf("styles.%s.size: must not be negative, got %.2f", role, st.Size)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%s: too long (%d chars, max %d)", fieldName, len(value), maxLength)
	}
	return nil
}

// ParseHexColor parses a "#RRGGBB" color string into RGB components.
func ParseHexColor(s string) (r, g, b int, err error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, parseErr := strconv.ParseUint(hex, 16, 32)
	if parseErr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff), nil
}

// DefaultConfig returns a neutral configuration that leaves every
// setting at its built-in default.
func DefaultConfig() *Config {
	return &Config{
		Code: CodeConfig{Highlight: true, Style: ""},
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

	if isFilePath(nameOrPath) {
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

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-swiftguide/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-swiftguide", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
