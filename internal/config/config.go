package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort            = 5000
	defaultEnv             = "development"
	defaultSessionTTLHours = 24
	defaultMetaTitle       = "FULLSCO - Scholarship Blog"
	defaultMetaDescription = "Find and apply for scholarships worldwide with FULLSCO."
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port            int         `yaml:"port"`
	Env             string      `yaml:"env"` // "development" | "production"
	JWTSecret       string      `yaml:"jwt_secret"`
	SessionTTLHours int         `yaml:"session_ttl_hours"`
	AllowedOrigins  []string    `yaml:"allowed_origins"`
	SeedDemoData    *bool       `yaml:"seed_demo_data"`
	SEO             SEODefaults `yaml:"seo"`
}

// SEODefaults is the fallback meta object served for pages without an SEO
// settings row.
type SEODefaults struct {
	MetaTitle       string `yaml:"meta_title"`
	MetaDescription string `yaml:"meta_description"`
}

// Default returns the configuration used when no config file exists.
func Default() *AppConfig {
	seed := true
	return &AppConfig{
		Port:            defaultPort,
		Env:             defaultEnv,
		SessionTTLHours: defaultSessionTTLHours,
		SeedDemoData:    &seed,
		SEO: SEODefaults{
			MetaTitle:       defaultMetaTitle,
			MetaDescription: defaultMetaDescription,
		},
	}
}

// Load reads and validates the YAML config at path. Unknown keys are
// rejected so typos fail loudly at startup.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.SessionTTLHours < 1 {
		return nil, fmt.Errorf("invalid session_ttl_hours %d in %q, expected >= 1", cfg.SessionTTLHours, path)
	}
	if cfg.SEO.MetaTitle == "" {
		cfg.SEO.MetaTitle = defaultMetaTitle
	}
	if cfg.SEO.MetaDescription == "" {
		cfg.SEO.MetaDescription = defaultMetaDescription
	}
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return !strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

// ShouldSeed reports whether the demo dataset is loaded at startup.
func (c *AppConfig) ShouldSeed() bool {
	return c.SeedDemoData == nil || *c.SeedDemoData
}
