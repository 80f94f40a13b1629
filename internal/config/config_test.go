package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "port: 8080\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 24, cfg.SessionTTLHours)
	assert.True(t, cfg.IsDev())
	assert.True(t, cfg.ShouldSeed())
	assert.Equal(t, "FULLSCO - Scholarship Blog", cfg.SEO.MetaTitle)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
port: 9000
env: production
jwt_secret: s3cret
session_ttl_hours: 48
allowed_origins: ["https://fullsco.com"]
seed_demo_data: false
seo:
  meta_title: Custom
  meta_description: Custom description
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.IsDev())
	assert.False(t, cfg.ShouldSeed())
	assert.Equal(t, 48, cfg.SessionTTLHours)
	assert.Equal(t, []string{"https://fullsco.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "Custom", cfg.SEO.MetaTitle)
}

func TestLoadRejectsUnknownKeysAndBadValues(t *testing.T) {
	_, err := Load(writeConfig(t, "prot: 8080\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "port: 99999\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
