package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFrom_YAMLValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte("DATA_DIR: /tmp/pantry\nGEMINI_MODEL: gemini-test\nGEMINI_TIMEOUT_SECONDS: 5\n"), 0o644)
	assert.NoError(t, err)

	LoadConfigFrom(path)

	assert.Equal(t, "/tmp/pantry", GetConfig("DATA_DIR"))
	assert.Equal(t, "gemini-test", GetConfig("GEMINI_MODEL"))
	assert.Equal(t, "5", GetConfig("GEMINI_TIMEOUT_SECONDS"))
	// untouched keys keep their defaults
	assert.Equal(t, "products.json", GetConfig("CATALOG_FILE"))
}

func TestLoadConfigFrom_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("DATA_DIR: /tmp/pantry\n"), 0o644))
	t.Setenv("GROCERY_DATA_DIR", "/srv/grocery")

	LoadConfigFrom(path)

	assert.Equal(t, "/srv/grocery", AppConfig().DataDir)
}

func TestLoadConfigFrom_MissingFileKeepsDefaults(t *testing.T) {
	LoadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := AppConfig()
	assert.Equal(t, "file", cfg.StorageDriver)
	assert.Equal(t, "pantry_history.json", cfg.HistoryFile)
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}
