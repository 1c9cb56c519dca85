package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars(t *testing.T) {
	for _, key := range []string{
		"INVOICE_LOG_LEVEL",
		"INVOICE_LOG_FORMAT",
		"INVOICE_CSV_DELIMITER",
		"INVOICE_PDF_EXTRACTOR",
		"INVOICE_VENDORS_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func chdir(t *testing.T, dir string) {
	original, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(original))
	})
}

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	cfg, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, ',', cfg.Delimiter())
	assert.Equal(t, ExtractorNative, cfg.PDF.Extractor)
	assert.Empty(t, cfg.Vendors.File)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	t.Setenv("INVOICE_LOG_LEVEL", "debug")
	t.Setenv("INVOICE_LOG_FORMAT", "json")
	t.Setenv("INVOICE_CSV_DELIMITER", ";")
	t.Setenv("INVOICE_PDF_EXTRACTOR", "pdftotext")
	t.Setenv("INVOICE_VENDORS_FILE", "vendors.yaml")

	cfg, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ';', cfg.Delimiter())
	assert.Equal(t, ExtractorPdftotext, cfg.PDF.Extractor)
	assert.Equal(t, "vendors.yaml", cfg.Vendors.File)
}

func TestInitializeConfig_ConfigFileAndPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	dir := t.TempDir()
	chdir(t, dir)

	content := `
log:
  level: warn
  format: json
csv:
  delimiter: "|"
vendors:
  file: extra-vendors.yaml
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
	t.Setenv("INVOICE_LOG_LEVEL", "error")

	cfg, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level, "environment wins over file")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, '|', cfg.Delimiter())
	assert.Equal(t, "extra-vendors.yaml", cfg.Vendors.File)
}

func TestInitializeConfig_ExplicitFileMissing(t *testing.T) {
	clearTestEnvVars(t)

	_, err := InitializeConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.CSV.Delimiter = ","
		cfg.PDF.Extractor = ExtractorNative
		return cfg
	}

	tests := []struct {
		name        string
		modify      func(*Config)
		expectError string
	}{
		{name: "log level", modify: func(c *Config) { c.Log.Level = "chatty" }, expectError: "invalid log level"},
		{name: "log format", modify: func(c *Config) { c.Log.Format = "xml" }, expectError: "invalid log format"},
		{name: "delimiter", modify: func(c *Config) { c.CSV.Delimiter = ";;" }, expectError: "single character"},
		{name: "empty delimiter", modify: func(c *Config) { c.CSV.Delimiter = "" }, expectError: "single character"},
		{name: "extractor", modify: func(c *Config) { c.PDF.Extractor = "ocr" }, expectError: "invalid pdf extractor"},
	}

	require.NoError(t, validateConfig(valid()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("INVOICE_CSV_DELIMITER", "")
	require.NoError(t, os.Unsetenv("INVOICE_CSV_DELIMITER"))

	require.NoError(t, LoadEnv(), "no .env file is fine")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("INVOICE_CSV_DELIMITER=;\n"), 0600))
	require.NoError(t, LoadEnv())
	assert.Equal(t, ";", os.Getenv("INVOICE_CSV_DELIMITER"))
	require.NoError(t, os.Unsetenv("INVOICE_CSV_DELIMITER"))
}
