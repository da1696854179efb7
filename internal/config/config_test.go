package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/msstore-grabber/internal/constants"
)

// TestDefault tests the default configuration values.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.Equal(t, LookupTypeURL, cfg.LookupType)
	assert.Equal(t, RingRetail, cfg.Ring)
	assert.Equal(t, "en-US", cfg.Language)
	assert.True(t, cfg.PackagesOnly)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, "https://store.rg-adguard.net/api/GetFiles", cfg.Endpoint)
	assert.Equal(t, "https://store.rg-adguard.net/", cfg.Referer)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, uint64(DefaultMaxLogLength), cfg.MaxLogLength)
	require.NoError(t, ValidateConfig(cfg))
}

// TestConstants tests the constants.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1024*1024, DefaultMaxLogLength)
	assert.Equal(t, []string{"url", "ProductId", "PackageFamilyName", "CategoryId"}, LookupTypes())
	assert.Equal(t, []string{"Retail", "RP", "WIF", "WIS"}, Rings())
}

// TestNormalizeLookupType tests the NormalizeLookupType function.
func TestNormalizeLookupType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "canonical url", input: "url", expected: LookupTypeURL},
		{name: "uppercase url", input: "URL", expected: LookupTypeURL},
		{name: "product id lowercase", input: "productid", expected: LookupTypeProductID},
		{name: "package family name with spaces", input: "  PackageFamilyName ", expected: LookupTypePackageFamilyName},
		{name: "category id", input: "CategoryId", expected: LookupTypeCategoryID},
		{name: "unknown", input: "sku", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NormalizeLookupType(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLookupType)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNormalizeRing tests the NormalizeRing function.
func TestNormalizeRing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "retail", input: "Retail", expected: RingRetail},
		{name: "release preview lowercase", input: "rp", expected: RingReleasePreview},
		{name: "fast", input: "WIF", expected: RingFast},
		{name: "slow", input: "wis", expected: RingSlow},
		{name: "unknown", input: "Canary", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NormalizeRing(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRing)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		configFilename string
		configContent  string
		expectError    bool
		expectedError  string
		check          func(*testing.T, *Config)
	}{
		{
			name:           "valid config file",
			configFilename: "valid_config.yaml",
			configContent: `
lookup_type: "ProductId"
ring: "RP"
language: "de-DE"
packages_only: false
output_path: "/tmp/downloads"
log_level: "debug"
request_timeout: "30s"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "ProductId", cfg.LookupType)
				assert.Equal(t, "RP", cfg.Ring)
				assert.Equal(t, "de-DE", cfg.Language)
				assert.False(t, cfg.PackagesOnly)
				assert.Equal(t, "/tmp/downloads", cfg.OutputPath)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "30s", cfg.RequestTimeout)
				assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
				assert.NotEmpty(t, cfg.ConfigFilename)
			},
		},
		{
			name:           "partial config keeps defaults",
			configFilename: "partial.yaml",
			configContent: `
ring: "WIS"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "WIS", cfg.Ring)
				assert.Equal(t, LookupTypeURL, cfg.LookupType)
				assert.True(t, cfg.PackagesOnly)
				assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
			},
		},
		{
			name:           "non-existent explicit file",
			configFilename: "non_existent.yaml",
			expectError:    true,
			expectedError:  "failed to read config from file",
		},
		{
			name:           "invalid yaml",
			configFilename: "invalid.yaml",
			configContent: `
invalid: yaml: content: [unclosed
`,
			expectError:   true,
			expectedError: "failed to read config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.configFilename)

			if tt.configContent != "" {
				err := os.WriteFile(configPath, []byte(tt.configContent), constants.DefaultFilePermissions)
				require.NoError(t, err)
			}

			cfg, err := LoadConfig(configPath)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}

// TestLoadConfig_MissingDefaultFile tests that a missing default file falls back to defaults.
func TestLoadConfig_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Empty(t, cfg.ConfigFilename)
	assert.Equal(t, Default().LookupType, cfg.LookupType)
	assert.Equal(t, Default().OutputPath, cfg.OutputPath)
	assert.True(t, cfg.PackagesOnly)
}

// TestLoadConfig_EnvironmentOverride tests that environment variables override file values.
func TestLoadConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("MSSTORE_GRABBER_RING", "WIF")

	configPath := filepath.Join(t.TempDir(), "env.yaml")
	err := os.WriteFile(configPath, []byte("ring: \"RP\"\n"), constants.DefaultFilePermissions)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "WIF", cfg.Ring)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*Config)
		errorIs  error
		errorMsg string
		check    func(*testing.T, *Config)
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Zero(t, cfg.ParsedRequestTimeout)
			},
		},
		{
			name: "lookup type and ring are normalized",
			mutate: func(cfg *Config) {
				cfg.LookupType = "packagefamilyname"
				cfg.Ring = "wis"
			},
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, LookupTypePackageFamilyName, cfg.LookupType)
				assert.Equal(t, RingSlow, cfg.Ring)
			},
		},
		{
			name:    "invalid lookup type",
			mutate:  func(cfg *Config) { cfg.LookupType = "sku" },
			errorIs: ErrInvalidLookupType,
		},
		{
			name:    "invalid ring",
			mutate:  func(cfg *Config) { cfg.Ring = "Canary" },
			errorIs: ErrInvalidRing,
		},
		{
			name:    "empty language",
			mutate:  func(cfg *Config) { cfg.Language = "  " },
			errorIs: ErrEmptyLanguage,
		},
		{
			name:    "empty output path",
			mutate:  func(cfg *Config) { cfg.OutputPath = "" },
			errorIs: ErrEmptyOutputPath,
		},
		{
			name:    "relative endpoint",
			mutate:  func(cfg *Config) { cfg.Endpoint = "/api/GetFiles" },
			errorIs: ErrInvalidEndpoint,
		},
		{
			name:    "ftp endpoint",
			mutate:  func(cfg *Config) { cfg.Endpoint = "ftp://store.rg-adguard.net/api/GetFiles" },
			errorIs: ErrInvalidEndpoint,
		},
		{
			name:     "invalid log level",
			mutate:   func(cfg *Config) { cfg.LogLevel = "invalid" },
			errorIs:  ErrUnknownLogLevel,
			errorMsg: "unknown log level: 'invalid'",
		},
		{
			name:     "invalid request timeout",
			mutate:   func(cfg *Config) { cfg.RequestTimeout = "soon" },
			errorMsg: "failed to parse request timeout",
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *Config) { cfg.RequestTimeout = "-5s" },
			errorIs: ErrInvalidRequestTimeout,
		},
		{
			name:   "request timeout is parsed",
			mutate: func(cfg *Config) { cfg.RequestTimeout = "45s" },
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, 45*time.Second, cfg.ParsedRequestTimeout)
			},
		},
		{
			name:   "zero max log length falls back to default",
			mutate: func(cfg *Config) { cfg.MaxLogLength = 0 },
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, uint64(DefaultMaxLogLength), cfg.MaxLogLength)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)

			if tt.errorIs != nil || tt.errorMsg != "" {
				require.Error(t, err)

				if tt.errorIs != nil {
					require.ErrorIs(t, err, tt.errorIs)
				}

				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}

				return
			}

			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// TestWriteDefaultConfig tests that the written file is commented and loads back to defaults.
func TestWriteDefaultConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "default.yaml")

	written, err := WriteDefaultConfig(configPath, false)
	require.NoError(t, err)
	assert.Equal(t, configPath, written)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Lookup type: url, ProductId, PackageFamilyName, CategoryId")
	assert.Contains(t, string(content), "packages_only: true")
	assert.NotContains(t, string(content), "configfilename")

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(content, &raw))
	assert.Equal(t, "Retail", raw["ring"])

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, Default().Endpoint, cfg.Endpoint)
	assert.Equal(t, Default().UserAgent, cfg.UserAgent)

	// A second write without overwrite must refuse to clobber the file.
	_, err = WriteDefaultConfig(configPath, false)
	require.ErrorIs(t, err, ErrConfigFileExists)

	_, err = WriteDefaultConfig(configPath, true)
	require.NoError(t, err)
}
