package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/msstore-grabber/internal/constants"
	"github.com/oshokin/msstore-grabber/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// LookupType is the kind of identifier sent to the service (url, ProductId, PackageFamilyName, CategoryId).
	LookupType string `mapstructure:"lookup_type" yaml:"lookup_type"`
	// Ring is the release channel to query (Retail, RP, WIF, WIS).
	Ring string `mapstructure:"ring" yaml:"ring"`
	// Language is the market language sent with every query.
	Language string `mapstructure:"language" yaml:"language"`
	// PackagesOnly hides everything except .appx/.msix style packages.
	PackagesOnly bool `mapstructure:"packages_only" yaml:"packages_only"`
	// OutputPath is the directory path where downloaded files will be saved.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	// Endpoint is the link generator API address.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint"`
	// Referer is sent with the link generator request.
	Referer string `mapstructure:"referer" yaml:"referer"`
	// UserAgent is the browser User-Agent sent with every request.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// RequestTimeout limits each HTTP request (e.g., "30s"). Empty or "0" disables the limit.
	RequestTimeout string `mapstructure:"request_timeout" yaml:"request_timeout"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// LogFile is an optional path of a rotating log file.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
	// LogMaxSizeMB is the size in megabytes after which the log file is rotated.
	LogMaxSizeMB int `mapstructure:"log_max_size_mb" yaml:"log_max_size_mb"`
	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups int `mapstructure:"log_max_backups" yaml:"log_max_backups"`
	// LogMaxAgeDays is the number of days rotated log files are kept.
	LogMaxAgeDays int `mapstructure:"log_max_age_days" yaml:"log_max_age_days"`
	// MaxLogLength is the maximum number of bytes of a dumped HTTP request or response in debug logs.
	MaxLogLength uint64 `mapstructure:"max_log_length" yaml:"max_log_length"`
	// ConfigFilename is the file the settings were read from (empty when defaults were used).
	ConfigFilename string `yaml:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `yaml:"-"`
	// ParsedRequestTimeout is the parsed request timeout; zero means no limit.
	ParsedRequestTimeout time.Duration `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".msstore-grabber.yaml"

	// DefaultEndpoint is the rg-adguard link generator API.
	DefaultEndpoint = "https://store.rg-adguard.net/api/GetFiles"

	// DefaultReferer is the Referer header the link generator expects.
	DefaultReferer = "https://store.rg-adguard.net/"

	// DefaultUserAgent mimics a common browser User-Agent to avoid being blocked by the service.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36" //nolint: lll

	// DefaultLanguage is the market language sent with every query.
	DefaultLanguage = "en-US"

	// DefaultOutputPath is the default download directory.
	DefaultOutputPath = "downloads"

	// DefaultMaxLogLength is the default maximum size (in bytes) of dumped HTTP traffic.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// envPrefix is the prefix of environment variables overriding config keys.
	envPrefix = "MSSTORE_GRABBER"
)

// Lookup types accepted by the link generator.
const (
	LookupTypeURL               = "url"
	LookupTypeProductID         = "ProductId"
	LookupTypePackageFamilyName = "PackageFamilyName"
	LookupTypeCategoryID        = "CategoryId"
)

// Release rings accepted by the link generator.
const (
	RingRetail         = "Retail"
	RingReleasePreview = "RP"
	RingFast           = "WIF"
	RingSlow           = "WIS"
)

// Static error definitions for better error handling.
var (
	// ErrInvalidLookupType indicates that the lookup type is not one of the supported values.
	ErrInvalidLookupType = errors.New("invalid lookup type")
	// ErrInvalidRing indicates that the ring is not one of the supported values.
	ErrInvalidRing = errors.New("invalid ring")
	// ErrEmptyLanguage indicates that the language is missing.
	ErrEmptyLanguage = errors.New("language cannot be empty")
	// ErrEmptyOutputPath indicates that the output path is missing.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	// ErrInvalidEndpoint indicates that the endpoint is not an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("endpoint must be an absolute http(s) URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is negative.
	ErrInvalidRequestTimeout = errors.New("request_timeout cannot be negative")
	// ErrConfigFileExists indicates that a config file would be overwritten.
	ErrConfigFileExists = errors.New("config file already exists")
)

// LookupTypes returns the supported lookup types in display order.
func LookupTypes() []string {
	return []string{LookupTypeURL, LookupTypeProductID, LookupTypePackageFamilyName, LookupTypeCategoryID}
}

// Rings returns the supported release rings in display order.
func Rings() []string {
	return []string{RingRetail, RingReleasePreview, RingFast, RingSlow}
}

// NormalizeLookupType returns the canonical spelling of a lookup type, matched case-insensitively.
func NormalizeLookupType(value string) (string, error) {
	return normalize(value, LookupTypes(), ErrInvalidLookupType)
}

// NormalizeRing returns the canonical spelling of a release ring, matched case-insensitively.
func NormalizeRing(value string) (string, error) {
	return normalize(value, Rings(), ErrInvalidRing)
}

func normalize(value string, allowed []string, sentinel error) (string, error) {
	value = strings.TrimSpace(value)

	for _, candidate := range allowed {
		if strings.EqualFold(candidate, value) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: '%s' (expected one of %s)", sentinel, value, strings.Join(allowed, ", "))
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		LookupType:    LookupTypeURL,
		Ring:          RingRetail,
		Language:      DefaultLanguage,
		PackagesOnly:  true,
		OutputPath:    DefaultOutputPath,
		Endpoint:      DefaultEndpoint,
		Referer:       DefaultReferer,
		UserAgent:     DefaultUserAgent,
		LogLevel:      "info",
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
		MaxLogLength:  DefaultMaxLogLength,
	}
}

// LoadConfig loads configuration settings from a YAML file.
// When configFilename is empty the default file is used if it exists; otherwise defaults apply.
// Environment variables prefixed with MSSTORE_GRABBER_ override file values.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !isMissingFile(configFilename) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}

		configFilename = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFilename = configFilename

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("lookup_type", defaults.LookupType)
	v.SetDefault("ring", defaults.Ring)
	v.SetDefault("language", defaults.Language)
	v.SetDefault("packages_only", defaults.PackagesOnly)
	v.SetDefault("output_path", defaults.OutputPath)
	v.SetDefault("endpoint", defaults.Endpoint)
	v.SetDefault("referer", defaults.Referer)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_max_size_mb", defaults.LogMaxSizeMB)
	v.SetDefault("log_max_backups", defaults.LogMaxBackups)
	v.SetDefault("log_max_age_days", defaults.LogMaxAgeDays)
	v.SetDefault("max_log_length", defaults.MaxLogLength)
}

func isMissingFile(path string) bool {
	_, err := os.Stat(path)

	return os.IsNotExist(err)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Validation functions naturally have high complexity due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.LookupType, err = NormalizeLookupType(cfg.LookupType)
	if err != nil {
		return err
	}

	cfg.Ring, err = NormalizeRing(cfg.Ring)
	if err != nil {
		return err
	}

	cfg.Language = strings.TrimSpace(cfg.Language)
	if cfg.Language == "" {
		return ErrEmptyLanguage
	}

	cfg.OutputPath = strings.TrimSpace(cfg.OutputPath)
	if cfg.OutputPath == "" {
		return ErrEmptyOutputPath
	}

	endpoint, err := url.Parse(strings.TrimSpace(cfg.Endpoint))
	if err != nil || endpoint.Host == "" || (endpoint.Scheme != "http" && endpoint.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", ErrInvalidEndpoint, cfg.Endpoint)
	}

	cfg.Endpoint = endpoint.String()

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	requestTimeout := strings.TrimSpace(cfg.RequestTimeout)
	if requestTimeout != "" && requestTimeout != "0" {
		cfg.ParsedRequestTimeout, err = time.ParseDuration(requestTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse request timeout: %w", err)
		}

		if cfg.ParsedRequestTimeout < 0 {
			return ErrInvalidRequestTimeout
		}
	}

	if cfg.MaxLogLength == 0 {
		cfg.MaxLogLength = DefaultMaxLogLength
	}

	return nil
}

// WriteDefaultConfig writes a commented configuration file with default values.
// An existing file is replaced only when overwrite is set.
func WriteDefaultConfig(configFilename string, overwrite bool) (string, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	if !overwrite && !isMissingFile(configFilename) {
		return "", fmt.Errorf("%w: %s", ErrConfigFileExists, configFilename)
	}

	var node yaml.Node
	if err := node.Encode(Default()); err != nil {
		return "", fmt.Errorf("failed to encode default config: %w", err)
	}

	annotateConfigNode(&node)

	content, err := yaml.Marshal(&node)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFilename, content, constants.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configFilename, nil
}

// annotateConfigNode attaches a head comment to every known key of the mapping node.
func annotateConfigNode(node *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		return
	}

	comments := map[string]string{
		"lookup_type":      "Lookup type: " + strings.Join(LookupTypes(), ", "),
		"ring":             "Release ring: " + strings.Join(Rings(), ", "),
		"language":         "Market language sent with the query",
		"packages_only":    "Show only .appx/.appxbundle/.msix/.msixbundle/.eappx/.eappxbundle files",
		"output_path":      "Directory for downloaded files (created if missing)",
		"endpoint":         "Link generator API",
		"referer":          "Referer header sent to the link generator",
		"user_agent":       "User-Agent header sent with every request",
		"request_timeout":  "Per-request timeout, e.g. 30s; empty means no limit",
		"log_level":        "debug, info, warn, error",
		"log_file":         "Optional rotating log file; empty disables file logging",
		"log_max_size_mb":  "Rotate the log file after this many megabytes",
		"log_max_backups":  "Rotated log files to keep",
		"log_max_age_days": "Days to keep rotated log files",
		"max_log_length":   "Maximum bytes of HTTP traffic dumped at debug level",
	}

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]

		if comment, ok := comments[keyNode.Value]; ok {
			keyNode.HeadComment = comment
		}
	}
}
