package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/phish-scan/")
	v.AddConfigPath("$HOME/.phish-scan")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromFile creates a configuration instance from an explicit config file
func NewFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func bindEnv(v *viper.Viper) {
	v.AutomaticEnv()
	v.SetEnvPrefix("PHISH_SCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Scan defaults
	v.SetDefault("scan.folder", "")
	v.SetDefault("scan.suffix", ".json")
	v.SetDefault("scan.strict", false)

	// Report defaults
	v.SetDefault("report.format", "text")

	// Rule defaults
	v.SetDefault("rules.phishing_patterns", DefaultPhishingPatterns)
	v.SetDefault("rules.url_patterns", DefaultURLPatterns)
	v.SetDefault("rules.suspicious_senders", DefaultSuspiciousSenders)
	v.SetDefault("rules.suspicious_extensions", DefaultSuspiciousExtensions)
	v.SetDefault("rules.threshold", 3)

	// Weight defaults
	v.SetDefault("weights.text", 1)
	v.SetDefault("weights.url", 1)
	v.SetDefault("weights.subject", 1)
	v.SetDefault("weights.sender", 1)
	v.SetDefault("weights.attachment", 2)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stdout")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// Set overrides a configuration value
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
