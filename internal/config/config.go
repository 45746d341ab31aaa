// Package config manages persistent CLI configuration stored in
// ~/.config/wot/config.yaml. Values are validated on write and the
// application ID is masked in list output.
package config

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aviadshiber/wot/pkg/wgapi"
	"github.com/spf13/viper"
)

// Known configuration keys.
const (
	KeyApplicationID = "application_id"
	KeyRegion        = "region"
	KeyLanguage      = "language"
	KeyMethod        = "method"
	KeyHTTPS         = "https"
)

// Defaults applied when a key is not set anywhere.
const (
	DefaultRegion   = "na"
	DefaultLanguage = wgapi.DefaultLocale
	DefaultMethod   = http.MethodGet
)

// sensitiveKeys are masked in list output.
var sensitiveKeys = map[string]bool{
	KeyApplicationID: true,
}

// knownKeys defines the valid configuration keys and their descriptions.
var knownKeys = map[string]string{
	KeyApplicationID: "Wargaming application ID",
	KeyRegion:        "API region (na, ru, eu, sea/asia)",
	KeyLanguage:      "Response language (en, de, ru, ...)",
	KeyMethod:        "HTTP method (GET, POST)",
	KeyHTTPS:         "Use https (true, false)",
}

// Config wraps viper to manage wot configuration.
type Config struct {
	v        *viper.Viper
	filePath string
}

// New creates a Config that reads from ~/.config/wot/config.yaml.
func New() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("determining home directory: %w", err)
	}
	return NewAt(filepath.Join(home, ".config", "wot"))
}

// NewAt creates a Config backed by config.yaml in dir, creating dir if needed.
func NewAt(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{v: v, filePath: filePath}, nil
}

// Get returns the value for a configuration key.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Set validates and writes a configuration key-value pair, then persists it.
func (c *Config) Set(key, value string) error {
	if _, ok := knownKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(KnownKeyNames(), ", "))
	}

	normalized, err := Validate(key, value)
	if err != nil {
		return err
	}

	c.v.Set(key, normalized)
	return c.write()
}

// Validate checks value for key and returns its normalized form.
func Validate(key, value string) (string, error) {
	switch key {
	case KeyApplicationID:
		if strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("application_id may not be empty")
		}
	case KeyRegion:
		r, err := wgapi.ParseRegion(value)
		if err != nil {
			return "", err
		}
		return string(r), nil
	case KeyLanguage:
		if value == "" {
			return "", fmt.Errorf("language may not be empty")
		}
	case KeyMethod:
		value = strings.ToUpper(value)
		if value != http.MethodGet && value != http.MethodPost {
			return "", fmt.Errorf("invalid method %q; must be GET or POST", value)
		}
	case KeyHTTPS:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("invalid https value %q; must be true or false", value)
		}
		return strconv.FormatBool(b), nil
	}
	return value, nil
}

// List returns all set configuration entries. Sensitive values are masked.
func (c *Config) List() []Entry {
	var entries []Entry
	for _, key := range KnownKeyNames() {
		val := c.v.GetString(key)
		if val == "" {
			continue
		}
		if sensitiveKeys[key] {
			val = mask(val)
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	return entries
}

// Entry is a single configuration key-value pair.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// KnownKeyNames returns the known key names in display order.
func KnownKeyNames() []string {
	return []string{KeyApplicationID, KeyRegion, KeyLanguage, KeyMethod, KeyHTTPS}
}

// Describe returns the help text of key.
func Describe(key string) string {
	return knownKeys[key]
}

// FilePath returns the path to the configuration file.
func (c *Config) FilePath() string {
	return c.filePath
}

func (c *Config) write() error {
	return c.v.WriteConfigAs(c.filePath)
}

// mask shows the first 4 characters followed by "****".
func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
