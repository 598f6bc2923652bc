package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kastheco/folio/log"
)

const (
	ConfigFileName = "config.toml"
	PrefsFileName  = "prefs.db"

	defaultCVFileName = "cv.pdf"
	defaultServePort  = 8080
)

// configDirEnv overrides the config directory (used by tests and packaging).
const configDirEnv = "FOLIO_CONFIG_DIR"

// GetConfigDir returns the path to the application's configuration directory.
// Uses XDG-compliant ~/.config/folio/ unless FOLIO_CONFIG_DIR is set.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "folio"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "folio"), nil
}

// CVConfig describes where the CV payload comes from and where it is saved.
// URL wins over Path when both are set.
type CVConfig struct {
	URL         string `toml:"url,omitempty" json:"url,omitempty"`
	Path        string `toml:"path,omitempty" json:"path,omitempty"`
	FileName    string `toml:"file_name,omitempty" json:"file_name,omitempty"`
	DownloadDir string `toml:"download_dir,omitempty" json:"download_dir,omitempty"`
}

// Features holds behaviour switches that are not user preferences.
type Features struct {
	// DisableMobileScrollSnap turns scroll snapping off entirely below the
	// mobile breakpoint.
	DisableMobileScrollSnap bool `toml:"disable_mobile_scroll_snap" json:"disable_mobile_scroll_snap"`
}

// ServeConfig configures `folio serve`.
type ServeConfig struct {
	Port   int    `toml:"port,omitempty" json:"port,omitempty"`
	CVPath string `toml:"cv_path,omitempty" json:"cv_path,omitempty"`
}

// Config represents the application configuration
type Config struct {
	// ContentPath points at a TOML or YAML content document. Empty means the
	// embedded default content.
	ContentPath string `toml:"content_path,omitempty" json:"content_path,omitempty"`
	// PrefsDB is the sqlite database holding user preferences. Empty means
	// <config dir>/prefs.db.
	PrefsDB string `toml:"prefs_db,omitempty" json:"prefs_db,omitempty"`
	// CV configures the CV download.
	CV CVConfig `toml:"cv" json:"cv"`
	// Features holds feature flags.
	Features Features `toml:"features" json:"features"`
	// Serve configures the HTTP origin for the CV and content.
	Serve ServeConfig `toml:"serve" json:"serve"`
	// AnimateHero controls the hero title typing animation.
	// Defaults to true when not set.
	AnimateHero *bool `toml:"animate_hero,omitempty" json:"animate_hero,omitempty"`
	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to true when not set; nothing is sent without a SentryDSN.
	TelemetryEnabled *bool `toml:"telemetry_enabled,omitempty" json:"telemetry_enabled,omitempty"`
	// SentryDSN is the Sentry project DSN.
	SentryDSN string `toml:"sentry_dsn,omitempty" json:"sentry_dsn,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	downloadDir := os.TempDir()
	if home, err := os.UserHomeDir(); err == nil {
		downloadDir = filepath.Join(home, "Downloads")
	} else {
		log.ErrorLog.Printf("failed to get home directory: %v", err)
	}
	return &Config{
		CV: CVConfig{
			FileName:    defaultCVFileName,
			DownloadDir: downloadDir,
		},
		Serve: ServeConfig{Port: defaultServePort},
	}
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// IsHeroAnimated returns whether the hero title types itself out.
// Defaults to true when the field is not set.
func (c *Config) IsHeroAnimated() bool {
	if c.AnimateHero == nil {
		return true
	}
	return *c.AnimateHero
}

// PrefsPath returns the preference database path.
func (c *Config) PrefsPath() (string, error) {
	if c.PrefsDB != "" {
		return c.PrefsDB, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, PrefsFileName), nil
}

// LoadConfigFrom decodes the TOML file at path on top of the defaults.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.WarningLog.Printf("unknown config keys in %s: %v", path, undecoded)
	}
	if cfg.CV.FileName == "" {
		cfg.CV.FileName = defaultCVFileName
	}
	if cfg.Serve.Port == 0 {
		cfg.Serve.Port = defaultServePort
	}
	return cfg, nil
}

// LoadConfig loads the config file from the config directory, creating it with
// defaults on first run. Any failure is logged and yields the defaults.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}
		log.ErrorLog.Printf("failed to load config file: %v", err)
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes the configuration to the config directory.
func SaveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(configDir, ConfigFileName), buf.Bytes(), 0644)
}
