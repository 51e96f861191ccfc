// Package config loads taskpro configuration: defaults, merged with the
// global config file, merged with an optional per-directory override.
// SMTP credentials come from the environment (optionally via .env) and
// never live in the config file.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Backend names a store implementation.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config is the full taskpro configuration.
type Config struct {
	Version string      `yaml:"version" mapstructure:"version"`
	Store   StoreConfig `yaml:"store" mapstructure:"store"`
	SMTP    SMTPConfig  `yaml:"smtp" mapstructure:"smtp"`
}

// StoreConfig selects and locates the document store.
type StoreConfig struct {
	// Backend is "json" or "sqlite".
	Backend string `yaml:"backend" mapstructure:"backend"`
	// Path overrides the default data file location.
	Path string `yaml:"path" mapstructure:"path"`
}

// SMTPConfig configures reminder email delivery. Username and Password
// are populated from the TASKPRO_EMAIL_USER / TASKPRO_EMAIL_PASS
// environment variables, not from the file.
type SMTPConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	From     string `yaml:"from" mapstructure:"from"`
	Username string `yaml:"-" mapstructure:"-"`
	Password string `yaml:"-" mapstructure:"-"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Store: StoreConfig{
			Backend: BackendJSON,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
	}
}

// Load loads and merges configuration from global and per-directory
// sources, then overlays SMTP credentials from the environment.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := GlobalConfigPath(); path != "" {
		if err := loadFile(path, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		localPath := filepath.Join(cwd, ".taskpro", "config.yaml")
		if err := loadFile(localPath, cfg); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	// .env is optional; a missing file is not an error.
	godotenv.Load()
	if v := os.Getenv("TASKPRO_EMAIL_USER"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("TASKPRO_EMAIL_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}
	return v.Unmarshal(cfg)
}

// Home returns the taskpro home directory (~/.taskpro).
func Home() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".taskpro")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	h := Home()
	if h == "" {
		return ""
	}
	return filepath.Join(h, "config.yaml")
}

// DataPath returns the document store path for the configured backend,
// honoring Store.Path when set.
func (c *Config) DataPath() string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	if c.Store.Backend == BackendSQLite {
		return filepath.Join(Home(), "tasks.db")
	}
	return filepath.Join(Home(), "tasks.json")
}

// SessionPath returns the session slot path.
func SessionPath() string {
	return filepath.Join(Home(), "session.json")
}

// WriteDefault writes a commented default global configuration.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	content := `# taskpro configuration
version: "1"

# Document store
store:
  # "json" (single file) or "sqlite"
  backend: json
  # Override the data file location (default: ~/.taskpro/tasks.json)
  # path: /path/to/tasks.json

# Reminder email delivery.
# Credentials come from the environment (or a .env file):
#   TASKPRO_EMAIL_USER, TASKPRO_EMAIL_PASS
smtp:
  host: smtp.gmail.com
  port: 587
  # from: you@example.com
`
	return os.WriteFile(path, []byte(content), 0644)
}
