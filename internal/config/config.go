package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/surveyflow/surveyflow/internal/utils"
)

// Config carries the server settings. Every field can come from the YAML
// file, an environment variable, or a built-in default, in that order of
// increasing precedence for env vars over file values.
type Config struct {
	Addr              string   `yaml:"addr"`
	SQLitePath        string   `yaml:"sqlite_path"`
	MigrationsDir     string   `yaml:"migrations_dir"`
	CatalogPath       string   `yaml:"catalog_path"`
	StaticDir         string   `yaml:"static_dir"`
	DevFrontendURL    string   `yaml:"dev_frontend_url"`
	Secret            string   `yaml:"secret"`
	AdminPassHash     string   `yaml:"admin_pass_hash"`
	SessionTTLMinutes int      `yaml:"session_ttl_minutes"`
	ConfirmTTLMinutes int      `yaml:"confirm_ttl_minutes"`
	Languages         []string `yaml:"languages"`
}

const (
	defaultAddr        = ":8080"
	defaultSQLitePath  = "data/survey.db"
	defaultCatalogPath = "Questions.json"
	defaultSecret      = "survey-dev-secret"
	defaultSessionTTL  = 30
	defaultConfirmTTL  = 10
)

// Load reads the YAML config at path (missing file is fine, defaults apply),
// overlays environment variables, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.Addr = utils.SafeEnv("SURVEY_ADDR", orDefault(cfg.Addr, defaultAddr))
	cfg.SQLitePath = utils.SafeEnv("SURVEY_SQLITE_PATH", orDefault(cfg.SQLitePath, defaultSQLitePath))
	cfg.MigrationsDir = utils.SafeEnv("SURVEY_MIGRATIONS_DIR", cfg.MigrationsDir)
	cfg.CatalogPath = utils.SafeEnv("SURVEY_CATALOG_PATH", orDefault(cfg.CatalogPath, defaultCatalogPath))
	cfg.StaticDir = utils.SafeEnv("SURVEY_STATIC_DIR", cfg.StaticDir)
	cfg.DevFrontendURL = utils.SafeEnv("SURVEY_DEV_FRONTEND_URL", cfg.DevFrontendURL)
	cfg.Secret = utils.SafeEnv("SURVEY_SECRET", orDefault(cfg.Secret, defaultSecret))
	cfg.AdminPassHash = utils.SafeEnv("SURVEY_ADMIN_PASS_HASH", cfg.AdminPassHash)

	if v := os.Getenv("SURVEY_SESSION_TTL_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SURVEY_SESSION_TTL_MINUTES %q", v)
		}
		cfg.SessionTTLMinutes = n
	} else if cfg.SessionTTLMinutes == 0 {
		cfg.SessionTTLMinutes = defaultSessionTTL
	}
	if v := os.Getenv("SURVEY_CONFIRM_TTL_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SURVEY_CONFIRM_TTL_MINUTES %q", v)
		}
		cfg.ConfirmTTLMinutes = n
	} else if cfg.ConfirmTTLMinutes == 0 {
		cfg.ConfirmTTLMinutes = defaultConfirmTTL
	}
	if len(cfg.Languages) == 0 {
		cfg.Languages = []string{"en", "ta"}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if cfg.SQLitePath == "" {
		return errors.New("sqlite_path must not be empty")
	}
	if cfg.CatalogPath == "" {
		return errors.New("catalog_path must not be empty")
	}
	if cfg.SessionTTLMinutes < 0 {
		return fmt.Errorf("session_ttl_minutes must not be negative, got %d", cfg.SessionTTLMinutes)
	}
	if cfg.ConfirmTTLMinutes < 0 {
		return fmt.Errorf("confirm_ttl_minutes must not be negative, got %d", cfg.ConfirmTTLMinutes)
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
