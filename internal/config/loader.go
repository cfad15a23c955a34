package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "aula.yaml"

// Load reads DefaultConfigFile, or the file named by AULA_CONFIG.
func Load() (*Config, error) {
	path := DefaultConfigFile
	if v := strings.TrimSpace(os.Getenv("AULA_CONFIG")); v != "" {
		path = v
	}
	return LoadFrom(path)
}

// LoadFrom applies defaults < YAML < ENV. A missing YAML file is not an error.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}
	return &cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) {
	setString(&cfg.Server.Addr, "AULA_ADDR")
	setString(&cfg.Server.ObserverAddr, "AULA_OBSERVER_ADDR")
	setBool(&cfg.Server.SeedRoster, "AULA_SEED_ROSTER")
	setString(&cfg.Logging.Level, "AULA_LOG_LEVEL")
	setString(&cfg.Logging.Service, "AULA_LOG_SERVICE")
	setString(&cfg.Oracle.Mode, "AULA_ORACLE_MODE")
	setString(&cfg.Oracle.URL, "AULA_ORACLE_URL")
	setString(&cfg.Oracle.APIKey, "AULA_ORACLE_API_KEY")
	setString(&cfg.Oracle.Model, "AULA_ORACLE_MODEL")
	setFloat64(&cfg.Oracle.Temperature, "AULA_ORACLE_TEMPERATURE")
	setDuration(&cfg.Oracle.Timeout, "AULA_ORACLE_TIMEOUT")
	setInt(&cfg.Oracle.HistoryWindow, "AULA_ORACLE_HISTORY_WINDOW")
	setInt(&cfg.Oracle.Breaker.MaxFailures, "AULA_BREAKER_MAX_FAILURES")
	setDuration(&cfg.Oracle.Breaker.Timeout, "AULA_BREAKER_TIMEOUT")
	setString(&cfg.World.MapFile, "AULA_MAP_FILE")
	setString(&cfg.Journal.DSN, "AULA_DB_DSN")
	setString(&cfg.Journal.MigrationsDir, "AULA_MIGRATIONS_DIR")
	setString(&cfg.Journal.ZstdDir, "AULA_JOURNAL_DIR")
	if v := strings.TrimSpace(os.Getenv("AULA_SPEECH_MARKERS")); v != "" {
		var markers []string
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				markers = append(markers, m)
			}
		}
		cfg.SpeechMarkers = markers
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	switch cfg.Oracle.Mode {
	case OracleModeScripted:
	case OracleModeLLM:
		if cfg.Oracle.URL == "" {
			return errors.New("oracle.url is required in llm mode")
		}
		if cfg.Oracle.Model == "" {
			return errors.New("oracle.model is required in llm mode")
		}
	default:
		return fmt.Errorf("oracle.mode %q: want %q or %q", cfg.Oracle.Mode, OracleModeLLM, OracleModeScripted)
	}
	if cfg.Oracle.Timeout <= 0 {
		return errors.New("oracle.timeout must be positive")
	}
	if cfg.Oracle.HistoryWindow <= 0 {
		return errors.New("oracle.history_window must be positive")
	}
	if cfg.Oracle.Breaker.MaxFailures < 1 {
		return errors.New("oracle.breaker.max_failures must be at least 1")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
