// Package config holds the server configuration.
package config

import "time"

type Config struct {
	Server        Server   `yaml:"server"`
	Logging       Logging  `yaml:"logging"`
	Oracle        Oracle   `yaml:"oracle"`
	World         World    `yaml:"world"`
	Journal       Journal  `yaml:"journal"`
	SpeechMarkers []string `yaml:"speech_markers"`
}

type Server struct {
	Addr         string `yaml:"addr"`
	ObserverAddr string `yaml:"observer_addr"`
	// SeedRoster enrolls the opening class at startup.
	SeedRoster bool `yaml:"seed_roster"`
}

type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

const (
	OracleModeLLM      = "llm"
	OracleModeScripted = "scripted"
)

type Oracle struct {
	Mode          string        `yaml:"mode"`
	URL           string        `yaml:"url"`
	APIKey        string        `yaml:"api_key"`
	Model         string        `yaml:"model"`
	Temperature   float64       `yaml:"temperature"`
	Timeout       time.Duration `yaml:"timeout"`
	HistoryWindow int           `yaml:"history_window"`
	Breaker       Breaker       `yaml:"breaker"`
}

type Breaker struct {
	MaxFailures int           `yaml:"max_failures"`
	Timeout     time.Duration `yaml:"timeout"`
}

type World struct {
	// MapFile is an optional YAML classroom layout. Empty uses the built-in classroom.
	MapFile string `yaml:"map_file"`
}

type Journal struct {
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
	ZstdDir       string `yaml:"zstd_dir"`
}

func Defaults() Config {
	return Config{
		Server: Server{
			Addr:         ":8080",
			ObserverAddr: ":8081",
			SeedRoster:   true,
		},
		Logging: Logging{
			Level:   "info",
			Service: "aulagen",
		},
		Oracle: Oracle{
			Mode:          OracleModeScripted,
			URL:           "http://localhost:4000",
			Model:         "gpt-4o-mini",
			Temperature:   0.8,
			Timeout:       60 * time.Second,
			HistoryWindow: 15,
			Breaker: Breaker{
				MaxFailures: 3,
				Timeout:     30 * time.Second,
			},
		},
		Journal: Journal{
			MigrationsDir: "db/migrations",
		},
	}
}
