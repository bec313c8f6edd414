package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Analysis struct {
		// Optional newline-separated list overriding the built-in
		// weak-password set.
		WeakPasswordFile string `yaml:"weakPasswordFile"`
		MetricsLogPath   string `yaml:"metricsLogPath"`
	} `yaml:"analysis"`
}

// Load reads config.yaml, with .env loaded first so DB credentials can stay
// out of the file. A missing config file yields the defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 3306
	cfg.Database.User = "root"
	cfg.Database.Name = "cracktime"
	cfg.Analysis.MetricsLogPath = "analysis_metrics.log"
	return cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CRACKTIME_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("CRACKTIME_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("CRACKTIME_DB_USER"); v != "" {
		cfg.Database.User = v
	}
}

// MySQLDSN builds the audit database DSN.
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
