package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Api1DB es el nombre del connection string de la tabla Animal.
const Api1DB = "Api1Db"

type Config struct {
	Addr              string            `yaml:"addr"`
	ConnectionStrings map[string]string `yaml:"connection_strings"`
	AutoSchema        bool              `yaml:"auto_schema"`
	Log               LogConfig         `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

func Default() Config {
	return Config{
		Addr:              ":8080",
		ConnectionStrings: map[string]string{},
		AutoSchema:        true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load arma la config: defaults -> archivo YAML (opcional) -> env.
// Los flags del CLI se aplican después, encima de esto.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.ConnectionStrings == nil {
			cfg.ConnectionStrings = map[string]string{}
		}
	}

	if getenv != nil {
		cfg.applyEnv(getenv)
	}
	return cfg, nil
}

// ConnectionString devuelve el connection string por nombre ("" si no hay).
func (c Config) ConnectionString(name string) string {
	return strings.TrimSpace(c.ConnectionStrings[name])
}

func (c *Config) SetConnectionString(name, value string) {
	if c.ConnectionStrings == nil {
		c.ConnectionStrings = map[string]string{}
	}
	c.ConnectionStrings[name] = value
}

// applyEnv:
// - PORT=8081 => Addr ":8081"
// - ConnectionStrings__Api1Db (formato ASP.NET) y, si no está, DB_DSN
// - LOG_LEVEL / LOG_FORMAT / LOG_FILE
func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		c.Addr = ":" + v
	}

	if v := strings.TrimSpace(getenv("ConnectionStrings__" + Api1DB)); v != "" {
		c.SetConnectionString(Api1DB, v)
	} else if v := strings.TrimSpace(getenv("DB_DSN")); v != "" && c.ConnectionString(Api1DB) == "" {
		c.SetConnectionString(Api1DB, v)
	}

	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv("LOG_FORMAT")); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(getenv("LOG_FILE")); v != "" {
		c.Log.File = v
	}
}
