package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Budgetron"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"budgetron"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret string `envconfig:"AUTH_SECRET"`
	}

	Upload struct {
		// Caller-side bound on statement uploads; the parser itself does
		// not limit input size.
		MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"`
	}

	Categorizer struct {
		GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
		Model        string        `envconfig:"CATEGORIZER_MODEL" default:"gemini-2.0-flash"`
		Timeout      time.Duration `envconfig:"CATEGORIZER_TIMEOUT" default:"20s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
