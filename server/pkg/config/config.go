package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/oarkflow/bcl"
	"gopkg.in/yaml.v3"

	"github.com/oarkflow/textlab/nlp/pipeline"
	"github.com/oarkflow/textlab/nlp/translate"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TEXTLAB_"

type Config struct {
	Server           Server          `yaml:"server" bcl:"server"`
	Log              Log             `yaml:"log" bcl:"log"`
	Translate        Translate       `yaml:"translate" bcl:"translate"`
	Analysis         pipeline.Config `yaml:"analysis" bcl:"analysis"`
	GlobalMiddleware []string        `yaml:"global_middleware" bcl:"global_middleware"`
}

type HealthCheck struct {
	Enabled bool   `yaml:"enabled" bcl:"enabled"`
	Path    string `yaml:"path" bcl:"path"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled" bcl:"enabled"`
	Path    string `yaml:"path" bcl:"path"`
}

// Server timeouts are in seconds.
type Server struct {
	Name         string      `yaml:"name" bcl:"name"`
	Address      string      `yaml:"address" bcl:"address"`
	ReadTimeout  int         `yaml:"read_timeout" bcl:"read_timeout"`
	WriteTimeout int         `yaml:"write_timeout" bcl:"write_timeout"`
	IdleTimeout  int         `yaml:"idle_timeout" bcl:"idle_timeout"`
	BodyLimit    int         `yaml:"body_limit" bcl:"body_limit"`
	RateLimit    int         `yaml:"rate_limit" bcl:"rate_limit"`
	HealthCheck  HealthCheck `yaml:"health_check" bcl:"health_check"`
	Metrics      Metrics     `yaml:"metrics" bcl:"metrics"`
}

type Log struct {
	Level      string `yaml:"level" bcl:"level"`
	File       string `yaml:"file" bcl:"file"`
	MaxSize    int    `yaml:"max_size" bcl:"max_size"`
	MaxBackups int    `yaml:"max_backups" bcl:"max_backups"`
	MaxAge     int    `yaml:"max_age" bcl:"max_age"`
}

// Translate configures the remote translator. Timeout is in seconds and
// Rate in requests per second; an empty CacheDSN disables the cache.
type Translate struct {
	Enabled  bool    `yaml:"enabled" bcl:"enabled"`
	BaseURL  string  `yaml:"base_url" bcl:"base_url"`
	Timeout  int     `yaml:"timeout" bcl:"timeout"`
	Rate     float64 `yaml:"rate" bcl:"rate"`
	Burst    int     `yaml:"burst" bcl:"burst"`
	CacheDSN string  `yaml:"cache_dsn" bcl:"cache_dsn"`
}

// ClientConfig converts the section to translate client options.
func (t Translate) ClientConfig() translate.ClientConfig {
	return translate.ClientConfig{
		BaseURL: t.BaseURL,
		Timeout: time.Duration(t.Timeout) * time.Second,
		Rate:    t.Rate,
		Burst:   t.Burst,
	}
}

func Default() Config {
	return Config{
		Server: Server{
			Name:         "textlab",
			Address:      ":8080",
			ReadTimeout:  10,
			WriteTimeout: 30,
			IdleTimeout:  60,
			BodyLimit:    1 << 20,
			RateLimit:    60,
			HealthCheck:  HealthCheck{Enabled: true, Path: "/health"},
			Metrics:      Metrics{Enabled: true, Path: "/metrics"},
		},
		Log: Log{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
		Translate: Translate{
			Enabled: true,
			BaseURL: translate.DefaultBaseURL,
			Timeout: 10,
			Rate:    5,
			Burst:   5,
		},
		Analysis:         pipeline.DefaultConfig(),
		GlobalMiddleware: []string{"recover", "request_id", "logger", "compress", "cors", "ratelimit"},
	}
}

// Load reads path over the defaults, picking YAML or BCL by extension,
// then applies .env and TEXTLAB_* overrides. An empty path uses the
// defaults alone.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		bt, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(bt, &cfg); err != nil {
				return cfg, fmt.Errorf("parse yaml config: %w", err)
			}
		case ".bcl":
			if _, err := bcl.Unmarshal(bt, &cfg); err != nil {
				return cfg, fmt.Errorf("parse bcl config: %w", err)
			}
		default:
			return cfg, fmt.Errorf("unsupported config format %q", ext)
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("read .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
		return nil
	}
	str("ADDRESS", &cfg.Server.Address)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FILE", &cfg.Log.File)
	str("TRANSLATE_URL", &cfg.Translate.BaseURL)
	str("TRANSLATE_CACHE", &cfg.Translate.CacheDSN)
	if v, ok := os.LookupEnv(EnvPrefix + "TRANSLATE_ENABLED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sTRANSLATE_ENABLED: %w", EnvPrefix, err)
		}
		cfg.Translate.Enabled = b
	}
	for key, dst := range map[string]*int{
		"RATE_LIMIT":   &cfg.Server.RateLimit,
		"BODY_LIMIT":   &cfg.Server.BodyLimit,
		"REPORT_CACHE": &cfg.Analysis.CacheSize,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}
	return nil
}
