package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"prosecoach/internal/feedback"
)

const envPrefix = "PROSECOACH_"

type Config struct {
	PassiveDetection string `yaml:"passive_detection" validate:"oneof=legacy original enhanced"`
	Mode             string `yaml:"mode" validate:"oneof=none brevity conversational marketing"`
	DBPath           string `yaml:"db_path"`
	Format           string `yaml:"format" validate:"oneof=html json yaml text"`
	LogLevel         string `yaml:"log_level" validate:"oneof=trace debug info warn error disabled"`
	Workers          int    `yaml:"workers" validate:"gte=0"`
	DetectLanguage   bool   `yaml:"detect_language"`
}

func Default() Config {
	return Config{
		PassiveDetection: string(feedback.PassiveEnhanced),
		Mode:             string(feedback.ModeNone),
		Format:           "html",
		LogLevel:         "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty), and PROSECOACH_* environment variables, in that order.
// A .env file in the working directory is loaded first if present; envFiles
// replaces that default.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	str := map[string]*string{
		"PASSIVE_DETECTION": &cfg.PassiveDetection,
		"MODE":              &cfg.Mode,
		"DB_PATH":           &cfg.DBPath,
		"FORMAT":            &cfg.Format,
		"LOG_LEVEL":         &cfg.LogLevel,
	}
	for key, dst := range str {
		if v := os.Getenv(envPrefix + key); v != "" {
			*dst = v
		}
	}
	if v := os.Getenv(envPrefix + "WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWORKERS: %w", envPrefix, err)
		}
		cfg.Workers = n
	}
	if v := os.Getenv(envPrefix + "DETECT_LANGUAGE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDETECT_LANGUAGE: %w", envPrefix, err)
		}
		cfg.DetectLanguage = b
	}
	return nil
}

func (c *Config) normalize() {
	c.PassiveDetection = strings.ToLower(strings.TrimSpace(c.PassiveDetection))
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.Mode == "" {
		c.Mode = string(feedback.ModeNone)
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate reports the first invalid field by its YAML name.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		switch e.Tag() {
		case "oneof":
			return fmt.Errorf("invalid config: %s %q must be one of [%s]", e.Field(), e.Value(), e.Param())
		case "gte":
			return fmt.Errorf("invalid config: %s must be >= %s", e.Field(), e.Param())
		}
		return fmt.Errorf("invalid config: %s failed %s", e.Field(), e.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

func (c *Config) Settings() feedback.Settings {
	return feedback.Settings{
		PassiveVariant: feedback.ParsePassiveVariant(c.PassiveDetection),
		Mode:           feedback.ParseMode(c.Mode),
	}
}
