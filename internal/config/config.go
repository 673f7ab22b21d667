// Package config loads the CLI configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/goliatone/go-epiform/pkg/render"
)

// Config holds the settings shared by the interactive and batch modes.
type Config struct {
	Locale  string `validate:"required,bcp47_language_tag"`
	Browser string
	// Output, when set, writes the document to this path instead of opening
	// a browser.
	Output      string
	CompanyFile string
	CatalogFile string
	// ThemeFile is a go-theme manifest whose tokens restyle the printed page.
	ThemeFile    string
	ThemeVariant string `validate:"excluded_without=ThemeFile"`
	LogLevel     string `validate:"required,oneof=debug info warn error"`
	Window       WindowConfig
}

// WindowConfig is the print preview window size.
type WindowConfig struct {
	Width  int `validate:"min=200,max=10000"`
	Height int `validate:"min=200,max=10000"`
}

// Load reads envFile (when it exists) and the process environment. Values
// already present in the environment win over the file. The result is not
// validated; callers apply their overrides and then call Validate.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Locale:       getEnv("EPIFORM_LOCALE", render.DefaultLocale),
		Browser:      getEnv("EPIFORM_BROWSER", ""),
		Output:       getEnv("EPIFORM_OUTPUT", ""),
		CompanyFile:  getEnv("EPIFORM_COMPANY", ""),
		CatalogFile:  getEnv("EPIFORM_CATALOG", ""),
		ThemeFile:    getEnv("EPIFORM_THEME", ""),
		ThemeVariant: getEnv("EPIFORM_THEME_VARIANT", ""),
		LogLevel:     strings.ToLower(getEnv("EPIFORM_LOG_LEVEL", "info")),
		Window: WindowConfig{
			Width:  getEnvAsInt("EPIFORM_WINDOW_WIDTH", 1000),
			Height: getEnvAsInt("EPIFORM_WINDOW_HEIGHT", 800),
		},
	}
	return cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := configValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("config: validation errors: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: validate: %w", err)
	}
	return nil
}

var validate *validator.Validate

func configValidator() *validator.Validate {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return validate
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return defaultValue
}
