package app

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the tool. Every knob is also
// overridable per-command via flags; the environment supplies defaults.
type Config struct {
	CatalogDir  string `envconfig:"SF86_CATALOG_DIR" default:"./catalog"`
	TemplatePDF string `envconfig:"SF86_TEMPLATE_PDF" default:"./sf86.pdf"`
	StorePath   string `envconfig:"SF86_STORE_PATH" default:"./drafts.db"`

	LogLevel  string `envconfig:"SF86_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"SF86_LOG_FORMAT" default:"console"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("app: load config: %w", err)
	}
	return &cfg, nil
}
