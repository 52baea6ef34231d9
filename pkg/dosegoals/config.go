package dosegoals

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds installation-wide defaults. Values come from an optional
// dosegoals.yaml (path overridable via DOSEGOALS_CONFIG) with environment
// variable overrides; every key has a usable default.
type Config struct {
	// TemplatesDir is scanned for workbooks when no input path is given.
	TemplatesDir string `yaml:"templates_dir" env:"DOSEGOALS_TEMPLATES_DIR" env-default:"templates"`
	// CodeScheme and CodeSchemeVersion qualify emitted structure codes.
	CodeScheme        string `yaml:"code_scheme" env:"DOSEGOALS_CODE_SCHEME" env-default:"FMA"`
	CodeSchemeVersion string `yaml:"code_scheme_version" env:"DOSEGOALS_CODE_SCHEME_VERSION" env-default:"3.2"`
	// AssignedUsers is copied into the template preview, e.g.
	// "domain\\user1,domain\\user2". Usually set in the planning system
	// after import.
	AssignedUsers string `yaml:"assigned_users" env:"DOSEGOALS_ASSIGNED_USERS" env-default:""`
	// DefaultTemplateID keys rows with a blank TemplateID cell.
	DefaultTemplateID string `yaml:"default_template_id" env:"DOSEGOALS_DEFAULT_TEMPLATE_ID" env-default:"Unassigned"`
}

// LoadConfig reads dosegoals.yaml when present, otherwise falls back to
// environment variables and defaults.
func LoadConfig() (Config, error) {
	var cfg Config

	path := os.Getenv("DOSEGOALS_CONFIG")
	if path == "" {
		path = "dosegoals.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
