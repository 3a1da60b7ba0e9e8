package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration for the expense server.
type Config struct {
	// Port is the HTTP listen port when the HTTP transport is used.
	Port string `env:"EXPENSE_PORT" envDefault:"8000"`
	// Transport selects the MCP transport: "http" or "stdio".
	Transport string `env:"EXPENSE_TRANSPORT" envDefault:"http"`
	// DBPath is the SQLite database file.
	DBPath string `env:"EXPENSE_DB_PATH" envDefault:"expenses.db"`
	// TaxonomyPath is the externally-managed category taxonomy JSON file.
	TaxonomyPath string `env:"EXPENSE_CATEGORIES_PATH" envDefault:"data/categories.json"`
	// WriteWorkers is the number of operator workers draining the write
	// queue. SQLite serializes writers internally, so 1 is the right number
	// for almost every deployment.
	WriteWorkers int `env:"EXPENSE_WRITE_WORKERS" envDefault:"1"`
}

// ProcessEnvironmentVariables parses configuration from the environment,
// falling back to defaults suitable for local development.
func ProcessEnvironmentVariables() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
