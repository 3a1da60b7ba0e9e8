package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	cfg, err := ProcessEnvironmentVariables()
	assert.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "http", cfg.Transport)
	assert.Equal(t, "expenses.db", cfg.DBPath)
	assert.Equal(t, "data/categories.json", cfg.TaxonomyPath)
	assert.Equal(t, 1, cfg.WriteWorkers)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("EXPENSE_PORT", "9000")
	t.Setenv("EXPENSE_TRANSPORT", "stdio")
	t.Setenv("EXPENSE_DB_PATH", "/var/lib/expenses/expenses.db")
	t.Setenv("EXPENSE_WRITE_WORKERS", "2")

	cfg, err := ProcessEnvironmentVariables()
	assert.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, "/var/lib/expenses/expenses.db", cfg.DBPath)
	assert.Equal(t, 2, cfg.WriteWorkers)
}
