package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		config   DatabaseConfig
		expected string
	}{
		{
			name:     "sqlite file gets foreign keys enabled",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "empty driver defaults to sqlite",
			config:   DatabaseConfig{Path: "app.db"},
			expected: "app.db?_foreign_keys=on",
		},
		{
			name:     "sqlite path with existing parameters",
			config:   DatabaseConfig{Driver: "sqlite", Path: "file:app.db?cache=shared"},
			expected: "file:app.db?cache=shared&_foreign_keys=on",
		},
		{
			name:     "explicit foreign key setting is kept",
			config:   DatabaseConfig{Driver: "sqlite", Path: "app.db?_foreign_keys=off"},
			expected: "app.db?_foreign_keys=off",
		},
		{
			name:     "sqlite url in sqlalchemy form",
			config:   DatabaseConfig{Driver: "sqlite", URL: "sqlite:///data/app.db"},
			expected: "data/app.db?_foreign_keys=on",
		},
		{
			name: "postgres from parts",
			config: DatabaseConfig{
				Driver: "postgres", Host: "db", Port: "5432", User: "pizza",
				Password: "secret", Name: "pizzas", SSLMode: "disable",
			},
			expected: "host=db user=pizza password=secret dbname=pizzas port=5432 sslmode=disable",
		},
		{
			name:     "postgres url wins over parts",
			config:   DatabaseConfig{Driver: "postgresql", URL: "postgres://u:p@db:5432/pizzas", Host: "ignored"},
			expected: "postgres://u:p@db:5432/pizzas",
		},
		{
			name:     "unknown driver",
			config:   DatabaseConfig{Driver: "mysql"},
			expected: "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.DSN())
		})
	}
}

func TestIsInMemory(t *testing.T) {
	assert.True(t, (&DatabaseConfig{Driver: "sqlite", Path: ":memory:"}).IsInMemory())
	assert.False(t, (&DatabaseConfig{Driver: "sqlite", Path: "app.db"}).IsInMemory())
	assert.False(t, (&DatabaseConfig{Driver: "postgres", Path: ":memory:"}).IsInMemory())
}

func TestDatabaseConfigStringMasksSecrets(t *testing.T) {
	cfg := DatabaseConfig{Driver: "postgres", URL: "postgres://u:hunter2@db/pizzas", Password: "hunter2"}

	s := cfg.String()
	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "Password: [REDACTED]")
	assert.Contains(t, s, "URL: [REDACTED]")
}
