package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "user-management-api", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 168*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("JWT_TOKEN_TTL", "24h")
	t.Setenv("DB_NAME", "otherdb")

	cfg := Load()
	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "otherdb", cfg.DBName)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5433", DBUser: "app", DBPassword: "pw",
		DBName: "usersdb", DBSSLMode: "disable",
	}
	assert.Equal(t, "postgres://app:pw@db:5433/usersdb?sslmode=disable", cfg.PostgresDSN())
}

func TestCSVHelpers(t *testing.T) {
	cfg := &Config{
		CORSAllowedOrigins: "http://a.test, http://b.test ,",
		ElasticsearchAddrs: "",
	}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
	assert.Empty(t, cfg.ESAddrs())
}
