package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "campaign-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "campaigns", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.True(t, cfg.Database.AutoMigrate)
		assert.Equal(t, "https://world.openfoodfacts.org", cfg.Catalog.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Catalog.Timeout)
		assert.Equal(t, 12, cfg.Auth.BcryptCost)
		assert.False(t, cfg.Auth.RequireAuth)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.Equal(t, "campaign-backend", cfg.Telemetry.ServiceName)
		assert.False(t, cfg.Telemetry.MetricsExport)
		assert.False(t, cfg.Telemetry.LogsExport)
		assert.Equal(t, 60*time.Second, cfg.Telemetry.MetricsInterval)
	})

	t.Run("loads values from environment variables with CAMPAIGN prefix", func(t *testing.T) {
		t.Setenv("CAMPAIGN_APP_PORT", "9000")
		t.Setenv("CAMPAIGN_DATABASE_DRIVER", "sqlite")
		t.Setenv("CAMPAIGN_DATABASE_PATH", ":memory:")
		t.Setenv("CAMPAIGN_DATABASE_AUTO_MIGRATE", "false")
		t.Setenv("CAMPAIGN_CATALOG_BASE_URL", "http://catalog.local")
		t.Setenv("CAMPAIGN_CATALOG_TIMEOUT", "2s")
		t.Setenv("CAMPAIGN_REDIS_ENABLED", "true")
		t.Setenv("CAMPAIGN_AUTH_REQUIRE_AUTH", "true")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
		assert.Equal(t, ":memory:", cfg.Database.Path)
		assert.False(t, cfg.Database.AutoMigrate)
		assert.Equal(t, "http://catalog.local", cfg.Catalog.BaseURL)
		assert.Equal(t, 2*time.Second, cfg.Catalog.Timeout)
		assert.True(t, cfg.Redis.Enabled)
		assert.True(t, cfg.Auth.RequireAuth)
	})

	t.Run("rejects unknown database driver", func(t *testing.T) {
		t.Setenv("CAMPAIGN_DATABASE_DRIVER", "mysql")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		t.Setenv("CAMPAIGN_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("CAMPAIGN_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects bcrypt cost out of range", func(t *testing.T) {
		t.Setenv("CAMPAIGN_AUTH_BCRYPT_COST", "40")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth.bcrypt_cost")
	})

	t.Run("rejects invalid sampling ratio", func(t *testing.T) {
		t.Setenv("CAMPAIGN_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sampling_ratio")
	})

	t.Run("loads OTLP export switches", func(t *testing.T) {
		t.Setenv("CAMPAIGN_TELEMETRY_METRICS_EXPORT", "true")
		t.Setenv("CAMPAIGN_TELEMETRY_METRICS_INTERVAL", "15s")
		t.Setenv("CAMPAIGN_TELEMETRY_LOGS_EXPORT", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Telemetry.MetricsExport)
		assert.Equal(t, 15*time.Second, cfg.Telemetry.MetricsInterval)
		assert.True(t, cfg.Telemetry.LogsExport)
	})

	t.Run("rejects negative metrics interval", func(t *testing.T) {
		t.Setenv("CAMPAIGN_TELEMETRY_METRICS_INTERVAL", "-1s")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "metrics_interval")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		t.Setenv("CAMPAIGN_APP_ENV", "production")
		t.Setenv("CAMPAIGN_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		t.Setenv("CAMPAIGN_DATABASE_PASSWORD", "secure-password")
		t.Setenv("CAMPAIGN_DATABASE_SSLMODE", "require")
		t.Setenv("CAMPAIGN_SWAGGER_ENABLED", "false")
	}

	t.Run("requires jwt.secret in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAMPAIGN_JWT_SECRET", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required in production")
	})

	t.Run("requires jwt.secret at least 32 characters in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAMPAIGN_JWT_SECRET", "short-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("requires SSL enabled for postgres in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAMPAIGN_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode")
	})

	t.Run("sqlite skips postgres checks in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAMPAIGN_DATABASE_DRIVER", "sqlite")
		t.Setenv("CAMPAIGN_DATABASE_PASSWORD", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	})

	t.Run("fails if swagger enabled without IP restriction in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAMPAIGN_SWAGGER_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "swagger endpoint")
	})

	t.Run("passes with swagger restricted to an IP in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAMPAIGN_SWAGGER_ENABLED", "true")
		t.Setenv("CAMPAIGN_SWAGGER_ALLOWED_IPS", "10.0.0.1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Swagger.Enabled)
		assert.Equal(t, []string{"10.0.0.1"}, cfg.Swagger.AllowedIPs)
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		setValidProductionBase(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
		assert.False(t, cfg.Swagger.Enabled)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "/testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", cfg.Addr())
}
