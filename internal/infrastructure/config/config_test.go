package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"ERP_APP_NAME",
	"ERP_APP_ENV",
	"ERP_APP_PORT",
	"ERP_DATABASE_DRIVER",
	"ERP_DATABASE_HOST",
	"ERP_DATABASE_PORT",
	"ERP_DATABASE_USER",
	"ERP_DATABASE_PASSWORD",
	"ERP_DATABASE_DBNAME",
	"ERP_DATABASE_SSLMODE",
	"ERP_DATABASE_PATH",
	"ERP_DATABASE_MAX_OPEN_CONNS",
	"ERP_DATABASE_MAX_IDLE_CONNS",
	"ERP_REDIS_ENABLED",
	"ERP_REDIS_CACHE_TTL",
	"ERP_JWT_ENABLED",
	"ERP_JWT_SECRET",
	"ERP_STORAGE_ENABLED",
	"ERP_STORAGE_ACCESS_KEY_ID",
	"ERP_STORAGE_SECRET_ACCESS_KEY",
	"ERP_HTTP_CORS_ALLOW_ORIGINS",
	"ERP_TELEMETRY_SAMPLING_RATIO",
}

// clearEnv blanks every variable the tests touch; viper treats empty values
// as unset, and t.Setenv restores the originals when the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "mfgdesk", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "IN", cfg.App.PhoneRegion)
		assert.Equal(t, DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "mfgdesk", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, 10*time.Minute, cfg.Redis.CacheTTL)
		assert.Equal(t, "mfgdesk", cfg.Company.Name)
		assert.Equal(t, 15*time.Minute, cfg.Storage.PresignExpiry)
		assert.Equal(t, int64(2<<20), cfg.HTTP.MaxBodySize)
		assert.Equal(t, int64(11<<20), cfg.HTTP.MaxUploadSize)
		assert.Equal(t, time.Minute, cfg.Telemetry.MetricsInterval)
		assert.False(t, cfg.Telemetry.LogsEnabled)
	})

	t.Run("loads values from environment variables with ERP prefix", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_APP_NAME", "test-app")
		t.Setenv("ERP_APP_PORT", "9000")
		t.Setenv("ERP_DATABASE_HOST", "testdb.local")
		t.Setenv("ERP_DATABASE_PORT", "5433")
		t.Setenv("ERP_DATABASE_PASSWORD", "testpass")
		t.Setenv("ERP_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("ERP_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("ERP_REDIS_ENABLED", "true")
		t.Setenv("ERP_REDIS_CACHE_TTL", "30s")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	})

	t.Run("mysql driver defaults to port 3306", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_DATABASE_DRIVER", "mysql")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3306, cfg.Database.Port)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_DATABASE_DRIVER", "oracle")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("ERP_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})

	t.Run("jwt secret length is checked only when enabled", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_JWT_SECRET", "short")
		_, err := Load()
		require.NoError(t, err)

		t.Setenv("ERP_JWT_ENABLED", "true")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret must be at least 32 characters")
	})

	t.Run("storage requires credentials", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_STORAGE_ENABLED", "true")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "storage.access_key_id")

		t.Setenv("ERP_STORAGE_ACCESS_KEY_ID", "minio")
		t.Setenv("ERP_STORAGE_SECRET_ACCESS_KEY", "minio-secret")
		_, err = Load()
		assert.NoError(t, err)
	})

	t.Run("sampling ratio must be a fraction", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_TELEMETRY_SAMPLING_RATIO", "1.5")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.sampling_ratio")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_APP_ENV", "production")
		t.Setenv("ERP_DATABASE_PASSWORD", "secure-password")
		t.Setenv("ERP_DATABASE_SSLMODE", "require")
	}

	t.Run("passes validation with valid production config", func(t *testing.T) {
		setValidProductionBase(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("ERP_DATABASE_PASSWORD", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("ERP_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("sqlite needs no password in production", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ERP_APP_ENV", "production")
		t.Setenv("ERP_DATABASE_DRIVER", "sqlite")

		_, err := Load()
		assert.NoError(t, err)
	})

	t.Run("rejects wildcard CORS in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("ERP_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid postgres DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   DriverPostgres,
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
		assert.Contains(t, dsn, "testdb")
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

	t.Run("mysql DSN", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverMySQL, Host: "db", Port: 3306, User: "u", Password: "p", DBName: "erp"}
		assert.Equal(t, "u:p@tcp(db:3306)/erp?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
	})

	t.Run("sqlite DSN is the file path", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"}
		assert.Equal(t, ":memory:", cfg.DSN())
	})
}
