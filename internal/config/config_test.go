package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// isolate points ENV_FILE at a missing file so a developer .env never leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("CONFIG_FILE", "")
	for _, k := range managedKeys {
		t.Setenv(k, "")
	}
	return dir
}

var managedKeys = []string{
	"PROJECT_NAME", "HTTP_ADDR", "LOG_LEVEL", "DEBUG",
	"DATABASE_URL", "POSTGRES_SERVER", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "DB_MAX_CONNS",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_DAYS", "BCRYPT_COST", "HASH_WORKERS", "USER_CACHE_TTL",
	"FIRST_SUPERUSER", "FIRST_SUPERUSER_PASSWORD",
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/heritage")
	t.Setenv("REDIS_ADDR", "localhost:6379")
}

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	require.Equal(t, ":8080", c.HTTPAddr)
	require.Equal(t, "HS256", c.Algorithm)
	require.Equal(t, 8, c.AccessTokenExpireDays)
	require.Equal(t, 8*24*time.Hour, c.AccessTokenTTL())
	require.Equal(t, bcrypt.DefaultCost, c.BcryptCost)
	require.Empty(t, c.SecretKey)
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	setRequired(t)
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_DAYS", "2")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("HASH_WORKERS", "2")
	t.Setenv("USER_CACHE_TTL", "0s")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DEBUG", "true")
	t.Setenv("FIRST_SUPERUSER", "admin@example.com")
	t.Setenv("FIRST_SUPERUSER_PASSWORD", "changethis")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "HS512", c.Algorithm)
	require.Equal(t, 48*time.Hour, c.AccessTokenTTL())
	require.Equal(t, 4, c.BcryptCost)
	require.Equal(t, 2, c.HashWorkers)
	require.Zero(t, c.UserCacheTTL)
	require.Equal(t, 3, c.RedisDB)
	require.True(t, c.Debug)
	require.Equal(t, "admin@example.com", c.FirstSuperuser)
}

func TestLoadInvalidNumbers(t *testing.T) {
	isolate(t)
	setRequired(t)
	t.Setenv("REDIS_DB", "bad")
	_, err := Load()
	require.ErrorContains(t, err, "REDIS_DB")

	t.Setenv("REDIS_DB", "0")
	t.Setenv("USER_CACHE_TTL", "soon")
	_, err = Load()
	require.ErrorContains(t, err, "USER_CACHE_TTL")

	t.Setenv("USER_CACHE_TTL", "1s")
	t.Setenv("DEBUG", "maybe")
	_, err = Load()
	require.ErrorContains(t, err, "DEBUG")
}

func TestLoadYAMLAndDotEnv(t *testing.T) {
	dir := isolate(t)

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(
		"secret_key: from-yaml\n"+
			"redis_addr: cache:6379\n"+
			"algorithm: HS384\n"+
			"user_cache_ttl: 45s\n"+
			"postgres_server: db\n"+
			"postgres_user: heritage\n"+
			"postgres_db: heritage\n"), 0o600))
	t.Setenv("CONFIG_FILE", yamlPath)

	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("POSTGRES_PASSWORD=pw\nPROJECT_NAME=from-dotenv\n"), 0o600))
	t.Setenv("ENV_FILE", envPath)
	// godotenv only fills variables that are absent, not merely empty.
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("PROJECT_NAME")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-yaml", c.SecretKey)
	require.Equal(t, "HS384", c.Algorithm)
	require.Equal(t, 45*time.Second, c.UserCacheTTL)
	require.Equal(t, "from-dotenv", c.ProjectName)
	require.Equal(t, "postgres://heritage:pw@db:5432/heritage", c.DatabaseURI())
}

func TestLoadMissingYAML(t *testing.T) {
	dir := isolate(t)
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "nope.yaml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := &Config{}
	c.LoadDefaults()
	err := c.Validate()
	require.ErrorContains(t, err, "SECRET_KEY")
	require.ErrorContains(t, err, "DATABASE_URL")
	require.ErrorContains(t, err, "REDIS_ADDR")

	c.SecretKey = "s"
	c.DatabaseURL = "postgres://localhost/db"
	c.RedisAddr = "localhost:6379"
	require.NoError(t, c.Validate())

	c.Algorithm = "RS256"
	require.ErrorContains(t, c.Validate(), "ALGORITHM")
	c.Algorithm = "HS256"

	c.AccessTokenExpireDays = 0
	require.ErrorContains(t, c.Validate(), "ACCESS_TOKEN_EXPIRE_DAYS")
	c.AccessTokenExpireDays = 1

	c.BcryptCost = 99
	require.ErrorContains(t, c.Validate(), "BCRYPT_COST")
	c.BcryptCost = bcrypt.MinCost

	c.FirstSuperuser = "admin@example.com"
	require.ErrorContains(t, c.Validate(), "FIRST_SUPERUSER")
}

func TestDatabaseURI(t *testing.T) {
	c := &Config{PostgresPort: 5432}
	require.Empty(t, c.DatabaseURI())

	c.PostgresServer = "db"
	c.PostgresUser = "u"
	c.PostgresDB = "heritage"
	require.Equal(t, "postgres://u@db:5432/heritage", c.DatabaseURI())

	c.DatabaseURL = "postgres://explicit"
	require.Equal(t, "postgres://explicit", c.DatabaseURI())
}

func TestReadSkipsValidation(t *testing.T) {
	isolate(t)
	t.Setenv("POSTGRES_SERVER", "db")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_DB", "heritage")

	cfg, err := Read()
	require.NoError(t, err)
	require.Empty(t, cfg.SecretKey)
	require.Equal(t, "postgres://app@db:5432/heritage", cfg.DatabaseURI())

	_, err = Load()
	require.ErrorContains(t, err, "SECRET_KEY is required")
}
