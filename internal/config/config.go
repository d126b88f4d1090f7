// Package config builds the runtime Config from defaults, an optional YAML
// file, an optional .env file and the process environment, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the service consumes. It is built once by Load
// and handed to constructors; nothing reads the environment after that.
type Config struct {
	ProjectName string `yaml:"project_name"`
	HTTPAddr    string `yaml:"http_addr"`
	Debug       bool   `yaml:"debug"`
	LogLevel    string `yaml:"log_level"`

	DatabaseURL      string `yaml:"database_url"`
	PostgresServer   string `yaml:"postgres_server"`
	PostgresPort     int    `yaml:"postgres_port"`
	PostgresUser     string `yaml:"postgres_user"`
	PostgresPassword string `yaml:"postgres_password"`
	PostgresDB       string `yaml:"postgres_db"`
	DBMaxConns       int32  `yaml:"db_max_conns"`

	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	SecretKey             string        `yaml:"secret_key"`
	Algorithm             string        `yaml:"algorithm"`
	AccessTokenExpireDays int           `yaml:"access_token_expire_days"`
	BcryptCost            int           `yaml:"bcrypt_cost"`
	HashWorkers           int           `yaml:"hash_workers"`
	UserCacheTTL          time.Duration `yaml:"user_cache_ttl"`

	FirstSuperuser         string `yaml:"first_superuser"`
	FirstSuperuserPassword string `yaml:"first_superuser_password"`
}

// SupportedAlgorithms lists the token signing algorithms accepted in ALGORITHM.
var SupportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// LoadDefaults populates c with development defaults. The secret key is
// deliberately left empty so that a deployment without one fails to start.
func (c *Config) LoadDefaults() {
	c.ProjectName = "heritage-api"
	c.HTTPAddr = ":8080"
	c.LogLevel = "info"
	c.PostgresPort = 5432
	c.DBMaxConns = 20
	c.Algorithm = "HS256"
	c.AccessTokenExpireDays = 8
	c.BcryptCost = bcrypt.DefaultCost
	c.HashWorkers = 4
	c.UserCacheTTL = 30 * time.Second
}

// AccessTokenTTL is the lifetime of issued bearer tokens.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireDays) * 24 * time.Hour
}

// DatabaseURI returns DATABASE_URL if set, otherwise a postgres URL assembled
// from the POSTGRES_* parts.
func (c *Config) DatabaseURI() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.PostgresServer == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.PostgresServer, strconv.Itoa(c.PostgresPort)),
		Path:   "/" + c.PostgresDB,
	}
	if c.PostgresPassword != "" {
		u.User = url.UserPassword(c.PostgresUser, c.PostgresPassword)
	} else if c.PostgresUser != "" {
		u.User = url.User(c.PostgresUser)
	}
	return u.String()
}

// Validate reports every setting that would prevent the service from running.
func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	if !isSupportedAlgorithm(c.Algorithm) {
		errs = append(errs, fmt.Errorf("ALGORITHM %q is not one of %s", c.Algorithm, strings.Join(SupportedAlgorithms, ", ")))
	}
	if c.AccessTokenExpireDays <= 0 {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_EXPIRE_DAYS must be positive, got %d", c.AccessTokenExpireDays))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost))
	}
	if c.HashWorkers <= 0 {
		errs = append(errs, fmt.Errorf("HASH_WORKERS must be positive, got %d", c.HashWorkers))
	}
	if c.UserCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("USER_CACHE_TTL must not be negative, got %s", c.UserCacheTTL))
	}
	if c.DatabaseURI() == "" {
		errs = append(errs, errors.New("DATABASE_URL or POSTGRES_SERVER is required"))
	}
	if c.RedisAddr == "" {
		errs = append(errs, errors.New("REDIS_ADDR is required"))
	}
	if (c.FirstSuperuser == "") != (c.FirstSuperuserPassword == "") {
		errs = append(errs, errors.New("FIRST_SUPERUSER and FIRST_SUPERUSER_PASSWORD must be set together"))
	}
	return errors.Join(errs...)
}

func isSupportedAlgorithm(alg string) bool {
	for _, a := range SupportedAlgorithms {
		if a == alg {
			return true
		}
	}
	return false
}

// Load builds and validates a Config.
func Load() (*Config, error) {
	cfg, err := Read()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Read layers the config sources without validating the result. Tools that
// need only part of the settings, such as the migrator, start from here.
func Read() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv never overrides variables already present in the environment.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	if err := loadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	num := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("invalid %s: %w", key, err))
				return
			}
			*dst = n
		}
	}

	str("PROJECT_NAME", &cfg.ProjectName)
	str("HTTP_ADDR", &cfg.HTTPAddr)
	str("LOG_LEVEL", &cfg.LogLevel)
	if v, ok := os.LookupEnv("DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid DEBUG: %w", err))
		} else {
			cfg.Debug = b
		}
	}

	str("DATABASE_URL", &cfg.DatabaseURL)
	str("POSTGRES_SERVER", &cfg.PostgresServer)
	num("POSTGRES_PORT", &cfg.PostgresPort)
	str("POSTGRES_USER", &cfg.PostgresUser)
	str("POSTGRES_PASSWORD", &cfg.PostgresPassword)
	str("POSTGRES_DB", &cfg.PostgresDB)
	maxConns := int(cfg.DBMaxConns)
	num("DB_MAX_CONNS", &maxConns)
	cfg.DBMaxConns = int32(maxConns)

	str("REDIS_ADDR", &cfg.RedisAddr)
	str("REDIS_PASSWORD", &cfg.RedisPassword)
	num("REDIS_DB", &cfg.RedisDB)

	str("SECRET_KEY", &cfg.SecretKey)
	str("ALGORITHM", &cfg.Algorithm)
	num("ACCESS_TOKEN_EXPIRE_DAYS", &cfg.AccessTokenExpireDays)
	num("BCRYPT_COST", &cfg.BcryptCost)
	num("HASH_WORKERS", &cfg.HashWorkers)
	if v, ok := os.LookupEnv("USER_CACHE_TTL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid USER_CACHE_TTL: %w", err))
		} else {
			cfg.UserCacheTTL = d
		}
	}

	str("FIRST_SUPERUSER", &cfg.FirstSuperuser)
	str("FIRST_SUPERUSER_PASSWORD", &cfg.FirstSuperuserPassword)

	return errors.Join(errs...)
}
