package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName        = "NetBank"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultBankAPIURL     = "http://localhost:8081"
	defaultSessionTTL     = 24 * time.Hour
	defaultRequestTimeout = 15 * time.Second
	defaultShutdownDelay  = 10 * time.Second

	sessionTTLSecondsEnvVar = "SESSION_TTL_SECONDS"
	sessionTTLDurEnvVar     = "SESSION_TTL"
	shutdownSecondsEnvVar   = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar  = "SHUTDOWN_TIMEOUT"
)

// Config captures gateway runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	BankAPIURL     string
	RedisURL       string
	SessionTTL     time.Duration
	RequestTimeout time.Duration
	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment and populates a Config
// instance. Only the core banking API base URL carries a development default;
// an empty REDIS_URL selects the in-memory session store.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		BankAPIURL:     getEnv("BANK_API_URL", defaultBankAPIURL),
		RedisURL:       os.Getenv("REDIS_URL"),
		SessionTTL:     defaultSessionTTL,
		RequestTimeout: defaultRequestTimeout,
		ShutdownPeriod: defaultShutdownDelay,
	}

	if v := os.Getenv(sessionTTLSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", sessionTTLSecondsEnvVar, err)
		}
		cfg.SessionTTL = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(sessionTTLDurEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", sessionTTLDurEnvVar, err)
		}
		cfg.SessionTTL = d
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv("BANK_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BANK_API_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	if strings.TrimSpace(cfg.BankAPIURL) == "" {
		return Config{}, fmt.Errorf("BANK_API_URL must not be blank")
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
