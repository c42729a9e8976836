package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"time"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database fields support two drivers: sqlite3
// reads a file path, mysql reads the discrete DB_* values; DB_DSN overrides
// DSN assembly for either driver.
type Config struct {
	Env             string        // application environment (e.g. "dev", "prod")
	Port            string        // HTTP port to listen on
	DBDriver        string        // "sqlite3" (default) or "mysql"
	DBDSN           string        // full connection string; overrides assembly when set
	DBPath          string        // sqlite database file path
	DBUser          string        // mysql username
	DBPass          string        // mysql password (optional)
	DBHost          string        // mysql host address
	DBPort          string        // mysql port number
	DBName          string        // mysql database name
	GeminiAPIKey    string        // API key for the guidance model service
	GeminiModel     string        // model name; empty selects the agent default
	GuidanceTimeout time.Duration // deadline applied to each guidance call
}

// Load reads configuration values from environment variables and returns a
// Config.  The guidance API key is required; the mysql connection values are
// required only when that driver is selected without a DB_DSN.  Missing
// required values cause the program to exit with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:             envStr("APP_ENV", "dev"),
		Port:            envStr("APP_PORT", "8080"),
		DBDriver:        envStr("DB_DRIVER", "sqlite3"),
		DBDSN:           os.Getenv("DB_DSN"),
		DBPath:          envStr("DB_PATH", "no_pressure.db"),
		GeminiAPIKey:    must("GEMINI_API_KEY"),
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		GuidanceTimeout: envDur("GUIDANCE_TIMEOUT", 30*time.Second),
	}
	if cfg.DBDriver == "mysql" && cfg.DBDSN == "" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
