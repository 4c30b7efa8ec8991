// Package config exposes application configuration as typed accessors.
//
// Values come from the process environment, optionally primed from a .env
// file in the working directory. Call config.Load() once at startup; every
// accessor also triggers it lazily so tests and CLI commands never have to
// care about ordering.
package config

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	defaultAppPort   = "8092"
	defaultAppEnv    = "local"
	defaultMongoURI  = "mongodb://localhost:27017"
	defaultMongoDB   = "nikkeidb"
	defaultLogLevel  = "debug"
	defaultLogFormat = "text"
)

var loadOnce sync.Once

// Load primes the environment from .env (if present). Real environment
// variables always win over file values.
func Load() error {
	loadOnce.Do(func() {
		// godotenv never overrides variables already set in the
		// environment, which is exactly the precedence we want.
		_ = godotenv.Load()
	})
	return nil
}

// AppPort is the TCP port the HTTP server listens on.
func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

// AppEnv is the deployment environment: local, staging, production.
func AppEnv() string {
	_ = Load()
	return strings.ToLower(get("APP_ENV", defaultAppEnv))
}

// MongoURI is the connection string for the entity store.
func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", defaultMongoURI)
}

// MongoDatabase is the database holding all entity collections.
func MongoDatabase() string {
	_ = Load()
	return get("MONGO_DB", defaultMongoDB)
}

// LogLevel is the minimum slog level: debug, info, warn or error.
func LogLevel() string {
	_ = Load()
	return strings.ToLower(get("LOG_LEVEL", defaultLogLevel))
}

// LogFormat selects the slog handler: text or json. Production always gets
// json so log aggregators receive structured output.
func LogFormat() string {
	_ = Load()
	if env := AppEnv(); env == "production" || env == "prod" {
		return "json"
	}
	return strings.ToLower(get("LOG_FORMAT", defaultLogFormat))
}

// LogMongoCollection names the collection the async Mongo log sink writes
// to. Empty disables the sink.
func LogMongoCollection() string {
	_ = Load()
	return get("LOG_MONGO_COLLECTION", "")
}

// Get reads any config key by name with a fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

func get(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
