package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first, mirroring the dotenv convention;
// variables already present in the environment win over the file.
//
// Recognized variables:
//
//	PORT               HTTP port (the bind address becomes ":<PORT>")
//	DATABASE_DSN       PostgreSQL DSN
//	JWT_SECRET         token signing secret
//	TOKEN_TTL_MINUTES  bearer token lifetime, minutes
//	BCRYPT_COST        bcrypt work factor
func parseEnv(config *Config) {
	// Missing .env is not an error.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		config.EndpointAddr = ":" + v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL_MINUTES"); ok && v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok && v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = cost
		}
	}
}
