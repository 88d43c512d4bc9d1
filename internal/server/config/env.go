package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays settings from environment variables. Empty or
// unparsable values leave the current setting untouched.
//
//	HTTP_ADDR, GRPC_ADDR, DATABASE_URL, SECRET_KEY, BCRYPT_WORK_FACTOR,
//	ACCESS_TOKEN_VALIDITY (Go duration, e.g. "24h"), LOG_LEVEL
func parseEnv(config *Config) {
	config.EndpointAddrHTTP = stringFromEnv("HTTP_ADDR", config.EndpointAddrHTTP)
	config.EndpointAddrGRPC = stringFromEnv("GRPC_ADDR", config.EndpointAddrGRPC)
	config.DatabaseDSN = stringFromEnv("DATABASE_URL", config.DatabaseDSN)
	config.SecretKey = stringFromEnv("SECRET_KEY", config.SecretKey)
	config.BcryptWorkFactor = intFromEnv("BCRYPT_WORK_FACTOR", config.BcryptWorkFactor)
	config.AccessTokenValidityDuration = durationFromEnv("ACCESS_TOKEN_VALIDITY", config.AccessTokenValidityDuration)
	config.LogLevel = stringFromEnv("LOG_LEVEL", config.LogLevel)
}

func stringFromEnv(name, defaultVal string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultVal
}

func intFromEnv(name string, defaultVal int) int {
	if v := os.Getenv(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func durationFromEnv(name string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
