package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Profile string // statement dialect, see profile.Names
	Input   string // glob pattern of statement files
	Format  string
	Output  string // empty writes to stdout

	LogLevel string
	LogJSON  bool

	ASCII bool // strip diacritics from text attributes
}

// Load reads variables from a .env file when present and returns the config
func Load(envFile string) *Config {
	_ = godotenv.Load(envFile)
	return NewConfig()
}

func NewConfig() *Config {
	return &Config{
		Profile: getStringEnvDefault("MTPARSE_PROFILE", "taba940"),
		Input:   getStringEnvDefault("MTPARSE_INPUT", "download/*.STA"),
		Format:  getStringEnvDefault("MTPARSE_FORMAT", "json"),
		Output:  getStringEnvDefault("MTPARSE_OUTPUT", ""),

		LogLevel: getStringEnvDefault("MTPARSE_LOG_LEVEL", "info"),
		LogJSON:  getBoolEnvDefault("MTPARSE_LOG_JSON", false),

		ASCII: getBoolEnvDefault("MTPARSE_ASCII", false),
	}
}

func getBoolEnvDefault(key string, defaultValue bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getStringEnvDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}
