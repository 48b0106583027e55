package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey      string
	GeminiModel       string
	GeminiSDK         string
	GeminiTemperature float32
	GeminiTopP        float32
	ProviderTimeout   time.Duration

	// Personas
	PersonasFile string

	// CORS
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "5000"),
		Env:               getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:      mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:       getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiSDK:         getEnvOrDefault("GEMINI_SDK", "generative-ai-go"),
		GeminiTemperature: getEnvAsFloatOrDefault("GEMINI_TEMPERATURE", 0.7),
		GeminiTopP:        getEnvAsFloatOrDefault("GEMINI_TOP_P", 0.95),
		ProviderTimeout:   getEnvAsDurationOrDefault("PROVIDER_TIMEOUT", 60*time.Second),
		PersonasFile:      getEnvOrDefault("PERSONAS_FILE", ""),
		AllowedOrigins:    getEnvAsListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsFloatOrDefault(key string, defaultVal float32) float32 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return defaultVal
	}
	return float32(f)
}

// getEnvAsDurationOrDefault accepts Go duration strings ("45s") or a bare number of seconds.
func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(val); err == nil {
		if n <= 0 {
			return defaultVal
		}
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
