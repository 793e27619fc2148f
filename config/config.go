package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port           string
	ModelPath      string
	AllowedOrigins []string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8000"),
		ModelPath: getEnv("MODEL_PATH", "model.gob"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS",
			"http://localhost,http://localhost:5173,https://loanapi-prediction.netlify.app")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
