package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
	CloudinaryURL  string
}

// Load memuat konfigurasi dari file .env atau environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
