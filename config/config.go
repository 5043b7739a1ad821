package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "8000"
	DefaultDatabaseName  = "recipegenie"
	DefaultMealDBBaseURL = "https://www.themealdb.com/api/json/v1/1"
	DefaultTranslateURL  = "https://libretranslate.de/translate"
)

// Load reads a .env file when present. The deployment environment
// normally injects variables directly, so a missing file is fine.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func Port() string {
	return getenv("PORT", DefaultPort)
}

// DatabaseURL has no default; empty means the document store is not
// configured and favorites are disabled.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func DatabaseName() string {
	return getenv("DATABASE_NAME", DefaultDatabaseName)
}

func MealDBBaseURL() string {
	return getenv("MEALDB_BASE_URL", DefaultMealDBBaseURL)
}

func TranslateURL() string {
	return getenv("TRANSLATE_URL", DefaultTranslateURL)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
