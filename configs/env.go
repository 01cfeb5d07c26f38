package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process reads from the environment. It is
// built once in main and handed to the components that need it instead of
// being consulted through package-level globals.
type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	StripeSecretKey string
	AllowOrigins    string
}

// Load reads .env when present and assembles the Config. Missing required
// variables are reported together so a broken deployment fails loudly once.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "5000"),
		MongoURI:        os.Getenv("MONGOURI"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "croxora"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		AllowOrigins:    getEnv("CLIENT_URL", "http://localhost:5173"),
	}

	var missing []string
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGOURI")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.StripeSecretKey == "" {
		missing = append(missing, "STRIPE_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %v", missing)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
