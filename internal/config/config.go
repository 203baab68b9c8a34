package config

import (
	"os"
	"strings"

	"student_dashboard/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string
	FrontURL    string

	// Google OAuth (Classroom read-only). Optional: without credentials the
	// dashboard still serves the demo fixture set.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	// Checklist generation
	OpenAIKey   string
	OpenAIModel string

	// Rate limiter backend
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads configuration from the environment (.env honored).
func Load() *Config {
	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "4000"
	}

	frontURL := os.Getenv("FRONT_URL")
	if frontURL == "" {
		frontURL = "http://localhost:5174"
	}

	redirect := os.Getenv("GOOGLE_REDIRECT_URI")
	if redirect == "" {
		redirect = "http://localhost:" + port + "/auth/google/callback"
	}

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		logger.Warn("GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not set, live Classroom data disabled")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Config{
		AppPort:            port,
		DatabaseURL:        dbURL,
		JWTSecret:          jwtSecret,
		FrontURL:           frontURL,
		GoogleClientID:     clientID,
		GoogleClientSecret: clientSecret,
		GoogleRedirectURI:  redirect,
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        model,
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		RedisDB:            0,
	}
}
