package main

import "os"

type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    int // hours
	CORSOrigin  string
	Port        string
}

func loadConfig() Config {
	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    24 * 30,
		CORSOrigin:  getenv("CORS_ORIGIN", "http://localhost:3000"),
		Port:        getenv("PORT", "5000"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
