package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("[env] loaded", p)
			return
		}
	}
}

func mustLoadEnv() {
	loadDotenv()
	// minimal checks; DATABASE_URL is optional (memory store fallback)
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("missing required env JWT_SECRET")
	}
}
