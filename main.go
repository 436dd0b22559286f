package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env (local dev only — scheduled runs use real env vars)
	_ = godotenv.Load()

	log.SetFlags(log.Ltime)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
