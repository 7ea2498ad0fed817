package main

import (
	"os"

	"github.com/hireloop/ats-analyzer/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
