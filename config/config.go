package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// InitConfig loads a .env file into the environment if one is present.
func InitConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
		return
	}
	log.Println("loaded environment variables from .env")
}

// GetEnvVariable returns the named environment variable, erroring when it
// is unset or empty.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}

// GetEnvOr returns the named environment variable or def when unset.
func GetEnvOr(v, def string) string {
	if b := os.Getenv(v); b != "" {
		return b
	}
	return def
}
