package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường, ưu tiên file .env nếu có
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

func ConfigWithDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}
