package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBSource   string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string
	AIEndpoint string
	SeedDir    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBSource:   getEnv("DB_SOURCE", "menumate.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     getEnv("DB_PORT", "5432"),
		Port:       getEnv("PORT", "8000"),
		// May legitimately be empty; the AI client reports
		// AI_CONFIG_MISSING at call time instead of failing startup.
		AIEndpoint: os.Getenv("AI_ENDPOINT"),
		SeedDir:    os.Getenv("SEED_DIR"),
	}
}

// PostgresDSN assembles the DSN from the individual DB_* variables.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
