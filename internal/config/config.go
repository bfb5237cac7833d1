package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	ServerPort string
	JWTSecret  string

	// Media storage (covers + HLS assets served under /media)
	MediaRoot       string
	MaxCoverSizeMB  int64
	MaxVideoSizeMB  int64
	PlaceholderHLS  string
}

var GlobalConfig *Config

func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	env := getEnv("ENV", "development") // development | production

	maxCover, _ := strconv.ParseInt(getEnv("MAX_COVER_SIZE_MB", "5"), 10, 64)
	maxVideo, _ := strconv.ParseInt(getEnv("MAX_VIDEO_SIZE_MB", "5120"), 10, 64)

	// Set DB defaults based on environment
	var dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode string
	if env == "production" {
		dbHost = getEnv("DB_HOST", "")
		dbPort = getEnv("DB_PORT", "5432")
		dbUser = getEnv("DB_USER", "")
		dbPassword = getEnv("DB_PASSWORD", "")
		dbName = getEnv("DB_NAME", "")
		dbSSLMode = getEnv("DB_SSLMODE", "require")
	} else {
		dbHost = getEnv("DB_HOST", "localhost")
		dbPort = getEnv("DB_PORT", "5432")
		dbUser = getEnv("DB_USER", "postgres")
		dbPassword = getEnv("DB_PASSWORD", "password")
		dbName = getEnv("DB_NAME", "zionflixx")
		dbSSLMode = getEnv("DB_SSLMODE", "disable")
	}

	GlobalConfig = &Config{
		Env: env,

		DBHost:     dbHost,
		DBPort:     dbPort,
		DBUser:     dbUser,
		DBPassword: dbPassword,
		DBName:     dbName,
		DBSSLMode:  dbSSLMode,

		ServerPort: getEnv("SERVER_PORT", "3001"),
		JWTSecret:  getEnv("JWT_SECRET", "default-jwt-secret-change-in-production"),

		MediaRoot:      getEnv("MEDIA_ROOT", "./media"),
		MaxCoverSizeMB: maxCover,
		MaxVideoSizeMB: maxVideo,
		PlaceholderHLS: getEnv("PLACEHOLDER_HLS", "/media/uploads/placeholder.m3u8"),
	}

	return nil
}

// IsProduction gates error detail in responses: stack/detail fields
// are only emitted outside production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
