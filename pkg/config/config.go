package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	MongoURI        string
	Database        string
	Environment     string
	TokenSecret     string
	TokenExpiry     int64
	StripeSecretKey string
	CORSOrigins     []string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("PORT", "3000"),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:        getEnv("MONGODB_DATABASE", "fueled_student_DB"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		TokenSecret:     getEnv("TOKEN_SEC", "your-secret-key"),
		TokenExpiry:     getEnvAsInt64("TOKEN_EXPIRY", 24*60*60), // 1 day
		StripeSecretKey: getEnv("STRIPE_SEC_KEY", ""),
		CORSOrigins:     getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:5173"}),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
