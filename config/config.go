package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port        string
	FrontendURL string

	MySQLHost     string
	MySQLDB       string
	MySQLUser     string
	MySQLPassword string
	MySQLPort     string

	JWTKey    string
	JWTExpire time.Duration
	SaltRound int

	EmailSender   string
	EmailPassword string

	PaymentGatewayURL string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:        getEnv("PORT", "3000"),
		FrontendURL: getEnv("FRONTEND_URL", "*"),

		MySQLHost:     os.Getenv("MYSQL_HOST"),
		MySQLDB:       os.Getenv("MYSQL_DB"),
		MySQLUser:     os.Getenv("MYSQL_USER"),
		MySQLPassword: os.Getenv("MYSQL_PASSWORD"),
		MySQLPort:     getEnv("MYSQL_PORT", "3306"),

		JWTKey:    os.Getenv("JWT_SECRET"),
		JWTExpire: getEnvDuration("JWT_EXPIRE", 24*time.Hour),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender:   getEnv("EMAIL_SENDER", ""),
		EmailPassword: getEnv("EMAIL_PASSWORD", ""),

		PaymentGatewayURL: getEnv("PAYMENT_GATEWAY_URL", ""),
	}

	// The process must not start without these
	required := map[string]string{
		"MYSQL_HOST": AppConfig.MySQLHost,
		"MYSQL_DB":   AppConfig.MySQLDB,
		"MYSQL_USER": AppConfig.MySQLUser,
		"JWT_SECRET": AppConfig.JWTKey,
	}
	for name, value := range required {
		if value == "" {
			log.Fatalf("Missing required environment variable %s", name)
		}
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvDuration retrieves an environment variable as a duration (e.g. "24h")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to duration: %v", key, err)
		return defaultValue
	}
	return d
}
