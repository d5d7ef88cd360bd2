package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
// It is loaded once in main and passed down explicitly.
type Config struct {
	MongoURI string
	DBName   string
	Port     string

	// BaseURL plus the /uploads route is prefixed onto stored relative
	// upload paths at read time.
	BaseURL string

	// UploadDir is the root directory for uploaded assets; files land in
	// category-named subdirectories underneath it.
	UploadDir string

	JWTSecret     string
	AdminTokenTTL time.Duration
	UserTokenTTL  time.Duration

	// OTPTTL applies to both verification OTPs and password-reset codes.
	OTPTTL time.Duration

	SendGridAPIKey string
	EmailFromName  string
	EmailFromAddr  string

	AWSRegion     string
	AWSBucketName string

	// Seed credentials for the initial admin account.
	AdminEmail    string
	AdminPassword string
}

// Load reads the .env file (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		DBName:        getEnv("DB_NAME", "portfolio"),
		Port:          getEnv("PORT", "8080"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminTokenTTL: getDurationHours("ADMIN_TOKEN_TTL_HOURS", 24),
		UserTokenTTL:  getDurationHours("USER_TOKEN_TTL_HOURS", 7*24),
		OTPTTL:        10 * time.Minute,

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "Portfolio"),
		EmailFromAddr:  getEnv("EMAIL_FROM_ADDR", "no-reply@localhost"),

		AWSRegion:     getEnv("AWS_REGION", "ap-south-1"),
		AWSBucketName: os.Getenv("AWS_BUCKET_NAME"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationHours(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return time.Duration(fallback) * time.Hour
}
