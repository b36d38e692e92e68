package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string // postgres | sqlite
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	// base URL the customer-facing links (QR codes, reset mails) point at
	PublicBaseURL string

	// allowed browser origins; empty means allow all (dev)
	CORSOrigins []string

	// object storage for logos and menu photos
	S3Region     string
	S3Bucket     string
	S3PublicBase string // override for public URLs, e.g. a CDN

	// optional event bus; empty disables publishing
	RabbitURL string

	SMTPAddr     string
	SMTPHost     string
	FromEmail    string
	FromPassword string

	AdminEmail    string
	AdminPassword string

	CartTTL time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:      getEnv("DB_DRIVER", "postgres"),
		DBSource:      getEnv("DB_SOURCE", "host=localhost user=postgres dbname=menustream sslmode=disable"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
		CORSOrigins:   splitCSV(os.Getenv("CORS_ORIGINS")),
		S3Region:      getEnv("S3_REGION", "eu-north-1"),
		S3Bucket:      getEnv("S3_BUCKET", "menustream"),
		S3PublicBase:  os.Getenv("S3_PUBLIC_BASE"),
		RabbitURL:     os.Getenv("RABBITMQ_URL"),
		SMTPAddr:      os.Getenv("SMTP_ADDRESS"),
		SMTPHost:      os.Getenv("FROM_EMAIL_SMTP"),
		FromEmail:     os.Getenv("FROM_EMAIL"),
		FromPassword:  os.Getenv("FROM_EMAIL_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		CartTTL:       time.Duration(getEnvInt("CART_TTL_MINUTES", 120)) * time.Minute,
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
