package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver    string
	DatabaseURL string
	DBSource    string

	JWTSecret        string
	JWTRefreshSecret string
	CSRFSecret       string

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	CSRFTokenTTL    time.Duration

	AdminCreateSecret string
	AdminEmail        string
	AdminPassword     string
	AdminFirstName    string
	AdminLastName     string
	AdminPhone        string

	UploadDriver string // "local" | "s3"
	UploadDir    string
	S3Bucket     string
	AWSRegion    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SMTPAddress   string
	FromEmail     string
	FromEmailPass string
	FromEmailSMTP string

	SiteURL string
}

func LoadConfig() *Config {
	// .env เป็น optional, บน production ใช้ env ของระบบ
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment variables")
	}

	return &Config{
		Port: getEnv("PORT", "8000"),

		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBSource:    getEnv("DB_SOURCE", "shop.db"),

		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", "your-refresh-secret-key-change-in-production"),
		CSRFSecret:       getEnv("CSRF_SECRET", "your-csrf-secret-change-in-production"),

		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		CSRFTokenTTL:    time.Hour,

		AdminCreateSecret: os.Getenv("ADMIN_CREATE_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminFirstName:    getEnv("ADMIN_FIRST_NAME", "Admin"),
		AdminLastName:     getEnv("ADMIN_LAST_NAME", "User"),
		AdminPhone:        getEnv("ADMIN_PHONE", ""),

		UploadDriver: getEnv("UPLOAD_DRIVER", "local"),
		UploadDir:    getEnv("UPLOAD_DIR", "public/uploads"),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		AWSRegion:    getEnv("AWS_REGION", "ap-southeast-1"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		SMTPAddress:   os.Getenv("SMTP_ADDRESS"),
		FromEmail:     os.Getenv("FROM_EMAIL"),
		FromEmailPass: os.Getenv("FROM_EMAIL_PASSWORD"),
		FromEmailSMTP: os.Getenv("FROM_EMAIL_SMTP"),

		SiteURL: getEnv("SITE_URL", "http://localhost:3000"),
	}
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

// Helper เผื่อไฟล์อื่นต้องใช้ (เช่น seed)
func MustGetEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		log.Fatalf("missing env: %s", key)
	}
	return v
}
