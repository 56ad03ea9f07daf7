package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	Chat     ChatConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	ChatLogFilePath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host         string
	Port         int
	Email        string
	Password     string
	SenderName   string
	SupportInbox string // Contact form messages are forwarded here
}

type AdminConfig struct {
	Password  string
	JwtSecret string
	TokenTTL  time.Duration
}

type ChatConfig struct {
	ReplyDelay time.Duration
	SessionTTL time.Duration
}

type EventsConfig struct {
	ContactTopic   string // In-process topic for contact forwarding
	CatalogChannel string // Redis channel for catalog invalidation
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ChatLogFilePath:    getEnv("CHAT_LOG_FILE_PATH", "logs/chat.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:         getEnv("SMTP_HOST", ""),
			Port:         getEnvAsInt("SMTP_PORT", 587),
			Email:        getEnv("SMTP_EMAIL", ""),
			Password:     getEnv("SMTP_PASSWORD", ""),
			SenderName:   getEnv("SMTP_SENDER_NAME", "Peptide Storefront"),
			SupportInbox: getEnv("SUPPORT_INBOX", "support@localhost"),
		},
		Admin: AdminConfig{
			Password:  getEnv("ADMIN_PASSWORD", "admin123"),
			JwtSecret: getEnv("JWT_SECRET", "change-me"),
			TokenTTL:  getEnvAsDuration("ADMIN_TOKEN_TTL", 12*time.Hour),
		},
		Chat: ChatConfig{
			ReplyDelay: getEnvAsDuration("CHAT_REPLY_DELAY", 500*time.Millisecond),
			SessionTTL: getEnvAsDuration("CHAT_SESSION_TTL", time.Hour),
		},
		Events: EventsConfig{
			ContactTopic:   getEnv("CONTACT_TOPIC_NAME", "CONTACT_FORWARD"),
			CatalogChannel: getEnv("CATALOG_CHANNEL_NAME", "catalog_events"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
