package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
	Chat   ChatConfig
	Mail   MailConfig
}

type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	ServiceName string
	// CatalogPath overrides the embedded catalog when set.
	CatalogPath string
}

// ChatConfig configures the completion API client.
type ChatConfig struct {
	APIKey   string
	BaseURL  string
	AppTitle string
	SiteURL  string
	Timeout  time.Duration
}

// MailConfig configures the SMTP relay used by the contact form.
type MailConfig struct {
	Host         string
	Port         int
	Secure       bool
	Username     string
	Password     string
	From         string
	OwnerAddress string
	Timeout      time.Duration
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			AllowedOrigins:  getEnvAsList("CORS_ALLOWED_ORIGINS"),
			ShutdownTimeout: getEnvAsSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ServiceName: getEnv("SERVICE_NAME", "portfolio-api"),
			CatalogPath: getEnv("CATALOG_PATH", ""),
		},
		Chat: ChatConfig{
			APIKey:   getEnv("OPENROUTER_API_KEY", ""),
			BaseURL:  strings.TrimRight(getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"), "/"),
			AppTitle: getEnv("CHAT_APP_TITLE", "Victor Adeiza Portfolio"),
			SiteURL:  getEnv("CHAT_SITE_URL", ""),
			Timeout:  getEnvAsSeconds("CHAT_TIMEOUT_SECONDS", 60),
		},
		Mail: MailConfig{
			Host:         getEnv("SMTP_HOST", ""),
			Port:         getEnvAsInt("SMTP_PORT", 587),
			Secure:       getEnvAsBool("SMTP_SECURE", false),
			Username:     getEnv("SMTP_USER", ""),
			Password:     getEnv("SMTP_PASS", ""),
			From:         getEnv("SMTP_FROM", ""),
			OwnerAddress: getEnv("ADMIN_EMAIL", ""),
			Timeout:      getEnvAsSeconds("SMTP_TIMEOUT_SECONDS", 15),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	if c.Chat.Timeout <= 0 {
		return fmt.Errorf("CHAT_TIMEOUT_SECONDS must be positive")
	}
	if c.Mail.Timeout <= 0 {
		return fmt.Errorf("SMTP_TIMEOUT_SECONDS must be positive")
	}
	if c.Mail.Port < 1 || c.Mail.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535, got %d", c.Mail.Port)
	}
	return nil
}

// ChatConfigured reports whether the completion API credential is present.
func (c *Config) ChatConfigured() bool { return c.Chat.APIKey != "" }

// MailConfigured reports whether the relay, sender and owner address are present.
func (c *Config) MailConfigured() bool {
	return c.Mail.Host != "" && c.Mail.From != "" && c.Mail.OwnerAddress != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsSeconds(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultSeconds)) * time.Second
}

func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
