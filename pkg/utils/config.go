package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envProduction = "production"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Email    EmailConfig
	SMS      SMSConfig
	AWS      AWSConfig
	OTP      OTPConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type EmailConfig struct {
	Provider      string
	From          string
	ResendAPIKey  string
	ResendBaseURL string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
}

type SMSConfig struct {
	Provider string
}

type AWSConfig struct {
	Region      string
	EndpointURL string
}

type OTPConfig struct {
	ExpiryMinutes int
	NotifyTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// IsProduction reports whether the service runs with the production profile.
// Anything that leaks secrets for local testing must check this first.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.App.Env), envProduction)
}

// DSN builds the pgx connection string, preferring DB_URL when set.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// LoadConfig reads path (an .env file, optional) and overlays the process
// environment on top of it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "cinerank-auth")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "cinerank")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("OTP_EXPIRY_MINUTES", 5)
	v.SetDefault("NOTIFY_TIMEOUT_SECONDS", 10)
	v.SetDefault("EMAIL_FROM", "no-reply@cinerank.app")
	v.SetDefault("RESEND_BASE_URL", "https://api.resend.com/")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Env:     v.GetString("APP_ENV"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DB_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Email: EmailConfig{
			Provider:      strings.ToLower(v.GetString("EMAIL_PROVIDER")),
			From:          v.GetString("EMAIL_FROM"),
			ResendAPIKey:  v.GetString("RESEND_API_KEY"),
			ResendBaseURL: v.GetString("RESEND_BASE_URL"),
			SMTPHost:      v.GetString("SMTP_HOST"),
			SMTPPort:      v.GetInt("SMTP_PORT"),
			SMTPUser:      v.GetString("SMTP_USER"),
			SMTPPassword:  v.GetString("SMTP_PASS"),
		},
		SMS: SMSConfig{
			Provider: strings.ToLower(v.GetString("SMS_PROVIDER")),
		},
		AWS: AWSConfig{
			Region:      v.GetString("AWS_REGION"),
			EndpointURL: v.GetString("AWS_ENDPOINT_URL"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: v.GetInt("OTP_EXPIRY_MINUTES"),
			NotifyTimeout: time.Duration(v.GetInt("NOTIFY_TIMEOUT_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if config.OTP.ExpiryMinutes <= 0 {
		return nil, fmt.Errorf("OTP_EXPIRY_MINUTES must be positive, got %d", config.OTP.ExpiryMinutes)
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
