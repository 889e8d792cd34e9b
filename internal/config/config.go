// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host    string
	Port    string
	Env     string // "development", "production", "testing"
	SiteURL string // public origin used in the sitemap and canonical links

	// PostgreSQL connection. DatabaseURL wins over the individual parts.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// Valkey (Redis-compatible), used to serialize seed runs
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// S3-compatible media storage; empty endpoint disables uploads
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// MediaDir holds local seed images, served under /media when S3 is off.
	MediaDir string

	// Contact form delivery
	ResendAPIKey       string
	ContactEmailTo     []string
	ContactEmailFrom   string
	TurnstileSecretKey string
	TurnstileSiteKey   string

	// CMSSecret guards the seed endpoint. Empty disables it.
	CMSSecret string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if critical values
// are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host:    envOrDefault("APP_HOST", "0.0.0.0"),
		Port:    envOrDefault("APP_PORT", "8080"),
		Env:     envOrDefault("APP_ENV", "development"),
		SiteURL: strings.TrimRight(envOrDefault("SITE_URL", "https://technogroop.com"), "/"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:      envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:      envOrDefault("POSTGRES_USER", "technogroop"),
		DBPassword:  envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:      envOrDefault("POSTGRES_DB", "technogroop"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "eu-central-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "technogroop-media"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		MediaDir: envOrDefault("MEDIA_DIR", "./media"),

		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		ContactEmailTo:     splitList(envOrDefault("CONTACT_EMAIL_TO", "info@technogroop.com")),
		ContactEmailFrom:   envOrDefault("CONTACT_EMAIL_FROM", "Techno Groop Contact Form <noreply@technogroop.com>"),
		TurnstileSecretKey: os.Getenv("TURNSTILE_SECRET_KEY"),
		TurnstileSiteKey:   os.Getenv("TURNSTILE_SITE_KEY"),

		CMSSecret: os.Getenv("CMS_SECRET"),
	}

	if len(cfg.ContactEmailTo) == 0 {
		return nil, fmt.Errorf("CONTACT_EMAIL_TO must list at least one address")
	}

	if cfg.Env == "production" {
		if cfg.DatabaseURL == "" && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD or DATABASE_URL must be set in production")
		}
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY must be set in production")
		}
		if cfg.TurnstileSecretKey == "" || cfg.TurnstileSiteKey == "" {
			return nil, fmt.Errorf("TURNSTILE_SECRET_KEY and TURNSTILE_SITE_KEY must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SecureCookies reports whether cookies should carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return strings.HasPrefix(c.SiteURL, "https://") && !c.IsDev()
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
