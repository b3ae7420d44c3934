package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/LLEndaya/LeaseUp/internal/utils"
)

const minSessionSecretLen = 32

type Config struct {
	AppName string
	AppPort string
	AppUrl  string
	DBUrl   string

	SessionSecret []byte
	SessionTTL    time.Duration
	SecureCookies bool

	AdminAutologinEnabled bool

	LogLevel string

	SendgridAPIKey    string
	SendgridFromEmail string
	SendgridSandbox   bool

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string
}

// LoadConfig reads the process environment, after merging an optional
// .env file, and exits on missing required keys.
func LoadConfig() *Config {
	cfg, err := Load(os.Getenv)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to load config")
	}
	return cfg
}

// LoadDotEnv merges path (default ".env") into the environment without
// overriding variables that are already set.
func LoadDotEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		utils.Logger.Debugf("No .env file loaded: %v", err)
	}
}

// Load builds a Config from getenv.
func Load(getenv func(string) string) (*Config, error) {
	utils.Logger.Info("Loading config for app: ", utils.AppName)

	dbURL := getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL env var is missing")
	}

	secret := getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET env var is missing")
	}
	if len(secret) < minSessionSecretLen {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSessionSecretLen)
	}

	ttl, err := durationOr(getenv("SESSION_TTL"), 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	secure, err := boolOr(getenv("SECURE_COOKIES"), true)
	if err != nil {
		return nil, fmt.Errorf("SECURE_COOKIES: %w", err)
	}
	autologin, err := boolOr(getenv("ADMIN_AUTOLOGIN_ENABLED"), true)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_AUTOLOGIN_ENABLED: %w", err)
	}
	sandbox, err := boolOr(getenv("SENDGRID_SANDBOX"), false)
	if err != nil {
		return nil, fmt.Errorf("SENDGRID_SANDBOX: %w", err)
	}

	cfg := &Config{
		AppName:               utils.AppName,
		AppPort:               stringOr(getenv("APP_PORT"), "8080"),
		AppUrl:                stringOr(getenv("APP_URL"), "http://localhost:8080"),
		DBUrl:                 dbURL,
		SessionSecret:         []byte(secret),
		SessionTTL:            ttl,
		SecureCookies:         secure,
		AdminAutologinEnabled: autologin,
		SendgridAPIKey:        getenv("SENDGRID_API_KEY"),
		SendgridFromEmail:     getenv("SENDGRID_FROM_EMAIL"),
		SendgridSandbox:       sandbox,
		TwilioAccountSID:      getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:       getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:       getenv("TWILIO_FROM_PHONE"),
		LogLevel:              LogLevel(getenv),
	}

	if cfg.SendgridAPIKey == "" {
		utils.Logger.Info("SENDGRID_API_KEY not set; booking emails disabled.")
	}
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		utils.Logger.Info("Twilio credentials not set; booking SMS disabled.")
	}

	utils.Logger.Infof("Loaded config for %s (port %s)", cfg.AppName, cfg.AppPort)
	return cfg, nil
}

// LogLevel reads LOG_LEVEL, defaulting to info.
func LogLevel(getenv func(string) string) string {
	return stringOr(getenv("LOG_LEVEL"), "info")
}

// LoadDBUrl is the subset init-db needs.
func LoadDBUrl(getenv func(string) string) (string, error) {
	dbURL := getenv("DATABASE_URL")
	if dbURL == "" {
		return "", fmt.Errorf("DATABASE_URL env var is missing")
	}
	return dbURL, nil
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func boolOr(v string, def bool) (bool, error) {
	if v == "" {
		return def, nil
	}
	return strconv.ParseBool(v)
}

func durationOr(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
