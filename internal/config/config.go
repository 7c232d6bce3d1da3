// Package config loads service configuration from the environment and an optional .env file.
package config

import (
	"fmt"
	"strings"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config is the full runtime configuration of the API.
type Config struct {
	Port    int
	GinMode string

	DB DBSettings

	SecretKey      string
	AccessTokenTTL time.Duration

	AllowOrigins       []string
	RateLimitPerSecond uint
	RedisURL           string

	RabbitMQURL       string
	NotificationQueue string

	LogLevel       string
	LogFormat      string
	LogAuthAttempt bool

	AdminUsername string
	AdminPassword string
	AppBaseURL    string
}

// DBSettings holds the raw database settings read from the environment.
type DBSettings struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	ConnectionStr string
	UseConnStr    bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("USE_CONNECTION_STR", false)
	v.SetDefault("ACCESS_TOKEN_TTL", time.Hour)
	v.SetDefault("RATE_LIMIT_REQUESTS_PER_SECOND", 5)
	v.SetDefault("NOTIFICATION_QUEUE", "notification_events")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOGGING", false)
	return v
}

// Load reads the configuration. It fails when the database or token settings are incomplete.
func Load() (*Config, error) {
	v := newViper()

	rate := v.GetInt("RATE_LIMIT_REQUESTS_PER_SECOND")
	if rate <= 0 {
		rate = 5 // ensure rate limit is positive
	}

	cfg := &Config{
		Port:    v.GetInt("PORT"),
		GinMode: v.GetString("GIN_MODE"),
		DB: DBSettings{
			Host:          v.GetString("DB_HOST"),
			Port:          v.GetString("DB_PORT"),
			User:          v.GetString("DB_USERNAME"),
			Password:      v.GetString("DB_PASSWORD"),
			Name:          v.GetString("DB_DATABASE"),
			ConnectionStr: v.GetString("DB_CONNECTION_STR"),
			UseConnStr:    v.GetBool("USE_CONNECTION_STR"),
		},
		SecretKey:          v.GetString("SECRET_KEY"),
		AccessTokenTTL:     v.GetDuration("ACCESS_TOKEN_TTL"),
		AllowOrigins:       splitList(v.GetString("ALLOW_ORIGIN")),
		RateLimitPerSecond: uint(rate),
		RedisURL:           v.GetString("REDIS_URL"),
		RabbitMQURL:        v.GetString("RABBITMQ_URL"),
		NotificationQueue:  v.GetString("NOTIFICATION_QUEUE"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		LogAuthAttempt:     v.GetBool("LOGGING"),
		AdminUsername:      v.GetString("ADMIN_USERNAME"),
		AdminPassword:      v.GetString("ADMIN_PASSWORD"),
		AppBaseURL:         strings.TrimRight(v.GetString("APP_BASE_URL"), "/"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if c.DB.UseConnStr {
		if c.DB.ConnectionStr == "" {
			return fmt.Errorf("DB_CONNECTION_STR is empty")
		}
		return nil
	}
	if c.DB.Host == "" || c.DB.Port == "" || c.DB.User == "" || c.DB.Password == "" || c.DB.Name == "" {
		return fmt.Errorf("database configuration is incomplete")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
