package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	NotifyDriverNone    = "none"
	NotifyDriverRedis   = "redis"
	NotifyDriverWebhook = "webhook"
)

type Config struct {
	Env             string `validate:"required,oneof=development production"`
	Port            int    `validate:"gt=0,lte=65535"`
	APIPrefix       string
	ShutdownTimeout time.Duration

	Database      DatabaseConfig
	Redis         RedisConfig
	CORS          CORSConfig
	Log           LogConfig
	Sessions      SessionConfig
	Photos        PhotoConfig
	Notifications NotificationConfig
	Aliases       AliasConfig
}

type DatabaseConfig struct {
	Driver       string `validate:"required,oneof=postgres sqlite3"`
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	SQLitePath   string `validate:"required_if=Driver sqlite3"`
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SessionConfig tunes student session persistence. A zero TTL keeps sessions until logout.
type SessionConfig struct {
	TTL       time.Duration
	KeyPrefix string
}

// PhotoConfig controls profile photo storage.
type PhotoConfig struct {
	Enabled          bool
	StorageDir       string `validate:"required_if=Enabled true"`
	PublicBaseURL    string
	MaxFileSizeBytes int64 `validate:"gt=0"`
}

// NotificationConfig selects the broadcast publisher.
type NotificationConfig struct {
	Driver     string `validate:"oneof=none redis webhook"`
	Channel    string
	WebhookURL string `validate:"required_if=Driver webhook"`
	Timeout    time.Duration
}

// AliasConfig toggles the legacy Spanish route aliases.
type AliasConfig struct {
	LegacyEnabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = strings.TrimRight(v.GetString("API_PREFIX"), "/")
	cfg.ShutdownTimeout = parseDuration(v.GetString("SHUTDOWN_TIMEOUT"), 10*time.Second)

	cfg.Database = DatabaseConfig{
		Driver:       strings.ToLower(v.GetString("DB_DRIVER")),
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		SQLitePath:   v.GetString("DB_SQLITE_PATH"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Sessions = SessionConfig{
		TTL:       parseDuration(v.GetString("SESSION_TTL"), 0),
		KeyPrefix: v.GetString("SESSION_KEY_PREFIX"),
	}

	maxPhotoSize := v.GetInt64("PHOTOS_MAX_FILE_SIZE")
	if maxPhotoSize <= 0 {
		maxPhotoSize = 5 * 1024 * 1024
	}
	cfg.Photos = PhotoConfig{
		Enabled:          v.GetBool("PHOTOS_ENABLED"),
		StorageDir:       v.GetString("PHOTOS_STORAGE_DIR"),
		PublicBaseURL:    strings.TrimRight(v.GetString("PHOTOS_PUBLIC_BASE_URL"), "/"),
		MaxFileSizeBytes: maxPhotoSize,
	}

	cfg.Notifications = NotificationConfig{
		Driver:     strings.ToLower(v.GetString("NOTIFY_DRIVER")),
		Channel:    v.GetString("NOTIFY_CHANNEL"),
		WebhookURL: v.GetString("NOTIFY_WEBHOOK_URL"),
		Timeout:    parseDuration(v.GetString("NOTIFY_TIMEOUT"), 5*time.Second),
	}

	cfg.Aliases = AliasConfig{
		LegacyEnabled: v.GetBool("ENABLE_LEGACY_ALIASES"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks struct constraints and cross-section requirements.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Notifications.Driver == NotifyDriverRedis && !c.Redis.Enabled {
		return errors.New("invalid configuration: NOTIFY_DRIVER=redis requires REDIS_ENABLED=true")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 5000)
	v.SetDefault("API_PREFIX", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "sicei")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_SQLITE_PATH", "./sicei.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_TTL", "0s")
	v.SetDefault("SESSION_KEY_PREFIX", "session:")

	v.SetDefault("PHOTOS_ENABLED", false)
	v.SetDefault("PHOTOS_STORAGE_DIR", "./media")
	v.SetDefault("PHOTOS_PUBLIC_BASE_URL", "http://localhost:5000/media")
	v.SetDefault("PHOTOS_MAX_FILE_SIZE", 5*1024*1024)

	v.SetDefault("NOTIFY_DRIVER", NotifyDriverNone)
	v.SetDefault("NOTIFY_CHANNEL", "sicei.notificaciones")
	v.SetDefault("NOTIFY_WEBHOOK_URL", "")
	v.SetDefault("NOTIFY_TIMEOUT", "5s")

	v.SetDefault("ENABLE_LEGACY_ALIASES", false)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// isMissingFile tolerates a missing .env, which viper reports as a plain fs error
// when SetConfigFile is used.
func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
