package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers
const (
	DriverMemory   = "memory"
	DriverRemote   = "remote"
	DriverPostgres = "postgres"
)

type Config struct {
	App    AppConfig
	Store  StoreConfig
	Remote RemoteConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	CORSOrigins []string
}

type StoreConfig struct {
	Driver          string
	FixtureDir      string
	SimulateLatency bool
}

type RemoteConfig struct {
	BaseURL   string
	ProjectID string
	PublicKey string
	Timeout   time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads path and the environment. A missing file is not an error;
// environment variables alone are enough.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("STORE_SIMULATE_LATENCY", true)
	v.SetDefault("REDIS_ENABLED", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	remoteTimeout, err := time.ParseDuration(v.GetString("REMOTE_TIMEOUT"))
	if err != nil {
		remoteTimeout = 15 * time.Second
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:        v.GetString("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Store: StoreConfig{
			Driver:          v.GetString("STORE_DRIVER"),
			FixtureDir:      v.GetString("STORE_FIXTURE_DIR"),
			SimulateLatency: v.GetBool("STORE_SIMULATE_LATENCY"),
		},
		Remote: RemoteConfig{
			BaseURL:   v.GetString("REMOTE_BASE_URL"),
			ProjectID: v.GetString("REMOTE_PROJECT_ID"),
			PublicKey: v.GetString("REMOTE_PUBLIC_KEY"),
			Timeout:   remoteTimeout,
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
	}

	switch config.Store.Driver {
	case DriverMemory, DriverRemote, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", config.Store.Driver)
	}

	return config, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
