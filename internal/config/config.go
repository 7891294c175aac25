package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application settings.
type Config struct {
	App      AppConfig
	DB       DBConfig
	RabbitMQ RabbitMQConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env          string // development, production
	Port         string // listen address, e.g. ":8080"
	LogLevel     string
	SeedProducts bool
}

// DBConfig selects the storage backend. Driver is one of sqlite, postgres or memory.
type DBConfig struct {
	Driver string
	DSN    string
}

// RabbitMQConfig enables product events when URL is set.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// Enabled reports whether events should be published.
func (c RabbitMQConfig) Enabled() bool {
	return c.URL != ""
}

// Load reads the configuration from environment variables and, if present,
// a .env file in the working directory. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		App: AppConfig{
			Env:          v.GetString("APP_ENV"),
			Port:         v.GetString("APP_PORT"),
			LogLevel:     v.GetString("LOG_LEVEL"),
			SeedProducts: v.GetBool("SEED_PRODUCTS"),
		},
		DB: DBConfig{
			Driver: strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_PRODUCTS", false)
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "productos.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "productos")
}
