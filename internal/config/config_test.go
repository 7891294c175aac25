package config_test

import (
	"testing"

	"productos/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.App.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "productos.db", cfg.DB.DSN)
	assert.Equal(t, "productos", cfg.RabbitMQ.Exchange)
	assert.False(t, cfg.RabbitMQ.Enabled())
	assert.False(t, cfg.App.SeedProducts)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DATABASE_DSN", "host=db user=postgres dbname=productos sslmode=disable")
	t.Setenv("RABBITMQ_URL", "amqp://guest:guest@mq:5672/")
	t.Setenv("SEED_PRODUCTS", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Contains(t, cfg.DB.DSN, "dbname=productos")
	assert.True(t, cfg.RabbitMQ.Enabled())
	assert.True(t, cfg.App.SeedProducts)
}
