package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursereg/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database = config.DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "coursereg",
		MaxOpenConns: 12, MaxIdleConns: 3, ConnMaxLifetime: "30m",
	}
	return cfg
}

func TestNewPoolConfig(t *testing.T) {
	poolConfig, err := NewPoolConfig(testConfig())
	require.NoError(t, err)

	assert.Equal(t, int32(12), poolConfig.MaxConns)
	assert.Equal(t, int32(3), poolConfig.MinConns)
	assert.Equal(t, 30*time.Minute, poolConfig.MaxConnLifetime)
	assert.Equal(t, "db", poolConfig.ConnConfig.Host)
	assert.Equal(t, "coursereg", poolConfig.ConnConfig.Database)
	assert.NotNil(t, poolConfig.BeforeAcquire)
}

func TestNewPoolConfigBadLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "soon"
	_, err := NewPoolConfig(cfg)
	require.Error(t, err)
}
