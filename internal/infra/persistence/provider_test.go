package persistence

import (
	"log/slog"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewRepositories_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Driver = "cassandra"

	_, err := NewRepositories(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.Default(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}

func TestNewRepositories_MissingDriverSection(t *testing.T) {
	tests := []struct {
		name   string
		driver string
	}{
		{name: "postgres", driver: config.StorageDriverPostgres},
		{name: "mongo", driver: config.StorageDriverMongo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Storage.Driver = tt.driver

			_, err := NewRepositories(Params{
				Lc:     fxtest.NewLifecycle(t),
				Config: cfg,
				Logger: slog.Default(),
			})

			assert.Error(t, err)
		})
	}
}
