package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "asq.db", cfg.SQLitePath)
	assert.Equal(t, 1, cfg.DBMaxOpenConns)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.ResetDB)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9001")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("RESET_DB", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.ServerPort)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.True(t, cfg.ResetDB)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"unknown driver", "DB_DRIVER", "postgres", "DB_DRIVER"},
		{"bcrypt cost too low", "BCRYPT_COST", "2", "BCRYPT_COST"},
		{"bcrypt cost too high", "BCRYPT_COST", "40", "BCRYPT_COST"},
		{"no connections", "DB_MAX_OPEN_CONNS", "0", "DB_MAX_OPEN_CONNS"},
		{"not a number", "BCRYPT_COST", "ten", "parse environment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
