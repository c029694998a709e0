package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sicei-api/pkg/config"
)

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sicei.db")

	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, config.DriverSQLite, db.DriverName())
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "mysql"})
	assert.Error(t, err)
}
