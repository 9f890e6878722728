package database_test

import (
	"testing"

	"kitinventory/core/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_Sqlite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	var result int
	require.NoError(t, db.Raw("SELECT 1").Scan(&result).Error)
	assert.Equal(t, 1, result)
}

func TestConnect_MysqlUnreachable(t *testing.T) {
	_, err := database.Connect(database.Config{
		Driver:         "mysql",
		Host:           "127.0.0.1",
		Port:           1, // nothing listens here
		User:           "root",
		Name:           "kitinventory",
		TimeoutSeconds: 1,
	})
	assert.Error(t, err)
}
