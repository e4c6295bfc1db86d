package migrations

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMigrationsSortsAndFilters(t *testing.T) {
	fsys := fstest.MapFS{
		"002_attendance_index.sql": {Data: []byte("SELECT 1;")},
		"001_init.sql":             {Data: []byte("SELECT 1;")},
		"README.md":                {Data: []byte("notes")},
		"old/003_skip.sql":         {Data: []byte("SELECT 1;")},
	}

	got, err := CollectMigrations(fsys)
	require.NoError(t, err)
	assert.Equal(t, []Migration{
		{Version: "001", Name: "001_init.sql"},
		{Version: "002", Name: "002_attendance_index.sql"},
	}, got)
}

func TestCollectMigrationsRejectsDuplicateVersions(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql":  {Data: []byte("SELECT 1;")},
		"001_again.sql": {Data: []byte("SELECT 1;")},
	}

	_, err := CollectMigrations(fsys)
	assert.ErrorContains(t, err, "share version 001")
}

func TestRepositoryMigrationsAreWellFormed(t *testing.T) {
	got, err := CollectMigrations(os.DirFS("../../../migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "001", got[0].Version)
}
