package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestEmptyPathRejected(t *testing.T) {
	_, err := NewDB("")
	assert.Error(t, err)
}

func TestGetMissingKeyReturnsEmpty(t *testing.T) {
	db := newTestDB(t)

	value, err := db.Get("never-written")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestPutOverwrites(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Put("lisa-plan", "starter"))
	require.NoError(t, db.Put("lisa-plan", "enterprise"))

	value, err := db.Get("lisa-plan")
	require.NoError(t, err)
	assert.Equal(t, "enterprise", value)
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Put("sidebar-collapsed", "true"))
	require.NoError(t, db.Delete("sidebar-collapsed"))

	value, err := db.Get("sidebar-collapsed")
	require.NoError(t, err)
	assert.Empty(t, value)

	// Deleting an absent key is fine
	require.NoError(t, db.Delete("sidebar-collapsed"))
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	first, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, first.Put("agent-hub-locale", "en"))
	require.NoError(t, first.Close())

	second, err := NewDB(path)
	require.NoError(t, err)
	defer second.Close()

	value, err := second.Get("agent-hub-locale")
	require.NoError(t, err)
	assert.Equal(t, "en", value)
}
