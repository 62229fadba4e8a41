package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/fitquest/fitquest/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestToken_AbsentReadsEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	token, err := r.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestSetToken_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.SetToken(ctx, "first"))
	require.NoError(t, r.SetToken(ctx, "second"))

	token, err := r.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestUser_RoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	u, err := r.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	want := &models.User{ID: 42, Name: "Dana", Email: "dana@example.com", Level: 2, Exp: 230}
	require.NoError(t, r.SetUser(ctx, want))

	got, err := r.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUser_CorruptPayloadErrors(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session(key,value) VALUES('user', x'00ff')`)
	require.NoError(t, err)

	_, err = r.User(ctx)
	assert.Error(t, err)
}

func TestClear_RemovesEverything(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.SetToken(ctx, "tok"))
	require.NoError(t, r.SetUser(ctx, &models.User{ID: 1}))
	require.NoError(t, r.Clear(ctx))

	token, err := r.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	u, err := r.User(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}
