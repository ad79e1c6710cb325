package leaderboard

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDatabaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}
	return url
}

func setupTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	url := getTestDatabaseURL(t)
	ctx := context.Background()

	s, err := NewPostgresStore(ctx, url)
	require.NoError(t, err)

	// Clean up leaderboard table for test isolation
	_, err = s.pool.Exec(ctx, "DELETE FROM leaderboard")
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

func TestPostgresStore_SaveAndLoad(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	want := fullBoard().Entries()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name)
		assert.Equal(t, want[i].Score, got[i].Score)
		assert.Equal(t, want[i].Level, got[i].Level)
		assert.True(t, want[i].Date.Equal(got[i].Date))
	}
}

func TestPostgresStore_SaveReplaces(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, fullBoard().Entries()))
	require.NoError(t, s.Save(ctx, []Entry{{Name: "ONE", Score: 1, Level: 1, Date: testDate}}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ONE", got[0].Name)
}

func TestPostgresStore_LoadEmpty(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
