package leaderboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"json", "leaderboard.json"},
		{"yaml", "leaderboard.yaml"},
		{"yml", "scores.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := NewFileStore(filepath.Join(t.TempDir(), tt.file))

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
		})
	}
}

func TestFileStore_YAMLOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.yaml")
	entries := []Entry{{Name: "ADA", Score: 900, Level: 6, Date: testDate}}
	require.NoError(t, NewFileStore(path).Save(context.Background(), entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: ADA")
	assert.Contains(t, string(data), "score: 900")
}

func TestFileStore_MissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	entries, err := s.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())

	assert.Error(t, err)
}

func TestFileStore_SaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leaderboard.json")
	require.NoError(t, NewFileStore(path).Save(context.Background(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
