package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileStore keeps the board in a single file, as YAML when the path ends in
// .yaml or .yml and as JSON otherwise.
type FileStore struct {
	path string
	yaml bool
}

func NewFileStore(path string) *FileStore {
	ext := strings.ToLower(filepath.Ext(path))
	return &FileStore{path: path, yaml: ext == ".yaml" || ext == ".yml"}
}

// Load reads the board. A missing file is an empty board.
func (s *FileStore) Load(_ context.Context) ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}

	var entries []Entry
	if s.yaml {
		err = yaml.Unmarshal(data, &entries)
	} else {
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, fmt.Errorf("decode leaderboard %s: %w", s.path, err)
	}
	return entries, nil
}

// Save writes the board through a temporary file so a crash never leaves a
// truncated file behind.
func (s *FileStore) Save(_ context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := s.encode(entries)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close leaderboard: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}

func (s *FileStore) encode(entries []Entry) ([]byte, error) {
	if s.yaml {
		return yaml.Marshal(entries)
	}
	return json.MarshalIndent(entries, "", "  ")
}

func (s *FileStore) Close() error {
	return nil
}
