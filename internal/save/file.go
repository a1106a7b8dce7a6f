package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON file per player in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(playerID string) (string, error) {
	if playerID == "" || strings.ContainsAny(playerID, `/\`) || playerID == "." || playerID == ".." {
		return "", fmt.Errorf("invalid player id %q", playerID)
	}
	return filepath.Join(s.dir, playerID+".json"), nil
}

// Save writes data through a temp file and rename so a crash never leaves a
// truncated save.
func (s *FileStore) Save(ctx context.Context, data *Data) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(data.PlayerID)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode save: %w", err)
	}
	tmp, err := os.CreateTemp(s.dir, data.PlayerID+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

// Load reads the player's save.
func (s *FileStore) Load(ctx context.Context, playerID string) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(playerID)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}
	return &d, nil
}
