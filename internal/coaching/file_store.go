package coaching

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileStore persists UserProgress as a YAML file for single-device use.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored progress. A missing file means no progress yet; a
// file that cannot be decoded is treated the same way so that corrupt state
// recovers to the default instead of wedging the caller.
func (s *FileStore) Load(_ context.Context) (UserProgress, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return UserProgress{}, false, nil
	}
	if err != nil {
		return UserProgress{}, false, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	var progress UserProgress
	if err := yaml.Unmarshal(data, &progress); err != nil {
		slog.Default().Warn("discarding unreadable progress file",
			slog.String("path", s.path),
			slog.Any("error", err),
		)
		return UserProgress{}, false, nil
	}
	return progress, true, nil
}

// Save writes the progress, creating parent directories as needed.
func (s *FileStore) Save(_ context.Context, progress UserProgress) error {
	data, err := yaml.Marshal(progress)
	if err != nil {
		return fmt.Errorf("yaml.Marshal(progress) > %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}
