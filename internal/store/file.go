package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileStore persists each key as one JSON file under a data directory.
// It survives process restarts the way localStorage survives page
// reloads.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates the data directory if needed
func NewFileStore(dir string, logger *zap.Logger) (*FileStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (fs *FileStore) path(key string) string {
	// Keys are fixed identifiers, but keep path traversal out anyway
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(fs.dir, key+".json")
}

// Get reads and unmarshals the value for key into out. A missing file
// is a normal miss; a corrupt file is logged and treated as a miss so
// the caller's default applies.
func (fs *FileStore) Get(key string, out interface{}) bool {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			fs.logger.Warn("Store read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		fs.logger.Warn("Store value is corrupt, ignoring", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set marshals and writes the value for key. Reports false instead of
// failing the caller on quota or permission errors.
func (fs *FileStore) Set(key string, value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		fs.logger.Warn("Store marshal failed", zap.String("key", key), zap.Error(err))
		return false
	}
	tmp := fs.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		fs.logger.Warn("Store write failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := os.Rename(tmp, fs.path(key)); err != nil {
		fs.logger.Warn("Store rename failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Remove deletes the value for key; removing an absent key succeeds
func (fs *FileStore) Remove(key string) bool {
	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		fs.logger.Warn("Store remove failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
