// Package fs provides a filesystem-backed implementation of core.Storage.
// Each slot key maps to one file under a root directory; writes are atomic
// (temp file + rename) so a crashed write never clobbers the prior blob.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/cookbook/pkg/core"
)

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string
	AutoInit  bool // create the root directory if missing
	MustExist bool
	Logger    *slog.Logger
	Ext       string // appended to slot keys on disk, e.g. ".json"
}

// Store implements core.Storage using one file per slot.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// NewStore creates a filesystem store rooted at config.Path.
// It performs no I/O until Initialize or the first Read/Write.
func NewStore(config Config) *Store {
	if config.Ext == "" {
		config.Ext = ".json"
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize ensures the root directory is ready.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}
	if s.config.AutoInit {
		if err := os.MkdirAll(s.Path, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	return nil
}

// Read returns the blob stored under key. ok is false when the slot file
// does not exist.
func (s *Store) Read(ctx context.Context, key string) ([]byte, bool, error) {
	path, err := s.slotPath(key)
	if err != nil {
		return nil, false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Write atomically replaces the blob under key.
func (s *Store) Write(ctx context.Context, key string, data []byte) error {
	path, err := s.slotPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	s.config.Logger.Debug("writing slot", "key", key, "path", path, "bytes", len(data))
	return writeFileAtomic(path, data, 0644)
}

// Keys returns the slot keys under the root matching the given glob
// pattern (doublestar syntax; "**" matches everything).
func (s *Store) Keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(s.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, tempFilePrefix) || !strings.HasSuffix(name, s.config.Ext) {
			return nil
		}

		relPath, err := filepath.Rel(s.Path, path)
		if err != nil {
			return err
		}
		key := strings.TrimSuffix(filepath.ToSlash(relPath), s.config.Ext)

		ok, err := doublestar.Match(pattern, key)
		if err != nil {
			return err
		}
		if ok {
			keys = append(keys, key)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Store) slotPath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("slot key must not be empty")
	}
	if strings.Contains(key, "..") || filepath.IsAbs(key) {
		return "", fmt.Errorf("invalid slot key: %s", key)
	}
	return filepath.Join(s.Path, key+s.config.Ext), nil
}

var _ core.Storage = (*Store)(nil)
