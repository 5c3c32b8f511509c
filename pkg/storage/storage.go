// Package storage persists uploaded images under a publicly served directory.
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store persists raw bytes under a folder hint and returns the public path.
type Store interface {
	Save(ctx context.Context, data []byte, filename, folder string) (string, error)
}

var whitespace = regexp.MustCompile(`\s+`)

// LocalStore writes files below Root; Root itself is what the HTTP server serves.
type LocalStore struct {
	Root string
	now  func() time.Time
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{Root: root, now: time.Now}
}

func (s *LocalStore) Save(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := strings.ToLower(whitespace.ReplaceAllString(filepath.Base(filename), "-"))
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if ext == "" {
		ext = ".bin"
	}
	if base == "" || base == "." {
		base = "file"
	}

	now := time.Now
	if s.now != nil {
		now = s.now
	}
	file := fmt.Sprintf("%d-%s-%s%s", now().UnixMilli(), uuid.NewString()[:8], base, ext)

	folder = strings.Trim(path.Clean("/"+filepath.ToSlash(folder)), "/")
	dir := filepath.Join(s.Root, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/" + path.Join(folder, file), nil
}
