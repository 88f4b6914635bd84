package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore เซฟลง public/uploads แล้วให้ gin serve ผ่าน /uploads
type LocalStore struct {
	BaseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	path := filepath.Join(s.BaseDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}
