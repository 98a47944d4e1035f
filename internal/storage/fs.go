package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) path(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	// Rooting before Clean keeps ".." from leaving base.
	clean := filepath.Clean("/" + name)
	if clean == "/" {
		return "", fmt.Errorf("storage: invalid name %q", name)
	}
	return filepath.Join(s.base, clean), nil
}

// Save writes data atomically through a temp file in the target dir. The
// mime type is not recorded on disk.
func (s *FSStore) Save(name, _ string, data []byte) (string, error) {
	dst, err := s.path(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".save-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}
	return dst, nil
}

func (s *FSStore) Open(name string) (io.ReadCloser, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}
