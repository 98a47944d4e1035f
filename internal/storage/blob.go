package storage

import (
	"errors"
	"io"
)

var ErrEmptyName = errors.New("storage: empty name")

// Saver persists a named artifact such as an exported responses.csv or a
// class report. It returns where the artifact ended up.
type Saver interface {
	Save(name, mime string, data []byte) (string, error)
}

// Store is a Saver that can also read artifacts back.
type Store interface {
	Saver
	Open(name string) (io.ReadCloser, error)
}
