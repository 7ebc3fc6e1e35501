package core

import (
	"io"
)

// ArchiveEntry is a named blob inside a container
type ArchiveEntry interface {
	// Name returns the entry path inside the container
	Name() string

	// Open returns a reader for the entry contents
	Open() (io.ReadCloser, error)
}

// Archive is an opened container
type Archive interface {
	// Entries returns the entries in container listing order
	Entries() []ArchiveEntry

	// Close releases the container
	Close() error
}

// ArchiveOpener opens containers by path
type ArchiveOpener interface {
	// Open opens the container, classifying failures as ErrArchiveNotFound
	// or ErrArchiveCorrupt where possible
	Open(path string) (Archive, error)
}
