package core

import "errors"

var (
	// ErrArchiveNotFound is returned when the archive path does not exist
	ErrArchiveNotFound = errors.New("archive not found")
	// ErrArchiveCorrupt is returned when the file is not a readable archive
	ErrArchiveCorrupt = errors.New("archive is corrupt or not a zip file")
	// ErrInvalidRecord is returned when a decoded entry lacks the required shape
	ErrInvalidRecord = errors.New("invalid email record")
	// ErrMissingFolder is returned when no target folder was given
	ErrMissingFolder = errors.New("target folder is required")
)
