package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/mikey/phish-scan/internal/core"
	"go.uber.org/zap"
)

// ZipOpener opens zip containers
type ZipOpener struct {
	logger *zap.Logger
}

// NewZipOpener creates a new zip opener
func NewZipOpener(logger *zap.Logger) *ZipOpener {
	return &ZipOpener{logger: logger}
}

// Open opens the zip file at path and reads its central directory
func (o *ZipOpener) Open(path string) (core.Archive, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %w", core.ErrArchiveNotFound, err)
		case errors.Is(err, zip.ErrFormat), errors.Is(err, zip.ErrAlgorithm), errors.Is(err, zip.ErrChecksum):
			return nil, fmt.Errorf("%w: %s: %w", core.ErrArchiveCorrupt, path, err)
		default:
			return nil, fmt.Errorf("failed to open archive %s: %w", path, err)
		}
	}

	entries := make([]core.ArchiveEntry, 0, len(r.File))
	for _, f := range r.File {
		entries = append(entries, zipEntry{f: f})
	}

	o.logger.Debug("Opened zip archive", zap.String("archive", path), zap.Int("entries", len(entries)))

	return &zipArchive{reader: r, entries: entries}, nil
}

type zipArchive struct {
	reader  *zip.ReadCloser
	entries []core.ArchiveEntry
}

func (a *zipArchive) Entries() []core.ArchiveEntry {
	return a.entries
}

func (a *zipArchive) Close() error {
	return a.reader.Close()
}

type zipEntry struct {
	f *zip.File
}

func (e zipEntry) Name() string {
	return e.f.Name
}

func (e zipEntry) Open() (io.ReadCloser, error) {
	return e.f.Open()
}
