package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mikey/phish-scan/internal/utils"
	"go.uber.org/zap"
)

// DefaultSuffix selects the entries that hold email records
const DefaultSuffix = ".json"

// ScanOptions holds the entry selection settings
type ScanOptions struct {
	Suffix string
}

// ScanService walks an archive and classifies every selected entry
type ScanService struct {
	opener    ArchiveOpener
	validator *Validator
	scorer    *Scorer
	text      *utils.TextProcessor
	logger    *zap.Logger
	suffix    string
}

// NewScanService creates a new scan service
func NewScanService(
	opener ArchiveOpener,
	validator *Validator,
	scorer *Scorer,
	text *utils.TextProcessor,
	logger *zap.Logger,
	opts ScanOptions,
) *ScanService {
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	return &ScanService{
		opener:    opener,
		validator: validator,
		scorer:    scorer,
		text:      text,
		logger:    logger,
		suffix:    suffix,
	}
}

// NormalizePrefix makes sure the folder prefix ends with a path separator
func NormalizePrefix(prefix string) string {
	if strings.HasSuffix(prefix, "/") {
		return prefix
	}
	return prefix + "/"
}

// Scan classifies the records under prefix in the archive at path.
//
// Entry-level problems are logged, recorded in ScanResult.Skipped and do not
// stop the scan. A container-level failure discards everything counted so
// far: the returned result is empty and the error says why.
func (s *ScanService) Scan(ctx context.Context, path string, prefix string) (*ScanResult, error) {
	prefix = NormalizePrefix(prefix)

	archive, err := s.opener.Open(path)
	if err != nil {
		s.logContainerError(path, err)
		return &ScanResult{}, err
	}
	defer func() {
		if err := archive.Close(); err != nil {
			s.logger.Error("Failed to close archive", zap.String("archive", path), zap.Error(err))
		}
	}()

	s.logger.Debug("Scanning archive",
		zap.String("archive", path),
		zap.String("folder", prefix),
		zap.String("suffix", s.suffix))

	result := &ScanResult{}
	for _, entry := range archive.Entries() {
		if err := ctx.Err(); err != nil {
			err = fmt.Errorf("scan interrupted: %w", err)
			s.logContainerError(path, err)
			return &ScanResult{}, err
		}

		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, s.suffix) {
			continue
		}

		verdict, err := s.processEntry(entry)
		if err != nil {
			if errors.Is(err, ErrInvalidRecord) {
				s.logger.Warn("Entry has invalid data", zap.String("entry", name), zap.Error(err))
			} else {
				s.logger.Warn("Failed to process entry", zap.String("entry", name), zap.Error(err))
			}
			result.Skipped = append(result.Skipped, EntryIssue{Name: name, Reason: err.Error()})
			continue
		}

		s.logger.Debug("Entry scored",
			zap.String("entry", name),
			zap.Int("score", verdict.Score),
			zap.Bool("phishing", verdict.IsPhishing),
			zap.Strings("matched", verdict.Matched))

		if verdict.IsPhishing {
			result.Phishing++
			result.Flagged = append(result.Flagged, name)
		} else {
			result.NonPhishing++
		}
	}

	s.logger.Debug("Scan complete",
		zap.String("archive", path),
		zap.Int("scored", result.Scored()),
		zap.Int("phishing", result.Phishing),
		zap.Int("non_phishing", result.NonPhishing),
		zap.Int("skipped", len(result.Skipped)))

	return result, nil
}

// processEntry reads, decodes, validates and scores one entry. A panic while
// handling the entry is turned into an error so the scan can go on.
func (s *ScanService) processEntry(entry ArchiveEntry) (verdict Verdict, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unexpected error: %v", r)
		}
	}()

	raw, err := readEntry(entry)
	if err != nil {
		return Verdict{}, err
	}

	text, err := s.text.DecodeUTF8(raw)
	if err != nil {
		return Verdict{}, err
	}

	value, err := decodeRecord(text)
	if err != nil {
		s.logger.Debug("Undecodable entry content",
			zap.String("entry", entry.Name()),
			zap.String("preview", s.text.TruncateText(text, 120)))
		return Verdict{}, err
	}

	record, err := s.validator.Validate(value)
	if err != nil {
		return Verdict{}, err
	}

	return s.scorer.Score(record), nil
}

func readEntry(entry ArchiveEntry) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry: %w", err)
	}
	return raw, nil
}

// decodeRecord parses exactly one JSON value. Numbers keep their literal text.
func decodeRecord(text string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("failed to parse JSON: extra data after record")
	}
	return value, nil
}

func (s *ScanService) logContainerError(path string, err error) {
	switch {
	case errors.Is(err, ErrArchiveNotFound):
		s.logger.Error("Archive not found", zap.String("archive", path), zap.Error(err))
	case errors.Is(err, ErrArchiveCorrupt):
		s.logger.Error("File is not a valid zip archive", zap.String("archive", path), zap.Error(err))
	default:
		s.logger.Error("Unexpected error while scanning archive", zap.String("archive", path), zap.Error(err))
	}
}
