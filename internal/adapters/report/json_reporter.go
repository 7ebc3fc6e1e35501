package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mikey/phish-scan/internal/core"
	"go.uber.org/zap"
)

// jsonReport is the wire form of a scan result
type jsonReport struct {
	Phishing    int               `json:"phishing"`
	NonPhishing int               `json:"non_phishing"`
	Flagged     []string          `json:"flagged"`
	Skipped     []core.EntryIssue `json:"skipped"`
}

// JSONReporter writes the result as a single JSON object
type JSONReporter struct {
	out    io.Writer
	logger *zap.Logger
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(out io.Writer, logger *zap.Logger) *JSONReporter {
	return &JSONReporter{
		out:    out,
		logger: logger,
	}
}

// Report writes the result
func (r *JSONReporter) Report(result *core.ScanResult) error {
	if result == nil {
		result = &core.ScanResult{}
	}

	payload := jsonReport{
		Phishing:    result.Phishing,
		NonPhishing: result.NonPhishing,
		Flagged:     result.Flagged,
		Skipped:     result.Skipped,
	}
	if payload.Flagged == nil {
		payload.Flagged = []string{}
	}
	if payload.Skipped == nil {
		payload.Skipped = []core.EntryIssue{}
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	r.logger.Debug("Report written",
		zap.String("format", "json"),
		zap.Int("flagged", len(result.Flagged)))
	return nil
}
