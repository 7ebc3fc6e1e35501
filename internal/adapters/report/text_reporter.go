package report

import (
	"fmt"
	"io"

	"github.com/mikey/phish-scan/internal/core"
	"go.uber.org/zap"
)

// TextReporter prints the line-oriented summary: the two counts followed by
// one flagged entry name per line
type TextReporter struct {
	out    io.Writer
	logger *zap.Logger
}

// NewTextReporter creates a new text reporter
func NewTextReporter(out io.Writer, logger *zap.Logger) *TextReporter {
	return &TextReporter{
		out:    out,
		logger: logger,
	}
}

// Report writes the result
func (r *TextReporter) Report(result *core.ScanResult) error {
	if result == nil {
		result = &core.ScanResult{}
	}

	if _, err := fmt.Fprintf(r.out, "Phishing emails: %d\n", result.Phishing); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if _, err := fmt.Fprintf(r.out, "Non-phishing emails: %d\n", result.NonPhishing); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	for _, name := range result.Flagged {
		if _, err := fmt.Fprintln(r.out, name); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	r.logger.Debug("Report written",
		zap.String("format", "text"),
		zap.Int("flagged", len(result.Flagged)))
	return nil
}
