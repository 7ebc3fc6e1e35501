package factory

import (
	"fmt"
	"io"

	"github.com/mikey/phish-scan/internal/adapters/report"
	"github.com/mikey/phish-scan/internal/config"
	"github.com/mikey/phish-scan/internal/ports"
	"go.uber.org/zap"
)

// ReporterFactory creates reporters based on configuration
type ReporterFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
}

// NewReporterFactory creates a new reporter factory
func NewReporterFactory(cfg *config.Config, logger *zap.Logger, out io.Writer) *ReporterFactory {
	return &ReporterFactory{
		cfg:    cfg,
		logger: logger,
		out:    out,
	}
}

// CreateReporter creates a reporter based on the configured format
func (f *ReporterFactory) CreateReporter() (ports.Reporter, error) {
	format := f.cfg.GetReport().Format

	switch format {
	case "", "text":
		return report.NewTextReporter(f.out, f.logger), nil
	case "json":
		return report.NewJSONReporter(f.out, f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
