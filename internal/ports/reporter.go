package ports

import (
	"github.com/mikey/phish-scan/internal/core"
)

// Reporter defines the interface for presenting scan results
type Reporter interface {
	// Report writes the scan result
	Report(result *core.ScanResult) error
}
