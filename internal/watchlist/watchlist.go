package watchlist

import (
	"strings"

	"go.uber.org/zap"
)

// Checker reports whether a value contains any of a fixed set of suspicious
// substrings, such as free-mail sender domains or executable extensions.
type Checker struct {
	name    string
	entries []string
	logger  *zap.Logger
}

// NewChecker creates a new watchlist checker
func NewChecker(name string, entries []string, logger *zap.Logger) *Checker {
	normalized := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		normalized = append(normalized, entry)
	}

	if len(normalized) > 0 && logger != nil {
		logger.Debug("Initialized watchlist",
			zap.String("watchlist", name),
			zap.Strings("entries", normalized))
	}

	return &Checker{
		name:    name,
		entries: normalized,
		logger:  logger,
	}
}

// Match returns the first entry found anywhere in value, which is expected to
// be lower-cased already.
func (c *Checker) Match(value string) (string, bool) {
	if value == "" {
		return "", false
	}

	for _, entry := range c.entries {
		if strings.Contains(value, entry) {
			if c.logger != nil {
				c.logger.Debug("Watchlist hit",
					zap.String("watchlist", c.name),
					zap.String("entry", entry),
					zap.String("value", value))
			}
			return entry, true
		}
	}

	return "", false
}
