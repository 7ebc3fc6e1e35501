package watchlist

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestChecker(t *testing.T) {
	c := NewChecker("senders", []string{" Gmail ", "mail", "", "unknown"}, zaptest.NewLogger(t))

	if got := c.entries; len(got) != 3 || got[0] != "gmail" {
		t.Fatalf("entries = %v", got)
	}

	tests := []struct {
		value string
		entry string
		ok    bool
	}{
		{"someone@gmail.com", "gmail", true},
		{"info@hotmail.com", "mail", true},
		{"unknown sender", "unknown", true},
		{"boss@company.ru", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		entry, ok := c.Match(tt.value)
		if ok != tt.ok || entry != tt.entry {
			t.Errorf("Match(%q) = %q, %t; want %q, %t", tt.value, entry, ok, tt.entry, tt.ok)
		}
	}
}

func TestCheckerNilLogger(t *testing.T) {
	c := NewChecker("attachments", []string{".exe"}, nil)
	if entry, ok := c.Match("invoice.pdf.exe"); !ok || entry != ".exe" {
		t.Fatalf("Match = %q, %t", entry, ok)
	}
}
