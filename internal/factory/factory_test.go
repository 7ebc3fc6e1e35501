package factory

import (
	"bytes"
	"testing"

	"github.com/mikey/phish-scan/internal/adapters/report"
	"github.com/mikey/phish-scan/internal/config"
	"go.uber.org/zap/zaptest"
)

func TestReporterFactory(t *testing.T) {
	tests := []struct {
		format string
		check  func(interface{}) bool
		fails  bool
	}{
		{"text", func(r interface{}) bool { _, ok := r.(*report.TextReporter); return ok }, false},
		{"json", func(r interface{}) bool { _, ok := r.(*report.JSONReporter); return ok }, false},
		{"xml", nil, true},
	}

	for _, tt := range tests {
		cfg := config.NewFromViper(config.NewEmptyViper())
		cfg.Set("report.format", tt.format)

		r, err := NewReporterFactory(cfg, zaptest.NewLogger(t), &bytes.Buffer{}).CreateReporter()
		if tt.fails {
			if err == nil {
				t.Errorf("%s: expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.format, err)
			continue
		}
		if !tt.check(r) {
			t.Errorf("%s: unexpected reporter %T", tt.format, r)
		}
	}
}

func TestRulesFactory(t *testing.T) {
	cfg := config.NewFromViper(config.NewEmptyViper())
	f := NewRulesFactory(cfg, zaptest.NewLogger(t))

	rules, err := f.CreateRuleSet()
	if err != nil {
		t.Fatalf("CreateRuleSet: %v", err)
	}
	if len(rules.PhishingRules()) != 10 || len(rules.URLRules()) != 1 {
		t.Fatalf("rules = %d/%d", len(rules.PhishingRules()), len(rules.URLRules()))
	}
	if rules.Threshold() != 3 || rules.Weights().Attachment != 2 {
		t.Fatalf("threshold %d weights %+v", rules.Threshold(), rules.Weights())
	}

	lists := f.CreateWatchlists()
	if _, ok := lists.Senders.Match("x@yahoo.com"); !ok {
		t.Fatal("expected yahoo sender to match")
	}
	if _, ok := lists.Attachments.Match("a.msi"); !ok {
		t.Fatal("default watchlists not applied")
	}
}

func TestRulesFactoryRejectsBadConfig(t *testing.T) {
	cfg := config.NewFromViper(config.NewEmptyViper())
	cfg.Set("rules.phishing_patterns", []string{"[unclosed"})
	if _, err := NewRulesFactory(cfg, zaptest.NewLogger(t)).CreateRuleSet(); err == nil {
		t.Fatal("expected compile error")
	}

	cfg.Set("rules.phishing_patterns", []string{})
	if _, err := NewRulesFactory(cfg, zaptest.NewLogger(t)).CreateRuleSet(); err == nil {
		t.Fatal("expected error for empty pattern list")
	}
}
