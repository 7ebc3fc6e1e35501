package factory

import (
	"fmt"

	"github.com/mikey/phish-scan/internal/config"
	"github.com/mikey/phish-scan/internal/core"
	"github.com/mikey/phish-scan/internal/watchlist"
	"go.uber.org/zap"
)

// RulesFactory builds the rule set and watchlists from configuration
type RulesFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewRulesFactory creates a new rules factory
func NewRulesFactory(cfg *config.Config, logger *zap.Logger) *RulesFactory {
	return &RulesFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateRuleSet compiles the configured patterns
func (f *RulesFactory) CreateRuleSet() (*core.RuleSet, error) {
	rulesCfg := f.cfg.GetRules()
	weightsCfg := f.cfg.GetWeights()

	if len(rulesCfg.PhishingPatterns) == 0 {
		return nil, fmt.Errorf("no phishing patterns configured")
	}

	rules, err := core.NewRuleSet(
		rulesCfg.PhishingPatterns,
		rulesCfg.URLPatterns,
		core.Weights{
			Text:       weightsCfg.Text,
			URL:        weightsCfg.URL,
			Subject:    weightsCfg.Subject,
			Sender:     weightsCfg.Sender,
			Attachment: weightsCfg.Attachment,
		},
		rulesCfg.Threshold,
	)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("Compiled rule set",
		zap.Int("phishing_patterns", len(rulesCfg.PhishingPatterns)),
		zap.Int("url_patterns", len(rulesCfg.URLPatterns)),
		zap.Int("threshold", rulesCfg.Threshold))

	return rules, nil
}

// CreateWatchlists builds the sender and attachment checkers
func (f *RulesFactory) CreateWatchlists() core.Watchlists {
	rulesCfg := f.cfg.GetRules()
	return core.Watchlists{
		Senders:     watchlist.NewChecker("senders", rulesCfg.SuspiciousSenders, f.logger),
		Attachments: watchlist.NewChecker("attachments", rulesCfg.SuspiciousExtensions, f.logger),
	}
}
