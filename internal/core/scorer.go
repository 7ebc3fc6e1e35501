package core

import (
	"github.com/mikey/phish-scan/internal/utils"
	"github.com/mikey/phish-scan/internal/watchlist"
	"go.uber.org/zap"
)

// Watchlists groups the substring checkers used by the scorer
type Watchlists struct {
	Senders     *watchlist.Checker
	Attachments *watchlist.Checker
}

// Scorer applies the weighted rule set to email records
type Scorer struct {
	rules      *RuleSet
	watchlists Watchlists
	text       *utils.TextProcessor
	logger     *zap.Logger
}

// NewScorer creates a new scorer
func NewScorer(rules *RuleSet, watchlists Watchlists, text *utils.TextProcessor, logger *zap.Logger) *Scorer {
	return &Scorer{
		rules:      rules,
		watchlists: watchlists,
		text:       text,
		logger:     logger,
	}
}

// Score computes the weighted phishing score of a record. It reads the record
// and the rule set only, so repeated calls give the same verdict.
func (s *Scorer) Score(record EmailRecord) Verdict {
	weights := s.rules.Weights()
	score := 0
	var matched []string

	text := s.text.LowerField(record["text"])
	for _, rule := range s.rules.PhishingRules() {
		if rule.MatchString(text) {
			score += weights.Text
			matched = append(matched, "text:"+rule.Source)
		}
	}

	urlHits := 0
	for _, rule := range s.rules.URLRules() {
		if rule.MatchString(text) {
			urlHits++
		}
	}
	if urlHits == 0 {
		// No link at all makes a lure less likely.
		score -= weights.URL
		matched = append(matched, "no-url")
	}

	subject := s.text.LowerField(record["subject"])
	for _, rule := range s.rules.PhishingRules() {
		if rule.MatchString(subject) {
			score += weights.Subject
			matched = append(matched, "subject:"+rule.Source)
		}
	}

	sender := s.text.LowerField(record["sender"])
	if entry, ok := s.watchlists.Senders.Match(sender); ok {
		score += weights.Sender
		matched = append(matched, "sender:"+entry)
	}

	attachment := s.text.LowerField(record["attachment"])
	if entry, ok := s.watchlists.Attachments.Match(attachment); ok {
		score += weights.Attachment
		matched = append(matched, "attachment:"+entry)
	}

	return Verdict{
		IsPhishing: score >= s.rules.Threshold(),
		Score:      score,
		Matched:    matched,
	}
}

// IsPhishing reports whether the record reaches the phishing threshold
func (s *Scorer) IsPhishing(record EmailRecord) bool {
	return s.Score(record).IsPhishing
}
