package core

import (
	"fmt"
	"regexp"
)

// Weights holds the score contribution of each signal
type Weights struct {
	Text       int
	URL        int
	Subject    int
	Sender     int
	Attachment int
}

// DefaultWeights returns the stock weights
func DefaultWeights() Weights {
	return Weights{
		Text:       1,
		URL:        1,
		Subject:    1,
		Sender:     1,
		Attachment: 2,
	}
}

// DefaultThreshold is the score at which a record is considered phishing
const DefaultThreshold = 3

// Rule is a compiled, case-insensitive pattern
type Rule struct {
	Source  string
	pattern *regexp.Regexp
}

// MatchString reports whether the rule matches anywhere in text
func (r Rule) MatchString(text string) bool {
	return r.pattern.MatchString(text)
}

// RuleSet is the immutable pattern rule set shared by all scoring calls
type RuleSet struct {
	phishing  []Rule
	urls      []Rule
	weights   Weights
	threshold int
}

// NewRuleSet compiles the indicator and URL-detection patterns
func NewRuleSet(phishingPatterns, urlPatterns []string, weights Weights, threshold int) (*RuleSet, error) {
	phishing, err := compileRules(phishingPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to compile phishing patterns: %w", err)
	}
	urls, err := compileRules(urlPatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to compile URL patterns: %w", err)
	}

	return &RuleSet{
		phishing:  phishing,
		urls:      urls,
		weights:   weights,
		threshold: threshold,
	}, nil
}

func compileRules(patterns []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		rules = append(rules, Rule{Source: p, pattern: re})
	}
	return rules, nil
}

// PhishingRules returns the ordered indicator rules
func (rs *RuleSet) PhishingRules() []Rule {
	return rs.phishing
}

// URLRules returns the URL-detection rules
func (rs *RuleSet) URLRules() []Rule {
	return rs.urls
}

// Weights returns the signal weights
func (rs *RuleSet) Weights() Weights {
	return rs.weights
}

// Threshold returns the phishing decision threshold
func (rs *RuleSet) Threshold() int {
	return rs.threshold
}
