package core

// RequiredFields lists the keys every email record must carry
var RequiredFields = []string{"id", "datetime", "sender", "subject", "attachment", "text"}

// EmailRecord is a decoded email sample. Values keep their JSON types and may
// be nil; scoring reads them through the permissive text accessors.
type EmailRecord map[string]interface{}

// Verdict represents the outcome of scoring one record
type Verdict struct {
	IsPhishing bool
	Score      int
	Matched    []string
}

// EntryIssue describes an archive entry that was skipped
type EntryIssue struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ScanResult represents the aggregated outcome of an archive scan
type ScanResult struct {
	Phishing    int
	NonPhishing int
	Flagged     []string
	Skipped     []EntryIssue
}

// Scored returns the number of entries that reached the scorer
func (r *ScanResult) Scored() int {
	return r.Phishing + r.NonPhishing
}
