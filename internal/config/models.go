package config

// Default rule set. The indicator patterns target Russian-language mail:
// urgency, credentials, verification prompts, finance, security threats,
// prizes, blocking threats, insecure links, link references and card numbers.
var (
	DefaultPhishingPatterns = []string{
		`срочно|немедлен|быстр|обязатель`,
		`пароль`,
		`подтвер|провер|требует|нажат|нажм|обнов`,
		`банк|платеж|счет|счёт|финанс`,
		`безопасн|взлом|атак`,
		`приз|выигрыш|побед|лотер`,
		`ограничен|блокир|отмен|отказ`,
		`http://`,
		`ссылк|сайт`,
		`\p{Nd}{16}`,
	}

	DefaultURLPatterns = []string{
		`http://|https://`,
	}

	DefaultSuspiciousSenders = []string{"free", "gmail", "yahoo", "hotmail", "mail", "unknown"}

	DefaultSuspiciousExtensions = []string{".exe", ".bat", ".cmd", ".scr", ".msi", ".js", ".vbs"}
)

// ScanConfig represents the archive scan settings
type ScanConfig struct {
	Folder string
	Suffix string
	Strict bool
}

// RulesConfig represents the pattern rule set
type RulesConfig struct {
	PhishingPatterns     []string
	URLPatterns          []string
	SuspiciousSenders    []string
	SuspiciousExtensions []string
	Threshold            int
}

// WeightsConfig represents the per-signal score weights
type WeightsConfig struct {
	Text       int
	URL        int
	Subject    int
	Sender     int
	Attachment int
}

// ReportConfig represents the report output settings
type ReportConfig struct {
	Format string
}

// GetScan returns the scan configuration
func (c *Config) GetScan() ScanConfig {
	return ScanConfig{
		Folder: c.GetString("scan.folder"),
		Suffix: c.GetString("scan.suffix"),
		Strict: c.GetBool("scan.strict"),
	}
}

// GetRules returns the rule set configuration
func (c *Config) GetRules() RulesConfig {
	return RulesConfig{
		PhishingPatterns:     c.GetStringSlice("rules.phishing_patterns"),
		URLPatterns:          c.GetStringSlice("rules.url_patterns"),
		SuspiciousSenders:    c.GetStringSlice("rules.suspicious_senders"),
		SuspiciousExtensions: c.GetStringSlice("rules.suspicious_extensions"),
		Threshold:            c.GetInt("rules.threshold"),
	}
}

// GetWeights returns the weights configuration
func (c *Config) GetWeights() WeightsConfig {
	return WeightsConfig{
		Text:       c.GetInt("weights.text"),
		URL:        c.GetInt("weights.url"),
		Subject:    c.GetInt("weights.subject"),
		Sender:     c.GetInt("weights.sender"),
		Attachment: c.GetInt("weights.attachment"),
	}
}

// GetReport returns the report configuration
func (c *Config) GetReport() ReportConfig {
	return ReportConfig{
		Format: c.GetString("report.format"),
	}
}
