package di

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/phish-scan/internal/adapters/archive"
	"github.com/mikey/phish-scan/internal/config"
	"github.com/mikey/phish-scan/internal/core"
	"github.com/mikey/phish-scan/internal/factory"
	"github.com/mikey/phish-scan/internal/logging"
	"github.com/mikey/phish-scan/internal/ports"
	"github.com/mikey/phish-scan/internal/utils"
)

// CLIFlags contains all command line flags
type CLIFlags struct {
	ArchivePath string
	Folder      string
	Format      string
	ConfigFile  string
	Verbose     bool
	JSONLog     bool
	Strict      bool
}

// usageOutput receives the usage text. Parse errors are returned, not printed.
var usageOutput io.Writer = os.Stderr

// ParseFlags parses command line arguments into a CLIFlags struct
func ParseFlags(args []string) (*CLIFlags, error) {
	flags := &CLIFlags{}

	fs := pflag.NewFlagSet("phish-scan", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		fmt.Fprintf(usageOutput, "Usage: phish-scan [flags] <archive.zip>\n\nClassifies email records in a zip archive as phishing or legitimate.\n\n")
		fmt.Fprint(usageOutput, fs.FlagUsages())
	}

	fs.StringVarP(&flags.Folder, "folder", "f", "", "Folder with email records inside the archive (required)")
	fs.StringVar(&flags.Format, "format", "", "Report format (text, json)")
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file")
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.BoolVar(&flags.Strict, "strict", false, "Exit with status 2 when the archive cannot be scanned")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("expected exactly one archive path, got %d arguments", fs.NArg())
	}
	flags.ArchivePath = fs.Arg(0)

	return flags, nil
}

// BuildContainer creates and configures a dependency injection container.
// Reports are written to out.
func BuildContainer(flags *CLIFlags, out io.Writer) (*dig.Container, error) {
	container := dig.New()

	// Register flags and output
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() io.Writer { return out }); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(newConfig); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewRulesFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewReporterFactory); err != nil {
		return nil, err
	}

	// Register rule set and watchlists
	if err := container.Provide(func(f *factory.RulesFactory) (*core.RuleSet, error) {
		return f.CreateRuleSet()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.RulesFactory) core.Watchlists {
		return f.CreateWatchlists()
	}); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register archive opener
	if err := container.Provide(func(logger *zap.Logger) core.ArchiveOpener {
		return archive.NewZipOpener(logger)
	}); err != nil {
		return nil, err
	}

	// Register validator and scorer
	if err := container.Provide(core.NewValidator); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewScorer); err != nil {
		return nil, err
	}

	// Register scan service
	if err := container.Provide(func(cfg *config.Config) core.ScanOptions {
		return core.ScanOptions{Suffix: cfg.GetScan().Suffix}
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewScanService); err != nil {
		return nil, err
	}

	// Register reporter
	if err := container.Provide(func(f *factory.ReporterFactory) (ports.Reporter, error) {
		return f.CreateReporter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// newConfig loads the config file named by --config, or the first one found
// on the search path, and lets explicit flags override it
func newConfig(flags *CLIFlags) (*config.Config, error) {
	var cfg *config.Config
	if flags.ConfigFile != "" {
		var err error
		cfg, err = config.NewFromFile(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		cfg, err = config.New()
		if err != nil {
			return nil, err
		}
	}

	if flags.Folder != "" {
		cfg.Set("scan.folder", flags.Folder)
	}
	if flags.Format != "" {
		cfg.Set("report.format", flags.Format)
	}
	if flags.Strict {
		cfg.Set("scan.strict", true)
	}
	if flags.Verbose {
		cfg.Set("logging.level", "debug")
	}
	if flags.JSONLog {
		cfg.Set("logging.format", "json")
	}

	return cfg, nil
}
