package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikey/phish-scan/internal/config"
	"github.com/mikey/phish-scan/internal/core"
	"github.com/mikey/phish-scan/internal/di"
	"github.com/mikey/phish-scan/internal/ports"
	"github.com/spf13/pflag"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

func main() {
	flags, err := di.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Build the dependency injection container
	container, err := di.BuildContainer(flags, os.Stdout)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	exitCode := 0
	if err := container.Invoke(func(p runParams) error {
		code, err := run(p)
		exitCode = code
		return err
	}); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// runParams are the dependencies of run
type runParams struct {
	dig.In

	Logger   *zap.Logger
	Config   *config.Config
	Flags    *di.CLIFlags
	Service  *core.ScanService
	Reporter ports.Reporter
}

// run scans the archive and prints the report. The returned code is the
// process exit status.
func run(p runParams) (int, error) {
	defer p.Logger.Sync()

	scanCfg := p.Config.GetScan()
	if scanCfg.Folder == "" {
		return 1, fmt.Errorf("%w: pass --folder/-f", core.ErrMissingFolder)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, scanErr := p.Service.Scan(ctx, p.Flags.ArchivePath, scanCfg.Folder)

	// Zero counts are still reported when the archive could not be scanned.
	if err := p.Reporter.Report(result); err != nil {
		return 1, err
	}

	if scanErr != nil && scanCfg.Strict {
		return 2, nil
	}
	return 0, nil
}
