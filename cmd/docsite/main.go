package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	docsite "github.com/alnah/go-docsite"
	"github.com/alnah/go-docsite/internal/assets"
	"github.com/alnah/go-docsite/internal/config"
	"github.com/alnah/go-docsite/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(ExitSuccess)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Println("docsite " + Version)
		os.Exit(ExitSuccess)
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	logger := newLogger(flags.verbose, flags.quiet)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flags, args, logger, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v%s\n", err, hintFor(err))
		os.Exit(exitCodeFor(err))
	}
}

// newLogger builds the CLI logger. Verbose enables debug output, quiet
// keeps errors only, and the default shows info and above.
func newLogger(verbose, quiet bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	switch {
	case verbose:
		cfg = zap.NewDevelopmentConfig()
	case quiet:
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// hintFor appends an actionable hint to known error classes.
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, docsite.ErrMissingSummary), errors.Is(err, docsite.ErrSummaryParse):
		return hints.ForMissingSummary()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound([]string{defaultStyle})
	case errors.Is(err, docsite.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
