package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"github.com/mathdevth/bananabrix/internal/apperr"
	"github.com/mathdevth/bananabrix/internal/model"
	"github.com/mathdevth/bananabrix/internal/report"
	"github.com/mathdevth/bananabrix/internal/system"
)

// Version is set at build time
var Version = "dev"

// Exit codes.
const (
	exitFailure          = 1
	exitUsage            = 2
	exitModelUnavailable = 3
)

func main() {
	system.InitResourceLimits()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := fang.Execute(
		ctx,
		newRootCmd(),
		fang.WithVersion(Version),
		fang.WithColorSchemeFunc(report.FangColorScheme),
	)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, apperr.ErrCancelled):
		// Ctrl-C during a batch is not a failure.
		return 0
	case apperr.IsUser(err):
		return exitUsage
	case errors.Is(err, model.ErrModelUnavailable):
		return exitModelUnavailable
	default:
		return exitFailure
	}
}
