// Package main is the entry point for the hdrview image viewer.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdrview/cmd/hdrview/commands"
	"go.trai.ch/hdrview/internal/app"
	"go.trai.ch/hdrview/internal/core/domain"
	_ "go.trai.ch/hdrview/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// Per-shader diagnostics were already logged.
		if errors.Is(err, domain.ErrShaderCompileAll) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
