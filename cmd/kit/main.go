// Package main is the entry point for the kit package gatekeeper.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/humotica/kit/cmd/kit/commands"
	"github.com/humotica/kit/internal/app"
	"github.com/humotica/kit/internal/core/domain"
	_ "github.com/humotica/kit/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// Blocked installs and registry misses are reported in full by the
		// command itself; the exit code is the only signal left to send.
		if errors.Is(err, domain.ErrInstallBlocked) || errors.Is(err, domain.ErrPackageNotFound) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
