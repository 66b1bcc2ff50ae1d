// Package app implements the application layer for kit.
package app

import (
	"context"

	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/core/ports"
	"github.com/humotica/kit/internal/engine/gateway"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	registry  ports.Registry
	gateway   *gateway.Gateway
	installer ports.Installer
	advisory  ports.AdvisoryClient
	fetcher   ports.RegistryFetcher
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	registry ports.Registry,
	gw *gateway.Gateway,
	installer ports.Installer,
	advisory ports.AdvisoryClient,
	fetcher ports.RegistryFetcher,
	log ports.Logger,
) *App {
	return &App{
		registry:  registry,
		gateway:   gw,
		installer: installer,
		advisory:  advisory,
		fetcher:   fetcher,
		logger:    log,
	}
}

// InstallOptions configuration for the Install method.
type InstallOptions struct {
	// Force proceeds with installation even when validation fails.
	Force bool
}

// DependencyStatus reports whether a declared dependency name resolves to a
// registry entry. Absence is informational, not an error.
type DependencyStatus struct {
	Name  string
	Known bool
}

// InstallResult is everything the CLI needs to report an install attempt.
type InstallResult struct {
	Package      *domain.Package
	Verdict      domain.Verdict
	Dependencies []DependencyStatus
	Installed    bool
}

// Install validates the named package and, if it clears policy (or Force is
// set), hands it off to the installer. A blocked install returns the result
// alongside ErrInstallBlocked so the CLI can explain the verdict.
func (a *App) Install(ctx context.Context, name string, opts InstallOptions) (*InstallResult, error) {
	pkg, ok := a.registry.Get(name)
	if !ok {
		return nil, notFound(name)
	}

	verdict := a.gateway.Validate(ctx, pkg, "install")

	res := &InstallResult{Package: pkg, Verdict: verdict}
	for _, dep := range pkg.Dependencies {
		_, known := a.registry.Get(dep)
		res.Dependencies = append(res.Dependencies, DependencyStatus{Name: dep, Known: known})
	}

	if !verdict.Valid {
		if !opts.Force {
			return res, domain.ErrInstallBlocked
		}
		a.logger.Warn("validation failed, proceeding due to force override")
	}

	if pkg.PyPI != "" {
		if err := a.installer.Install(ctx, pkg.PyPI); err != nil {
			return res, err
		}
		res.Installed = true
	}

	return res, nil
}

// Search returns packages matching the query by name or description.
func (a *App) Search(query string) []*domain.Package {
	return a.registry.Search(query)
}

// List returns every registry package. Sorting is left to the caller.
func (a *App) List() []*domain.Package {
	return a.registry.ListAll()
}

// Info returns the named package, or ErrPackageNotFound.
func (a *App) Info(name string) (*domain.Package, error) {
	pkg, ok := a.registry.Get(name)
	if !ok {
		return nil, notFound(name)
	}
	return pkg, nil
}

// notFound annotates ErrPackageNotFound with the normalized name. Wrapping
// first keeps the sentinel in the unwrap chain for errors.Is.
func notFound(name string) error {
	err := zerr.Wrap(domain.ErrPackageNotFound, "no registry entry matched")
	return zerr.With(err, "package", domain.NormalizeName(name))
}

// Update refreshes the registry from the remote source. It reports whether
// the registry is up to date; failures never propagate as errors.
func (a *App) Update(ctx context.Context) bool {
	return a.registry.Refresh(ctx)
}

// CheckText asks the advisory service for an opinion on arbitrary text.
func (a *App) CheckText(ctx context.Context, text string) domain.InjectionCheck {
	return a.gateway.CheckInjection(ctx, text)
}

// HealthCheck is the outcome of one doctor probe.
type HealthCheck struct {
	Name   string
	OK     bool
	Detail string
}

// Doctor probes the advisory endpoint and the remote registry source
// concurrently. Probe failures are recorded, never returned.
func (a *App) Doctor(ctx context.Context) []HealthCheck {
	checks := make([]HealthCheck, 2)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if a.advisory.Available(gctx) {
			checks[0] = HealthCheck{Name: "advisory service", OK: true}
		} else {
			checks[0] = HealthCheck{Name: "advisory service", Detail: "unreachable"}
		}
		return nil
	})

	g.Go(func() error {
		if _, err := a.fetcher.Fetch(gctx); err != nil {
			checks[1] = HealthCheck{Name: "registry source", Detail: "unreachable"}
		} else {
			checks[1] = HealthCheck{Name: "registry source", OK: true}
		}
		return nil
	})

	// Probes never return errors; Wait only joins the goroutines.
	_ = g.Wait()

	return checks
}
