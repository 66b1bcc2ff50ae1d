package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/humotica/kit/internal/app"
	"github.com/humotica/kit/internal/core/domain"
	"github.com/humotica/kit/internal/core/ports/mocks"
	"github.com/humotica/kit/internal/engine/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app       *app.App
	registry  *mocks.MockRegistry
	advisory  *mocks.MockAdvisoryClient
	installer *mocks.MockInstaller
	fetcher   *mocks.MockRegistryFetcher
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		registry:  mocks.NewMockRegistry(ctrl),
		advisory:  mocks.NewMockAdvisoryClient(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		fetcher:   mocks.NewMockRegistryFetcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}

	f.app = app.New(
		f.registry,
		gateway.New(f.advisory),
		f.installer,
		f.advisory,
		f.fetcher,
		f.logger,
	)
	return f
}

func trustedPackage() *domain.Package {
	return &domain.Package{
		Name:          "requests",
		Version:       "2.31.0",
		TrustScore:    0.95,
		JISCompliant:  true,
		SNAFTVerified: true,
		PyPI:          "requests",
		Dependencies:  []string{"urllib3", "left-pad"},
	}
}

func untrustedPackage() *domain.Package {
	return &domain.Package{
		Name:         "shady-tool",
		Version:      "0.1.0",
		TrustScore:   0.2,
		PyPI:         "shady-tool",
		Dependencies: []string{},
	}
}

func TestApp_Install(t *testing.T) {
	t.Run("valid package is installed", func(t *testing.T) {
		f := newFixture(t)
		pkg := trustedPackage()

		f.registry.EXPECT().Get("requests").Return(pkg, true)
		f.registry.EXPECT().Get("urllib3").Return(&domain.Package{Name: "urllib3"}, true)
		f.registry.EXPECT().Get("left-pad").Return(nil, false)
		f.advisory.EXPECT().Ask(gomock.Any(), "[CHECK] install requests", 100).Return("OK", true)
		f.installer.EXPECT().Install(gomock.Any(), "requests").Return(nil)

		res, err := f.app.Install(context.Background(), "requests", app.InstallOptions{})
		require.NoError(t, err)

		assert.True(t, res.Verdict.Valid)
		assert.True(t, res.Installed)
		require.Len(t, res.Dependencies, 2)
		assert.Equal(t, app.DependencyStatus{Name: "urllib3", Known: true}, res.Dependencies[0])
		assert.Equal(t, app.DependencyStatus{Name: "left-pad", Known: false}, res.Dependencies[1])
	})

	t.Run("unknown package is not found", func(t *testing.T) {
		f := newFixture(t)
		f.registry.EXPECT().Get("nonesuch").Return(nil, false)

		res, err := f.app.Install(context.Background(), "nonesuch", app.InstallOptions{})
		assert.Nil(t, res)
		assert.True(t, errors.Is(err, domain.ErrPackageNotFound))
	})

	t.Run("blocked package returns verdict with ErrInstallBlocked", func(t *testing.T) {
		f := newFixture(t)
		pkg := untrustedPackage()

		f.registry.EXPECT().Get("shady-tool").Return(pkg, true)
		f.advisory.EXPECT().Ask(gomock.Any(), gomock.Any(), 100).Return("", false)

		res, err := f.app.Install(context.Background(), "shady-tool", app.InstallOptions{})
		assert.True(t, errors.Is(err, domain.ErrInstallBlocked))

		require.NotNil(t, res)
		assert.False(t, res.Verdict.Valid)
		assert.False(t, res.Installed)
		assert.Len(t, res.Verdict.Warnings, 3)
		assert.Equal(t, gateway.AdvisoryOffline, res.Verdict.Advisory)
	})

	t.Run("force overrides a blocked verdict", func(t *testing.T) {
		f := newFixture(t)
		pkg := untrustedPackage()

		f.registry.EXPECT().Get("shady-tool").Return(pkg, true)
		f.advisory.EXPECT().Ask(gomock.Any(), gomock.Any(), 100).Return("", false)
		f.logger.EXPECT().Warn(gomock.Any())
		f.installer.EXPECT().Install(gomock.Any(), "shady-tool").Return(nil)

		res, err := f.app.Install(context.Background(), "shady-tool", app.InstallOptions{Force: true})
		require.NoError(t, err)
		assert.False(t, res.Verdict.Valid)
		assert.True(t, res.Installed)
	})

	t.Run("package without a pypi coordinate skips the installer", func(t *testing.T) {
		f := newFixture(t)
		pkg := trustedPackage()
		pkg.PyPI = ""
		pkg.Dependencies = []string{}

		f.registry.EXPECT().Get("requests").Return(pkg, true)
		f.advisory.EXPECT().Ask(gomock.Any(), gomock.Any(), 100).Return("OK", true)

		res, err := f.app.Install(context.Background(), "requests", app.InstallOptions{})
		require.NoError(t, err)
		assert.False(t, res.Installed)
	})

	t.Run("installer failure surfaces the error", func(t *testing.T) {
		f := newFixture(t)
		pkg := trustedPackage()
		pkg.Dependencies = []string{}

		f.registry.EXPECT().Get("requests").Return(pkg, true)
		f.advisory.EXPECT().Ask(gomock.Any(), gomock.Any(), 100).Return("OK", true)
		f.installer.EXPECT().Install(gomock.Any(), "requests").Return(errors.New("pip exited 1"))

		res, err := f.app.Install(context.Background(), "requests", app.InstallOptions{})
		require.Error(t, err)
		assert.False(t, res.Installed)
	})
}

func TestApp_Info(t *testing.T) {
	f := newFixture(t)
	pkg := trustedPackage()

	f.registry.EXPECT().Get("requests").Return(pkg, true)
	f.registry.EXPECT().Get("nonesuch").Return(nil, false)

	got, err := f.app.Info("requests")
	require.NoError(t, err)
	assert.Equal(t, pkg, got)

	_, err = f.app.Info("nonesuch")
	assert.True(t, errors.Is(err, domain.ErrPackageNotFound))
}

func TestApp_Update(t *testing.T) {
	f := newFixture(t)
	f.registry.EXPECT().Refresh(gomock.Any()).Return(true)
	assert.True(t, f.app.Update(context.Background()))
}

func TestApp_Doctor(t *testing.T) {
	t.Run("healthy services", func(t *testing.T) {
		f := newFixture(t)
		f.advisory.EXPECT().Available(gomock.Any()).Return(true)
		f.fetcher.EXPECT().Fetch(gomock.Any()).Return([]byte("{}"), nil)

		checks := f.app.Doctor(context.Background())
		require.Len(t, checks, 2)
		assert.True(t, checks[0].OK)
		assert.True(t, checks[1].OK)
	})

	t.Run("unreachable services are reported, not errors", func(t *testing.T) {
		f := newFixture(t)
		f.advisory.EXPECT().Available(gomock.Any()).Return(false)
		f.fetcher.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("dial tcp: refused"))

		checks := f.app.Doctor(context.Background())
		require.Len(t, checks, 2)
		assert.False(t, checks[0].OK)
		assert.Equal(t, "unreachable", checks[0].Detail)
		assert.False(t, checks[1].OK)
	})
}
